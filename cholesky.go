// Package geomath: Cholesky decomposition adapter (Dpotrf/Dpotrs).

package geomath

// Cholesky decomposes a symmetric positive definite matrix a into the
// upper-triangular factor U with A = Uᵀ·U, reading only the upper
// triangle of a. a is unchanged; the returned matrix has an explicit
// zero strict lower triangle.
//
// Fails with ErrIllegalArgument for a non-square input and with
// ErrNotPositiveDefinite when a is not positive definite; on failure
// the output is unspecified and must not be consumed.
func Cholesky(a *MatN) (*MatN, error) {
	if a == nil {
		return nil, ErrNilOperand
	}
	if a.r != a.c {
		return nil, opErrorf("Cholesky", ErrIllegalArgument)
	}
	n := a.r

	u := a.Clone()
	if ok := lapackImpl.Dpotrf(upper, n, u.data, n); !ok {
		return nil, opErrorf("Cholesky", ErrNotPositiveDefinite)
	}

	// Dpotrf leaves the strict lower triangle untouched; clear it so U
	// is a plain upper-triangular matrix.
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			u.data[i*n+j] = 0
		}
	}

	return u, nil
}

// CholeskySolve solves A·X = B for symmetric positive definite a,
// overwriting b with the solution. b may carry multiple RHS columns;
// a is unchanged.
//
// Fails with ErrIllegalArgument for malformed shapes and
// ErrNotPositiveDefinite when a is not positive definite (b is then
// unchanged).
func CholeskySolve(a, b *MatN) error {
	if a == nil || b == nil {
		return ErrNilOperand
	}
	if a.r != a.c {
		return opErrorf("CholeskySolve", ErrIllegalArgument)
	}
	if b.r != a.r {
		return opErrorf("CholeskySolve", ErrDimensionMismatch)
	}
	n := a.r

	u := a.Clone()
	if ok := lapackImpl.Dpotrf(upper, n, u.data, n); !ok {
		return opErrorf("CholeskySolve", ErrNotPositiveDefinite)
	}
	lapackImpl.Dpotrs(upper, n, b.c, u.data, n, b.data, b.c)

	return nil
}
