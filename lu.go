// Package geomath: LU decomposition adapter (Dgetrf/Dgetrs).

package geomath

// LUDecompose factors the square matrix a in place into its combined
// L\U form with partial pivoting: the strict lower triangle holds the
// unit-lower-triangular L (implicit 1s on the diagonal), the upper
// triangle holds U. It returns the pivot index array (row i was
// interchanged with row ipiv[i]) and the row-swap parity: +1 for an
// even number of effective interchanges, -1 for odd — the sign factor
// of the determinant.
//
// Fails with ErrIllegalArgument for a non-square input and with
// ErrSingular when a diagonal factor of U is exactly zero (the factors
// written so far remain in a, but a solve would divide by zero).
func LUDecompose(a *MatN) (ipiv []int, parity float64, err error) {
	if a == nil {
		return nil, 0, ErrNilOperand
	}
	if a.r != a.c {
		return nil, 0, opErrorf("LUDecompose", ErrIllegalArgument)
	}
	n := a.r

	ipiv = make([]int, n)
	ok := lapackImpl.Dgetrf(n, n, a.data, n, ipiv)

	parity = 1.0
	for i, p := range ipiv {
		if p != i {
			parity = -parity
		}
	}
	if !ok {
		return ipiv, parity, opErrorf("LUDecompose", ErrSingular)
	}

	return ipiv, parity, nil
}

// LUSolve solves A·X = B given the decomposed factors produced by
// LUDecompose (a and its pivot array), overwriting b with the solution
// by forward and back substitution. b may carry multiple RHS columns.
func LUSolve(a *MatN, ipiv []int, b *MatN) error {
	if a == nil || b == nil {
		return ErrNilOperand
	}
	if a.r != a.c {
		return opErrorf("LUSolve", ErrIllegalArgument)
	}
	if len(ipiv) != a.r || b.r != a.r {
		return opErrorf("LUSolve", ErrDimensionMismatch)
	}

	lapackImpl.Dgetrs(noTrans, a.r, b.c, a.data, a.c, ipiv, b.data, b.c)

	return nil
}

// LUSolveVec is LUSolve for a single right-hand-side vector,
// overwriting b with the solution.
func LUSolveVec(a *MatN, ipiv []int, b *VecN) error {
	if a == nil || b == nil {
		return ErrNilOperand
	}
	if a.r != a.c {
		return opErrorf("LUSolveVec", ErrIllegalArgument)
	}
	if len(ipiv) != a.r || b.Size() != a.r {
		return opErrorf("LUSolveVec", ErrDimensionMismatch)
	}

	lapackImpl.Dgetrs(noTrans, a.r, 1, a.data, a.c, ipiv, b.data, 1)

	return nil
}
