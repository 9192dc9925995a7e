// Package geomath: tridiagonal solver (Thomas algorithm).

package geomath

// Tridiagonal solves a tridiagonal linear system in O(n).
//
// a is the n×3 band matrix of the system: column 0 holds the
// sub-diagonal, column 1 the diagonal, column 2 the super-diagonal
// (a[0][0] and a[n-1][2] are unused). b is the n-length right-hand side
// and is overwritten with the solution.
//
// The forward sweep eliminates the sub-diagonal while scaling the
// super-diagonal by the running pivot; the backward sweep resolves the
// solution. The solve aborts with ErrSingular when a running pivot is
// exactly zero, leaving b partially modified; near-singular systems are
// not detected and produce round-off instead (deterministic for a fixed
// input).
func Tridiagonal(a *MatN, b *VecN) error {
	if err := validateMatN(a); err != nil {
		return err
	}
	if err := validateVecN(b); err != nil {
		return err
	}
	if a.c != 3 {
		return opErrorf("Tridiagonal", ErrDimensionMismatch)
	}
	n := a.r
	if b.Size() != n {
		return opErrorf("Tridiagonal", ErrDimensionMismatch)
	}

	gam := make([]float64, n) // scaled super-diagonal workspace

	// Forward sweep.
	bet := a.data[1] // running pivot, starts at diag[0]
	if bet == 0 {
		return opErrorf("Tridiagonal", ErrSingular)
	}
	b.data[0] /= bet
	for j := 1; j < n; j++ {
		gam[j] = a.data[(j-1)*3+2] / bet
		bet = a.data[j*3+1] - a.data[j*3]*gam[j]
		if bet == 0 {
			return opErrorf("Tridiagonal", ErrSingular)
		}
		b.data[j] = (b.data[j] - a.data[j*3]*b.data[j-1]) / bet
	}

	// Backward sweep.
	for j := n - 2; j >= 0; j-- {
		b.data[j] -= gam[j+1] * b.data[j+1]
	}

	return nil
}
