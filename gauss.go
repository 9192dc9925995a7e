// Package geomath: dense direct solvers by elimination.
// GaussJordan uses full pivoting and accumulates the inverse in place;
// GaussElimination uses partial pivoting with explicit back
// substitution. Both test pivots for exact zero: a near-singular system
// returns round-off, not an error, so failure stays deterministic for a
// fixed input.

package geomath

import "math"

// prepareRHS shapes x to match b and fills it with b's values. When the
// caller passes the same object for both, b is solved in place.
func prepareRHS(b, x *MatN) error {
	if x == b {
		return nil
	}
	if err := x.Reserve(b.r, b.c); err != nil {
		return err
	}
	copy(x.data, b.data)

	return nil
}

// GaussJordan solves A·X = B by Gauss-Jordan elimination with full
// pivoting and overwrites a with its inverse. a must be square (n×n)
// and b n×m; x receives the m-column solution (it is resized as needed;
// passing b as x solves in place). b is otherwise unchanged.
//
// Each of the n iterations scans every row/column not yet used as a
// pivot for the globally largest-magnitude element, swaps it into
// diagonal position (recording the permutation), scales the pivot row,
// and eliminates the pivot column from all other rows. The recorded
// column permutations are undone in reverse order afterwards,
// unscrambling the inverse.
//
// Fails with ErrSingular when no nonzero candidate pivot remains; a and
// x are then in a partially-modified, unspecified state.
// Complexity: O(n³ + n²m).
func GaussJordan(a, b, x *MatN) error {
	if a == nil || b == nil || x == nil {
		return ErrNilOperand
	}
	if a.r != a.c {
		return opErrorf("GaussJordan", ErrNonSquare)
	}
	if b.r != a.r {
		return opErrorf("GaussJordan", ErrDimensionMismatch)
	}
	if err := prepareRHS(b, x); err != nil {
		return opErrorf("GaussJordan", err)
	}

	n, m := a.r, x.c

	// Trivial 1x1 system.
	if n == 1 {
		piv := a.data[0]
		if piv == 0 {
			return opErrorf("GaussJordan", ErrSingular)
		}
		for j := 0; j < m; j++ {
			x.data[j] /= piv
		}
		a.data[0] = 1 / piv // the 1x1 inverse

		return nil
	}

	indxr := make([]int, n) // pivot row per iteration
	indxc := make([]int, n) // pivot column per iteration
	ipiv := make([]int, n)  // 1 once a column has been pivoted

	for i := 0; i < n; i++ {
		// Stage 1: full-pivot search over all unpivoted rows/columns.
		var big float64
		irow, icol := -1, -1
		for j := 0; j < n; j++ {
			if ipiv[j] == 1 {
				continue
			}
			for k := 0; k < n; k++ {
				if ipiv[k] != 0 {
					continue
				}
				if v := math.Abs(a.data[j*n+k]); v > big {
					big, irow, icol = v, j, k
				}
			}
		}
		if irow < 0 || big == 0 { // exact-zero test, intentional
			return opErrorf("GaussJordan", ErrSingular)
		}
		ipiv[icol] = 1

		// Stage 2: swap the pivot into diagonal position, in both the
		// coefficient block and the accumulator/RHS block.
		if irow != icol {
			SwapRows(a, irow, icol)
			SwapRows(x, irow, icol)
		}
		indxr[i], indxc[i] = irow, icol

		// Stage 3: scale the pivot row so the pivot becomes 1.
		pivinv := 1 / a.data[icol*n+icol]
		a.data[icol*n+icol] = 1
		for k := 0; k < n; k++ {
			a.data[icol*n+k] *= pivinv
		}
		for k := 0; k < m; k++ {
			x.data[icol*m+k] *= pivinv
		}

		// Stage 4: eliminate the pivot column from every other row.
		for ll := 0; ll < n; ll++ {
			if ll == icol {
				continue
			}
			dum := a.data[ll*n+icol]
			if dum == 0 {
				continue
			}
			a.data[ll*n+icol] = 0
			for k := 0; k < n; k++ {
				a.data[ll*n+k] -= a.data[icol*n+k] * dum
			}
			for k := 0; k < m; k++ {
				x.data[ll*m+k] -= x.data[icol*m+k] * dum
			}
		}
	}

	// Undo column permutations in reverse build order, unscrambling the
	// inverse left in a.
	for l := n - 1; l >= 0; l-- {
		if indxr[l] != indxc[l] {
			SwapCols(a, indxr[l], indxc[l])
		}
	}

	return nil
}

// GaussElimination solves A·X = B by Gaussian elimination with partial
// pivoting and explicit back substitution. Same I/O contract as
// GaussJordan except that a is overwritten with its upper-triangular
// echelon form rather than its inverse.
//
// The pivot search scans only the current column, at or below the
// current row; row swaps apply to both the coefficient matrix and the
// RHS block. Fails with ErrSingular when the selected pivot is exactly
// zero, leaving a and x partially modified.
// Complexity: O(n³ + n²m).
func GaussElimination(a, b, x *MatN) error {
	if a == nil || b == nil || x == nil {
		return ErrNilOperand
	}
	if a.r != a.c {
		return opErrorf("GaussElimination", ErrNonSquare)
	}
	if b.r != a.r {
		return opErrorf("GaussElimination", ErrDimensionMismatch)
	}
	if err := prepareRHS(b, x); err != nil {
		return opErrorf("GaussElimination", err)
	}

	n, m := a.r, x.c

	// Trivial 1x1 system.
	if n == 1 {
		piv := a.data[0]
		if piv == 0 {
			return opErrorf("GaussElimination", ErrSingular)
		}
		for j := 0; j < m; j++ {
			x.data[j] /= piv
		}

		return nil
	}

	// Forward elimination with partial pivoting.
	for k := 0; k < n; k++ {
		// Search the current column, rows k..n-1, for the largest pivot.
		p, big := k, math.Abs(a.data[k*n+k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(a.data[i*n+k]); v > big {
				p, big = i, v
			}
		}
		if a.data[p*n+k] == 0 { // exact-zero test, intentional
			return opErrorf("GaussElimination", ErrSingular)
		}
		if p != k {
			SwapRows(a, p, k)
			SwapRows(x, p, k)
		}

		// Eliminate column k below the pivot.
		for i := k + 1; i < n; i++ {
			f := a.data[i*n+k] / a.data[k*n+k]
			if f == 0 {
				continue
			}
			a.data[i*n+k] = 0
			for j := k + 1; j < n; j++ {
				a.data[i*n+j] -= f * a.data[k*n+j]
			}
			for j := 0; j < m; j++ {
				x.data[i*m+j] -= f * x.data[k*m+j]
			}
		}
	}

	// Back substitution across every RHS column.
	for j := 0; j < m; j++ {
		for i := n - 1; i >= 0; i-- {
			sum := x.data[i*m+j]
			for k := i + 1; k < n; k++ {
				sum -= a.data[i*n+k] * x.data[k*m+j]
			}
			x.data[i*m+j] = sum / a.data[i*n+i]
		}
	}

	return nil
}
