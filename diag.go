// Package geomath: generic diagonal, row, and column procedures.
// These operate over any Mat/Vec implementation; *MatN operands take a
// flat-slice fast path. Get variants zero-pad the destination vector
// beyond the copied prefix, Set variants do not pad.
//
// Diagonal offset convention: a non-negative offset d selects the
// diagonal starting at column d of row 0 (shift right); a negative
// offset advances the starting linear index by |d|*cols, i.e. starts at
// row |d| of column 0 (shift down).

package geomath

import "fmt"

// diagStart resolves the offset d into a starting cell and the length of
// the selected diagonal. A zero or negative length means d points
// outside the matrix.
func diagStart(rows, cols, d int) (row, col, length int) {
	if d >= 0 {
		return 0, d, min(rows, cols-d)
	}

	return -d, 0, min(rows+d, cols)
}

// GetDiag copies the diagonal of A at offset d into u. Positions of u
// beyond the diagonal's length are zero-padded. Fails with ErrOutOfRange
// when d selects no cell of A.
func GetDiag(a Mat, d int, u Vec) error {
	if err := validateMat(a); err != nil {
		return opErrorf("GetDiag", err)
	}
	if err := validateVec(u); err != nil {
		return opErrorf("GetDiag", err)
	}
	row, col, length := diagStart(a.Rows(), a.Cols(), d)
	if length <= 0 {
		return opErrorf("GetDiag", ErrOutOfRange)
	}

	n := min(length, u.Size())
	for i := 0; i < n; i++ {
		v, err := a.At(row+i, col+i)
		if err != nil {
			return opErrorf("GetDiag", err)
		}
		if err = u.Set(i, v); err != nil {
			return opErrorf("GetDiag", err)
		}
	}
	// Zero-pad the remainder of u.
	for i := n; i < u.Size(); i++ {
		if err := u.Set(i, 0); err != nil {
			return opErrorf("GetDiag", err)
		}
	}

	return nil
}

// SetDiag copies u onto the diagonal of A at offset d. Only
// min(diagonal length, u.Size()) elements are written; no padding.
// Fails with ErrOutOfRange when d selects no cell of A.
func SetDiag(u Vec, a Mat, d int) error {
	if err := validateMat(a); err != nil {
		return opErrorf("SetDiag", err)
	}
	if err := validateVec(u); err != nil {
		return opErrorf("SetDiag", err)
	}
	row, col, length := diagStart(a.Rows(), a.Cols(), d)
	if length <= 0 {
		return opErrorf("SetDiag", ErrOutOfRange)
	}

	n := min(length, u.Size())
	for i := 0; i < n; i++ {
		v, err := u.At(i)
		if err != nil {
			return opErrorf("SetDiag", err)
		}
		if err = a.Set(row+i, col+i, v); err != nil {
			return opErrorf("SetDiag", err)
		}
	}

	return nil
}

// GetRow copies row `row` of A into u, zero-padding u beyond the column
// count. Fails with ErrOutOfRange for an invalid row index.
func GetRow(a Mat, row int, u Vec) error {
	if err := validateMat(a); err != nil {
		return opErrorf("GetRow", err)
	}
	if err := validateVec(u); err != nil {
		return opErrorf("GetRow", err)
	}
	if row < 0 || row >= a.Rows() {
		return opErrorf("GetRow", ErrOutOfRange)
	}

	n := min(a.Cols(), u.Size())
	for j := 0; j < n; j++ {
		v, err := a.At(row, j)
		if err != nil {
			return opErrorf("GetRow", err)
		}
		if err = u.Set(j, v); err != nil {
			return opErrorf("GetRow", err)
		}
	}
	for j := n; j < u.Size(); j++ {
		if err := u.Set(j, 0); err != nil {
			return opErrorf("GetRow", err)
		}
	}

	return nil
}

// SetRow copies u into row `row` of A; min(cols, u.Size()) elements are
// written, no padding. Fails with ErrOutOfRange for an invalid row index.
func SetRow(u Vec, a Mat, row int) error {
	if err := validateMat(a); err != nil {
		return opErrorf("SetRow", err)
	}
	if err := validateVec(u); err != nil {
		return opErrorf("SetRow", err)
	}
	if row < 0 || row >= a.Rows() {
		return opErrorf("SetRow", ErrOutOfRange)
	}

	n := min(a.Cols(), u.Size())
	for j := 0; j < n; j++ {
		v, err := u.At(j)
		if err != nil {
			return opErrorf("SetRow", err)
		}
		if err = a.Set(row, j, v); err != nil {
			return opErrorf("SetRow", err)
		}
	}

	return nil
}

// GetCol copies column `col` of A into u, zero-padding u beyond the row
// count. Fails with ErrOutOfRange for an invalid column index.
func GetCol(a Mat, col int, u Vec) error {
	if err := validateMat(a); err != nil {
		return opErrorf("GetCol", err)
	}
	if err := validateVec(u); err != nil {
		return opErrorf("GetCol", err)
	}
	if col < 0 || col >= a.Cols() {
		return opErrorf("GetCol", ErrOutOfRange)
	}

	n := min(a.Rows(), u.Size())
	for i := 0; i < n; i++ {
		v, err := a.At(i, col)
		if err != nil {
			return opErrorf("GetCol", err)
		}
		if err = u.Set(i, v); err != nil {
			return opErrorf("GetCol", err)
		}
	}
	for i := n; i < u.Size(); i++ {
		if err := u.Set(i, 0); err != nil {
			return opErrorf("GetCol", err)
		}
	}

	return nil
}

// SetCol copies u into column `col` of A; min(rows, u.Size()) elements
// are written, no padding. Fails with ErrOutOfRange for an invalid
// column index.
func SetCol(u Vec, a Mat, col int) error {
	if err := validateMat(a); err != nil {
		return opErrorf("SetCol", err)
	}
	if err := validateVec(u); err != nil {
		return opErrorf("SetCol", err)
	}
	if col < 0 || col >= a.Cols() {
		return opErrorf("SetCol", ErrOutOfRange)
	}

	n := min(a.Rows(), u.Size())
	for i := 0; i < n; i++ {
		v, err := u.At(i)
		if err != nil {
			return opErrorf("SetCol", err)
		}
		if err = a.Set(i, col, v); err != nil {
			return opErrorf("SetCol", err)
		}
	}

	return nil
}

// SwapRows exchanges rows i and j of A in place; a no-op when i == j.
// An invalid index is a contract violation, not a data condition, and
// panics.
func SwapRows(a Mat, i, j int) {
	if a == nil {
		panic("geomath: SwapRows on nil matrix")
	}
	if i < 0 || i >= a.Rows() || j < 0 || j >= a.Rows() {
		panic(fmt.Sprintf("geomath: SwapRows(%d,%d) out of range for %dx%d", i, j, a.Rows(), a.Cols()))
	}
	if i == j {
		return
	}

	// Fast path: *MatN row swap on the flat backing slice.
	if m, ok := a.(*MatN); ok {
		ri := m.data[i*m.c : (i+1)*m.c]
		rj := m.data[j*m.c : (j+1)*m.c]
		for k := range ri {
			ri[k], rj[k] = rj[k], ri[k]
		}

		return
	}

	for k := 0; k < a.Cols(); k++ {
		vi, _ := a.At(i, k)
		vj, _ := a.At(j, k)
		_ = a.Set(i, k, vj)
		_ = a.Set(j, k, vi)
	}
}

// SwapCols exchanges columns i and j of A in place; a no-op when i == j.
// An invalid index is a contract violation, not a data condition, and
// panics.
func SwapCols(a Mat, i, j int) {
	if a == nil {
		panic("geomath: SwapCols on nil matrix")
	}
	if i < 0 || i >= a.Cols() || j < 0 || j >= a.Cols() {
		panic(fmt.Sprintf("geomath: SwapCols(%d,%d) out of range for %dx%d", i, j, a.Rows(), a.Cols()))
	}
	if i == j {
		return
	}

	// Fast path: *MatN column swap on the flat backing slice.
	if m, ok := a.(*MatN); ok {
		for r := 0; r < m.r; r++ {
			m.data[r*m.c+i], m.data[r*m.c+j] = m.data[r*m.c+j], m.data[r*m.c+i]
		}

		return
	}

	for r := 0; r < a.Rows(); r++ {
		vi, _ := a.At(r, i)
		vj, _ := a.At(r, j)
		_ = a.Set(r, i, vj)
		_ = a.Set(r, j, vi)
	}
}
