// Package geomath: dynamic M×N matrix.
// MatN is a heap-backed row-major matrix that may be resized dynamically.
// It owns its backing storage exclusively; Clone performs a deep copy.

package geomath

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// MatN is a row-major matrix of float64 values. r is rows, c is columns,
// and data holds r*c elements in row-major order.
type MatN struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewMatN creates an r×c matrix initialized to zeros.
// Complexity: O(r*c) time and memory.
func NewMatN(rows, cols int) (*MatN, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}

	return &MatN{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewMatNFrom creates an r×c matrix holding a copy of the given
// row-major values. len(values) must equal rows*cols.
func NewMatNFrom(values []float64, rows, cols int) (*MatN, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}
	if len(values) != rows*cols {
		return nil, opErrorf("NewMatNFrom", ErrDimensionMismatch)
	}
	data := make([]float64, len(values))
	copy(data, values)

	return &MatN{r: rows, c: cols, data: data}, nil
}

// NewIdentityN returns the n×n identity matrix.
func NewIdentityN(n int) (*MatN, error) {
	m, err := NewMatN(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Size returns the number of elements (rows*cols).
func (m *MatN) Size() int { return m.r * m.c }

// Rows returns the number of rows.
func (m *MatN) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *MatN) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *MatN) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("MatN.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *MatN) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
func (m *MatN) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// AtLinear retrieves the element at row-major linear index i.
func (m *MatN) AtLinear(i int) (float64, error) {
	if i < 0 || i >= len(m.data) {
		return 0, fmt.Errorf("MatN.AtLinear(%d): %w", i, ErrOutOfRange)
	}

	return m.data[i], nil
}

// SetLinear assigns value v at row-major linear index i.
func (m *MatN) SetLinear(i int, v float64) error {
	if i < 0 || i >= len(m.data) {
		return fmt.Errorf("MatN.SetLinear(%d): %w", i, ErrOutOfRange)
	}
	m.data[i] = v

	return nil
}

// Norm2 returns the squared Frobenius norm.
func (m *MatN) Norm2() float64 {
	var s float64
	for _, x := range m.data {
		s += x * x
	}

	return s
}

// Norm returns the Frobenius norm.
func (m *MatN) Norm() float64 { return math.Sqrt(m.Norm2()) }

// Transpose returns mᵀ as a fresh matrix; the receiver is unchanged.
func (m *MatN) Transpose() *MatN {
	out := &MatN{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// Clear zeroes all elements in place.
func (m *MatN) Clear() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// Reserve reallocates the backing storage to rows×cols zeroed elements,
// discarding previous content.
func (m *MatN) Reserve(rows, cols int) error {
	if err := validateShape(rows, cols); err != nil {
		return err
	}
	m.r, m.c = rows, cols
	m.data = make([]float64, rows*cols)

	return nil
}

// Resize changes the shape to rows×cols, preserving the overlapping
// upper-left block and zero-padding any growth.
func (m *MatN) Resize(rows, cols int) error {
	if err := validateShape(rows, cols); err != nil {
		return err
	}
	if rows == m.r && cols == m.c {
		return nil
	}
	data := make([]float64, rows*cols)
	br, bc := min(rows, m.r), min(cols, m.c)
	for i := 0; i < br; i++ {
		copy(data[i*cols:i*cols+bc], m.data[i*m.c:i*m.c+bc])
	}
	m.r, m.c = rows, cols
	m.data = data

	return nil
}

// Identity sets m to the identity in place. Valid only for square
// matrices; fails with ErrNonSquare otherwise.
func (m *MatN) Identity() error {
	if m.r != m.c {
		return opErrorf("MatN.Identity", ErrNonSquare)
	}
	m.Clear()
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+i] = 1
	}

	return nil
}

// NormalizeRow scales each row in place to unit norm. Rows with norm
// below Epsilon are left unmodified.
func (m *MatN) NormalizeRow() {
	for i := 0; i < m.r; i++ {
		row := m.data[i*m.c : (i+1)*m.c]
		var s float64
		for _, x := range row {
			s += x * x
		}
		n := math.Sqrt(s)
		if n < Epsilon {
			continue // degenerate row stays as-is
		}
		for j := range row {
			row[j] /= n
		}
	}
}

// Clone returns a deep copy.
func (m *MatN) Clone() *MatN {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &MatN{r: m.r, c: m.c, data: data}
}

// Add returns m + n as a fresh matrix.
func (m *MatN) Add(n *MatN) (*MatN, error) {
	if err := validateSameShape(m, n); err != nil {
		return nil, opErrorf("MatN.Add", err)
	}
	out := make([]float64, len(m.data))
	for i := range out {
		out[i] = m.data[i] + n.data[i]
	}

	return &MatN{r: m.r, c: m.c, data: out}, nil
}

// Sub returns m - n as a fresh matrix.
func (m *MatN) Sub(n *MatN) (*MatN, error) {
	if err := validateSameShape(m, n); err != nil {
		return nil, opErrorf("MatN.Sub", err)
	}
	out := make([]float64, len(m.data))
	for i := range out {
		out[i] = m.data[i] - n.data[i]
	}

	return &MatN{r: m.r, c: m.c, data: out}, nil
}

// Scale returns k*m as a fresh matrix.
func (m *MatN) Scale(k float64) *MatN {
	out := make([]float64, len(m.data))
	for i := range out {
		out[i] = m.data[i] * k
	}

	return &MatN{r: m.r, c: m.c, data: out}
}

// Div returns m/k as a fresh matrix.
func (m *MatN) Div(k float64) *MatN {
	out := make([]float64, len(m.data))
	for i := range out {
		out[i] = m.data[i] / k
	}

	return &MatN{r: m.r, c: m.c, data: out}
}

// Mul returns the matrix product m·n as a fresh matrix. Fails with
// ErrDimensionMismatch when m.Cols() != n.Rows().
// Complexity: O(r·k·c) with the classic i→k→j loop order for
// cache-friendly row-major access.
func (m *MatN) Mul(n *MatN) (*MatN, error) {
	if m == nil || n == nil {
		return nil, ErrNilOperand
	}
	if m.c != n.r {
		return nil, opErrorf("MatN.Mul", ErrDimensionMismatch)
	}
	out := &MatN{r: m.r, c: n.c, data: make([]float64, m.r*n.c)}
	for i := 0; i < m.r; i++ {
		for k := 0; k < m.c; k++ {
			a := m.data[i*m.c+k]
			if a == 0 {
				continue
			}
			nrow := n.data[k*n.c : (k+1)*n.c]
			orow := out.data[i*out.c : (i+1)*out.c]
			for j := range nrow {
				orow[j] += a * nrow[j]
			}
		}
	}

	return out, nil
}

// MulVec returns m·u as a fresh vector. Fails with
// ErrDimensionMismatch when m.Cols() != u.Size().
func (m *MatN) MulVec(u *VecN) (*VecN, error) {
	if m == nil || u == nil {
		return nil, ErrNilOperand
	}
	if m.c != len(u.data) {
		return nil, opErrorf("MatN.MulVec", ErrDimensionMismatch)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := m.data[i*m.c : (i+1)*m.c]
		var s float64
		for j, x := range row {
			s += x * u.data[j]
		}
		out[i] = s
	}

	return &VecN{data: out}, nil
}

// VecMul returns the row-vector product uᵀ·m as a fresh vector. Fails
// with ErrDimensionMismatch when u.Size() != m.Rows().
func (m *MatN) VecMul(u *VecN) (*VecN, error) {
	if m == nil || u == nil {
		return nil, ErrNilOperand
	}
	if m.r != len(u.data) {
		return nil, opErrorf("MatN.VecMul", ErrDimensionMismatch)
	}
	out := make([]float64, m.c)
	for i := 0; i < m.r; i++ {
		a := u.data[i]
		if a == 0 {
			continue
		}
		row := m.data[i*m.c : (i+1)*m.c]
		for j, x := range row {
			out[j] += a * x
		}
	}

	return &VecN{data: out}, nil
}

// Equal reports exact element-wise equality (same shape, same values).
func (m *MatN) Equal(n *MatN) bool {
	if m == nil || n == nil || m.r != n.r || m.c != n.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != n.data[i] {
			return false
		}
	}

	return true
}

// Det returns the determinant of a square matrix: 3x3 and 4x4 use the
// closed forms, larger matrices go through the LU decomposition with the
// row-swap parity supplying the sign. A singular matrix has determinant
// exactly 0.
func (m *MatN) Det() (float64, error) {
	if err := validateMatN(m); err != nil {
		return 0, err
	}
	if m.r != m.c {
		return 0, opErrorf("MatN.Det", ErrNonSquare)
	}
	switch m.r {
	case 1:
		return m.data[0], nil
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2], nil
	case 3:
		return m.Mat3().Det(), nil
	case 4:
		return m.Mat4().Det(), nil
	}
	lu := m.Clone()
	_, parity, err := LUDecompose(lu)
	if err != nil {
		if errors.Is(err, ErrSingular) {
			return 0, nil
		}

		return 0, err
	}
	d := parity
	for i := 0; i < lu.r; i++ {
		d *= lu.data[i*lu.c+i]
	}

	return d, nil
}

// SubDet returns the determinant of the 3x3 matrix formed by rows
// r1,r2,r3 and columns c1,c2,c3 of m. Fails with ErrOutOfRange for
// invalid indices.
func (m *MatN) SubDet(r1, r2, r3, c1, c2, c3 int) (float64, error) {
	for _, r := range [3]int{r1, r2, r3} {
		if r < 0 || r >= m.r {
			return 0, opErrorf("MatN.SubDet", ErrOutOfRange)
		}
	}
	for _, c := range [3]int{c1, c2, c3} {
		if c < 0 || c >= m.c {
			return 0, opErrorf("MatN.SubDet", ErrOutOfRange)
		}
	}
	a := m.data

	return a[r1*m.c+c1]*(a[r2*m.c+c2]*a[r3*m.c+c3]-a[r2*m.c+c3]*a[r3*m.c+c2]) -
		a[r1*m.c+c2]*(a[r2*m.c+c1]*a[r3*m.c+c3]-a[r2*m.c+c3]*a[r3*m.c+c1]) +
		a[r1*m.c+c3]*(a[r2*m.c+c1]*a[r3*m.c+c2]-a[r2*m.c+c2]*a[r3*m.c+c1]), nil
}

// Inverse returns the inverse of a square matrix as a fresh matrix,
// computed by Gauss-Jordan elimination with full pivoting. Fails with
// ErrSingular for singular input; the receiver is unchanged.
func (m *MatN) Inverse() (*MatN, error) {
	if err := validateMatN(m); err != nil {
		return nil, err
	}
	if m.r != m.c {
		return nil, opErrorf("MatN.Inverse", ErrNonSquare)
	}
	a := m.Clone()
	b, err := NewIdentityN(m.r)
	if err != nil {
		return nil, err
	}
	x, err := NewMatN(m.r, m.r)
	if err != nil {
		return nil, err
	}
	// GaussJordan overwrites a with the inverse.
	if err = GaussJordan(a, b, x); err != nil {
		return nil, err
	}

	return a, nil
}

// OuterProductN returns the outer product u·vᵀ as a fresh matrix.
func OuterProductN(u, v *VecN) (*MatN, error) {
	if u == nil || v == nil {
		return nil, ErrNilOperand
	}
	out := &MatN{r: len(u.data), c: len(v.data),
		data: make([]float64, len(u.data)*len(v.data))}
	for i, a := range u.data {
		for j, b := range v.data {
			out.data[i*out.c+j] = a * b
		}
	}

	return out, nil
}

// CopyBlock copies a rows×cols block of src starting at (srcRow, srcCol)
// into dst at (dstRow, dstCol). The block must lie fully inside both
// matrices; otherwise ErrOutOfRange is returned and dst is unchanged.
func CopyBlock(src *MatN, srcRow, srcCol, rows, cols int, dst *MatN, dstRow, dstCol int) error {
	if src == nil || dst == nil {
		return ErrNilOperand
	}
	if rows <= 0 || cols <= 0 {
		return opErrorf("CopyBlock", ErrBadShape)
	}
	if srcRow < 0 || srcCol < 0 || srcRow+rows > src.r || srcCol+cols > src.c ||
		dstRow < 0 || dstCol < 0 || dstRow+rows > dst.r || dstCol+cols > dst.c {
		return opErrorf("CopyBlock", ErrOutOfRange)
	}
	for i := 0; i < rows; i++ {
		s := src.data[(srcRow+i)*src.c+srcCol:]
		d := dst.data[(dstRow+i)*dst.c+dstCol:]
		copy(d[:cols], s[:cols])
	}

	return nil
}

// Mat3 truncates or zero-pads to exactly 3x3, copying the overlapping
// upper-left block. Unlike Mat3.Mat4, no homogeneous padding applies:
// a general dynamic matrix carries no rotation context.
func (m *MatN) Mat3() Mat3 {
	var out Mat3
	br, bc := min(m.r, 3), min(m.c, 3)
	for i := 0; i < br; i++ {
		for j := 0; j < bc; j++ {
			out[i*3+j] = m.data[i*m.c+j]
		}
	}

	return out
}

// Mat4 truncates or zero-pads to exactly 4x4, copying the overlapping
// upper-left block.
func (m *MatN) Mat4() Mat4 {
	var out Mat4
	br, bc := min(m.r, 4), min(m.c, 4)
	for i := 0; i < br; i++ {
		for j := 0; j < bc; j++ {
			out[i*4+j] = m.data[i*m.c+j]
		}
	}

	return out
}

// VecN flattens the matrix into a vector of r*c components in row-major
// order.
func (m *MatN) VecN() *VecN {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &VecN{data: data}
}

// String implements fmt.Stringer for easy debugging.
func (m *MatN) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
