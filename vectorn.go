// Package geomath: dynamic N-dimensional vector.
// VecN owns its backing storage exclusively; Clone performs a deep copy.
// Copying the struct value shares storage and is not supported — use
// Clone.

package geomath

import (
	"fmt"
	"math"
	"strings"
)

// VecN is a heap-backed vector of float64 components.
type VecN struct {
	data []float64 // backing storage, length == size
}

// NewVecN creates a zero-initialized vector of n components.
// Complexity: O(n) time and memory.
func NewVecN(n int) (*VecN, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}

	return &VecN{data: make([]float64, n)}, nil
}

// NewVecNFrom creates a vector holding a copy of the given components.
func NewVecNFrom(values ...float64) (*VecN, error) {
	if len(values) == 0 {
		return nil, ErrBadShape
	}
	data := make([]float64, len(values))
	copy(data, values)

	return &VecN{data: data}, nil
}

// Size returns the number of components.
func (v *VecN) Size() int { return len(v.data) }

// Rows returns the number of rows (= Size; a VecN is a column).
func (v *VecN) Rows() int { return len(v.data) }

// Cols returns the number of columns (always 1).
func (v *VecN) Cols() int { return 1 }

// At retrieves component i, or ErrOutOfRange.
func (v *VecN) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("VecN.At(%d): %w", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set assigns component i, or returns ErrOutOfRange.
func (v *VecN) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("VecN.Set(%d): %w", i, ErrOutOfRange)
	}
	v.data[i] = x

	return nil
}

// Norm2 returns the squared norm.
func (v *VecN) Norm2() float64 {
	var s float64
	for _, x := range v.data {
		s += x * x
	}

	return s
}

// Norm returns the Euclidean norm.
func (v *VecN) Norm() float64 { return math.Sqrt(v.Norm2()) }

// Normalize scales v in place to unit norm. When the norm is below
// Epsilon it returns ErrDegenerateVector and leaves v unmodified.
func (v *VecN) Normalize() error {
	n := v.Norm()
	if n < Epsilon {
		return ErrDegenerateVector
	}
	for i := range v.data {
		v.data[i] /= n
	}

	return nil
}

// Clear zeroes all components in place.
func (v *VecN) Clear() {
	for i := range v.data {
		v.data[i] = 0
	}
}

// Reserve reallocates the backing storage to n zeroed components,
// discarding previous content.
func (v *VecN) Reserve(n int) error {
	if n <= 0 {
		return ErrBadShape
	}
	v.data = make([]float64, n)

	return nil
}

// Resize changes the size to n, preserving the leading min(old, n)
// components and zero-padding any growth.
func (v *VecN) Resize(n int) error {
	if n <= 0 {
		return ErrBadShape
	}
	if n == len(v.data) {
		return nil
	}
	data := make([]float64, n)
	copy(data, v.data) // copies min(len, n) components
	v.data = data

	return nil
}

// Clone returns a deep copy.
func (v *VecN) Clone() *VecN {
	data := make([]float64, len(v.data))
	copy(data, v.data)

	return &VecN{data: data}
}

// Transpose returns vᵀ as a 1×n row matrix; the receiver is unchanged.
func (v *VecN) Transpose() *MatN {
	data := make([]float64, len(v.data))
	copy(data, v.data)

	return &MatN{r: 1, c: len(v.data), data: data}
}

// Add returns v + w as a fresh vector.
func (v *VecN) Add(w *VecN) (*VecN, error) {
	if v == nil || w == nil {
		return nil, ErrNilOperand
	}
	if len(v.data) != len(w.data) {
		return nil, opErrorf("VecN.Add", ErrDimensionMismatch)
	}
	out := make([]float64, len(v.data))
	for i := range out {
		out[i] = v.data[i] + w.data[i]
	}

	return &VecN{data: out}, nil
}

// Sub returns v - w as a fresh vector.
func (v *VecN) Sub(w *VecN) (*VecN, error) {
	if v == nil || w == nil {
		return nil, ErrNilOperand
	}
	if len(v.data) != len(w.data) {
		return nil, opErrorf("VecN.Sub", ErrDimensionMismatch)
	}
	out := make([]float64, len(v.data))
	for i := range out {
		out[i] = v.data[i] - w.data[i]
	}

	return &VecN{data: out}, nil
}

// Scale returns k*v as a fresh vector.
func (v *VecN) Scale(k float64) *VecN {
	out := make([]float64, len(v.data))
	for i := range out {
		out[i] = v.data[i] * k
	}

	return &VecN{data: out}
}

// Div returns v/k as a fresh vector.
func (v *VecN) Div(k float64) *VecN {
	out := make([]float64, len(v.data))
	for i := range out {
		out[i] = v.data[i] / k
	}

	return &VecN{data: out}
}

// Dot returns the inner product v · w.
func (v *VecN) Dot(w *VecN) (float64, error) {
	if v == nil || w == nil {
		return 0, ErrNilOperand
	}
	if len(v.data) != len(w.data) {
		return 0, opErrorf("VecN.Dot", ErrDimensionMismatch)
	}
	var s float64
	for i := range v.data {
		s += v.data[i] * w.data[i]
	}

	return s, nil
}

// Cross returns the 3-D cross product v × w. Both operands must have
// exactly 3 components.
func (v *VecN) Cross(w *VecN) (*VecN, error) {
	if v == nil || w == nil {
		return nil, ErrNilOperand
	}
	if len(v.data) != 3 || len(w.data) != 3 {
		return nil, opErrorf("VecN.Cross", ErrDimensionMismatch)
	}
	a, b := v.data, w.data

	return &VecN{data: []float64{
		a[1]*b[2] - b[1]*a[2],
		a[2]*b[0] - b[2]*a[0],
		a[0]*b[1] - b[0]*a[1],
	}}, nil
}

// Cross4N returns the 4-D ternary cross product of u, v and w. All three
// operands must have exactly 4 components.
func Cross4N(u, v, w *VecN) (*VecN, error) {
	if u == nil || v == nil || w == nil {
		return nil, ErrNilOperand
	}
	if len(u.data) != 4 || len(v.data) != 4 || len(w.data) != 4 {
		return nil, opErrorf("Cross4N", ErrDimensionMismatch)
	}
	out := Cross4(u.Vec4(), v.Vec4(), w.Vec4())

	return &VecN{data: []float64{out[0], out[1], out[2], out[3]}}, nil
}

// Equal reports exact component-wise equality.
func (v *VecN) Equal(w *VecN) bool {
	if v == nil || w == nil || len(v.data) != len(w.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != w.data[i] {
			return false
		}
	}

	return true
}

// Vec2 truncates or zero-pads to exactly 2 components.
func (v *VecN) Vec2() Vec2 {
	var out Vec2
	copy(out[:], v.data)

	return out
}

// Vec3 truncates or zero-pads to exactly 3 components.
func (v *VecN) Vec3() Vec3 {
	var out Vec3
	copy(out[:], v.data)

	return out
}

// Vec4 truncates or zero-pads to exactly 4 components.
func (v *VecN) Vec4() Vec4 {
	var out Vec4
	copy(out[:], v.data)

	return out
}

// MatN converts to an n×1 column matrix.
func (v *VecN) MatN() *MatN {
	data := make([]float64, len(v.data))
	copy(data, v.data)

	return &MatN{r: len(v.data), c: 1, data: data}
}

// String implements fmt.Stringer for easy debugging.
func (v *VecN) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", x)
	}
	sb.WriteByte(']')

	return sb.String()
}
