// Package geomath: matrix- and vector-shaped interfaces.
// The generic procedures (GetDiag/SetDiag, row/column get-set, swaps)
// operate over these minimal contracts so they work uniformly across the
// fixed and dynamic types. Concrete kernels keep *MatN/*VecN fast paths
// on the flat backing slices.

package geomath

// Mat is the minimal matrix-shaped contract: a bounds-checked, row-major
// 2-D view over float64 elements. At and Set return ErrOutOfRange on an
// invalid index instead of panicking.
//
// Implemented by *Mat3, *Mat4, and *MatN.
type Mat interface {
	// Rows returns the number of rows, always > 0.
	Rows() int
	// Cols returns the number of columns, always > 0.
	Cols() int
	// At retrieves the element at (row, col).
	At(row, col int) (float64, error)
	// Set assigns v at (row, col).
	Set(row, col int, v float64) error
}

// Vec is the minimal vector-shaped contract, the 1-D analog of Mat.
//
// Implemented by *Vec2, *Vec3, *Vec4, and *VecN.
type Vec interface {
	// Size returns the number of components, always > 0.
	Size() int
	// At retrieves component i.
	At(i int) (float64, error)
	// Set assigns v to component i.
	Set(i int, v float64) error
}
