// Package geomath: 4-D fixed vector.

package geomath

import "math"

// Vec4 is a 4-D vector, stack-resident with exact == equality.
type Vec4 [4]float64

// Size returns the number of components (4).
func (v *Vec4) Size() int { return 4 }

// At retrieves component i, or ErrOutOfRange.
func (v *Vec4) At(i int) (float64, error) {
	if i < 0 || i >= 4 {
		return 0, ErrOutOfRange
	}

	return v[i], nil
}

// Set assigns component i, or returns ErrOutOfRange.
func (v *Vec4) Set(i int, x float64) error {
	if i < 0 || i >= 4 {
		return ErrOutOfRange
	}
	v[i] = x

	return nil
}

// Norm2 returns the squared norm.
func (v Vec4) Norm2() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2] + v[3]*v[3]
}

// Norm returns the Euclidean norm.
func (v Vec4) Norm() float64 { return math.Sqrt(v.Norm2()) }

// Normalize scales v in place to unit norm. When the norm is below
// Epsilon it returns ErrDegenerateVector and leaves v unmodified.
func (v *Vec4) Normalize() error {
	n := v.Norm()
	if n < Epsilon {
		return ErrDegenerateVector
	}
	v[0] /= n
	v[1] /= n
	v[2] /= n
	v[3] /= n

	return nil
}

// Clear zeroes all components in place.
func (v *Vec4) Clear() { *v = Vec4{} }

// Add returns v + w.
func (v Vec4) Add(w Vec4) Vec4 {
	return Vec4{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

// Sub returns v - w.
func (v Vec4) Sub(w Vec4) Vec4 {
	return Vec4{v[0] - w[0], v[1] - w[1], v[2] - w[2], v[3] - w[3]}
}

// Neg returns -v.
func (v Vec4) Neg() Vec4 { return Vec4{-v[0], -v[1], -v[2], -v[3]} }

// Scale returns k*v.
func (v Vec4) Scale(k float64) Vec4 {
	return Vec4{v[0] * k, v[1] * k, v[2] * k, v[3] * k}
}

// Div returns v/k.
func (v Vec4) Div(k float64) Vec4 {
	return Vec4{v[0] / k, v[1] / k, v[2] / k, v[3] / k}
}

// Dot returns the inner product v · w.
func (v Vec4) Dot(w Vec4) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] + v[3]*w[3]
}

// Cross returns the 4-D ternary cross product of u, v, and w: the vector
// orthogonal to all three, with magnitude equal to the volume of the
// parallelepiped they span.
func Cross4(u, v, w Vec4) Vec4 {
	// 2x2 minors of the lower three rows of [u; v; w].
	a := v[0]*w[1] - v[1]*w[0]
	b := v[0]*w[2] - v[2]*w[0]
	c := v[0]*w[3] - v[3]*w[0]
	d := v[1]*w[2] - v[2]*w[1]
	e := v[1]*w[3] - v[3]*w[1]
	f := v[2]*w[3] - v[3]*w[2]

	return Vec4{
		u[1]*f - u[2]*e + u[3]*d,
		-u[0]*f + u[2]*c - u[3]*b,
		u[0]*e - u[1]*c + u[3]*a,
		-u[0]*d + u[1]*b - u[2]*a,
	}
}

// Vec2 truncates to 2-D, dropping the trailing components.
func (v Vec4) Vec2() Vec2 { return Vec2{v[0], v[1]} }

// Vec3 truncates to 3-D, dropping the trailing component.
func (v Vec4) Vec3() Vec3 { return Vec3{v[0], v[1], v[2]} }

// VecN converts to a dynamic vector of size 4.
func (v Vec4) VecN() *VecN {
	return &VecN{data: []float64{v[0], v[1], v[2], v[3]}}
}
