// Package geomath: 3-D fixed vector.

package geomath

import "math"

// Vec3 is a 3-D vector, stack-resident with exact == equality.
type Vec3 [3]float64

// Size returns the number of components (3).
func (v *Vec3) Size() int { return 3 }

// At retrieves component i, or ErrOutOfRange.
func (v *Vec3) At(i int) (float64, error) {
	if i < 0 || i >= 3 {
		return 0, ErrOutOfRange
	}

	return v[i], nil
}

// Set assigns component i, or returns ErrOutOfRange.
func (v *Vec3) Set(i int, x float64) error {
	if i < 0 || i >= 3 {
		return ErrOutOfRange
	}
	v[i] = x

	return nil
}

// Norm2 returns the squared norm.
func (v Vec3) Norm2() float64 { return v[0]*v[0] + v[1]*v[1] + v[2]*v[2] }

// Norm returns the Euclidean norm.
func (v Vec3) Norm() float64 { return math.Sqrt(v.Norm2()) }

// Normalize scales v in place to unit norm. When the norm is below
// Epsilon it returns ErrDegenerateVector and leaves v unmodified.
func (v *Vec3) Normalize() error {
	n := v.Norm()
	if n < Epsilon {
		return ErrDegenerateVector
	}
	v[0] /= n
	v[1] /= n
	v[2] /= n

	return nil
}

// Clear zeroes all components in place.
func (v *Vec3) Clear() { *v = Vec3{} }

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]} }

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]} }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{-v[0], -v[1], -v[2]} }

// Scale returns k*v.
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v[0] * k, v[1] * k, v[2] * k} }

// Div returns v/k.
func (v Vec3) Div(k float64) Vec3 { return Vec3{v[0] / k, v[1] / k, v[2] / k} }

// Dot returns the inner product v · w.
func (v Vec3) Dot(w Vec3) float64 { return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] }

// Cross returns the cross product v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v[1]*w[2] - w[1]*v[2],
		v[2]*w[0] - w[2]*v[0],
		v[0]*w[1] - w[0]*v[1],
	}
}

// Vec2 truncates to 2-D, dropping the trailing component.
func (v Vec3) Vec2() Vec2 { return Vec2{v[0], v[1]} }

// Vec4 expands to 4-D, zero-padding the trailing component.
func (v Vec3) Vec4() Vec4 { return Vec4{v[0], v[1], v[2], 0} }

// VecN converts to a dynamic vector of size 3.
func (v Vec3) VecN() *VecN { return &VecN{data: []float64{v[0], v[1], v[2]}} }
