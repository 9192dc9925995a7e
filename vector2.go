// Package geomath: 2-D fixed vector.

package geomath

import "math"

// Vec2 is a 2-D vector, stack-resident with exact == equality.
type Vec2 [2]float64

// Size returns the number of components (2).
func (v *Vec2) Size() int { return 2 }

// At retrieves component i, or ErrOutOfRange.
func (v *Vec2) At(i int) (float64, error) {
	if i < 0 || i >= 2 {
		return 0, ErrOutOfRange
	}

	return v[i], nil
}

// Set assigns component i, or returns ErrOutOfRange.
func (v *Vec2) Set(i int, x float64) error {
	if i < 0 || i >= 2 {
		return ErrOutOfRange
	}
	v[i] = x

	return nil
}

// Norm2 returns the squared norm.
func (v Vec2) Norm2() float64 { return v[0]*v[0] + v[1]*v[1] }

// Norm returns the Euclidean norm.
func (v Vec2) Norm() float64 { return math.Sqrt(v.Norm2()) }

// Normalize scales v in place to unit norm. When the norm is below
// Epsilon it returns ErrDegenerateVector and leaves v unmodified.
func (v *Vec2) Normalize() error {
	n := v.Norm()
	if n < Epsilon {
		return ErrDegenerateVector
	}
	v[0] /= n
	v[1] /= n

	return nil
}

// Clear zeroes all components in place.
func (v *Vec2) Clear() { *v = Vec2{} }

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v[0] + w[0], v[1] + w[1]} }

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v[0] - w[0], v[1] - w[1]} }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return Vec2{-v[0], -v[1]} }

// Scale returns k*v.
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v[0] * k, v[1] * k} }

// Div returns v/k.
func (v Vec2) Div(k float64) Vec2 { return Vec2{v[0] / k, v[1] / k} }

// Dot returns the inner product v · w.
func (v Vec2) Dot(w Vec2) float64 { return v[0]*w[0] + v[1]*w[1] }

// Vec3 expands to 3-D, zero-padding the trailing component.
func (v Vec2) Vec3() Vec3 { return Vec3{v[0], v[1], 0} }

// Vec4 expands to 4-D, zero-padding the trailing components.
func (v Vec2) Vec4() Vec4 { return Vec4{v[0], v[1], 0, 0} }

// VecN converts to a dynamic vector of size 2.
func (v Vec2) VecN() *VecN { return &VecN{data: []float64{v[0], v[1]}} }
