// Package geomath: numeric policy constants and small scalar helpers.
// Kept package-level (no configuration surface): every algorithm in the
// package reads the same policy, which keeps results reproducible.

package geomath

import "math"

// Numeric policy constants.
const (
	// Pi2 is 2π, HalfPi is π/2; math.Pi covers π itself.
	Pi2    = 2 * math.Pi
	HalfPi = math.Pi / 2

	// DegToRad and RadToDeg convert between degrees and radians.
	DegToRad = math.Pi / 180
	RadToDeg = 180 / math.Pi

	// Epsilon is the threshold under which a norm is considered
	// degenerate; Epsilon2 is its square, for squared-norm tests.
	Epsilon  = 1.0e-6
	Epsilon2 = 1.0e-12
)

// IsZero reports whether |a| < Epsilon.
func IsZero(a float64) bool {
	return math.Abs(a) < Epsilon
}

// Sgn returns the sign of a: +1, -1, or 0.
func Sgn(a float64) int {
	switch {
	case a > 0:
		return 1
	case a < 0:
		return -1
	default:
		return 0
	}
}

// Clip clamps a to the closed interval [lo, hi].
func Clip(a, lo, hi float64) float64 {
	if a < lo {
		return lo
	}
	if a > hi {
		return hi
	}

	return a
}
