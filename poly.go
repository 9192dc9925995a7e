// Package geomath: real roots of quadratic and cubic polynomials.
// Coefficients are given in ascending power order: coef[i] multiplies
// x^i. Only real roots are returned, sorted ascending; a polynomial with
// no real roots yields an empty slice, not an error.

package geomath

import (
	"math"
	"sort"
)

// SolveQuadratic returns the real roots of
// coef[0] + coef[1]·x + coef[2]·x² = 0.
//
// A vanishing leading coefficient degrades gracefully to the linear
// case. The quadratic branch uses the cancellation-free form
// q = -(b + sgn(b)·√disc)/2 with roots q/a and c/q.
//
// Fails with ErrDimensionMismatch unless coef has exactly 3 components.
func SolveQuadratic(coef *VecN) ([]float64, error) {
	if coef == nil {
		return nil, ErrNilOperand
	}
	if coef.Size() != 3 {
		return nil, opErrorf("SolveQuadratic", ErrDimensionMismatch)
	}
	c, b, a := coef.data[0], coef.data[1], coef.data[2]

	if IsZero(a) {
		if IsZero(b) {
			return []float64{}, nil // constant: no roots
		}

		return []float64{-c / b}, nil
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return []float64{}, nil // complex pair
	}
	sq := math.Sqrt(disc)
	q := -0.5 * (b + math.Copysign(sq, b))

	var roots []float64
	if q == 0 {
		// b == 0 and disc == 0: double root at the origin scaled out.
		roots = []float64{0, 0}
	} else {
		roots = []float64{q / a, c / q}
	}
	sort.Float64s(roots)

	return roots, nil
}

// SolveCubic returns the real roots of
// coef[0] + coef[1]·x + coef[2]·x² + coef[3]·x³ = 0.
//
// A vanishing leading coefficient delegates to SolveQuadratic. The
// three-real-root case uses the trigonometric method; otherwise the
// single real root comes from the Cardano radicals.
//
// Fails with ErrDimensionMismatch unless coef has exactly 4 components.
func SolveCubic(coef *VecN) ([]float64, error) {
	if coef == nil {
		return nil, ErrNilOperand
	}
	if coef.Size() != 4 {
		return nil, opErrorf("SolveCubic", ErrDimensionMismatch)
	}
	if IsZero(coef.data[3]) {
		quad, err := NewVecNFrom(coef.data[0], coef.data[1], coef.data[2])
		if err != nil {
			return nil, err
		}

		return SolveQuadratic(quad)
	}

	// Normalize to x³ + a1·x² + a2·x + a3.
	inv := 1 / coef.data[3]
	a1 := coef.data[2] * inv
	a2 := coef.data[1] * inv
	a3 := coef.data[0] * inv

	q := (a1*a1 - 3*a2) / 9
	r := (2*a1*a1*a1 - 9*a1*a2 + 27*a3) / 54

	if r*r < q*q*q {
		// Three real roots.
		theta := math.Acos(r / math.Sqrt(q*q*q))
		roots := []float64{
			-2*math.Sqrt(q)*math.Cos(theta/3) - a1/3,
			-2*math.Sqrt(q)*math.Cos((theta+Pi2)/3) - a1/3,
			-2*math.Sqrt(q)*math.Cos((theta-Pi2)/3) - a1/3,
		}
		sort.Float64s(roots)

		return roots, nil
	}

	// One real root (the complex pair is discarded).
	big := -math.Copysign(math.Cbrt(math.Abs(r)+math.Sqrt(r*r-q*q*q)), r)
	var small float64
	if big != 0 {
		small = q / big
	}

	return []float64{big + small - a1/3}, nil
}
