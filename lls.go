// Package geomath: linear least squares.

package geomath

// LeastSquares computes the X (n×p) minimizing ‖D·X − B‖ for D (m×n,
// typically m ≥ n) and B (m×p), by forming the normal equations
// A = DᵀD, rhs = DᵀB and solving with GaussJordan. x is resized as
// needed; d and b are unchanged.
//
// Tradeoff: the normal equations square the condition number of the
// system. That is acceptable for the fitting precision this package
// targets; callers needing higher accuracy on ill-conditioned systems
// should orthogonalize with QR and back-substitute instead.
//
// Fails with ErrDimensionMismatch on incompatible shapes and
// ErrSingular when DᵀD is singular (rank-deficient D).
func LeastSquares(d, b, x *MatN) error {
	if d == nil || b == nil || x == nil {
		return ErrNilOperand
	}
	if d.r != b.r {
		return opErrorf("LeastSquares", ErrDimensionMismatch)
	}

	dt := d.Transpose()
	a, err := dt.Mul(d) // n×n normal matrix
	if err != nil {
		return opErrorf("LeastSquares", err)
	}
	rhs, err := dt.Mul(b) // n×p projected RHS
	if err != nil {
		return opErrorf("LeastSquares", err)
	}

	return GaussJordan(a, rhs, x)
}
