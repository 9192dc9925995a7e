// Package geomath: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on a data-dependent condition;
// panics are reserved for programmer errors (invalid indices passed to
// SwapRows/SwapCols).

package geomath

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "geomath: ..." for consistency and to
// allow easy grepping across logs. Do not %w-wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("Op: %w", ErrX) at the facade — callers still match with
// errors.Is.

var (
	// ErrBadShape is returned when a requested dimension is invalid
	// (rows <= 0 or cols <= 0). Constructors and Resize validate before
	// allocating.
	ErrBadShape = errors.New("geomath: dimensions must be > 0")

	// ErrOutOfRange indicates that an element, row, column, or diagonal
	// index is outside valid bounds. Public indexers (At/Set) return this
	// rather than panicking.
	ErrOutOfRange = errors.New("geomath: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g.
	// Add/Sub on different sizes or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("geomath: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the
	// input was rectangular (Identity, determinants, eliminators).
	ErrNonSquare = errors.New("geomath: matrix is not square")

	// ErrNilOperand indicates that a nil *MatN/*VecN (or nil interface)
	// was passed where a value is required.
	ErrNilOperand = errors.New("geomath: nil operand")

	// ErrSingular is returned when an exactly zero pivot is encountered
	// by the tridiagonal solver or either eliminator, and by the LU
	// decomposition when a diagonal factor is exactly zero. The exact-zero
	// test is intentional: near-singular systems produce round-off, not
	// an error, keeping failure deterministic for a fixed input.
	ErrSingular = errors.New("geomath: singular matrix")

	// ErrNotPositiveDefinite is returned by the Cholesky decomposition
	// when the input matrix is not symmetric positive definite.
	ErrNotPositiveDefinite = errors.New("geomath: matrix is not positive definite")

	// ErrConvergence is returned by the eigendecomposition and SVD
	// adapters when the underlying iteration fails to converge.
	ErrConvergence = errors.New("geomath: iteration failed to converge")

	// ErrIllegalArgument marks malformed factorization input (wrong
	// shape for the requested operation, e.g. QR with m < n or an
	// economy SVD of a wide matrix).
	ErrIllegalArgument = errors.New("geomath: illegal argument")

	// ErrDegenerateVector is returned by Normalize when the norm is
	// below Epsilon; the receiver is left unmodified.
	ErrDegenerateVector = errors.New("geomath: vector norm below epsilon")
)
