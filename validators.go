// Package geomath: centralized validators.
// Every kernel validates through these helpers so that identical
// conditions always surface the same sentinel. Validators return plain
// sentinels; facades add operation context via opErrorf.

package geomath

import "fmt"

// opErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is. Call only with a non-nil err.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// validateShape rejects non-positive dimensions.
func validateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrBadShape
	}

	return nil
}

// validateMat rejects a nil matrix operand.
func validateMat(a Mat) error {
	if a == nil {
		return ErrNilOperand
	}

	return nil
}

// validateVec rejects a nil vector operand.
func validateVec(u Vec) error {
	if u == nil {
		return ErrNilOperand
	}

	return nil
}

// validateMatN rejects a nil *MatN.
func validateMatN(a *MatN) error {
	if a == nil {
		return ErrNilOperand
	}

	return nil
}

// validateVecN rejects a nil *VecN.
func validateVecN(u *VecN) error {
	if u == nil {
		return ErrNilOperand
	}

	return nil
}

// validateSameShape requires two conformable dynamic matrices.
func validateSameShape(a, b *MatN) error {
	if a == nil || b == nil {
		return ErrNilOperand
	}
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}
