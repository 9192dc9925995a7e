// Package geomath: symmetric eigendecomposition adapter (Dsyev).

package geomath

import "gonum.org/v1/gonum/lapack"

// EigenSym decomposes the symmetric matrix a into eigenvalues and
// eigenvectors: w holds the eigenvalues in ascending order, and column
// j of v is the eigenvector for w[j], so A = V·diag(W)·Vᵀ. Only the
// upper triangle of a is read (the LAPACK convention); a is unchanged.
//
// Fails with ErrIllegalArgument for a non-square input and with
// ErrConvergence when the underlying iteration fails to converge, in
// which case the outputs are unspecified.
func EigenSym(a *MatN) (w *VecN, v *MatN, err error) {
	if a == nil {
		return nil, nil, ErrNilOperand
	}
	if a.r != a.c {
		return nil, nil, opErrorf("EigenSym", ErrIllegalArgument)
	}
	n := a.r

	v = a.Clone()
	vals := make([]float64, n)

	work := allocWork(func(work []float64, lwork int) {
		lapackImpl.Dsyev(lapack.EVCompute, upper, n, v.data, n, vals, work, lwork)
	})
	ok := lapackImpl.Dsyev(lapack.EVCompute, upper, n, v.data, n, vals, work, len(work))
	if !ok {
		return nil, nil, opErrorf("EigenSym", ErrConvergence)
	}

	return &VecN{data: vals}, v, nil
}
