// Package geomath: singular value decomposition adapter (Dgesvd).

package geomath

import "gonum.org/v1/gonum/lapack"

// SVD decomposes the m×n matrix a into A = U·diag(S)·Vᵀ. a is consumed:
// the decomposition destroys its contents.
//
// s holds the min(m,n) singular values, non-negative and descending.
// vt is Vᵀ — the transpose of V, not V itself. In full mode u is m×m
// and vt n×n. Economy mode (econ = true), valid only for m ≥ n,
// produces the reduced m×n u instead; vt stays n×n.
//
// To embed s as a diagonal matrix, allocate the target shape and use
// SetDiag(s, target, 0).
//
// Fails with ErrIllegalArgument for an economy request with m < n and
// with ErrConvergence when the underlying iteration does not converge;
// on failure the outputs are unspecified.
func SVD(a *MatN, econ bool) (u *MatN, s *VecN, vt *MatN, err error) {
	if a == nil {
		return nil, nil, nil, ErrNilOperand
	}
	m, n := a.r, a.c
	if econ && m < n {
		return nil, nil, nil, opErrorf("SVD", ErrIllegalArgument)
	}
	minmn := min(m, n)

	vals := make([]float64, minmn)
	vt = &MatN{r: n, c: n, data: make([]float64, n*n)}

	job := lapack.SVDAll
	ucols := m
	if econ {
		job = lapack.SVDStore // reduced factors
		ucols = n
	}
	u = &MatN{r: m, c: ucols, data: make([]float64, m*ucols)}

	work := allocWork(func(work []float64, lwork int) {
		lapackImpl.Dgesvd(job, job, m, n, a.data, n,
			vals, u.data, ucols, vt.data, n, work, lwork)
	})
	ok := lapackImpl.Dgesvd(job, job, m, n, a.data, n,
		vals, u.data, ucols, vt.data, n, work, len(work))
	if !ok {
		return nil, nil, nil, opErrorf("SVD", ErrConvergence)
	}

	return u, &VecN{data: vals}, vt, nil
}
