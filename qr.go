// Package geomath: QR decomposition adapter (Dgeqrf/Dorgqr).

package geomath

// QR decomposes the m×n matrix a (m ≥ n) into an orthonormal m×n Q and
// an upper-triangular n×n R with A = Q·R. a is unchanged.
//
// The factorization first reduces a to the compact reflector form, then
// expands the economy Q from the elementary reflectors. Fails with
// ErrIllegalArgument when m < n.
func QR(a *MatN) (q, r *MatN, err error) {
	if a == nil {
		return nil, nil, ErrNilOperand
	}
	m, n := a.r, a.c
	if m < n {
		return nil, nil, opErrorf("QR", ErrIllegalArgument)
	}

	fa := a.Clone()
	tau := make([]float64, n)

	// Reduce to reflectors + R.
	work := allocWork(func(work []float64, lwork int) {
		lapackImpl.Dgeqrf(m, n, fa.data, n, tau, work, lwork)
	})
	lapackImpl.Dgeqrf(m, n, fa.data, n, tau, work, len(work))

	// R is the upper triangle of the leading n rows.
	r = &MatN{r: n, c: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			r.data[i*n+j] = fa.data[i*n+j]
		}
	}

	// Expand the economy Q (m×n, orthonormal columns) in place.
	work = allocWork(func(work []float64, lwork int) {
		lapackImpl.Dorgqr(m, n, n, fa.data, n, tau, work, lwork)
	})
	lapackImpl.Dorgqr(m, n, n, fa.data, n, tau, work, len(work))

	return fa, r, nil
}
