// Package geomath: RQ decomposition adapter (Dgerqf/Dorgr2).

package geomath

// RQ decomposes the m×n matrix a into an upper-trapezoidal R and a
// row-orthonormal Q with A = R·Q. a is unchanged.
//
// The factored layout differs by shape, and both extraction branches
// matter:
//
//   - m ≤ n: R is the m×m upper triangle sitting in the last m columns
//     of the factored array; the whole array doubles as the reflector
//     block, which expands into the m×n Q.
//   - m > n: R is the m×n upper trapezoid on and above the (m-n)-th
//     subdiagonal; only the last n rows hold reflectors, and they expand
//     into the n×n Q.
func RQ(a *MatN) (r, q *MatN, err error) {
	if a == nil {
		return nil, nil, ErrNilOperand
	}
	m, n := a.r, a.c
	k := min(m, n)

	fa := a.Clone()
	tau := make([]float64, k)

	work := allocWork(func(work []float64, lwork int) {
		lapackImpl.Dgerqf(m, n, fa.data, n, tau, work, lwork)
	})
	lapackImpl.Dgerqf(m, n, fa.data, n, tau, work, len(work))

	if m <= n {
		// R: m×m upper triangle from columns n-m..n-1.
		r = &MatN{r: m, c: m, data: make([]float64, m*m)}
		for i := 0; i < m; i++ {
			for j := i; j < m; j++ {
				r.data[i*m+j] = fa.data[i*n+(n-m+j)]
			}
		}

		// Q: expand all m reflector rows into the m×n factor. The
		// unblocked generator takes a fixed m-length workspace, no size
		// query.
		lapackImpl.Dorgr2(m, n, m, fa.data, n, tau, make([]float64, m))

		return r, fa, nil
	}

	// m > n. R: entries with j >= i-(m-n) form the upper trapezoid.
	r = &MatN{r: m, c: n, data: make([]float64, m*n)}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if j >= i-(m-n) {
				r.data[i*n+j] = fa.data[i*n+j]
			}
		}
	}

	// Q: the reflectors live in the last n rows; expand them into n×n.
	qd := make([]float64, n*n)
	copy(qd, fa.data[(m-n)*n:])
	lapackImpl.Dorgr2(n, n, n, qd, n, tau, make([]float64, n))

	return r, &MatN{r: n, c: n, data: qd}, nil
}
