// Package geomath: shared plumbing for the dense factorization adapters.
//
// The factorizations (LU, QR, RQ, Cholesky, symmetric eigen, SVD) cross
// into gonum's native LAPACK, which keeps the classic calling shape:
// flat buffers with explicit leading dimensions, ok/info status, and —
// for the blocked routines — a workspace-size query (lwork = -1)
// followed by allocate-and-call; unblocked routines such as the RQ
// Q-generator take a fixed-length workspace instead. That
// boundary stays inside these adapter files: no gonum type appears in
// any public signature, and the public contract remains the row-major
// MatN/VecN value types. gonum's LAPACK is row-major, so no storage
// transposition is needed on either side of a call.

package geomath

import (
	"gonum.org/v1/gonum/blas"
	lapackimpl "gonum.org/v1/gonum/lapack/gonum"
)

// lapackImpl is the pure-Go LAPACK implementation used by every adapter.
var lapackImpl = lapackimpl.Implementation{}

// Local aliases for the calling-convention constants the adapters use.
const (
	noTrans = blas.NoTrans
	upper   = blas.Upper
)

// allocWork performs the LAPACK workspace-size query for a blocked
// routine and allocates the optimal workspace: query must invoke the
// routine with the given (work, lwork) pair, and is called once with
// lwork = -1.
func allocWork(query func(work []float64, lwork int)) []float64 {
	probe := make([]float64, 1)
	query(probe, -1)

	return make([]float64, int(probe[0]))
}
