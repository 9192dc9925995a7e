package geomath_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valtherin/geomath"
)

func TestRQ_WideInput(t *testing.T) {
	// m < n: R is m×m, Q is m×n with orthonormal rows.
	a := mustMatN(t, []float64{
		1, 2, 3,
		4, 5, 7,
	}, 2, 3)
	orig := a.Clone()

	r, q, err := geomath.RQ(a)
	require.NoError(t, err)
	require.True(t, a.Equal(orig)) // input untouched

	require.Equal(t, 2, r.Rows())
	require.Equal(t, 2, r.Cols())
	require.Equal(t, 2, q.Rows())
	require.Equal(t, 3, q.Cols())

	// R is upper triangular.
	x, err := r.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, x)

	// Q·Qᵀ = I (orthonormal rows).
	qqt, err := q.Mul(q.Transpose())
	require.NoError(t, err)
	requireIdentityInDelta(t, qqt, tol)

	// R·Q reassembles A.
	back, err := r.Mul(q)
	require.NoError(t, err)
	requireMatInDelta(t, orig, back, tol)
}

func TestRQ_SquareInput(t *testing.T) {
	a := mustMatN(t, []float64{
		1, 2, 0,
		3, 4, 5,
		0, 6, 7,
	}, 3, 3)

	r, q, err := geomath.RQ(a)
	require.NoError(t, err)

	back, err := r.Mul(q)
	require.NoError(t, err)
	requireMatInDelta(t, a, back, tol)

	qqt, err := q.Mul(q.Transpose())
	require.NoError(t, err)
	requireIdentityInDelta(t, qqt, tol)
}

func TestRQ_TallInput(t *testing.T) {
	// m > n: R is the m×n upper trapezoid, Q is n×n.
	a := mustMatN(t, []float64{
		1, 2,
		3, 4,
		5, 7,
	}, 3, 2)
	orig := a.Clone()

	r, q, err := geomath.RQ(a)
	require.NoError(t, err)

	require.Equal(t, 3, r.Rows())
	require.Equal(t, 2, r.Cols())
	require.Equal(t, 2, q.Rows())
	require.Equal(t, 2, q.Cols())

	// Entries below the trapezoid boundary are zero: row i has zeros in
	// columns j < i-(m-n).
	x, err := r.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, x)

	qqt, err := q.Mul(q.Transpose())
	require.NoError(t, err)
	requireIdentityInDelta(t, qqt, tol)

	back, err := r.Mul(q)
	require.NoError(t, err)
	requireMatInDelta(t, orig, back, tol)
}

func TestRQ_NilOperand(t *testing.T) {
	_, _, err := geomath.RQ(nil)
	require.ErrorIs(t, err, geomath.ErrNilOperand)
}
