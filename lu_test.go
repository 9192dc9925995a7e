package geomath_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valtherin/geomath"
)

func TestLUDecompose_SolveRoundTrip(t *testing.T) {
	vals := []float64{
		2, 1, 1,
		4, -6, 0,
		-2, 7, 2,
	}
	a := mustMatN(t, vals, 3, 3)
	orig := mustMatN(t, vals, 3, 3)

	ipiv, _, err := geomath.LUDecompose(a)
	require.NoError(t, err)
	require.Len(t, ipiv, 3)

	// Solve A·x = b through the factors and verify the residual.
	b := mustVecN(t, 5, -2, 9)
	x := b.Clone()
	require.NoError(t, geomath.LUSolveVec(a, ipiv, x))

	ax, err := orig.MulVec(x)
	require.NoError(t, err)
	requireVecInDelta(t, b, ax, tol)
}

func TestLUSolve_MultipleRHS(t *testing.T) {
	vals := []float64{
		4, 3,
		6, 3,
	}
	a := mustMatN(t, vals, 2, 2)
	orig := mustMatN(t, vals, 2, 2)

	ipiv, _, err := geomath.LUDecompose(a)
	require.NoError(t, err)

	// Solving against the identity produces the inverse.
	b, err := geomath.NewIdentityN(2)
	require.NoError(t, err)
	require.NoError(t, geomath.LUSolve(a, ipiv, b))

	prod, err := orig.Mul(b)
	require.NoError(t, err)
	requireIdentityInDelta(t, prod, tol)
}

func TestLUDecompose_DeterminantFromFactors(t *testing.T) {
	vals := []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 10,
	}
	a := mustMatN(t, vals, 3, 3)

	_, parity, err := geomath.LUDecompose(a)
	require.NoError(t, err)

	// parity × diagonal product of U recovers det(A) = -3.
	d := parity
	for i := 0; i < 3; i++ {
		u, err := a.At(i, i)
		require.NoError(t, err)
		d *= u
	}
	require.InDelta(t, -3.0, d, tol)
}

func TestLUDecompose_Singular(t *testing.T) {
	a := mustMatN(t, []float64{
		1, 2,
		2, 4,
	}, 2, 2)
	ipiv, _, err := geomath.LUDecompose(a)
	require.ErrorIs(t, err, geomath.ErrSingular)
	require.Len(t, ipiv, 2) // the factors computed so far are still returned
}

func TestLU_Rejections(t *testing.T) {
	rect := mustMatN(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
	_, _, err := geomath.LUDecompose(rect)
	require.ErrorIs(t, err, geomath.ErrIllegalArgument)

	sq := mustMatN(t, []float64{2, 0, 0, 2}, 2, 2)
	ipiv, _, err := geomath.LUDecompose(sq)
	require.NoError(t, err)

	// Pivot array and RHS shapes are validated.
	b := mustMatN(t, []float64{1, 2, 3}, 3, 1)
	require.ErrorIs(t, geomath.LUSolve(sq, ipiv, b), geomath.ErrDimensionMismatch)
	require.ErrorIs(t, geomath.LUSolve(sq, []int{0}, mustMatN(t, []float64{1, 2}, 2, 1)),
		geomath.ErrDimensionMismatch)

	v := mustVecN(t, 1, 2, 3)
	require.ErrorIs(t, geomath.LUSolveVec(sq, ipiv, v), geomath.ErrDimensionMismatch)
}
