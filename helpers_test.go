// Package geomath_test: shared helpers for the test suite.
package geomath_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valtherin/geomath"
)

// tol is the relative/absolute tolerance for well-conditioned solves.
const tol = 1e-9

// mustMatN builds a matrix from row-major values, failing the test on a
// construction error.
func mustMatN(t *testing.T, values []float64, rows, cols int) *geomath.MatN {
	t.Helper()
	m, err := geomath.NewMatNFrom(values, rows, cols)
	require.NoError(t, err)

	return m
}

// mustVecN builds a vector from components, failing the test on a
// construction error.
func mustVecN(t *testing.T, values ...float64) *geomath.VecN {
	t.Helper()
	v, err := geomath.NewVecNFrom(values...)
	require.NoError(t, err)

	return v
}

// requireMatInDelta asserts element-wise equality of two matrices within
// delta.
func requireMatInDelta(t *testing.T, want, got *geomath.MatN, delta float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, err := want.At(i, j)
			require.NoError(t, err)
			g, err := got.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, w, g, delta, "element (%d,%d)", i, j)
		}
	}
}

// requireVecInDelta asserts component-wise equality of two vectors
// within delta.
func requireVecInDelta(t *testing.T, want, got *geomath.VecN, delta float64) {
	t.Helper()
	require.Equal(t, want.Size(), got.Size())
	for i := 0; i < want.Size(); i++ {
		w, err := want.At(i)
		require.NoError(t, err)
		g, err := got.At(i)
		require.NoError(t, err)
		require.InDelta(t, w, g, delta, "component %d", i)
	}
}

// requireIdentityInDelta asserts that m approximates the identity.
func requireIdentityInDelta(t *testing.T, m *geomath.MatN, delta float64) {
	t.Helper()
	require.Equal(t, m.Rows(), m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.InDelta(t, want, v, delta, "element (%d,%d)", i, j)
		}
	}
}
