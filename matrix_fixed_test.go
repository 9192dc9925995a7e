package geomath_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valtherin/geomath"
)

func TestMat3_TransposeInvolution(t *testing.T) {
	m := geomath.Mat3{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	require.Equal(t, m, m.Transpose().Transpose()) // (Aᵀ)ᵀ == A, exactly
}

func TestMat3_MulAndIdentity(t *testing.T) {
	m := geomath.Mat3{
		1, 2, 3,
		4, 5, 6,
		7, 8, 10,
	}
	id := geomath.Identity3()
	require.Equal(t, m, m.Mul(id)) // A·I == A
	require.Equal(t, m, id.Mul(m)) // I·A == A

	// Hand-checked 2x2 block inside a 3x3 product.
	a := geomath.Mat3{
		1, 2, 0,
		3, 4, 0,
		0, 0, 1,
	}
	b := geomath.Mat3{
		5, 6, 0,
		7, 8, 0,
		0, 0, 1,
	}
	want := geomath.Mat3{
		19, 22, 0,
		43, 50, 0,
		0, 0, 1,
	}
	require.Equal(t, want, a.Mul(b))
}

func TestMat3_DetAndInverse(t *testing.T) {
	m := geomath.Mat3{
		1, 2, 3,
		4, 5, 6,
		7, 8, 10,
	}
	require.InDelta(t, -3.0, m.Det(), tol) // nonzero, invertible

	inv, err := m.Inverse()
	require.NoError(t, err)
	prod := m.Mul(inv)
	id := geomath.Identity3()
	for i := range prod {
		require.InDelta(t, id[i], prod[i], tol) // A·A⁻¹ ≈ I
	}

	// A rank-deficient matrix is rejected.
	sing := geomath.Mat3{
		1, 2, 3,
		2, 4, 6,
		3, 6, 9,
	}
	_, err = sing.Inverse()
	require.ErrorIs(t, err, geomath.ErrSingular)
}

func TestMat3_VectorProducts(t *testing.T) {
	m := geomath.Mat3{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	u := geomath.Vec3{1, 1, 1}
	require.Equal(t, geomath.Vec3{6, 15, 24}, m.MulVec(u))  // row sums
	require.Equal(t, geomath.Vec3{12, 15, 18}, u.MulMat3(m)) // column sums

	// MulVec2 treats m as a homogeneous 2-D transform.
	tr := geomath.Mat3{
		1, 0, 10,
		0, 1, 20,
		0, 0, 1,
	}
	require.Equal(t, geomath.Vec2{13, 24}, tr.MulVec2(geomath.Vec2{3, 4})) // translation
}

func TestMat3_OuterProduct(t *testing.T) {
	u := geomath.Vec3{1, 2, 3}
	v := geomath.Vec3{4, 5, 6}
	out := geomath.OuterProduct3(u, v)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			x, err := out.At(r, c)
			require.NoError(t, err)
			require.Equal(t, u[r]*v[c], x) // (u·vᵀ)[r][c] == u[r]*v[c]
		}
	}
}

func TestMat3_Mat4Cast(t *testing.T) {
	m := geomath.Mat3{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	want := geomath.Mat4{
		1, 2, 3, 0,
		4, 5, 6, 0,
		7, 8, 9, 0,
		0, 0, 0, 1, // homogeneous identity extension
	}
	require.Equal(t, want, m.Mat4())
	require.Equal(t, m, m.Mat4().Mat3()) // round trip drops the padding
}

func TestMat4_DetAndInverse(t *testing.T) {
	// det of a diagonal matrix is the diagonal product.
	d := geomath.Mat4{
		2, 0, 0, 0,
		0, 3, 0, 0,
		0, 0, 4, 0,
		0, 0, 0, 5,
	}
	require.InDelta(t, 120.0, d.Det(), tol)

	// An affine transform inverts back to the identity.
	s, c := math.Sincos(0.3)
	m := geomath.Mat4{
		c, -s, 0, 2,
		s, c, 0, -1,
		0, 0, 1, 5,
		0, 0, 0, 1,
	}
	inv, err := m.Inverse()
	require.NoError(t, err)
	prod := m.Mul(inv)
	id := geomath.Identity4()
	for i := range prod {
		require.InDelta(t, id[i], prod[i], tol)
	}

	// Singular input is rejected.
	var zero geomath.Mat4
	_, err = zero.Inverse()
	require.ErrorIs(t, err, geomath.ErrSingular)
}

func TestMat4_HomogeneousTransform(t *testing.T) {
	tr := geomath.Mat4{
		1, 0, 0, 10,
		0, 1, 0, 20,
		0, 0, 1, 30,
		0, 0, 0, 1,
	}
	require.Equal(t, geomath.Vec3{11, 22, 33}, tr.MulVec3(geomath.Vec3{1, 2, 3})) // point translation

	u := geomath.Vec4{1, 2, 3, 1}
	require.Equal(t, geomath.Vec4{11, 22, 33, 1}, tr.MulVec(u))
}

func TestMatN_FixedCasts(t *testing.T) {
	m := mustMatN(t, []float64{
		1, 2,
		3, 4,
	}, 2, 2)

	// Growing into 3x3 zero-pads; no homogeneous extension for MatN.
	want3 := geomath.Mat3{
		1, 2, 0,
		3, 4, 0,
		0, 0, 0,
	}
	require.Equal(t, want3, m.Mat3())

	// Shrinking from 4x4 keeps the upper-left block.
	big := mustMatN(t, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}, 4, 4)
	want := geomath.Mat3{
		1, 2, 3,
		5, 6, 7,
		9, 10, 11,
	}
	require.Equal(t, want, big.Mat3())
}
