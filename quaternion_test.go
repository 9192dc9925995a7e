package geomath_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valtherin/geomath"
)

// requireSameRotation asserts q and r encode the same rotation, honoring
// the q ≡ -q double cover.
func requireSameRotation(t *testing.T, q, r geomath.Quat, delta float64) {
	t.Helper()
	if q.Dot(r) < 0 {
		r = r.Neg()
	}
	for i := range q {
		require.InDelta(t, q[i], r[i], delta, "component %d", i)
	}
}

func TestQuatAxisAngle(t *testing.T) {
	q := geomath.QuatAxisAngle(geomath.Vec3{0, 0, 1}, geomath.HalfPi)
	require.InDelta(t, 1.0, q.Norm(), tol) // unit by construction

	// Axis and angle are recoverable.
	axis := q.Axis()
	require.InDelta(t, 0, axis[0], tol)
	require.InDelta(t, 0, axis[1], tol)
	require.InDelta(t, 1, axis[2], tol)
	require.InDelta(t, geomath.HalfPi, q.Angle(), tol)

	// A degenerate axis yields the identity.
	require.Equal(t, geomath.QuatIdentity(), geomath.QuatAxisAngle(geomath.Vec3{}, 1.0))
}

func TestQuat_RotateMatchesMatrix(t *testing.T) {
	q := geomath.QuatAxisAngle(geomath.Vec3{1, 2, 3}, 0.7)
	m := q.Mat3()
	u := geomath.Vec3{4, -5, 6}

	rq := q.Rotate(u)
	rm := m.MulVec(u)
	for i := range rq {
		require.InDelta(t, rm[i], rq[i], tol) // sandwich product == matrix product
	}

	// Rotation preserves length.
	require.InDelta(t, u.Norm(), rq.Norm(), tol)
}

func TestQuat_Mat3RoundTrip(t *testing.T) {
	// A spread of axes and angles exercising all four extraction branches.
	cases := []struct {
		axis  geomath.Vec3
		angle float64
	}{
		{geomath.Vec3{0, 0, 1}, geomath.HalfPi},
		{geomath.Vec3{1, 0, 0}, math.Pi - 0.01}, // near-π: xx branch
		{geomath.Vec3{0, 1, 0}, math.Pi - 0.01}, // near-π: yy branch
		{geomath.Vec3{0, 0, 1}, math.Pi - 0.01}, // near-π: zz branch
		{geomath.Vec3{1, 1, 1}, 2.0},
		{geomath.Vec3{-1, 2, 0.5}, 0.3},
		{geomath.Vec3{1, 0, 0}, 0},
	}
	for _, tc := range cases {
		q := geomath.QuatAxisAngle(tc.axis, tc.angle)
		back := geomath.QuatFromMat3(q.Mat3())
		requireSameRotation(t, q, back, tol)
	}
}

func TestQuat_Mat4RoundTrip(t *testing.T) {
	q := geomath.QuatAxisAngle(geomath.Vec3{2, -1, 1}, 1.2)
	m := q.Mat4()

	// The homogeneous extension is the identity row/column.
	require.Equal(t, 1.0, m[15])
	require.Equal(t, 0.0, m[3])
	require.Equal(t, 0.0, m[12])

	back := geomath.QuatFromMat4(m)
	requireSameRotation(t, q, back, tol)
}

func TestQuat_KnownRotationMatrix(t *testing.T) {
	// 90° about z maps x to y.
	q := geomath.QuatAxisAngle(geomath.Vec3{0, 0, 1}, geomath.HalfPi)
	m := q.Mat3()
	want := geomath.Mat3{
		0, -1, 0,
		1, 0, 0,
		0, 0, 1,
	}
	for i := range m {
		require.InDelta(t, want[i], m[i], tol)
	}
}

func TestQuat_MulComposesRotations(t *testing.T) {
	qz := geomath.QuatAxisAngle(geomath.Vec3{0, 0, 1}, geomath.HalfPi)
	qx := geomath.QuatAxisAngle(geomath.Vec3{1, 0, 0}, geomath.HalfPi)

	// q·r applies r first: matrix product in the same order.
	composed := qz.Mul(qx).Mat3()
	expected := qz.Mat3().Mul(qx.Mat3())
	for i := range composed {
		require.InDelta(t, expected[i], composed[i], tol)
	}
}

func TestQuat_InverseAndConjugate(t *testing.T) {
	q := geomath.QuatAxisAngle(geomath.Vec3{1, 2, -1}, 0.9)

	inv, err := q.Inverse()
	require.NoError(t, err)
	prod := q.Mul(inv)
	requireSameRotation(t, geomath.QuatIdentity(), prod, tol)

	// For a unit quaternion the inverse is the conjugate.
	conj := q.Conjugate()
	for i := range inv {
		require.InDelta(t, conj[i], inv[i], tol)
	}

	_, err = geomath.Quat{}.Inverse()
	require.ErrorIs(t, err, geomath.ErrDegenerateVector)
}

func TestQuat_Slerp(t *testing.T) {
	q := geomath.QuatIdentity()
	r := geomath.QuatAxisAngle(geomath.Vec3{0, 0, 1}, geomath.HalfPi)

	// Endpoints are reproduced.
	requireSameRotation(t, q, geomath.Slerp(q, r, 0), tol)
	requireSameRotation(t, r, geomath.Slerp(q, r, 1), tol)

	// The midpoint is the half-angle rotation.
	mid := geomath.Slerp(q, r, 0.5)
	want := geomath.QuatAxisAngle(geomath.Vec3{0, 0, 1}, geomath.HalfPi/2)
	requireSameRotation(t, want, mid, tol)

	// Antipodal representation takes the short arc, not the long way.
	mid2 := geomath.Slerp(q, r.Neg(), 0.5)
	requireSameRotation(t, want, mid2, tol)

	// Nearly parallel endpoints fall back to lerp without blowing up.
	near := geomath.QuatAxisAngle(geomath.Vec3{0, 0, 1}, 1e-9)
	out := geomath.Slerp(q, near, 0.5)
	require.InDelta(t, 1.0, out.Norm(), tol)
}

func TestQuat_EulerAngles(t *testing.T) {
	// Pure yaw.
	q := geomath.QuatAxisAngle(geomath.Vec3{0, 0, 1}, 0.6)
	phi, theta, psi := q.EulerAngles()
	require.InDelta(t, 0, phi, tol)
	require.InDelta(t, 0, theta, tol)
	require.InDelta(t, 0.6, psi, tol)

	// Pure roll.
	q = geomath.QuatAxisAngle(geomath.Vec3{1, 0, 0}, -0.4)
	phi, theta, psi = q.EulerAngles()
	require.InDelta(t, -0.4, phi, tol)
	require.InDelta(t, 0, theta, tol)
	require.InDelta(t, 0, psi, tol)

	// Pure pitch.
	q = geomath.QuatAxisAngle(geomath.Vec3{0, 1, 0}, 0.8)
	_, theta, _ = q.EulerAngles()
	require.InDelta(t, 0.8, theta, tol)
}

func TestQuatBetween(t *testing.T) {
	u := geomath.Vec3{1, 0, 0}
	v := geomath.Vec3{0, 5, 0} // magnitude must not matter

	q := geomath.QuatBetween(u, v)
	got := q.Rotate(u)
	require.InDelta(t, 0, got[0], tol)
	require.InDelta(t, 1, got[1], tol) // u carried onto v's direction
	require.InDelta(t, 0, got[2], tol)

	// Degenerate input yields the identity.
	require.Equal(t, geomath.QuatIdentity(), geomath.QuatBetween(geomath.Vec3{}, v))
}

func TestQuat_NormalizeAndDistance(t *testing.T) {
	q := geomath.Quat{2, 0, 0, 0}
	require.NoError(t, q.Normalize())
	require.InDelta(t, 1.0, q.Norm(), tol)

	z := geomath.Quat{}
	require.ErrorIs(t, z.Normalize(), geomath.ErrDegenerateVector)

	require.InDelta(t, 2.0,
		geomath.Distance(geomath.Quat{1, 0, 0, 0}, geomath.Quat{-1, 0, 0, 0}), tol)
}
