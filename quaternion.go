// Package geomath: quaternion rotations.
// A quaternion q = ix + jy + kz + w has an imaginary part (x,y,z)
// encoding the rotation axis and a real part w derived from the rotation
// angle. Callers should not interpret the raw components; use Axis,
// Angle, and the matrix conversions.

package geomath

import "math"

// Quat is a quaternion with components ordered (x, y, z, w).
type Quat [4]float64

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat { return Quat{0, 0, 0, 1} }

// QuatAxisAngle builds the rotation of angle radians about axis. The
// axis is normalized internally; a degenerate axis yields the identity.
func QuatAxisAngle(axis Vec3, angle float64) Quat {
	if err := axis.Normalize(); err != nil {
		return QuatIdentity()
	}
	s, c := math.Sincos(angle / 2)

	return Quat{axis[0] * s, axis[1] * s, axis[2] * s, c}
}

// QuatBetween builds the rotation carrying direction u onto direction v.
// Degenerate input (either vector near zero, or u and v anti-parallel
// with no unique axis) yields the identity.
func QuatBetween(u, v Vec3) Quat {
	if u.Normalize() != nil || v.Normalize() != nil {
		return QuatIdentity()
	}
	axis := u.Cross(v)
	angle := math.Acos(Clip(u.Dot(v), -1, 1))

	return QuatAxisAngle(axis, angle)
}

// QuatFromMat3 extracts the quaternion of a 3x3 rotation matrix.
//
// Four candidate scalar bases are computed from the diagonal: the
// trace-derived rr and the three diagonal-dominance terms xx, yy, zz.
// The branch with the largest basis is selected (ties resolved in order
// rr, xx, yy, zz — first maximum wins) so the division below never uses
// a near-zero quantity; the remaining components come from off-diagonal
// sums and differences.
func QuatFromMat3(m Mat3) Quat {
	// The extraction reads the transpose, matching the layout the
	// rendering side feeds in.
	r := m.Transpose()

	d0, d1, d2 := r[0], r[4], r[8]
	xx := 1.0 + d0 - d1 - d2
	yy := 1.0 - d0 + d1 - d2
	zz := 1.0 - d0 - d1 + d2
	rr := 1.0 + d0 + d1 + d2

	best := rr
	if xx > best {
		best = xx
	}
	if yy > best {
		best = yy
	}
	if zz > best {
		best = zz
	}

	var q Quat
	switch best {
	case rr:
		r4 := math.Sqrt(rr * 4.0)
		q[0] = (r[1*3+2] - r[2*3+1]) / r4
		q[1] = (r[2*3+0] - r[0*3+2]) / r4
		q[2] = (r[0*3+1] - r[1*3+0]) / r4
		q[3] = r4 / 4.0
	case xx:
		x4 := math.Sqrt(xx * 4.0)
		q[0] = x4 / 4.0
		q[1] = (r[0*3+1] + r[1*3+0]) / x4
		q[2] = (r[0*3+2] + r[2*3+0]) / x4
		q[3] = (r[1*3+2] - r[2*3+1]) / x4
	case yy:
		y4 := math.Sqrt(yy * 4.0)
		q[0] = (r[0*3+1] + r[1*3+0]) / y4
		q[1] = y4 / 4.0
		q[2] = (r[1*3+2] + r[2*3+1]) / y4
		q[3] = (r[2*3+0] - r[0*3+2]) / y4
	default: // zz
		z4 := math.Sqrt(zz * 4.0)
		q[0] = (r[0*3+2] + r[2*3+0]) / z4
		q[1] = (r[1*3+2] + r[2*3+1]) / z4
		q[2] = z4 / 4.0
		q[3] = (r[0*3+1] - r[1*3+0]) / z4
	}

	return q
}

// QuatFromMat4 extracts the quaternion of the 3x3 rotation block of a
// 4x4 homogeneous matrix.
func QuatFromMat4(m Mat4) Quat { return QuatFromMat3(m.Mat3()) }

// Norm2 returns the squared norm.
func (q Quat) Norm2() float64 {
	return q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3]
}

// Norm returns the norm.
func (q Quat) Norm() float64 { return math.Sqrt(q.Norm2()) }

// Normalize scales q in place to unit norm. When the norm is below
// Epsilon it returns ErrDegenerateVector and leaves q unmodified.
func (q *Quat) Normalize() error {
	n := q.Norm()
	if n < Epsilon {
		return ErrDegenerateVector
	}
	for i := range q {
		q[i] /= n
	}

	return nil
}

// Conjugate returns the conjugate (-x, -y, -z, w).
func (q Quat) Conjugate() Quat { return Quat{-q[0], -q[1], -q[2], q[3]} }

// Axis returns the unit rotation axis. A rotation indistinguishable from
// the identity has no axis; the zero vector is returned.
func (q Quat) Axis() Vec3 {
	v := Vec3{q[0], q[1], q[2]}
	if v.Normalize() != nil {
		return Vec3{}
	}

	return v
}

// Angle returns the rotation angle in radians, in [0, 2π).
func (q Quat) Angle() float64 {
	n := q.Norm()
	if n < Epsilon {
		return 0
	}

	return 2 * math.Acos(Clip(q[3]/n, -1, 1))
}

// Clear zeroes all components in place.
func (q *Quat) Clear() { *q = Quat{} }

// Identity sets q to the identity rotation in place.
func (q *Quat) Identity() { *q = QuatIdentity() }

// Add returns q + r.
func (q Quat) Add(r Quat) Quat {
	return Quat{q[0] + r[0], q[1] + r[1], q[2] + r[2], q[3] + r[3]}
}

// Sub returns q - r.
func (q Quat) Sub(r Quat) Quat {
	return Quat{q[0] - r[0], q[1] - r[1], q[2] - r[2], q[3] - r[3]}
}

// Neg returns -q. Note that -q encodes the same rotation as q.
func (q Quat) Neg() Quat { return Quat{-q[0], -q[1], -q[2], -q[3]} }

// Scale returns k*q.
func (q Quat) Scale(k float64) Quat {
	return Quat{q[0] * k, q[1] * k, q[2] * k, q[3] * k}
}

// Div returns q/k.
func (q Quat) Div(k float64) Quat {
	return Quat{q[0] / k, q[1] / k, q[2] / k, q[3] / k}
}

// Mul returns the Hamilton product q·r (apply r first, then q).
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		q[3]*r[0] + q[0]*r[3] + q[1]*r[2] - q[2]*r[1],
		q[3]*r[1] - q[0]*r[2] + q[1]*r[3] + q[2]*r[0],
		q[3]*r[2] + q[0]*r[1] - q[1]*r[0] + q[2]*r[3],
		q[3]*r[3] - q[0]*r[0] - q[1]*r[1] - q[2]*r[2],
	}
}

// Dot returns the 4-D inner product q · r.
func (q Quat) Dot(r Quat) float64 {
	return q[0]*r[0] + q[1]*r[1] + q[2]*r[2] + q[3]*r[3]
}

// Inverse returns q⁻¹ = conj(q)/|q|². Fails with ErrDegenerateVector
// for a near-zero quaternion.
func (q Quat) Inverse() (Quat, error) {
	n2 := q.Norm2()
	if n2 < Epsilon2 {
		return Quat{}, ErrDegenerateVector
	}

	return q.Conjugate().Div(n2), nil
}

// Distance returns the Euclidean distance |q - r| in component space.
func Distance(q, r Quat) float64 { return q.Sub(r).Norm() }

// Slerp spherically interpolates from q to r by t in [0,1], taking the
// shorter arc. Nearly parallel inputs fall back to linear interpolation
// to avoid dividing by a vanishing sine.
func Slerp(q, r Quat, t float64) Quat {
	cos := q.Dot(r)
	// Flip one endpoint when the arc crosses the q ≡ -q double cover.
	if cos < 0 {
		r = r.Neg()
		cos = -cos
	}
	if cos > 1-Epsilon {
		out := q.Scale(1 - t).Add(r.Scale(t))
		_ = out.Normalize()

		return out
	}
	theta := math.Acos(Clip(cos, -1, 1))
	sin := math.Sin(theta)

	return q.Scale(math.Sin((1-t)*theta) / sin).
		Add(r.Scale(math.Sin(t*theta) / sin))
}

// Rotate applies the rotation q to vector u via q·(u,0)·q⁻¹. The
// quaternion is normalized internally; a degenerate quaternion returns
// u unchanged.
func (q Quat) Rotate(u Vec3) Vec3 {
	n := q
	if n.Normalize() != nil {
		return u
	}
	p := Quat{u[0], u[1], u[2], 0}
	out := n.Mul(p).Mul(n.Conjugate())

	return Vec3{out[0], out[1], out[2]}
}

// EulerAngles returns the (phi, theta, psi) angles of the rotation in
// the x-y-z (roll, pitch, yaw) convention: R = Rz(psi)·Ry(theta)·Rx(phi).
func (q Quat) EulerAngles() (phi, theta, psi float64) {
	r := q.Mat3()
	phi = math.Atan2(r[2*3+1], r[2*3+2])
	theta = -math.Asin(Clip(r[2*3+0], -1, 1))
	psi = math.Atan2(r[1*3+0], r[0*3+0])

	return phi, theta, psi
}

// Mat3 converts q to a 3x3 rotation matrix using the closed form; no
// trigonometric calls are made. The quaternion is normalized first.
func (q Quat) Mat3() Mat3 {
	n := q
	_ = n.Normalize() // degenerate input falls through to the zero matrix
	x, y, z, w := n[0], n[1], n[2], n[3]

	var r Mat3
	r[0*3+0] = w*w + x*x - y*y - z*z
	r[1*3+0] = 2*x*y + 2*w*z
	r[2*3+0] = 2*x*z - 2*w*y

	r[0*3+1] = 2*x*y - 2*w*z
	r[1*3+1] = w*w - x*x + y*y - z*z
	r[2*3+1] = 2*y*z + 2*w*x

	r[0*3+2] = 2*x*z + 2*w*y
	r[1*3+2] = 2*y*z - 2*w*x
	r[2*3+2] = w*w - x*x - y*y + z*z

	return r
}

// Mat4 converts q to a 4x4 rotation matrix: the 3x3 rotation block plus
// the homogeneous identity extension.
func (q Quat) Mat4() Mat4 { return q.Mat3().Mat4() }

// MatN converts q to a dynamic 4x4 rotation matrix.
func (q Quat) MatN() *MatN { return q.Mat4().MatN() }
