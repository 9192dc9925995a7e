// Package geomath: 3x3 fixed matrix.
// Row-major storage: element (r,c) lives at index r*3+c.

package geomath

import "math"

// Mat3 is a 3x3 row-major matrix, stack-resident with exact == equality.
// Used both as a 3-D rotation/linear map and as a 2-D homogeneous
// transform.
type Mat3 [9]float64

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Rows returns 3.
func (m *Mat3) Rows() int { return 3 }

// Cols returns 3.
func (m *Mat3) Cols() int { return 3 }

// At retrieves element (r,c), or ErrOutOfRange.
func (m *Mat3) At(r, c int) (float64, error) {
	if r < 0 || r >= 3 || c < 0 || c >= 3 {
		return 0, ErrOutOfRange
	}

	return m[r*3+c], nil
}

// Set assigns element (r,c), or returns ErrOutOfRange.
func (m *Mat3) Set(r, c int, v float64) error {
	if r < 0 || r >= 3 || c < 0 || c >= 3 {
		return ErrOutOfRange
	}
	m[r*3+c] = v

	return nil
}

// Norm2 returns the squared Frobenius norm.
func (m Mat3) Norm2() float64 {
	var s float64
	for _, x := range m {
		s += x * x
	}

	return s
}

// Norm returns the Frobenius norm.
func (m Mat3) Norm() float64 { return math.Sqrt(m.Norm2()) }

// Transpose returns the transposed matrix; the receiver is unchanged.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Clear zeroes all elements in place.
func (m *Mat3) Clear() { *m = Mat3{} }

// Identity sets m to the identity in place.
func (m *Mat3) Identity() { *m = Identity3() }

// Add returns m + n.
func (m Mat3) Add(n Mat3) Mat3 {
	var out Mat3
	for i := range m {
		out[i] = m[i] + n[i]
	}

	return out
}

// Sub returns m - n.
func (m Mat3) Sub(n Mat3) Mat3 {
	var out Mat3
	for i := range m {
		out[i] = m[i] - n[i]
	}

	return out
}

// Neg returns -m.
func (m Mat3) Neg() Mat3 {
	var out Mat3
	for i := range m {
		out[i] = -m[i]
	}

	return out
}

// Scale returns k*m.
func (m Mat3) Scale(k float64) Mat3 {
	var out Mat3
	for i := range m {
		out[i] = m[i] * k
	}

	return out
}

// Div returns m/k.
func (m Mat3) Div(k float64) Mat3 {
	var out Mat3
	for i := range m {
		out[i] = m[i] / k
	}

	return out
}

// Mul returns the matrix product m·n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = m[r*3]*n[c] + m[r*3+1]*n[3+c] + m[r*3+2]*n[6+c]
		}
	}

	return out
}

// MulVec returns m·u.
func (m Mat3) MulVec(u Vec3) Vec3 {
	return Vec3{
		m[0]*u[0] + m[1]*u[1] + m[2]*u[2],
		m[3]*u[0] + m[4]*u[1] + m[5]*u[2],
		m[6]*u[0] + m[7]*u[1] + m[8]*u[2],
	}
}

// MulVec2 applies m as a 2-D homogeneous transform: u is promoted to
// (x, y, 1) and the first two components of the product are returned.
func (m Mat3) MulVec2(u Vec2) Vec2 {
	return Vec2{
		m[0]*u[0] + m[1]*u[1] + m[2],
		m[3]*u[0] + m[4]*u[1] + m[5],
	}
}

// MulMat3 returns the row-vector product v·m.
func (v Vec3) MulMat3(m Mat3) Vec3 {
	return Vec3{
		v[0]*m[0] + v[1]*m[3] + v[2]*m[6],
		v[0]*m[1] + v[1]*m[4] + v[2]*m[7],
		v[0]*m[2] + v[1]*m[5] + v[2]*m[8],
	}
}

// Det returns the determinant.
func (m Mat3) Det() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// SubDet returns the determinant of the 3x3 matrix formed by rows
// r1,r2,r3 and columns c1,c2,c3 of m. Indices must be in [0,3).
func (m Mat3) SubDet(r1, r2, r3, c1, c2, c3 int) float64 {
	return m[r1*3+c1]*(m[r2*3+c2]*m[r3*3+c3]-m[r2*3+c3]*m[r3*3+c2]) -
		m[r1*3+c2]*(m[r2*3+c1]*m[r3*3+c3]-m[r2*3+c3]*m[r3*3+c1]) +
		m[r1*3+c3]*(m[r2*3+c1]*m[r3*3+c2]-m[r2*3+c2]*m[r3*3+c1])
}

// Inverse returns the inverse via the adjugate. It fails with
// ErrSingular when the determinant is below Epsilon in magnitude.
func (m Mat3) Inverse() (Mat3, error) {
	d := m.Det()
	if IsZero(d) {
		return Mat3{}, ErrSingular
	}
	inv := Mat3{
		m[4]*m[8] - m[5]*m[7], m[2]*m[7] - m[1]*m[8], m[1]*m[5] - m[2]*m[4],
		m[5]*m[6] - m[3]*m[8], m[0]*m[8] - m[2]*m[6], m[2]*m[3] - m[0]*m[5],
		m[3]*m[7] - m[4]*m[6], m[1]*m[6] - m[0]*m[7], m[0]*m[4] - m[1]*m[3],
	}

	return inv.Div(d), nil
}

// OuterProduct3 returns the outer product u·vᵀ.
func OuterProduct3(u, v Vec3) Mat3 {
	return Mat3{
		u[0] * v[0], u[0] * v[1], u[0] * v[2],
		u[1] * v[0], u[1] * v[1], u[1] * v[2],
		u[2] * v[0], u[2] * v[1], u[2] * v[2],
	}
}

// Mat4 expands to 4x4 with the homogeneous identity extension: the new
// row and column are zero except for a 1 at (3,3). Rotation matrices
// stay valid rotations of homogeneous space, which is why the padding is
// identity-like rather than plain zeros.
func (m Mat3) Mat4() Mat4 {
	return Mat4{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}
}

// MatN converts to a dynamic 3x3 matrix.
func (m Mat3) MatN() *MatN {
	data := make([]float64, 9)
	copy(data, m[:])

	return &MatN{r: 3, c: 3, data: data}
}
