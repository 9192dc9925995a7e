// Package geomath: 4x4 fixed matrix.
// Row-major storage: element (r,c) lives at index r*4+c.

package geomath

import "math"

// Mat4 is a 4x4 row-major matrix, stack-resident with exact == equality.
// Typically a 3-D homogeneous transform.
type Mat4 [16]float64

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Rows returns 4.
func (m *Mat4) Rows() int { return 4 }

// Cols returns 4.
func (m *Mat4) Cols() int { return 4 }

// At retrieves element (r,c), or ErrOutOfRange.
func (m *Mat4) At(r, c int) (float64, error) {
	if r < 0 || r >= 4 || c < 0 || c >= 4 {
		return 0, ErrOutOfRange
	}

	return m[r*4+c], nil
}

// Set assigns element (r,c), or returns ErrOutOfRange.
func (m *Mat4) Set(r, c int, v float64) error {
	if r < 0 || r >= 4 || c < 0 || c >= 4 {
		return ErrOutOfRange
	}
	m[r*4+c] = v

	return nil
}

// Norm2 returns the squared Frobenius norm.
func (m Mat4) Norm2() float64 {
	var s float64
	for _, x := range m {
		s += x * x
	}

	return s
}

// Norm returns the Frobenius norm.
func (m Mat4) Norm() float64 { return math.Sqrt(m.Norm2()) }

// Transpose returns the transposed matrix; the receiver is unchanged.
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Clear zeroes all elements in place.
func (m *Mat4) Clear() { *m = Mat4{} }

// Identity sets m to the identity in place.
func (m *Mat4) Identity() { *m = Identity4() }

// Add returns m + n.
func (m Mat4) Add(n Mat4) Mat4 {
	var out Mat4
	for i := range m {
		out[i] = m[i] + n[i]
	}

	return out
}

// Sub returns m - n.
func (m Mat4) Sub(n Mat4) Mat4 {
	var out Mat4
	for i := range m {
		out[i] = m[i] - n[i]
	}

	return out
}

// Neg returns -m.
func (m Mat4) Neg() Mat4 {
	var out Mat4
	for i := range m {
		out[i] = -m[i]
	}

	return out
}

// Scale returns k*m.
func (m Mat4) Scale(k float64) Mat4 {
	var out Mat4
	for i := range m {
		out[i] = m[i] * k
	}

	return out
}

// Div returns m/k.
func (m Mat4) Div(k float64) Mat4 {
	var out Mat4
	for i := range m {
		out[i] = m[i] / k
	}

	return out
}

// Mul returns the matrix product m·n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = m[r*4]*n[c] + m[r*4+1]*n[4+c] +
				m[r*4+2]*n[8+c] + m[r*4+3]*n[12+c]
		}
	}

	return out
}

// MulVec returns m·u.
func (m Mat4) MulVec(u Vec4) Vec4 {
	return Vec4{
		m[0]*u[0] + m[1]*u[1] + m[2]*u[2] + m[3]*u[3],
		m[4]*u[0] + m[5]*u[1] + m[6]*u[2] + m[7]*u[3],
		m[8]*u[0] + m[9]*u[1] + m[10]*u[2] + m[11]*u[3],
		m[12]*u[0] + m[13]*u[1] + m[14]*u[2] + m[15]*u[3],
	}
}

// MulVec3 applies m as a 3-D homogeneous transform: u is promoted to
// (x, y, z, 1) and the first three components of the product are
// returned.
func (m Mat4) MulVec3(u Vec3) Vec3 {
	return Vec3{
		m[0]*u[0] + m[1]*u[1] + m[2]*u[2] + m[3],
		m[4]*u[0] + m[5]*u[1] + m[6]*u[2] + m[7],
		m[8]*u[0] + m[9]*u[1] + m[10]*u[2] + m[11],
	}
}

// MulMat4 returns the row-vector product v·m.
func (v Vec4) MulMat4(m Mat4) Vec4 {
	return Vec4{
		v[0]*m[0] + v[1]*m[4] + v[2]*m[8] + v[3]*m[12],
		v[0]*m[1] + v[1]*m[5] + v[2]*m[9] + v[3]*m[13],
		v[0]*m[2] + v[1]*m[6] + v[2]*m[10] + v[3]*m[14],
		v[0]*m[3] + v[1]*m[7] + v[2]*m[11] + v[3]*m[15],
	}
}

// Det returns the determinant, expanded along the first row with 3x3
// cofactors.
func (m Mat4) Det() float64 {
	c0 := m[5]*(m[10]*m[15]-m[11]*m[14]) -
		m[6]*(m[9]*m[15]-m[11]*m[13]) +
		m[7]*(m[9]*m[14]-m[10]*m[13])
	c1 := m[4]*(m[10]*m[15]-m[11]*m[14]) -
		m[6]*(m[8]*m[15]-m[11]*m[12]) +
		m[7]*(m[8]*m[14]-m[10]*m[12])
	c2 := m[4]*(m[9]*m[15]-m[11]*m[13]) -
		m[5]*(m[8]*m[15]-m[11]*m[12]) +
		m[7]*(m[8]*m[13]-m[9]*m[12])
	c3 := m[4]*(m[9]*m[14]-m[10]*m[13]) -
		m[5]*(m[8]*m[14]-m[10]*m[12]) +
		m[6]*(m[8]*m[13]-m[9]*m[12])

	return m[0]*c0 - m[1]*c1 + m[2]*c2 - m[3]*c3
}

// Inverse returns the inverse, computed by Gauss-Jordan elimination on a
// dynamic copy. It fails with ErrSingular for singular input.
func (m Mat4) Inverse() (Mat4, error) {
	inv, err := m.MatN().Inverse()
	if err != nil {
		return Mat4{}, err
	}

	return inv.Mat4(), nil
}

// OuterProduct4 returns the outer product u·vᵀ.
func OuterProduct4(u, v Vec4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = u[r] * v[c]
		}
	}

	return out
}

// Mat3 truncates to the upper-left 3x3 block, dropping the homogeneous
// row and column.
func (m Mat4) Mat3() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// MatN converts to a dynamic 4x4 matrix.
func (m Mat4) MatN() *MatN {
	data := make([]float64, 16)
	copy(data, m[:])

	return &MatN{r: 4, c: 4, data: data}
}
