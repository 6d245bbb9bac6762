package vmath

// Mat3 is a 3x3 matrix stored in column-major order, consistent
// with Mat4.
//
// Memory layout (indices):
// | 0 3 6 |
// | 1 4 7 |
// | 2 5 8 |
type Mat3 [9]float64

// Mat3Identity returns the identity matrix
func Mat3Identity() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Mul multiplies two matrices: m * other
func (m Mat3) Mul(other Mat3) Mat3 {
	var result Mat3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += m[row+k*3] * other[k+col*3]
			}
			result[row+col*3] = sum
		}
	}
	return result
}

// MulVec3 transforms a Vec3
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// Transpose returns the transposed matrix
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant returns the determinant of the matrix
func (m Mat3) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[3]*(m[1]*m[8]-m[7]*m[2]) +
		m[6]*(m[1]*m[5]-m[4]*m[2])
}

// Inverse returns the inverse of the matrix via the adjugate.
// Returns identity if the matrix is singular (det=0).
func (m Mat3) Inverse() Mat3 {
	det := m.Determinant()
	if det == 0 {
		return Mat3Identity()
	}
	invDet := 1.0 / det
	return Mat3{
		(m[4]*m[8] - m[7]*m[5]) * invDet,
		(m[7]*m[2] - m[1]*m[8]) * invDet,
		(m[1]*m[5] - m[4]*m[2]) * invDet,
		(m[6]*m[5] - m[3]*m[8]) * invDet,
		(m[0]*m[8] - m[6]*m[2]) * invDet,
		(m[3]*m[2] - m[0]*m[5]) * invDet,
		(m[3]*m[7] - m[6]*m[4]) * invDet,
		(m[6]*m[1] - m[0]*m[7]) * invDet,
		(m[0]*m[4] - m[3]*m[1]) * invDet,
	}
}

// Get returns the element at (row, col)
func (m Mat3) Get(row, col int) float64 {
	return m[row+col*3]
}

// Set sets the element at (row, col)
func (m *Mat3) Set(row, col int, val float64) {
	m[row+col*3] = val
}
