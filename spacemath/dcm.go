package spacemath

import "math"

// DCM is a 3x3 direction cosine matrix, row-major: m[row][col].
type DCM [3][3]float64

// Identity returns the identity DCM.
func Identity() DCM {
	return DCM{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Mul returns m*n.
func (m DCM) Mul(n DCM) DCM {
	var out DCM
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += m[i][k] * n[k][j]
			}
			out[i][j] = s
		}
	}
	return out
}

// Apply rotates v by m (m*v).
func (m DCM) Apply(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Transpose returns the transpose of m, which equals its inverse when m is
// orthonormal.
func (m DCM) Transpose() DCM {
	var out DCM
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// Determinant returns det(m).
func (m DCM) Determinant() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// IsOrthonormal reports whether m*m^T is within tol of the identity and
// det(m) is within tol of 1, the two conditions a valid rotation matrix
// must satisfy.
func (m DCM) IsOrthonormal(tol float64) bool {
	prod := m.Mul(m.Transpose())
	id := Identity()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(prod[i][j]-id[i][j]) > tol {
				return false
			}
		}
	}
	return math.Abs(m.Determinant()-1) <= tol
}

// DCMDot is the time derivative of a DCM, in the same row-major layout.
type DCMDot [3][3]float64
