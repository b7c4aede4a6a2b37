package spacemath

import "math"

// Quaternion is a unit quaternion (W,X,Y,Z) in Hamilton convention,
// representing a rotation.
type Quaternion struct {
	W, X, Y, Z float64
}

// Norm returns the Euclidean norm of q.
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Normalize returns q scaled to unit norm. Returns q unchanged if its norm
// is zero.
func (q Quaternion) Normalize() Quaternion {
	n := q.Norm()
	if n == 0 {
		return q
	}
	return Quaternion{q.W / n, q.X / n, q.Y / n, q.Z / n}
}

// Mul returns the Hamilton product q*r.
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return Quaternion{
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
	}
}

// Conjugate returns q's conjugate, its inverse when q is a unit quaternion.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{q.W, -q.X, -q.Y, -q.Z}
}

// ToDCM converts a unit quaternion to its equivalent rotation matrix.
func (q Quaternion) ToDCM() DCM {
	q = q.Normalize()
	w, x, y, z := q.W, q.X, q.Y, q.Z
	return DCM{
		{1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y)},
		{2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x)},
		{2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y)},
	}
}

// FromDCM converts a rotation matrix to a unit quaternion via Shepperd's
// method, selecting the numerically stable branch based on the trace.
func FromDCM(m DCM) Quaternion {
	tr := m[0][0] + m[1][1] + m[2][2]
	var q Quaternion
	switch {
	case tr > 0:
		s := math.Sqrt(tr+1.0) * 2
		q = Quaternion{
			W: 0.25 * s,
			X: (m[2][1] - m[1][2]) / s,
			Y: (m[0][2] - m[2][0]) / s,
			Z: (m[1][0] - m[0][1]) / s,
		}
	case m[0][0] > m[1][1] && m[0][0] > m[2][2]:
		s := math.Sqrt(1.0+m[0][0]-m[1][1]-m[2][2]) * 2
		q = Quaternion{
			W: (m[2][1] - m[1][2]) / s,
			X: 0.25 * s,
			Y: (m[0][1] + m[1][0]) / s,
			Z: (m[0][2] + m[2][0]) / s,
		}
	case m[1][1] > m[2][2]:
		s := math.Sqrt(1.0+m[1][1]-m[0][0]-m[2][2]) * 2
		q = Quaternion{
			W: (m[0][2] - m[2][0]) / s,
			X: (m[0][1] + m[1][0]) / s,
			Y: 0.25 * s,
			Z: (m[1][2] + m[2][1]) / s,
		}
	default:
		s := math.Sqrt(1.0+m[2][2]-m[0][0]-m[1][1]) * 2
		q = Quaternion{
			W: (m[1][0] - m[0][1]) / s,
			X: (m[0][2] + m[2][0]) / s,
			Y: (m[1][2] + m[2][1]) / s,
			Z: 0.25 * s,
		}
	}
	return q.Normalize()
}
