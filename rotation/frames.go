package rotation

import "math"

// GalacticMatrix is the rotation matrix from ICRF (J2000) to Galactic
// System II (IAU 1958). Apply as v_gal = GalacticMatrix * v_icrf.
var GalacticMatrix = [3][3]float64{
	{-0.054875539395742523, -0.87343710472759606, -0.48383499177002515},
	{0.49410945362774389, -0.44482959429757496, 0.74698224869989183},
	{-0.86766613568337381, -0.19807638961301985, 0.45598379452141991},
}

// B1950Matrix is the rotation matrix from ICRF (J2000) to the mean equator
// and equinox of B1950 (FK4). Apply as v_B1950 = B1950Matrix * v_icrf.
var B1950Matrix = [3][3]float64{
	{0.99992570795236291, 0.011178938126427691, 0.0048590038414544293},
	{-0.011178938137770135, 0.9999375133499887, -2.715792625851078e-05},
	{-0.0048590038153592712, -2.7162594714247048e-05, 0.9999881946023742},
}

// ICRSToJ2000Matrix is the frame bias matrix from ICRS to the dynamical
// mean equator and equinox of J2000. The bias is a few milliarcseconds
// (IERS Conventions 2003, Chapter 5).
var ICRSToJ2000Matrix [3][3]float64

func init() {
	xi0 := -0.0166170 * arcsec2rad
	eta0 := -0.0068192 * arcsec2rad
	da0 := -0.01460 * arcsec2rad

	yx := -da0
	zx := xi0
	xy := da0
	zy := eta0
	xz := -xi0
	yz := -eta0

	xx := 1.0 - 0.5*(yx*yx+zx*zx)
	yy := 1.0 - 0.5*(yx*yx+zy*zy)
	zz := 1.0 - 0.5*(zy*zy+zx*zx)

	ICRSToJ2000Matrix = [3][3]float64{
		{xx, xy, xz},
		{yx, yy, yz},
		{zx, zy, zz},
	}
}

// ICRFToGalactic converts an ICRF Cartesian vector to Galactic latitude and
// longitude in degrees. Longitude is in [0, 360).
func ICRFToGalactic(x, y, z float64) (latDeg, lonDeg float64) {
	gx := GalacticMatrix[0][0]*x + GalacticMatrix[0][1]*y + GalacticMatrix[0][2]*z
	gy := GalacticMatrix[1][0]*x + GalacticMatrix[1][1]*y + GalacticMatrix[1][2]*z
	gz := GalacticMatrix[2][0]*x + GalacticMatrix[2][1]*y + GalacticMatrix[2][2]*z

	r := math.Sqrt(gx*gx + gy*gy + gz*gz)
	if r == 0 {
		return 0, 0
	}
	latDeg = math.Asin(gz/r) * rad2deg
	lonDeg = math.Atan2(gy, gx) * rad2deg
	lonDeg = math.Mod(lonDeg+360.0, 360.0)
	return latDeg, lonDeg
}

// Axis identifies an elementary rotation axis for EulerAxisDCM.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// elementaryDCM and its time derivative, for a rotation of angle (radians)
// about axis, with angle changing at rate radians/sec.
func elementaryDCM(axis Axis, angle, rate float64) (m, mDot [3][3]float64) {
	s, c := math.Sincos(angle)
	switch axis {
	case AxisX:
		m = [3][3]float64{{1, 0, 0}, {0, c, s}, {0, -s, c}}
		mDot = [3][3]float64{{0, 0, 0}, {0, -s * rate, c * rate}, {0, -c * rate, -s * rate}}
	case AxisY:
		m = [3][3]float64{{c, 0, -s}, {0, 1, 0}, {s, 0, c}}
		mDot = [3][3]float64{{-s * rate, 0, -c * rate}, {0, 0, 0}, {c * rate, 0, -s * rate}}
	default: // AxisZ
		m = [3][3]float64{{c, s, 0}, {-s, c, 0}, {0, 0, 1}}
		mDot = [3][3]float64{{-s * rate, c * rate, 0}, {-c * rate, -s * rate, 0}, {0, 0, 0}}
	}
	return
}

func mul3(a, b [3][3]float64) [3][3]float64 {
	var out [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += a[i][k] * b[k][j]
			}
			out[i][j] = s
		}
	}
	return out
}

func add3m(a, b [3][3]float64) [3][3]float64 {
	var out [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = a[i][j] + b[i][j]
		}
	}
	return out
}

// EulerAxisDCM composes a 3-rotation Euler axis sequence (e.g. 3-1-3) into a
// single DCM and its time derivative, applying the product rule across the
// three elementary rotations. axisSeq[0] is applied first.
func EulerAxisDCM(axisSeq [3]Axis, angles, rates [3]float64) (dcm, dcmDot [3][3]float64) {
	m0, d0 := elementaryDCM(axisSeq[0], angles[0], rates[0])
	m1, d1 := elementaryDCM(axisSeq[1], angles[1], rates[1])
	m2, d2 := elementaryDCM(axisSeq[2], angles[2], rates[2])

	dcm = mul3(mul3(m2, m1), m0)
	dcmDot = add3m(add3m(
		mul3(mul3(d2, m1), m0),
		mul3(mul3(m2, d1), m0)),
		mul3(mul3(m2, m1), d0))
	return
}
