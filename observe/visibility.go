package observe

import "math"

// IntersectLineSphere computes the distances from the origin to the
// intersections of a line (from the origin through endpoint) with a sphere
// defined by center and radius. Returns (near, far) distances along the
// line; both are NaN if the line does not intersect the sphere, and equal
// if tangent.
//
// See: http://paulbourke.net/geometry/circlesphere/index.html#linesphere
func IntersectLineSphere(endpoint, center [3]float64, radius float64) (near, far float64) {
	lenE := math.Sqrt(endpoint[0]*endpoint[0] + endpoint[1]*endpoint[1] + endpoint[2]*endpoint[2])
	if lenE == 0 {
		return math.NaN(), math.NaN()
	}

	dx := endpoint[0] / lenE
	dy := endpoint[1] / lenE
	dz := endpoint[2] / lenE

	minusB := 2.0 * (dx*center[0] + dy*center[1] + dz*center[2])
	c := center[0]*center[0] + center[1]*center[1] + center[2]*center[2] - radius*radius
	discriminant := minusB*minusB - 4.0*c

	if discriminant < 0 {
		return math.NaN(), math.NaN()
	}

	dsqrt := math.Sqrt(discriminant)
	near = (minusB - dsqrt) / 2.0
	far = (minusB + dsqrt) / 2.0
	return
}

// LineOfSightObstructed reports whether the straight line from a to b is
// obstructed by a spherical occulter of the given radius (plus an optional
// altitude buffer, e.g. to account for atmosphere or terrain margin). All
// positions share the same frame and origin; occulter is that body's
// position in the same frame.
func LineOfSightObstructed(a, b, occulter [3]float64, occulterRadiusKm, altitudeBufferKm float64) bool {
	toB := [3]float64{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
	occulterRel := [3]float64{occulter[0] - a[0], occulter[1] - a[1], occulter[2] - a[2]}

	near, _ := IntersectLineSphere(toB, occulterRel, occulterRadiusKm+altitudeBufferKm)
	if math.IsNaN(near) {
		return false
	}

	dist := math.Sqrt(toB[0]*toB[0] + toB[1]*toB[1] + toB[2]*toB[2])
	if dist == 0 {
		return false
	}
	return near >= 0 && near <= dist
}

// IsSunlit returns true if a position (in km, relative to an occulting
// body's center) is illuminated by the Sun, i.e. the line from the
// position to the Sun does not pass through the occulting body.
//
// posKm is the object's position relative to the occulter, in km.
// sunPosKm is the Sun's position relative to the occulter, in km.
func IsSunlit(posKm, sunPosKm [3]float64, occulterRadiusKm float64) bool {
	toSun := [3]float64{sunPosKm[0] - posKm[0], sunPosKm[1] - posKm[1], sunPosKm[2] - posKm[2]}
	occulterCenter := [3]float64{-posKm[0], -posKm[1], -posKm[2]}

	near, far := IntersectLineSphere(toSun, occulterCenter, occulterRadiusKm)
	if math.IsNaN(near) {
		return true
	}

	sunDist := math.Sqrt(toSun[0]*toSun[0] + toSun[1]*toSun[1] + toSun[2]*toSun[2])
	if sunDist == 0 {
		return false
	}
	if far < 0 || near > sunDist {
		return true
	}
	return false
}
