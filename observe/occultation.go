package observe

import "math"

// AngularRadius returns the apparent angular radius, in radians, of a body
// of the given physical radius (km) seen from distanceKm away.
func AngularRadius(bodyRadiusKm, distanceKm float64) float64 {
	if distanceKm <= 0 {
		return 0
	}
	ratio := bodyRadiusKm / distanceKm
	if ratio > 1 {
		ratio = 1
	}
	return math.Asin(ratio)
}

// Occultation returns the fraction, in [0,1], of occultee's apparent disc
// covered by occulter's apparent disc as seen from an observer, given the
// angular separation between the two bodies' centers and each body's
// apparent angular radius (all in radians). 0 means no overlap, 1 means
// occultee's disc is fully covered.
//
// This implements the classical two-circle overlap-area formula (the same
// geometry that underlies solar/lunar eclipse magnitude), generalized from
// a fixed Earth-shadow-on-Moon case to any pair of apparent discs.
func Occultation(separationRad, occulterRadiusRad, occulteeRadiusRad float64) float64 {
	d, r1, r2 := separationRad, occulterRadiusRad, occulteeRadiusRad
	if r1 <= 0 || r2 <= 0 {
		return 0
	}
	if d >= r1+r2 {
		return 0 // discs do not overlap
	}
	if d <= math.Abs(r1-r2) {
		// One disc fully contains the other.
		if r1 >= r2 {
			return 1
		}
		// Occulter is smaller than occultee: covered fraction is the ratio
		// of occulter's disc area to occultee's disc area.
		return (r1 * r1) / (r2 * r2)
	}

	// Partial overlap: compute the lens (intersection) area of two circles
	// of radii r1, r2 with center separation d, then express it as a
	// fraction of the occultee's disc area.
	d1 := (d*d + r1*r1 - r2*r2) / (2 * d)
	d2 := d - d1

	part1 := r1 * r1 * math.Acos(clamp(d1/r1, -1, 1))
	part2 := r2 * r2 * math.Acos(clamp(d2/r2, -1, 1))
	part3 := 0.5 * math.Sqrt(math.Max(0, (-d+r1+r2)*(d+r1-r2)*(d-r1+r2)*(d+r1+r2)))

	lensArea := part1 + part2 - part3
	occulteeArea := math.Pi * r2 * r2
	if occulteeArea == 0 {
		return 0
	}
	frac := lensArea / occulteeArea
	return clamp(frac, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
