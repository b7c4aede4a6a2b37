package observe

import (
	"math"

	"github.com/anise-go/anise/rotation"
)

// WGS84 ellipsoid constants.
const (
	wgs84A  = 6378.137 // equatorial radius, km
	wgs84F  = 1.0 / 298.257223563
	wgs84E2 = wgs84F * (2.0 - wgs84F) // eccentricity squared
)

// ITRFToGeodetic converts ITRF Cartesian coordinates (km) to geodetic
// latitude, longitude (degrees), and height above the WGS84 ellipsoid (km),
// via Bowring's iterative method (converges in 2-3 iterations, handling
// poles and the equator).
func ITRFToGeodetic(x, y, z float64) (latDeg, lonDeg, heightKm float64) {
	lonDeg = math.Atan2(y, x) * rad2deg

	p := math.Sqrt(x*x + y*y)

	if p == 0 {
		if z >= 0 {
			latDeg = 90.0
		} else {
			latDeg = -90.0
		}
		heightKm = math.Abs(z) - wgs84A*(1.0-wgs84F)
		return
	}

	b := wgs84A * (1.0 - wgs84F)
	theta := math.Atan2(z*wgs84A, p*b)
	sinTheta, cosTheta := math.Sincos(theta)

	lat := math.Atan2(
		z+wgs84E2/(1.0-wgs84F)*b*sinTheta*sinTheta*sinTheta,
		p-wgs84E2*wgs84A*cosTheta*cosTheta*cosTheta,
	)

	for i := 0; i < 3; i++ {
		sinLat := math.Sin(lat)
		N := wgs84A / math.Sqrt(1.0-wgs84E2*sinLat*sinLat)
		lat = math.Atan2(z+wgs84E2*N*sinLat, p)
	}

	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	N := wgs84A / math.Sqrt(1.0-wgs84E2*sinLat*sinLat)

	if math.Abs(cosLat) > 1e-10 {
		heightKm = p/cosLat - N
	} else {
		heightKm = math.Abs(z)/math.Abs(sinLat) - N*(1.0-wgs84E2)
	}

	latDeg = lat * rad2deg
	return
}

// GeodeticToICRF converts geodetic coordinates (lat/lon in degrees) to an
// ICRF unit direction vector at the given UT1 Julian date.
func GeodeticToICRF(latDeg, lonDeg, jdUT1 float64) (x, y, z float64) {
	return rotation.GeodeticToICRF(latDeg, lonDeg, jdUT1, wgs84A, wgs84E2)
}
