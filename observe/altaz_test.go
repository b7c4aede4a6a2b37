package observe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAltazZenith(t *testing.T) {
	lat, lon := 40.0, -74.0
	jd := j2000JD
	x, y, z := GeodeticToICRF(lat, lon, jd)
	pos := [3]float64{x * 1e6, y * 1e6, z * 1e6}

	alt, _, dist := Altaz(pos, lat, lon, jd)
	assert.InDelta(t, 90.0, alt, 1.0)
	assert.InDelta(t, 1e6, dist, 1.0)
}

func TestAltazAzimuthRange(t *testing.T) {
	jd := 2451545.0 + 365.25*10.0
	for _, lat := range []float64{-45, 0, 45, 90} {
		for _, lon := range []float64{-180, -90, 0, 90, 180} {
			pos := [3]float64{1e8, 2e8, 3e8}
			_, az, _ := Altaz(pos, lat, lon, jd)
			assert.True(t, az >= 0 && az < 360, "lat=%.0f lon=%.0f: az=%.4f outside [0,360)", lat, lon, az)
		}
	}
}

func TestHourAngleDecOnMeridian(t *testing.T) {
	jd := j2000JD
	x, y, z := GeodeticToICRF(0, 0, jd)
	pos := [3]float64{x, y, z}

	ha, _ := HourAngleDec(pos, 0, jd)
	haWrapped := ha
	if haWrapped > 180 {
		haWrapped -= 360
	}
	assert.InDelta(t, 0, haWrapped, 1.0)
}

func BenchmarkAltaz(b *testing.B) {
	pos := [3]float64{1.5e8, 0, 0}
	for i := 0; i < b.N; i++ {
		Altaz(pos, 40.0, -74.0, 2451545.0)
	}
}
