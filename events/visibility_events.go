// Package events finds times of seasons, moon phases, sunrise/sunset,
// twilight, body risings/settings, meridian transits, oppositions and
// conjunctions, and lunar eclipses against a loaded Almanac.
package events

import (
	"math"

	"github.com/anise-go/anise/almanac"
	"github.com/anise-go/anise/epoch"
	"github.com/anise-go/anise/frame"
	"github.com/anise-go/anise/observe"
	"github.com/anise-go/anise/rotation"
)

// Season values returned in DiscreteEvent.NewValue by Seasons.
const (
	SpringEquinox  = 0 // Sun ecliptic longitude crosses 0°
	SummerSolstice = 1 // Sun ecliptic longitude crosses 90°
	AutumnEquinox  = 2 // Sun ecliptic longitude crosses 180°
	WinterSolstice = 3 // Sun ecliptic longitude crosses 270°
)

// Moon phase values returned in DiscreteEvent.NewValue by MoonPhases.
const (
	NewMoon      = 0 // Moon-Sun elongation crosses 0°
	FirstQuarter = 1 // Moon-Sun elongation crosses 90°
	FullMoon     = 2 // Moon-Sun elongation crosses 180°
	LastQuarter  = 3 // Moon-Sun elongation crosses 270°
)

// Twilight level values returned in DiscreteEvent.NewValue by Twilight.
const (
	Night                = 0 // Sun altitude < -18°
	AstronomicalTwilight = 1 // -18° ≤ alt < -12°
	NauticalTwilight     = 2 // -12° ≤ alt < -6°
	CivilTwilight        = 3 // -6° ≤ alt < -0.8333°
	Daylight             = 4 // alt ≥ -0.8333°
)

// sunAltitudeThreshold is the standard altitude for sunrise/sunset:
// -50 arcminutes = -0.8333° (16' solar radius + 34' refraction).
const sunAltitudeThreshold = -0.8333

// refractionThreshold is the standard altitude adjustment for atmospheric
// refraction alone (-34 arcminutes), used for non-solar body risings/settings.
const refractionThreshold = -34.0 / 60.0

var (
	earthFrame = frame.NewFrame(frame.Earth, frame.J2000)
	sunFrame   = frame.NewFrame(frame.Sun, frame.J2000)
	moonFrame  = frame.NewFrame(frame.Moon, frame.J2000)
)

// apparentPosition returns body's apparent (light-time corrected) position
// relative to Earth at the given TDB Julian date.
func apparentPosition(alm *almanac.Almanac, body frame.Frame, tdbJD float64) ([3]float64, error) {
	state, err := alm.Translate(earthFrame, body, epoch.FromJDTDB(tdbJD), almanac.LightTime)
	if err != nil {
		return [3]float64{}, err
	}
	return [3]float64(state.R), nil
}

// Seasons finds equinoxes and solstices in the given TDB Julian date range.
//
// Returns events with NewValue: SpringEquinox=0, SummerSolstice=1,
// AutumnEquinox=2, WinterSolstice=3 (Northern Hemisphere conventions).
func Seasons(alm *almanac.Almanac, startJD, endJD float64) ([]DiscreteEvent, error) {
	f := func(tdbJD float64) int {
		pos, err := apparentPosition(alm, sunFrame, tdbJD)
		if err != nil {
			return -1
		}
		_, lonDeg := rotation.ICRFToEcliptic(pos[0], pos[1], pos[2])
		if lonDeg < 0 {
			lonDeg += 360.0
		}
		return int(math.Floor(lonDeg/90.0)) % 4
	}
	return FindDiscrete(startJD, endJD, 90.0, f, 0)
}

// MoonPhases finds new moons, first quarters, full moons, and last quarters
// in the given TDB Julian date range.
//
// Returns events with NewValue: NewMoon=0, FirstQuarter=1, FullMoon=2,
// LastQuarter=3.
func MoonPhases(alm *almanac.Almanac, startJD, endJD float64) ([]DiscreteEvent, error) {
	f := func(tdbJD float64) int {
		moonPos, err := apparentPosition(alm, moonFrame, tdbJD)
		if err != nil {
			return -1
		}
		sunPos, err := apparentPosition(alm, sunFrame, tdbJD)
		if err != nil {
			return -1
		}
		_, moonLon := rotation.ICRFToEcliptic(moonPos[0], moonPos[1], moonPos[2])
		_, sunLon := rotation.ICRFToEcliptic(sunPos[0], sunPos[1], sunPos[2])
		diff := moonLon - sunLon
		if diff < 0 {
			diff += 360.0
		}
		return int(math.Floor(diff/90.0)) % 4
	}
	return FindDiscrete(startJD, endJD, 5.0, f, 0)
}

// bodyAltitude returns a body's altitude in degrees as seen from a ground
// observer, or NaN if its position could not be resolved.
func bodyAltitude(alm *almanac.Almanac, body frame.Frame, latDeg, lonDeg, tdbJD float64) float64 {
	pos, err := apparentPosition(alm, body, tdbJD)
	if err != nil {
		return math.NaN()
	}
	jdUT1 := epoch.FromJDTDB(tdbJD).UT1()
	alt, _, _ := observe.Altaz(pos, latDeg, lonDeg, jdUT1)
	return alt
}

// SunriseSunset finds sunrise and sunset times for a ground observer in the
// given TDB Julian date range.
//
// latDeg, lonDeg: observer geodetic latitude and longitude in degrees.
// Returns events with NewValue=1 (sunrise) and NewValue=0 (sunset).
func SunriseSunset(alm *almanac.Almanac, latDeg, lonDeg, startJD, endJD float64) ([]DiscreteEvent, error) {
	f := func(tdbJD float64) int {
		if bodyAltitude(alm, sunFrame, latDeg, lonDeg, tdbJD) >= sunAltitudeThreshold {
			return 1
		}
		return 0
	}
	return FindDiscrete(startJD, endJD, 0.04, f, 0)
}

// Twilight finds transitions between darkness, twilight levels, and daylight
// for a ground observer in the given TDB Julian date range.
//
// Returns events with NewValue: Night=0, AstronomicalTwilight=1,
// NauticalTwilight=2, CivilTwilight=3, Daylight=4.
func Twilight(alm *almanac.Almanac, latDeg, lonDeg, startJD, endJD float64) ([]DiscreteEvent, error) {
	f := func(tdbJD float64) int {
		alt := bodyAltitude(alm, sunFrame, latDeg, lonDeg, tdbJD)
		switch {
		case alt >= sunAltitudeThreshold:
			return Daylight
		case alt >= -6.0:
			return CivilTwilight
		case alt >= -12.0:
			return NauticalTwilight
		case alt >= -18.0:
			return AstronomicalTwilight
		default:
			return Night
		}
	}
	return FindDiscrete(startJD, endJD, 0.01, f, 0)
}

// Risings finds times when body rises above the horizon for a ground
// observer in the given TDB Julian date range.
//
// The horizon is at -34 arcminutes (atmospheric refraction). Returns events
// with NewValue=1 (body rose).
func Risings(alm *almanac.Almanac, body frame.Frame, latDeg, lonDeg, startJD, endJD float64) ([]DiscreteEvent, error) {
	f := func(tdbJD float64) int {
		if bodyAltitude(alm, body, latDeg, lonDeg, tdbJD) >= refractionThreshold {
			return 1
		}
		return 0
	}
	events, err := FindDiscrete(startJD, endJD, 0.25, f, 0)
	if err != nil {
		return nil, err
	}
	var risings []DiscreteEvent
	for _, e := range events {
		if e.NewValue == 1 {
			risings = append(risings, e)
		}
	}
	return risings, nil
}

// Settings finds times when body sets below the horizon for a ground
// observer in the given TDB Julian date range.
//
// The horizon is at -34 arcminutes (atmospheric refraction). Returns events
// with NewValue=0 (body set).
func Settings(alm *almanac.Almanac, body frame.Frame, latDeg, lonDeg, startJD, endJD float64) ([]DiscreteEvent, error) {
	f := func(tdbJD float64) int {
		if bodyAltitude(alm, body, latDeg, lonDeg, tdbJD) >= refractionThreshold {
			return 1
		}
		return 0
	}
	events, err := FindDiscrete(startJD, endJD, 0.25, f, 0)
	if err != nil {
		return nil, err
	}
	var settings []DiscreteEvent
	for _, e := range events {
		if e.NewValue == 0 {
			settings = append(settings, e)
		}
	}
	return settings, nil
}

// Transits finds times when body crosses the observer's meridian (upper
// culmination) in the given TDB Julian date range.
//
// Returns events with NewValue=1 (body crossed from east to west of meridian).
func Transits(alm *almanac.Almanac, body frame.Frame, latDeg, lonDeg, startJD, endJD float64) ([]DiscreteEvent, error) {
	f := func(tdbJD float64) int {
		pos, err := apparentPosition(alm, body, tdbJD)
		if err != nil {
			return 0
		}
		jdUT1 := epoch.FromJDTDB(tdbJD).UT1()
		haDeg, _ := observe.HourAngleDec(pos, lonDeg, jdUT1)
		if haDeg > 180.0 {
			return 0 // east, approaching meridian
		}
		return 1 // west, past meridian
	}
	events, err := FindDiscrete(startJD, endJD, 0.4, f, 0)
	if err != nil {
		return nil, err
	}
	var transits []DiscreteEvent
	for _, e := range events {
		if e.NewValue == 1 {
			transits = append(transits, e)
		}
	}
	return transits, nil
}

// OppositionsConjunctions finds times when body is at opposition or
// conjunction with the Sun in the given TDB Julian date range.
//
// Returns events with NewValue=0 (conjunction: body near Sun) and
// NewValue=1 (opposition: body opposite Sun).
func OppositionsConjunctions(alm *almanac.Almanac, body frame.Frame, startJD, endJD float64) ([]DiscreteEvent, error) {
	f := func(tdbJD float64) int {
		sunPos, err := apparentPosition(alm, sunFrame, tdbJD)
		if err != nil {
			return 0
		}
		bodyPos, err := apparentPosition(alm, body, tdbJD)
		if err != nil {
			return 0
		}
		_, sunLon := rotation.ICRFToEcliptic(sunPos[0], sunPos[1], sunPos[2])
		_, bodyLon := rotation.ICRFToEcliptic(bodyPos[0], bodyPos[1], bodyPos[2])
		diff := sunLon - bodyLon
		if diff < 0 {
			diff += 360.0
		}
		return int(math.Floor(diff/180.0)) % 2
	}
	return FindDiscrete(startJD, endJD, 40.0, f, 0)
}
