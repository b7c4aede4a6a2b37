// Package epoch implements the time scales an ephemeris query needs: TDB,
// TAI, UTC, TT, and ET, plus the leap-second table and ΔT (TT−UT1) history
// that convert between them. Internally every Epoch is stored as TDB
// seconds past the J2000 epoch (2000-01-01T12:00 TDB), the same
// representation the Chebyshev segment math is evaluated in.
package epoch

import (
	"math"
	"time"
)

// TimeScale identifies one of the time scales an Epoch can be expressed in.
type TimeScale int

const (
	TDB TimeScale = iota
	TAI
	UTC
	TT
	ET
)

func (s TimeScale) String() string {
	switch s {
	case TDB:
		return "TDB"
	case TAI:
		return "TAI"
	case UTC:
		return "UTC"
	case TT:
		return "TT"
	case ET:
		return "ET"
	default:
		return "unknown"
	}
}

const (
	// SecPerDay is the number of SI seconds in a day.
	SecPerDay = 86400.0
	// J2000JD is the Julian date of the J2000.0 epoch.
	J2000JD = 2451545.0
	// unixEpochJD is the Julian date of the Unix epoch (1970-01-01T00:00 UTC).
	unixEpochJD = 2440587.5
	// ttMinusTAI is the constant 32.184s offset between TT and TAI.
	ttMinusTAI = 32.184
)

// Epoch is an instant in time, stored as TDB seconds past J2000.
type Epoch struct {
	tdbSec float64
}

// FromTDBSeconds builds an Epoch directly from TDB seconds past J2000.
func FromTDBSeconds(sec float64) Epoch { return Epoch{tdbSec: sec} }

// FromJDTDB builds an Epoch from a TDB Julian date.
func FromJDTDB(jd float64) Epoch { return Epoch{tdbSec: (jd - J2000JD) * SecPerDay} }

// FromJDUTC builds an Epoch from a UTC Julian date, applying the leap-second
// offset and the constant TT-TAI 32.184s correction to reach TDB.
func FromJDUTC(jdUTC float64) Epoch {
	jdTT := jdUTC + UTCToTTOffsetDays(jdUTC)
	tdbSec := (jdTT-J2000JD)*SecPerDay + TDBMinusTT((jdTT-J2000JD)*SecPerDay)
	return Epoch{tdbSec: tdbSec}
}

// FromTime builds an Epoch from a Go time.Time (interpreted as UTC).
func FromTime(t time.Time) Epoch {
	return FromJDUTC(TimeToJDUTC(t))
}

// TimeToJDUTC converts a time.Time (treated as UTC) to a UTC Julian date with
// nanosecond precision.
func TimeToJDUTC(t time.Time) float64 {
	unixSec := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return unixEpochJD + unixSec/SecPerDay
}

// In returns the epoch expressed as a Julian date in the given scale.
func (e Epoch) In(scale TimeScale) float64 {
	jdTDB := e.tdbSec/SecPerDay + J2000JD
	switch scale {
	case TDB:
		return jdTDB
	case TT:
		return jdTDB - TDBMinusTT(e.tdbSec)/SecPerDay
	case TAI:
		jdTT := jdTDB - TDBMinusTT(e.tdbSec)/SecPerDay
		return jdTT - ttMinusTAI/SecPerDay
	case UTC:
		jdTT := jdTDB - TDBMinusTT(e.tdbSec)/SecPerDay
		return jdTT - UTCToTTOffsetDays(jdTT)
	case ET:
		return jdTDB
	default:
		return jdTDB
	}
}

// TDBSeconds returns the epoch as TDB seconds past J2000 — the native
// representation Chebyshev/Hermite segment evaluation expects.
func (e Epoch) TDBSeconds() float64 { return e.tdbSec }

// Duration is a span of time with nanosecond precision.
type Duration int64

// Seconds returns the duration in seconds.
func (d Duration) Seconds() float64 { return float64(d) / 1e9 }

// DurationFromSeconds builds a Duration from a number of seconds.
func DurationFromSeconds(sec float64) Duration { return Duration(sec * 1e9) }

// Add returns the epoch offset by d.
func (e Epoch) Add(d Duration) Epoch { return Epoch{tdbSec: e.tdbSec + d.Seconds()} }

// Sub returns the duration from other to e.
func (e Epoch) Sub(other Epoch) Duration { return DurationFromSeconds(e.tdbSec - other.tdbSec) }

// leapSecondEntry is one row of the UTC leap-second table: the offset, in
// whole seconds, that applies at and after jdUTC.
type leapSecondEntry struct {
	jdUTC  float64
	offset float64
}

// leapSeconds is not exhaustive back to 1960 but covers the introduction of
// the modern leap-second system (1972) through the most recent insertion
// (2017-01-01), which is sufficient for any kernel epoch range this module
// is expected to see.
var leapSeconds = []leapSecondEntry{
	{jdUTC: 2441317.5, offset: 10}, // 1972-01-01
	{jdUTC: 2441499.5, offset: 11}, // 1972-07-01
	{jdUTC: 2441683.5, offset: 12}, // 1973-01-01
	{jdUTC: 2442048.5, offset: 13}, // 1974-01-01
	{jdUTC: 2442413.5, offset: 14}, // 1975-01-01
	{jdUTC: 2442778.5, offset: 15}, // 1976-01-01
	{jdUTC: 2443144.5, offset: 16}, // 1977-01-01
	{jdUTC: 2443509.5, offset: 17}, // 1978-01-01
	{jdUTC: 2443874.5, offset: 18}, // 1979-01-01
	{jdUTC: 2444239.5, offset: 19}, // 1980-01-01
	{jdUTC: 2444786.5, offset: 20}, // 1981-07-01
	{jdUTC: 2445151.5, offset: 21}, // 1982-07-01
	{jdUTC: 2445516.5, offset: 22}, // 1983-07-01
	{jdUTC: 2446247.5, offset: 23}, // 1985-07-01
	{jdUTC: 2447161.5, offset: 24}, // 1988-01-01
	{jdUTC: 2447892.5, offset: 25}, // 1990-01-01
	{jdUTC: 2448257.5, offset: 26}, // 1991-01-01
	{jdUTC: 2448804.5, offset: 27}, // 1992-07-01
	{jdUTC: 2449169.5, offset: 28}, // 1993-07-01
	{jdUTC: 2449534.5, offset: 29}, // 1994-07-01
	{jdUTC: 2450083.5, offset: 30}, // 1996-01-01
	{jdUTC: 2450630.5, offset: 31}, // 1997-07-01
	{jdUTC: 2451179.5, offset: 32}, // 1999-01-01
	{jdUTC: 2453736.5, offset: 33}, // 2006-01-01
	{jdUTC: 2454832.5, offset: 34}, // 2009-01-01
	{jdUTC: 2456109.5, offset: 35}, // 2012-07-01
	{jdUTC: 2457204.5, offset: 36}, // 2015-07-01
	{jdUTC: 2457754.5, offset: 37}, // 2017-01-01
}

// LeapSecondOffset returns the TAI-UTC offset, in seconds, applicable at the
// given UTC Julian date. Dates before 1972-01-01 return the pre-1972 value
// of 10 seconds; dates after the table's last entry clamp to the latest
// known offset.
func LeapSecondOffset(jdUTC float64) float64 {
	if jdUTC < leapSeconds[0].jdUTC {
		return 10
	}
	offset := leapSeconds[0].offset
	for _, e := range leapSeconds {
		if jdUTC < e.jdUTC {
			break
		}
		offset = e.offset
	}
	return offset
}

// UTCToTTOffsetDays returns (TAI-UTC + 32.184s) expressed in days, the
// correction that maps a UTC Julian date to TT.
func UTCToTTOffsetDays(jdUTC float64) float64 {
	return (LeapSecondOffset(jdUTC) + ttMinusTAI) / SecPerDay
}

// deltaTEntry is one row of the historical ΔT = TT - UT1 table, keyed by
// decimal year.
type deltaTEntry struct {
	year  float64
	value float64
}

// deltaT is a coarse historical table of TT-UT1 in seconds, adequate for
// converting a TT epoch to UT1 for Earth-orientation purposes; it is not a
// substitute for the IERS bulletin for epochs within the current year.
var deltaT = []deltaTEntry{
	{1800, 13.72}, {1820, 12.0}, {1840, 6.0}, {1860, 7.0}, {1880, -5.0},
	{1900, -2.8}, {1920, 21.0}, {1940, 24.0}, {1960, 33.0}, {1980, 50.5},
	{2000, 63.83}, {2010, 66.07}, {2020, 69.36}, {2200, 69.36},
}

// DeltaT returns TT-UT1 in seconds for the given decimal year, clamping to
// the table boundaries and linearly interpolating between entries.
func DeltaT(year float64) float64 {
	if year <= deltaT[0].year {
		return deltaT[0].value
	}
	last := len(deltaT) - 1
	if year >= deltaT[last].year {
		return deltaT[last].value
	}
	for i := 0; i < last; i++ {
		a, b := deltaT[i], deltaT[i+1]
		if year >= a.year && year <= b.year {
			frac := (year - a.year) / (b.year - a.year)
			return a.value + frac*(b.value-a.value)
		}
	}
	return deltaT[last].value
}

// TDBMinusTT returns the periodic TDB-TT correction in seconds, using the
// truncated Fairhead & Bretagnon (1990) series. tdbSecPastJ2000 is TDB
// seconds past J2000 (amplitude is under 2ms and the TDB/TT distinction in
// the input is immaterial at this precision).
func TDBMinusTT(tdbSecPastJ2000 float64) float64 {
	t := tdbSecPastJ2000 / SecPerDay / 36525.0
	g := 357.53 + 0.9856003*(tdbSecPastJ2000/SecPerDay)
	gRad := g * math.Pi / 180.0
	return 0.001658*math.Sin(gRad) + 0.000014*math.Sin(2*gRad) + 0.0000001*t
}

// yearOf returns the decimal year of a TT Julian date, for ΔT lookups.
func yearOf(jdTT float64) float64 {
	return 2000.0 + (jdTT-J2000JD)/365.25
}

// TTToUT1 converts a TT Julian date to UT1 using DeltaT.
func TTToUT1(jdTT float64) float64 {
	return jdTT - DeltaT(yearOf(jdTT))/SecPerDay
}

// UT1 returns e expressed as a UT1 Julian date, a convenience combining
// In(TT) and TTToUT1.
func (e Epoch) UT1() float64 {
	return TTToUT1(e.In(TT))
}
