package almanac

import (
	"github.com/anise-go/anise/epoch"
	"github.com/anise-go/anise/errs"
	"github.com/anise-go/anise/frame"
	"github.com/anise-go/anise/observe"
	"github.com/anise-go/anise/rotation"
	"github.com/anise-go/anise/spacemath"
)

const speedOfLightKmPerSec = 299792.458

// rawTranslate sums a resolved translation path's edges at atTDBSec,
// returning to's position and velocity relative to from (km, km/s).
func (a *Almanac) rawTranslate(from, to int32, atTDBSec float64) (pos, vel [3]float64, err error) {
	path, err := a.graph.TranslationPath(from, to, atTDBSec)
	if err != nil {
		return pos, vel, err
	}
	for _, hop := range path {
		p, v, ok := hop.Edge.Eval(atTDBSec)
		if !ok {
			return [3]float64{}, [3]float64{}, errs.New(errs.KindLookup, errs.ReasonNoInterpolationData).
				WithPath(hop.Edge.Target, hop.Edge.Center, atTDBSec/86400.0+2451545.0)
		}
		sign := 1.0
		if hop.Forward {
			sign = -1.0
		}
		for c := 0; c < 3; c++ {
			pos[c] += sign * p[c]
			vel[c] += sign * v[c]
		}
	}
	return pos, vel, nil
}

// Translate returns to's state relative to from at the given epoch, applying
// the requested aberration correction.
func (a *Almanac) Translate(from, to frame.Frame, at epoch.Epoch, ab AberrationCorrection) (spacemath.Cartesian, error) {
	t := at.TDBSeconds()
	pos, vel, err := a.rawTranslate(from.EphemerisID, to.EphemerisID, t)
	if err != nil {
		return spacemath.Cartesian{}, err
	}
	if ab == None {
		return spacemath.NewCartesian(spacemath.Vec3(pos), spacemath.Vec3(vel), at, to), nil
	}

	ltTDB := t
	var lightTime float64
	for i := 0; i < maxAberrationIterations; i++ {
		r := spacemath.Vec3(pos).Norm()
		lightTime = r / speedOfLightKmPerSec
		ltTDB = t - lightTime
		pos, vel, err = a.rawTranslate(from.EphemerisID, to.EphemerisID, ltTDB)
		if err != nil {
			return spacemath.Cartesian{}, err
		}
	}

	if ab == LightTimeStellar || ab == Converged {
		_, obsVel, err := a.rawTranslate(0, from.EphemerisID, t)
		if err == nil {
			pos = rotation.Aberration(pos, obsVel, lightTime)
		}
	}

	return spacemath.NewCartesian(spacemath.Vec3(pos), spacemath.Vec3(vel), at, to), nil
}

// Rotate returns the DCM (and its time derivative) carrying a vector
// expressed in from's orientation into to's orientation at the given epoch.
func (a *Almanac) Rotate(from, to frame.Frame, at epoch.Epoch) (spacemath.DCM, spacemath.DCMDot, error) {
	t := at.TDBSeconds()
	edges, err := a.graph.OrientationPath(from.OrientationID, to.OrientationID, t)
	if err != nil {
		return spacemath.DCM{}, spacemath.DCMDot{}, err
	}
	links := make([]rotation.RotationLink, 0, len(edges))
	for _, e := range edges {
		m, mDot, ok := e.Eval(t)
		if !ok {
			return spacemath.DCM{}, spacemath.DCMDot{}, errs.New(errs.KindLookup, errs.ReasonNoInterpolationData).
				WithPath(e.ToOrient, e.FromOrient, t/86400.0+2451545.0)
		}
		links = append(links, rotation.RotationLink{DCM: m, DCMDot: mDot})
	}
	dcm, dcmDot := rotation.ComposeChain(links)
	return spacemath.DCM(dcm), spacemath.DCMDot(dcmDot), nil
}

// Transform returns to's state relative to from with both translation and
// rotation applied: the Cartesian state is first computed in from's
// orientation, then rotated into to's orientation.
func (a *Almanac) Transform(from, to frame.Frame, at epoch.Epoch, ab AberrationCorrection) (spacemath.Cartesian, error) {
	state, err := a.Translate(frame.NewFrame(from.EphemerisID, from.OrientationID), frame.NewFrame(to.EphemerisID, from.OrientationID), at, ab)
	if err != nil {
		return spacemath.Cartesian{}, err
	}
	if from.OrientationID == to.OrientationID || from.OrientationID == 0 || to.OrientationID == 0 {
		return state, nil
	}
	dcm, _, err := a.Rotate(from, to, at)
	if err != nil {
		return spacemath.Cartesian{}, err
	}
	rotated := dcm.Apply(state.R)
	rotatedVel := dcm.Apply(state.V)
	return spacemath.NewCartesian(rotated, rotatedVel, at, to), nil
}

// AzimuthElevationRange reports the topocentric elevation, azimuth, and
// range (in that return order) of target as seen from a ground station at (latDeg, lonDeg),
// evaluated at the given epoch.
func (a *Almanac) AzimuthElevationRange(target frame.Frame, observer frame.Frame, latDeg, lonDeg float64, at epoch.Epoch) (elDeg, azDeg, rangeKm float64, err error) {
	state, err := a.Translate(observer, target, at, LightTime)
	if err != nil {
		return 0, 0, 0, err
	}
	jdUT1 := at.UT1()
	elDeg, azDeg, rangeKm = observe.Altaz([3]float64(state.R), latDeg, lonDeg, jdUT1)
	return elDeg, azDeg, rangeKm, nil
}

// LineOfSightObstructed reports whether occulter blocks the line of sight
// between observer and target at the given epoch.
func (a *Almanac) LineOfSightObstructed(observer, target, occulter frame.Frame, occulterRadiusKm, altitudeBufferKm float64, at epoch.Epoch) (bool, error) {
	obs, err := a.Translate(frame.NewFrame(0, 0), observer, at, None)
	if err != nil {
		return false, err
	}
	tgt, err := a.Translate(frame.NewFrame(0, 0), target, at, None)
	if err != nil {
		return false, err
	}
	occ, err := a.Translate(frame.NewFrame(0, 0), occulter, at, None)
	if err != nil {
		return false, err
	}
	return observe.LineOfSightObstructed([3]float64(obs.R), [3]float64(tgt.R), [3]float64(occ.R), occulterRadiusKm, altitudeBufferKm), nil
}

// SolarEclipsing reports the fraction of the sun's apparent disc covered by
// occulter as seen from observer at the given epoch (0 = uncovered,
// 1 = fully covered).
func (a *Almanac) SolarEclipsing(observer, sun, occulter frame.Frame, occulterRadiusKm float64, at epoch.Epoch) (coverage float64, err error) {
	sunState, err := a.Translate(observer, sun, at, LightTime)
	if err != nil {
		return 0, err
	}
	occState, err := a.Translate(observer, occulter, at, LightTime)
	if err != nil {
		return 0, err
	}

	const degToRad = 3.141592653589793 / 180.0
	const sunRadiusKm = 696000.0

	sunDist := sunState.R.Norm()
	occDist := occState.R.Norm()
	sep := observe.SeparationAngle([3]float64(sunState.R), [3]float64(occState.R)) * degToRad
	sunAngRad := observe.AngularRadius(sunRadiusKm, sunDist)
	occAngRad := observe.AngularRadius(occulterRadiusKm, occDist)

	return observe.Occultation(sep, occAngRad, sunAngRad), nil
}
