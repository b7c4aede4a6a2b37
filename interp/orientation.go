package interp

// EulerAngleBuilder builds a DCM and its time derivative from a triple of
// Euler angles and their time derivatives. Implemented by rotation.EulerAxisDCM;
// passed in rather than imported directly so interp has no dependency on
// the rotation package's axis-sequence types.
type EulerAngleBuilder func(angles, rates [3]float64) (dcm, dcmDot [3][3]float64)

// Orientation2 is a type-2 (Chebyshev) BPC orientation segment: three
// Euler-angle polynomial series (e.g. right ascension, declination, and
// prime-meridian rotation, or a 3-1-3 axis sequence) evaluated the same way
// a position Type2 segment is, then assembled into a DCM.
type Orientation2 struct {
	Angles Type2 // Components must be 3; reuses the same record layout
	Build  EulerAngleBuilder
}

// At evaluates the three Euler angles and their rates at tdbSec and
// assembles them into a DCM and its time derivative via Build.
func (o *Orientation2) At(tdbSec float64) (dcm, dcmDot [3][3]float64, err error) {
	anglesVal, rates, perr := o.Angles.PositionVelocity(tdbSec)
	if perr != nil {
		return dcm, dcmDot, perr
	}
	dcm, dcmDot = o.Build(anglesVal, rates)
	return dcm, dcmDot, nil
}
