// Package interp evaluates the segment interpolation types an SPK or BPC
// kernel can carry: Chebyshev polynomials (types 2 and 3, position-only and
// position+velocity) and Hermite/Lagrange interpolation over discrete
// states (types 9 and 13, equal- and unequal-time).
package interp

import "github.com/anise-go/anise/errs"

// ChebyshevPosition evaluates a Chebyshev polynomial series at s in [-1,1]
// via the Clenshaw recurrence, avoiding the numerical instability of
// evaluating each T_n(s) term independently.
func ChebyshevPosition(coeffs []float64, s float64) float64 {
	n := len(coeffs)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return coeffs[0]
	}
	bk1, bk2 := 0.0, 0.0
	for k := n - 1; k >= 1; k-- {
		bk := 2*s*bk1 - bk2 + coeffs[k]
		bk2 = bk1
		bk1 = bk
	}
	return s*bk1 - bk2 + coeffs[0]
}

// chebyshevDerivativeCoeffs returns the coefficients of d/ds of the
// Chebyshev series defined by coeffs, via the standard derivative
// recurrence c'_{k-1} = c'_{k+1} + 2k*c_k, with the constant term c'_0
// halved because T0 carries half weight in the series.
func chebyshevDerivativeCoeffs(coeffs []float64) []float64 {
	n := len(coeffs)
	if n < 2 {
		return make([]float64, n)
	}
	deriv := make([]float64, n-1)
	deriv[n-2] = 2 * float64(n-1) * coeffs[n-1]
	if n >= 3 {
		deriv[n-3] = 2 * float64(n-2) * coeffs[n-2]
	}
	for k := n - 4; k >= 0; k-- {
		deriv[k] = deriv[k+2] + 2*float64(k+1)*coeffs[k+1]
	}
	deriv[0] /= 2
	return deriv
}

// ChebyshevPositionVelocity evaluates both the series and its derivative at
// s, applying the chain-rule scale factor dsdt (ds/dt, the reciprocal of
// half the record's interval length) to convert the derivative with
// respect to s into a derivative with respect to time.
func ChebyshevPositionVelocity(coeffs []float64, s, dsdt float64) (pos, vel float64) {
	pos = ChebyshevPosition(coeffs, s)
	deriv := chebyshevDerivativeCoeffs(coeffs)
	vel = ChebyshevPosition(deriv, s) * dsdt
	return
}

// Type2 is a position-only Chebyshev segment (SPK/BPC type 2): a sequence
// of fixed-length records, each holding one polynomial per Cartesian
// component, evaluated over an interval of constant length.
type Type2 struct {
	Init    float64 // initial epoch, TDB seconds past J2000
	IntLen  float64 // record interval length, seconds
	NCoeffs int     // Chebyshev coefficients per component
	NRecords int
	Data    []float64 // NRecords * Components * NCoeffs, record-major
	Components int    // 3 for position-only, 6 for position+velocity (type 3)
}

// Type3 is a position+velocity Chebyshev segment (SPK type 3): identical
// layout to Type2 but with Components set to 6 (3 position + 3 velocity
// polynomials per record).
type Type3 = Type2

// recordAndS locates the record covering tdbSec and the normalized
// Chebyshev parameter s in [-1,1] within it, clamping to the first/last
// record when tdbSec falls outside the segment's nominal span (matching
// the teacher's tolerant clamping behavior rather than erroring on
// boundary epochs a caller has already validated against the segment's
// start/end).
func (t *Type2) recordAndS(tdbSec float64) (rec int, s float64) {
	idx := int((tdbSec - t.Init) / t.IntLen)
	if idx < 0 {
		idx = 0
	}
	if idx >= t.NRecords {
		idx = t.NRecords - 1
	}
	mid := t.Init + (float64(idx)+0.5)*t.IntLen
	s = (tdbSec - mid) / (t.IntLen / 2)
	if s < -1 {
		s = -1
	}
	if s > 1 {
		s = 1
	}
	return idx, s
}

// Position evaluates the segment's position at tdbSec.
func (t *Type2) Position(tdbSec float64) ([3]float64, error) {
	if t.NRecords == 0 {
		return [3]float64{}, errs.New(errs.KindLookup, errs.ReasonNoInterpolationData)
	}
	rec, s := t.recordAndS(tdbSec)
	recWords := t.Components * t.NCoeffs
	base := rec * recWords
	var out [3]float64
	for c := 0; c < 3; c++ {
		coeffs := t.Data[base+c*t.NCoeffs : base+(c+1)*t.NCoeffs]
		out[c] = ChebyshevPosition(coeffs, s)
	}
	return out, nil
}

// PositionVelocity evaluates position and velocity at tdbSec. For type-3
// (Components==6) segments, velocity is the second set of 3 polynomials,
// evaluated directly; for type-2 (Components==3) segments, velocity is
// obtained by differentiating the position polynomials.
func (t *Type2) PositionVelocity(tdbSec float64) (pos, vel [3]float64, err error) {
	if t.NRecords == 0 {
		return pos, vel, errs.New(errs.KindLookup, errs.ReasonNoInterpolationData)
	}
	rec, s := t.recordAndS(tdbSec)
	recWords := t.Components * t.NCoeffs
	base := rec * recWords
	dsdt := 2.0 / t.IntLen

	for c := 0; c < 3; c++ {
		coeffs := t.Data[base+c*t.NCoeffs : base+(c+1)*t.NCoeffs]
		if t.Components == 6 {
			pos[c] = ChebyshevPosition(coeffs, s)
			vcoeffs := t.Data[base+(3+c)*t.NCoeffs : base+(4+c)*t.NCoeffs]
			vel[c] = ChebyshevPosition(vcoeffs, s)
		} else {
			pos[c], vel[c] = ChebyshevPositionVelocity(coeffs, s, dsdt)
		}
	}
	return pos, vel, nil
}
