package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityBuilder(angles, rates [3]float64) (dcm, dcmDot [3][3]float64) {
	dcm = [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	return dcm, dcmDot
}

func TestOrientation2AtCallsBuildWithEvaluatedAngles(t *testing.T) {
	var gotAngles, gotRates [3]float64
	capture := func(angles, rates [3]float64) (dcm, dcmDot [3][3]float64) {
		gotAngles, gotRates = angles, rates
		return identityBuilder(angles, rates)
	}

	seg := &Orientation2{
		Angles: Type2{
			Init: 0, IntLen: 100, NCoeffs: 2, NRecords: 1, Components: 3,
			Data: []float64{0.1, 0, 0.2, 0, 0.3, 0},
		},
		Build: capture,
	}

	dcm, _, err := seg.At(0)
	require.NoError(t, err)
	assert.Equal(t, [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, dcm)
	assert.InDelta(t, 0.1, gotAngles[0], 1e-9)
	assert.InDelta(t, 0.2, gotAngles[1], 1e-9)
	assert.InDelta(t, 0.3, gotAngles[2], 1e-9)
	assert.InDelta(t, 0.0, gotRates[0], 1e-9) // constant series has zero rate
}

func TestOrientation2AtPropagatesUnderlyingError(t *testing.T) {
	seg := &Orientation2{Angles: Type2{}, Build: identityBuilder}
	_, _, err := seg.At(0)
	assert.Error(t, err)
}
