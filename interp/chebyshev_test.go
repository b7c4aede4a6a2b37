package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChebyshevPositionConstant(t *testing.T) {
	assert.Equal(t, 5.0, ChebyshevPosition([]float64{5.0}, 0.3))
}

func TestChebyshevPositionEmpty(t *testing.T) {
	assert.Equal(t, 0.0, ChebyshevPosition(nil, 0.5))
}

func TestChebyshevPositionLinearTerm(t *testing.T) {
	// T0(s)=1, T1(s)=s -> c0*1 + c1*s
	got := ChebyshevPosition([]float64{2, 3}, 0.5)
	assert.InDelta(t, 2+3*0.5, got, 1e-12)
}

func TestChebyshevPositionMatchesDirectT2(t *testing.T) {
	// T2(s) = 2s^2 - 1
	s := 0.4
	got := ChebyshevPosition([]float64{0, 0, 1}, s)
	want := 2*s*s - 1
	assert.InDelta(t, want, got, 1e-12)
}

func TestChebyshevDerivativeCoeffsLinear(t *testing.T) {
	deriv := chebyshevDerivativeCoeffs([]float64{1, 2})
	require.Len(t, deriv, 1)
	assert.InDelta(t, 2.0, deriv[0], 1e-12)
}

func TestChebyshevPositionVelocityConstant(t *testing.T) {
	pos, vel := ChebyshevPositionVelocity([]float64{7}, 0.1, 1.0)
	assert.Equal(t, 7.0, pos)
	assert.Equal(t, 0.0, vel)
}

func TestChebyshevPositionVelocityLinear(t *testing.T) {
	// position = 2 + 3s, d/ds = 3, scaled by dsdt
	pos, vel := ChebyshevPositionVelocity([]float64{2, 3}, 0.2, 2.0)
	assert.InDelta(t, 2+3*0.2, pos, 1e-12)
	assert.InDelta(t, 3*2.0, vel, 1e-12)
}

func makeType2(components int) *Type2 {
	recWords := components * 2
	rec0 := make([]float64, recWords)
	rec1 := make([]float64, recWords)
	for c := 0; c < components; c++ {
		rec0[c*2] = float64(c + 1) // constant term, zero s-slope
		rec1[c*2] = float64(c+1) * 10
	}
	return &Type2{
		Init:       0,
		IntLen:     100,
		NCoeffs:    2,
		NRecords:   2,
		Components: components,
		Data:       append(rec0, rec1...),
	}
}

func TestType2PositionSelectsRecord(t *testing.T) {
	seg := makeType2(3)
	pos, err := seg.Position(10) // falls in record 0 (mid 50, radius 50), s=-0.8
	require.NoError(t, err)
	assert.InDelta(t, 1.0, pos[0], 1e-9)
	assert.InDelta(t, 2.0, pos[1], 1e-9)
	assert.InDelta(t, 3.0, pos[2], 1e-9)
}

func TestType2PositionSecondRecord(t *testing.T) {
	seg := makeType2(3)
	pos, err := seg.Position(150) // second record
	require.NoError(t, err)
	assert.InDelta(t, 10.0, pos[0], 1e-9)
}

func TestType2PositionEmptyErrors(t *testing.T) {
	seg := &Type2{}
	_, err := seg.Position(0)
	assert.Error(t, err)
}

func TestType2PositionClampsOutOfRange(t *testing.T) {
	seg := makeType2(3)
	posLow, err := seg.Position(-1000)
	require.NoError(t, err)
	posHigh, err := seg.Position(1000)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, posLow[0], 1e-9)
	assert.InDelta(t, 10.0, posHigh[0], 1e-9)
}

func TestType2PositionVelocityType3Components(t *testing.T) {
	seg := makeType2(6)
	pos, vel, err := seg.PositionVelocity(10)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, pos[0], 1e-9)
	assert.InDelta(t, 4.0, vel[0], 1e-9) // velocity is the 4th coefficient pair
}

func TestType2PositionVelocityDerivedFromPosition(t *testing.T) {
	seg := makeType2(3)
	_, vel, err := seg.PositionVelocity(10)
	require.NoError(t, err)
	// constant coefficient-only series has zero derivative
	assert.InDelta(t, 0.0, vel[0], 1e-9)
}

func TestType2PositionVelocityEmptyErrors(t *testing.T) {
	seg := &Type2{}
	_, _, err := seg.PositionVelocity(0)
	assert.Error(t, err)
}
