package observe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefractionZenith(t *testing.T) {
	r := Refraction(90.0, 10.0, 1013.25)
	assert.Zero(t, r)
}

func TestRefractionBelowHorizon(t *testing.T) {
	r := Refraction(-2.0, 10.0, 1013.25)
	assert.Zero(t, r)
}

func TestRefractionHorizon(t *testing.T) {
	r := Refraction(0.0, 10.0, 1013.25)
	assert.True(t, r >= 0.3 && r <= 0.7, "horizon refraction: got %f, want ~0.5", r)
}

func TestRefractionHighAltitude(t *testing.T) {
	r45 := Refraction(45.0, 10.0, 1013.25)
	r10 := Refraction(10.0, 10.0, 1013.25)
	assert.Less(t, r45, r10)
}

func TestRefractionTemperature(t *testing.T) {
	rCold := Refraction(10.0, -10.0, 1013.25)
	rHot := Refraction(10.0, 30.0, 1013.25)
	assert.Greater(t, rCold, rHot)
}

func TestRefractionPressure(t *testing.T) {
	rLow := Refraction(10.0, 10.0, 800.0)
	rHigh := Refraction(10.0, 10.0, 1013.25)
	assert.Less(t, rLow, rHigh)
}

func TestRefractConvergence(t *testing.T) {
	alt := Refract(10.0, 10.0, 1013.25)
	assert.GreaterOrEqual(t, alt, 10.0)
	assert.Less(t, alt, 11.0)
}

func TestRefractNearZenith(t *testing.T) {
	alt := Refract(89.0, 10.0, 1013.25)
	assert.InDelta(t, 89.0, alt, 0.01)
}

func TestRefractionMonotonicInAltitude(t *testing.T) {
	prev := math.Inf(1)
	for alt := 1.0; alt < 80.0; alt += 10.0 {
		r := Refraction(alt, 10.0, 1013.25)
		assert.LessOrEqual(t, r, prev)
		prev = r
	}
}

func BenchmarkRefraction(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Refraction(30.0, 10.0, 1013.25)
	}
}

func BenchmarkRefract(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Refract(30.0, 10.0, 1013.25)
	}
}
