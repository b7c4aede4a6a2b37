package rotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeflectionZeroWhenDeflectorOnLineOfSight(t *testing.T) {
	position := [3]float64{1e8, 0, 0}
	pe := [3]float64{5e7, 0, 0} // deflector directly along the line to the target
	d := Deflection(position, pe, 1.0)
	assert.Equal(t, [3]float64{}, d)
}

func TestDeflectionNonZeroForOffsetDeflector(t *testing.T) {
	position := [3]float64{1e8, 0, 0}
	pe := [3]float64{5e7, 5e6, 0} // deflector offset from the line of sight
	d := Deflection(position, pe, 1.0)
	assert.False(t, d[0] == 0 && d[1] == 0 && d[2] == 0, "expected nonzero deflection for offset deflector")
}

func TestDeflectionScalesInverselyWithMass(t *testing.T) {
	position := [3]float64{1e8, 0, 0}
	pe := [3]float64{5e7, 5e6, 0}

	dSun := Deflection(position, pe, 1.0)   // Sun: rmass = 1
	dHeavy := Deflection(position, pe, 0.5) // a more massive deflector: smaller rmass

	magSun := length3(dSun)
	magHeavy := length3(dHeavy)
	assert.Greater(t, magHeavy, magSun)
}

func TestDeflectionZeroForDegenerateVectors(t *testing.T) {
	d := Deflection([3]float64{}, [3]float64{1, 0, 0}, 1.0)
	assert.Equal(t, [3]float64{}, d)

	d = Deflection([3]float64{1, 0, 0}, [3]float64{}, 1.0)
	assert.Equal(t, [3]float64{}, d)
}
