package rotation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertOrthonormal(t *testing.T, m [3][3]float64, tol float64) {
	t.Helper()
	var prod [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				prod[i][j] += m[i][k] * m[j][k]
			}
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, prod[i][j], tol)
		}
	}
}

func TestGalacticMatrixOrthogonal(t *testing.T) {
	assertOrthonormal(t, GalacticMatrix, 1e-14)
}

func TestGalacticMatrixDetPositive(t *testing.T) {
	m := GalacticMatrix
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	assert.InDelta(t, 1.0, det, 1e-14)
}

func TestB1950MatrixOrthogonal(t *testing.T) {
	assertOrthonormal(t, B1950Matrix, 1e-14)
}

func TestICRSToJ2000MatrixNearIdentity(t *testing.T) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, ICRSToJ2000Matrix[i][j], 1e-4)
		}
	}
}

func TestICRSToJ2000MatrixNonIdentity(t *testing.T) {
	isIdentity := true
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if ICRSToJ2000Matrix[i][j] != want {
				isIdentity = false
			}
		}
	}
	assert.False(t, isIdentity, "ICRSToJ2000Matrix is exactly identity")
}

func TestICRFToGalacticGalacticCenter(t *testing.T) {
	x, y, z := RADecToICRF(17.0+45.0/60.0+40.0409/3600.0, -(29.0 + 0.0/60.0 + 28.118/3600.0))
	lat, lon := ICRFToGalactic(x, y, z)
	assert.InDelta(t, 0, lat, 0.1)
	if math.Abs(lon) > 0.1 && math.Abs(lon-360) > 0.1 {
		t.Errorf("galactic center lon: got %f, want ~0", lon)
	}
}

func TestICRFToGalacticNorthPole(t *testing.T) {
	x, y, z := RADecToICRF(12.0+51.0/60.0+26.28/3600.0, 27.0+7.0/60.0+41.7/3600.0)
	lat, _ := ICRFToGalactic(x, y, z)
	assert.InDelta(t, 90.0, lat, 0.1)
}

func TestICRFToGalacticZeroVector(t *testing.T) {
	lat, lon := ICRFToGalactic(0, 0, 0)
	assert.Zero(t, lat)
	assert.Zero(t, lon)
}

func TestEulerAxisDCMIdentityAtZeroAngles(t *testing.T) {
	dcm, _ := EulerAxisDCM([3]Axis{AxisZ, AxisX, AxisZ}, [3]float64{0, 0, 0}, [3]float64{0, 0, 0})
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, dcm[i][j], 1e-15)
		}
	}
}

func TestEulerAxisDCMOrthonormal(t *testing.T) {
	dcm, _ := EulerAxisDCM([3]Axis{AxisZ, AxisX, AxisZ}, [3]float64{0.3, 0.7, 1.1}, [3]float64{0, 0, 0})
	assertOrthonormal(t, dcm, 1e-12)
}

func TestEulerAxisDCMDerivativeZeroWhenRatesZero(t *testing.T) {
	_, dcmDot := EulerAxisDCM([3]Axis{AxisZ, AxisX, AxisZ}, [3]float64{0.3, 0.7, 1.1}, [3]float64{0, 0, 0})
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Zero(t, dcmDot[i][j])
		}
	}
}
