package rotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeChainEmptyIsIdentity(t *testing.T) {
	dcm, dcmDot := ComposeChain(nil)
	assert.Equal(t, identity3(), dcm)
	assert.Equal(t, [3][3]float64{}, dcmDot)
}

func TestComposeChainSingleLinkPassesThrough(t *testing.T) {
	m, mDot := elementaryDCM(AxisZ, 0.3, 0.05)
	dcm, dcmDot := ComposeChain([]RotationLink{{DCM: m, DCMDot: mDot}})
	assert.Equal(t, m, dcm)
	assert.Equal(t, mDot, dcmDot)
}

// TestComposeChainMatchesEulerAxisDCM checks ComposeChain's generalized fold
// against EulerAxisDCM's fixed 3-rotation product rule for the same angles,
// confirming the two agree on both the composed DCM and its derivative.
func TestComposeChainMatchesEulerAxisDCM(t *testing.T) {
	axes := [3]Axis{AxisZ, AxisX, AxisZ}
	angles := [3]float64{0.4, 0.2, -0.1}
	rates := [3]float64{0.01, -0.02, 0.03}

	wantDCM, wantDot := EulerAxisDCM(axes, angles, rates)

	links := make([]RotationLink, 3)
	for i := range axes {
		m, mDot := elementaryDCM(axes[i], angles[i], rates[i])
		links[i] = RotationLink{DCM: m, DCMDot: mDot}
	}
	gotDCM, gotDot := ComposeChain(links)

	assert.InDelta(t, 0, maxAbsDiff(wantDCM, gotDCM), 1e-12)
	assert.InDelta(t, 0, maxAbsDiff(wantDot, gotDot), 1e-12)
}

// TestComposeChainZeroDerivativeLinkDoesNotZeroOutChain guards against the
// bug where a trailing zero-derivative link (e.g. a constant EPA rotation)
// overwrites rather than accumulates into the chain's derivative.
func TestComposeChainZeroDerivativeLinkDoesNotZeroOutChain(t *testing.T) {
	m1, mDot1 := elementaryDCM(AxisX, 0.5, 0.07)
	m2, _ := elementaryDCM(AxisY, 0.9, 0) // zero rate, like a constant EPA edge

	dcm, dcmDot := ComposeChain([]RotationLink{{DCM: m1, DCMDot: mDot1}, {DCM: m2}})

	want := mul3(m2, m1)
	assert.InDelta(t, 0, maxAbsDiff(want, dcm), 1e-12)

	wantDot := mul3(m2, mDot1)
	assert.InDelta(t, 0, maxAbsDiff(wantDot, dcmDot), 1e-12)
	assert.NotEqual(t, [3][3]float64{}, dcmDot)
}

func maxAbsDiff(a, b [3][3]float64) float64 {
	max := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			d := a[i][j] - b[i][j]
			if d < 0 {
				d = -d
			}
			if d > max {
				max = d
			}
		}
	}
	return max
}
