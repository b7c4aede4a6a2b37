package almanac

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anise-go/anise/config"
	"github.com/anise-go/anise/dataset"
	"github.com/anise-go/anise/epoch"
	"github.com/anise-go/anise/frame"
)

// constantEulerBPC builds a single-segment, single-record type-2 BPC file
// whose three Euler angles are constant (zero), producing an identity DCM
// between fromOrient and toOrient over [startSec, endSec].
func constantEulerBPC(fromOrient, toOrient int32, startSec, endSec float64) []byte {
	fileRec := putFileRecord("DAF/PCK ", 2, 5, 2)
	summaryRec := putSummaryRecord(
		[]float64{startSec, endSec},
		[]int32{fromOrient, toOrient, 2, 257, 265},
	)

	dataRec := make([]byte, recordLen)
	words := []float64{0, 0, 0, 0, 0, startSec, (endSec - startSec) * 2, 5, 1}
	for i, w := range words {
		binary.LittleEndian.PutUint64(dataRec[i*8:i*8+8], math.Float64bits(w))
	}

	buf := append([]byte{}, fileRec...)
	buf = append(buf, summaryRec...)
	buf = append(buf, dataRec...)
	return buf
}

func TestLoadBPCAddsRotationEdge(t *testing.T) {
	buf := constantEulerBPC(frame.J2000, frame.ITRF93, -1e9, 1e9)
	path := writeTempKernel(t, "earth.bpc", buf)

	a := New(config.DefaultConfig())
	a2, err := a.LoadBPC(path)
	require.NoError(t, err)

	dcm, _, err := a2.Rotate(frame.NewFrame(0, frame.J2000), frame.NewFrame(0, frame.ITRF93), epoch.FromJDUTC(2451545.0))
	require.NoError(t, err)
	assert.True(t, dcm.IsOrthonormal(1e-6))
}

func TestLoadBPCRejectsWrongKind(t *testing.T) {
	buf := putFileRecord("DAF/SPK ", 2, 5, 0)
	path := writeTempKernel(t, "wrong.bpc", buf)

	a := New(config.DefaultConfig())
	_, err := a.LoadBPC(path)
	assert.Error(t, err)
}

func TestRotateSameOrientationIsEmptyPath(t *testing.T) {
	a := New(config.DefaultConfig())
	dcm, _, err := a.Rotate(frame.NewFrame(0, frame.J2000), frame.NewFrame(0, frame.J2000), epoch.FromJDUTC(2451545.0))
	require.NoError(t, err)
	assert.Equal(t, [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, [3][3]float64(dcm))
}

func TestTransformSkipsRotationWhenOrientationsMatch(t *testing.T) {
	spkBuf := constantChebyshevSPK(399, 3, 10, 20, 30, -1e9, 1e9)
	path := writeTempKernel(t, "earth.bsp", spkBuf)

	a := New(config.DefaultConfig())
	a, err := a.LoadSPK(path)
	require.NoError(t, err)

	from := frame.NewFrame(3, frame.J2000)
	to := frame.NewFrame(399, frame.J2000)
	state, err := a.Transform(from, to, epoch.FromJDUTC(2451545.0), None)
	require.NoError(t, err)
	assert.InDelta(t, 10, state.R[0], 1e-6)
}

func encodePCAFixture(t *testing.T, entries ...dataset.PlanetaryData) []byte {
	t.Helper()
	ds := dataset.New[dataset.PlanetaryData](dataset.KindPCA, dataset.DefaultCapacity)
	for i, e := range entries {
		require.NoError(t, ds.Insert(int64(e.ID), "", entries[i]))
	}
	encoded, err := dataset.Encode(ds)
	require.NoError(t, err)
	return encoded
}

func TestLoadPCAAndFrameInfo(t *testing.T) {
	data := encodePCAFixture(t, dataset.PlanetaryData{
		ID: 399, GM: 398600.4418, HasGM: true,
		EquatorRadiusKm: 6378.137, PolarRadiusKm: 6356.752, HasShape: true,
	})
	path := writeTempKernel(t, "gm_de440.pca", data)

	a := New(config.DefaultConfig())
	a, err := a.LoadPCA(path)
	require.NoError(t, err)

	f, err := a.FrameInfo(frame.NewFrame(399, frame.J2000))
	require.NoError(t, err)
	shape, ok := f.GetShape()
	require.True(t, ok)
	assert.InDelta(t, 398600.4418, shape.GM, 1e-6)
}

func TestLoadPCAEnforcesCapacity(t *testing.T) {
	data := encodePCAFixture(t, dataset.PlanetaryData{ID: 399})
	path := writeTempKernel(t, "gm_de440.pca", data)

	cfg := config.DefaultConfig()
	cfg.MaxPCAEntries = 0
	a := New(cfg)
	_, err := a.LoadPCA(path)
	assert.Error(t, err)
}

func encodeEPAFixture(t *testing.T, entries ...dataset.EulerParameter) []byte {
	t.Helper()
	ds := dataset.New[dataset.EulerParameter](dataset.KindEPA, dataset.DefaultEPACapacity)
	for i := range entries {
		require.NoError(t, ds.Insert(int64(i+1), "", entries[i]))
	}
	encoded, err := dataset.Encode(ds)
	require.NoError(t, err)
	return encoded
}

// bpcWithRate builds a single-segment, single-record type-2 BPC file whose
// middle (X) Euler angle carries a nonzero linear term, giving the edge a
// nonzero DCMDot, unlike constantEulerBPC's all-zero coefficients.
func bpcWithRate(fromOrient, toOrient int32, startSec, endSec, xRate float64) []byte {
	fileRec := putFileRecord("DAF/PCK ", 2, 5, 2)
	summaryRec := putSummaryRecord(
		[]float64{startSec, endSec},
		[]int32{fromOrient, toOrient, 2, 257, 268},
	)

	mid := (startSec + endSec) / 2
	radius := (endSec - startSec) / 2
	dataRec := make([]byte, recordLen)
	words := []float64{
		mid, radius,
		0, 0,
		0.1, xRate,
		0, 0,
		startSec, endSec - startSec, 8, 1,
	}
	for i, w := range words {
		binary.LittleEndian.PutUint64(dataRec[i*8:i*8+8], math.Float64bits(w))
	}

	buf := append([]byte{}, fileRec...)
	buf = append(buf, summaryRec...)
	buf = append(buf, dataRec...)
	return buf
}

// TestRotateComposesMultiEdgeChainDerivative chains a time-varying BPC edge
// with a constant EPA edge so OrientationPath returns two edges, and checks
// that the composed DCMDot reflects both: it must be nonzero (the EPA
// edge's own derivative is zero, so a reassign-last-edge bug would return
// all zeros) and must differ from the BPC edge's own derivative (a
// forgot-to-left-multiply-by-the-other-DCM bug would return that instead).
func TestRotateComposesMultiEdgeChainDerivative(t *testing.T) {
	bpcBuf := bpcWithRate(frame.J2000, frame.ITRF93, -1e6, 1e6, 0.02)
	bpcPath := writeTempKernel(t, "dynamic.bpc", bpcBuf)

	a := New(config.DefaultConfig())
	a, err := a.LoadBPC(bpcPath)
	require.NoError(t, err)

	epaData := encodeEPAFixture(t, dataset.EulerParameter{
		SourceFrame: frame.ITRF93, TargetFrame: 5000,
		W: 0.7071067811865476, X: 0.7071067811865476,
	})
	epaPath := writeTempKernel(t, "instrument2.epa", epaData)
	a, err = a.LoadEPA(epaPath)
	require.NoError(t, err)

	at := epoch.FromJDUTC(2451545.0)
	_, dcmDotChain, err := a.Rotate(frame.NewFrame(0, frame.J2000), frame.NewFrame(0, 5000), at)
	require.NoError(t, err)
	_, dcmDotFirst, err := a.Rotate(frame.NewFrame(0, frame.J2000), frame.NewFrame(0, frame.ITRF93), at)
	require.NoError(t, err)

	assert.NotEqual(t, [3][3]float64{}, [3][3]float64(dcmDotChain))
	assert.NotEqual(t, [3][3]float64(dcmDotFirst), [3][3]float64(dcmDotChain))
}

func TestLoadEPAAddsConstantRotationEdge(t *testing.T) {
	data := encodeEPAFixture(t, dataset.EulerParameter{
		SourceFrame: frame.J2000, TargetFrame: 5000, W: 1, X: 0, Y: 0, Z: 0,
	})
	path := writeTempKernel(t, "instrument.epa", data)

	a := New(config.DefaultConfig())
	a, err := a.LoadEPA(path)
	require.NoError(t, err)

	dcm, _, err := a.Rotate(frame.NewFrame(0, frame.J2000), frame.NewFrame(0, 5000), epoch.FromJDUTC(2451545.0))
	require.NoError(t, err)
	assert.Equal(t, [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, [3][3]float64(dcm))
}
