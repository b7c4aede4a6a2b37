package almanac

import (
	"github.com/anise-go/anise/daf"
	"github.com/anise-go/anise/dataset"
	"github.com/anise-go/anise/errs"
	"github.com/anise-go/anise/frame"
	"github.com/anise-go/anise/interp"
	"github.com/anise-go/anise/mmapfile"
	"github.com/anise-go/anise/rotation"
	"github.com/anise-go/anise/spacemath"
)

// SPK segment data types this loader understands. Types not listed (e.g.
// 1, 5, 8, 17, 18, 19, 20, 21) are out of scope; a summary naming one is
// reported via errs.ReasonNoInterpolationData rather than silently skipped.
const (
	spkTypeChebyshevPosition = 2
	spkTypeChebyshevState    = 3
	spkTypeHermiteEqual      = 9
	spkTypeHermiteUnequal    = 13
)

// bpcTypeEulerChebyshev is the only BPC orientation segment type this
// loader understands (Euler-angle Chebyshev series, PCK type 2).
const bpcTypeEulerChebyshev = 2

const defaultHermiteWindow = 8

func readKernelBytes(path string) ([]byte, func(), error) {
	src, err := mmapfile.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return src.Bytes(), func() { _ = src.Close() }, nil
}

// loadTranslationKernel opens an SPK file at path and returns the byte
// source (kept alive for the lifetime of any Almanac built from it) plus
// one TranslationEdge per segment summary, tagged with generation.
func loadTranslationKernel(path string, generation int) (*mmapfile.Source, []frame.TranslationEdge, error) {
	src, err := mmapfile.Open(path)
	if err != nil {
		return nil, nil, err
	}

	f, err := daf.Open(src.Bytes())
	if err != nil {
		_ = src.Close()
		return nil, nil, err
	}
	if f.Kind != daf.KindSPK {
		_ = src.Close()
		return nil, nil, errs.New(errs.KindDecoding, errs.ReasonInvalidMarker)
	}

	summaries, err := f.Summaries()
	if err != nil {
		_ = src.Close()
		return nil, nil, err
	}

	edges := make([]frame.TranslationEdge, 0, len(summaries))
	for _, s := range summaries {
		if len(s.Doubles) < 2 || len(s.Integers) < 6 {
			continue
		}
		startSec, endSec := s.Doubles[0], s.Doubles[1]
		target := s.Integers[0]
		center := s.Integers[1]
		dataType := int(s.Integers[3])

		words, err := f.Segment(s)
		if err != nil {
			_ = src.Close()
			return nil, nil, err
		}

		eval, err := translationEvaluator(dataType, words)
		if err != nil {
			_ = src.Close()
			return nil, nil, err
		}

		edges = append(edges, frame.TranslationEdge{
			Target: target, Center: center,
			StartSec: startSec, EndSec: endSec,
			Generation: generation, Eval: eval,
		})
	}
	return src, edges, nil
}

// translationEvaluator builds a frame.TranslationEvaluator over the raw
// double-precision words of one segment, dispatching on the SPK data type.
func translationEvaluator(dataType int, words []float64) (frame.TranslationEvaluator, error) {
	switch dataType {
	case spkTypeChebyshevPosition, spkTypeChebyshevState:
		components := 3
		if dataType == spkTypeChebyshevState {
			components = 6
		}
		seg, err := decodeChebyshevSegment(words, components)
		if err != nil {
			return nil, err
		}
		return func(t float64) ([3]float64, [3]float64, bool) {
			pos, vel, err := seg.PositionVelocity(t)
			return pos, vel, err == nil
		}, nil

	case spkTypeHermiteEqual:
		seg, err := decodeHermiteEqualSegment(words)
		if err != nil {
			return nil, err
		}
		return func(t float64) ([3]float64, [3]float64, bool) {
			pos, vel, err := seg.PositionVelocity(t)
			return pos, vel, err == nil
		}, nil

	case spkTypeHermiteUnequal:
		seg, err := decodeHermiteUnequalSegment(words)
		if err != nil {
			return nil, err
		}
		return func(t float64) ([3]float64, [3]float64, bool) {
			pos, vel, err := seg.PositionVelocity(t)
			return pos, vel, err == nil
		}, nil

	default:
		return nil, errs.New(errs.KindDecoding, errs.ReasonNoInterpolationData)
	}
}

// decodeChebyshevSegment parses a type-2/3 segment: a sequence of
// fixed-size records (each MID, RADIUS, then `components` groups of
// NCoeffs polynomial coefficients), followed by a 4-word trailer (INIT,
// INTLEN, RSIZE, N).
func decodeChebyshevSegment(words []float64, components int) (*interp.Type2, error) {
	if len(words) < 4 {
		return nil, errs.New(errs.KindDecoding, errs.ReasonTruncatedRecord)
	}
	n := len(words)
	nRecords := int(words[n-1])
	rsize := int(words[n-2])
	intlen := words[n-3]
	init := words[n-4]
	if nRecords <= 0 || rsize <= 2 || nRecords*rsize > n-4 {
		return nil, errs.New(errs.KindDecoding, errs.ReasonTruncatedRecord)
	}
	nCoeffs := (rsize - 2) / components

	data := make([]float64, nRecords*components*nCoeffs)
	for r := 0; r < nRecords; r++ {
		recStart := r * rsize
		coeffStart := recStart + 2 // skip MID, RADIUS
		copy(data[r*components*nCoeffs:(r+1)*components*nCoeffs], words[coeffStart:coeffStart+components*nCoeffs])
	}

	return &interp.Type2{
		Init: init, IntLen: intlen, NCoeffs: nCoeffs, NRecords: nRecords,
		Data: data, Components: components,
	}, nil
}

// decodeHermiteEqualSegment parses a type-9 segment: N states (6 doubles
// each), N equally-spaced epochs, then a 1-word trailer (N).
func decodeHermiteEqualSegment(words []float64) (*interp.Type9, error) {
	if len(words) < 1 {
		return nil, errs.New(errs.KindDecoding, errs.ReasonTruncatedRecord)
	}
	n := int(words[len(words)-1])
	if n <= 0 || n*6+n+1 > len(words) {
		return nil, errs.New(errs.KindDecoding, errs.ReasonTruncatedRecord)
	}
	states := make([]interp.State, n)
	epochBase := n * 6
	for i := 0; i < n; i++ {
		var pos, vel [3]float64
		copy(pos[:], words[i*6:i*6+3])
		copy(vel[:], words[i*6+3:i*6+6])
		states[i] = interp.State{TDBSec: words[epochBase+i], Pos: pos, Vel: vel}
	}
	return &interp.Type9{States: states, WindowSize: defaultHermiteWindow}, nil
}

// decodeHermiteUnequalSegment parses a type-13 segment: identical layout to
// type 9 (states then epochs then a 1-word trailer), but the epochs are not
// assumed equally spaced; PositionVelocity locates the interpolation window
// by binary search instead of arithmetic indexing.
func decodeHermiteUnequalSegment(words []float64) (*interp.Type13, error) {
	seg9, err := decodeHermiteEqualSegment(words)
	if err != nil {
		return nil, err
	}
	return &interp.Type13{States: seg9.States, WindowSize: seg9.WindowSize}, nil
}

// loadOrientationKernel opens a BPC file at path and returns the byte
// source plus one RotationEdge per segment summary, tagged with generation.
func loadOrientationKernel(path string, generation int) (*mmapfile.Source, []frame.RotationEdge, error) {
	src, err := mmapfile.Open(path)
	if err != nil {
		return nil, nil, err
	}

	f, err := daf.Open(src.Bytes())
	if err != nil {
		_ = src.Close()
		return nil, nil, err
	}
	if f.Kind != daf.KindPCK {
		_ = src.Close()
		return nil, nil, errs.New(errs.KindDecoding, errs.ReasonInvalidMarker)
	}

	summaries, err := f.Summaries()
	if err != nil {
		_ = src.Close()
		return nil, nil, err
	}

	edges := make([]frame.RotationEdge, 0, len(summaries))
	for _, s := range summaries {
		if len(s.Doubles) < 2 || len(s.Integers) < 5 {
			continue
		}
		startSec, endSec := s.Doubles[0], s.Doubles[1]
		fromOrient := s.Integers[0]
		toOrient := s.Integers[1]
		dataType := int(s.Integers[2])

		if dataType != bpcTypeEulerChebyshev {
			_ = src.Close()
			return nil, nil, errs.New(errs.KindDecoding, errs.ReasonNoInterpolationData)
		}

		words, err := f.Segment(s)
		if err != nil {
			_ = src.Close()
			return nil, nil, err
		}
		angles, err := decodeChebyshevSegment(words, 3)
		if err != nil {
			_ = src.Close()
			return nil, nil, err
		}
		orient := &interp.Orientation2{
			Angles: *angles,
			Build: func(a, r [3]float64) ([3][3]float64, [3][3]float64) {
				return rotation.EulerAxisDCM([3]rotation.Axis{rotation.AxisZ, rotation.AxisX, rotation.AxisZ}, a, r)
			},
		}

		edges = append(edges, frame.RotationEdge{
			FromOrient: fromOrient, ToOrient: toOrient,
			StartSec: startSec, EndSec: endSec,
			Generation: generation,
			Eval: func(t float64) ([3][3]float64, [3][3]float64, bool) {
				dcm, dcmDot, err := orient.At(t)
				return dcm, dcmDot, err == nil
			},
		})
	}
	return src, edges, nil
}

// constantRotationEdges turns every decoded EPA record into a constant
// (time-invariant) RotationEdge spanning all time.
func constantRotationEdges(ds *dataset.DataSet[dataset.EulerParameter], generation int) []frame.RotationEdge {
	edges := make([]frame.RotationEdge, 0, len(ds.Records))
	for _, rec := range ds.Records {
		q := rec.Data
		dcm := [3][3]float64(spacemath.Quaternion{W: q.W, X: q.X, Y: q.Y, Z: q.Z}.ToDCM())
		edges = append(edges, frame.RotationEdge{
			FromOrient: q.SourceFrame, ToOrient: q.TargetFrame,
			StartSec: negInf, EndSec: posInf,
			Generation: generation,
			Eval: func(t float64) ([3][3]float64, [3][3]float64, bool) {
				return dcm, [3][3]float64{}, true
			},
		})
	}
	return edges
}

const (
	negInf = -1e18
	posInf = 1e18
)
