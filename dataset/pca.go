package dataset

import (
	"encoding/asn1"
	"math"
)

// PlanetaryData is one PCA entry: a body's physical and rotational
// constants, as distinct from its ephemeris (translation) data.
type PlanetaryData struct {
	ID        int32
	ParentID  int32
	HasParent bool
	GM        float64 // km^3/s^2, zero if unknown
	HasGM     bool
	EquatorRadiusKm float64
	PolarRadiusKm   float64
	HasShape        bool
	// PoleRA/PoleDec/PrimeMeridian are polynomial coefficients (degrees,
	// degrees, degrees) in Julian centuries/days from J2000, per the IAU
	// Working Group on Cartographic Coordinates convention.
	PoleRACoeffs        []float64
	PoleDecCoeffs       []float64
	PrimeMeridianCoeffs []float64
}

// derPlanetaryData is the DER-friendly, fixed-shape mirror of
// PlanetaryData used only for ASN.1 marshaling. encoding/asn1 has no
// native float64 support, so every float field is carried as its raw
// IEEE-754 bit pattern in an int64 — the standard workaround for
// transporting floats through an ASN.1 DER encoder.
type derPlanetaryData struct {
	ID, ParentID                      int
	HasParent                         bool
	GMBits                            int64
	HasGM                             bool
	EquatorRadiusKmBits, PolarRadiusKmBits int64
	HasShape                          bool
	PoleRABits, PoleDecBits, PrimeMeridianBits []int64
}

func f64ToBits(f float64) int64   { return int64(math.Float64bits(f)) }
func bitsToF64(b int64) float64   { return math.Float64frombits(uint64(b)) }

func f64SliceToBits(fs []float64) []int64 {
	out := make([]int64, len(fs))
	for i, f := range fs {
		out[i] = f64ToBits(f)
	}
	return out
}

func bitsSliceToF64(bs []int64) []float64 {
	out := make([]float64, len(bs))
	for i, b := range bs {
		out[i] = bitsToF64(b)
	}
	return out
}

// MarshalPayload implements Entry.
func (p PlanetaryData) MarshalPayload() ([]byte, error) {
	return asn1.Marshal(derPlanetaryData{
		ID: int(p.ID), ParentID: int(p.ParentID), HasParent: p.HasParent,
		GMBits: f64ToBits(p.GM), HasGM: p.HasGM,
		EquatorRadiusKmBits: f64ToBits(p.EquatorRadiusKm),
		PolarRadiusKmBits:   f64ToBits(p.PolarRadiusKm),
		HasShape:            p.HasShape,
		PoleRABits:          f64SliceToBits(p.PoleRACoeffs),
		PoleDecBits:         f64SliceToBits(p.PoleDecCoeffs),
		PrimeMeridianBits:   f64SliceToBits(p.PrimeMeridianCoeffs),
	})
}

// UnmarshalPayload decodes a payload produced by MarshalPayload; Decode
// calls it through a *PlanetaryData.
func (p *PlanetaryData) UnmarshalPayload(data []byte) error {
	var d derPlanetaryData
	if _, err := asn1.Unmarshal(data, &d); err != nil {
		return err
	}
	*p = PlanetaryData{
		ID: int32(d.ID), ParentID: int32(d.ParentID), HasParent: d.HasParent,
		GM: bitsToF64(d.GMBits), HasGM: d.HasGM,
		EquatorRadiusKm: bitsToF64(d.EquatorRadiusKmBits),
		PolarRadiusKm:   bitsToF64(d.PolarRadiusKmBits),
		HasShape:        d.HasShape,
		PoleRACoeffs:        bitsSliceToF64(d.PoleRABits),
		PoleDecCoeffs:       bitsSliceToF64(d.PoleDecBits),
		PrimeMeridianCoeffs: bitsSliceToF64(d.PrimeMeridianBits),
	}
	return nil
}
