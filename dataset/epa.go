package dataset

import "encoding/asn1"

// EulerParameter is one EPA entry: a constant unit quaternion rotating
// SourceFrame into TargetFrame, e.g. a spacecraft-frame or instrument-frame
// definition that isn't expressed as a BPC time-varying segment.
type EulerParameter struct {
	SourceFrame, TargetFrame int32
	W, X, Y, Z               float64
}

// derEulerParameter carries the quaternion components as raw IEEE-754 bit
// patterns, since encoding/asn1 has no native float64 support.
type derEulerParameter struct {
	SourceFrame, TargetFrame int
	WBits, XBits, YBits, ZBits int64
}

// MarshalPayload implements Entry.
func (e EulerParameter) MarshalPayload() ([]byte, error) {
	return asn1.Marshal(derEulerParameter{
		SourceFrame: int(e.SourceFrame), TargetFrame: int(e.TargetFrame),
		WBits: f64ToBits(e.W), XBits: f64ToBits(e.X), YBits: f64ToBits(e.Y), ZBits: f64ToBits(e.Z),
	})
}

// UnmarshalPayload decodes a payload produced by MarshalPayload; Decode
// calls it through a *EulerParameter.
func (e *EulerParameter) UnmarshalPayload(data []byte) error {
	var d derEulerParameter
	if _, err := asn1.Unmarshal(data, &d); err != nil {
		return err
	}
	*e = EulerParameter{
		SourceFrame: int32(d.SourceFrame), TargetFrame: int32(d.TargetFrame),
		W: bitsToF64(d.WBits), X: bitsToF64(d.XBits), Y: bitsToF64(d.YBits), Z: bitsToF64(d.ZBits),
	}
	return nil
}
