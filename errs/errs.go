// Package errs defines the typed error taxonomy shared across anise-go:
// IO, Decoding, Lookup, Math, and Almanac errors. Query-time errors carry
// the target/center/epoch/reason context a caller needs to diagnose a
// failed translate/rotate without re-walking the frame graph themselves.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies the broad origin of an Error.
type Kind int

const (
	KindIO Kind = iota
	KindDecoding
	KindLookup
	KindMath
	KindAlmanac
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindDecoding:
		return "decoding"
	case KindLookup:
		return "lookup"
	case KindMath:
		return "math"
	case KindAlmanac:
		return "almanac"
	default:
		return "unknown"
	}
}

// Error is the common error type returned by every package in this module.
type Error struct {
	Kind    Kind
	Reason  string
	Target  int32
	Center  int32
	HasPath bool
	Epoch   float64
	cause   error
}

func (e *Error) Error() string {
	if e.HasPath {
		return fmt.Sprintf("%s: %s (target=%d center=%d epoch=%.6f)", e.Kind, e.Reason, e.Target, e.Center, e.Epoch)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

// Unwrap exposes the wrapped cause so errors.Is/errors.As can see through it.
func (e *Error) Unwrap() error { return e.cause }

// New builds a bare Error with no wrapped cause.
func New(kind Kind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason}
}

// Wrap attaches cause to a new Error of the given kind, preserving it for
// errors.Unwrap, errors.Is and errors.As.
func Wrap(cause error, kind Kind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason, cause: errors.WithStack(cause)}
}

// WithPath returns a copy of e annotated with the query path that produced it.
func (e *Error) WithPath(target, center int32, epoch float64) *Error {
	cp := *e
	cp.HasPath = true
	cp.Target = target
	cp.Center = center
	cp.Epoch = epoch
	return &cp
}

// Decoding error reasons, used as the Reason field of a KindDecoding Error.
const (
	ReasonInvalidMarker        = "invalid DAF identification word"
	ReasonUnsupportedEndianness = "unsupported endianness marker"
	ReasonTruncatedRecord      = "truncated record"
	ReasonSummaryOutOfBounds   = "summary address out of bounds"
	ReasonIncompatibleVersion  = "incompatible dataset version"
	ReasonChecksumMismatch     = "CRC32 checksum mismatch"
)

// Lookup error reasons.
const (
	ReasonNoInterpolationData = "no interpolation data covers the requested epoch"
	ReasonFrameNotInPCA       = "frame not present in loaded planetary constants"
	ReasonUnknownName         = "unknown name"
)

// Math error reasons.
const (
	ReasonNonInvertibleRotation = "rotation is not invertible"
	ReasonEpochOutOfValidity    = "epoch outside segment validity interval"
	ReasonNonFinite             = "non-finite value produced"
)

// Almanac error reasons.
const (
	ReasonKernelCapacityExceeded = "kernel capacity exceeded"
)
