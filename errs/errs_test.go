package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "io", KindIO.String())
	assert.Equal(t, "decoding", KindDecoding.String())
	assert.Equal(t, "lookup", KindLookup.String())
	assert.Equal(t, "math", KindMath.String())
	assert.Equal(t, "almanac", KindAlmanac.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestNewErrorMessage(t *testing.T) {
	err := New(KindLookup, ReasonUnknownName)
	assert.Equal(t, "lookup: unknown name", err.Error())
}

func TestWithPathAddsContext(t *testing.T) {
	err := New(KindLookup, ReasonNoInterpolationData).WithPath(399, 3, 2451545.0)
	assert.Contains(t, err.Error(), "target=399")
	assert.Contains(t, err.Error(), "center=3")
}

func TestWithPathDoesNotMutateOriginal(t *testing.T) {
	base := New(KindLookup, ReasonUnknownName)
	_ = base.WithPath(1, 2, 3)
	assert.False(t, base.HasPath)
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("underlying failure")
	err := Wrap(cause, KindIO, "reading kernel file")

	unwrapped := err.Unwrap()
	assert.Error(t, unwrapped)
	assert.Contains(t, unwrapped.Error(), "underlying failure")
}

func TestErrorsIsWorksThroughWrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(cause, KindIO, "writing cache")

	assert.True(t, errors.Is(err, cause))
	assert.ErrorContains(t, err, "io: writing cache")
}
