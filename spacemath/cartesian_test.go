package spacemath

import (
	"testing"

	"github.com/anise-go/anise/epoch"
	"github.com/anise-go/anise/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCartesian(t *testing.T) {
	r := Vec3{1, 2, 3}
	v := Vec3{4, 5, 6}
	e := epoch.FromJDUTC(2451545.0)
	f := frame.NewFrame(399, 1)

	c := NewCartesian(r, v, e, f)
	assert.Equal(t, r, c.R)
	assert.Equal(t, v, c.V)
	assert.Equal(t, f, c.Frame)
}

func TestCartesianAddSameFrameEpoch(t *testing.T) {
	e := epoch.FromJDUTC(2451545.0)
	f := frame.NewFrame(399, 1)
	a := NewCartesian(Vec3{1, 0, 0}, Vec3{0, 1, 0}, e, f)
	b := NewCartesian(Vec3{2, 0, 0}, Vec3{0, 2, 0}, e, f)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, Vec3{3, 0, 0}, sum.R)
	assert.Equal(t, Vec3{0, 3, 0}, sum.V)
}

func TestCartesianAddDifferentFrameErrors(t *testing.T) {
	e := epoch.FromJDUTC(2451545.0)
	a := NewCartesian(Vec3{1, 0, 0}, Vec3{}, e, frame.NewFrame(399, 1))
	b := NewCartesian(Vec3{1, 0, 0}, Vec3{}, e, frame.NewFrame(499, 1))

	_, err := a.Add(b)
	assert.Error(t, err)
}

func TestCartesianAddDifferentEpochErrors(t *testing.T) {
	f := frame.NewFrame(399, 1)
	a := NewCartesian(Vec3{1, 0, 0}, Vec3{}, epoch.FromJDUTC(2451545.0), f)
	b := NewCartesian(Vec3{1, 0, 0}, Vec3{}, epoch.FromJDUTC(2451546.0), f)

	_, err := a.Add(b)
	assert.Error(t, err)
}

func TestCartesianSub(t *testing.T) {
	e := epoch.FromJDUTC(2451545.0)
	f := frame.NewFrame(399, 1)
	a := NewCartesian(Vec3{5, 5, 5}, Vec3{1, 1, 1}, e, f)
	b := NewCartesian(Vec3{2, 1, 0}, Vec3{1, 0, 0}, e, f)

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, Vec3{3, 4, 5}, diff.R)
	assert.Equal(t, Vec3{0, 1, 1}, diff.V)
}

func TestCartesianSubDifferentFrameErrors(t *testing.T) {
	e := epoch.FromJDUTC(2451545.0)
	a := NewCartesian(Vec3{1, 0, 0}, Vec3{}, e, frame.NewFrame(399, 1))
	b := NewCartesian(Vec3{1, 0, 0}, Vec3{}, e, frame.NewFrame(499, 1))

	_, err := a.Sub(b)
	assert.Error(t, err)
}

func TestCartesianNegate(t *testing.T) {
	e := epoch.FromJDUTC(2451545.0)
	f := frame.NewFrame(399, 1)
	a := NewCartesian(Vec3{1, -2, 3}, Vec3{-4, 5, -6}, e, f)

	neg := a.Negate()
	assert.Equal(t, Vec3{-1, 2, -3}, neg.R)
	assert.Equal(t, Vec3{4, -5, 6}, neg.V)
	assert.Equal(t, e.TDBSeconds(), neg.At.TDBSeconds())
	assert.Equal(t, f, neg.Frame)
}
