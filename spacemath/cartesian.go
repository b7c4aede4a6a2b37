package spacemath

import (
	"github.com/anise-go/anise/epoch"
	"github.com/anise-go/anise/errs"
	"github.com/anise-go/anise/frame"
)

// Cartesian is a position/velocity state vector expressed in a given frame
// at a given epoch. Position is in kilometers, velocity in km/s.
type Cartesian struct {
	R, V  Vec3
	At    epoch.Epoch
	Frame frame.Frame
}

// NewCartesian builds a Cartesian state.
func NewCartesian(r, v Vec3, at epoch.Epoch, f frame.Frame) Cartesian {
	return Cartesian{R: r, V: v, At: at, Frame: f}
}

// Add returns a+b, defined only when both states share a frame and epoch.
func (a Cartesian) Add(b Cartesian) (Cartesian, error) {
	if a.Frame != b.Frame {
		return Cartesian{}, errs.New(errs.KindMath, "cannot add Cartesian states in different frames")
	}
	if a.At.TDBSeconds() != b.At.TDBSeconds() {
		return Cartesian{}, errs.New(errs.KindMath, "cannot add Cartesian states at different epochs")
	}
	return Cartesian{R: a.R.Add(b.R), V: a.V.Add(b.V), At: a.At, Frame: a.Frame}, nil
}

// Sub returns a-b, defined only when both states share a frame and epoch.
func (a Cartesian) Sub(b Cartesian) (Cartesian, error) {
	if a.Frame != b.Frame {
		return Cartesian{}, errs.New(errs.KindMath, "cannot subtract Cartesian states in different frames")
	}
	if a.At.TDBSeconds() != b.At.TDBSeconds() {
		return Cartesian{}, errs.New(errs.KindMath, "cannot subtract Cartesian states at different epochs")
	}
	return Cartesian{R: a.R.Sub(b.R), V: a.V.Sub(b.V), At: a.At, Frame: a.Frame}, nil
}

// Negate returns the state with R and V negated, at the same frame/epoch.
func (a Cartesian) Negate() Cartesian {
	return Cartesian{R: a.R.Negate(), V: a.V.Negate(), At: a.At, Frame: a.Frame}
}
