package interp

import (
	"sort"

	"github.com/anise-go/anise/errs"
)

// State is one discrete epoch/position/velocity sample used as a Hermite
// interpolation node.
type State struct {
	TDBSec   float64
	Pos, Vel [3]float64
}

// windowOf returns the up-to-windowSize states from states centered as
// closely as possible on index center, clamped to the slice bounds.
func windowOf(states []State, center, windowSize int) []State {
	half := windowSize / 2
	lo := center - half
	hi := lo + windowSize
	if lo < 0 {
		hi -= lo
		lo = 0
	}
	if hi > len(states) {
		lo -= hi - len(states)
		hi = len(states)
	}
	if lo < 0 {
		lo = 0
	}
	return states[lo:hi]
}

// hermiteEval evaluates the Lagrange interpolant of a window of states, one
// Cartesian component at a time. Position is fit from the window's Pos
// samples; velocity is fit independently from the window's Vel samples (a
// separate Lagrange polynomial over the same node epochs), not derived from
// the position fit's derivative.
func hermiteEval(nodes []State, t float64) (pos, vel [3]float64) {
	n := len(nodes)
	for c := 0; c < 3; c++ {
		var p, v float64
		for i := 0; i < n; i++ {
			li := lagrangeBasis(nodes, i, t)
			p += li * nodes[i].Pos[c]
			v += li * nodes[i].Vel[c]
		}
		pos[c] = p
		vel[c] = v
	}
	return pos, vel
}

// lagrangeBasis evaluates the i-th Lagrange basis polynomial l_i(t) given
// the node epochs in nodes.
func lagrangeBasis(nodes []State, i int, t float64) float64 {
	l := 1.0
	for j := range nodes {
		if j == i {
			continue
		}
		l *= (t - nodes[j].TDBSec) / (nodes[i].TDBSec - nodes[j].TDBSec)
	}
	return l
}

// Type9 is an equal-time-step Hermite/Lagrange segment: states sampled at a
// fixed interval, interpolated with a fixed-size node window centered on
// the query epoch.
type Type9 struct {
	States     []State
	WindowSize int // number of nodes per interpolation, spec default 8
}

// PositionVelocity interpolates position and velocity at tdbSec using a
// window of nodes located by arithmetic indexing into the equally-spaced
// state table.
func (t *Type9) PositionVelocity(tdbSec float64) (pos, vel [3]float64, err error) {
	if len(t.States) == 0 {
		return pos, vel, errs.New(errs.KindLookup, errs.ReasonNoInterpolationData)
	}
	if len(t.States) == 1 {
		return t.States[0].Pos, t.States[0].Vel, nil
	}
	step := t.States[1].TDBSec - t.States[0].TDBSec
	idx := int((tdbSec - t.States[0].TDBSec) / step)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(t.States) {
		idx = len(t.States) - 1
	}
	window := windowOf(t.States, idx, t.WindowSize)
	pos, vel = hermiteEval(window, tdbSec)
	return pos, vel, nil
}

// Type13 is an unequal-time-step Hermite/Lagrange segment: states are
// sampled at irregular epochs and located by binary search rather than
// arithmetic indexing.
type Type13 struct {
	States     []State
	WindowSize int
}

// PositionVelocity interpolates position and velocity at tdbSec using a
// window of nodes located by binary search over the irregular epoch grid.
func (t *Type13) PositionVelocity(tdbSec float64) (pos, vel [3]float64, err error) {
	if len(t.States) == 0 {
		return pos, vel, errs.New(errs.KindLookup, errs.ReasonNoInterpolationData)
	}
	idx := sort.Search(len(t.States), func(i int) bool { return t.States[i].TDBSec >= tdbSec })
	if idx >= len(t.States) {
		idx = len(t.States) - 1
	}
	window := windowOf(t.States, idx, t.WindowSize)
	pos, vel = hermiteEval(window, tdbSec)
	return pos, vel, nil
}
