package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linearStates(n int, step float64) []State {
	states := make([]State, n)
	for i := 0; i < n; i++ {
		tt := float64(i) * step
		states[i] = State{
			TDBSec: tt,
			Pos:    [3]float64{tt, 2 * tt, 0},
			Vel:    [3]float64{1, 2, 0},
		}
	}
	return states
}

func TestWindowOfCentered(t *testing.T) {
	states := linearStates(10, 1)
	w := windowOf(states, 5, 4)
	assert.Len(t, w, 4)
	assert.Equal(t, 3.0, w[0].TDBSec)
}

func TestWindowOfClampsAtStart(t *testing.T) {
	states := linearStates(10, 1)
	w := windowOf(states, 0, 4)
	assert.Len(t, w, 4)
	assert.Equal(t, 0.0, w[0].TDBSec)
}

func TestWindowOfClampsAtEnd(t *testing.T) {
	states := linearStates(10, 1)
	w := windowOf(states, 9, 4)
	assert.Len(t, w, 4)
	assert.Equal(t, 9.0, w[len(w)-1].TDBSec)
}

func TestWindowOfLargerThanAvailable(t *testing.T) {
	states := linearStates(3, 1)
	w := windowOf(states, 1, 8)
	assert.Len(t, w, 3)
}

func TestType9PositionVelocityLinearExact(t *testing.T) {
	seg := &Type9{States: linearStates(10, 1), WindowSize: 4}
	pos, vel, err := seg.PositionVelocity(4.5)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, pos[0], 1e-9)
	assert.InDelta(t, 9.0, pos[1], 1e-9)
	assert.InDelta(t, 1.0, vel[0], 1e-6)
	assert.InDelta(t, 2.0, vel[1], 1e-6)
}

func TestType9PositionVelocitySingleState(t *testing.T) {
	seg := &Type9{States: []State{{TDBSec: 0, Pos: [3]float64{1, 2, 3}, Vel: [3]float64{0, 0, 0}}}}
	pos, vel, err := seg.PositionVelocity(100)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{1, 2, 3}, pos)
	assert.Equal(t, [3]float64{0, 0, 0}, vel)
}

func TestType9PositionVelocityEmptyErrors(t *testing.T) {
	seg := &Type9{}
	_, _, err := seg.PositionVelocity(0)
	assert.Error(t, err)
}

func TestType9PositionVelocityClampsIndex(t *testing.T) {
	seg := &Type9{States: linearStates(5, 1), WindowSize: 4}
	_, _, err := seg.PositionVelocity(1000)
	require.NoError(t, err)
	_, _, err = seg.PositionVelocity(-1000)
	require.NoError(t, err)
}

func TestType13PositionVelocityIrregularGrid(t *testing.T) {
	states := []State{
		{TDBSec: 0, Pos: [3]float64{0, 0, 0}},
		{TDBSec: 1, Pos: [3]float64{1, 0, 0}},
		{TDBSec: 3, Pos: [3]float64{3, 0, 0}},
		{TDBSec: 6, Pos: [3]float64{6, 0, 0}},
	}
	seg := &Type13{States: states, WindowSize: 4}
	pos, _, err := seg.PositionVelocity(2)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, pos[0], 1e-9)
}

func TestType13PositionVelocityEmptyErrors(t *testing.T) {
	seg := &Type13{}
	_, _, err := seg.PositionVelocity(0)
	assert.Error(t, err)
}

func TestLagrangeBasisPartitionOfUnity(t *testing.T) {
	nodes := linearStates(4, 1)
	var sum float64
	for i := range nodes {
		sum += lagrangeBasis(nodes, i, 1.5)
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

// TestType9PositionVelocityFitsVelocityIndependently uses a quadratic
// position table (so differentiating the position polynomial would diverge
// from the stored velocity) paired with hand-set, non-derivative velocity
// samples, confirming PositionVelocity interpolates Vel from its own
// Lagrange fit rather than from the derivative of the position fit.
func TestType9PositionVelocityFitsVelocityIndependently(t *testing.T) {
	states := make([]State, 6)
	for i := range states {
		tt := float64(i)
		states[i] = State{
			TDBSec: tt,
			Pos:    [3]float64{tt * tt, 0, 0},
			Vel:    [3]float64{100, 0, 0},
		}
	}
	seg := &Type9{States: states, WindowSize: 4}

	_, vel, err := seg.PositionVelocity(2.5)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, vel[0], 1e-9)
}
