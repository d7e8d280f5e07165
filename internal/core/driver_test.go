package core

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSim struct {
	steps    int
	resets   []int64
	interval time.Duration
	settled  bool
}

func (s *countingSim) Name() string { return "counting" }
func (s *countingSim) Size() Size { return Size{W: 1, H: 1} }
func (s *countingSim) Reset(seed int64) {
	s.resets = append(s.resets, seed)
	s.steps = 0
}
func (s *countingSim) Step() { s.steps++ }
func (s *countingSim) Cells() []uint8 { return []uint8{0} }
func (s *countingSim) Palette() []color.RGBA { return nil }

type pacedSim struct{ countingSim }

func (s *pacedSim) Interval() time.Duration { return s.interval }

type settlingSim struct{ countingSim }

type batchedSim struct{ countingSim }

func (s *batchedSim) StepsPerTick() int { return 3 }

func (s *settlingSim) Settled() bool { return s.settled }

func TestDriverRunsStepsPerTick(t *testing.T) {
	sim := &countingSim{}
	d := NewDriver(sim, 2)

	for i := 0; i < 5; i++ {
		assert.Equal(t, 2, d.Tick())
	}
	assert.Equal(t, 10, sim.steps)
	assert.Equal(t, 5, d.Ticks())

	d.Reset(9)
	assert.Zero(t, d.Ticks())
	assert.Equal(t, []int64{9}, sim.resets)
}

func TestDriverDefaultsToOneStep(t *testing.T) {
	d := NewDriver(&countingSim{}, 0)
	assert.Equal(t, 1, d.StepsPerTick())

	assert.Equal(t, 3, NewDriver(&batchedSim{}, 0).StepsPerTick())
	assert.Equal(t, 2, NewDriver(&batchedSim{}, 2).StepsPerTick(), "explicit value wins")
}

func TestDriverGatesPacedSims(t *testing.T) {
	sim := &pacedSim{countingSim{interval: 70 * time.Millisecond}}
	d := NewDriver(sim, 1)
	require.NotNil(t, d.gate)

	clock := time.Unix(0, 0)
	d.gate.now = func() time.Time { return clock }

	assert.Equal(t, 1, d.Tick(), "first tick fires immediately")
	clock = clock.Add(16 * time.Millisecond)
	assert.Zero(t, d.Tick())
	clock = clock.Add(60 * time.Millisecond)
	assert.Equal(t, 1, d.Tick())
	assert.Equal(t, 2, sim.steps)

	assert.Equal(t, 1, d.Force())
	assert.Equal(t, 3, sim.steps)
}

func TestDriverSettled(t *testing.T) {
	assert.False(t, NewDriver(&countingSim{}, 1).Settled(), "sims without Settler never settle")

	sim := &settlingSim{}
	d := NewDriver(sim, 2)
	assert.False(t, d.Settled())
	sim.settled = true
	assert.True(t, d.Settled())
	d.Tick()
	assert.Equal(t, 2, sim.steps, "driver keeps stepping settled sims")
}

func TestFixedStepReleasesOneStepPerCall(t *testing.T) {
	fs := NewFixedStep(10 * time.Millisecond)
	assert.True(t, fs.Advance(0))
	assert.False(t, fs.Advance(5*time.Millisecond))
	assert.True(t, fs.Advance(5*time.Millisecond))

	assert.True(t, fs.Advance(time.Second), "stall releases a step")
	assert.True(t, fs.Advance(0), "and at most one more")
	assert.False(t, fs.Advance(0))
}

func TestFixedStepSetTPS(t *testing.T) {
	fs := NewFixedStep(0)
	assert.Equal(t, time.Second/60, fs.step)
	fs.SetTPS(10)
	assert.Equal(t, 100*time.Millisecond, fs.step)
}
