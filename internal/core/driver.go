package core

// Driver advances a Sim once per host frame. Each tick runs StepsPerTick sim
// steps; paced sims only tick when their interval has elapsed.
//
// A Driver is owned by a single host loop and is not safe for concurrent use.
// It never stops on its own: stepping a settled sim is a no-op, and hosts stop
// the loop by no longer calling Tick.
type Driver struct {
	sim          Sim
	stepsPerTick int
	gate         *FixedStep
	ticks        int
}

// NewDriver wires a driver for sim. Non-positive stepsPerTick defers to the
// sim's own StepsPerTick, or 1.
func NewDriver(sim Sim, stepsPerTick int) *Driver {
	if stepsPerTick <= 0 {
		stepsPerTick = 1
		if b, ok := sim.(Batched); ok && b.StepsPerTick() > 0 {
			stepsPerTick = b.StepsPerTick()
		}
	}
	d := &Driver{sim: sim, stepsPerTick: stepsPerTick}
	if p, ok := sim.(Paced); ok && p.Interval() > 0 {
		d.gate = NewFixedStep(p.Interval())
	}
	return d
}

// Sim returns the driven simulation.
func (d *Driver) Sim() Sim { return d.sim }

// StepsPerTick reports how many sim steps one tick runs.
func (d *Driver) StepsPerTick() int { return d.stepsPerTick }

// Ticks returns the number of ticks that stepped the sim since the last reset.
func (d *Driver) Ticks() int { return d.ticks }

// Tick runs one frame's worth of sim steps and returns how many ran.
func (d *Driver) Tick() int {
	if d.gate != nil && !d.gate.ShouldStep() {
		return 0
	}
	return d.Force()
}

// Force runs one tick regardless of pacing.
func (d *Driver) Force() int {
	for i := 0; i < d.stepsPerTick; i++ {
		d.sim.Step()
	}
	d.ticks++
	return d.stepsPerTick
}

// Reset reseeds the sim and clears the tick counter.
func (d *Driver) Reset(seed int64) {
	d.sim.Reset(seed)
	d.ticks = 0
}

// Settled reports whether the sim advertises a settled state.
func (d *Driver) Settled() bool {
	s, ok := d.sim.(Settler)
	return ok && s.Settled()
}
