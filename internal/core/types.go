package core

import (
	"image/color"
	"sort"
	"time"
)

// Size describes the dimensions of a simulation grid in cells.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a grid simulation must implement.
// Cells returns row-major values where 0 is empty and v > 0 selects
// Palette()[v-1].
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
	Palette() []color.RGBA
}

// Settler is implemented by sims that can reach a state where further steps
// change nothing.
type Settler interface {
	Settled() bool
}

// Paced is implemented by sims that advance on a fixed wall-clock interval
// instead of once per frame.
type Paced interface {
	Interval() time.Duration
}

// Batched is implemented by sims that run several steps per host frame.
type Batched interface {
	StepsPerTick() int
}

// Stat is a single live counter shown by hosts.
type Stat struct {
	Label string
	Value string
}

// StatsProvider exposes live counters for HUDs and reports.
type StatsProvider interface {
	Stats() []Stat
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames returns the registered names in sorted order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
