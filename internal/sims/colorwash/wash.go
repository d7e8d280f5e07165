package colorwash

import (
	"image/color"

	"colorwash/internal/core"
)

// rightNeighborWeight is how many times the right neighbor appears in the
// candidate list. Listing it twice gives rightward growth its flood look.
const rightNeighborWeight = 2

// growthOffsets lists neighbor candidates in evaluation order: right (weighted),
// up, down, upper-right, lower-right. Left-side neighbors never grow.
var growthOffsets = buildGrowthOffsets()

func buildGrowthOffsets() []Coord {
	offsets := make([]Coord, 0, rightNeighborWeight+4)
	for i := 0; i < rightNeighborWeight; i++ {
		offsets = append(offsets, Coord{Col: 1, Row: 0})
	}
	return append(offsets,
		Coord{Col: 0, Row: -1},
		Coord{Col: 0, Row: 1},
		Coord{Col: 1, Row: -1},
		Coord{Col: 1, Row: 1},
	)
}

// Wash is the randomized, rightward-biased flood fill. Cells start empty,
// a column-0 seed set starts the frontier, and every Step grows a batch of
// random frontier picks into their empty neighbors with fresh random colors.
//
// A Wash is owned by one host loop; it is not safe for concurrent use.
type Wash struct {
	cfg Config

	grid     *core.ByteGrid
	frontier Frontier
	staged   []Coord

	rng      core.Rand
	injected bool

	steps  int
	prunes int
	peak   int
}

// New returns a wash with the provided grid dimensions using defaults.
func New(w, h int) *Wash {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a seeded wash configured from the provided options.
func NewWithConfig(cfg Config) *Wash {
	w := newWash(cfg)
	w.Reset(0)
	return w
}

// NewWithRand returns a wash that draws every random decision from r. Reset
// keeps using r instead of reseeding, so callers control the whole sequence.
func NewWithRand(cfg Config, r core.Rand) *Wash {
	w := newWash(cfg)
	w.rng = r
	w.injected = true
	w.Reset(0)
	return w
}

func newWash(cfg Config) *Wash {
	if len(cfg.Palette) == 0 {
		cfg.Palette = append([]color.RGBA(nil), DefaultPalette...)
	}
	if len(cfg.Palette) > 255 {
		cfg.Palette = cfg.Palette[:255]
	}
	if cfg.CellSize <= 0 {
		cfg.CellSize = defaultCellSize
	}
	if cfg.StepsPerTick <= 0 {
		cfg.StepsPerTick = 1
	}
	grid := core.NewByteGrid(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = grid.W, grid.H
	return &Wash{cfg: cfg, grid: grid}
}

// Name returns the simulation identifier.
func (w *Wash) Name() string { return "colorwash" }

// Size reports the grid dimensions.
func (w *Wash) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Cells exposes the grid values: 0 for empty, palette index+1 when filled.
func (w *Wash) Cells() []uint8 { return w.grid.Cells() }

// Palette returns the fill colors.
func (w *Wash) Palette() []color.RGBA { return w.cfg.Palette }

// Config returns the effective configuration.
func (w *Wash) Config() Config { return w.cfg }

// Filled returns the number of filled cells.
func (w *Wash) Filled() int { return w.grid.Filled() }

// FrontierLen returns the current frontier size.
func (w *Wash) FrontierLen() int { return w.frontier.Len() }

// Frontier returns a copy of the frontier coordinates.
func (w *Wash) Frontier() []Coord { return w.frontier.Coords() }

// FrontierCells returns the flat grid indices of the frontier entries.
func (w *Wash) FrontierCells() []int {
	out := make([]int, w.frontier.Len())
	for i := range out {
		c := w.frontier.At(i)
		out[i] = w.grid.Index(c.Col, c.Row)
	}
	return out
}

// Settled reports whether the frontier is exhausted. Further steps are no-ops.
func (w *Wash) Settled() bool { return w.frontier.Len() == 0 }

// StepsPerTick is the number of growth steps a host frame should run.
func (w *Wash) StepsPerTick() int { return w.cfg.StepsPerTick }

// Steps returns the number of growth steps run since the last reset.
func (w *Wash) Steps() int { return w.steps }

// Prunes returns how many times size control cut the frontier back.
func (w *Wash) Prunes() int { return w.prunes }

// PeakFrontier returns the largest frontier observed before size control.
func (w *Wash) PeakFrontier() int { return w.peak }

// BatchSize returns the number of frontier picks per step before clamping to
// the frontier size.
func (w *Wash) BatchSize() int {
	n := int(float64(w.grid.Total()) * w.cfg.Params.BatchFraction)
	if n < w.cfg.Params.MinBatch {
		n = w.cfg.Params.MinBatch
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Reset clears the grid and reseeds column 0. A zero seed falls back to the
// configured seed. Washes built with NewWithRand keep their injected source.
func (w *Wash) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	if !w.injected {
		w.rng = core.NewRNG(effective)
	}
	w.grid.Clear()
	w.frontier.Reset()
	w.staged = w.staged[:0]
	w.steps, w.prunes, w.peak = 0, 0, 0

	seeds := int(float64(w.grid.H) * w.cfg.Params.SeedFraction)
	for i := 0; i < seeds; i++ {
		row := w.rng.IntN(w.grid.H)
		if v, _ := w.grid.At(0, row); v != 0 {
			continue
		}
		w.plant(Coord{Col: 0, Row: row}, w.randomColor())
	}
	w.peak = w.frontier.Len()
}

// Plant fills (col, row) with palette entry colorIndex and adds it to the
// frontier. It reports false when the cell is out of range or already filled,
// or the index is outside the palette.
func (w *Wash) Plant(col, row, colorIndex int) bool {
	if colorIndex < 0 || colorIndex >= len(w.cfg.Palette) {
		return false
	}
	return w.plant(Coord{Col: col, Row: row}, uint8(colorIndex+1))
}

func (w *Wash) plant(c Coord, v uint8) bool {
	if !w.grid.Fill(c.Col, c.Row, v) {
		return false
	}
	w.frontier.Add(c)
	if n := w.frontier.Len(); n > w.peak {
		w.peak = n
	}
	return true
}

// Step runs one growth pass: a batch of random frontier picks, each trying
// its neighbor candidates, followed by frontier merge and size control.
func (w *Wash) Step() {
	w.steps++
	n := w.frontier.Len()
	if n == 0 {
		return
	}
	batch := w.BatchSize()
	if batch > n {
		batch = n
	}

	w.staged = w.staged[:0]
	for b := 0; b < batch; b++ {
		i := w.rng.IntN(w.frontier.Len())
		if w.spread(w.frontier.At(i)) == 0 {
			w.frontier.RemoveAt(i)
		}
	}

	w.frontier.Append(w.staged...)
	if size := w.frontier.Len(); size > w.peak {
		w.peak = size
	}
	if w.frontier.Control(w.grid.Total(), w.cfg.Params.PruneAbove, w.cfg.Params.PruneKeep) {
		w.prunes++
	}
}

// spread evaluates the growth candidates of src and returns how many filled.
func (w *Wash) spread(src Coord) int {
	fills := 0
	for _, off := range growthOffsets {
		n := Coord{Col: src.Col + off.Col, Row: src.Row + off.Row}
		v, ok := w.grid.At(n.Col, n.Row)
		if !ok || v != 0 {
			continue
		}
		chance := w.cfg.Params.SideChance
		if n.Col > src.Col {
			chance = w.cfg.Params.RightChance
		}
		if !core.Chance(w.rng, chance) {
			continue
		}
		w.grid.Fill(n.Col, n.Row, w.randomColor())
		w.staged = append(w.staged, n)
		fills++
	}
	return fills
}

func (w *Wash) randomColor() uint8 {
	return uint8(w.rng.IntN(len(w.cfg.Palette)) + 1)
}

func init() {
	core.Register("colorwash", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
