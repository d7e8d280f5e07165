package snake

import (
	"fmt"
	"image/color"
	"strconv"
	"time"

	"colorwash/internal/core"
)

type direction uint8

const (
	dirRight direction = iota
	dirUp
	dirDown
)

func (d direction) String() string {
	switch d {
	case dirUp:
		return "up"
	case dirDown:
		return "down"
	default:
		return "right"
	}
}

type segment struct{ x, y int }

// Snake is a grid-locked snake crawling left to right with random vertical
// wiggles. Once its tail leaves the right edge it re-enters on the left.
type Snake struct {
	cfg Config

	grid    *core.ByteGrid
	body    []segment
	dir     direction
	palette []color.RGBA

	rng   core.Rand
	laps  int
	moves int
}

// New returns a snake on a grid of the provided dimensions using defaults.
func New(w, h int) *Snake {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a snake configured from the provided options.
func NewWithConfig(cfg Config) *Snake {
	if cfg.Length <= 0 {
		cfg.Length = 1
	}
	if cfg.Length > 255 {
		cfg.Length = 255
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = append([]color.RGBA(nil), DefaultPalette...)
	}
	grid := core.NewByteGrid(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = grid.W, grid.H
	s := &Snake{cfg: cfg, grid: grid, palette: bodyPalette(cfg)}
	s.Reset(0)
	return s
}

// bodyPalette assigns one entry per segment, fading toward the tail.
func bodyPalette(cfg Config) []color.RGBA {
	out := make([]color.RGBA, cfg.Length)
	for i := range out {
		alpha := 1 - float64(i)/float64(cfg.Length)*0.4
		out[i] = core.Blend(core.Background, cfg.Palette[i%len(cfg.Palette)], alpha)
	}
	return out
}

// Name returns the simulation identifier.
func (s *Snake) Name() string { return "snake" }

// Size reports the grid dimensions.
func (s *Snake) Size() core.Size { return core.Size{W: s.grid.W, H: s.grid.H} }

// Cells exposes the body raster: segment i occupies value i+1.
func (s *Snake) Cells() []uint8 { return s.grid.Cells() }

// Palette returns the per-segment colors.
func (s *Snake) Palette() []color.RGBA { return s.palette }

// Interval is the wall-clock time between moves.
func (s *Snake) Interval() time.Duration { return s.cfg.Interval }

// Head returns the head position in cells. x may be negative while entering.
func (s *Snake) Head() (x, y int) { return s.body[0].x, s.body[0].y }

// Laps returns how many times the snake crossed the screen since reset.
func (s *Snake) Laps() int { return s.laps }

// Reset lines the snake up off-screen left on the middle row.
func (s *Snake) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	s.rng = core.NewRNG(effective)
	s.laps, s.moves = 0, 0
	s.restart(s.grid.H / 2)
}

func (s *Snake) restart(row int) {
	s.body = s.body[:0]
	for i := 0; i < s.cfg.Length; i++ {
		s.body = append(s.body, segment{x: -i, y: row})
	}
	s.dir = dirRight
	s.rebuild()
}

// Step moves the head one cell and drops the tail.
func (s *Snake) Step() {
	s.moves++
	s.dir = s.pickDirection()

	head := s.body[0]
	switch s.dir {
	case dirRight:
		head.x++
	case dirUp:
		head.y--
	case dirDown:
		head.y++
	}

	top := s.cfg.Params.EdgeMargin
	bottom := s.grid.H - 1 - s.cfg.Params.EdgeMargin
	if head.y < top {
		head.y = top
		s.dir = dirDown
	}
	if head.y > bottom {
		head.y = bottom
		s.dir = dirUp
	}

	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = head

	if s.body[len(s.body)-1].x > s.grid.W+2 {
		s.laps++
		s.restart(s.resetRow())
		return
	}
	s.rebuild()
}

func (s *Snake) pickDirection() direction {
	r := s.rng.Float64()
	switch s.dir {
	case dirRight:
		p := s.cfg.Params.StraightChance
		if r < p {
			return dirRight
		}
		if r < p+(1-p)/2 {
			return dirUp
		}
		return dirDown
	default:
		if r < s.cfg.Params.RecoverChance {
			return dirRight
		}
		return s.dir
	}
}

func (s *Snake) resetRow() int {
	margin := s.cfg.Params.ResetMargin
	span := s.grid.H - 2*margin
	if span <= 0 {
		return s.grid.H / 2
	}
	return s.rng.IntN(span) + margin
}

// rebuild redraws the body head first so earlier segments win overlaps.
func (s *Snake) rebuild() {
	s.grid.Clear()
	for i, seg := range s.body {
		s.grid.Fill(seg.x, seg.y, uint8(i+1))
	}
}

// Stats reports live counters for HUDs.
func (s *Snake) Stats() []core.Stat {
	x, y := s.Head()
	return []core.Stat{
		{Label: "Moves", Value: strconv.Itoa(s.moves)},
		{Label: "Head", Value: fmt.Sprintf("%d,%d", x, y)},
		{Label: "Heading", Value: s.dir.String()},
		{Label: "Laps", Value: strconv.Itoa(s.laps)},
	}
}

// Parameters describes the construction values of the snake.
func (s *Snake) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Columns", s.cfg.Width),
				core.IntParam("h", "Rows", s.cfg.Height),
				core.IntParam("cell", "Cell size", s.cfg.CellSize),
				core.Int64Param("seed", "Seed", s.cfg.Seed),
			},
		},
		{
			Name: "Body",
			Params: []core.Parameter{
				core.IntParam("length", "Length", s.cfg.Length),
				core.IntParam("interval_ms", "Move interval (ms)", int(s.cfg.Interval/time.Millisecond)),
				core.FloatParam("straight_chance", "Straight chance", s.cfg.Params.StraightChance),
				core.FloatParam("recover_chance", "Recover chance", s.cfg.Params.RecoverChance),
			},
		},
	}}
}

func init() {
	core.Register("snake", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
