package snake

import (
	"image/color"
	"time"

	"colorwash/internal/core"
)

// Params holds the wander probabilities and edge margins.
type Params struct {
	// StraightChance keeps a right-moving snake heading right; the remainder
	// splits evenly between up and down.
	StraightChance float64
	// RecoverChance turns a vertically moving snake back to the right.
	RecoverChance float64

	// EdgeMargin keeps the head this many rows away from the top and bottom.
	EdgeMargin int
	// ResetMargin bounds the row chosen when the snake re-enters on the left.
	ResetMargin int
}

// Config controls the snake grid, length and pacing.
type Config struct {
	Width    int
	Height   int
	CellSize int

	Seed int64

	Length   int
	Interval time.Duration

	Palette []color.RGBA

	Params Params
}

// DefaultPalette cycles along the body from the head.
var DefaultPalette = core.MustPalette(
	"#1802fd", "#ff7701", "#2ff429", "#ea2215",
	"#68f3e4", "#f6f927", "#f724ea",
)

const defaultCellSize = 16

// DefaultConfig returns the standard configuration for a 1280x720 viewport.
func DefaultConfig() Config {
	size := core.GridForViewport(1280, 720, defaultCellSize)
	return Config{
		Width:    size.W,
		Height:   size.H,
		CellSize: defaultCellSize,
		Seed:     1337,
		Length:   35,
		Interval: 70 * time.Millisecond,
		Palette:  append([]color.RGBA(nil), DefaultPalette...),
		Params: Params{
			StraightChance: 0.7,
			RecoverChance:  0.6,
			EdgeMargin:     2,
			ResetMargin:    5,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.MapInt(cfg, "cell", 1, &c.CellSize)
	size := core.Size{W: c.Width, H: c.Height}
	core.MapGrid(cfg, c.CellSize, &size)
	c.Width, c.Height = size.W, size.H

	core.MapInt64(cfg, "seed", &c.Seed)
	core.MapInt(cfg, "length", 1, &c.Length)
	ms := int(c.Interval / time.Millisecond)
	core.MapInt(cfg, "interval_ms", 1, &ms)
	c.Interval = time.Duration(ms) * time.Millisecond
	core.MapPalette(cfg, "palette", &c.Palette)
	core.MapProbability(cfg, "straight_chance", &c.Params.StraightChance)
	core.MapProbability(cfg, "recover_chance", &c.Params.RecoverChance)
	return c
}
