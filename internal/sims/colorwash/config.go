package colorwash

import (
	"image/color"

	"colorwash/internal/core"
)

// Params holds the growth probabilities and frontier bounds.
type Params struct {
	// RightChance is the acceptance probability for candidates that advance
	// to a higher column.
	RightChance float64
	// SideChance applies to candidates in the source column.
	SideChance float64

	// SeedFraction of the rows receive a seed draw at column 0 on reset.
	SeedFraction float64

	// A step expands max(MinBatch, floor(cells*BatchFraction)) frontier picks.
	BatchFraction float64
	MinBatch      int

	// When the frontier grows past PruneAbove of the grid it is cut back to
	// the newest PruneKeep of the grid.
	PruneAbove float64
	PruneKeep  float64
}

// Config controls the wash dimensions, palette and growth parameters.
type Config struct {
	Width  int
	Height int

	// CellSize is the edge of one cell in pixels on raster surfaces.
	CellSize int

	Seed int64

	// StepsPerTick is how many growth steps a host frame runs.
	StepsPerTick int

	Palette []color.RGBA

	Params Params
}

// DefaultPalette is the wash's ten-color mosaic.
var DefaultPalette = core.MustPalette(
	"#f724ea", "#ea2215", "#ff7701", "#f6f927",
	"#2ff429", "#68f3e4", "#1802fd", "#422a8b",
	"#dd54a1", "#386e97",
)

const (
	defaultCellSize  = 10
	defaultViewportW = 1280
	defaultViewportH = 720
)

// DefaultConfig returns the standard configuration for a 1280x720 viewport.
func DefaultConfig() Config {
	size := core.GridForViewport(defaultViewportW, defaultViewportH, defaultCellSize)
	return Config{
		Width:        size.W,
		Height:       size.H,
		CellSize:     defaultCellSize,
		Seed:         1337,
		StepsPerTick: 2,
		Palette:      append([]color.RGBA(nil), DefaultPalette...),
		Params: Params{
			RightChance:   0.65,
			SideChance:    0.3,
			SeedFraction:  0.5,
			BatchFraction: 0.004,
			MinBatch:      10,
			PruneAbove:    0.5,
			PruneKeep:     0.3,
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
	core.MapInt(cfg, "steps_per_tick", 1, &c.StepsPerTick)
	core.MapPalette(cfg, "palette", &c.Palette)

	core.MapProbability(cfg, "right_chance", &c.Params.RightChance)
	core.MapProbability(cfg, "side_chance", &c.Params.SideChance)
	core.MapProbability(cfg, "seed_fraction", &c.Params.SeedFraction)
	core.MapProbability(cfg, "batch_fraction", &c.Params.BatchFraction)
	core.MapInt(cfg, "min_batch", 1, &c.Params.MinBatch)
	core.MapProbability(cfg, "prune_above", &c.Params.PruneAbove)
	core.MapProbability(cfg, "prune_keep", &c.Params.PruneKeep)
	return c
}
