package colorwash

import (
	"fmt"
	"strconv"
	"strings"

	"colorwash/internal/core"
)

// Parameters describes the construction values of the wash.
func (w *Wash) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Columns", w.cfg.Width),
				core.IntParam("h", "Rows", w.cfg.Height),
				core.IntParam("cell", "Cell size", w.cfg.CellSize),
				core.Int64Param("seed", "Seed", w.cfg.Seed),
				core.IntParam("steps_per_tick", "Steps per tick", w.cfg.StepsPerTick),
			},
		},
		{
			Name: "Growth",
			Params: []core.Parameter{
				core.FloatParam("right_chance", "Right chance", params.RightChance),
				core.FloatParam("side_chance", "Side chance", params.SideChance),
				core.FloatParam("seed_fraction", "Seed fraction", params.SeedFraction),
				core.FloatParam("batch_fraction", "Batch fraction", params.BatchFraction),
				core.IntParam("min_batch", "Min batch", params.MinBatch),
				core.FloatParam("prune_above", "Prune above", params.PruneAbove),
				core.FloatParam("prune_keep", "Prune keep", params.PruneKeep),
			},
		},
		{
			Name: "Palette",
			Params: []core.Parameter{
				core.StringParam("palette", "Colors", paletteString(w.cfg)),
			},
		},
	}}
}

// Stats reports live counters for HUDs.
func (w *Wash) Stats() []core.Stat {
	total := w.grid.Total()
	pct := 0.0
	if total > 0 {
		pct = 100 * float64(w.grid.Filled()) / float64(total)
	}
	return []core.Stat{
		{Label: "Steps", Value: strconv.Itoa(w.steps)},
		{Label: "Filled", Value: fmt.Sprintf("%d/%d (%.1f%%)", w.grid.Filled(), total, pct)},
		{Label: "Frontier", Value: strconv.Itoa(w.frontier.Len())},
		{Label: "Peak frontier", Value: strconv.Itoa(w.peak)},
		{Label: "Prunes", Value: strconv.Itoa(w.prunes)},
		{Label: "Settled", Value: strconv.FormatBool(w.Settled())},
	}
}

func paletteString(cfg Config) string {
	hexes := make([]string, len(cfg.Palette))
	for i, c := range cfg.Palette {
		hexes[i] = fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return strings.Join(hexes, ",")
}
