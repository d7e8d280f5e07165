package colorwash

import "colorwash/internal/core"

// SettleResult summarizes one run of a wash until its frontier empties.
type SettleResult struct {
	Seed int64

	// Ticks is the number of driver ticks simulated.
	Ticks int
	// SettledAt is the tick after which the frontier was empty, or -1 when the
	// run hit the tick limit first.
	SettledAt int

	Filled       int
	Total        int
	FillRatio    float64
	PeakFrontier int
	Prunes       int

	// FillCurve and FrontierCurve hold the fill ratio and frontier size after
	// every tick.
	FillCurve     []float64
	FrontierCurve []int
}

// Settle runs a freshly seeded wash through a driver until it settles or
// maxTicks ticks have run.
func Settle(cfg Config, maxTicks int) SettleResult {
	w := NewWithConfig(cfg)
	d := core.NewDriver(w, 0)

	res := SettleResult{Seed: w.cfg.Seed, SettledAt: -1, Total: w.grid.Total()}
	for d.Ticks() < maxTicks && !w.Settled() {
		d.Tick()
		res.FillCurve = append(res.FillCurve, float64(w.Filled())/float64(res.Total))
		res.FrontierCurve = append(res.FrontierCurve, w.FrontierLen())
	}
	res.Ticks = d.Ticks()
	if w.Settled() {
		res.SettledAt = d.Ticks()
	}
	res.Filled = w.Filled()
	res.FillRatio = float64(res.Filled) / float64(res.Total)
	res.PeakFrontier = w.PeakFrontier()
	res.Prunes = w.Prunes()
	return res
}
