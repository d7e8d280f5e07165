// Package report runs batches of color washes to completion and summarizes
// how they settle.
package report

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	"golang.org/x/sync/errgroup"

	"colorwash/internal/sims/colorwash"
)

// Run settles one wash per seed using at most workers goroutines. Results are
// returned in seed order. Each run owns its own wash; nothing is shared.
func Run(ctx context.Context, base colorwash.Config, seeds []int64, workers, maxTicks int) ([]colorwash.SettleResult, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]colorwash.SettleResult, len(seeds))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cfg := base
			cfg.Seed = seed
			results[i] = colorwash.Settle(cfg, maxTicks)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("settle runs: %w", err)
	}
	return results, nil
}

// Summary aggregates a batch of runs.
type Summary struct {
	Runs      int
	Unsettled int

	MinSettle    int
	MaxSettle    int
	MedianSettle int

	MeanFill     float64
	PeakFrontier int
	Prunes       int
}

// Summarize computes the batch summary. Settle ticks only count settled runs.
func Summarize(results []colorwash.SettleResult) Summary {
	s := Summary{Runs: len(results)}
	var settles []int
	fill := 0.0
	for _, r := range results {
		fill += r.FillRatio
		s.Prunes += r.Prunes
		if r.PeakFrontier > s.PeakFrontier {
			s.PeakFrontier = r.PeakFrontier
		}
		if r.SettledAt < 0 {
			s.Unsettled++
			continue
		}
		settles = append(settles, r.SettledAt)
	}
	if len(results) > 0 {
		s.MeanFill = fill / float64(len(results))
	}
	if len(settles) > 0 {
		sort.Ints(settles)
		s.MinSettle = settles[0]
		s.MaxSettle = settles[len(settles)-1]
		s.MedianSettle = settles[len(settles)/2]
	}
	return s
}

// maxLegendSeries keeps the legend readable for large batches.
const maxLegendSeries = 8

// WriteChart renders the fill-ratio curve of every run as a PNG line chart.
func WriteChart(w io.Writer, results []colorwash.SettleResult) error {
	if len(results) == 0 {
		return fmt.Errorf("chart: no runs")
	}
	series := make([]chart.Series, 0, len(results))
	for _, r := range results {
		if len(r.FillCurve) == 0 {
			continue
		}
		xs := make([]float64, len(r.FillCurve))
		for i := range xs {
			xs[i] = float64(i + 1)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("seed %d", r.Seed),
			XValues: xs,
			YValues: r.FillCurve,
		})
	}
	if len(series) == 0 {
		return fmt.Errorf("chart: runs have no ticks")
	}
	// go-chart needs at least two points per axis range.
	for i, s := range series {
		cs := s.(chart.ContinuousSeries)
		if len(cs.XValues) == 1 {
			cs.XValues = append([]float64{0}, cs.XValues...)
			cs.YValues = append([]float64{cs.YValues[0]}, cs.YValues...)
			series[i] = cs
		}
	}

	graph := chart.Chart{
		Title:  "Fill ratio per tick",
		Width:  1024,
		Height: 512,
		XAxis:  chart.XAxis{Name: "tick"},
		YAxis: chart.YAxis{
			Name:  "filled",
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Series: series,
	}
	if len(series) <= maxLegendSeries {
		graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	return nil
}
