package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"

	"github.com/sirupsen/logrus"

	"colorwash/internal/app"
	"colorwash/internal/report"
	"colorwash/internal/sims/colorwash"
)

func main() {
	if err := app.LoadEnv(); err != nil {
		logrus.WithError(err).Fatal("environment")
	}
	var (
		runs      = flag.Int("runs", 16, "number of seeds to settle")
		workers   = flag.Int("workers", runtime.NumCPU(), "parallel runs")
		maxTicks  = flag.Int("ticks", 20000, "tick limit per run")
		seed      = flag.Int64("seed", 1, "first seed; run i uses seed+i")
		chartPath = flag.String("chart", "", "write a fill-curve PNG chart to this path")
		top       = flag.Int("top", 10, "rows to print, slowest first")
		verbose   = flag.Bool("v", false, "verbose logging")
		overrides = app.KVList{}
	)
	flag.Var(overrides, "set", "wash parameter override in key=value form (repeatable)")
	flag.Parse()
	app.SetupLogging(*verbose)

	base := colorwash.FromMap(overrides)
	seeds := make([]int64, *runs)
	for i := range seeds {
		seeds[i] = *seed + int64(i)
	}
	logrus.WithFields(logrus.Fields{
		"runs":    *runs,
		"workers": *workers,
		"grid":    fmt.Sprintf("%dx%d", base.Width, base.Height),
	}).Info("settling")

	results, err := report.Run(context.Background(), base, seeds, *workers, *maxTicks)
	if err != nil {
		logrus.WithError(err).Fatal("run")
	}

	printResults(results, *top)

	if *chartPath != "" {
		f, err := os.Create(*chartPath)
		if err != nil {
			logrus.WithError(err).Fatal("chart")
		}
		if err := report.WriteChart(f, results); err != nil {
			f.Close()
			logrus.WithError(err).Fatal("chart")
		}
		if err := f.Close(); err != nil {
			logrus.WithError(err).Fatal("chart")
		}
		logrus.WithField("path", *chartPath).Info("chart written")
	}
}

func printResults(results []colorwash.SettleResult, top int) {
	sum := report.Summarize(results)
	fmt.Printf("runs=%d unsettled=%d settle[min=%d median=%d max=%d] fill=%.3f peak_frontier=%d prunes=%d\n",
		sum.Runs, sum.Unsettled, sum.MinSettle, sum.MedianSettle, sum.MaxSettle,
		sum.MeanFill, sum.PeakFrontier, sum.Prunes)

	sorted := append([]colorwash.SettleResult(nil), results...)
	sort.Slice(sorted, func(i, j int) bool {
		return settleKey(sorted[i]) > settleKey(sorted[j])
	})
	if top > len(sorted) {
		top = len(sorted)
	}
	for i := 0; i < top; i++ {
		r := sorted[i]
		fmt.Printf("%2d) seed=%d settled_at=%d fill=%.3f peak_frontier=%d prunes=%d\n",
			i+1, r.Seed, r.SettledAt, r.FillRatio, r.PeakFrontier, r.Prunes)
	}
}

// settleKey ranks unsettled runs as slower than any settled one.
func settleKey(r colorwash.SettleResult) int {
	if r.SettledAt < 0 {
		return int(^uint(0) >> 1)
	}
	return r.SettledAt
}
