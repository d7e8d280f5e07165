package report

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorwash/internal/sims/colorwash"
)

func smallConfig() colorwash.Config {
	cfg := colorwash.DefaultConfig()
	cfg.Width = 24
	cfg.Height = 16
	return cfg
}

func TestRunSettlesEverySeedInOrder(t *testing.T) {
	seeds := []int64{1, 2, 3, 4, 5}
	results, err := Run(context.Background(), smallConfig(), seeds, 3, 5000)
	require.NoError(t, err)
	require.Len(t, results, len(seeds))

	for i, r := range results {
		assert.Equal(t, seeds[i], r.Seed)
		assert.GreaterOrEqual(t, r.SettledAt, 1, "seed %d should settle", r.Seed)
		assert.Len(t, r.FillCurve, r.Ticks)
		for j := 1; j < len(r.FillCurve); j++ {
			assert.GreaterOrEqual(t, r.FillCurve[j], r.FillCurve[j-1], "fill must never shrink")
		}
		assert.LessOrEqual(t, r.FillRatio, 1.0)
	}

	again, err := Run(context.Background(), smallConfig(), seeds, 1, 5000)
	require.NoError(t, err)
	for i := range results {
		assert.Equal(t, results[i].FillCurve, again[i].FillCurve, "worker count must not change outcomes")
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, smallConfig(), []int64{1, 2}, 1, 10)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	s := Summarize([]colorwash.SettleResult{
		{SettledAt: 40, FillRatio: 0.5, PeakFrontier: 10, Prunes: 1},
		{SettledAt: 20, FillRatio: 0.7, PeakFrontier: 30},
		{SettledAt: -1, FillRatio: 0.3, PeakFrontier: 5},
		{SettledAt: 30, FillRatio: 0.5, PeakFrontier: 7, Prunes: 2},
	})
	assert.Equal(t, 4, s.Runs)
	assert.Equal(t, 1, s.Unsettled)
	assert.Equal(t, 20, s.MinSettle)
	assert.Equal(t, 40, s.MaxSettle)
	assert.Equal(t, 30, s.MedianSettle)
	assert.InDelta(t, 0.5, s.MeanFill, 1e-9)
	assert.Equal(t, 30, s.PeakFrontier)
	assert.Equal(t, 3, s.Prunes)

	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestWriteChartProducesPNG(t *testing.T) {
	results, err := Run(context.Background(), smallConfig(), []int64{7, 8}, 2, 5000)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteChart(&buf, results))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1024, img.Bounds().Dx())

	assert.Error(t, WriteChart(&buf, nil))
}
