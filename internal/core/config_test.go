package core

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridForViewportRoundsUp(t *testing.T) {
	assert.Equal(t, Size{W: 192, H: 108}, GridForViewport(1920, 1080, 10))
	assert.Equal(t, Size{W: 3, H: 2}, GridForViewport(21, 11, 10))
	assert.Equal(t, Size{W: 1, H: 1}, GridForViewport(0, -5, 10))
}

func TestMapHelpersIgnoreBadValues(t *testing.T) {
	cfg := map[string]string{
		"n":       "12",
		"neg":     "-3",
		"junk":    "abc",
		"p":       "0.25",
		"p_high":  "1.5",
		"seed":    "-77",
		"palette": "#010203,#040506",
		"bad_pal": "#01",
	}

	n, neg, junk := 1, 1, 1
	MapInt(cfg, "n", 0, &n)
	MapInt(cfg, "neg", 0, &neg)
	MapInt(cfg, "junk", 0, &junk)
	MapInt(cfg, "missing", 0, &junk)
	assert.Equal(t, 12, n)
	assert.Equal(t, 1, neg)
	assert.Equal(t, 1, junk)

	p, high := 0.5, 0.5
	MapProbability(cfg, "p", &p)
	MapProbability(cfg, "p_high", &high)
	assert.Equal(t, 0.25, p)
	assert.Equal(t, 0.5, high)

	var seed int64 = 1
	MapInt64(cfg, "seed", &seed)
	assert.Equal(t, int64(-77), seed)

	pal := []color.RGBA{{A: 255}}
	MapPalette(cfg, "bad_pal", &pal)
	assert.Len(t, pal, 1)
	MapPalette(cfg, "palette", &pal)
	assert.Equal(t, []color.RGBA{{R: 1, G: 2, B: 3, A: 255}, {R: 4, G: 5, B: 6, A: 255}}, pal)
}

func TestMapGrid(t *testing.T) {
	size := Size{W: 5, H: 5}
	MapGrid(map[string]string{"viewport_w": "100", "viewport_h": "45"}, 10, &size)
	assert.Equal(t, Size{W: 10, H: 5}, size)

	MapGrid(map[string]string{"viewport_w": "100", "viewport_h": "45", "h": "7"}, 10, &size)
	assert.Equal(t, Size{W: 10, H: 7}, size, "explicit cell counts win")
}
