package render

import (
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorwash/internal/core"
)

var (
	bg    = color.RGBA{R: 2, G: 2, B: 2, A: 255}
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
)

type recordingSurface struct {
	cleared []color.RGBA
	fills   map[[2]int]color.RGBA
}

func (r *recordingSurface) Clear(c color.RGBA) {
	r.cleared = append(r.cleared, c)
	r.fills = map[[2]int]color.RGBA{}
}

func (r *recordingSurface) FillCell(col, row int, c color.RGBA) {
	r.fills[[2]int{col, row}] = c
}

func TestPaintClearsThenFillsNonEmptyCells(t *testing.T) {
	s := &recordingSurface{}
	cells := []uint8{
		0, 1, 0,
		2, 0, 9,
	}
	Paint(s, core.Size{W: 3, H: 2}, cells, []color.RGBA{red, green}, bg)

	assert.Equal(t, []color.RGBA{bg}, s.cleared)
	assert.Equal(t, map[[2]int]color.RGBA{
		{1, 0}: red,
		{0, 1}: green,
		{2, 1}: green,
	}, s.fills, "values past the palette clamp to the last color")
}

func TestPaintTolerance(t *testing.T) {
	assert.NotPanics(t, func() {
		Paint(nil, core.Size{W: 1, H: 1}, []uint8{1}, []color.RGBA{red}, bg)
	})

	s := &recordingSurface{}
	Paint(s, core.Size{W: 1, H: 1}, []uint8{1}, nil, bg)
	assert.Len(t, s.cleared, 1)
	assert.Empty(t, s.fills)
}

func TestRGBABuffer(t *testing.T) {
	b := NewRGBABuffer(2, 2)
	Paint(b, core.Size{W: 2, H: 2}, []uint8{0, 1, 0, 0}, []color.RGBA{red}, bg)

	assert.Equal(t, bg, b.At(0, 0))
	assert.Equal(t, red, b.At(1, 0))
	assert.Equal(t, bg, b.At(1, 1))
	assert.Len(t, b.Pix, 16)

	b.FillCell(5, 5, green)
	b.FillCell(-1, 0, green)
	assert.Equal(t, bg, b.At(0, 0))
}

func TestContextSurfaceDrawsSquares(t *testing.T) {
	s := NewContextSurface(3, 2, 10)
	defer s.Close()

	Paint(s, core.Size{W: 3, H: 2}, []uint8{0, 0, 0, 0, 1, 0}, []color.RGBA{red}, bg)
	require.NoError(t, s.Err())

	img := s.Image()
	assert.Equal(t, 30, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())

	near := func(want color.RGBA, x, y int) {
		got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
		assert.InDelta(t, want.R, got.R, 1, "R at %d,%d", x, y)
		assert.InDelta(t, want.G, got.G, 1, "G at %d,%d", x, y)
		assert.InDelta(t, want.B, got.B, 1, "B at %d,%d", x, y)
	}
	near(red, 15, 15)
	near(bg, 5, 5)
	near(bg, 25, 15)
}

func TestTextSurfaceHalfBlocks(t *testing.T) {
	s := NewTextSurface(4, 3)
	Paint(s, core.Size{W: 4, H: 3}, []uint8{
		1, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 1,
	}, []color.RGBA{green}, bg)

	assert.Equal(t, green, s.At(0, 0))
	assert.Equal(t, green, s.At(3, 2))
	assert.Equal(t, bg, s.At(1, 1))

	lines := strings.Split(s.String(), "\n")
	require.Len(t, lines, 2, "three rows fold into two lines")
	for _, line := range lines {
		assert.Equal(t, 4, lipgloss.Width(line))
	}
}
