//go:build ebiten

package render

import (
	"image/color"

	"colorwash/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a sim's cells into a one-pixel-per-cell image and draws
// it scaled onto the screen.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  *RGBABuffer
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h), buf: NewRGBABuffer(w, h)}
}

// Blit paints sim into the painter image and draws it onto dst at scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, sim core.Sim, bg color.RGBA, scale int) {
	size := sim.Size()
	if size.W != gp.w || size.H != gp.h {
		return
	}
	PaintSim(gp.buf, sim, bg)
	gp.img.WritePixels(gp.buf.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
