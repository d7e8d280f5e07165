// Package render paints simulation cells onto raster surfaces. Simulations
// never import a graphics binding; hosts pick a Surface and call Paint.
package render

import (
	"image/color"

	"colorwash/internal/core"
)

// Surface is the paint-cell capability a renderer needs. Implementations own
// the mapping from cell coordinates to pixels or terminal characters.
type Surface interface {
	Clear(bg color.RGBA)
	FillCell(col, row int, c color.RGBA)
}

// Paint clears s to bg and fills every non-empty cell with palette[v-1].
// Values past the end of the palette use its last color. cells is only read.
func Paint(s Surface, size core.Size, cells []uint8, palette []color.RGBA, bg color.RGBA) {
	if s == nil {
		return
	}
	s.Clear(bg)
	if len(palette) == 0 || size.W <= 0 {
		return
	}
	last := len(palette) - 1
	for i, v := range cells {
		if v == 0 {
			continue
		}
		idx := int(v) - 1
		if idx > last {
			idx = last
		}
		s.FillCell(i%size.W, i/size.W, palette[idx])
	}
}

// PaintSim paints the current state of sim.
func PaintSim(s Surface, sim core.Sim, bg color.RGBA) {
	Paint(s, sim.Size(), sim.Cells(), sim.Palette(), bg)
}
