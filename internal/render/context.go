package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
)

// ContextSurface draws cells as solid squares on a gg software context.
type ContextSurface struct {
	dc   *gg.Context
	cell float64
	err  error
}

// NewContextSurface allocates a context sized for cols*rows cells of cellSize
// pixels.
func NewContextSurface(cols, rows, cellSize int) *ContextSurface {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &ContextSurface{
		dc:   gg.NewContext(cols*cellSize, rows*cellSize),
		cell: float64(cellSize),
	}
}

// Clear fills the whole context with bg.
func (s *ContextSurface) Clear(bg color.RGBA) {
	s.dc.ClearWithColor(gg.FromColor(bg))
}

// FillCell draws the square for (col, row). The first fill error is kept and
// reported by Err.
func (s *ContextSurface) FillCell(col, row int, c color.RGBA) {
	s.dc.SetColor(c)
	s.dc.DrawRectangle(float64(col)*s.cell, float64(row)*s.cell, s.cell, s.cell)
	if err := s.dc.Fill(); err != nil && s.err == nil {
		s.err = fmt.Errorf("fill cell %d,%d: %w", col, row, err)
	}
}

// Err returns the first error raised while filling cells.
func (s *ContextSurface) Err() error { return s.err }

// Image returns the rendered raster.
func (s *ContextSurface) Image() image.Image { return s.dc.Image() }

// SavePNG writes the raster to path.
func (s *ContextSurface) SavePNG(path string) error {
	if s.err != nil {
		return s.err
	}
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Close releases the context.
func (s *ContextSurface) Close() error { return s.dc.Close() }
