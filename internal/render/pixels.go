package render

import "image/color"

// RGBABuffer is a one-pixel-per-cell RGBA raster, laid out for direct upload
// to a GPU texture.
type RGBABuffer struct {
	W, H int
	Pix  []byte
}

// NewRGBABuffer allocates a buffer for a w*h grid.
func NewRGBABuffer(w, h int) *RGBABuffer {
	return &RGBABuffer{W: w, H: h, Pix: make([]byte, 4*w*h)}
}

// Clear fills every pixel with bg.
func (b *RGBABuffer) Clear(bg color.RGBA) {
	for base := 0; base+3 < len(b.Pix); base += 4 {
		b.Pix[base+0] = bg.R
		b.Pix[base+1] = bg.G
		b.Pix[base+2] = bg.B
		b.Pix[base+3] = bg.A
	}
}

// FillCell writes c at (col, row). Out-of-range cells are ignored.
func (b *RGBABuffer) FillCell(col, row int, c color.RGBA) {
	if col < 0 || col >= b.W || row < 0 || row >= b.H {
		return
	}
	base := (row*b.W + col) * 4
	b.Pix[base+0] = c.R
	b.Pix[base+1] = c.G
	b.Pix[base+2] = c.B
	b.Pix[base+3] = c.A
}

// At returns the color stored for (col, row).
func (b *RGBABuffer) At(col, row int) color.RGBA {
	base := (row*b.W + col) * 4
	return color.RGBA{R: b.Pix[base], G: b.Pix[base+1], B: b.Pix[base+2], A: b.Pix[base+3]}
}
