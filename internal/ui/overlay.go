//go:build ebiten

package ui

import (
	"colorwash/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type frontierProvider interface {
	FrontierCells() []int
}

// Overlay highlights the cells a simulation can still grow from. Key 1
// toggles it.
type Overlay struct {
	sim          core.Sim
	scale        int
	showFrontier bool
	maskImg      *ebiten.Image
	maskBuf      []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update handles the overlay toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showFrontier = !o.showFrontier
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showFrontier {
		return
	}
	provider, ok := o.sim.(frontierProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	total := size.W * size.H
	if total == 0 {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}
	clear(o.maskBuf)
	for _, idx := range provider.FrontierCells() {
		if idx < 0 || idx >= total {
			continue
		}
		base := idx * 4
		// premultiplied white at ~70% alpha
		o.maskBuf[base+0] = 180
		o.maskBuf[base+1] = 180
		o.maskBuf[base+2] = 180
		o.maskBuf[base+3] = 180
	}
	o.maskImg.WritePixels(o.maskBuf)

	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}
