//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"colorwash/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter and stats panel to the right of the simulation
// view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int

	snapshot core.ParameterSnapshot
	stats    []core.Stat
	ticks    int
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if provider, ok := sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	return h
}

// Update refreshes the cached stats from the simulation.
func (h *HUD) Update(ticks int) {
	if h == nil {
		return
	}
	h.ticks = ticks
	h.stats = h.stats[:0]
	if provider, ok := h.sim.(core.StatsProvider); ok {
		h.stats = append(h.stats, provider.Stats()...)
	}
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)

	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.sim.Name(), basicfont.Face7x13, panelPadding, y, titleColor)
	y += lineHeight

	y = h.drawRow(y, "Ticks", strconv.Itoa(h.ticks))
	for _, s := range h.stats {
		y = h.drawRow(y, s.Label, s.Value)
	}

	for _, group := range h.snapshot.Groups {
		y += groupGap
		if y > height {
			break
		}
		text.Draw(h.panel, group.Name, basicfont.Face7x13, panelPadding, y, titleColor)
		y += lineHeight
		for _, p := range group.Params {
			y = h.drawRow(y, p.Label, p.Value)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

// drawRow prints label left-aligned and value right-aligned, clipping values
// that would collide with the label.
func (h *HUD) drawRow(y int, label, value string) int {
	face := basicfont.Face7x13
	text.Draw(h.panel, label, face, panelPadding, y, labelColor)
	maxChars := (h.width - 2*panelPadding - text.BoundString(face, label).Dx() - valueGap) / charWidth
	if maxChars < 1 {
		return y + lineHeight
	}
	if len(value) > maxChars {
		value = value[:maxChars-1] + "~"
	}
	valueWidth := text.BoundString(face, value).Dx()
	text.Draw(h.panel, value, face, h.width-panelPadding-valueWidth, y, valueColor)
	return y + lineHeight
}

var (
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	valueColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 16
	groupGap       = 10
	headerBaseline = 12
	valueGap       = 8
	charWidth      = 7
)
