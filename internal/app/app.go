//go:build ebiten

package app

import (
	"image/color"
	"time"

	"colorwash/internal/core"
	"colorwash/internal/render"
	"colorwash/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

// Game adapts a core simulation to the ebiten.Game interface. ebiten calls
// Update once per frame; each call runs one driver tick, and Draw paints the
// result.
type Game struct {
	driver  *core.Driver
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	background color.RGBA

	scale    int
	hudWidth int
	showHUD  bool
	paused   bool
	tickOnce bool
	seed     int64

	settledLogged bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64, hudWidth int) *Game {
	if scale <= 0 {
		scale = 1
	}
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	return &Game{
		driver:     core.NewDriver(sim, 0),
		painter:    gp,
		hud:        ui.NewHUD(sim, hudWidth),
		overlay:    ui.NewOverlay(sim, scale),
		background: core.Background,
		scale:      scale,
		hudWidth:   hudWidth,
		showHUD:    hudWidth > 0,
		seed:       seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.driver.Reset(seed)
	g.tickOnce = false
	g.settledLogged = false
	logrus.WithFields(logrus.Fields{"sim": g.driver.Sim().Name(), "seed": seed}).Info("reset")
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) && g.hudWidth > 0 {
		g.showHUD = !g.showHUD
	}

	g.overlay.Update()

	switch {
	case g.tickOnce:
		g.driver.Force()
		g.tickOnce = false
	case !g.paused:
		g.driver.Tick()
	}

	if !g.settledLogged && g.driver.Settled() {
		g.settledLogged = true
		logrus.WithFields(logrus.Fields{
			"sim":   g.driver.Sim().Name(),
			"ticks": g.driver.Ticks(),
		}).Info("simulation settled")
	}

	if g.showHUD {
		g.hud.Update(g.driver.Ticks())
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.driver.Sim(), g.background, g.scale)
	g.overlay.Draw(screen)
	if g.showHUD {
		g.hud.Draw(screen, g.driver.Sim().Size().W*g.scale, g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.driver.Sim().Size()
	w := s.W * g.scale
	if g.showHUD {
		w += g.hudWidth
	}
	return w, s.H * g.scale
}
