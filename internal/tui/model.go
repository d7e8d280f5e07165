// Package tui hosts a simulation in the terminal with bubbletea, drawing the
// grid as lipgloss half blocks.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"colorwash/internal/core"
	"colorwash/internal/render"
)

// FrameInterval is the wall-clock delay between ticks.
const FrameInterval = 16 * time.Millisecond

type tickMsg time.Time

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the bubbletea model driving one simulation.
type Model struct {
	driver  *core.Driver
	surface *render.TextSurface
	seed    int64

	paused   bool
	quitting bool
}

// New builds a model for sim, which must already be reset.
func New(sim core.Sim, seed int64) *Model {
	size := sim.Size()
	m := &Model{
		driver:  core.NewDriver(sim, 0),
		surface: render.NewTextSurface(size.W, size.H),
		seed:    seed,
	}
	m.repaint()
	return m
}

func tick() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init starts the frame ticker.
func (m *Model) Init() tea.Cmd { return tick() }

// Update handles keys and frame ticks.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "n":
			m.driver.Force()
			m.repaint()
		case "r":
			m.driver.Reset(m.seed)
			m.repaint()
		case "s":
			m.seed++
			m.driver.Reset(m.seed)
			m.repaint()
		}
		return m, nil
	case tickMsg:
		if !m.paused && m.driver.Tick() > 0 {
			m.repaint()
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) repaint() {
	render.PaintSim(m.surface, m.driver.Sim(), core.Background)
}

// View renders the grid and a status line.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return m.surface.String() + "\n" + statusStyle.Render(m.status())
}

func (m *Model) status() string {
	sim := m.driver.Sim()
	parts := []string{sim.Name(), fmt.Sprintf("seed %d", m.seed), fmt.Sprintf("ticks %d", m.driver.Ticks())}
	if p, ok := sim.(core.StatsProvider); ok {
		for _, s := range p.Stats() {
			parts = append(parts, s.Label+" "+s.Value)
		}
	}
	switch {
	case m.paused:
		parts = append(parts, "paused")
	case m.driver.Settled():
		parts = append(parts, "settled")
	}
	return strings.Join(parts, " | ") + "  [space] pause [n] step [r] reset [s] new seed [q] quit"
}

// Paused reports whether ticks are ignored.
func (m *Model) Paused() bool { return m.paused }

// Driver exposes the driver for inspection.
func (m *Model) Driver() *core.Driver { return m.driver }
