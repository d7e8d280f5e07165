package main

import (
	"flag"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"colorwash/internal/app"
	_ "colorwash/internal/sims/colorwash"
	_ "colorwash/internal/sims/snake"
	"colorwash/internal/tui"
)

func main() {
	if err := app.LoadEnv(); err != nil {
		logrus.WithError(err).Fatal("environment")
	}
	cfg := app.NewConfig()
	// A terminal fits far fewer cells than a window.
	cfg.Overrides["w"] = "80"
	cfg.Overrides["h"] = "40"
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		logrus.WithError(err).Fatal("environment")
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	app.SetupLogging(cfg.Verbose)

	sim, err := cfg.NewSim()
	if err != nil {
		logrus.WithError(err).Fatal("build simulation")
	}

	p := tea.NewProgram(tui.New(sim, cfg.Seed), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logrus.WithError(err).Fatal("terminal")
	}
}
