//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"colorwash/internal/app"
	_ "colorwash/internal/sims/colorwash"
	_ "colorwash/internal/sims/snake"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := app.LoadEnv(); err != nil {
		logrus.WithError(err).Fatal("environment")
	}
	cfg := app.NewConfig()
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

	scale := cfg.CellScale(sim)
	game := app.New(sim, scale, cfg.Seed, cfg.HUDWidth)
	size := sim.Size()

	logrus.WithFields(logrus.Fields{
		"sim":   sim.Name(),
		"cols":  size.W,
		"rows":  size.H,
		"scale": scale,
		"seed":  cfg.Seed,
	}).Info("starting")

	ebiten.SetWindowTitle("colorwash: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.Layout(0, 0))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logrus.WithError(err).Fatal("run")
	}
}
