package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"colorwash/internal/app"
	"colorwash/internal/core"
	"colorwash/internal/render"
	_ "colorwash/internal/sims/colorwash"
	_ "colorwash/internal/sims/snake"
)

type exportOptions struct {
	Ticks  int
	Settle bool
	Every  int
	Out    string
}

func main() {
	if err := app.LoadEnv(); err != nil {
		logrus.WithError(err).Fatal("environment")
	}
	cfg := app.NewConfig()
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		logrus.WithError(err).Fatal("environment")
	}
	opts := exportOptions{Ticks: 300, Out: "colorwash.png"}
	cfg.Bind(flag.CommandLine)
	flag.IntVar(&opts.Ticks, "ticks", opts.Ticks, "ticks to run (upper bound with -settle)")
	flag.BoolVar(&opts.Settle, "settle", opts.Settle, "stop as soon as the sim settles")
	flag.IntVar(&opts.Every, "every", opts.Every, "also write a numbered frame every N ticks (0 disables)")
	flag.StringVar(&opts.Out, "out", opts.Out, "output PNG path")
	flag.Parse()
	app.SetupLogging(cfg.Verbose)

	sim, err := cfg.NewSim()
	if err != nil {
		logrus.WithError(err).Fatal("build simulation")
	}
	if err := export(sim, cfg.CellScale(sim), opts); err != nil {
		logrus.WithError(err).Fatal("export")
	}
}

func export(sim core.Sim, cell int, opts exportOptions) error {
	d := core.NewDriver(sim, 0)
	size := sim.Size()
	frames := 0
	for d.Ticks() < opts.Ticks {
		if opts.Settle && d.Settled() {
			break
		}
		d.Force()
		if opts.Every > 0 && d.Ticks()%opts.Every == 0 {
			if err := writeFrame(sim, size, cell, framePath(opts.Out, d.Ticks())); err != nil {
				return err
			}
			frames++
		}
	}
	if err := writeFrame(sim, size, cell, opts.Out); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"sim":     sim.Name(),
		"ticks":   d.Ticks(),
		"settled": d.Settled(),
		"frames":  frames,
		"out":     opts.Out,
	}).Info("exported")
	return nil
}

func writeFrame(sim core.Sim, size core.Size, cell int, path string) (err error) {
	s := render.NewContextSurface(size.W, size.H, cell)
	defer func() {
		err = errors.Join(err, s.Close())
	}()
	render.PaintSim(s, sim, core.Background)
	if err := s.SavePNG(path); err != nil {
		return fmt.Errorf("frame %s: %w", path, err)
	}
	logrus.WithField("path", path).Debug("frame written")
	return nil
}

// framePath turns out.png into out-000120.png.
func framePath(out string, tick int) string {
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s-%06d%s", strings.TrimSuffix(out, ext), tick, ext)
}
