package app

import (
	"errors"
	"flag"
	"fmt"
	"maps"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"colorwash/internal/core"
)

// KVList collects repeatable key=value flags.
type KVList map[string]string

func (l KVList) String() string {
	parts := make([]string, 0, len(l))
	for k, v := range l {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

// Set parses one key=value pair.
func (l KVList) Set(value string) error {
	k, v, ok := strings.Cut(value, "=")
	if !ok || strings.TrimSpace(k) == "" {
		return fmt.Errorf("override %q: want key=value", value)
	}
	l[strings.TrimSpace(k)] = strings.TrimSpace(v)
	return nil
}

// Config represents the command-line parameters shared by the hosts.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	HUDWidth int
	Verbose  bool

	Overrides KVList
}

// NewConfig returns a Config populated with sensible defaults. A zero Scale
// means the sim's own cell size.
func NewConfig() *Config {
	return &Config{Sim: "colorwash", TPS: 60, Seed: 42, HUDWidth: 240, Overrides: KVList{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run ("+strings.Join(core.SimNames(), ", ")+")")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell (0 uses the sim's cell size)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "verbose logging")
	fs.Var(c.Overrides, "set", "sim parameter override in key=value form (repeatable)")
}

// LoadEnv reads an optional .env file into the process environment. A missing
// file is not an error.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

// ApplyEnv overlays COLORWASH_* variables onto the defaults. It runs before
// flag parsing so flags still win.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("COLORWASH_SIM"); ok && v != "" {
		c.Sim = v
	}
	ints := []struct {
		key string
		dst *int
	}{
		{"COLORWASH_SCALE", &c.Scale},
		{"COLORWASH_TPS", &c.TPS},
		{"COLORWASH_HUD", &c.HUDWidth},
	}
	for _, e := range ints {
		v, ok := lookup(e.key)
		if !ok || v == "" {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", e.key, err)
		}
		*e.dst = parsed
	}
	if v, ok := lookup("COLORWASH_SEED"); ok && v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("COLORWASH_SEED: %w", err)
		}
		c.Seed = parsed
	}
	for env, key := range map[string]string{
		"COLORWASH_VIEWPORT_W": "viewport_w",
		"COLORWASH_VIEWPORT_H": "viewport_h",
	} {
		if v, ok := lookup(env); ok && v != "" {
			c.Overrides[key] = v
		}
	}
	return nil
}

// NewSim builds the configured simulation and resets it with the seed.
func (c *Config) NewSim() (core.Sim, error) {
	factory, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (have %s)", c.Sim, strings.Join(core.SimNames(), ", "))
	}
	sim := factory(maps.Clone(c.Overrides))
	sim.Reset(c.Seed)
	return sim, nil
}

// CellScale returns the pixels per cell for sim: the explicit Scale, else the
// sim's "cell" parameter, else 3.
func (c *Config) CellScale(sim core.Sim) int {
	if c.Scale > 0 {
		return c.Scale
	}
	if p, ok := sim.(core.ParameterProvider); ok {
		if param, ok := p.Parameters().Lookup("cell"); ok {
			if v, err := strconv.Atoi(param.Value); err == nil && v > 0 {
				return v
			}
		}
	}
	return 3
}
