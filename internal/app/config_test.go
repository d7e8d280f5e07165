package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorwash/internal/sims/colorwash"
	_ "colorwash/internal/sims/snake"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestBindParsesFlagsAndOverrides(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-sim", "snake", "-seed", "9", "-set", "length=12", "-set", "cell = 8"})
	require.NoError(t, err)
	assert.Equal(t, "snake", cfg.Sim)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, KVList{"length": "12", "cell": "8"}, cfg.Overrides)

	assert.Error(t, fs.Parse([]string{"-set", "novalue"}))
}

func TestApplyEnvBeforeFlags(t *testing.T) {
	cfg := NewConfig()
	err := cfg.ApplyEnv(envMap(map[string]string{
		"COLORWASH_SIM":        "snake",
		"COLORWASH_TPS":        "30",
		"COLORWASH_SEED":       "-4",
		"COLORWASH_VIEWPORT_W": "640",
		"COLORWASH_VIEWPORT_H": "480",
	}))
	require.NoError(t, err)
	assert.Equal(t, "snake", cfg.Sim)
	assert.Equal(t, 30, cfg.TPS)
	assert.Equal(t, int64(-4), cfg.Seed)
	assert.Equal(t, "640", cfg.Overrides["viewport_w"])

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-tps", "90"}))
	assert.Equal(t, 90, cfg.TPS, "flags override the environment")

	bad := NewConfig()
	assert.ErrorContains(t, bad.ApplyEnv(envMap(map[string]string{"COLORWASH_SCALE": "big"})), "COLORWASH_SCALE")
}

func TestLoadEnvFile(t *testing.T) {
	assert.NoError(t, LoadEnv(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("COLORWASH_TEST_VALUE=7\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("COLORWASH_TEST_VALUE") })
	require.NoError(t, LoadEnv(path))
	assert.Equal(t, "7", os.Getenv("COLORWASH_TEST_VALUE"))
}

func TestNewSim(t *testing.T) {
	cfg := NewConfig()
	cfg.Overrides["w"] = "16"
	cfg.Overrides["h"] = "9"
	sim, err := cfg.NewSim()
	require.NoError(t, err)
	wash, ok := sim.(*colorwash.Wash)
	require.True(t, ok)
	assert.Equal(t, 16, wash.Size().W)
	assert.Equal(t, 10, cfg.CellScale(sim), "falls back to the sim's cell size")

	cfg.Scale = 4
	assert.Equal(t, 4, cfg.CellScale(sim))

	cfg.Sim = "nope"
	_, err = cfg.NewSim()
	assert.ErrorContains(t, err, "colorwash, snake")
}
