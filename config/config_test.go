package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volcanium/config"
	"github.com/katalvlaran/volcanium/solver"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "AA", cfg.Start)
	assert.Equal(t, solver.DefaultBudgets(), cfg.SolverBudgets())
	assert.Equal(t, 64, cfg.Width)
	assert.Len(t, cfg.SolverOptions(), 3)
	assert.True(t, strings.HasSuffix(config.DefaultPath(), filepath.Join("volcanium", "config.yaml")))
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := config.Parse([]byte(`
start: BB
budgets:
  pair: 20
workers: 3
prune: true
log:
  level: debug
  format: json
`))
	require.NoError(t, err)
	assert.Equal(t, "BB", cfg.Start)
	assert.Equal(t, solver.Budgets{Single: 30, Pair: 20}, cfg.SolverBudgets())
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 64, cfg.Width, "unset keys keep their defaults")
	assert.True(t, cfg.Prune)
	assert.Equal(t, config.Log{Level: "debug", Format: "json"}, cfg.Log)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := config.Parse([]byte("budget:\n  single: 10\n"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty start":     `start: ""`,
		"negative budget": "budgets:\n  single: -1",
		"zero width":      "width: 0",
		"wide":            "width: 65",
		"workers":         "workers: -2",
		"format":          "log:\n  format: xml",
		"level":           "log:\n  level: loud",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 16\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Width)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(path, []byte("width: 0\n"), 0o600))
	_, err = config.Load(path)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
