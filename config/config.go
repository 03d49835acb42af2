// Package config loads run settings from a YAML file.
//
// Lookup order for the file:
//
//   - an explicit path (missing file is an error);
//   - otherwise $XDG_CONFIG_HOME/volcanium/config.yaml (missing file means defaults).
//
// Unknown keys are rejected so that typos do not silently fall back to defaults.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/volcanium/bitmask"
	"github.com/katalvlaran/volcanium/parser"
	"github.com/katalvlaran/volcanium/solver"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the on-disk run configuration.
type Config struct {
	Start   string  `yaml:"start"`
	Budgets Budgets `yaml:"budgets"`
	Workers int     `yaml:"workers"`
	Width   int     `yaml:"width"`
	Prune   bool    `yaml:"prune"`
	Log     Log     `yaml:"log"`
}

// Budgets mirrors solver.Budgets with YAML keys.
type Budgets struct {
	Single int `yaml:"single"`
	Pair   int `yaml:"pair"`
}

// Log configures the logrus logger.
type Log struct {
	Level  string `yaml:"level"`  // any logrus level name
	Format string `yaml:"format"` // "text" or "json"
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Start: parser.DefaultStart,
		Budgets: Budgets{
			Single: solver.DefaultSingleBudget,
			Pair:   solver.DefaultPairBudget,
		},
		Workers: 0,
		Width:   bitmask.MaxWidth,
		Prune:   false,
		Log:     Log{Level: "info", Format: "text"},
	}
}

// DefaultPath is the per-user configuration file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "volcanium", "config.yaml")
}

// Load reads path, or DefaultPath when path is empty, over the defaults.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, errors.Wrapf(err, "config: reading %s", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.WithMessagef(err, "config: %s", path)
	}

	return cfg, nil
}

// Parse decodes YAML over Default() and validates the result.
// An empty document yields the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "config: decoding yaml")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	switch {
	case c.Start == "":
		return errors.Wrap(ErrInvalidConfig, "start valve is empty")
	case c.Budgets.Single < 0 || c.Budgets.Pair < 0:
		return errors.Wrapf(ErrInvalidConfig, "budgets must be non-negative (single=%d pair=%d)", c.Budgets.Single, c.Budgets.Pair)
	case c.Width < 1 || c.Width > bitmask.MaxWidth:
		return errors.Wrapf(ErrInvalidConfig, "width %d outside [1,%d]", c.Width, bitmask.MaxWidth)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "workers %d is negative", c.Workers)
	case c.Log.Format != "text" && c.Log.Format != "json":
		return errors.Wrapf(ErrInvalidConfig, "log format %q", c.Log.Format)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "log level %q", c.Log.Level)
	}

	return nil
}

// SolverBudgets converts the budgets for solver.Solve.
func (c Config) SolverBudgets() solver.Budgets {
	return solver.Budgets{Single: c.Budgets.Single, Pair: c.Budgets.Pair}
}

// SolverOptions converts the tuning knobs for solver.Solve.
func (c Config) SolverOptions() []solver.Option {
	return []solver.Option{
		solver.WithWorkers(c.Workers),
		solver.WithWidth(c.Width),
		solver.WithPruning(c.Prune),
	}
}
