package volcanium

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the file form of the search options.
type Config struct {
	Start          string `yaml:"start"`
	Minutes        int    `yaml:"minutes"`
	Agents         int    `yaml:"agents"`
	OpenMinutes    int    `yaml:"open_minutes"`
	Workers        int    `yaml:"workers"`
	ParallelCutoff int    `yaml:"parallel_cutoff"`
	MaxDepth       int    `yaml:"max_depth"`
	Prune          bool   `yaml:"prune"`
	LogLevel       string `yaml:"log_level"`
}

// DefaultConfig returns the settings for the two-agent puzzle.
func DefaultConfig() Config {
	return Config{
		Start:          "AA",
		Minutes:        26,
		Agents:         2,
		OpenMinutes:    1,
		ParallelCutoff: 3,
		LogLevel:       "info",
	}
}

// LoadConfig reads a YAML config from path. Fields missing from the file
// keep their defaults, and a missing file yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// maxAgents bounds the assignment fan-out, which grows as c^k.
const maxAgents = 4

func (c Config) Validate() error {
	if c.Agents < 1 || c.Agents > maxAgents {
		return fmtInvalid("agents must be in [1, %d], got %d", maxAgents, c.Agents)
	}
	if c.Workers < 0 {
		return fmtInvalid("workers must not be negative, got %d", c.Workers)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return c.options().validate()
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmtInvalid("log level %q", c.LogLevel)
	}
	return l, nil
}

func (c Config) options() options {
	o := defaultOptions()
	for _, opt := range c.Options() {
		opt(&o)
	}
	return o
}

// Options returns the search options described by c.
func (c Config) Options() []Option {
	return []Option{
		WithStart(c.Start),
		WithMinutes(c.Minutes),
		WithAgents(c.Agents),
		WithOpenMinutes(c.OpenMinutes),
		WithWorkers(c.Workers),
		WithParallelCutoff(c.ParallelCutoff),
		WithMaxDepth(c.MaxDepth),
		WithPruning(c.Prune),
	}
}
