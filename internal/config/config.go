// Package config loads sortlab settings from YAML or TOML files.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/san-kum/sortlab/internal/sequence"
	"github.com/san-kum/sortlab/internal/viz"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMode        = "graph"
	DefaultSpeed       = 1.0
	DefaultBaseDelayMs = 100
	DefaultGraphHeight = 20
	DefaultTheme       = "cyberpunk"
	DefaultMin         = 1
	DefaultMax         = 50
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Mode        string         `yaml:"mode" toml:"mode"`
	Speed       float64        `yaml:"speed" toml:"speed"`
	BaseDelayMs int            `yaml:"base_delay_ms" toml:"base_delay_ms"`
	GraphHeight int            `yaml:"graph_height" toml:"graph_height"`
	Theme       string         `yaml:"theme" toml:"theme"`
	Seed        int64          `yaml:"seed" toml:"seed"`
	Sequence    []int          `yaml:"sequence" toml:"sequence"`
	Generate    GenerateConfig `yaml:"generate" toml:"generate"`
	Bench       BenchConfig    `yaml:"bench" toml:"bench"`
}

// GenerateConfig holds the defaults of the .generate command. A zero Count
// means one element per value of the range.
type GenerateConfig struct {
	Count int `yaml:"count" toml:"count"`
	Min   int `yaml:"min" toml:"min"`
	Max   int `yaml:"max" toml:"max"`
}

type BenchConfig struct {
	Sizes []int `yaml:"sizes" toml:"sizes"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode:        DefaultMode,
		Speed:       DefaultSpeed,
		BaseDelayMs: DefaultBaseDelayMs,
		GraphHeight: DefaultGraphHeight,
		Theme:       DefaultTheme,
		Sequence:    []int{5, 2, 4, 6, 3, 10, 7, 1},
		Generate: GenerateConfig{
			Min: DefaultMin,
			Max: DefaultMax,
		},
		Bench: BenchConfig{
			Sizes: []int{100, 500, 1000, 5000},
		},
	}
}

// Load reads path over the defaults. Files ending in .toml are decoded as
// TOML, everything else as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if isTOML(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if _, err := viz.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Speed <= 0 || math.IsNaN(c.Speed) || math.IsInf(c.Speed, 0) {
		return fmt.Errorf("%w: speed %v must be positive and finite", ErrInvalid, c.Speed)
	}
	if c.BaseDelayMs <= 0 {
		return fmt.Errorf("%w: base_delay_ms %d must be positive", ErrInvalid, c.BaseDelayMs)
	}
	if c.GraphHeight < 1 {
		return fmt.Errorf("%w: graph_height %d must be at least 1", ErrInvalid, c.GraphHeight)
	}
	r := sequence.Range{Min: c.Generate.Min, Max: c.Generate.Max}
	if err := r.Validate(); err != nil {
		return fmt.Errorf("%w: generate: %w", ErrInvalid, err)
	}
	if c.Generate.Count < 0 {
		return fmt.Errorf("%w: generate count %d", ErrInvalid, c.Generate.Count)
	}
	for _, n := range c.Bench.Sizes {
		if n < 1 {
			return fmt.Errorf("%w: bench size %d", ErrInvalid, n)
		}
	}
	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
