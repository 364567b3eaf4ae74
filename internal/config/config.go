package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/linsim/internal/dynamo"
	"github.com/san-kum/linsim/internal/linalg"
)

const (
	DefaultCycles    = 20
	DefaultPlaces    = 3
	DefaultTolerance = 1e-3
	DefaultWindow    = 3
)

type Config struct {
	System      string            `yaml:"system"`
	Operator    [][]float64       `yaml:"operator"`
	Initial     []float64         `yaml:"initial"`
	Labels      []string          `yaml:"labels,omitempty"`
	Cycles      int               `yaml:"cycles"`
	Stochastic  bool              `yaml:"stochastic"`
	Display     DisplayConfig     `yaml:"display"`
	Convergence ConvergenceConfig `yaml:"convergence"`
}

type DisplayConfig struct {
	Round  bool `yaml:"round"`
	Places int  `yaml:"places"`
}

type ConvergenceConfig struct {
	// Tolerance of 0 disables equilibrium detection.
	Tolerance float64 `yaml:"tolerance"`
	Window    int     `yaml:"window"`
}

func DefaultConfig() *Config {
	return &Config{
		System: "custom",
		Cycles: DefaultCycles,
		Display: DisplayConfig{
			Round:  true,
			Places: DefaultPlaces,
		},
		Convergence: ConvergenceConfig{
			Window: DefaultWindow,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Matrix() linalg.Matrix {
	m := make(linalg.Matrix, len(c.Operator))
	for i, row := range c.Operator {
		m[i] = linalg.Vector(row).Clone()
	}
	return m
}

func (c *Config) InitState() linalg.Vector {
	return linalg.Vector(c.Initial).Clone()
}

func (c *Config) Options() dynamo.Options {
	opts := dynamo.DefaultOptions()
	opts.Round = c.Display.Round
	opts.Places = c.Display.Places
	opts.ValidateStochastic = c.Stochastic
	opts.ConvergenceTolerance = c.Convergence.Tolerance
	opts.ConvergenceWindow = c.Convergence.Window
	return opts
}

// Label returns the configured name of state entry i, or "x<i>".
func (c *Config) Label(i int) string {
	if i < len(c.Labels) && c.Labels[i] != "" {
		return c.Labels[i]
	}
	return "x" + strconv.Itoa(i)
}

func (c *Config) Clone() *Config {
	out := *c
	out.Operator = c.Matrix()
	out.Initial = c.InitState()
	out.Labels = append([]string(nil), c.Labels...)
	return &out
}
