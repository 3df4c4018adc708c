// Package config loads seereach.yaml, the engine's optional
// configuration file: which SMT solver binary to invoke, its timeout,
// and the default CLI output format.
package config

import (
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

// Config holds the engine's tunable defaults.
type Config struct {
	Solver struct {
		Binary  string        `yaml:"binary"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"solver"`
	Output struct {
		Format string `yaml:"format"`
	} `yaml:"output"`
}

// Default returns the built-in configuration used when no file is
// found: z3 as the solver binary, a 2s timeout, and text output.
func Default() *Config {
	c := &Config{}
	c.Solver.Binary = "z3"
	c.Solver.Timeout = 2 * time.Second
	c.Output.Format = "text"
	return c
}

// Load reads and parses a seereach.yaml config file at path. Missing
// fields fall back to Default()'s values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadOrDefault reads path if it exists, otherwise returns Default().
func LoadOrDefault(path string) *Config {
	c, err := Load(path)
	if err != nil {
		return Default()
	}
	return c
}
