// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvmat/gda"
	"github.com/katalvlaran/lvmat/internal/logging"
	"github.com/katalvlaran/lvmat/stats"
	"gopkg.in/yaml.v3"
)

// Config is the optional YAML file read via --config. Flags given on the
// command line win over file values.
type Config struct {
	LogLevel string `yaml:"log_level"`
	LogJSON  bool   `yaml:"log_json"`

	CSV struct {
		Comma  string `yaml:"comma"`
		Header bool   `yaml:"header"`
	} `yaml:"csv"`

	Quantile struct {
		Method string `yaml:"method"`
	} `yaml:"quantile"`

	Analysis struct {
		Tolerance float64 `yaml:"tolerance"`
	} `yaml:"analysis"`

	Plot struct {
		Width  float64 `yaml:"width_cm"`
		Height float64 `yaml:"height_cm"`
	} `yaml:"plot"`
}

func defaultConfig() Config {
	var c Config
	c.LogLevel = "info"
	c.CSV.Comma = ","
	c.Quantile.Method = stats.Empirical.String()
	c.Analysis.Tolerance = gda.DefaultTolerance
	c.Plot.Width, c.Plot.Height = 12, 12

	return c
}

// loadConfig returns the defaults when path is empty, otherwise the defaults
// overlaid with the file contents.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if len([]rune(c.CSV.Comma)) != 1 {
		return fmt.Errorf("config: csv.comma must be a single character, got %q", c.CSV.Comma)
	}
	if _, err := stats.ParseQuantileMethod(c.Quantile.Method); err != nil {
		return fmt.Errorf("config: quantile.method: %w", err)
	}
	if c.Analysis.Tolerance <= 0 {
		return fmt.Errorf("config: analysis.tolerance must be positive")
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("config: plot size must be positive")
	}

	return nil
}

func (c Config) comma() rune { return []rune(c.CSV.Comma)[0] }
