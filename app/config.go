package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AnkushinDaniil/fourier/series"
)

type Config struct {
	LogLevel string `yaml:"log_level"`

	Grid struct {
		Points int     `yaml:"points"`
		Min    float64 `yaml:"min"`
		Max    float64 `yaml:"max"`
	} `yaml:"grid"`

	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`

	Chart ChartConfig `yaml:"chart"`

	Output struct {
		Path   string `yaml:"path"`
		Format string `yaml:"format"`
	} `yaml:"output"`
}

type ChartConfig struct {
	Title  string `yaml:"title"`
	Width  string `yaml:"width"`
	Height string `yaml:"height"`
}

func DefaultConfig() *Config {
	var c Config
	c.LogLevel = "info"
	c.Grid.Points = series.DefaultPoints
	c.Grid.Min = series.DefaultMin
	c.Grid.Max = series.DefaultMax
	c.Server.Addr = ":8080"
	c.Chart = ChartConfig{
		Title:  "Fourier Series Visualizer",
		Width:  "100%",
		Height: "600px",
	}
	c.Output.Path = "Fourier.html"
	c.Output.Format = "html"
	return &c
}

// LoadConfig reads filename over the defaults. Keys missing from the file
// keep their default values.
func LoadConfig(filename string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if config.Grid.Points < 2 {
		return nil, fmt.Errorf("grid needs at least 2 points, got %d", config.Grid.Points)
	}
	if config.Grid.Min >= config.Grid.Max {
		return nil, fmt.Errorf("grid min %v must be below max %v", config.Grid.Min, config.Grid.Max)
	}
	return config, nil
}
