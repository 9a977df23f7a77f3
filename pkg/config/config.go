// Package config provides configuration loading and management for gridwalk.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"volumegrid/pkg/iterators"
	"volumegrid/pkg/reference"
)

// AxisConfig describes one regularly sampled axis
type AxisConfig struct {
	Name   string  `yaml:"name"`
	Length int     `yaml:"length"`
	Start  float64 `yaml:"start"`
	Step   float64 `yaml:"step"`
}

// Config represents the application configuration loaded from YAML
type Config struct {
	// Grid describes the sampled volume, slowest axis first
	Grid struct {
		Name string       `yaml:"name"`
		Axes []AxisConfig `yaml:"axes"`
	} `yaml:"grid"`

	// Traversal selects how the grid is walked
	Traversal struct {
		// Type is one of slice, all, parcel or slice/parcel
		Type string `yaml:"type"`

		Axis      int   `yaml:"axis"`
		NSlice    int   `yaml:"nslice"`
		NSliceDim int   `yaml:"nslicedim"`
		Start     []int `yaml:"start,omitempty"`
		Step      []int `yaml:"step,omitempty"`

		// Labels restricts parcel traversals to these labels; empty means
		// every label present.
		Labels []int32 `yaml:"labels,omitempty"`
	} `yaml:"traversal"`

	// Output parameters
	Output struct {
		// Verbose logs every record of the traversal
		Verbose bool `yaml:"verbose"`

		// SliceDir, when set, receives one JPEG per slab
		SliceDir string `yaml:"sliceDir,omitempty"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values: a 13 x 128 x
// 128 volume walked one slice at a time.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Grid.Name = "world"
	cfg.Grid.Axes = []AxisConfig{
		{Name: "zspace", Length: 13, Start: 0, Step: 1},
		{Name: "yspace", Length: 128, Start: 0, Step: 1},
		{Name: "xspace", Length: 128, Start: 0, Step: 1},
	}

	cfg.Traversal.Type = string(iterators.KindSlice)
	cfg.Traversal.NSlice = 1

	cfg.Output.Verbose = false

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}

// Validate checks the traversal type and that the grid can be built
func (c *Config) Validate() error {
	switch iterators.Kind(c.Traversal.Type) {
	case iterators.KindSlice, iterators.KindAll, iterators.KindParcel, iterators.KindSliceParcel:
	default:
		return fmt.Errorf("unknown traversal type %q", c.Traversal.Type)
	}

	if len(c.Grid.Axes) == 0 {
		return fmt.Errorf("grid has no axes")
	}
	for _, a := range c.Grid.Axes {
		if a.Length <= 0 {
			return fmt.Errorf("grid axis %q must have a positive length, got %d", a.Name, a.Length)
		}
	}

	if _, err := c.Coordinates(); err != nil {
		return err
	}
	return nil
}

// Coordinates builds the world coordinate system described by the grid section
func (c *Config) Coordinates() (*reference.DiagonalCoordinates, error) {
	axes := make([]reference.Axis, len(c.Grid.Axes))
	for i, a := range c.Grid.Axes {
		axes[i] = reference.NewRegularAxis(a.Name, a.Start, a.Step, a.Length)
	}
	return reference.NewDiagonalCoordinates(c.Grid.Name, axes)
}

// Shape returns the grid axis lengths
func (c *Config) Shape() []int {
	shape := make([]int, len(c.Grid.Axes))
	for i, a := range c.Grid.Axes {
		shape[i] = a.Length
	}
	return shape
}

// SlicerOptions maps the traversal section onto iterator options
func (c *Config) SlicerOptions() iterators.SlicerOptions {
	return iterators.SlicerOptions{
		Axis:      c.Traversal.Axis,
		NSlice:    c.Traversal.NSlice,
		NSliceDim: c.Traversal.NSliceDim,
		Start:     c.Traversal.Start,
		Step:      c.Traversal.Step,
	}
}
