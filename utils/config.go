package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width" yaml:"width"`
	Height              int           `json:"height" yaml:"height"`
	FrameRate           time.Duration `json:"frame_rate" yaml:"frame_rate"`
	MaxGenerations      int           `json:"max_generations" yaml:"max_generations"`
	Pattern             string        `json:"pattern" yaml:"pattern"` // empty seeds randomly
	RandomDensity       float64       `json:"random_density" yaml:"random_density"`
	Seed                int64         `json:"seed" yaml:"seed"`
	AutoRestart         bool          `json:"auto_restart" yaml:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold" yaml:"stagnation_threshold"`
	UseMemoryPool       bool          `json:"use_memory_pool" yaml:"use_memory_pool"`
	Color               bool          `json:"color" yaml:"color"`
	StatsFile           string        `json:"stats_file" yaml:"stats_file"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		FrameRate:           150 * time.Millisecond,
		MaxGenerations:      1000,
		RandomDensity:       0.15,
		AutoRestart:         false,
		StagnationThreshold: 5,
		UseMemoryPool:       true,
	}
}

// LoadConfig loads configuration from a YAML or JSON file layered over the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if strings.EqualFold(filepath.Ext(filename), ".json") {
		err = json.Unmarshal(data, &config)
	} else {
		err = yaml.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// WriteYAML saves the configuration to filename
func (c Config) WriteYAML(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "[WriteYAML] failed to marshal config")
	}
	if err = os.WriteFile(filename, data, 0o644); err != nil {
		return errors.Wrapf(err, "[WriteYAML] failed to write file: %+v", filename)
	}
	return nil
}

// Validate checks that the configuration describes a runnable game
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "grid must be positive, got %dx%d", c.Width, c.Height)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "random_density must be within [0,1], got %v", c.RandomDensity)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "frame_rate must not be negative, got %v", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_generations must not be negative, got %d", c.MaxGenerations)
	}
	return nil
}
