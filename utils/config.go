package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	Seed                int64         `json:"seed"`
	Pattern             string        `json:"pattern"`
	RandomDensity       float64       `json:"random_density"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	MaxGenerations      int           `json:"max_generations"`
	Paused              bool          `json:"paused"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		FrameRate:           100 * time.Millisecond,
		Pattern:             model.SeedRandom,
		RandomDensity:       model.DefaultDensity,
		AutoRestart:         true,
		StagnationThreshold: 5,
	}
}

// LoadConfig loads configuration from JSON file, starting from the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate reports the first setting that cannot drive a game
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(model.ErrInvalidDimensions, "[Validate] %dx%d", c.Width, c.Height)
	case c.FrameRate <= 0:
		return errors.Errorf("[Validate] frame_rate must be positive, got %v", c.FrameRate)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("[Validate] random_density must be within [0, 1], got %v", c.RandomDensity)
	case c.StagnationThreshold < 0:
		return errors.Errorf("[Validate] stagnation_threshold must not be negative, got %d", c.StagnationThreshold)
	case c.MaxGenerations < 0:
		return errors.Errorf("[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	}
	if _, err := model.NamedSeed(c.Pattern, c.Width, c.Height, nil, c.RandomDensity); err != nil {
		return errors.Wrap(err, "[Validate] bad pattern")
	}
	return nil
}
