package utils

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"width": 64, "height": 64, "pattern": "glider", "frame_rate": 50000000}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.Width != 64 || config.Height != 64 || config.Pattern != model.SeedGlider {
		t.Fatalf("unexpected config %+v", config)
	}
	if config.FrameRate != 50*time.Millisecond {
		t.Fatalf("frame rate %v, expected 50ms", config.FrameRate)
	}
	if config.StagnationThreshold != DefaultConfig().StagnationThreshold {
		t.Fatal("unset field lost its default")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err=%v, expected fs.ErrNotExist", err)
	}
	if config != DefaultConfig() {
		t.Fatal("missing file did not return defaults")
	}
}

func TestLoadConfigBadJSON(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, `{"width": `)); err == nil {
		t.Fatal("malformed JSON accepted")
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -2 }},
		{"zero frame rate", func(c *Config) { c.FrameRate = 0 }},
		{"density above one", func(c *Config) { c.RandomDensity = 1.5 }},
		{"negative threshold", func(c *Config) { c.StagnationThreshold = -1 }},
		{"negative max generations", func(c *Config) { c.MaxGenerations = -1 }},
		{"unknown pattern", func(c *Config) { c.Pattern = "spaceship" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			if err := config.Validate(); err == nil {
				t.Fatal("invalid config accepted")
			}
		})
	}

	config := DefaultConfig()
	config.Width = 0
	if err := config.Validate(); !errors.Is(err, model.ErrInvalidDimensions) {
		t.Fatalf("err=%v, expected ErrInvalidDimensions", err)
	}
}
