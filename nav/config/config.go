package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the walkthrough navigation configuration.
type Config struct {
	Walk     WalkConfig     `yaml:"walk"`
	Mouse    MouseConfig    `yaml:"mouse"`
	Angles   AnglesConfig   `yaml:"angles"`
	Features FeaturesConfig `yaml:"features"`
	Window   WindowConfig   `yaml:"window"`
	Journal  JournalConfig  `yaml:"journal"`
}

// WalkConfig holds translation speed settings.
type WalkConfig struct {
	Speed          float64 `yaml:"speed"`
	SpeedIncrement float64 `yaml:"speed_increment"`
}

// MouseConfig holds look sensitivity settings. The effective rotation per
// pixel of pointer travel is speed/10000 radians.
type MouseConfig struct {
	Speed          float64 `yaml:"speed"`
	SpeedIncrement float64 `yaml:"speed_increment"`
	Active         bool    `yaml:"active"`
}

// AnglesConfig holds keyboard rotation step sizes in degrees.
type AnglesConfig struct {
	AzimuthIncrementDeg   float64 `yaml:"azimuth_increment_deg"`
	ElevationIncrementDeg float64 `yaml:"elevation_increment_deg"`
}

// FeaturesConfig holds optional behavior toggles.
type FeaturesConfig struct {
	MouseFreezeSupported      bool     `yaml:"mouse_freeze_supported"`
	ElevationLockSupported    bool     `yaml:"elevation_lock_supported"`
	ElevationLocked           bool     `yaml:"elevation_locked"`
	VerticalMoveUsesElevation bool     `yaml:"vertical_move_uses_elevation"`
	ToggleCooldown            Duration `yaml:"toggle_cooldown"`
}

// WindowConfig holds standalone viewer window settings.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// JournalConfig holds session journal settings.
type JournalConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Walk: WalkConfig{
			Speed:          100,
			SpeedIncrement: 10,
		},
		Mouse: MouseConfig{
			Speed:          50,
			SpeedIncrement: 5,
			Active:         true,
		},
		Angles: AnglesConfig{
			AzimuthIncrementDeg:   1,
			ElevationIncrementDeg: 1,
		},
		Features: FeaturesConfig{
			MouseFreezeSupported:      true,
			ElevationLockSupported:    true,
			ElevationLocked:           false,
			VerticalMoveUsesElevation: false,
			ToggleCooldown:            Duration(300 * time.Millisecond),
		},
		Window: WindowConfig{
			Title:  "Walkthrough",
			Width:  1280,
			Height: 720,
		},
		Journal: JournalConfig{
			Enabled: false,
			Path:    "./logs/session.jsonl",
		},
	}
}

// Load loads the configuration from the given path.
// If the file does not exist, it creates it with default values.
// If the file exists, it merges defaults with existing values but does NOT
// save back to disk (to preserve user formatting and comments).
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create config directory")
	}

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read config file")
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "failed to parse config file")
		}
		return cfg, nil
	}

	if err := Save(path, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to save config file")
	}

	return cfg, nil
}

// Save writes the configuration to the path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	header := []byte(`# Walkthrough Navigation Configuration
# ------------------------------------
# walk.speed is in world units (millimeters) per key press.
# mouse.speed scales pointer look: speed/10000 radians per pixel.

`)
	data = append(header, data...)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}
