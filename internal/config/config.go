// Package config loads and validates desktop settings: host-surface
// dimensions, reserved chrome, snap threshold, window size defaults, and
// cascade placement parameters. Settings come from a YAML file with every
// field optional; missing values fall back to the defaults the geometry
// engine documents.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"deskwm/internal/geometry"
)

// Cascade controls new-window placement.
type Cascade struct {
	Margin   int `yaml:"margin"`
	Step     int `yaml:"step"`
	Attempts int `yaml:"attempts"`
}

// Config holds the desktop session settings.
type Config struct {
	ViewportWidth  int `yaml:"viewport_width"`
	ViewportHeight int `yaml:"viewport_height"`

	// ChromeHeight is the taskbar strip reserved at the bottom of the
	// viewport, excluded from placement and clamping.
	ChromeHeight int `yaml:"chrome_height"`

	SnapThreshold int `yaml:"snap_threshold"`

	MinWindowWidth  int `yaml:"min_window_width"`
	MinWindowHeight int `yaml:"min_window_height"`

	DefaultWindowWidth  int `yaml:"default_window_width"`
	DefaultWindowHeight int `yaml:"default_window_height"`

	// TitleBarHeight is the drag-handle band at the top of each window;
	// HandleSize is the resize band along the borders.
	TitleBarHeight int `yaml:"title_bar_height"`
	HandleSize     int `yaml:"handle_size"`

	Cascade Cascade `yaml:"cascade"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		ViewportWidth:       1920,
		ViewportHeight:      1080,
		ChromeHeight:        geometry.DefaultChromeHeight,
		SnapThreshold:       geometry.DefaultSnapThreshold,
		MinWindowWidth:      geometry.DefaultMinWidth,
		MinWindowHeight:     geometry.DefaultMinHeight,
		DefaultWindowWidth:  600,
		DefaultWindowHeight: 400,
		TitleBarHeight:      32,
		HandleSize:          8,
		Cascade: Cascade{
			Margin:   geometry.CascadeMargin,
			Step:     geometry.CascadeStep,
			Attempts: geometry.CascadeAttempts,
		},
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "deskwm", "config.yaml"), nil
}

// Load reads the config from the default path. A missing file is not an
// error; defaults apply.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads and validates a config file. Unset fields merge with
// defaults before validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

// applyDefaults fills zero-valued fields. A YAML file that sets only a few
// keys zeroes the rest during unmarshal, so the merge runs after parsing.
func (c *Config) applyDefaults() {
	d := Default()
	if c.ViewportWidth <= 0 {
		c.ViewportWidth = d.ViewportWidth
	}
	if c.ViewportHeight <= 0 {
		c.ViewportHeight = d.ViewportHeight
	}
	if c.ChromeHeight < 0 {
		c.ChromeHeight = d.ChromeHeight
	}
	if c.SnapThreshold <= 0 {
		c.SnapThreshold = d.SnapThreshold
	}
	if c.MinWindowWidth <= 0 {
		c.MinWindowWidth = d.MinWindowWidth
	}
	if c.MinWindowHeight <= 0 {
		c.MinWindowHeight = d.MinWindowHeight
	}
	if c.DefaultWindowWidth <= 0 {
		c.DefaultWindowWidth = d.DefaultWindowWidth
	}
	if c.DefaultWindowHeight <= 0 {
		c.DefaultWindowHeight = d.DefaultWindowHeight
	}
	if c.TitleBarHeight <= 0 {
		c.TitleBarHeight = d.TitleBarHeight
	}
	if c.HandleSize <= 0 {
		c.HandleSize = d.HandleSize
	}
	if c.Cascade.Margin <= 0 {
		c.Cascade.Margin = d.Cascade.Margin
	}
	if c.Cascade.Step <= 0 {
		c.Cascade.Step = d.Cascade.Step
	}
	if c.Cascade.Attempts <= 0 {
		c.Cascade.Attempts = d.Cascade.Attempts
	}
}

// Validate rejects configurations that leave no usable space.
func (c *Config) Validate() error {
	if c.ChromeHeight >= c.ViewportHeight {
		return fmt.Errorf("chrome_height %d leaves no usable viewport (viewport_height %d)",
			c.ChromeHeight, c.ViewportHeight)
	}
	if c.MinWindowWidth > c.ViewportWidth {
		return fmt.Errorf("min_window_width %d exceeds viewport_width %d",
			c.MinWindowWidth, c.ViewportWidth)
	}
	if c.MinWindowHeight > c.ViewportHeight-c.ChromeHeight {
		return fmt.Errorf("min_window_height %d exceeds usable height %d",
			c.MinWindowHeight, c.ViewportHeight-c.ChromeHeight)
	}
	if c.DefaultWindowWidth < c.MinWindowWidth || c.DefaultWindowHeight < c.MinWindowHeight {
		return fmt.Errorf("default window size %dx%d below minimum %dx%d",
			c.DefaultWindowWidth, c.DefaultWindowHeight, c.MinWindowWidth, c.MinWindowHeight)
	}
	return nil
}

// Viewport returns the host surface described by the config.
func (c *Config) Viewport() geometry.Viewport {
	return geometry.Viewport{
		Width:        c.ViewportWidth,
		Height:       c.ViewportHeight,
		ChromeHeight: c.ChromeHeight,
	}
}

// MinWindowSize returns the configured minimum window size.
func (c *Config) MinWindowSize() geometry.Size {
	return geometry.Size{Width: c.MinWindowWidth, Height: c.MinWindowHeight}
}

// DefaultWindowSize returns the configured default window size.
func (c *Config) DefaultWindowSize() geometry.Size {
	return geometry.Size{Width: c.DefaultWindowWidth, Height: c.DefaultWindowHeight}
}
