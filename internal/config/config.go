// Package config handles configuration loading for autoitx.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// DefaultProgID is the ProgID AutoItX3 registers its COM server under
const DefaultProgID = "AutoItX3.Control"

// Config holds the complete configuration
type Config struct {
	// ProgID is the COM class to create. The 64-bit server registers as
	// AutoItX3_x64.Control.
	ProgID string `toml:"prog_id"`

	// Log configures the rotating log file.
	Log LogConfig `toml:"log"`

	// Options are AutoItSetOption values applied when the backend opens.
	Options Options `toml:"options"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Dir overrides the log directory (default %LOCALAPPDATA%\autoitx).
	Dir string `toml:"dir"`

	// MaxSize is the size in megabytes before rotation.
	MaxSize int `toml:"max_size"`

	// MaxBackups is the number of rotated files to keep.
	MaxBackups int `toml:"max_backups"`

	// MaxAge is the number of days to keep rotated files.
	MaxAge int `toml:"max_age"`

	// Compress gzips rotated files.
	Compress bool `toml:"compress"`
}

// Options holds AutoItSetOption values. Nil fields are left at the engine default.
type Options struct {
	SendKeyDelay        *int `toml:"send_key_delay"`
	SendKeyDownDelay    *int `toml:"send_key_down_delay"`
	SendCapslockMode    *int `toml:"send_capslock_mode"`
	MouseClickDelay     *int `toml:"mouse_click_delay"`
	MouseClickDownDelay *int `toml:"mouse_click_down_delay"`
	MouseClickDragDelay *int `toml:"mouse_click_drag_delay"`
	MouseCoordMode      *int `toml:"mouse_coord_mode"`
	PixelCoordMode      *int `toml:"pixel_coord_mode"`
	CaretCoordMode      *int `toml:"caret_coord_mode"`
	WinTitleMatchMode   *int `toml:"win_title_match_mode"`
	WinWaitDelay        *int `toml:"win_wait_delay"`
	WinDetectHiddenText *int `toml:"win_detect_hidden_text"`
}

// Option is one AutoItSetOption name/value pair
type Option struct {
	Name  string
	Value int
}

// Entries returns the set options under their AutoIt names, in a fixed order
func (o Options) Entries() []Option {
	fields := []struct {
		name  string
		value *int
	}{
		{"SendKeyDelay", o.SendKeyDelay},
		{"SendKeyDownDelay", o.SendKeyDownDelay},
		{"SendCapslockMode", o.SendCapslockMode},
		{"MouseClickDelay", o.MouseClickDelay},
		{"MouseClickDownDelay", o.MouseClickDownDelay},
		{"MouseClickDragDelay", o.MouseClickDragDelay},
		{"MouseCoordMode", o.MouseCoordMode},
		{"PixelCoordMode", o.PixelCoordMode},
		{"CaretCoordMode", o.CaretCoordMode},
		{"WinTitleMatchMode", o.WinTitleMatchMode},
		{"WinWaitDelay", o.WinWaitDelay},
		{"WinDetectHiddenText", o.WinDetectHiddenText},
	}

	var entries []Option
	for _, f := range fields {
		if f.value != nil {
			entries = append(entries, Option{Name: f.name, Value: *f.value})
		}
	}

	return entries
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		ProgID: DefaultProgID,
		Log: LogConfig{
			MaxSize:    2,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		},
	}
}

// Path returns the default config file location
func Path() string {
	dir := os.Getenv("APPDATA")
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = home
		}
	}

	return filepath.Join(dir, "autoitx", "config.toml")
}

// Load reads configuration from path, falling back to Path() when empty.
// A missing file yields the defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = Path()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.ApplyEnvOverrides()
			return cfg, nil
		}

		return nil, fmt.Errorf("read config file: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("decode TOML: %w", err)
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return cfg, nil
}

// ApplyEnvOverrides applies AUTOITX_* environment variables
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("AUTOITX_PROGID"); v != "" {
		c.ProgID = v
	}

	if v := os.Getenv("AUTOITX_LOG_DIR"); v != "" {
		c.Log.Dir = v
	}

	if v := os.Getenv("AUTOITX_SEND_KEY_DELAY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Options.SendKeyDelay = &n
		}
	}
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if c.ProgID == "" {
		return errors.New("prog_id must not be empty")
	}

	if c.Log.MaxSize < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAge < 0 {
		return errors.New("log limits must not be negative")
	}

	checks := []struct {
		name     string
		value    *int
		min, max int
	}{
		{"mouse_coord_mode", c.Options.MouseCoordMode, 0, 2},
		{"pixel_coord_mode", c.Options.PixelCoordMode, 0, 2},
		{"caret_coord_mode", c.Options.CaretCoordMode, 0, 2},
		{"win_title_match_mode", c.Options.WinTitleMatchMode, -4, 4},
		{"send_capslock_mode", c.Options.SendCapslockMode, 0, 1},
		{"win_detect_hidden_text", c.Options.WinDetectHiddenText, 0, 1},
	}

	for _, chk := range checks {
		if chk.value != nil && (*chk.value < chk.min || *chk.value > chk.max) {
			return fmt.Errorf("options.%s must be between %d and %d, got %d", chk.name, chk.min, chk.max, *chk.value)
		}
	}

	return nil
}
