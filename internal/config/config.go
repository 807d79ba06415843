// Package config holds the demo's settings.
//
// Settings come from Default, optionally overlaid by a TOML file with Load,
// and finally by command-line flags in cmd/hellocanvas.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/hellocanvas/internal/canvas"
	"github.com/gogpu/hellocanvas/internal/fonts"
)

// Default values.
const (
	DefaultTitle  = "Hello gogpu + gg"
	DefaultWidth  = 400
	DefaultHeight = 400
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full set of demo settings.
type Config struct {
	// Title is the window title.
	Title string `toml:"title"`

	// Width and Height are the initial logical window size.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Scale, when positive, overrides the display's ratio of physical to
	// logical pixels. Zero follows the display; snapshots then render at 1.
	Scale float64 `toml:"scale"`

	// Message is the string drawn by both text layers.
	Message string `toml:"message"`

	// Font is the font family used for the message.
	Font string `toml:"font"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log-level"`

	// Snapshot, when set, renders one frame to this PNG path and exits
	// without opening a window.
	Snapshot string `toml:"snapshot"`

	// Quiet suppresses the per-frame timing line.
	Quiet bool `toml:"quiet"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Title:    DefaultTitle,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Font:     fonts.SansSerif,
		Message:  canvas.Message,
		LogLevel: "info",
	}
}

// Load reads a TOML file over the defaults. Keys absent from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height))
	}
	if c.Scale < 0 {
		errs = append(errs, fmt.Errorf("%w: scale %v", ErrInvalid, c.Scale))
	}
	if c.Message == "" {
		errs = append(errs, fmt.Errorf("%w: empty message", ErrInvalid))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if !knownFamily(c.Font) {
		errs = append(errs, fmt.Errorf("%w: font %q (want one of %s)",
			ErrInvalid, c.Font, strings.Join(fonts.Families(), ", ")))
	}
	return errors.Join(errs...)
}

// SlogLevel returns LogLevel as a slog.Level, or slog.LevelInfo if it does
// not parse.
func (c Config) SlogLevel() slog.Level {
	l, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// ScaleFactor returns Scale, treating zero as 1.
func (c Config) ScaleFactor() float64 {
	if c.Scale == 0 {
		return 1
	}
	return c.Scale
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, s)
	}
	return l, nil
}

func knownFamily(name string) bool {
	return name == "" || slices.Contains(fonts.Families(), name)
}
