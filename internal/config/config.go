// Package config loads application settings from defaults, an optional YAML
// file, UICOLORS_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Window  WindowConfig  `mapstructure:"window"`
	Slider  SliderConfig  `mapstructure:"slider"`
	Palette PaletteConfig `mapstructure:"palette"`
	Status  StatusConfig  `mapstructure:"status"`
	Library LibraryConfig `mapstructure:"library"`
	Seed    int64         `mapstructure:"seed"` // 0 picks a time-based seed
}

// WindowConfig is the initial window size in screen coordinates.
type WindowConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// SliderConfig is the slider geometry in layout units.
type SliderConfig struct {
	Width       float64 `mapstructure:"width"`
	Height      float64 `mapstructure:"height"`
	Padding     float64 `mapstructure:"padding"`
	ThumbRadius float64 `mapstructure:"thumb_radius"`
	Gap         float64 `mapstructure:"gap"`
}

// PaletteConfig configures the tonal ramp.
type PaletteConfig struct {
	HueShift     float64 `mapstructure:"hue_shift"`
	SwatchHeight float64 `mapstructure:"swatch_height"`
}

// StatusConfig configures the transient status message.
type StatusConfig struct {
	Fade time.Duration `mapstructure:"fade"`
}

// LibraryConfig locates the color library file. An empty path selects the
// built-in library.
type LibraryConfig struct {
	Path  string `mapstructure:"path"`
	Watch bool   `mapstructure:"watch"`
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Slider.Width <= 0 || c.Slider.Height <= 0 {
		errs = append(errs, fmt.Errorf("slider size must be positive, got %gx%g", c.Slider.Width, c.Slider.Height))
	}
	if c.Slider.Padding < 0 || c.Slider.Padding >= c.Slider.Width/2 {
		errs = append(errs, fmt.Errorf("slider padding %g must be in [0, %g)", c.Slider.Padding, c.Slider.Width/2))
	}
	if c.Slider.ThumbRadius <= 0 {
		errs = append(errs, fmt.Errorf("slider thumb radius must be positive, got %g", c.Slider.ThumbRadius))
	}
	if c.Slider.Gap < 0 {
		errs = append(errs, fmt.Errorf("slider gap must not be negative, got %g", c.Slider.Gap))
	}
	if c.Palette.SwatchHeight <= 0 {
		errs = append(errs, fmt.Errorf("swatch height must be positive, got %g", c.Palette.SwatchHeight))
	}
	if c.Status.Fade < 0 {
		errs = append(errs, fmt.Errorf("status fade must not be negative, got %s", c.Status.Fade))
	}
	if c.Library.Watch && c.Library.Path == "" {
		errs = append(errs, errors.New("library watch requires a library path"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
