package config

import (
	"github.com/alexisbeaulieu97/gradedit/internal/binding"
	"github.com/alexisbeaulieu97/gradedit/internal/colorspace"
	"github.com/alexisbeaulieu97/gradedit/internal/raster"
)

// Config is the editor configuration document.
type Config struct {
	// ColorSpace is read leniently: unknown values select rgb.
	ColorSpace string   `yaml:"colorSpace,omitempty"`
	Expanded   *bool    `yaml:"expanded,omitempty"`
	Min        *float64 `yaml:"min,omitempty"`
	Max        *float64 `yaml:"max,omitempty"`
	Variant    string   `yaml:"variant,omitempty" validate:"omitempty,oneof=list object"`
	Canvas     Canvas   `yaml:"canvas,omitempty"`
	Log        Log      `yaml:"log,omitempty"`
}

// Canvas sizes the preview surface.
type Canvas struct {
	Width  int `yaml:"width,omitempty" validate:"omitempty,min=2,max=4096"`
	Height int `yaml:"height,omitempty" validate:"omitempty,min=1,max=1024"`
}

// Log configures diagnostics output.
type Log struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,log_level"`
	Human bool   `yaml:"human,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{}
}

// Space returns the configured color representation.
func (c *Config) Space() colorspace.Space {
	return colorspace.ParseSpace(c.ColorSpace)
}

// IsExpanded reports the initial popup state; it defaults to open.
func (c *Config) IsExpanded() bool {
	if c.Expanded == nil {
		return true
	}
	return *c.Expanded
}

// BoundVariant returns the shape of the bound value.
func (c *Config) BoundVariant() binding.Variant {
	v, err := binding.ParseVariant(c.Variant)
	if err != nil {
		return binding.Object
	}
	return v
}

// CanvasSize returns the preview size with defaults applied.
func (c *Config) CanvasSize() (int, int) {
	w, h := c.Canvas.Width, c.Canvas.Height
	if w == 0 {
		w = raster.DefaultWidth
	}
	if h == 0 {
		h = raster.DefaultHeight
	}
	return w, h
}

// LogLevel returns the configured level, info by default.
func (c *Config) LogLevel() string {
	if c.Log.Level == "" {
		return "info"
	}
	return c.Log.Level
}

// Params converts the configuration into binding parameters.
func (c *Config) Params() binding.Params {
	return binding.Params{
		Space:    c.Space(),
		Expanded: c.IsExpanded(),
		Variant:  c.BoundVariant(),
		Min:      c.Min,
		Max:      c.Max,
	}
}
