package render

import (
	"errors"
	"fmt"
	"image/color"
)

var ErrInvalidConfig = errors.New("invalid render config")

// Rounding selects how interpolated gradient channels become bytes.
type Rounding int

const (
	// RoundTruncate drops the fractional part, matching previously generated assets byte for byte.
	RoundTruncate Rounding = iota
	RoundNearest
)

// Point is a glyph vertex expressed as a fraction of the canvas size.
type Point struct {
	X, Y float64
}

// Config holds every parameter of the icon. Values are copied into each paint
// step; nothing mutates a Config after construction.
type Config struct {
	Size       int
	StartColor color.RGBA // top row
	EndColor   color.RGBA // bottom row
	Rounding   Rounding

	Padding      int
	CornerRadius float64
	StrokeWidth  float64
	StrokeColor  color.RGBA // alpha is ignored; StrokeAlpha applies
	StrokeAlpha  uint8

	GlyphColor color.RGBA
	GlyphPath  []Point
}

// DefaultConfig returns the favicon parameters: orange gradient, translucent
// rounded border and a white "F".
func DefaultConfig() Config {
	return Config{
		Size:         512,
		StartColor:   color.RGBA{R: 255, G: 122, B: 24, A: 255},
		EndColor:     color.RGBA{R: 255, G: 179, B: 71, A: 255},
		Rounding:     RoundTruncate,
		Padding:      48,
		CornerRadius: 100,
		StrokeWidth:  6,
		StrokeColor:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		StrokeAlpha:  90,
		GlyphColor:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		GlyphPath: []Point{
			{0.38, 0.28},
			{0.60, 0.28},
			{0.60, 0.34},
			{0.46, 0.34},
			{0.46, 0.44},
			{0.58, 0.44},
			{0.58, 0.50},
			{0.46, 0.50},
			{0.46, 0.72},
			{0.38, 0.72},
		},
	}
}

// Validate reports the first parameter that would make rendering meaningless.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: size must be positive (got %d)", ErrInvalidConfig, c.Size)
	}
	if c.Padding < 0 || 2*c.Padding >= c.Size {
		return fmt.Errorf("%w: padding %d does not fit a %dpx canvas", ErrInvalidConfig, c.Padding, c.Size)
	}
	if c.CornerRadius < 0 {
		return fmt.Errorf("%w: corner radius must not be negative (got %v)", ErrInvalidConfig, c.CornerRadius)
	}
	if c.StrokeWidth < 0 {
		return fmt.Errorf("%w: stroke width must not be negative (got %v)", ErrInvalidConfig, c.StrokeWidth)
	}
	if len(c.GlyphPath) < 3 {
		return fmt.Errorf("%w: glyph path needs at least 3 points (got %d)", ErrInvalidConfig, len(c.GlyphPath))
	}
	for i, p := range c.GlyphPath {
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
			return fmt.Errorf("%w: glyph point %d (%v,%v) outside [0,1]", ErrInvalidConfig, i, p.X, p.Y)
		}
	}
	return nil
}
