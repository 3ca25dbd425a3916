package render

import (
	"errors"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero size", func(c *Config) { c.Size = 0 }},
		{"negative padding", func(c *Config) { c.Padding = -1 }},
		{"padding swallows canvas", func(c *Config) { c.Padding = 256 }},
		{"negative radius", func(c *Config) { c.CornerRadius = -4 }},
		{"negative stroke", func(c *Config) { c.StrokeWidth = -1 }},
		{"degenerate glyph", func(c *Config) { c.GlyphPath = c.GlyphPath[:2] }},
		{"glyph off canvas", func(c *Config) {
			c.GlyphPath = append([]Point(nil), c.GlyphPath...)
			c.GlyphPath[3] = Point{X: 1.2, Y: 0.5}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestDefaultConfigReturnsFreshGlyphPath(t *testing.T) {
	a := DefaultConfig()
	a.GlyphPath[0] = Point{}
	if b := DefaultConfig(); b.GlyphPath[0] != (Point{X: 0.38, Y: 0.28}) {
		t.Errorf("DefaultConfig shares glyph path storage: %v", b.GlyphPath[0])
	}
}
