package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/rook-computer/favicon/internal/logging"
)

// IconRenderer paints the favicon onto an offscreen canvas.
type IconRenderer struct {
	Config Config
	Logger logging.Logger
}

func NewIconRenderer(cfg Config) *IconRenderer {
	return &IconRenderer{Config: cfg, Logger: logging.NoopLogger{}}
}

// Render runs the full paint pipeline: gradient, then border, then glyph.
// The returned canvas is owned by the caller.
func (r *IconRenderer) Render() (*image.RGBA, error) {
	logger := logging.OrNoop(r.Logger)
	cfg := r.Config
	if err := cfg.Validate(); err != nil {
		logger.Errorf("render", "config rejected: %v", err)
		return nil, err
	}

	canvas := NewCanvas(cfg)
	logger.Infof("render", "canvas allocated, %dx%d", cfg.Size, cfg.Size)

	PaintGradient(canvas, cfg)
	logger.Infof("render", "gradient painted, top=%v bottom=%v", GradientColor(cfg, 0), GradientColor(cfg, cfg.Size-1))

	PaintBorder(canvas, cfg)
	logger.Infof("render", "border painted, padding=%d radius=%v width=%v", cfg.Padding, cfg.CornerRadius, cfg.StrokeWidth)

	PaintGlyph(canvas, cfg)
	logger.Infof("render", "glyph painted, %d vertices", len(cfg.GlyphPath))
	return canvas, nil
}

// NewCanvas allocates a fully transparent Size x Size canvas.
func NewCanvas(cfg Config) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, cfg.Size, cfg.Size))
}

// GradientColor returns the opaque color of row y.
func GradientColor(cfg Config, y int) color.RGBA {
	ratio := 0.0
	if cfg.Size > 1 {
		ratio = float64(y) / float64(cfg.Size-1)
	}
	return color.RGBA{
		R: lerpChannel(cfg.StartColor.R, cfg.EndColor.R, ratio, cfg.Rounding),
		G: lerpChannel(cfg.StartColor.G, cfg.EndColor.G, ratio, cfg.Rounding),
		B: lerpChannel(cfg.StartColor.B, cfg.EndColor.B, ratio, cfg.Rounding),
		A: 0xFF,
	}
}

func lerpChannel(start, end uint8, ratio float64, rounding Rounding) uint8 {
	v := float64(start)*(1-ratio) + float64(end)*ratio
	if rounding == RoundNearest {
		v = math.Round(v)
	}
	// Float error can push an equal-endpoint channel to 254.999..; keep it in range.
	lo, hi := float64(start), float64(end)
	if lo > hi {
		lo, hi = hi, lo
	}
	return uint8(math.Min(math.Max(v, lo), hi))
}

// PaintGradient overwrites every pixel with the row's gradient color.
func PaintGradient(canvas *image.RGBA, cfg Config) {
	bounds := canvas.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := image.Rect(bounds.Min.X, y, bounds.Max.X, y+1)
		draw.Draw(canvas, row, &image.Uniform{C: GradientColor(cfg, y-bounds.Min.Y)}, image.Point{}, draw.Src)
	}
}
