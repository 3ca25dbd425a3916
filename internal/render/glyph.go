package render

import (
	"image"

	"golang.org/x/image/vector"
)

// GlyphPolygon scales the fractional glyph path to canvas pixels, preserving vertex order.
func GlyphPolygon(cfg Config) [][2]float32 {
	out := make([][2]float32, len(cfg.GlyphPath))
	for i, p := range cfg.GlyphPath {
		out[i] = [2]float32{float32(p.X * float64(cfg.Size)), float32(p.Y * float64(cfg.Size))}
	}
	return out
}

// PaintGlyph fills the glyph polygon with GlyphColor over the canvas.
func PaintGlyph(canvas *image.RGBA, cfg Config) {
	poly := GlyphPolygon(cfg)
	if len(poly) < 3 {
		return
	}
	bounds := canvas.Bounds()
	var z vector.Rasterizer
	z.Reset(bounds.Dx(), bounds.Dy())
	z.MoveTo(poly[0][0], poly[0][1])
	for _, v := range poly[1:] {
		z.LineTo(v[0], v[1])
	}
	z.ClosePath()
	z.Draw(canvas, bounds, image.NewUniform(cfg.GlyphColor), image.Point{})
}
