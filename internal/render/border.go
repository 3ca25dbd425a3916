package render

import (
	"image"
	"image/color"
	"math"

	"github.com/golang/freetype/raster"
	"github.com/rook-computer/favicon/internal/render/layout"
	"golang.org/x/image/math/fixed"
)

// BorderBounds returns the rectangle the border outline is fitted into.
func BorderBounds(cfg Config) image.Rectangle {
	return layout.Inset(image.Rect(0, 0, cfg.Size, cfg.Size), cfg.Padding)
}

// PaintBorder strokes a translucent rounded rectangle just inside BorderBounds,
// compositing it over whatever is already on the canvas.
func PaintBorder(canvas *image.RGBA, cfg Config) {
	if cfg.StrokeWidth <= 0 || cfg.StrokeAlpha == 0 {
		return
	}
	// The stroke straddles its centerline, so pull the centerline in by half
	// the width to keep the outer edge on the border bounds.
	half := cfg.StrokeWidth / 2
	center := layout.FromRect(BorderBounds(cfg)).Inset(half)
	path := roundedRectPath(center, cfg.CornerRadius-half)

	size := canvas.Bounds().Size()
	rasterizer := raster.NewRasterizer(size.X, size.Y)
	rasterizer.UseNonZeroWinding = true
	rasterizer.AddStroke(path, toFixed(cfg.StrokeWidth), raster.ButtCapper, raster.RoundJoiner)

	painter := raster.NewRGBAPainter(canvas)
	painter.SetColor(color.NRGBA{R: cfg.StrokeColor.R, G: cfg.StrokeColor.G, B: cfg.StrokeColor.B, A: cfg.StrokeAlpha})
	rasterizer.Rasterize(painter)
}

// roundedRectPath traces a closed rounded rectangle clockwise, starting and
// ending at the middle of the top edge so the stroke ends meet on a straight run.
// Each quarter corner is two quadratic segments; the freetype stroker does not
// accept cubics.
func roundedRectPath(b layout.Bounds, radius float64) raster.Path {
	x0, y0, x1, y1 := b.X0, b.Y0, b.X1, b.Y1
	radius = math.Max(0, math.Min(radius, math.Min(b.Width(), b.Height())/2))
	var path raster.Path
	midX := (x0 + x1) / 2
	path.Start(fp(midX, y0))

	corners := []struct {
		edgeX, edgeY float64 // where the straight edge ends
		cx, cy       float64 // corner arc center
		from         float64 // arc start angle, radians
	}{
		{x1 - radius, y0, x1 - radius, y0 + radius, -math.Pi / 2},
		{x1, y1 - radius, x1 - radius, y1 - radius, 0},
		{x0 + radius, y1, x0 + radius, y1 - radius, math.Pi / 2},
		{x0, y0 + radius, x0 + radius, y0 + radius, math.Pi},
	}
	for _, c := range corners {
		// Skip degenerate edges when the radius eats the whole side.
		if end := fp(c.edgeX, c.edgeY); end != lastPoint(path) {
			path.Add1(end)
		}
		if radius > 0 {
			addArc(&path, c.cx, c.cy, radius, c.from, c.from+math.Pi/2)
		}
	}
	if start := fp(midX, y0); start != lastPoint(path) {
		path.Add1(start)
	}
	return path
}

// lastPoint returns the end point of the final segment in path.
func lastPoint(path raster.Path) fixed.Point26_6 {
	n := len(path)
	// Every segment ends with x, y and a trailing segment tag.
	return fixed.Point26_6{X: path[n-3], Y: path[n-2]}
}

// addArc appends a circular arc as two quadratic Béziers.
func addArc(path *raster.Path, cx, cy, radius, from, to float64) {
	const pieces = 2
	step := (to - from) / pieces
	ctrlDist := radius / math.Cos(step/2)
	for i := 0; i < pieces; i++ {
		a0 := from + float64(i)*step
		mid := a0 + step/2
		a1 := a0 + step
		path.Add2(
			fp(cx+ctrlDist*math.Cos(mid), cy+ctrlDist*math.Sin(mid)),
			fp(cx+radius*math.Cos(a1), cy+radius*math.Sin(a1)),
		)
	}
}

func toFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(math.Round(v * 64)) }

func fp(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(x), Y: toFixed(y)}
}
