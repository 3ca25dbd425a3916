package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
// When the padding exceeds half a side the result collapses to the center line of that axis.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect.Canon()
	}
	b := FromRect(rect).Inset(float64(paddingPx))
	return image.Rect(int(b.X0), int(b.Y0), int(b.X1), int(b.Y1))
}

// Bounds is an axis-aligned rectangle in continuous pixel coordinates,
// where pixel (x, y) covers [x, x+1) x [y, y+1).
type Bounds struct {
	X0, Y0, X1, Y1 float64
}

func FromRect(rect image.Rectangle) Bounds {
	rect = rect.Canon()
	return Bounds{X0: float64(rect.Min.X), Y0: float64(rect.Min.Y), X1: float64(rect.Max.X), Y1: float64(rect.Max.Y)}
}

func (b Bounds) Width() float64  { return b.X1 - b.X0 }
func (b Bounds) Height() float64 { return b.Y1 - b.Y0 }

// Inset shrinks b by d on all sides, collapsing per axis instead of inverting.
func (b Bounds) Inset(d float64) Bounds {
	out := Bounds{X0: b.X0 + d, Y0: b.Y0 + d, X1: b.X1 - d, Y1: b.Y1 - d}
	if out.X0 > out.X1 {
		mid := (b.X0 + b.X1) / 2
		out.X0, out.X1 = mid, mid
	}
	if out.Y0 > out.Y1 {
		mid := (b.Y0 + b.Y1) / 2
		out.Y0, out.Y1 = mid, mid
	}
	return out
}
