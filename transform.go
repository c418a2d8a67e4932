package ggplot

import "github.com/gogpu/gg"

// transform maps data coordinates to pixels for one frame:
// pixel = offset + scale*data on each axis. Scales are signed; flipped axes
// and the downward pixel Y axis produce negative scales.
type transform struct {
	// pix holds the pixel coordinates of (X.Min, Y.Min) in Min and of
	// (X.Max, Y.Max) in Max. It is not canonical.
	pix Rect

	sx, ox float64
	sy, oy float64
}

// newTransform builds the mapping of the x and y ranges onto grid.
func newTransform(grid Rect, x, y *Axis) transform {
	var t transform
	t.pix.Min.X, t.pix.Max.X = grid.Min.X, grid.Max.X
	if x.Flip {
		t.pix.Min.X, t.pix.Max.X = t.pix.Max.X, t.pix.Min.X
	}
	// Pixel Y grows downward, so the data minimum sits at the bottom edge
	// unless the axis is flipped.
	t.pix.Min.Y, t.pix.Max.Y = grid.Max.Y, grid.Min.Y
	if y.Flip {
		t.pix.Min.Y, t.pix.Max.Y = t.pix.Max.Y, t.pix.Min.Y
	}

	t.sx = (t.pix.Max.X - t.pix.Min.X) / (x.Max - x.Min)
	t.ox = t.pix.Min.X - t.sx*x.Min
	t.sy = (t.pix.Max.Y - t.pix.Min.Y) / (y.Max - y.Min)
	t.oy = t.pix.Min.Y - t.sy*y.Min
	return t
}

// toPixel maps a data point to pixels.
func (t *transform) toPixel(p gg.Point) gg.Point {
	return gg.Point{X: t.ox + t.sx*p.X, Y: t.oy + t.sy*p.Y}
}

// toData maps a pixel position back to data space.
func (t *transform) toData(p gg.Point) gg.Point {
	return gg.Point{X: (p.X - t.ox) / t.sx, Y: (p.Y - t.oy) / t.sy}
}

// dataRect maps the data rectangle [x0,x1]x[y0,y1] to a canonical pixel rect.
func (t *transform) dataRect(x0, y0, x1, y1 float64) Rect {
	return rectFromPoints(t.toPixel(gg.Pt(x0, y0)), t.toPixel(gg.Pt(x1, y1)))
}
