package ggplot

import (
	"math"

	"github.com/gogpu/gg"
)

// Rect is an axis-aligned pixel rectangle. Min is the top-left corner.
type Rect struct {
	Min, Max gg.Point
}

// R is a convenience function to create a Rect from a corner and a size.
func R(x, y, w, h float64) Rect {
	return Rect{Min: gg.Pt(x, y), Max: gg.Pt(x+w, y+h)}
}

// W returns the width.
func (r Rect) W() float64 { return r.Max.X - r.Min.X }

// H returns the height.
func (r Rect) H() float64 { return r.Max.Y - r.Min.Y }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return !(r.W() > 0) || !(r.H() > 0) }

// Contains reports whether p lies inside r. The max edges are exclusive.
func (r Rect) Contains(p gg.Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Overlaps reports whether r and s share any area or edge.
func (r Rect) Overlaps(s Rect) bool {
	return r.Min.X <= s.Max.X && s.Min.X <= r.Max.X &&
		r.Min.Y <= s.Max.Y && s.Min.Y <= r.Max.Y
}

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{Min: gg.Pt(r.Min.X+d, r.Min.Y+d), Max: gg.Pt(r.Max.X-d, r.Max.Y-d)}
}

// Canon returns r with Min and Max sorted on both axes.
func (r Rect) Canon() Rect {
	return Rect{
		Min: gg.Pt(math.Min(r.Min.X, r.Max.X), math.Min(r.Min.Y, r.Max.Y)),
		Max: gg.Pt(math.Max(r.Min.X, r.Max.X), math.Max(r.Min.Y, r.Max.Y)),
	}
}

// rectFromPoints returns the canonical rectangle spanning a and b.
func rectFromPoints(a, b gg.Point) Rect {
	return Rect{Min: a, Max: b}.Canon()
}
