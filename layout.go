package ggplot

import (
	"math"

	"github.com/gogpu/gg"
)

// Layout is the host's allocation system. Allocate reserves space for one
// chart and reports the rectangle actually granted and whether any of it is
// currently visible.
type Layout interface {
	Allocate(id string, w, h float64) (r Rect, visible bool)
}

// StackLayout places charts top to bottom inside Bounds. A width or height
// of zero or less takes all remaining space in that direction.
//
// Reset it at the start of every frame.
type StackLayout struct {
	Bounds  Rect
	Spacing float64

	y float64
}

// Ensure StackLayout implements Layout.
var _ Layout = (*StackLayout)(nil)

// NewStackLayout returns a layout covering the given rectangle with 8px
// spacing.
func NewStackLayout(x, y, w, h float64) *StackLayout {
	return &StackLayout{Bounds: R(x, y, w, h), Spacing: 8}
}

// Reset moves the cursor back to the top.
func (l *StackLayout) Reset() { l.y = 0 }

// Allocate implements Layout.
func (l *StackLayout) Allocate(_ string, w, h float64) (Rect, bool) {
	top := l.Bounds.Min.Y + l.y
	if w <= 0 {
		w = l.Bounds.W()
	}
	if h <= 0 {
		h = l.Bounds.Max.Y - top
	}
	w = math.Min(w, l.Bounds.W())
	r := Rect{Min: gg.Pt(l.Bounds.Min.X, top), Max: gg.Pt(l.Bounds.Min.X+w, top+h)}
	l.y += h + l.Spacing

	if r.Empty() {
		return r, false
	}
	visible := r.Min.Y < l.Bounds.Max.Y && r.Max.Y > l.Bounds.Min.Y
	return r, visible
}
