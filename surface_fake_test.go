package ggplot

import (
	"github.com/gogpu/gg"
)

// op is one recorded Surface call.
type op struct {
	kind  string
	rect  Rect
	a, b  gg.Point
	r     float64
	text  string
	color gg.RGBA
}

// fakeSurface records calls and measures text as 7px per byte by 12px.
type fakeSurface struct {
	ops   []op
	depth int
}

func newFakeSurface() *fakeSurface { return &fakeSurface{} }

func (f *fakeSurface) FillRect(r Rect, c gg.RGBA) {
	f.ops = append(f.ops, op{kind: "rect", rect: r, color: c})
}

func (f *fakeSurface) Line(a, b gg.Point, c gg.RGBA, w float64) {
	f.ops = append(f.ops, op{kind: "line", a: a, b: b, r: w, color: c})
}

func (f *fakeSurface) FillCircle(p gg.Point, r float64, c gg.RGBA) {
	f.ops = append(f.ops, op{kind: "circle", a: p, r: r, color: c})
}

func (f *fakeSurface) PushClip(r Rect) {
	f.depth++
	f.ops = append(f.ops, op{kind: "push", rect: r})
}

func (f *fakeSurface) PopClip() {
	f.depth--
	f.ops = append(f.ops, op{kind: "pop"})
}

func (f *fakeSurface) MeasureText(s string) (float64, float64) {
	return float64(len(s)) * 7, 12
}

func (f *fakeSurface) Text(s string, p gg.Point, c gg.RGBA) {
	f.ops = append(f.ops, op{kind: "text", a: p, text: s, color: c})
}

func (f *fakeSurface) reset() { f.ops = f.ops[:0] }

// clipped returns the ops recorded inside the outermost clip.
func (f *fakeSurface) clipped() []op {
	var out []op
	in := false
	for _, o := range f.ops {
		switch o.kind {
		case "push":
			in = true
		case "pop":
			in = false
		default:
			if in {
				out = append(out, o)
			}
		}
	}
	return out
}

func (f *fakeSurface) count(kind string, ops []op) int {
	n := 0
	for _, o := range ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

func (f *fakeSurface) hasText(s string) bool {
	for _, o := range f.ops {
		if o.kind == "text" && o.text == s {
			return true
		}
	}
	return false
}
