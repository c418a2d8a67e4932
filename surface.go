package ggplot

import "github.com/gogpu/gg"

// Surface is the drawing target of a Context. All coordinates are in the
// host's pixel space with Y growing downward.
//
// Implementations: CanvasSurface draws into a gg.Context, RecorderSurface
// records into a gg/recording.Recorder for vector export.
type Surface interface {
	// FillRect fills r with c.
	FillRect(r Rect, c gg.RGBA)

	// Line strokes the segment a-b with the given width.
	Line(a, b gg.Point, c gg.RGBA, width float64)

	// FillCircle fills a circle.
	FillCircle(center gg.Point, radius float64, c gg.RGBA)

	// PushClip intersects the clip region with r until the matching PopClip.
	PushClip(r Rect)
	PopClip()

	// MeasureText returns the extent of s in pixels.
	MeasureText(s string) (w, h float64)

	// Text draws s with its top-left corner at p.
	Text(s string, p gg.Point, c gg.RGBA)
}

// strokeRect outlines r with four segments.
func strokeRect(s Surface, r Rect, c gg.RGBA, width float64) {
	tl, br := r.Min, r.Max
	tr, bl := gg.Pt(br.X, tl.Y), gg.Pt(tl.X, br.Y)
	s.Line(tl, tr, c, width)
	s.Line(tr, br, c, width)
	s.Line(br, bl, c, width)
	s.Line(bl, tl, c, width)
}
