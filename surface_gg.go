package ggplot

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// CanvasSurface draws into a gg.Context.
//
// Example:
//
//	dc := gg.NewContext(800, 600)
//	surf, err := ggplot.NewCanvasSurface(dc, nil)
//	if err != nil {
//	    return err
//	}
//	ctx := ggplot.NewContext(surf, ggplot.NewStackLayout(0, 0, 800, 600))
type CanvasSurface struct {
	dc     *gg.Context
	face   text.Face
	ascent float64
}

// Ensure CanvasSurface implements Surface.
var _ Surface = (*CanvasSurface)(nil)

// NewCanvasSurface wraps dc. A nil face uses DefaultFace(DefaultFontSize).
func NewCanvasSurface(dc *gg.Context, face text.Face) (*CanvasSurface, error) {
	if face == nil {
		f, err := DefaultFace(DefaultFontSize)
		if err != nil {
			return nil, err
		}
		face = f
	}
	dc.SetFont(face)
	return &CanvasSurface{dc: dc, face: face, ascent: face.Metrics().Ascent}, nil
}

// Context returns the wrapped drawing context.
func (s *CanvasSurface) Context() *gg.Context { return s.dc }

// FillRect implements Surface.
func (s *CanvasSurface) FillRect(r Rect, c gg.RGBA) {
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.DrawRectangle(r.Min.X, r.Min.Y, r.W(), r.H())
	_ = s.dc.Fill()
}

// Line implements Surface.
func (s *CanvasSurface) Line(a, b gg.Point, c gg.RGBA, width float64) {
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.SetLineWidth(width)
	s.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	_ = s.dc.Stroke()
}

// FillCircle implements Surface.
func (s *CanvasSurface) FillCircle(center gg.Point, radius float64, c gg.RGBA) {
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.DrawCircle(center.X, center.Y, radius)
	_ = s.dc.Fill()
}

// PushClip implements Surface.
func (s *CanvasSurface) PushClip(r Rect) {
	s.dc.Push()
	s.dc.ClipRect(r.Min.X, r.Min.Y, r.W(), r.H())
}

// PopClip implements Surface.
func (s *CanvasSurface) PopClip() {
	s.dc.Pop()
}

// MeasureText implements Surface.
func (s *CanvasSurface) MeasureText(str string) (w, h float64) {
	return s.dc.MeasureString(str)
}

// Text implements Surface.
func (s *CanvasSurface) Text(str string, p gg.Point, c gg.RGBA) {
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.DrawString(str, p.X, p.Y+s.ascent)
}
