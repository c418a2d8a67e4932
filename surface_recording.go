package ggplot

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"
)

// RecorderSurface records chart drawing into a gg/recording.Recorder so it
// can be played back to any registered backend (raster, PDF, SVG).
type RecorderSurface struct {
	rec    *recording.Recorder
	ascent float64
}

// Ensure RecorderSurface implements Surface.
var _ Surface = (*RecorderSurface)(nil)

// NewRecorderSurface wraps rec. With a nil face the recorder measures text
// with its size based estimate at DefaultFontSize.
func NewRecorderSurface(rec *recording.Recorder, face text.Face) *RecorderSurface {
	s := &RecorderSurface{rec: rec}
	if face != nil {
		rec.SetFont(face)
		s.ascent = face.Metrics().Ascent
	} else {
		rec.SetFontSize(DefaultFontSize)
		_, h := rec.MeasureString("0")
		s.ascent = h * 0.8
	}
	return s
}

// Recorder returns the wrapped recorder.
func (s *RecorderSurface) Recorder() *recording.Recorder { return s.rec }

// FillRect implements Surface.
func (s *RecorderSurface) FillRect(r Rect, c gg.RGBA) {
	s.rec.SetColor(c)
	s.rec.FillRectangle(r.Min.X, r.Min.Y, r.W(), r.H())
}

// Line implements Surface.
func (s *RecorderSurface) Line(a, b gg.Point, c gg.RGBA, width float64) {
	s.rec.SetColor(c)
	s.rec.SetLineWidth(width)
	s.rec.DrawLine(a.X, a.Y, b.X, b.Y)
	s.rec.Stroke()
}

// FillCircle implements Surface.
func (s *RecorderSurface) FillCircle(center gg.Point, radius float64, c gg.RGBA) {
	s.rec.SetColor(c)
	s.rec.DrawCircle(center.X, center.Y, radius)
	s.rec.Fill()
}

// PushClip implements Surface.
func (s *RecorderSurface) PushClip(r Rect) {
	s.rec.Push()
	s.rec.DrawRectangle(r.Min.X, r.Min.Y, r.W(), r.H())
	s.rec.Clip()
}

// PopClip implements Surface.
func (s *RecorderSurface) PopClip() {
	s.rec.Pop()
}

// MeasureText implements Surface.
func (s *RecorderSurface) MeasureText(str string) (w, h float64) {
	return s.rec.MeasureString(str)
}

// Text implements Surface.
func (s *RecorderSurface) Text(str string, p gg.Point, c gg.RGBA) {
	s.rec.SetColor(c)
	s.rec.DrawString(str, p.X, p.Y+s.ascent)
}
