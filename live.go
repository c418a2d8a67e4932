package ggplot

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// Feeder appends live samples to a series. The two implementations have
// observably different wraparound behavior:
//
//   - Rolling wraps X modulo a span and restarts the series each cycle.
//   - Buffering keeps the most recent MaxPoints samples in a ring.
//
// Feeders do no locking. A producer running on another goroutine must guard
// the series with its own mutex until the frame that draws it has finished.
type Feeder interface {
	Add(s *Series, x, y float64)
}

// Rolling stores (x mod Span, y) and clears the series whenever the wrapped
// X goes backwards, so the chart redraws from the left edge every Span.
// Set the X axis to [0, Span) once.
type Rolling struct {
	Span float64
}

// Add implements Feeder. It panics if Span is not positive.
func (r Rolling) Add(s *Series, x, y float64) {
	if !(r.Span > 0) {
		panic(fmt.Sprintf("ggplot: Rolling.Span must be positive, got %v", r.Span))
	}
	xm := math.Mod(x, r.Span)
	if n := len(s.Points); n > 0 && xm < s.Points[n-1].X {
		s.Clear()
	}
	s.Points = append(s.Points, gg.Pt(xm, y))
}

// Buffering keeps at most MaxPoints samples. Once full, each new sample
// overwrites the oldest one at the series cursor and the cursor advances.
// Line series drawn from such a buffer start at the cursor, so the newest
// and oldest samples are never joined.
type Buffering struct {
	MaxPoints int
}

// Add implements Feeder. It panics if MaxPoints is not positive.
func (b Buffering) Add(s *Series, x, y float64) {
	if b.MaxPoints <= 0 {
		panic(fmt.Sprintf("ggplot: Buffering.MaxPoints must be positive, got %d", b.MaxPoints))
	}
	p := gg.Pt(x, y)
	n := len(s.Points)
	if n < b.MaxPoints {
		// A ring that is not full yet starts at index 0.
		s.Points = append(s.Points, p)
		s.cursor = 0
		return
	}
	if n > b.MaxPoints {
		// Keep the newest MaxPoints samples in draw order.
		keep := make([]gg.Point, 0, b.MaxPoints)
		for i := n - b.MaxPoints; i < n; i++ {
			keep = append(keep, s.At(i))
		}
		s.Points = append(s.Points[:0], keep...)
		s.cursor = 0
	}
	if s.cursor >= b.MaxPoints {
		s.cursor = 0
	}
	s.Points[s.cursor] = p
	s.cursor = (s.cursor + 1) % b.MaxPoints
}

// AddRolling appends (x, y) to s with Rolling{Span: span}.
func AddRolling(s *Series, x, y, span float64) {
	Rolling{Span: span}.Add(s, x, y)
}

// AddBuffered appends (x, y) to s with Buffering{MaxPoints: maxPoints}.
func AddBuffered(s *Series, x, y float64, maxPoints int) {
	Buffering{MaxPoints: maxPoints}.Add(s, x, y)
}

// ScrollAxis sets the axis to the window [now-history, now]. Call it every
// frame for a chart whose X axis follows wall-clock time.
func ScrollAxis(a *Axis, now, history float64) {
	a.Max = now
	a.Min = now - history
}
