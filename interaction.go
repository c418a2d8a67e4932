package ggplot

import (
	"math"

	"github.com/gogpu/gg"
)

// minSelection is the size in pixels a selection box must exceed on both
// axes to be applied.
const minSelection = 5

// event reports what interact did, for logging and tests.
type event uint8

const (
	evNone event = iota
	evDragStart
	evDragEnd
	evPan
	evZoom
	evSelectStart
	evSelectApply
	evSelectDiscard
	evSelectCancel
	evPopup
)

// interact advances the chart's state machine by one frame of input and
// mutates the axes accordingly. grid is the inner plot rectangle; hover
// reports whether the cursor is over it.
func interact(ch *Chart, in *Input, tf *transform, grid Rect, hover bool) event {
	ev := evNone
	pressPrimary := in.Pressed[Primary]

	switch ch.state {
	case Selecting:
		switch {
		case pressPrimary:
			ch.state = Idle
			return evSelectCancel
		case !in.Down[Secondary]:
			ch.state = Idle
			end := clampToRect(in.Cursor, grid)
			if applySelection(ch, tf, ch.anchor, end) {
				return evSelectApply
			}
			if ch.EnableControls {
				openPopup(ch, in.Cursor)
				return evPopup
			}
			return evSelectDiscard
		}
		return evNone

	case Dragging:
		if !in.Down[Primary] {
			ch.state = Idle
			return evDragEnd
		}
		if in.Delta != (gg.Point{}) {
			pan(&ch.X, in.Delta.X, tf.sx)
			pan(&ch.Y, in.Delta.Y, tf.sy)
			return evPan
		}
		return evNone
	}

	if !hover {
		return evNone
	}
	switch {
	case pressPrimary:
		ch.state = Dragging
		ev = evDragStart
	case in.Pressed[Secondary] && ch.EnableSelection:
		ch.state = Selecting
		ch.anchor = in.Cursor
		ev = evSelectStart
	case in.Pressed[Secondary] && ch.EnableControls:
		openPopup(ch, in.Cursor)
		ev = evPopup
	}
	if ch.state == Idle && in.Scroll != 0 {
		d := tf.toData(in.Cursor)
		zoomIn := in.Scroll > 0
		zoomAxis(&ch.X, fraction(&ch.X, d.X), zoomIn)
		zoomAxis(&ch.Y, fraction(&ch.Y, d.Y), zoomIn)
		ev = evZoom
	}
	return ev
}

// pan shifts the unlocked bounds of a by the data distance covered by
// pixDelta pixels. scale is the signed pixels-per-unit factor of the axis, so
// flipped axes move the other way.
func pan(a *Axis, pixDelta, scale float64) {
	if pixDelta == 0 {
		return
	}
	d := pixDelta / scale
	if !a.LockMin {
		a.Min -= d
	}
	if !a.LockMax {
		a.Max -= d
	}
}

// zoomAxis grows (zoomIn == false) or shrinks the range of a by one notch of
// a.ZoomRate, keeping the value at fraction t of the range in place.
//
// Zooming in uses the rate -z/(1+2z) rather than the inverse of zooming
// out, so a notch in followed by a notch out leaves the range multiplied by
// (1+z)^2/(1+2z).
func zoomAxis(a *Axis, t float64, zoomIn bool) {
	rate := a.ZoomRate
	if zoomIn {
		rate = -rate / (1 + 2*rate)
	}
	r := a.Range()
	if !a.LockMin {
		a.Min -= r * rate * t
	}
	if !a.LockMax {
		a.Max += r * rate * (1 - t)
	}
}

// fraction returns the position of v within the axis range, clamped to [0,1].
func fraction(a *Axis, v float64) float64 {
	t := (v - a.Min) / a.Range()
	if math.IsNaN(t) {
		return 0.5
	}
	return math.Max(0, math.Min(1, t))
}

// applySelection zooms both axes to the data rectangle spanned by the pixel
// corners a and b. Boxes not larger than minSelection on both axes are
// ignored. It reports whether the axes changed.
func applySelection(ch *Chart, tf *transform, a, b gg.Point) bool {
	if math.Abs(b.X-a.X) <= minSelection || math.Abs(b.Y-a.Y) <= minSelection {
		return false
	}
	da, db := tf.toData(a), tf.toData(b)
	setBounds(&ch.X, math.Min(da.X, db.X), math.Max(da.X, db.X))
	setBounds(&ch.Y, math.Min(da.Y, db.Y), math.Max(da.Y, db.Y))
	return true
}

// setBounds assigns the unlocked bounds of a.
func setBounds(a *Axis, lo, hi float64) {
	if !a.LockMin {
		a.Min = lo
	}
	if !a.LockMax {
		a.Max = hi
	}
}

func clampToRect(p gg.Point, r Rect) gg.Point {
	return gg.Pt(
		math.Max(r.Min.X, math.Min(r.Max.X, p.X)),
		math.Max(r.Min.Y, math.Min(r.Max.Y, p.Y)),
	)
}

func openPopup(ch *Chart, at gg.Point) {
	ch.popupOpen = true
	ch.popupPos = at
}
