package ggplot

import "github.com/gogpu/gg"

// Button identifies a pointer button.
type Button uint8

const (
	// Primary is the left mouse button. It pans and cancels selections.
	Primary Button = iota

	// Secondary is the right mouse button. It box-selects and opens the
	// configuration popup.
	Secondary

	// NumButtons is the number of buttons tracked by Input.
	NumButtons
)

// Input is the pointer state for one frame. The host fills it once per frame
// and hands it to Context.SetInput before the first Begin.
type Input struct {
	// Cursor is the pointer position in surface pixels.
	Cursor gg.Point

	// Delta is the pointer movement since the previous frame.
	Delta gg.Point

	// Down reports buttons currently held.
	Down [NumButtons]bool

	// Pressed and Released report transitions that happened this frame.
	Pressed  [NumButtons]bool
	Released [NumButtons]bool

	// Scroll is the vertical wheel movement. Positive values scroll up
	// (zoom in).
	Scroll float64
}

// Step derives the next frame's Input from the previous one and the raw
// pointer state. It fills Delta, Pressed and Released. Hosts without edge
// detection of their own can call it every frame.
func (in Input) Step(cursor gg.Point, down [NumButtons]bool, scroll float64) Input {
	next := Input{
		Cursor: cursor,
		Delta:  cursor.Sub(in.Cursor),
		Down:   down,
		Scroll: scroll,
	}
	for b := range down {
		next.Pressed[b] = down[b] && !in.Down[b]
		next.Released[b] = !down[b] && in.Down[b]
	}
	return next
}
