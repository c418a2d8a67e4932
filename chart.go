package ggplot

import "github.com/gogpu/gg"

// State is the interaction state of a chart.
type State uint8

const (
	// Idle means no drag or selection is in progress.
	Idle State = iota

	// Dragging means the primary button is panning the axes.
	Dragging

	// Selecting means the secondary button is drawing a zoom box.
	Selecting
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Dragging:
		return "dragging"
	case Selecting:
		return "selecting"
	default:
		return "idle"
	}
}

// Chart is the caller-owned description of one chart. It is passed to
// Context.Begin every frame.
//
// Besides the axes and display options, Chart carries the interaction state
// that spans frames (an ongoing drag or box selection, the open popup), so
// each chart drawn per frame needs its own Chart value.
type Chart struct {
	Title string
	X, Y  Axis

	// Colors. Auto resolves against the Context theme.
	FrameColor      gg.RGBA
	BackgroundColor gg.RGBA
	BorderColor     gg.RGBA
	SelectionColor  gg.RGBA

	ShowCrosshairs  bool
	ShowMousePos    bool
	ShowLegend      bool
	EnableSelection bool
	EnableControls  bool

	state  State
	anchor gg.Point

	popupOpen bool
	popupPos  gg.Point
}

// NewChart returns a chart with default axes, Auto colors and every feature
// enabled.
func NewChart(title, xLabel, yLabel string) *Chart {
	c := &Chart{
		Title:           title,
		X:               DefaultAxis(),
		Y:               DefaultAxis(),
		FrameColor:      Auto,
		BackgroundColor: Auto,
		BorderColor:     Auto,
		SelectionColor:  Auto,
		ShowCrosshairs:  true,
		ShowMousePos:    true,
		ShowLegend:      true,
		EnableSelection: true,
		EnableControls:  true,
	}
	c.X.Label = xLabel
	c.Y.Label = yLabel
	return c
}

// State returns the current interaction state.
func (c *Chart) State() State { return c.state }

// SelectionAnchor returns the pixel position where the current box
// selection started. It is meaningful only while State() == Selecting.
func (c *Chart) SelectionAnchor() gg.Point { return c.anchor }

// PopupOpen reports whether the configuration popup is shown.
func (c *Chart) PopupOpen() bool { return c.popupOpen }

// ClosePopup hides the configuration popup.
func (c *Chart) ClosePopup() { c.popupOpen = false }
