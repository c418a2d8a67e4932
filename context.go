package ggplot

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggplot/ticks"
)

// Stats counts the work done for the most recent chart.
type Stats struct {
	// Series is the number of visible series drawn.
	Series int

	// Segments is the number of line segments drawn.
	Segments int

	// Culled is the number of segments, markers and bars skipped because
	// they fell outside the grid.
	Culled int
}

type stats struct {
	series, segments, culled int
}

// colors are the chart colors with Auto resolved.
type colors struct {
	frame, bg, border, selection gg.RGBA
	text                         gg.RGBA
	xAxis, xMajor, xMinor        gg.RGBA
	yAxis, yMajor, yMinor        gg.RGBA
}

// Context holds the per-frame state of chart drawing: the surface, the
// current input, and, between Begin and End, the active chart's transform,
// cull rectangle, resolved colors and tick buffers.
//
// A Context draws one chart at a time. Charts drawn with the same Context
// must be strictly sequential; independent Contexts may be used from
// different goroutines. Context is not safe for concurrent use.
type Context struct {
	surf    Surface
	layout  Layout
	theme   Theme
	log     *slog.Logger
	format  ticks.Formatter
	readout func(x, y float64) string

	in           Input
	cursorHidden bool

	// Valid between Begin and End.
	active     *Chart
	id         string
	frame      Rect
	grid       Rect
	cull       Rect
	tf         transform
	hoverFrame bool
	hoverGrid  bool
	colors     colors
	legend     []legendEntry
	legendRect Rect
	item       int
	stats      stats

	// Scratch buffers reused across frames.
	xTicks    []ticks.Tick
	yTicks    []ticks.Tick
	popupRows []popupRow
	scratch   Series
}

// NewContext creates a Context drawing to surf and allocating chart space
// from layout.
//
//	ctx := ggplot.NewContext(surf, layout)
//	for each frame {
//	    ctx.SetInput(in)
//	    if ctx.Begin("signal", chart, 0, 300) {
//	        ctx.PlotSeries(series)
//	        ctx.End()
//	    }
//	}
func NewContext(surf Surface, layout Layout, opts ...ContextOption) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Context{
		surf:    surf,
		layout:  layout,
		theme:   o.theme,
		log:     o.logger,
		format:  o.format,
		readout: o.readout,
	}
	if c.log == nil {
		c.log = Logger()
	}
	return c
}

// SetInput sets the pointer state for the frame. Call it once per frame
// before the first Begin.
func (c *Context) SetInput(in Input) {
	c.in = in
	c.cursorHidden = false
}

// Input returns the pointer state set by SetInput.
func (c *Context) Input() Input { return c.in }

// Theme returns the theme Auto colors resolve against.
func (c *Context) Theme() Theme { return c.theme }

// CursorHidden reports whether a chart drew a crosshair this frame, in which
// case the host should hide its own pointer.
func (c *Context) CursorHidden() bool { return c.cursorHidden }

// Stats returns counters for the most recent chart.
func (c *Context) Stats() Stats {
	return Stats{Series: c.stats.series, Segments: c.stats.segments, Culled: c.stats.culled}
}

// Hovered reports whether the pointer is over the active chart's frame.
func (c *Context) Hovered() bool { return c.active != nil && c.hoverFrame }

// GridHovered reports whether the pointer is over the active chart's grid.
func (c *Context) GridHovered() bool { return c.active != nil && c.hoverGrid }

// Grid returns the active chart's grid rectangle.
func (c *Context) Grid() Rect { return c.grid }

// MousePos returns the pointer position in the active chart's data space.
func (c *Context) MousePos() gg.Point { return c.tf.toData(c.in.Cursor) }

// Begin starts drawing ch in a w x h area requested from the layout.
// It returns false, and the caller must not call End, when the allocation
// is empty or hidden.
//
// Begin runs the interaction state machine, so the axes of ch may change.
// It panics if another chart is active on c.
func (c *Context) Begin(id string, ch *Chart, w, h float64) bool {
	if c.active != nil {
		panic(fmt.Sprintf("ggplot: Begin(%q) called while %q is active", id, c.id))
	}
	frame, visible := c.layout.Allocate(id, w, h)
	if !visible || frame.Empty() {
		c.log.Debug("ggplot: chart not visible", "chart", id, "w", frame.W(), "h", frame.H())
		return false
	}

	c.active = ch
	c.id = id
	c.frame = frame
	c.legend = c.legend[:0]
	c.legendRect = Rect{}
	c.item = 0
	c.stats = stats{}

	c.constrain(ch)
	c.resolveColors(ch)
	c.computeTicks(ch)
	c.layoutGrid(ch)

	c.hoverFrame = c.frame.Contains(c.in.Cursor)
	c.hoverGrid = c.grid.Contains(c.in.Cursor)
	c.tf = newTransform(c.grid, &ch.X, &ch.Y)

	in := c.in
	if ch.popupOpen {
		c.popupInput(ch, &in)
	}
	if !c.grid.Empty() {
		if ev := interact(ch, &in, &c.tf, c.grid, c.hoverGrid); ev != evNone {
			c.logEvent(ch, ev)
		}
	}

	c.constrain(ch)
	c.computeTicks(ch)
	c.tf = newTransform(c.grid, &ch.X, &ch.Y)
	ticks.Transform(c.xTicks, ch.X.Min, ch.X.Max, c.tf.pix.Min.X, c.tf.pix.Max.X)
	ticks.Transform(c.yTicks, ch.Y.Min, ch.Y.Max, c.tf.pix.Min.Y, c.tf.pix.Max.Y)
	c.cull = c.grid

	c.surf.FillRect(c.frame, c.colors.frame)
	c.surf.FillRect(c.grid, c.colors.bg)
	c.drawGrid(ch)
	c.surf.PushClip(c.grid)
	return true
}

// PlotSeries draws s into the active chart. Series with an Auto color take
// the next palette entry; visible labeled series get a legend entry.
func (c *Context) PlotSeries(s *Series) {
	if c.active == nil {
		panic("ggplot: PlotSeries called outside Begin/End")
	}
	col := resolve(s.Color, c.theme.paletteColor(c.item))
	c.item++
	if !s.Visible {
		return
	}
	if s.Kind >= kindCount {
		c.log.Warn("ggplot: unknown series kind", "chart", c.id, "series", s.Label, "kind", s.Kind)
		return
	}
	if s.Label != "" {
		c.legend = append(c.legend, legendEntry{label: s.Label, color: col})
	}
	c.stats.series++
	painters[s.Kind](c, s, col)
}

// PlotXY draws the pairs (xs[i], ys[i]) for every stride-th i as a series
// of the given kind. The points are copied into a buffer owned by c.
func (c *Context) PlotXY(kind Kind, label string, xs, ys []float64, stride int) {
	s := &c.scratch
	s.Kind = kind
	s.Label = label
	s.Color = Auto
	s.Size = kind.defaultSize()
	s.Visible = true
	s.SetXY(xs, ys, stride)
	c.PlotSeries(s)
}

// End finishes the active chart: it draws the overlays and releases the
// chart. It panics if no chart is active.
func (c *Context) End() {
	ch := c.active
	if ch == nil {
		panic("ggplot: End called without a matching Begin")
	}
	c.surf.PopClip()

	if ch.state == Selecting {
		c.drawSelection(ch)
	}
	c.drawTickMarks(ch)
	c.drawTickLabels(ch)
	c.drawTitles(ch)
	if ch.ShowLegend {
		c.drawLegend()
	}
	if c.hoverGrid && !ch.popupOpen {
		if ch.ShowCrosshairs {
			c.drawCrosshair()
		}
		if ch.ShowMousePos {
			c.drawMousePos()
		}
	}
	strokeRect(c.surf, c.grid, c.colors.border, 1)
	if ch.popupOpen {
		c.drawPopup(ch)
	}

	c.active = nil
}

// Render draws ch with all items in one call. It reports whether the chart
// was visible.
func (c *Context) Render(id string, ch *Chart, w, h float64, items []*Series) bool {
	if !c.Begin(id, ch, w, h) {
		return false
	}
	for _, s := range items {
		c.PlotSeries(s)
	}
	c.End()
	return true
}

func (c *Context) constrain(ch *Chart) {
	if ch.X.Constrain() {
		c.log.Debug("ggplot: corrected x range", "chart", c.id, "min", ch.X.Min, "max", ch.X.Max)
	}
	if ch.Y.Constrain() {
		c.log.Debug("ggplot: corrected y range", "chart", c.id, "min", ch.Y.Min, "max", ch.Y.Max)
	}
}

func (c *Context) resolveColors(ch *Chart) {
	t := &c.theme
	c.colors = colors{
		frame:     resolve(ch.FrameColor, t.FrameBg),
		bg:        resolve(ch.BackgroundColor, t.PlotBg),
		border:    resolve(ch.BorderColor, t.Border),
		selection: resolve(ch.SelectionColor, t.Selection),
		text:      t.Text,
		xAxis:     resolve(ch.X.Color, t.Text),
		yAxis:     resolve(ch.Y.Color, t.Text),
	}
	c.colors.xMajor = withAlpha(c.colors.xAxis, t.GridAlpha)
	c.colors.xMinor = withAlpha(c.colors.xAxis, t.MinorGridAlpha)
	c.colors.yMajor = withAlpha(c.colors.yAxis, t.GridAlpha)
	c.colors.yMinor = withAlpha(c.colors.yAxis, t.MinorGridAlpha)
}

// computeTicks regenerates and labels the tick buffers for the current
// ranges. Labels are only produced for axes that show them.
func (c *Context) computeTicks(ch *Chart) {
	c.xTicks = ticks.Compute(c.xTicks, ch.X.Min, ch.X.Max, ch.X.Divisions, ch.X.Subdivisions)
	c.yTicks = ticks.Compute(c.yTicks, ch.Y.Min, ch.Y.Max, ch.Y.Divisions, ch.Y.Subdivisions)
	if ch.X.ShowLabels {
		ticks.Label(c.xTicks, c.surf, c.format)
	}
	if ch.Y.ShowLabels {
		ticks.Label(c.yTicks, c.surf, c.format)
	}
}

// layoutGrid derives the grid rectangle from the frame by reserving room
// for the title row, tick labels and axis labels.
func (c *Context) layoutGrid(ch *Chart) {
	pad := c.theme.Padding
	_, textH := c.surf.MeasureText("Ag")

	top := pad
	if ch.Title != "" || ch.Y.Label != "" {
		top += textH + labelGap
	}
	bottom := pad
	if ch.X.ShowLabels && len(c.xTicks) > 0 {
		bottom += textH + labelGap
	}
	if ch.X.Label != "" {
		bottom += textH + labelGap
	}
	left := pad
	if ch.Y.ShowLabels && len(c.yTicks) > 0 {
		w, _ := ticks.MaxLabelSize(c.yTicks)
		left += w + labelGap
	}
	// Half of the widest X label may hang past the right edge.
	right := pad
	if ch.X.ShowLabels {
		w, _ := ticks.MaxLabelSize(c.xTicks)
		right = math.Max(right, w/2)
	}

	c.grid = Rect{
		Min: gg.Pt(c.frame.Min.X+left, c.frame.Min.Y+top),
		Max: gg.Pt(c.frame.Max.X-right, c.frame.Max.Y-bottom),
	}
	if c.grid.Max.X < c.grid.Min.X {
		c.grid.Max.X = c.grid.Min.X
	}
	if c.grid.Max.Y < c.grid.Min.Y {
		c.grid.Max.Y = c.grid.Min.Y
	}
}

func (c *Context) logEvent(ch *Chart, ev event) {
	switch ev {
	case evSelectApply:
		c.log.Debug("ggplot: zoom to selection", "chart", c.id,
			"x", [2]float64{ch.X.Min, ch.X.Max}, "y", [2]float64{ch.Y.Min, ch.Y.Max})
	case evSelectCancel:
		c.log.Debug("ggplot: selection canceled", "chart", c.id)
	case evPopup:
		c.log.Debug("ggplot: popup opened", "chart", c.id)
	}
}
