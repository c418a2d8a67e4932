package ggplot

import (
	"math"

	"github.com/gogpu/gg"
)

// popupRow is one line of the configuration popup. Rows with a nil toggle
// are plain text.
type popupRow struct {
	label  string
	toggle *bool
	rect   Rect
}

// layoutPopup fills c.popupRows for ch and returns the popup rectangle.
// The rows are rebuilt every frame because the min/max text changes.
func (c *Context) layoutPopup(ch *Chart) Rect {
	c.popupRows = c.popupRows[:0]
	add := func(label string, toggle *bool) {
		c.popupRows = append(c.popupRows, popupRow{label: label, toggle: toggle})
	}
	for _, ax := range []struct {
		name string
		a    *Axis
	}{{"X Axis", &ch.X}, {"Y Axis", &ch.Y}} {
		a := ax.a
		add(ax.name, nil)
		add("min "+c.format(a.Min)+"  max "+c.format(a.Max), nil)
		add("Lock Min", &a.LockMin)
		add("Lock Max", &a.LockMax)
		add("Flip", &a.Flip)
		add("Grid Lines", &a.ShowGrid)
		add("Tick Marks", &a.ShowTicks)
		add("Labels", &a.ShowLabels)
	}

	pad := c.theme.Padding / 2
	var maxW, rowH float64
	for _, r := range c.popupRows {
		w, h := c.surf.MeasureText(r.label)
		maxW = math.Max(maxW, w)
		rowH = math.Max(rowH, h)
	}
	box := rowH * 0.8
	w := pad + box + pad + maxW + pad
	h := pad + float64(len(c.popupRows))*rowH + pad

	// Keep the popup inside the frame when it fits.
	pos := ch.popupPos
	if pos.X+w > c.frame.Max.X {
		pos.X = math.Max(c.frame.Min.X, c.frame.Max.X-w)
	}
	if pos.Y+h > c.frame.Max.Y {
		pos.Y = math.Max(c.frame.Min.Y, c.frame.Max.Y-h)
	}

	for i := range c.popupRows {
		c.popupRows[i].rect = R(pos.X, pos.Y+pad+float64(i)*rowH, w, rowH)
	}
	return R(pos.X, pos.Y, w, h)
}

// popupInput handles a primary click while the popup is open: a click on a
// toggle row flips it, a click outside closes the popup. The click is
// consumed either way so it never starts a drag.
func (c *Context) popupInput(ch *Chart, in *Input) {
	if !in.Pressed[Primary] {
		return
	}
	in.Pressed[Primary] = false

	bounds := c.layoutPopup(ch)
	if !bounds.Contains(in.Cursor) {
		ch.popupOpen = false
		return
	}
	for _, r := range c.popupRows {
		if r.toggle != nil && r.rect.Contains(in.Cursor) {
			*r.toggle = !*r.toggle
			c.log.Debug("ggplot: popup toggle", "chart", c.id, "item", r.label, "value", *r.toggle)
			return
		}
	}
}

// drawPopup draws the configuration popup on top of the chart.
func (c *Context) drawPopup(ch *Chart) {
	bounds := c.layoutPopup(ch)
	c.surf.FillRect(bounds, c.theme.PopupBg)
	strokeRect(c.surf, bounds, c.colors.border, 1)

	pad := c.theme.Padding / 2
	for _, r := range c.popupRows {
		x := r.rect.Min.X + pad
		box := r.rect.H() * 0.8
		if r.toggle == nil {
			c.surf.Text(r.label, gg.Pt(x, r.rect.Min.Y), c.colors.text)
			continue
		}
		if r.rect.Contains(c.in.Cursor) {
			c.surf.FillRect(r.rect, c.theme.PopupHover)
		}
		check := R(x, r.rect.Min.Y+(r.rect.H()-box)/2, box, box)
		strokeRect(c.surf, check, c.colors.text, 1)
		if *r.toggle {
			c.surf.FillRect(check.Inset(2), c.colors.text)
		}
		c.surf.Text(r.label, gg.Pt(x+box+pad, r.rect.Min.Y), c.colors.text)
	}
}
