package ggplot

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggplot/ticks"
)

const (
	crosshairGap = 5
	labelGap     = 4
)

type legendEntry struct {
	label string
	color gg.RGBA
}

// drawGrid draws grid lines for both axes inside the grid rectangle.
func (c *Context) drawGrid(ch *Chart) {
	if ch.X.ShowGrid {
		for _, tk := range c.xTicks {
			col := c.colors.xMinor
			if tk.Major {
				col = c.colors.xMajor
			}
			c.surf.Line(gg.Pt(tk.Pixel, c.grid.Min.Y), gg.Pt(tk.Pixel, c.grid.Max.Y), col, 1)
		}
	}
	if ch.Y.ShowGrid {
		for _, tk := range c.yTicks {
			col := c.colors.yMinor
			if tk.Major {
				col = c.colors.yMajor
			}
			c.surf.Line(gg.Pt(c.grid.Min.X, tk.Pixel), gg.Pt(c.grid.Max.X, tk.Pixel), col, 1)
		}
	}
}

// drawTickMarks draws tick marks along the bottom and left grid edges.
func (c *Context) drawTickMarks(ch *Chart) {
	if ch.X.ShowTicks {
		for _, tk := range c.xTicks {
			l := c.tickLength(tk)
			c.surf.Line(gg.Pt(tk.Pixel, c.grid.Max.Y), gg.Pt(tk.Pixel, c.grid.Max.Y-l), c.colors.xAxis, 1)
		}
	}
	if ch.Y.ShowTicks {
		for _, tk := range c.yTicks {
			l := c.tickLength(tk)
			c.surf.Line(gg.Pt(c.grid.Min.X, tk.Pixel), gg.Pt(c.grid.Min.X+l, tk.Pixel), c.colors.yAxis, 1)
		}
	}
}

func (c *Context) tickLength(tk ticks.Tick) float64 {
	if tk.Major {
		return c.theme.MajorTick
	}
	return c.theme.MinorTick
}

// drawTickLabels draws major tick labels below the grid (X) and to its left (Y).
func (c *Context) drawTickLabels(ch *Chart) {
	if ch.X.ShowLabels {
		for _, tk := range c.xTicks {
			if tk.Label == "" {
				continue
			}
			p := gg.Pt(tk.Pixel-tk.LabelW/2, c.grid.Max.Y+labelGap/2)
			c.surf.Text(tk.Label, p, c.colors.xAxis)
		}
	}
	if ch.Y.ShowLabels {
		for _, tk := range c.yTicks {
			if tk.Label == "" {
				continue
			}
			p := gg.Pt(c.grid.Min.X-labelGap-tk.LabelW, tk.Pixel-tk.LabelH/2)
			c.surf.Text(tk.Label, p, c.colors.yAxis)
		}
	}
}

// drawTitles draws the chart title centered above the grid, the Y axis label
// at the top-left corner of the grid and the X axis label centered below the
// tick labels.
func (c *Context) drawTitles(ch *Chart) {
	pad := c.theme.Padding
	if ch.Title != "" {
		w, _ := c.surf.MeasureText(ch.Title)
		c.surf.Text(ch.Title, gg.Pt(c.frame.Min.X+(c.frame.W()-w)/2, c.frame.Min.Y+pad), c.colors.text)
	}
	if ch.Y.Label != "" {
		_, h := c.surf.MeasureText(ch.Y.Label)
		c.surf.Text(ch.Y.Label, gg.Pt(c.grid.Min.X, c.grid.Min.Y-h-labelGap/2), c.colors.yAxis)
	}
	if ch.X.Label != "" {
		w, h := c.surf.MeasureText(ch.X.Label)
		c.surf.Text(ch.X.Label, gg.Pt(c.grid.Min.X+(c.grid.W()-w)/2, c.frame.Max.Y-pad-h), c.colors.xAxis)
	}
}

// drawLegend draws one swatch and label per entry in the grid's top-left
// corner, sized to the widest label.
func (c *Context) drawLegend() {
	if len(c.legend) == 0 {
		return
	}
	pad := c.theme.Padding / 2
	var maxW, rowH float64
	for _, e := range c.legend {
		w, h := c.surf.MeasureText(e.label)
		maxW = math.Max(maxW, w)
		rowH = math.Max(rowH, h)
	}
	swatch := rowH * 0.8
	box := R(c.grid.Min.X+pad*2, c.grid.Min.Y+pad*2,
		pad+swatch+pad+maxW+pad, pad+float64(len(c.legend))*rowH+pad)

	c.surf.FillRect(box, c.theme.PopupBg)
	strokeRect(c.surf, box, c.colors.border, 1)
	for i, e := range c.legend {
		y := box.Min.Y + pad + float64(i)*rowH
		c.surf.FillRect(R(box.Min.X+pad, y+(rowH-swatch)/2, swatch, swatch), e.color)
		c.surf.Text(e.label, gg.Pt(box.Min.X+pad+swatch+pad, y), c.colors.text)
	}
	c.legendRect = box
}

// drawCrosshair draws a horizontal and a vertical segment through the cursor
// with a gap around it, and asks the host to hide its pointer.
func (c *Context) drawCrosshair() {
	p := c.in.Cursor
	g := c.grid
	col := c.theme.Crosshair
	c.surf.Line(gg.Pt(g.Min.X, p.Y), gg.Pt(p.X-crosshairGap, p.Y), col, 1)
	c.surf.Line(gg.Pt(p.X+crosshairGap, p.Y), gg.Pt(g.Max.X, p.Y), col, 1)
	c.surf.Line(gg.Pt(p.X, g.Min.Y), gg.Pt(p.X, p.Y-crosshairGap), col, 1)
	c.surf.Line(gg.Pt(p.X, p.Y+crosshairGap), gg.Pt(p.X, g.Max.Y), col, 1)
	c.cursorHidden = true
}

// drawMousePos draws the cursor's data coordinates in the grid's
// bottom-right corner.
func (c *Context) drawMousePos() {
	d := c.tf.toData(c.in.Cursor)
	s := c.readout(d.X, d.Y)
	w, h := c.surf.MeasureText(s)
	pad := c.theme.Padding
	c.surf.Text(s, gg.Pt(c.grid.Max.X-w-pad, c.grid.Max.Y-h-pad), c.colors.text)
}

// drawSelection shades the pending zoom box.
func (c *Context) drawSelection(ch *Chart) {
	r := rectFromPoints(ch.anchor, clampToRect(c.in.Cursor, c.grid))
	c.surf.FillRect(r, withAlpha(c.colors.selection, 0.25))
	strokeRect(c.surf, r, c.colors.selection, 1)
}
