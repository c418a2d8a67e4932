package ggplot

import "github.com/gogpu/gg"

// painter draws the points of one series kind with the current frame
// transform. Every coordinate goes through c.tf; geometry whose pixel bounds
// miss c.cull is skipped.
type painter func(c *Context, s *Series, col gg.RGBA)

// painters is the single dispatch point for series kinds.
var painters = [kindCount]painter{
	Line:    (*Context).paintLine,
	Scatter: (*Context).paintScatter,
	XBar:    (*Context).paintXBar,
	YBar:    (*Context).paintYBar,
}

// paintLine strokes segments between consecutive points in ring order.
func (c *Context) paintLine(s *Series, col gg.RGBA) {
	n := len(s.Points)
	if n < 2 {
		return
	}
	// Segments are culled against the clip widened by the stroke so that
	// thick lines just outside the edge still draw their visible half.
	cull := c.cull.Inset(-s.Size)
	prev := c.tf.toPixel(s.At(0))
	for i := 1; i < n; i++ {
		p := c.tf.toPixel(s.At(i))
		if rectFromPoints(prev, p).Overlaps(cull) {
			c.surf.Line(prev, p, col, s.Size)
			c.stats.segments++
		} else {
			c.stats.culled++
		}
		prev = p
	}
}

// paintScatter fills a circle of radius Size at every point.
func (c *Context) paintScatter(s *Series, col gg.RGBA) {
	cull := c.cull.Inset(-s.Size)
	for _, pt := range s.Points {
		p := c.tf.toPixel(pt)
		if !cull.Contains(p) {
			c.stats.culled++
			continue
		}
		c.surf.FillCircle(p, s.Size, col)
	}
}

// paintXBar fills [x-Size/2, x+Size/2] x [0, y] for every non-zero y.
func (c *Context) paintXBar(s *Series, col gg.RGBA) {
	half := s.Size / 2
	for _, pt := range s.Points {
		if pt.Y == 0 {
			continue
		}
		c.fillBar(c.tf.dataRect(pt.X-half, 0, pt.X+half, pt.Y), col)
	}
}

// paintYBar fills [0, x] x [y-Size/2, y+Size/2] for every non-zero x.
func (c *Context) paintYBar(s *Series, col gg.RGBA) {
	half := s.Size / 2
	for _, pt := range s.Points {
		if pt.X == 0 {
			continue
		}
		c.fillBar(c.tf.dataRect(0, pt.Y-half, pt.X, pt.Y+half), col)
	}
}

func (c *Context) fillBar(r Rect, col gg.RGBA) {
	if !r.Overlaps(c.cull) {
		c.stats.culled++
		return
	}
	c.surf.FillRect(r, col)
}
