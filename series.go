package ggplot

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
)

// Kind selects how a series is drawn.
type Kind uint8

const (
	// Line connects consecutive points with stroked segments.
	Line Kind = iota

	// Scatter draws a filled circle at each point.
	Scatter

	// XBar draws vertical bars from y=0 to each point.
	XBar

	// YBar draws horizontal bars from x=0 to each point.
	YBar

	kindCount
)

// ErrUnknownKind is returned by ParseKind for an unrecognized name.
var ErrUnknownKind = errors.New("ggplot: unknown series kind")

var kindNames = [kindCount]string{
	Line:    "line",
	Scatter: "scatter",
	XBar:    "xbar",
	YBar:    "ybar",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind returns the Kind named s.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// defaultSize returns the Size NewSeries assigns for each kind.
func (k Kind) defaultSize() float64 {
	switch k {
	case Scatter:
		return 3
	case XBar, YBar:
		return 0.5
	default:
		return 1.5
	}
}

// Series is one plotted dataset.
//
// Points are drawn in slice order; for Line they also define which points
// are connected. When the series is fed by a Buffering adapter the oldest
// point is at Cursor() and drawing starts there.
type Series struct {
	Kind   Kind
	Points []gg.Point

	// Color is the series color. Auto takes the next palette entry.
	Color gg.RGBA

	// Size is the line width in pixels for Line, the marker radius in
	// pixels for Scatter and the bar width in data units for XBar and YBar.
	Size float64

	Visible bool
	Label   string

	cursor int
}

// NewSeries returns a visible series of the given kind with an Auto color
// and the default size for that kind.
func NewSeries(kind Kind, label string) *Series {
	return &Series{
		Kind:    kind,
		Color:   Auto,
		Size:    kind.defaultSize(),
		Visible: true,
		Label:   label,
	}
}

// Cursor returns the ring write index maintained by the Buffering adapter.
// It is zero for series that are not full ring buffers.
func (s *Series) Cursor() int { return s.cursor }

// Len returns the number of stored points.
func (s *Series) Len() int { return len(s.Points) }

// Clear removes all points and resets the ring cursor. The backing array is
// kept for reuse.
func (s *Series) Clear() {
	s.Points = s.Points[:0]
	s.cursor = 0
}

// At returns the i-th point in draw order, starting at the ring cursor.
// A cursor left past the end by direct edits of Points counts as zero.
func (s *Series) At(i int) gg.Point {
	n := len(s.Points)
	c := s.cursor
	if c >= n {
		c = 0
	}
	j := c + i
	if j >= n {
		j -= n
	}
	return s.Points[j]
}

// SetXY replaces the points with pairs taken from xs and ys. stride selects
// every stride-th element of both slices; values below one mean 1. The
// shorter slice bounds the count.
func (s *Series) SetXY(xs, ys []float64, stride int) {
	if stride < 1 {
		stride = 1
	}
	n := min(len(xs), len(ys))
	s.Points = s.Points[:0]
	s.cursor = 0
	for i := 0; i < n; i += stride {
		s.Points = append(s.Points, gg.Pt(xs[i], ys[i]))
	}
}
