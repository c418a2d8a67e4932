package ggplot

import (
	"math"

	"github.com/gogpu/gg"
)

// axisEpsilon is the minimum range Constrain enforces.
const axisEpsilon = 1.192092896e-07

// Auto is the sentinel color resolved against the Context theme.
// Any color with a negative alpha is treated as Auto.
var Auto = gg.RGBA{A: -1}

// IsAuto reports whether c is the Auto sentinel.
func IsAuto(c gg.RGBA) bool { return c.A < 0 }

// Axis is one dimension of a chart: its data range, tick configuration and
// the interaction flags that restrict how the range may change.
//
// Min and Max are mutated in place by pan, zoom and box selection. Callers may
// write them at any time between frames.
type Axis struct {
	Min, Max float64

	// Divisions is the desired number of major ticks. Fewer than two
	// disables ticks, labels and grid lines for the axis.
	Divisions int

	// Subdivisions is the number of minor intervals per major interval.
	Subdivisions int

	ShowGrid   bool
	ShowTicks  bool
	ShowLabels bool

	// Color is used for grid lines, tick marks and labels. Auto picks the
	// theme's text color.
	Color gg.RGBA

	// ZoomRate is the fractional range change per scroll notch.
	ZoomRate float64

	// LockMin and LockMax pin the corresponding bound against pan, zoom and
	// box selection.
	LockMin bool
	LockMax bool

	// Flip reverses the direction in which data values map to pixels.
	Flip bool

	Label string
}

// DefaultAxis returns an axis spanning [0, 1] with three major divisions,
// ten subdivisions, every decoration enabled and a 10% zoom rate.
func DefaultAxis() Axis {
	return Axis{
		Min:          0,
		Max:          1,
		Divisions:    3,
		Subdivisions: 10,
		ShowGrid:     true,
		ShowTicks:    true,
		ShowLabels:   true,
		Color:        Auto,
		ZoomRate:     0.1,
	}
}

// Range returns Max - Min.
func (a *Axis) Range() float64 { return a.Max - a.Min }

// SetRange sets both bounds and restores the Max > Min invariant.
func (a *Axis) SetRange(lo, hi float64) {
	a.Min, a.Max = lo, hi
	a.Constrain()
}

// Contains reports whether v lies within [Min, Max].
func (a *Axis) Contains(v float64) bool { return v >= a.Min && v <= a.Max }

// Constrain restores the Max > Min invariant by moving Max just above Min.
// Non-finite bounds are reset to the default range. It reports whether the
// axis was modified.
func (a *Axis) Constrain() bool {
	changed := false
	if math.IsNaN(a.Min) || math.IsInf(a.Min, 0) {
		a.Min = 0
		changed = true
	}
	if math.IsNaN(a.Max) || math.IsInf(a.Max, 0) {
		a.Max = a.Min + 1
		changed = true
	}
	if !(a.Max > a.Min) {
		a.Max = a.Min + math.Max(axisEpsilon, math.Abs(a.Min)*axisEpsilon)
		changed = true
	}
	return changed
}
