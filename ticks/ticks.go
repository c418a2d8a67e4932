package ticks

import (
	"math"
	"strconv"
)

// Tick is a single major or minor tick on an axis.
type Tick struct {
	// Value is the data-space position.
	Value float64

	// Pixel is the screen-space position, set by Transform.
	Pixel float64

	// Major reports whether this is a major (labeled) tick.
	Major bool

	// Label is the formatted value, set by Label. Minor ticks keep an empty label.
	Label string

	// LabelW and LabelH are the measured label extent in pixels.
	LabelW, LabelH float64
}

// Measurer measures rendered text in pixels.
type Measurer interface {
	MeasureText(s string) (w, h float64)
}

// Formatter converts a tick value to its label text.
type Formatter func(v float64) string

// FormatDefault formats v the way %g does with six significant digits.
func FormatDefault(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// Compute generates the ticks for [min, max] with the requested number of
// major divisions and minor subdivisions per major interval.
//
// dst is truncated and reused. Ticks are appended in ascending step order:
// each major is followed by the minors of the interval that starts at it.
// Only ticks inside [min, max] are kept. majors < 2 or an empty range yields
// no ticks.
func Compute(dst []Tick, min, max float64, majors, minors int) []Tick {
	dst = dst[:0]
	interval := Interval(min, max, majors)
	if interval == 0 || math.IsNaN(interval) {
		return dst
	}
	// Values that should be zero but carry rounding noise would otherwise
	// format as 1e-17.
	eps := interval * 1e-9

	graphMin := math.Floor(min/interval) * interval
	limit := max + 0.5*interval
	for i := 0; ; i++ {
		major := graphMin + float64(i)*interval
		if major >= limit {
			break
		}
		if math.Abs(major) < eps {
			major = 0
		}
		if major >= min && major <= max {
			dst = append(dst, Tick{Value: major, Major: true})
		}
		for j := 1; j < minors; j++ {
			minor := major + float64(j)*interval/float64(minors)
			if minor >= min && minor <= max {
				dst = append(dst, Tick{Value: minor})
			}
		}
	}
	return dst
}

// Label formats and measures every major tick. A nil format uses
// FormatDefault. Minor ticks are left unlabeled.
func Label(ts []Tick, m Measurer, format Formatter) {
	if format == nil {
		format = FormatDefault
	}
	for i := range ts {
		if !ts[i].Major {
			continue
		}
		ts[i].Label = format(ts[i].Value)
		ts[i].LabelW, ts[i].LabelH = m.MeasureText(ts[i].Label)
	}
}

// Transform sets Pixel for every tick with the affine map
// pixMin + (pixMax-pixMin)*(value-dataMin)/(dataMax-dataMin).
func Transform(ts []Tick, dataMin, dataMax, pixMin, pixMax float64) {
	scale := (pixMax - pixMin) / (dataMax - dataMin)
	for i := range ts {
		ts[i].Pixel = pixMin + scale*(ts[i].Value-dataMin)
	}
}

// MaxLabelSize returns the largest label width and height among ts.
func MaxLabelSize(ts []Tick) (w, h float64) {
	for i := range ts {
		w = math.Max(w, ts[i].LabelW)
		h = math.Max(h, ts[i].LabelH)
	}
	return w, h
}
