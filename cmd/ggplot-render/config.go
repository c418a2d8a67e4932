package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggplot"
	"gopkg.in/yaml.v2"
)

var (
	// ErrNoCharts is returned for a description without charts.
	ErrNoCharts = errors.New("ggplot-render: no charts")

	// ErrNoSeries is returned for a chart without series.
	ErrNoSeries = errors.New("ggplot-render: chart has no series")
)

// document is the YAML chart description.
type document struct {
	Width  int           `yaml:"width"`
	Height int           `yaml:"height"`
	Theme  string        `yaml:"theme,omitempty"`
	Locale string        `yaml:"locale,omitempty"`
	Charts []chartConfig `yaml:"charts"`
}

type chartConfig struct {
	Title  string         `yaml:"title,omitempty"`
	Height float64        `yaml:"height,omitempty"`
	Legend *bool          `yaml:"legend,omitempty"`
	X      axisConfig     `yaml:"x"`
	Y      axisConfig     `yaml:"y"`
	Series []seriesConfig `yaml:"series"`
}

type axisConfig struct {
	Label        string   `yaml:"label,omitempty"`
	Min          *float64 `yaml:"min,omitempty"`
	Max          *float64 `yaml:"max,omitempty"`
	Divisions    int      `yaml:"divisions,omitempty"`
	Subdivisions int      `yaml:"subdivisions,omitempty"`
	Flip         bool     `yaml:"flip,omitempty"`
	NoGrid       bool     `yaml:"no_grid,omitempty"`
}

type seriesConfig struct {
	Kind   string      `yaml:"kind"`
	Label  string      `yaml:"label,omitempty"`
	Color  string      `yaml:"color,omitempty"`
	Size   float64     `yaml:"size,omitempty"`
	Points [][]float64 `yaml:"points,omitempty"`
	XS     []float64   `yaml:"xs,omitempty"`
	YS     []float64   `yaml:"ys,omitempty"`
}

// loadDocument reads and validates a chart description.
func loadDocument(path string) (*document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ggplot-render: read %s: %w", path, err)
	}
	return parseDocument(data)
}

func parseDocument(data []byte) (*document, error) {
	doc := &document{Width: 800, Height: 600}
	if err := yaml.UnmarshalStrict(data, doc); err != nil {
		return nil, fmt.Errorf("ggplot-render: parse: %w", err)
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, fmt.Errorf("ggplot-render: invalid size %dx%d", doc.Width, doc.Height)
	}
	if len(doc.Charts) == 0 {
		return nil, ErrNoCharts
	}
	for i, c := range doc.Charts {
		if len(c.Series) == 0 {
			return nil, fmt.Errorf("%w: chart %d %q", ErrNoSeries, i, c.Title)
		}
		for _, s := range c.Series {
			if _, err := ggplot.ParseKind(s.Kind); err != nil {
				return nil, fmt.Errorf("ggplot-render: chart %d: %w", i, err)
			}
			for _, p := range s.Points {
				if len(p) != 2 {
					return nil, fmt.Errorf("ggplot-render: chart %d series %q: point %v is not [x, y]", i, s.Label, p)
				}
			}
		}
	}
	return doc, nil
}

// theme returns the named theme.
func (d *document) theme() (ggplot.Theme, error) {
	switch d.Theme {
	case "", "dark":
		return ggplot.DarkTheme(), nil
	case "light":
		return ggplot.LightTheme(), nil
	}
	return ggplot.Theme{}, fmt.Errorf("ggplot-render: unknown theme %q", d.Theme)
}

// build turns the description of one chart into a chart and its series.
// Axis bounds left out of the description are fitted to the data.
func (c *chartConfig) build() (*ggplot.Chart, []*ggplot.Series) {
	ch := ggplot.NewChart(c.Title, c.X.Label, c.Y.Label)
	if c.Legend != nil {
		ch.ShowLegend = *c.Legend
	}
	// Static output has no pointer.
	ch.ShowCrosshairs = false
	ch.ShowMousePos = false

	items := make([]*ggplot.Series, 0, len(c.Series))
	for i := range c.Series {
		items = append(items, c.Series[i].build())
	}
	xmin, xmax, ymin, ymax := extent(items)
	c.X.apply(&ch.X, xmin, xmax)
	c.Y.apply(&ch.Y, ymin, ymax)
	return ch, items
}

func (a *axisConfig) apply(ax *ggplot.Axis, lo, hi float64) {
	if a.Divisions > 0 {
		ax.Divisions = a.Divisions
	}
	if a.Subdivisions > 0 {
		ax.Subdivisions = a.Subdivisions
	}
	ax.Flip = a.Flip
	ax.ShowGrid = !a.NoGrid

	// 5% margin around fitted bounds.
	margin := (hi - lo) * 0.05
	if margin == 0 {
		margin = 0.5
	}
	mn, mx := lo-margin, hi+margin
	if a.Min != nil {
		mn = *a.Min
	}
	if a.Max != nil {
		mx = *a.Max
	}
	ax.SetRange(mn, mx)
}

func (s *seriesConfig) build() *ggplot.Series {
	kind, _ := ggplot.ParseKind(s.Kind)
	out := ggplot.NewSeries(kind, s.Label)
	if s.Color != "" {
		out.Color = gg.Hex(s.Color)
	}
	if s.Size > 0 {
		out.Size = s.Size
	}
	if len(s.XS) > 0 {
		out.SetXY(s.XS, s.YS, 1)
	}
	for _, p := range s.Points {
		out.Points = append(out.Points, gg.Pt(p[0], p[1]))
	}
	return out
}

// extent returns the data bounds of items. Bars always include zero.
func extent(items []*ggplot.Series) (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, s := range items {
		for _, p := range s.Points {
			xmin, xmax = math.Min(xmin, p.X), math.Max(xmax, p.X)
			ymin, ymax = math.Min(ymin, p.Y), math.Max(ymax, p.Y)
		}
		switch s.Kind {
		case ggplot.XBar:
			ymin, ymax = math.Min(ymin, 0), math.Max(ymax, 0)
			xmin, xmax = xmin-s.Size/2, xmax+s.Size/2
		case ggplot.YBar:
			xmin, xmax = math.Min(xmin, 0), math.Max(xmax, 0)
			ymin, ymax = ymin-s.Size/2, ymax+s.Size/2
		}
	}
	if math.IsInf(xmin, 1) {
		return 0, 1, 0, 1
	}
	return xmin, xmax, ymin, ymax
}

// exampleDocument is printed by the example command.
func exampleDocument() *document {
	xs := make([]float64, 0, 64)
	ys := make([]float64, 0, 64)
	for i := 0; i < 64; i++ {
		x := float64(i) / 8
		xs = append(xs, x)
		ys = append(ys, math.Sin(x))
	}
	legend := true
	return &document{
		Width:  800,
		Height: 600,
		Theme:  "dark",
		Charts: []chartConfig{
			{
				Title:  "Signal",
				Legend: &legend,
				X:      axisConfig{Label: "t [s]"},
				Y:      axisConfig{Label: "amplitude"},
				Series: []seriesConfig{
					{Kind: "line", Label: "sin(t)", XS: xs, YS: ys},
					{Kind: "scatter", Label: "samples", Color: "#ffd700", Points: [][]float64{{1, 0.5}, {3, -0.2}, {5, 0.9}}},
				},
			},
			{
				Title: "Counts",
				X:     axisConfig{Label: "bucket"},
				Y:     axisConfig{Label: "n"},
				Series: []seriesConfig{
					{Kind: "xbar", Label: "count", Size: 0.8, Points: [][]float64{{1, 3}, {2, 7}, {3, 4}, {4, 9}}},
				},
			},
		},
	}
}
