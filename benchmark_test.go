package ggplot

import (
	"math"
	"strconv"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggplot/ticks"
)

type nopSurface struct{}

func (nopSurface) FillRect(Rect, gg.RGBA)                   {}
func (nopSurface) Line(_, _ gg.Point, _ gg.RGBA, _ float64) {}
func (nopSurface) FillCircle(gg.Point, float64, gg.RGBA)    {}
func (nopSurface) PushClip(Rect)                            {}
func (nopSurface) PopClip()                                 {}
func (nopSurface) MeasureText(s string) (float64, float64)  { return float64(len(s)) * 7, 12 }
func (nopSurface) Text(string, gg.Point, gg.RGBA)           {}

func BenchmarkPlotLine(b *testing.B) {
	for _, n := range []int{1_000, 100_000} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			s := NewSeries(Line, "")
			for i := 0; i < n; i++ {
				x := float64(i) / float64(n) * 20
				AddBuffered(s, x, math.Sin(x), n)
			}
			layout := NewStackLayout(0, 0, 1280, 720)
			ctx := NewContext(nopSurface{}, layout)
			ch := NewChart("bench", "x", "y")
			ch.X.SetRange(5, 10)
			ch.Y.SetRange(-1, 1)
			items := []*Series{s}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				layout.Reset()
				ctx.Render("bench", ch, 0, 0, items)
			}
		})
	}
}

func BenchmarkTicksCompute(b *testing.B) {
	var buf []ticks.Tick
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf = ticks.Compute(buf, -3.7, 1234.5, 5, 10)
	}
}
