package ggplot

import (
	"strings"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggplot/ticks"
	"golang.org/x/text/language"
)

func newTestContext(opts ...ContextOption) (*Context, *fakeSurface, *StackLayout) {
	surf := newFakeSurface()
	layout := NewStackLayout(0, 0, 400, 300)
	return NewContext(surf, layout, opts...), surf, layout
}

func newTestChart() *Chart {
	ch := NewChart("", "", "")
	ch.X.SetRange(0, 10)
	ch.Y.SetRange(0, 10)
	return ch
}

// drawFrame renders one frame of ch with items at the given input.
func drawFrame(t *testing.T, ctx *Context, layout *StackLayout, ch *Chart, in Input, items ...*Series) {
	t.Helper()
	layout.Reset()
	ctx.SetInput(in)
	if !ctx.Render("test", ch, 0, 0, items) {
		t.Fatal("Render reported chart not visible")
	}
}

func TestBeginEndPairing(t *testing.T) {
	ctx, surf, _ := newTestContext()
	ch := newTestChart()
	if !ctx.Begin("a", ch, 0, 100) {
		t.Fatal("Begin returned false")
	}
	func() {
		defer func() {
			r := recover()
			if r == nil || !strings.Contains(r.(string), "active") {
				t.Errorf("nested Begin recover() = %v, want panic", r)
			}
		}()
		ctx.Begin("b", newTestChart(), 0, 100)
	}()
	ctx.End()
	if surf.depth != 0 {
		t.Errorf("clip depth after End = %d, want 0", surf.depth)
	}

	defer func() {
		if recover() == nil {
			t.Error("End without Begin did not panic")
		}
	}()
	ctx.End()
}

func TestPlotOutsideBeginPanics(t *testing.T) {
	ctx, _, _ := newTestContext()
	defer func() {
		if recover() == nil {
			t.Error("PlotSeries outside Begin did not panic")
		}
	}()
	ctx.PlotSeries(NewSeries(Line, "x"))
}

func TestBeginNotVisible(t *testing.T) {
	surf := newFakeSurface()
	ctx := NewContext(surf, NewStackLayout(0, 0, 400, 100))
	ch := newTestChart()
	if !ctx.Begin("first", ch, 0, 100) {
		t.Fatal("first chart should be visible")
	}
	ctx.End()
	surf.reset()
	if ctx.Begin("second", newTestChart(), 0, 100) {
		t.Fatal("chart below the layout should not be visible")
	}
	if len(surf.ops) != 0 {
		t.Errorf("hidden chart drew %d ops", len(surf.ops))
	}
	// No End is required, and the next Begin must work.
	if ctx.Begin("zero", newTestChart(), 0, 0) {
		t.Error("zero size chart should not be visible")
	}
}

func TestPlotLine(t *testing.T) {
	ctx, surf, layout := newTestContext()
	ch := newTestChart()
	s := NewSeries(Line, "line")
	s.Color = gg.RGB(1, 0, 0)
	s.Size = 2
	s.Points = []gg.Point{{X: 1, Y: 1}, {X: 5, Y: 5}, {X: 9, Y: 2}}

	drawFrame(t, ctx, layout, ch, Input{Cursor: gg.Pt(-1, -1)}, s)

	var lines []op
	for _, o := range surf.clipped() {
		if o.kind == "line" && o.color == s.Color {
			lines = append(lines, o)
		}
	}
	if len(lines) != 2 {
		t.Fatalf("series segments = %d, want 2", len(lines))
	}
	tf := ctx.tf
	if !nearPt(lines[0].a, tf.toPixel(s.Points[0])) || !nearPt(lines[1].b, tf.toPixel(s.Points[2])) {
		t.Errorf("segments %v do not match transformed points", lines)
	}
	if lines[0].r != 2 {
		t.Errorf("line width = %v, want 2", lines[0].r)
	}
	if st := ctx.Stats(); st.Series != 1 || st.Segments != 2 {
		t.Errorf("stats = %+v", st)
	}
	if !surf.hasText("line") {
		t.Error("legend entry missing")
	}
}

func TestPlotLineSinglePoint(t *testing.T) {
	ctx, _, layout := newTestContext()
	s := NewSeries(Line, "")
	s.Points = []gg.Point{{X: 1, Y: 1}}
	drawFrame(t, ctx, layout, newTestChart(), Input{}, s)
	if ctx.Stats().Segments != 0 {
		t.Errorf("single point drew %d segments", ctx.Stats().Segments)
	}
}

func TestPlotLineRingOrder(t *testing.T) {
	ctx, surf, layout := newTestContext()
	s := NewSeries(Line, "")
	s.Color = gg.RGB(0, 1, 0)
	for i := 0; i < 7; i++ {
		AddBuffered(s, float64(i), float64(i), 5)
	}
	// Stored: [5 6 2 3 4], cursor 2. Drawn: 2-3, 3-4, 4-5, 5-6.
	drawFrame(t, ctx, layout, newTestChart(), Input{}, s)
	var lines []op
	for _, o := range surf.clipped() {
		if o.kind == "line" && o.color == s.Color {
			lines = append(lines, o)
		}
	}
	if len(lines) != 4 {
		t.Fatalf("segments = %d, want 4", len(lines))
	}
	tf := ctx.tf
	if !nearPt(lines[0].a, tf.toPixel(gg.Pt(2, 2))) {
		t.Errorf("first segment starts at %v, want the oldest point", lines[0].a)
	}
	if !nearPt(lines[3].b, tf.toPixel(gg.Pt(6, 6))) {
		t.Errorf("last segment ends at %v, want the newest point", lines[3].b)
	}
}

func TestPlotLineCulling(t *testing.T) {
	ctx, _, layout := newTestContext()
	s := NewSeries(Line, "")
	for i := -5000; i < 5000; i++ {
		s.Points = append(s.Points, gg.Pt(float64(i), 5))
	}
	drawFrame(t, ctx, layout, newTestChart(), Input{}, s)
	st := ctx.Stats()
	if st.Segments+st.Culled != len(s.Points)-1 {
		t.Errorf("segments %d + culled %d != %d", st.Segments, st.Culled, len(s.Points)-1)
	}
	if st.Segments > 20 {
		t.Errorf("drew %d segments for a 10 unit window", st.Segments)
	}
}

func TestPlotScatterAndBars(t *testing.T) {
	ctx, surf, layout := newTestContext()
	sc := NewSeries(Scatter, "scatter")
	sc.Size = 4
	sc.Points = []gg.Point{{X: 1, Y: 1}, {X: 20, Y: 1}}
	xb := NewSeries(XBar, "xbar")
	xb.Size = 1
	xb.Color = gg.RGB(0, 0, 1)
	xb.Points = []gg.Point{{X: 2, Y: 4}, {X: 4, Y: 0}, {X: 6, Y: -3}}
	yb := NewSeries(YBar, "ybar")
	yb.Color = gg.RGB(1, 0, 1)
	yb.Points = []gg.Point{{X: 0, Y: 1}, {X: 3, Y: 8}}

	drawFrame(t, ctx, layout, newTestChart(), Input{}, sc, xb, yb)
	clipped := surf.clipped()

	if n := surf.count("circle", clipped); n != 1 {
		t.Errorf("circles = %d, want 1 (second point culled)", n)
	}
	tf := ctx.tf
	var xbars, ybars []Rect
	for _, o := range clipped {
		if o.kind != "rect" {
			continue
		}
		switch o.color {
		case xb.Color:
			xbars = append(xbars, o.rect)
		case yb.Color:
			ybars = append(ybars, o.rect)
		}
	}
	if len(xbars) != 2 {
		t.Fatalf("x bars = %d, want 2 (zero height skipped)", len(xbars))
	}
	want := tf.dataRect(1.5, 0, 2.5, 4)
	if !nearPt(xbars[0].Min, want.Min) || !nearPt(xbars[0].Max, want.Max) {
		t.Errorf("x bar = %+v, want %+v", xbars[0], want)
	}
	if len(ybars) != 1 {
		t.Fatalf("y bars = %d, want 1 (zero width skipped)", len(ybars))
	}
	want = tf.dataRect(0, 7.75, 3, 8.25)
	if !nearPt(ybars[0].Min, want.Min) || !nearPt(ybars[0].Max, want.Max) {
		t.Errorf("y bar = %+v, want %+v", ybars[0], want)
	}
}

func TestHiddenSeries(t *testing.T) {
	ctx, surf, layout := newTestContext()
	s := NewSeries(Scatter, "hidden")
	s.Visible = false
	s.Points = []gg.Point{{X: 1, Y: 1}}
	drawFrame(t, ctx, layout, newTestChart(), Input{}, s)
	if surf.count("circle", surf.ops) != 0 || surf.hasText("hidden") {
		t.Error("hidden series was drawn or listed in the legend")
	}
}

func TestAutoColorsCycle(t *testing.T) {
	ctx, surf, layout := newTestContext(WithPalette(gg.RGB(1, 0, 0), gg.RGB(0, 1, 0)))
	var items []*Series
	for i := 0; i < 3; i++ {
		s := NewSeries(Scatter, "")
		s.Points = []gg.Point{{X: 5, Y: 5}}
		items = append(items, s)
	}
	drawFrame(t, ctx, layout, newTestChart(), Input{}, items...)
	var got []gg.RGBA
	for _, o := range surf.ops {
		if o.kind == "circle" {
			got = append(got, o.color)
		}
	}
	want := []gg.RGBA{gg.RGB(1, 0, 0), gg.RGB(0, 1, 0), gg.RGB(1, 0, 0)}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("series %d color = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPlotXY(t *testing.T) {
	ctx, surf, layout := newTestContext()
	ch := newTestChart()
	layout.Reset()
	if !ctx.Begin("xy", ch, 0, 0) {
		t.Fatal("Begin failed")
	}
	xs := []float64{1, 2, 3, 4, 5, 6}
	ys := []float64{1, 2, 3, 4, 5}
	ctx.PlotXY(Scatter, "xy", xs, ys, 2)
	ctx.End()
	if n := surf.count("circle", surf.ops); n != 3 {
		t.Errorf("circles = %d, want 3 (stride 2 over 5 pairs)", n)
	}
}

func TestTickLabels(t *testing.T) {
	ctx, surf, layout := newTestContext()
	ch := newTestChart()
	drawFrame(t, ctx, layout, ch, Input{})
	for _, want := range []string{"0", "5", "10"} {
		if !surf.hasText(want) {
			t.Errorf("missing tick label %q", want)
		}
	}

	surf.reset()
	ch.X.ShowLabels = false
	ch.Y.ShowLabels = false
	drawFrame(t, ctx, layout, ch, Input{})
	if surf.hasText("5") {
		t.Error("tick labels drawn with ShowLabels off")
	}
}

func TestTickFormatter(t *testing.T) {
	ctx, surf, layout := newTestContext(WithTickFormatter(func(v float64) string { return "<" + ticks.FormatDefault(v) + ">" }))
	drawFrame(t, ctx, layout, newTestChart(), Input{})
	if !surf.hasText("<5>") {
		t.Error("custom formatter not used")
	}
}

func TestLocaleFormatter(t *testing.T) {
	o := defaultOptions()
	WithLocale(language.English)(&o)
	if got := o.format(2.5); !strings.Contains(got, "2.5") {
		t.Errorf("english tick label = %q, want it to contain %q", got, "2.5")
	}
	if got := o.format(0.30000000000000004); strings.Contains(got, "00000") {
		t.Errorf("noisy tick label = %q", got)
	}
}

func TestCrosshairAndReadout(t *testing.T) {
	ctx, surf, layout := newTestContext()
	ch := newTestChart()
	drawFrame(t, ctx, layout, ch, Input{})
	if ctx.CursorHidden() {
		t.Fatal("cursor hidden without hover")
	}

	grid := ctx.Grid()
	center := gg.Pt((grid.Min.X+grid.Max.X)/2, (grid.Min.Y+grid.Max.Y)/2)
	surf.reset()
	drawFrame(t, ctx, layout, ch, Input{Cursor: center})
	if !ctx.CursorHidden() {
		t.Error("crosshair did not hide the cursor")
	}
	if !surf.hasText("5.00,5.00") {
		t.Error("mouse readout missing")
	}
	cross := 0
	for _, o := range surf.ops {
		if o.kind == "line" && o.color == ctx.theme.Crosshair {
			cross++
		}
	}
	if cross != 4 {
		t.Errorf("crosshair segments = %d, want 4", cross)
	}

	surf.reset()
	ch.ShowCrosshairs = false
	ch.ShowMousePos = false
	drawFrame(t, ctx, layout, ch, Input{Cursor: center})
	if ctx.CursorHidden() || surf.hasText("5.00,5.00") {
		t.Error("overlays drawn while disabled")
	}
}

func TestScrollZoomThroughContext(t *testing.T) {
	ctx, _, layout := newTestContext()
	ch := newTestChart()
	drawFrame(t, ctx, layout, ch, Input{})
	grid := ctx.Grid()
	center := gg.Pt((grid.Min.X+grid.Max.X)/2, (grid.Min.Y+grid.Max.Y)/2)

	drawFrame(t, ctx, layout, ch, Input{Cursor: center, Scroll: 1})
	if ch.X.Range() >= 10 || ch.Y.Range() >= 10 {
		t.Errorf("ranges after zoom in = %v, %v", ch.X.Range(), ch.Y.Range())
	}

	// The frame outside the grid does not zoom.
	before := ch.X.Range()
	drawFrame(t, ctx, layout, ch, Input{Cursor: gg.Pt(2, center.Y), Scroll: 1})
	if ch.X.Range() != before {
		t.Error("scroll over the axis labels zoomed the chart")
	}
}

func TestSelectionOverlay(t *testing.T) {
	ctx, surf, layout := newTestContext()
	ch := newTestChart()
	drawFrame(t, ctx, layout, ch, Input{})
	grid := ctx.Grid()
	start := gg.Pt(grid.Min.X+10, grid.Min.Y+10)

	var in Input
	in = in.Step(start, [NumButtons]bool{false, true}, 0)
	drawFrame(t, ctx, layout, ch, in)
	in = in.Step(start.Add(gg.Pt(50, 40)), [NumButtons]bool{false, true}, 0)
	surf.reset()
	drawFrame(t, ctx, layout, ch, in)
	found := false
	for _, o := range surf.ops {
		if o.kind == "rect" && o.color == withAlpha(ctx.theme.Selection, 0.25) {
			found = true
		}
	}
	if !found {
		t.Error("selection rectangle not drawn while selecting")
	}
}

func TestDegenerateAxisCorrected(t *testing.T) {
	ctx, _, layout := newTestContext()
	ch := newTestChart()
	ch.X.Min, ch.X.Max = 3, 3
	drawFrame(t, ctx, layout, ch, Input{})
	if !(ch.X.Max > ch.X.Min) {
		t.Errorf("x range not corrected: [%v, %v]", ch.X.Min, ch.X.Max)
	}
}

func TestPopupToggle(t *testing.T) {
	ctx, surf, layout := newTestContext()
	ch := newTestChart()
	ch.popupOpen = true
	ch.popupPos = gg.Pt(60, 40)
	drawFrame(t, ctx, layout, ch, Input{})
	if !surf.hasText("Lock Min") {
		t.Fatal("popup not drawn")
	}

	var lockMin Rect
	for _, r := range ctx.popupRows {
		if r.label == "Lock Min" {
			lockMin = r.rect
			break
		}
	}
	click := gg.Pt((lockMin.Min.X+lockMin.Max.X)/2, (lockMin.Min.Y+lockMin.Max.Y)/2)

	var in Input
	in = in.Step(click, [NumButtons]bool{true, false}, 0)
	drawFrame(t, ctx, layout, ch, in)
	if !ch.X.LockMin {
		t.Error("click on Lock Min did not toggle it")
	}
	if ch.State() != Idle {
		t.Errorf("popup click started %v", ch.State())
	}

	// Click outside closes the popup.
	in = in.Step(click, [NumButtons]bool{}, 0)
	drawFrame(t, ctx, layout, ch, in)
	in = in.Step(gg.Pt(390, 290), [NumButtons]bool{true, false}, 0)
	drawFrame(t, ctx, layout, ch, in)
	if ch.PopupOpen() {
		t.Error("click outside did not close the popup")
	}
}

func TestPlotLineAfterDirectTruncate(t *testing.T) {
	ctx, _, layout := newTestContext()
	ch := newTestChart()
	s := NewSeries(Line, "")
	for i := 0; i < 18; i++ {
		AddBuffered(s, float64(i%10), 5, 10)
	}
	s.Points = s.Points[:0]
	s.Points = append(s.Points, gg.Pt(1, 1), gg.Pt(2, 2), gg.Pt(3, 3))

	drawFrame(t, ctx, layout, ch, Input{}, s)
	if got := ctx.Stats().Segments; got != 2 {
		t.Errorf("segments = %d, want 2", got)
	}
	// The Context is released and draws the next frame.
	drawFrame(t, ctx, layout, ch, Input{}, s)
}

func TestUnknownKindNotInLegend(t *testing.T) {
	ctx, surf, layout := newTestContext()
	bad := NewSeries(Kind(42), "mystery")
	bad.Points = []gg.Point{{X: 1, Y: 1}}
	good := NewSeries(Scatter, "known")
	good.Points = []gg.Point{{X: 2, Y: 2}}

	drawFrame(t, ctx, layout, newTestChart(), Input{}, bad, good)
	if surf.hasText("mystery") {
		t.Error("series of unknown kind listed in the legend")
	}
	if !surf.hasText("known") {
		t.Error("legend entry for the known series missing")
	}
	if ctx.Stats().Series != 1 {
		t.Errorf("series drawn = %d, want 1", ctx.Stats().Series)
	}
}
