package ggplot

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

func TestCanvasSurfaceDrawsBars(t *testing.T) {
	dc := gg.NewContext(200, 150)
	surf, err := NewCanvasSurface(dc, nil)
	if err != nil {
		t.Fatalf("NewCanvasSurface: %v", err)
	}
	ctx := NewContext(surf, NewStackLayout(0, 0, 200, 150))

	ch := NewChart("", "", "")
	ch.X.SetRange(0, 10)
	ch.Y.SetRange(0, 10)
	bar := NewSeries(XBar, "")
	bar.Color = gg.RGB(1, 0, 0)
	bar.Size = 10
	bar.Points = []gg.Point{{X: 5, Y: 10}}

	if !ctx.Render("bars", ch, 0, 0, []*Series{bar}) {
		t.Fatal("chart not visible")
	}

	g := ctx.Grid()
	cx, cy := int((g.Min.X+g.Max.X)/2), int((g.Min.Y+g.Max.Y)/2)
	r, gr, b, a := dc.Image().At(cx, cy).RGBA()
	if r>>8 < 200 || gr>>8 > 50 || b>>8 > 50 || a>>8 < 200 {
		t.Errorf("grid center = (%d, %d, %d, %d), want opaque red", r>>8, gr>>8, b>>8, a>>8)
	}

	// The frame corner is outside the grid and keeps the frame color.
	r, _, _, _ = dc.Image().At(1, 1).RGBA()
	if r>>8 > 150 {
		t.Errorf("frame corner red = %d, bar leaked outside the grid", r>>8)
	}
}

func TestCanvasSurfaceMeasure(t *testing.T) {
	dc := gg.NewContext(50, 50)
	surf, err := NewCanvasSurface(dc, nil)
	if err != nil {
		t.Fatalf("NewCanvasSurface: %v", err)
	}
	w1, h := surf.MeasureText("1")
	w3, _ := surf.MeasureText("100")
	if w1 <= 0 || h <= 0 {
		t.Fatalf("MeasureText(\"1\") = %v, %v", w1, h)
	}
	if w3 <= w1 {
		t.Errorf("MeasureText(\"100\") = %v, not wider than %v", w3, w1)
	}
	if surf.Context() != dc {
		t.Error("Context() returned a different context")
	}
}

func TestRecorderSurface(t *testing.T) {
	rec := recording.NewRecorder(300, 200)
	surf := NewRecorderSurface(rec, nil)
	if surf.Recorder() != rec {
		t.Fatal("Recorder() returned a different recorder")
	}
	ctx := NewContext(surf, NewStackLayout(0, 0, 300, 200))

	ch := NewChart("Recorded", "x", "y")
	s := NewSeries(Line, "line")
	s.Points = []gg.Point{{X: 0.1, Y: 0.1}, {X: 0.9, Y: 0.8}}
	if !ctx.Render("rec", ch, 0, 0, []*Series{s}) {
		t.Fatal("chart not visible")
	}

	var fills, strokes, texts, saves, restores int
	for _, cmd := range rec.FinishRecording().Commands() {
		switch c := cmd.(type) {
		case recording.FillRectCommand:
			fills++
		case recording.StrokePathCommand:
			strokes++
		case recording.DrawTextCommand:
			if c.Text != "" {
				texts++
			}
		case recording.SaveCommand:
			saves++
		case recording.RestoreCommand:
			restores++
		}
	}
	if fills < 2 {
		t.Errorf("fill rect commands = %d, want frame and background", fills)
	}
	if strokes == 0 {
		t.Error("no stroke commands recorded")
	}
	if texts == 0 {
		t.Error("no text commands recorded")
	}
	if saves != restores || saves == 0 {
		t.Errorf("save/restore = %d/%d, want balanced clip", saves, restores)
	}
}

func TestThemes(t *testing.T) {
	for _, tt := range []struct {
		name  string
		theme Theme
	}{
		{"dark", DarkTheme()},
		{"light", LightTheme()},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.theme.Palette) == 0 {
				t.Error("empty palette")
			}
			if tt.theme.MajorTick <= tt.theme.MinorTick {
				t.Errorf("major tick %v not longer than minor %v", tt.theme.MajorTick, tt.theme.MinorTick)
			}
			n := len(tt.theme.Palette)
			if tt.theme.paletteColor(n) != tt.theme.paletteColor(0) {
				t.Error("palette does not cycle")
			}
		})
	}
	if got := resolve(Auto, gg.RGB(0, 1, 0)); got != gg.RGB(0, 1, 0) {
		t.Errorf("resolve(Auto) = %v", got)
	}
	red := gg.RGB(1, 0, 0)
	if got := resolve(red, gg.RGB(0, 1, 0)); got != red {
		t.Errorf("resolve(red) = %v", got)
	}
}
