package ggplot

import "github.com/gogpu/gg"

// Theme supplies the colors Auto resolves to and the chart metrics.
type Theme struct {
	Text       gg.RGBA
	WindowBg   gg.RGBA
	FrameBg    gg.RGBA
	PlotBg     gg.RGBA
	Border     gg.RGBA
	Selection  gg.RGBA
	Crosshair  gg.RGBA
	PopupBg    gg.RGBA
	PopupHover gg.RGBA

	// Palette is cycled for series with an Auto color.
	Palette []gg.RGBA

	// Padding is the space between the frame edge and its contents.
	Padding float64

	// MajorTick and MinorTick are tick mark lengths in pixels.
	MajorTick float64
	MinorTick float64

	// GridAlpha and MinorGridAlpha scale the axis color alpha for grid lines.
	GridAlpha      float64
	MinorGridAlpha float64
}

// DefaultPalette is the series palette shared by the built-in themes.
func DefaultPalette() []gg.RGBA {
	return []gg.RGBA{
		gg.Hex("#00bfff"),
		gg.Hex("#ff4040"),
		gg.Hex("#40ff40"),
		gg.Hex("#ffd700"),
		gg.Hex("#da70d6"),
		gg.Hex("#ff8c00"),
		gg.Hex("#7fffd4"),
		gg.Hex("#f5f5f5"),
	}
}

// DarkTheme returns the default theme.
func DarkTheme() Theme {
	return Theme{
		Text:           gg.RGB(1, 1, 1),
		WindowBg:       gg.RGBA2(0.06, 0.06, 0.06, 0.94),
		FrameBg:        gg.RGBA2(0.16, 0.29, 0.48, 0.54),
		PlotBg:         gg.RGBA2(0, 0, 0, 0.35),
		Border:         gg.RGBA2(0.43, 0.43, 0.50, 0.50),
		Selection:      gg.RGB(1, 1, 0),
		Crosshair:      gg.RGBA2(1, 1, 1, 0.5),
		PopupBg:        gg.RGBA2(0.08, 0.08, 0.08, 0.94),
		PopupHover:     gg.RGBA2(0.26, 0.59, 0.98, 0.40),
		Palette:        DefaultPalette(),
		Padding:        8,
		MajorTick:      10,
		MinorTick:      5,
		GridAlpha:      0.25,
		MinorGridAlpha: 0.1,
	}
}

// LightTheme returns a theme for light host backgrounds.
func LightTheme() Theme {
	t := DarkTheme()
	t.Text = gg.RGB(0, 0, 0)
	t.WindowBg = gg.RGB(0.94, 0.94, 0.94)
	t.FrameBg = gg.RGB(1, 1, 1)
	t.PlotBg = gg.RGBA2(1, 1, 1, 1)
	t.Border = gg.RGBA2(0, 0, 0, 0.3)
	t.Selection = gg.RGB(0.8, 0.4, 0)
	t.Crosshair = gg.RGBA2(0, 0, 0, 0.5)
	t.PopupBg = gg.RGBA2(1, 1, 1, 0.98)
	t.PopupHover = gg.RGBA2(0.26, 0.59, 0.98, 0.30)
	return t
}

// resolve returns c, or fallback when c is Auto.
func resolve(c, fallback gg.RGBA) gg.RGBA {
	if IsAuto(c) {
		return fallback
	}
	return c
}

// withAlpha returns c with its alpha multiplied by a.
func withAlpha(c gg.RGBA, a float64) gg.RGBA {
	c.A *= a
	return c
}

// paletteColor returns the i-th palette entry, cycling.
func (t *Theme) paletteColor(i int) gg.RGBA {
	if len(t.Palette) == 0 {
		return t.Text
	}
	return t.Palette[i%len(t.Palette)]
}
