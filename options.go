package ggplot

import (
	"log/slog"
	"strconv"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggplot/ticks"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ContextOption configures a Context during creation.
//
// Example:
//
//	ctx := ggplot.NewContext(surface, layout,
//	    ggplot.WithTheme(ggplot.LightTheme()),
//	    ggplot.WithLocale(language.German))
type ContextOption func(*contextOptions)

type contextOptions struct {
	theme   Theme
	logger  *slog.Logger
	format  ticks.Formatter
	readout func(x, y float64) string
}

func defaultOptions() contextOptions {
	return contextOptions{
		theme:   DarkTheme(),
		format:  ticks.FormatDefault,
		readout: defaultReadout,
	}
}

func defaultReadout(x, y float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64) + "," + strconv.FormatFloat(y, 'f', 2, 64)
}

// WithTheme sets the theme Auto colors resolve against.
func WithTheme(t Theme) ContextOption {
	return func(o *contextOptions) {
		o.theme = t
	}
}

// WithPalette replaces the theme palette used for Auto series colors.
// Apply it after WithTheme.
func WithPalette(colors ...gg.RGBA) ContextOption {
	return func(o *contextOptions) {
		o.theme.Palette = colors
	}
}

// WithLogger sets a logger for this Context instead of the package logger.
func WithLogger(l *slog.Logger) ContextOption {
	return func(o *contextOptions) {
		o.logger = l
	}
}

// WithTickFormatter sets the function that turns tick values into labels.
func WithTickFormatter(f ticks.Formatter) ContextOption {
	return func(o *contextOptions) {
		if f != nil {
			o.format = f
		}
	}
}

// WithLocale formats tick labels and the mouse readout with the number
// conventions of tag, for example decimal commas for German.
func WithLocale(tag language.Tag) ContextOption {
	p := message.NewPrinter(tag)
	return func(o *contextOptions) {
		o.format = func(v float64) string {
			// Round to six significant digits first so that accumulated
			// floating point noise does not reach the label.
			r, err := strconv.ParseFloat(ticks.FormatDefault(v), 64)
			if err != nil {
				r = v
			}
			return p.Sprint(r)
		}
		o.readout = func(x, y float64) string {
			return p.Sprintf("%.2f, %.2f", x, y)
		}
	}
}
