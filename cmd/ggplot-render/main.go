// Command ggplot-render draws charts described in a YAML file to an image.
//
// PNG output is rasterized with gg directly. Any other format names a
// gg/recording backend, for example "raster"; vector backends such as
// gg-pdf or gg-svg are available once linked into the binary.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/ggplot"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"

	// Register the raster recording backend.
	_ "github.com/gogpu/gg/recording/backends/raster"
)

type Globals struct {
	Verbose bool `short:"v" help:"Log chart events to stderr."`
}

var cli struct {
	Globals

	Render   renderCmd   `cmd:"" help:"Render a chart description."`
	Example  exampleCmd  `cmd:"" help:"Print an example chart description."`
	Backends backendsCmd `cmd:"" help:"List registered recording backends."`
}

type renderCmd struct {
	Input  string `arg:"" name:"input" help:"YAML chart description." type:"existingfile"`
	Output string `name:"output" short:"o" help:"Output file." default:"chart.png"`
	Format string `name:"format" short:"f" help:"Output format: png or a recording backend name. Defaults to the output extension."`
}

func (r *renderCmd) Run(*Globals) error {
	doc, err := loadDocument(r.Input)
	if err != nil {
		return err
	}
	format := r.Format
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(r.Output), ".")
	}
	if format == "png" {
		err = renderPNG(doc, r.Output)
	} else {
		err = renderRecording(doc, format, r.Output)
	}
	if err != nil {
		return err
	}
	slog.Info("chart rendered", "output", r.Output, "format", format, "charts", len(doc.Charts))
	return nil
}

type exampleCmd struct{}

func (exampleCmd) Run(*Globals) error {
	out, err := yaml.Marshal(exampleDocument())
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

type backendsCmd struct{}

func (backendsCmd) Run(*Globals) error {
	fmt.Println("png")
	for _, name := range recording.Backends() {
		fmt.Println(name)
	}
	return nil
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("ggplot-render"),
		kong.Description("Render ggplot charts from a YAML description."),
		kong.UsageOnError(),
	)
	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
		ggplot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	ctx.FatalIfErrorf(ctx.Run(&cli.Globals))
}

// drawDocument draws every chart of doc onto surf, stacked top to bottom.
func drawDocument(doc *document, surf ggplot.Surface) error {
	theme, err := doc.theme()
	if err != nil {
		return err
	}
	opts := []ggplot.ContextOption{ggplot.WithTheme(theme)}
	if doc.Locale != "" {
		tag, err := language.Parse(doc.Locale)
		if err != nil {
			return fmt.Errorf("ggplot-render: locale: %w", err)
		}
		opts = append(opts, ggplot.WithLocale(tag))
	}
	layout := ggplot.NewStackLayout(0, 0, float64(doc.Width), float64(doc.Height))
	ctx := ggplot.NewContext(surf, layout, opts...)

	// Charts without a height share the space evenly.
	h := float64(doc.Height) - layout.Spacing*float64(len(doc.Charts)-1)
	h /= float64(len(doc.Charts))
	for i := range doc.Charts {
		cc := &doc.Charts[i]
		ch, items := cc.build()
		ch.EnableControls = false
		ch.EnableSelection = false
		height := cc.Height
		if height <= 0 {
			height = h
		}
		id := fmt.Sprintf("chart%d", i)
		if !ctx.Render(id, ch, 0, height, items) {
			slog.Warn("chart does not fit", "chart", id, "title", cc.Title)
		}
	}
	return nil
}

func renderPNG(doc *document, path string) error {
	dc := gg.NewContext(doc.Width, doc.Height)
	defer dc.Close()

	theme, err := doc.theme()
	if err != nil {
		return err
	}
	dc.ClearWithColor(theme.WindowBg)
	surf, err := ggplot.NewCanvasSurface(dc, nil)
	if err != nil {
		return err
	}
	if err := drawDocument(doc, surf); err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("ggplot-render: save %s: %w", path, err)
	}
	return nil
}

func renderRecording(doc *document, format, path string) error {
	backend, err := recording.NewBackend(format)
	if err != nil {
		return fmt.Errorf("ggplot-render: %w", err)
	}
	fb, ok := backend.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("ggplot-render: backend %q cannot write files", format)
	}

	theme, err := doc.theme()
	if err != nil {
		return err
	}
	face, err := ggplot.DefaultFace(ggplot.DefaultFontSize)
	if err != nil {
		return err
	}
	rec := recording.NewRecorder(doc.Width, doc.Height)
	rec.SetColor(theme.WindowBg)
	rec.FillRectangle(0, 0, float64(doc.Width), float64(doc.Height))
	if err := drawDocument(doc, ggplot.NewRecorderSurface(rec, face)); err != nil {
		return err
	}
	if err := rec.FinishRecording().Playback(backend); err != nil {
		return fmt.Errorf("ggplot-render: playback: %w", err)
	}
	if err := fb.SaveToFile(path); err != nil {
		return fmt.Errorf("ggplot-render: save %s: %w", path, err)
	}
	return nil
}
