// Command ggplot-demo shows live ggplot charts in an ebiten window.
//
// Drag with the left button to pan, scroll to zoom, drag with the right
// button to zoom to a box, and right click to open the axis settings.
// P pauses the producer, C clears all series.
package main

import (
	"context"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gogpu/gg"
	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/integration/ebitenplot"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/text/language"
)

var cli struct {
	Width   int           `help:"Window width." default:"960"`
	Height  int           `help:"Window height." default:"900"`
	Period  time.Duration `help:"Sample period of the producer." default:"10ms"`
	Span    float64       `help:"X span of the rolling chart in seconds." default:"10"`
	History float64       `help:"Seconds shown by the scrolling chart." default:"10"`
	Points  int           `help:"Capacity of the ring buffered series." default:"2000"`
	Light   bool          `help:"Use the light theme."`
	Locale  string        `help:"BCP 47 tag used to format numbers." default:"en"`
	Debug   bool          `help:"Log chart events to stderr."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("ggplot-demo"),
		kong.Description("Interactive live charts drawn with ggplot."),
	)
	if cli.Debug {
		ggplot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if err := run(); err != nil {
		slog.Error("ggplot-demo failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	tag, err := language.Parse(cli.Locale)
	if err != nil {
		return err
	}
	theme := ggplot.DarkTheme()
	if cli.Light {
		theme = ggplot.LightTheme()
	}

	canvas, err := ebitenplot.New(cli.Width, cli.Height, nil)
	if err != nil {
		return err
	}
	defer canvas.Close()

	g := newGame(canvas, theme, tag)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go g.feed.produce(ctx, cli.Period)

	ebiten.SetWindowTitle("ggplot demo")
	ebiten.SetWindowSize(cli.Width, cli.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

// feed owns the live series. The producer goroutine and the draw loop both
// hold mu while touching them.
type feed struct {
	mu     sync.Mutex
	t      float64
	paused bool

	sine, cosine *ggplot.Series
	noise, walk  *ggplot.Series
}

func newFeed() *feed {
	f := &feed{
		sine:   ggplot.NewSeries(ggplot.Line, "sin(t)"),
		cosine: ggplot.NewSeries(ggplot.Line, "cos(t)"),
		noise:  ggplot.NewSeries(ggplot.Scatter, "noise"),
		walk:   ggplot.NewSeries(ggplot.Line, "random walk"),
	}
	f.noise.Size = 1.5
	return f
}

func (f *feed) produce(ctx context.Context, period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	var walk float64
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		f.mu.Lock()
		if !f.paused {
			f.t += period.Seconds()
			t := f.t
			ggplot.AddRolling(f.sine, t, math.Sin(t), cli.Span)
			ggplot.AddRolling(f.cosine, t, math.Cos(t), cli.Span)
			walk += rand.NormFloat64() * 0.05
			ggplot.AddBuffered(f.walk, t, walk, cli.Points)
			ggplot.AddBuffered(f.noise, t, walk+rand.NormFloat64()*0.2, cli.Points)
		}
		f.mu.Unlock()
	}
}

func (f *feed) clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range []*ggplot.Series{f.sine, f.cosine, f.noise, f.walk} {
		s.Clear()
	}
}

type game struct {
	canvas *ebitenplot.Canvas
	poller *ebitenplot.Poller
	layout *ggplot.StackLayout
	ctx    *ggplot.Context
	bg     gg.RGBA
	feed   *feed

	rolling, scrolling, static *ggplot.Chart
	bars, ybars, dots          *ggplot.Series
}

func newGame(canvas *ebitenplot.Canvas, theme ggplot.Theme, tag language.Tag) *game {
	w, h := canvas.Size()
	layout := ggplot.NewStackLayout(0, 0, float64(w), float64(h))
	g := &game{
		canvas: canvas,
		poller: ebitenplot.NewPoller(),
		layout: layout,
		ctx:    ggplot.NewContext(canvas.Surface(), layout, ggplot.WithTheme(theme), ggplot.WithLocale(tag)),
		bg:     theme.WindowBg,
		feed:   newFeed(),
	}

	g.rolling = ggplot.NewChart("Rolling", "t mod span [s]", "value")
	g.rolling.X.SetRange(0, cli.Span)
	g.rolling.Y.SetRange(-1.2, 1.2)

	g.scrolling = ggplot.NewChart("Scrolling", "t [s]", "value")
	g.scrolling.Y.SetRange(-2, 2)

	g.static = ggplot.NewChart("Bars and markers", "x", "y")
	g.static.X.SetRange(-1, 11)
	g.static.Y.SetRange(-6, 12)
	g.bars = ggplot.NewSeries(ggplot.XBar, "x bars")
	g.ybars = ggplot.NewSeries(ggplot.YBar, "y bars")
	g.ybars.Size = 0.8
	g.dots = ggplot.NewSeries(ggplot.Scatter, "markers")
	for i := 0; i <= 10; i++ {
		x := float64(i)
		g.bars.Points = append(g.bars.Points, gg.Pt(x, 10*math.Sin(x/3)))
		g.dots.Points = append(g.dots.Points, gg.Pt(x, x-5))
	}
	for i := 0; i < 3; i++ {
		g.ybars.Points = append(g.ybars.Points, gg.Pt(float64(2+3*i), float64(-4+2*i)))
	}
	return g
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.feed.mu.Lock()
		g.feed.paused = !g.feed.paused
		g.feed.mu.Unlock()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.feed.clear()
	}
	g.ctx.SetInput(g.poller.Poll())
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	_ = g.canvas.Draw(func(dc *gg.Context) { dc.ClearWithColor(g.bg) })
	g.layout.Reset()
	_, h := g.canvas.Size()
	rowH := (float64(h) - 2*g.layout.Spacing) / 3

	f := g.feed
	f.mu.Lock()
	g.ctx.Render("rolling", g.rolling, 0, rowH, []*ggplot.Series{f.sine, f.cosine})
	ggplot.ScrollAxis(&g.scrolling.X, f.t, cli.History)
	g.ctx.Render("scrolling", g.scrolling, 0, rowH, []*ggplot.Series{f.walk, f.noise})
	f.mu.Unlock()

	g.ctx.Render("static", g.static, 0, 0, []*ggplot.Series{g.bars, g.ybars, g.dots})

	g.poller.SyncCursor(g.ctx.CursorHidden())
	if err := g.canvas.DrawTo(screen, nil); err != nil {
		slog.Warn("ggplot-demo: draw", "err", err)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if err := g.canvas.Resize(outsideWidth, outsideHeight); err == nil {
		g.layout.Bounds = ggplot.R(0, 0, float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}
