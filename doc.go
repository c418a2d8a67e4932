// Package ggplot draws interactive 2-D charts in immediate mode on top of gg.
//
// # Overview
//
// A chart is redrawn every frame from caller-owned values: a Chart holding
// two Axis values and interaction state, and any number of Series. There is
// no retained scene. Pointer input for the frame is handed to a Context,
// which pans, zooms and box-selects the chart in place while drawing it.
//
// # Quick Start
//
//	dc := gg.NewContext(800, 400)
//	surf, err := ggplot.NewCanvasSurface(dc, nil)
//	if err != nil {
//	    return err
//	}
//	ctx := ggplot.NewContext(surf, ggplot.NewStackLayout(0, 0, 800, 400))
//
//	chart := ggplot.NewChart("Signal", "t", "value")
//	series := ggplot.NewSeries(ggplot.Line, "sin")
//	for i := 0; i < 100; i++ {
//	    x := float64(i) / 10
//	    ggplot.AddBuffered(series, x, math.Sin(x), 1000)
//	}
//	chart.X.SetRange(0, 10)
//	chart.Y.SetRange(-1, 1)
//
//	ctx.SetInput(in)
//	if ctx.Begin("signal", chart, 0, 0) {
//	    ctx.PlotSeries(series)
//	    ctx.End()
//	}
//
// # Interaction
//
// While the pointer is over the grid:
//
//   - primary drag pans both axes
//   - the wheel zooms around the cursor
//   - secondary drag selects a box and zooms to it on release
//   - a primary click during a selection cancels it
//   - a secondary click without dragging opens the axis settings popup
//
// Locked axis bounds never move.
//
// # Surfaces
//
// Drawing goes through the Surface interface. CanvasSurface rasterizes with
// a gg.Context; RecorderSurface records into a gg/recording.Recorder for
// playback to raster or vector backends. Package ebitenplot in
// integration/ebitenplot hosts charts in an ebiten window.
//
// # Live data
//
// Rolling and Buffering append samples to a series with two different
// wraparound policies. Neither locks; see Feeder.
//
// # Logging
//
// The package logs through log/slog and is silent by default. Use SetLogger
// or the WithLogger option to enable output.
package ggplot
