// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitenplot hosts ggplot charts in an ebiten game.
//
// The data flow per frame is:
//
//	ebiten input -> Poller -> ggplot.Input
//	ggplot.Context (draw) -> gg.Context pixmap -> ebiten.Image -> screen
//
// # Usage
//
//	canvas, err := ebitenplot.New(800, 600, nil)
//	if err != nil {
//	    return err
//	}
//	defer canvas.Close()
//	poller := ebitenplot.NewPoller()
//	ctx := ggplot.NewContext(canvas.Surface(), layout)
//
//	// In Game.Update:
//	ctx.SetInput(poller.Poll())
//
//	// In Game.Draw:
//	canvas.Clear()
//	if ctx.Begin("signal", chart, 0, 0) {
//	    ctx.PlotSeries(series)
//	    ctx.End()
//	}
//	poller.SyncCursor(ctx.CursorHidden())
//	canvas.DrawTo(screen, nil)
//
// # Thread Safety
//
// Canvas and Poller must be used from the ebiten game goroutine only.
package ebitenplot
