// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenplot

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/ggplot"
	"github.com/hajimehoshi/ebiten/v2"
)

// source is the subset of ebiten's global input state a Poller reads.
type source interface {
	CursorPosition() (x, y int)
	IsMouseButtonPressed(b ebiten.MouseButton) bool
	Wheel() (x, y float64)
	SetCursorMode(m ebiten.CursorModeType)
}

type ebitenSource struct{}

func (ebitenSource) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (ebitenSource) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}

func (ebitenSource) Wheel() (float64, float64) { return ebiten.Wheel() }

func (ebitenSource) SetCursorMode(m ebiten.CursorModeType) { ebiten.SetCursorMode(m) }

// buttons maps chart buttons to ebiten mouse buttons.
var buttons = [ggplot.NumButtons]ebiten.MouseButton{
	ggplot.Primary:   ebiten.MouseButtonLeft,
	ggplot.Secondary: ebiten.MouseButtonRight,
}

// Poller turns ebiten's pointer state into one ggplot.Input per tick.
type Poller struct {
	src    source
	in     ggplot.Input
	origin gg.Point
	hidden bool
}

// NewPoller returns a Poller reading ebiten's global input state.
func NewPoller() *Poller {
	return &Poller{src: ebitenSource{}}
}

// SetOrigin sets the screen position of the canvas top-left corner, so
// cursor positions are reported in canvas pixels.
func (p *Poller) SetOrigin(x, y float64) { p.origin = gg.Pt(x, y) }

// Poll samples the pointer and returns the input for this tick, with
// press and release edges relative to the previous Poll.
func (p *Poller) Poll() ggplot.Input {
	x, y := p.src.CursorPosition()
	var down [ggplot.NumButtons]bool
	for i, b := range buttons {
		down[i] = p.src.IsMouseButtonPressed(b)
	}
	_, wy := p.src.Wheel()
	p.in = p.in.Step(gg.Pt(float64(x), float64(y)).Sub(p.origin), down, wy)
	return p.in
}

// SyncCursor hides the host pointer while a chart draws a crosshair and
// shows it again afterwards. It only calls into ebiten on a change.
func (p *Poller) SyncCursor(hidden bool) {
	if hidden == p.hidden {
		return
	}
	p.hidden = hidden
	if hidden {
		p.src.SetCursorMode(ebiten.CursorModeHidden)
	} else {
		p.src.SetCursorMode(ebiten.CursorModeVisible)
	}
}
