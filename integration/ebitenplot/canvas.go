// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenplot

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/ggplot"
	"github.com/hajimehoshi/ebiten/v2"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("ebitenplot: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("ebitenplot: invalid dimensions")
)

// Canvas is a gg.Context whose pixels are uploaded to an ebiten.Image.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	ctx         *gg.Context
	surf        *ggplot.CanvasSurface
	img         *ebiten.Image
	dirty       bool
	sizeChanged bool
	width       int
	height      int
	closed      bool
}

// New creates a Canvas of the given size. A nil face uses the default
// label font.
//
// Returns error if dimensions are invalid or the font cannot be loaded.
func New(width, height int, face text.Face) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	dc := gg.NewContext(width, height)
	surf, err := ggplot.NewCanvasSurface(dc, face)
	if err != nil {
		_ = dc.Close()
		return nil, fmt.Errorf("ebitenplot: %w", err)
	}
	return &Canvas{
		ctx:    dc,
		surf:   surf,
		width:  width,
		height: height,
		dirty:  true,
	}, nil
}

// Context returns the gg drawing context, or nil if the canvas is closed.
func (c *Canvas) Context() *gg.Context {
	if c.closed {
		return nil
	}
	return c.ctx
}

// Surface returns the chart surface drawing into the canvas and marks the
// canvas dirty.
func (c *Canvas) Surface() *ggplot.CanvasSurface {
	c.dirty = true
	return c.surf
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// MarkDirty flags the canvas for upload on the next Flush.
func (c *Canvas) MarkDirty() { c.dirty = true }

// IsDirty reports whether the canvas has pending changes.
func (c *Canvas) IsDirty() bool { return c.dirty }

// Clear fills the canvas with transparent black and marks it dirty.
func (c *Canvas) Clear() error {
	if c.closed {
		return ErrCanvasClosed
	}
	c.ctx.ClearWithColor(gg.Transparent)
	c.dirty = true
	return nil
}

// Draw calls fn with the gg context and marks the canvas as dirty.
func (c *Canvas) Draw(fn func(*gg.Context)) error {
	if c.closed {
		return ErrCanvasClosed
	}
	fn(c.ctx)
	c.dirty = true
	return nil
}

// Resize changes canvas dimensions. It clears the canvas and replaces the
// ebiten image on the next Flush.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if c.width == width && c.height == height {
		return nil
	}
	if err := c.ctx.Resize(width, height); err != nil {
		return fmt.Errorf("ebitenplot: context resize failed: %w", err)
	}
	c.width = width
	c.height = height
	c.sizeChanged = true
	c.dirty = true
	return nil
}

// Flush uploads the pixmap to the ebiten image if dirty and returns the image.
// The image is created lazily on first Flush.
func (c *Canvas) Flush() (*ebiten.Image, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}
	if c.sizeChanged && c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
	c.sizeChanged = false
	if c.img == nil {
		c.img = ebiten.NewImage(c.width, c.height)
		c.dirty = true
	}
	if !c.dirty {
		return c.img, nil
	}
	if err := c.ctx.FlushGPU(); err != nil {
		ggplot.Logger().Warn("ebitenplot: gpu flush failed", "err", err)
	}
	c.img.WritePixels(c.ctx.ResizeTarget().Data())
	c.dirty = false
	return c.img, nil
}

// DrawTo flushes the canvas and draws it onto dst.
func (c *Canvas) DrawTo(dst *ebiten.Image, op *ebiten.DrawImageOptions) error {
	img, err := c.Flush()
	if err != nil {
		return err
	}
	dst.DrawImage(img, op)
	return nil
}

// Close releases the context and the ebiten image. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
	if c.ctx != nil {
		_ = c.ctx.Close()
		c.ctx = nil
	}
	return nil
}
