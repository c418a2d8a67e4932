package ggplot

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontSize is the label size used by NewCanvasSurface when no face is
// given.
const DefaultFontSize = 13

var defaultSource = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// DefaultFace returns the embedded Go Regular font at the given size.
// The font source is parsed once and shared.
func DefaultFace(size float64) (text.Face, error) {
	src, err := defaultSource()
	if err != nil {
		return nil, fmt.Errorf("ggplot: load default font: %w", err)
	}
	return src.Face(size), nil
}
