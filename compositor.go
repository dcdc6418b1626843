package img2text

import (
	"errors"
	"fmt"
	"math"

	"github.com/wbrown/img2text/imageutil"
)

// ErrDegenerateMetrics reports a font whose computed cell size is zero or
// negative, which would stall the grid walk.
var ErrDegenerateMetrics = errors.New("degenerate font metrics")

// ProgressFunc is notified after each completed row of cells.
type ProgressFunc func(row, total int)

// Compositor walks an image in glyph-sized cells, painting one character
// per cell in the average color of the source pixels beneath it.
type Compositor struct {
	background imageutil.RGB
	progress   ProgressFunc
}

// Option is a functional option for configuring a Compositor.
type Option func(*Compositor)

// WithBackground sets the canvas fill color. The default is black.
func WithBackground(c imageutil.RGB) Option {
	return func(cp *Compositor) {
		cp.background = c
	}
}

// WithProgress registers a callback invoked once per completed row.
func WithProgress(fn ProgressFunc) Option {
	return func(cp *Compositor) {
		cp.progress = fn
	}
}

// NewCompositor creates a Compositor with the given options.
func NewCompositor(opts ...Option) *Compositor {
	cp := &Compositor{}
	for _, opt := range opts {
		opt(cp)
	}
	return cp
}

// Compose renders the character mosaic for src onto a fresh canvas of the
// same dimensions. Cell height is fixed for the run; cell width depends
// on each chosen glyph, so proportional fonts produce ragged cell
// columns. Cells on the right and bottom edges sample whatever part of
// them lies inside the image.
func (cp *Compositor) Compose(
	src *imageutil.RGBAImage,
	face Face,
	chars CharSource,
) (*imageutil.RGBAImage, error) {
	width, height := src.Width(), src.Height()
	out := imageutil.NewRGBAImage(width, height)
	out.Fill(cp.background)

	cellH := int(math.Ceil(face.LineHeight() - face.LineGap()))
	if cellH <= 0 {
		return nil, fmt.Errorf("%w: cell height %d", ErrDegenerateMetrics, cellH)
	}
	totalRows := (height + cellH - 1) / cellH

	row := 0
	for y := 0; y < height; y += cellH {
		for x := 0; x < width; {
			g := chars.Next()
			cellW := int(math.Ceil(face.Advance(g) + face.SideBearing(g)))
			if cellW <= 0 {
				return nil, fmt.Errorf("%w: cell width %d for %q",
					ErrDegenerateMetrics, cellW, g)
			}

			c, err := AverageColor(src, Region{X: x, Y: y, W: cellW, H: cellH})
			if err != nil {
				return nil, err
			}
			face.Draw(out, x, y, g, c)

			x += cellW
		}
		row++
		if cp.progress != nil {
			cp.progress(row, totalRows)
		}
	}

	return out, nil
}
