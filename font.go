package img2text

import (
	"fmt"
	"image"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/wbrown/img2text/imageutil"
)

// Face is the glyph capability the compositor needs from a font: spacing
// metrics in pixels and the ability to paint a single glyph. Tests
// substitute a fixed-metrics fake.
type Face interface {
	// Advance returns the horizontal advance of the glyph for r.
	Advance(r rune) float64

	// SideBearing returns the glyph's left side bearing. It can be
	// negative for glyphs that overhang their origin.
	SideBearing(r rune) float64

	// LineHeight returns the recommended baseline-to-baseline distance.
	LineHeight() float64

	// LineGap returns the spacing the font recommends between lines
	// beyond ascent plus descent.
	LineGap() float64

	// Draw paints one glyph with the top-left of its line box at (x, y).
	Draw(dst *imageutil.RGBAImage, x, y int, r rune, c imageutil.RGB)
}

// ttfFace implements Face on a parsed TrueType font.
type ttfFace struct {
	face    font.Face
	metrics font.Metrics
}

// LoadFont parses a TrueType font file and returns a Face scaled to size
// points at 72 DPI, so one point covers one pixel.
func LoadFont(path string, size float64) (Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	f, err := freetype.ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size: size,
		DPI:  72,
	})
	return &ttfFace{face: face, metrics: face.Metrics()}, nil
}

// pixels converts a 26.6 fixed-point value to float64 pixels.
func pixels(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func (t *ttfFace) Advance(r rune) float64 {
	adv, _ := t.face.GlyphAdvance(r)
	return pixels(adv)
}

func (t *ttfFace) SideBearing(r rune) float64 {
	bounds, _, _ := t.face.GlyphBounds(r)
	return pixels(bounds.Min.X)
}

func (t *ttfFace) LineHeight() float64 {
	return pixels(t.metrics.Height)
}

func (t *ttfFace) LineGap() float64 {
	return pixels(t.metrics.Height - t.metrics.Ascent - t.metrics.Descent)
}

// Draw paints one glyph in color c. The drawer's dot sits on the
// baseline, one ascent below the cell origin, so (x, y) is the cell's
// top-left corner.
func (t *ttfFace) Draw(dst *imageutil.RGBAImage, x, y int, r rune, c imageutil.RGB) {
	d := font.Drawer{
		Dst:  dst.RGBA,
		Src:  image.NewUniform(c.ToColor()),
		Face: t.face,
		Dot: fixed.Point26_6{
			X: fixed.I(x),
			Y: fixed.I(y) + t.metrics.Ascent,
		},
	}
	d.DrawString(string(r))
}
