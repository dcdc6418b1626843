package img2text

import (
	"errors"
	"fmt"

	"github.com/wbrown/img2text/imageutil"
)

// Region is a rectangular sub-area of a pixel buffer, in pixel
// coordinates. W and H are requested dimensions; the area actually
// sampled is the intersection with the buffer.
type Region struct {
	X, Y, W, H int
}

// Clip intersects the region with [0, width) x [0, height).
func (r Region) Clip(width, height int) Region {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.X+r.W, width), min(r.Y+r.H, height)
	return Region{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Empty reports whether the region covers no pixels.
func (r Region) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// ErrEmptyRegion reports a sample region that covers no pixels after
// clipping. The compositor never produces one; hitting this is a caller
// bug.
var ErrEmptyRegion = errors.New("empty sample region")

// AverageColor computes the per-channel arithmetic mean of the region
// after clipping it to the buffer. Each channel is sum/count with the
// fractional part truncated, never rounded.
func AverageColor(img *imageutil.RGBAImage, reg Region) (imageutil.RGB, error) {
	c := reg.Clip(img.Width(), img.Height())
	if c.Empty() {
		return imageutil.RGB{}, fmt.Errorf("%w: %+v", ErrEmptyRegion, reg)
	}

	var rSum, gSum, bSum uint64
	for y := c.Y; y < c.Y+c.H; y++ {
		for x := c.X; x < c.X+c.W; x++ {
			px := img.GetRGB(x, y)
			rSum += uint64(px.R)
			gSum += uint64(px.G)
			bSum += uint64(px.B)
		}
	}

	count := uint64(c.W) * uint64(c.H)
	return imageutil.RGB{
		R: uint8(rSum / count),
		G: uint8(gSum / count),
		B: uint8(bSum / count),
	}, nil
}
