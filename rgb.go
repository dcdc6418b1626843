// Package img2text renders a raster image as a character mosaic: the
// image is tiled into cells sized by a font's glyph metrics, each cell is
// reduced to its average color, and one glyph per cell is painted in that
// color onto a fresh canvas.
package img2text

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wbrown/img2text/imageutil"
)

// ErrInvalidColor reports a background color string that could not be
// parsed as hex RGB.
var ErrInvalidColor = errors.New("invalid hex color")

// ParseHexColor parses a color of the form "#RRGGBB" or "RRGGBB". A
// leading '#' is stripped, at least six hex digits are required, and
// anything after the sixth digit is ignored.
func ParseHexColor(s string) (imageutil.RGB, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) < 6 {
		return imageutil.RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return imageutil.RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		channels[i] = uint8(v)
	}

	return imageutil.RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}
