package imageutil

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Interp specifies the interpolation method for resizing.
type Interp int

const (
	// InterpNearest uses nearest-neighbor interpolation.
	InterpNearest Interp = iota

	// InterpLinear uses bilinear interpolation.
	InterpLinear

	// InterpArea uses Catmull-Rom, the closest equivalent to
	// OpenCV's INTER_AREA for downscaling.
	InterpArea
)

func (i Interp) scaler() draw.Scaler {
	switch i {
	case InterpLinear:
		return draw.BiLinear
	case InterpArea:
		return draw.CatmullRom
	default:
		return draw.NearestNeighbor
	}
}

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method.
func Resize(img *RGBAImage, width, height int, interp Interp) *RGBAImage {
	dst := NewRGBAImage(width, height)
	interp.scaler().Scale(dst.RGBA, image.Rect(0, 0, width, height),
		img.RGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// Scale resizes an image by a uniform factor. Target dimensions are the
// original dimensions multiplied by factor and rounded to the nearest
// integer, with a floor of one pixel.
func Scale(img *RGBAImage, factor float64, interp Interp) *RGBAImage {
	width := int(math.Round(float64(img.Width()) * factor))
	height := int(math.Round(float64(img.Height()) * factor))
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return Resize(img, width, height, interp)
}
