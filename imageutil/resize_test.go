package imageutil

import "testing"

func TestScaleDimensions(t *testing.T) {
	tests := []struct {
		w, h         int
		factor       float64
		wantW, wantH int
	}{
		{4, 3, 2.0, 8, 6},
		{4, 3, 0.5, 2, 2}, // round(1.5) = 2
		{10, 10, 1.0, 10, 10},
		{3, 3, 0.1, 1, 1}, // floor of one pixel
	}
	for _, tt := range tests {
		img := CreateSolidImage(tt.w, tt.h, RGB{R: 1})
		got := Scale(img, tt.factor, InterpNearest)
		if got.Width() != tt.wantW || got.Height() != tt.wantH {
			t.Errorf("Scale(%dx%d, %g): expected %dx%d, got %dx%d",
				tt.w, tt.h, tt.factor, tt.wantW, tt.wantH,
				got.Width(), got.Height())
		}
	}
}

func TestScaleNearestKeepsSolidColor(t *testing.T) {
	c := RGB{R: 10, G: 20, B: 30}
	img := CreateSolidImage(4, 4, c)

	scaled := Scale(img, 2.5, InterpNearest)
	for y := 0; y < scaled.Height(); y++ {
		for x := 0; x < scaled.Width(); x++ {
			if got := scaled.GetRGB(x, y); got != c {
				t.Fatalf("Pixel (%d,%d): expected %v, got %v", x, y, c, got)
			}
		}
	}
}

func TestResizeNearestPicksSourcePixels(t *testing.T) {
	// A 2x1 half-red half-green image doubled with nearest-neighbor
	// keeps only the original colors, no blending.
	img := NewRGBAImage(2, 1)
	img.SetRGB(0, 0, RGB{R: 255})
	img.SetRGB(1, 0, RGB{G: 255})

	out := Resize(img, 4, 2, InterpNearest)
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			got := out.GetRGB(x, y)
			if got != (RGB{R: 255}) && got != (RGB{G: 255}) {
				t.Fatalf("Pixel (%d,%d): blended color %v", x, y, got)
			}
		}
	}
}
