package img2text

import (
	"errors"
	"testing"

	"github.com/wbrown/img2text/imageutil"
)

func TestAverageColorUniformRegion(t *testing.T) {
	c := imageutil.RGB{R: 40, G: 80, B: 120}
	img := imageutil.CreateSolidImage(8, 8, c)

	got, err := AverageColor(img, Region{X: 0, Y: 0, W: 8, H: 8})
	if err != nil {
		t.Fatalf("AverageColor failed: %v", err)
	}
	if got != c {
		t.Errorf("Expected %v, got %v", c, got)
	}
}

func TestAverageColorTruncates(t *testing.T) {
	// Two pixels averaging to 10.5 must come out as 10, not 11.
	img := imageutil.NewRGBAImage(2, 1)
	img.SetRGB(0, 0, imageutil.RGB{R: 10, G: 0, B: 255})
	img.SetRGB(1, 0, imageutil.RGB{R: 11, G: 1, B: 254})

	got, err := AverageColor(img, Region{X: 0, Y: 0, W: 2, H: 1})
	if err != nil {
		t.Fatalf("AverageColor failed: %v", err)
	}
	want := imageutil.RGB{R: 10, G: 0, B: 254}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestAverageColorClipsToBuffer(t *testing.T) {
	img := imageutil.CreateSolidImage(4, 4, imageutil.RGB{R: 255})
	// Make the bottom-right 2x2 corner green.
	for y := 2; y < 4; y++ {
		for x := 2; x < 4; x++ {
			img.SetRGB(x, y, imageutil.RGB{G: 200})
		}
	}

	// Requested region extends well past the buffer; only the green
	// corner is in bounds.
	got, err := AverageColor(img, Region{X: 2, Y: 2, W: 10, H: 10})
	if err != nil {
		t.Fatalf("AverageColor failed: %v", err)
	}
	want := imageutil.RGB{G: 200}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestAverageColorEmptyRegion(t *testing.T) {
	img := imageutil.CreateSolidImage(4, 4, imageutil.RGB{})

	_, err := AverageColor(img, Region{X: 10, Y: 10, W: 2, H: 2})
	if !errors.Is(err, ErrEmptyRegion) {
		t.Errorf("Expected ErrEmptyRegion, got %v", err)
	}
}

func TestRegionClip(t *testing.T) {
	tests := []struct {
		name string
		in   Region
		want Region
	}{
		{"inside", Region{1, 1, 2, 2}, Region{1, 1, 2, 2}},
		{"overhang right/bottom", Region{3, 3, 5, 5}, Region{3, 3, 1, 1}},
		{"negative origin", Region{-2, -2, 4, 4}, Region{0, 0, 2, 2}},
		{"fully outside", Region{4, 4, 2, 2}, Region{4, 4, 0, 0}},
	}
	for _, tt := range tests {
		got := tt.in.Clip(4, 4)
		if got != tt.want {
			t.Errorf("%s: Clip(%+v) = %+v, want %+v",
				tt.name, tt.in, got, tt.want)
		}
	}
}
