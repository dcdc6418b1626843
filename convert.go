package img2text

import (
	"fmt"

	"github.com/wbrown/img2text/imageutil"
)

// Config holds everything needed for one conversion run.
type Config struct {
	InputPath  string
	OutputPath string
	FontPath   string
	FontSize   float64
	Scale      float64
	Background imageutil.RGB
	Chars      CharSource
	Progress   ProgressFunc
}

// Convert runs the whole pipeline: decode the source image, apply the
// optional prescale, load the font, compose the mosaic, and encode the
// result to the output path.
func Convert(cfg Config) error {
	src, err := imageutil.LoadImage(cfg.InputPath)
	if err != nil {
		return err
	}

	if cfg.Scale > 0 && cfg.Scale != 1.0 {
		src = imageutil.Scale(src, cfg.Scale, imageutil.InterpNearest)
	}

	face, err := LoadFont(cfg.FontPath, cfg.FontSize)
	if err != nil {
		return err
	}

	opts := []Option{WithBackground(cfg.Background)}
	if cfg.Progress != nil {
		opts = append(opts, WithProgress(cfg.Progress))
	}
	out, err := NewCompositor(opts...).Compose(src, face, cfg.Chars)
	if err != nil {
		return err
	}

	if err := imageutil.SaveImage(out.RGBA, cfg.OutputPath); err != nil {
		return fmt.Errorf("couldn't write to %s: %w", cfg.OutputPath, err)
	}
	return nil
}
