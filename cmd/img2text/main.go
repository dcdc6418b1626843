// Command img2text renders an image as a character mosaic and writes the
// result to a new image file.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/wbrown/img2text"
)

type options struct {
	Font          string  `long:"font" required:"true" description:"Path to a TrueType font file"`
	FontSize      float64 `long:"font-size" default:"12.0" description:"Font size in points"`
	Scale         float64 `long:"scale" default:"1.0" description:"Resize factor applied to the source image before rendering"`
	Character     string  `short:"c" long:"character" description:"Draw this single character in every cell"`
	TextFile      string  `long:"textfile" description:"Cycle through the text in this file, one character per cell"`
	CharsetName   string  `long:"charset" default:"latin" description:"Named charset for random characters"`
	CustomCharset string  `long:"custom-charset" description:"File whose characters replace the named charset"`
	Background    string  `short:"b" long:"background" default:"#000000" description:"Background color as hex RGB"`
	Seed          *int64  `long:"seed" description:"Random seed for reproducible runs (default: time-based)"`
	Quiet         bool    `short:"q" long:"quiet" description:"Suppress progress output"`

	Args struct {
		Input  string `positional-arg-name:"INPUT" description:"Source image path"`
		Output string `positional-arg-name:"OUTPUT" description:"Output image path"`
	} `positional-args:"true" required:"true"`
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		// go-flags already printed the parse error
		os.Exit(1)
	}

	if opts.Character != "" && opts.TextFile != "" {
		fatal("You cannot have both flags at the same time: " +
			"--character, --textfile")
	}
	if opts.Scale <= 0 {
		fatal("Invalid scale factor: %g", opts.Scale)
	}
	if opts.CustomCharset == "" {
		if _, err := img2text.Charset(opts.CharsetName); err != nil {
			fatal("Invalid charset %q, valid charsets are: %s",
				opts.CharsetName, strings.Join(img2text.CharsetNames, ", "))
		}
	}

	background, err := img2text.ParseHexColor(opts.Background)
	if err != nil {
		fatal("Invalid background color: %s", opts.Background)
	}

	var rng *rand.Rand
	if opts.Seed != nil {
		rng = rand.New(rand.NewSource(*opts.Seed))
	}
	chars, err := img2text.NewCharSource(img2text.SourceConfig{
		Literal:           opts.Character,
		TextFile:          opts.TextFile,
		CharsetName:       opts.CharsetName,
		CustomCharsetPath: opts.CustomCharset,
		Rand:              rng,
	})
	if err != nil {
		fatal("%v", err)
	}

	cfg := img2text.Config{
		InputPath:  opts.Args.Input,
		OutputPath: opts.Args.Output,
		FontPath:   opts.Font,
		FontSize:   opts.FontSize,
		Scale:      opts.Scale,
		Background: background,
		Chars:      chars,
	}
	if !opts.Quiet {
		cfg.Progress = func(row, total int) {
			fmt.Fprintf(os.Stderr, "\rrow %d/%d", row, total)
		}
	}

	if err := img2text.Convert(cfg); err != nil {
		if !opts.Quiet {
			fmt.Fprintln(os.Stderr)
		}
		fatal("%v", err)
	}
	if !opts.Quiet {
		fmt.Fprintln(os.Stderr)
	}
}
