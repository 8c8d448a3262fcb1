package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gogpu/gg"
	"golang.org/x/term"

	"honnef.co/go/strand"
	"honnef.co/go/strand/render"
	"honnef.co/go/strand/svg"
)

const helpBanner = `
strand renders a drawing project at a moment of its animation.

Usage: strand [flags]

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

var (
	source      = flag.String("in", pipeName, "Project file")
	destination = flag.String("out", pipeName, "Destination; with -frames, a pattern such as frame%03d.png")
	format      = flag.String("format", "", "Output format: svg, png or json (default: from the destination's extension, else svg)")
	at          = flag.Float64("t", 0, "Animation time in seconds")
	width       = flag.Float64("width", 1024, "Viewport width")
	height      = flag.Float64("height", 768, "Viewport height")
	speed       = flag.Float64("speed", 1, "Global animation speed")
	full        = flag.Bool("full", false, "Draw strokes in full instead of their animated windows")
	scale       = flag.Float64("scale", 1, "Resample PNG output by this factor")
	background  = flag.String("bg", "#000000", "Background color; empty for transparent")
	frames      = flag.Int("frames", 1, "Number of PNG frames to write, starting at -t")
	fps         = flag.Float64("fps", 30, "Frame rate of a PNG sequence")
	verbose     = flag.Bool("v", false, "Log to stderr")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, helpBanner)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose {
		strand.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(); err != nil {
		log.Fatalf("strand: %v", err)
	}
}

func run() error {
	if *width <= 0 || *height <= 0 {
		return errors.New("the viewport must have a positive width and height")
	}
	d := strand.NewDrawing(strand.Sz(*width, *height))
	d.Background = *background

	src, err := openSource(*source)
	if err != nil {
		return err
	}
	err = d.ReadProject(src)
	src.Close()
	if err != nil {
		return fmt.Errorf("loading %s: %w", *source, err)
	}
	strand.Logger().Info("loaded project", "strokes", d.Len())

	f := outputFormat(*format, *destination)
	if *frames > 1 {
		if f != "png" {
			return errors.New("-frames requires png output")
		}
		return writeSequence(d)
	}

	dst, err := createDestination(*destination, f)
	if err != nil {
		return err
	}
	t := *at * *speed
	switch f {
	case "json":
		err = d.WriteProject(dst)
	case "png":
		err = writePNG(dst, d, t)
	case "svg":
		err = svg.Encode(dst, d, t, svg.Options{Full: *full})
	default:
		err = fmt.Errorf("unsupported format %q", f)
	}
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	return err
}

// writeSequence renders consecutive frames the way an interactive surface
// would, advancing a frame loop by one frame interval each time.
func writeSequence(d *strand.Drawing) error {
	if !strings.Contains(*destination, "%") {
		return errors.New("-frames requires -out to be a pattern such as frame%03d.png")
	}
	if *fps <= 0 {
		return errors.New("-fps must be positive")
	}
	fl := strand.NewFrameLoop(d)
	fl.Speed = *speed
	step := time.Duration(float64(time.Second) / *fps)
	if step > strand.MaxFrameDelta {
		return fmt.Errorf("-fps must be at least %g", float64(time.Second)/float64(strand.MaxFrameDelta))
	}
	t := *at * *speed
	for i := range *frames {
		name := fmt.Sprintf(*destination, i)
		dst, err := os.Create(name)
		if err != nil {
			return fmt.Errorf("unable to create the destination file: %w", err)
		}
		err = writePNG(dst, d, t+fl.Time())
		if cerr := dst.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		strand.Logger().Debug("wrote frame", "file", name, "t", t+fl.Time())
		fl.Advance(step)
	}
	return nil
}

func writePNG(w io.Writer, d *strand.Drawing, t float64) error {
	dc := gg.NewContext(int(*width), int(*height))
	defer dc.Close()
	if err := render.Frame(dc, d, t, render.Options{Full: *full}); err != nil {
		return err
	}
	return render.EncodePNG(w, dc.Image(), *scale)
}

func outputFormat(f, out string) string {
	if f != "" {
		return strings.ToLower(f)
	}
	switch {
	case strings.HasSuffix(out, ".png"):
		return "png"
	case strings.HasSuffix(out, ".json"):
		return "json"
	default:
		return "svg"
	}
}

// openSource opens the project file, or stdin for the pipe name.
func openSource(in string) (io.ReadCloser, error) {
	if in == pipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdin")
		}
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(in)
	if err != nil {
		return nil, fmt.Errorf("unable to open the source file: %w", err)
	}
	return f, nil
}

// createDestination creates the output file, or returns stdout for the pipe
// name. PNG data is never written to a terminal.
func createDestination(out, format string) (io.WriteCloser, error) {
	if out == pipeName {
		if format == "png" && term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdout")
		}
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(out)
	if err != nil {
		return nil, fmt.Errorf("unable to create the destination file: %w", err)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
