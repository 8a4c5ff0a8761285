package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dripomatic/pkg/errors"
	"github.com/matzehuels/dripomatic/pkg/flowchart"
)

// Output formats accepted by [Render].
const (
	FormatPNG = "png"
	FormatSVG = "svg"
	FormatPDF = "pdf"
	FormatJPG = "jpg"
	FormatGIF = "gif"
	FormatDOT = "dot"
)

// Defaults matching the classic Drip-O-Matic output.
const (
	DefaultOutput = "dripomatic_graph"
	DefaultFormat = FormatPNG
	DefaultLayout = "neato"
)

// SidecarExt is the extension of the DOT source written next to every image.
const SidecarExt = ".gv"

// Formats lists every supported output format.
var Formats = []string{FormatPNG, FormatSVG, FormatPDF, FormatJPG, FormatGIF, FormatDOT}

// ValidateFormat returns an INVALID_FORMAT error unless f is in [Formats].
func ValidateFormat(f string) error {
	return errors.ValidateChoice(errors.ErrCodeInvalidFormat, "format", f, Formats)
}

// Engine turns DOT source into an image file.
//
// Implementations report a missing executable as ENGINE_NOT_FOUND and any
// other failure as RENDER_FAILED.
type Engine interface {
	Render(ctx context.Context, dot []byte, layout, format, out string) error
}

// Options configures a single [Render] call.
type Options struct {
	// Output is the base path; the image goes to Output.Format and the DOT
	// source to Output.gv.
	Output string
	// Format is one of [Formats].
	Format string
	// View opens the image with Viewer after a successful render.
	View bool
	// Viewer opens the rendered file. Nil means [SystemViewer].
	Viewer Viewer
	// Logger receives progress and warnings. Nil discards output.
	Logger *log.Logger
}

// SetDefaults fills in empty fields.
func (o *Options) SetDefaults() {
	if o.Output == "" {
		o.Output = DefaultOutput
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.Viewer == nil {
		o.Viewer = SystemViewer{}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Result describes the files a render produced.
type Result struct {
	Image    string        // image path; empty when rendering failed
	Sidecar  string        // DOT source path; set whenever it was written
	Engine   string        // engine description
	Duration time.Duration // time spent in the engine
	Viewed   bool          // the viewer was started
}

// Render writes the diagram's DOT source to Output.gv and asks eng to draw
// Output.Format with the diagram's layout.
//
// The sidecar is written before the engine runs, so it exists even when the
// engine is missing or fails. On engine failure the returned Result is
// non-nil with Sidecar set, together with an ENGINE_NOT_FOUND or
// RENDER_FAILED error. If the sidecar itself cannot be written the Result is
// nil and the error is RENDER_FAILED. A viewer failure is logged and does not fail the call.
func Render(ctx context.Context, d *flowchart.Diagram, eng Engine, opts Options) (*Result, error) {
	if d == nil {
		return nil, errors.New(errors.ErrCodeInvalidGraph, "no diagram to render")
	}
	opts.SetDefaults()
	if err := ValidateFormat(opts.Format); err != nil {
		return nil, err
	}
	if err := errors.ValidateOutputName(opts.Output); err != nil {
		return nil, err
	}

	dot := []byte(flowchart.ToDOT(d))
	res := &Result{Engine: engineName(eng)}

	sidecar := opts.Output + SidecarExt
	if err := writeFile(sidecar, dot); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "write %s", sidecar)
	}
	res.Sidecar = sidecar
	opts.Logger.Debug("Wrote DOT source", "path", sidecar, "bytes", len(dot))

	layout := d.Options().Layout
	if layout == "" {
		layout = DefaultLayout
	}
	image := opts.Output + "." + opts.Format

	start := time.Now()
	err := eng.Render(ctx, dot, layout, opts.Format, image)
	res.Duration = time.Since(start)
	if err != nil {
		if errors.GetCode(err) == "" {
			err = errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", image)
		}
		return res, err
	}
	res.Image = image
	opts.Logger.Debug("Rendered image", "path", image, "engine", res.Engine, "elapsed", res.Duration.Round(time.Millisecond))

	if opts.View {
		if err := opts.Viewer.Open(ctx, image); err != nil {
			opts.Logger.Warn("Could not open image", "path", image, "err", err)
		} else {
			res.Viewed = true
		}
	}
	return res, nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

func engineName(eng Engine) string {
	if s, ok := eng.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", eng)
}
