package render

import (
	"bytes"
	"context"
	"os"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/dripomatic/pkg/errors"
)

// embeddedFormats are the formats the WASM Graphviz build can write.
var embeddedFormats = map[string]graphviz.Format{
	FormatPNG: graphviz.PNG,
	FormatSVG: graphviz.SVG,
	FormatJPG: graphviz.JPG,
	FormatDOT: graphviz.XDOT, // go-graphviz's XDOT is the plain "dot" renderer
}

// EmbeddedEngine renders in-process with the Graphviz build bundled in
// go-graphviz. It needs no system install and so never reports
// ENGINE_NOT_FOUND.
type EmbeddedEngine struct{}

// String implements fmt.Stringer.
func (EmbeddedEngine) String() string { return "embedded graphviz" }

// Render parses dot, lays it out with layout, and writes format output to out.
func (EmbeddedEngine) Render(ctx context.Context, dot []byte, layout, format, out string) error {
	f, ok := embeddedFormats[format]
	if !ok {
		return errors.New(errors.ErrCodeRenderFailed, "format %q is not supported by the embedded engine (use png, svg, jpg, or dot)", format)
	}

	data, err := RenderBytes(ctx, dot, layout, f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "write %s", out)
	}
	return nil
}

// RenderBytes renders dot to memory with the embedded Graphviz.
func RenderBytes(ctx context.Context, dot []byte, layout string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(dot)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "parse DOT")
	}
	defer g.Close()

	if layout != "" {
		gv.SetLayout(graphviz.Layout(layout))
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render")
	}
	return buf.Bytes(), nil
}
