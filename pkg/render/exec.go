package render

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/matzehuels/dripomatic/pkg/errors"
)

// ExecEngine renders by running the Graphviz layout binary (neato, dot, ...)
// found on the search path.
type ExecEngine struct {
	// Dir is searched for the binary before PATH. It is the usual fix when
	// Graphviz is installed somewhere PATH does not cover, such as
	// C:/Program Files/Graphviz/bin.
	Dir string
}

// String implements fmt.Stringer.
func (e ExecEngine) String() string {
	if e.Dir != "" {
		return "graphviz (" + e.Dir + ")"
	}
	return "graphviz"
}

// Lookup returns the path of the layout binary, or an ENGINE_NOT_FOUND error.
func (e ExecEngine) Lookup(layout string) (string, error) {
	if e.Dir != "" {
		if path, err := exec.LookPath(filepath.Join(e.Dir, layout)); err == nil {
			return path, nil
		}
	}
	path, err := exec.LookPath(layout)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeEngineNotFound, err,
			"Graphviz executable %q not found. Install Graphviz and make sure it is on your PATH:\n  macOS:  brew install graphviz\n  Linux:  apt install graphviz", layout)
	}
	return path, nil
}

// Render pipes dot into the layout binary and writes format output to out.
func (e ExecEngine) Render(ctx context.Context, dot []byte, layout, format, out string) error {
	bin, err := e.Lookup(layout)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, bin, "-T"+format, "-o", out)
	cmd.Stdin = bytes.NewReader(dot)

	var errBuf bytes.Buffer
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, ctx.Err(), "%s interrupted", layout)
		}
		msg := strings.TrimSpace(errBuf.String())
		if msg == "" {
			msg = err.Error()
		}
		return errors.New(errors.ErrCodeRenderFailed, "%s: %s", layout, msg)
	}

	if _, err := os.Stat(out); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "%s produced no output", layout)
	}
	return nil
}
