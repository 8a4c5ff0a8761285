package render

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// Viewer opens a rendered file for the user.
type Viewer interface {
	Open(ctx context.Context, path string) error
}

// SystemViewer opens files with the operating system's default application.
// It starts the opener and returns without waiting for the viewer to exit.
// The opener outlives the calling command.
type SystemViewer struct{}

// Open starts the platform opener for path. ctx only gates the start; the
// detached opener is not killed when ctx is cancelled later.
func (SystemViewer) Open(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name, args := openerCommand(runtime.GOOS, path)
	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("no viewer available (%s not found)", name)
	}
	cmd := exec.Command(bin, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// openerCommand returns the command that opens path on goos.
func openerCommand(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}
