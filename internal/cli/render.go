package cli

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/dripomatic/pkg/errors"
	"github.com/matzehuels/dripomatic/pkg/flowchart"
	"github.com/matzehuels/dripomatic/pkg/render"
)

// renderFlags holds the command-line overrides for the render command.
type renderFlags struct {
	output       string
	format       string
	engine       string
	graphvizPath string
	view         bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags
	defaults := defaultConfig().Render

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the flowchart to an image and a DOT sidecar",
		Long: `Render the Drip-O-Matic flowchart.

Writes <output>.<format> and the DOT source <output>.gv. The DOT file is
written first, so it is available even when Graphviz is missing or fails.

Settings come from flags, then DRIPOMATIC_* environment variables (a .env
file is loaded if present), then dripomatic.toml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			rc := flags.apply(cmd, cfg.Render)
			if err := rc.validate(); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), rc)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", defaults.Output, "output base path (without extension)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", defaults.Format, "image format: "+strings.Join(render.Formats, ", "))
	cmd.Flags().StringVar(&flags.engine, "engine", defaults.Engine, "render engine: exec (system Graphviz), embedded (bundled)")
	cmd.Flags().StringVar(&flags.graphvizPath, "graphviz-path", "", "directory searched for Graphviz binaries before PATH")
	cmd.Flags().BoolVar(&flags.view, "view", defaults.View, "open the image with the default viewer")

	return cmd
}

// apply overrides rc with the flags the user set explicitly.
func (f renderFlags) apply(cmd *cobra.Command, rc RenderConfig) RenderConfig {
	changed := cmd.Flags().Changed
	if changed("output") {
		rc.Output = f.output
	}
	if changed("format") {
		rc.Format = f.format
	}
	if changed("engine") {
		rc.Engine = f.engine
	}
	if changed("graphviz-path") {
		rc.GraphvizPath = f.graphvizPath
	}
	if changed("view") {
		rc.View = f.view
	}
	return rc
}

// runRender builds the chart, renders it, and reports the outcome.
//
// Engine failures are reported on stdout together with the DOT sidecar
// location and do not fail the command. Configuration errors and
// interrupts are returned.
func (c *CLI) runRender(ctx context.Context, rc RenderConfig) error {
	logger := loggerFromContext(ctx).With("run", uuid.NewString()[:8])

	eng, err := newEngine(rc)
	if err != nil {
		return err
	}

	d := flowchart.DripOMatic()
	logger.Debugf("Built %s: %d nodes, %d edges", d.Name(), d.NodeCount(), d.EdgeCount())
	logger.Infof("Rendering %s.%s with %s", rc.Output, rc.Format, eng)

	prog := newProgress(logger)
	var spin *spinner
	if c.spinnerOut != nil {
		spin = newSpinner(ctx, c.spinnerOut, "Running "+d.Options().Layout+"...")
		spin.start(80 * time.Millisecond)
	}
	res, err := render.Render(ctx, d, eng, render.Options{
		Output: rc.Output,
		Format: rc.Format,
		View:   rc.View,
		Logger: logger,
	})
	if spin != nil {
		spin.stop()
	}

	switch {
	case err == nil:
		prog.done("Rendered " + res.Image)
		printSuccess("Graph successfully generated")
		printFile(res.Image)
		printFile(res.Sidecar)
		switch {
		case res.Viewed:
			printInfo("Attempting to open '%s'...", res.Image)
		case rc.View:
			printWarning("Could not open '%s' with the default viewer", res.Image)
		}
		return nil

	case errors.Is(err, context.Canceled):
		return err

	case errs.Is(err, errs.ErrCodeEngineNotFound):
		logger.Debug("Engine lookup failed", "err", err)
		printError("Graphviz executables not found. Make sure Graphviz is installed and in your system's PATH.")
		printDetail("Set --graphviz-path or %s to its bin directory, or use --engine=embedded.", envGraphvizPath)
		printSidecarHint(res)
		return nil

	case errs.Is(err, errs.ErrCodeRenderFailed):
		printError("An error occurred during rendering: %s", errs.UserMessage(err))
		printSidecarHint(res)
		return nil
	}
	return err
}

func printSidecarHint(res *render.Result) {
	if res == nil || res.Sidecar == "" {
		return
	}
	printInfo("You can check the generated DOT source file: '%s'", res.Sidecar)
}
