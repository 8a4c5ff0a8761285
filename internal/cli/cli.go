// Package cli implements the dripomatic command-line interface.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dripomatic/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for config files and display.
	appName = "dripomatic"

	// engineExec runs the system Graphviz binary.
	engineExec = "exec"

	// engineEmbedded runs the Graphviz bundled with go-graphviz.
	engineEmbedded = "embedded"
)

// engines lists the accepted --engine values.
var engines = []string{engineExec, engineEmbedded}

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string

	// spinnerOut receives the render spinner; nil disables it.
	spinnerOut io.Writer
}

// New creates a new CLI instance with a default logger.
//
// The render spinner is drawn on w only when w is a terminal.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}
	if isTerminal(w) {
		c.spinnerOut = w
	}
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
//
// Running the root command without a subcommand renders the chart with the
// configured defaults, exactly like "dripomatic render".
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Dripomatic draws the Drip-O-Matic process flowchart",
		Long: `Dripomatic renders the Drip-O-Matic product process as a Graphviz flowchart.

Every node is pinned at a fixed position and laid out with neato. Next to
the image, the DOT source is always written as <output>.gv, so the chart
can be inspected or rendered by hand even when Graphviz is missing.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(ctxOrBackground(cmd.Context()), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cfg.Render)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ./"+defaultConfigFile+" if present)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func ctxOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
