package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dripomatic/pkg/flowchart"
)

// dotCommand prints the DOT source of the flowchart.
func (c *CLI) dotCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dot",
		Short: "Print the flowchart's DOT source to stdout",
		Long: `Print the flowchart's Graphviz DOT source to stdout.

The output is identical to the .gv sidecar written by render and can be
piped into Graphviz directly:

  dripomatic dot | neato -Tsvg > chart.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), flowchart.ToDOT(flowchart.DripOMatic()))
			return err
		},
	}
}
