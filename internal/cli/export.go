package cli

import (
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/dripomatic/pkg/errors"
	"github.com/matzehuels/dripomatic/pkg/flowchart"
)

// exportCommand writes the flowchart as JSON.
func (c *CLI) exportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the flowchart as JSON",
		Long: `Export the flowchart's nodes, edges, and layout options as JSON.

Writes to stdout unless --output is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := flowchart.DripOMatic()
			if output == "" {
				return flowchart.WriteJSON(d, cmd.OutOrStdout())
			}
			if err := flowchart.ExportJSON(d, output); err != nil {
				return errs.Wrap(errs.ErrCodeIO, err, "export JSON")
			}
			loggerFromContext(cmd.Context()).Infof("Exported %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output JSON file (default stdout)")
	return cmd
}
