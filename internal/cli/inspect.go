package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/dripomatic/pkg/errors"
	"github.com/matzehuels/dripomatic/pkg/flowchart"
)

// inspectCommand prints a structural summary of the flowchart.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Show node and edge counts, entry and exit points, and loops",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := flowchart.DripOMatic()
			if err := d.Validate(); err != nil {
				return errs.Wrap(errs.ErrCodeInvalidGraph, err, "validate %s", d.Name())
			}
			printInspect(d)
			return nil
		},
	}
}

func printInspect(d *flowchart.Diagram) {
	printTitle(d.Comment())
	printKeyValue("nodes", strconv.Itoa(d.NodeCount()))
	printKeyValue("edges", strconv.Itoa(d.EdgeCount()))
	printKeyValue("layout", d.Options().Layout)
	printKeyValue("sources", strings.Join(d.Sources(), ", "))
	printKeyValue("sinks", strings.Join(d.Sinks(), ", "))

	cycles := d.Cycles()
	if len(cycles) == 0 {
		printKeyValue("loops", "none")
	}
	for _, cycle := range cycles {
		printKeyValue("loop", strings.Join(cycle, " → "))
	}
	for _, n := range d.Nodes() {
		out := d.EdgesFrom(n.ID)
		if len(out) < 2 {
			continue
		}
		var branches []string
		for _, e := range out {
			branches = append(branches, fmt.Sprintf("%s → %s", e.Label, e.To))
		}
		printKeyValue("decision", fmt.Sprintf("%s (%s)", n.ID, strings.Join(branches, ", ")))
	}
}
