package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idiampro/idp/internal/outline"
)

// NewFlowchartCmd creates the flowchart subcommand: renders a subtree as
// Mermaid flowchart syntax on stdout.
func NewFlowchartCmd(io OutlineIO) *cobra.Command {
	var nodeID string

	cmd := &cobra.Command{
		Use:          "flowchart <outline-path>",
		Short:        "Render the outline as a Mermaid flowchart",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := io.LoadOutline(args[0])
			if err != nil {
				return err
			}
			start, err := subtreeRoot(o, nodeID)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), outline.GenerateFlowchart(start, o.Nodes))
			return nil
		},
	}

	cmd.Flags().StringVar(&nodeID, "node", "", "render only the subtree below this node id")

	return cmd
}
