package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idiampro/idp/internal/outline"
)

// NewMindmapCmd creates the mindmap subcommand: renders a subtree as
// Mermaid mindmap syntax on stdout.
func NewMindmapCmd(io OutlineIO) *cobra.Command {
	var nodeID string

	cmd := &cobra.Command{
		Use:          "mindmap <outline-path>",
		Short:        "Render the outline as a Mermaid mindmap",
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

			fmt.Fprint(cmd.OutOrStdout(), outline.GenerateMindmap(start, o.Nodes))
			return nil
		},
	}

	cmd.Flags().StringVar(&nodeID, "node", "", "render only the subtree below this node id")

	return cmd
}
