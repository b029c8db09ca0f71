package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idiampro/idp/internal/config"
	"github.com/idiampro/idp/internal/outline"
)

// NewTreeCmd creates the tree subcommand: prints the outline as an
// indented bullet list, optionally limited in depth or rooted at a
// subtree.
func NewTreeCmd(io OutlineIO, cfg *config.Config) *cobra.Command {
	var (
		depth  int
		nodeID string
	)

	cmd := &cobra.Command{
		Use:          "tree <outline-path>",
		Short:        "Print the outline as an indented list",
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
			if !cmd.Flags().Changed("depth") {
				depth = cfg.TreeDepth
			}

			fmt.Fprint(cmd.OutOrStdout(), outline.BuildTreeString(o.Nodes, start.ID, depth))
			return nil
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 0, "maximum depth to render (0 = unlimited)")
	cmd.Flags().StringVar(&nodeID, "node", "", "render only the subtree below this node id")

	return cmd
}
