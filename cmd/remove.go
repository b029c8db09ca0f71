package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idiampro/idp/internal/outline"
)

// NewRemoveCmd creates the remove subcommand: deletes a node and its
// entire subtree. The root node cannot be removed.
func NewRemoveCmd(io OutlineIO) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "remove <outline-path> <node-id>",
		Short:        "Remove a node and its subtree",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, nodeID := args[0], args[1]

			o, err := io.LoadOutline(path)
			if err != nil {
				return err
			}
			if nodeID == o.RootNodeID {
				return fmt.Errorf("cannot remove the root node")
			}
			if _, err := requireNode(o, nodeID); err != nil {
				return err
			}

			next, changed := outline.RemoveNode(o.Nodes, nodeID)
			if !changed {
				return fmt.Errorf("node %q not found in outline", sanitizeText(nodeID))
			}

			o.Nodes = next
			if err := io.SaveOutline(path, o); err != nil {
				return fmt.Errorf("writing outline: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Removed "+sanitizeText(nodeID))
			return nil
		},
	}
	return cmd
}
