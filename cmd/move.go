package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idiampro/idp/internal/outline"
)

// NewMoveCmd creates the move subcommand: relocates a node (with its
// subtree) before, after, or inside a target node. Self-moves and moves
// into the node's own subtree are rejected.
func NewMoveCmd(io OutlineIO) *cobra.Command {
	var (
		targetID string
		position string
	)

	cmd := &cobra.Command{
		Use:          "move <outline-path> <node-id>",
		Short:        "Move a node within the outline",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, nodeID := args[0], args[1]
			if targetID == "" {
				return fmt.Errorf("--target is required")
			}
			pos := outline.Position(position)
			switch pos {
			case outline.PositionBefore, outline.PositionAfter, outline.PositionInside:
			default:
				return fmt.Errorf("--position must be \"before\", \"after\", or \"inside\", got %q", position)
			}

			o, err := io.LoadOutline(path)
			if err != nil {
				return err
			}
			if _, err := requireNode(o, nodeID); err != nil {
				return err
			}
			if _, err := requireNode(o, targetID); err != nil {
				return err
			}
			if pos != outline.PositionInside && targetID == o.RootNodeID {
				return fmt.Errorf("cannot move a node before or after the root")
			}

			next := outline.MoveNode(o.Nodes, nodeID, targetID, pos)
			if next == nil {
				return fmt.Errorf("cannot move a node into itself or its own subtree")
			}

			o.Nodes = next
			if err := io.SaveOutline(path, o); err != nil {
				return fmt.Errorf("writing outline: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Moved %s %s %s\n", sanitizeText(nodeID), position, sanitizeText(targetID))
			return nil
		},
	}

	cmd.Flags().StringVar(&targetID, "target", "", "target node id")
	cmd.Flags().StringVar(&position, "position", "inside", "placement relative to target: before, after, or inside")

	return cmd
}
