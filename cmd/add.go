package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idiampro/idp/internal/config"
	"github.com/idiampro/idp/internal/outline"
)

// NewAddCmd creates the add subcommand. --parent appends as last child;
// --after inserts directly after a sibling; with neither the node goes
// under the outline root. The new node's id is printed on success.
func NewAddCmd(io OutlineIO, cfg *config.Config) *cobra.Command {
	var (
		parentID string
		afterID  string
		typeName string
		name     string
		content  string
	)

	cmd := &cobra.Command{
		Use:          "add <outline-path>",
		Short:        "Add a node to an outline",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if parentID != "" && afterID != "" {
				return fmt.Errorf("--parent and --after are mutually exclusive")
			}
			if name == "" {
				return fmt.Errorf("--name is required")
			}
			if typeName == "" {
				typeName = cfg.DefaultType
			}
			if !outline.AssignableType(outline.NodeType(typeName)) {
				return fmt.Errorf("invalid node type %q: must be one of chapter, section, document, drawing, spreadsheet, diagram", sanitizeText(typeName))
			}

			o, err := io.LoadOutline(path)
			if err != nil {
				return err
			}

			var (
				next  outline.NodeMap
				newID string
			)
			if afterID != "" {
				if _, err := requireNode(o, afterID); err != nil {
					return err
				}
				next, newID = outline.AddNodeAfter(o.Nodes, afterID, outline.NodeType(typeName), name, content)
			} else {
				if parentID == "" {
					parentID = o.RootNodeID
				}
				if _, err := requireNode(o, parentID); err != nil {
					return err
				}
				next, newID = outline.AddNode(o.Nodes, parentID, outline.NodeType(typeName), name, content)
			}
			if newID == "" {
				return fmt.Errorf("add failed: target node disappeared")
			}

			o.Nodes = next
			if err := io.SaveOutline(path, o); err != nil {
				return fmt.Errorf("writing outline: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), newID)
			return nil
		},
	}

	cmd.Flags().StringVar(&parentID, "parent", "", "parent node id (default: outline root)")
	cmd.Flags().StringVar(&afterID, "after", "", "insert after this sibling node id")
	cmd.Flags().StringVar(&typeName, "type", "", "node type (default from config)")
	cmd.Flags().StringVar(&name, "name", "", "node display name")
	cmd.Flags().StringVar(&content, "content", "", "node content")

	return cmd
}
