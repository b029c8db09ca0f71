package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idiampro/idp/internal/outline"
)

// NewEditCmd creates the edit subcommand: shallow field updates on a
// single node. Only flags that were actually set are merged.
func NewEditCmd(io OutlineIO) *cobra.Command {
	var (
		name     string
		content  string
		typeName string
		collapse bool
		expand   bool
	)

	cmd := &cobra.Command{
		Use:          "edit <outline-path> <node-id>",
		Short:        "Update a node's fields",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, nodeID := args[0], args[1]
			if collapse && expand {
				return fmt.Errorf("--collapse and --expand are mutually exclusive")
			}

			o, err := io.LoadOutline(path)
			if err != nil {
				return err
			}
			if _, err := requireNode(o, nodeID); err != nil {
				return err
			}

			var upd outline.NodeUpdate
			if cmd.Flags().Changed("name") {
				upd.Name = &name
			}
			if cmd.Flags().Changed("content") {
				upd.Content = &content
			}
			if cmd.Flags().Changed("type") {
				t := outline.NodeType(typeName)
				if !outline.AssignableType(t) {
					return fmt.Errorf("invalid node type %q: must be one of chapter, section, document, drawing, spreadsheet, diagram", sanitizeText(typeName))
				}
				upd.Type = &t
			}
			if collapse || expand {
				upd.IsCollapsed = &collapse
			}
			if upd == (outline.NodeUpdate{}) {
				return fmt.Errorf("nothing to update: pass at least one of --name, --content, --type, --collapse, --expand")
			}

			next, changed := outline.UpdateNode(o.Nodes, nodeID, upd)
			if !changed {
				return fmt.Errorf("node %q not found in outline", sanitizeText(nodeID))
			}

			o.Nodes = next
			if err := io.SaveOutline(path, o); err != nil {
				return fmt.Errorf("writing outline: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Updated "+sanitizeText(nodeID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new display name")
	cmd.Flags().StringVar(&content, "content", "", "new content")
	cmd.Flags().StringVar(&typeName, "type", "", "new node type")
	cmd.Flags().BoolVar(&collapse, "collapse", false, "collapse the node")
	cmd.Flags().BoolVar(&expand, "expand", false, "expand the node")

	return cmd
}
