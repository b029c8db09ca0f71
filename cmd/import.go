package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idiampro/idp/internal/config"
	"github.com/idiampro/idp/internal/outline"
)

// NewImportCmd creates the import subcommand: parses a markdown bullet
// list into a fresh outline file. The topic defaults to the markdown file
// name; the output path defaults to the same stem with the configured
// format's extension.
func NewImportCmd(io OutlineIO, cfg *config.Config) *cobra.Command {
	var (
		topic   string
		outPath string
		force   bool
	)

	cmd := &cobra.Command{
		Use:          "import <markdown-path>",
		Short:        "Import a markdown bullet list as a new outline",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			mdPath := args[0]

			data, err := io.ReadFile(mdPath)
			if err != nil {
				return fmt.Errorf("reading markdown: %w", err)
			}

			stem := strings.TrimSuffix(filepath.Base(mdPath), filepath.Ext(mdPath))
			if topic == "" {
				topic = stem
			}
			if outPath == "" {
				outPath = filepath.Join(filepath.Dir(mdPath), stem+"."+cfg.Format)
			}

			exists, err := io.StatFile(outPath)
			if err != nil {
				return fmt.Errorf("checking %s: %w", sanitizeText(outPath), err)
			}
			if exists && !force {
				return fmt.Errorf("%s already exists; use --force to overwrite", sanitizeText(outPath))
			}

			rootID, nodes := outline.ParseMarkdown(string(data), topic)
			o := &outline.Outline{
				ID:         outline.NewNodeID(),
				Name:       topic,
				RootNodeID: rootID,
				Nodes:      nodes,
			}

			if err := io.SaveOutline(outPath, o); err != nil {
				return fmt.Errorf("writing outline: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d node(s) into %s\n", len(nodes)-1, sanitizeText(outPath))
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "outline name and root title (default: markdown file name)")
	cmd.Flags().StringVar(&outPath, "out", "", "output outline path (default: markdown stem + config format)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing outline file")

	return cmd
}
