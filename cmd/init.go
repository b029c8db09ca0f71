package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idiampro/idp/internal/config"
	"github.com/idiampro/idp/internal/outline"
)

// NewInitCmd creates the init subcommand: a fresh outline file holding a
// blank root node. A path without an extension gets the configured
// default format appended.
func NewInitCmd(io OutlineIO, cfg *config.Config) *cobra.Command {
	var (
		name  string
		force bool
	)

	cmd := &cobra.Command{
		Use:          "init <outline-path>",
		Short:        "Create a new outline file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if filepath.Ext(path) == "" {
				path += "." + cfg.Format
			}

			exists, err := io.StatFile(path)
			if err != nil {
				return fmt.Errorf("checking %s: %w", sanitizeText(path), err)
			}
			if exists && !force {
				return fmt.Errorf("%s already exists; use --force to overwrite", sanitizeText(path))
			}

			if name == "" {
				name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			}

			o := outline.NewOutline(name)
			if err := io.SaveOutline(path, o); err != nil {
				return fmt.Errorf("writing outline: %w", err)
			}

			if exists {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: overwriting existing file")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Created "+sanitizeText(path))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "outline name (default: file name without extension)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}
