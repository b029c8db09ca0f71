// Package cmd implements the idp CLI commands.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/idiampro/idp/internal/config"
)

// NewRootCmd creates the root idp command with all subcommands registered.
// cfg supplies user defaults; pass nil to load them from the config file.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			loaded = &config.Config{Format: "json", DefaultType: "document"}
		}
		cfg = loaded
	}

	var cfgPath string
	root := &cobra.Command{
		Use:           "idp",
		Short:         "idp - IdiamPro outline CLI for hierarchical documents",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if cfgPath == "" {
				return nil
			}
			loaded, err := config.LoadFromFile(cfgPath)
			if err != nil {
				return err
			}
			*cfg = *loaded
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error { return nil },
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.config/idp/config.toml)")

	io := newDefaultOutlineIO()
	root.AddCommand(NewInitCmd(io, cfg))
	root.AddCommand(NewAddCmd(io, cfg))
	root.AddCommand(NewRemoveCmd(io))
	root.AddCommand(NewEditCmd(io))
	root.AddCommand(NewMoveCmd(io))
	root.AddCommand(NewTreeCmd(io, cfg))
	root.AddCommand(NewMindmapCmd(io))
	root.AddCommand(NewFlowchartCmd(io))
	root.AddCommand(NewImportCmd(io, cfg))
	root.AddCommand(NewSearchCmd(io))
	root.AddCommand(NewDoctorCmd(io))
	return root
}
