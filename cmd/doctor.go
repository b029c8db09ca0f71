package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idiampro/idp/internal/outline"
)

// NewDoctorCmd creates the doctor subcommand: checks an outline for
// duplicate child references. With --fix the repaired outline is written
// back; without it the command is purely diagnostic.
func NewDoctorCmd(io OutlineIO) *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:          "doctor <outline-path>",
		Short:        "Check an outline for duplicate children and optionally repair it",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			o, err := io.LoadOutline(path)
			if err != nil {
				return err
			}

			if !fix {
				outline.CheckOutlineIntegrity(o, cmd.OutOrStdout())
				if len(outline.FindDuplicateChildren(o.Nodes)) > 0 {
					return fmt.Errorf("outline has integrity problems; re-run with --fix to repair")
				}
				return nil
			}

			res := outline.FixDuplicateChildren(o)
			for _, line := range res.Report {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			if !res.Fixed {
				return nil
			}
			if err := io.SaveOutline(path, res.Outline); err != nil {
				return fmt.Errorf("writing repaired outline: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Repaired "+sanitizeText(path))
			return nil
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "repair duplicate children and rewrite the file")

	return cmd
}
