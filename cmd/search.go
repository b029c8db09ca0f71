package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idiampro/idp/internal/search"
)

// NewSearchCmd creates the search subcommand: fuzzy matches node names
// and prints one "prefix name (id)" line per hit, best matches first.
func NewSearchCmd(io OutlineIO) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "search <outline-path> <term>",
		Short:        "Fuzzy-search node names",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, term := args[0], args[1]

			o, err := io.LoadOutline(path)
			if err != nil {
				return err
			}

			matches := search.Nodes(o.Nodes, term)
			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matches.")
				return nil
			}
			for _, m := range matches {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n",
					m.Node.Prefix, sanitizeText(m.Node.Name), m.Node.ID)
			}
			return nil
		},
	}
	return cmd
}
