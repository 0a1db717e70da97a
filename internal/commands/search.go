package commands

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// NewSearchCommand creates the 'search' subcommand for listing matching mods
// Usage: mdl search just enough items
func NewSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>...",
		Short: "Search for mods",
		Long: `Search the site for mods and print the results in the order the site ranks them.

The slug column is what the files and download commands expect.

Example:
  mdl search just enough items`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearchCommand(cmd, strings.Join(args, " "))
		},
	}
}

func runSearchCommand(cmd *cobra.Command, query string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	mods, err := s.client.Search(cmd.Context(), query)
	if err != nil {
		return err
	}

	rows := make([][]string, len(mods))
	for i, mod := range mods {
		rows[i] = []string{strconv.Itoa(mod.ID), mod.Slug, mod.Name, mod.Author}
	}
	displayTable(s.out, []string{"id", "slug", "name", "author"}, rows)
	return nil
}
