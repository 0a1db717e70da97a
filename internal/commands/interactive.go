package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"mdl/internal/models"
	"mdl/internal/prompt"
)

// runInteractive asks for a query until it finds mods, lets the user pick a mod and
// one of its files, downloads that file and returns
func runInteractive(cmd *cobra.Command) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	p := prompt.New(cmd.InOrStdin(), s.out)

	for {
		// Search for a mod
		query, err := p.Ask("Search:")
		if err != nil {
			return err
		}

		mods, err := s.client.Search(ctx, query)
		if err != nil {
			return err
		}
		if len(mods) == 0 {
			fmt.Fprintln(s.out, "No results.")
			continue
		}

		// Select a result
		labels := make([]string, len(mods))
		for i, mod := range mods {
			labels[i] = mod.String()
		}
		choice, err := p.Select("Choose a mod to download.", labels)
		if err != nil {
			return err
		}
		mod := mods[choice]

		// Select a file
		files, err := s.client.Files(ctx, mod.Slug)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Fprintf(s.out, "No files for %s.\n", mod.Name)
			continue
		}

		models.SortByUploadedDesc(files)
		labels = make([]string, len(files))
		for i, file := range files {
			labels[i] = file.String()
		}
		choice, err = p.Select("Choose a file.", labels)
		if err != nil {
			return err
		}

		return s.download(ctx, files[choice], "")
	}
}
