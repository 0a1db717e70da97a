package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mdl/internal/config"
)

// NewDownloadCommand creates the 'download' subcommand for fetching one file of a mod
// Usage: mdl download jei 2724420 [--output jei.jar]
func NewDownloadCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "download <slug> <file-id>",
		Short: "Download one file of a mod",
		Long: `Download a file of the mod identified by its slug. The file id is shown by the files command.

The file is saved in the configured download directory under its display name
unless --output is given. An existing file with the same name is overwritten.

Example:
  mdl download jei 2724420
  mdl download jei 2724420 --output jei.jar`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[1])
			if err != nil || id <= 0 {
				return fmt.Errorf("file id must be a positive number, got %q", args[1])
			}
			return runDownloadCommand(cmd, args[0], id, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", config.OutputDescription)

	return cmd
}

func runDownloadCommand(cmd *cobra.Command, slug string, id int, output string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	file, err := s.client.File(cmd.Context(), slug, id)
	if err != nil {
		return err
	}

	return s.download(cmd.Context(), file, output)
}
