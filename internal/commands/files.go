package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"mdl/internal/models"
)

// NewFilesCommand creates the 'files' subcommand for listing a mod's files
// Usage: mdl files jei
func NewFilesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "files <slug>",
		Short: "List the files of a mod, newest first",
		Long: `List the downloadable files of the mod identified by its slug, newest upload first.

The id column is what the download command expects.

Example:
  mdl files jei`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilesCommand(cmd, args[0])
		},
	}
}

func runFilesCommand(cmd *cobra.Command, slug string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	files, err := s.client.Files(cmd.Context(), slug)
	if err != nil {
		return err
	}
	models.SortByUploadedDesc(files)

	rows := make([][]string, len(files))
	for i, f := range files {
		rows[i] = []string{
			strconv.Itoa(f.ID),
			f.GameVersion,
			f.Uploaded.Format("2006-01-02 15:04"),
			strconv.Itoa(f.Downloads),
			f.Size,
			f.Name,
		}
	}
	displayTable(s.out, []string{"id", "version", "uploaded", "downloads", "size", "name"}, rows)
	return nil
}
