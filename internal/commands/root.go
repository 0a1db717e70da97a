// Package commands implements the CLI commands for the mod downloader
package commands

import (
	"github.com/spf13/cobra"

	"mdl/internal/config"
)

// NewRootCommand creates the 'mdl' command. Run without a subcommand it starts the
// interactive search, choose and download loop.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mdl",
		Short: "Search CurseForge and download mod files",
		Long: `mdl searches the CurseForge mod site, lists the files of a mod and downloads one of them.

Run without arguments for the interactive mode:
  1. Enter a search query
  2. Choose a mod from the results
  3. Choose one of its files (newest first)
  4. The file is downloaded into the download directory

The subcommands perform the same steps non-interactively.

Settings are read from mdl.yaml in the working directory, or from the file
given with --config:

  site:
    base_url: https://minecraft.curseforge.com
  download:
    directory: .
    max_redirects: 10
  log:
    level: warn`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd)
		},
	}

	cmd.PersistentFlags().StringP("config", "c", "", config.ConfigFileDescription)

	// Add subcommands
	cmd.AddCommand(NewSearchCommand())
	cmd.AddCommand(NewFilesCommand())
	cmd.AddCommand(NewDownloadCommand())

	return cmd
}
