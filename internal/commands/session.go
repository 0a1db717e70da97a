package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mdl/internal/config"
	"mdl/internal/curseforge"
	"mdl/internal/downloader"
	"mdl/internal/logger"
	"mdl/internal/models"
)

// barResolution is the number of steps the progress bar is divided into
const barResolution = 1000

// session holds what every command needs: configuration, logger and site client
type session struct {
	cfg    *config.Config
	log    *zap.Logger
	client *curseforge.Client
	out    io.Writer
}

// newSession loads the configuration named by the --config flag and builds the
// logger and site client from it
func newSession(cmd *cobra.Command) (*session, error) {
	// Not defined when a subcommand runs on its own
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.InitLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	client, err := curseforge.NewClient(cfg.Site, nil, log.Named("curseforge"))
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:    cfg,
		log:    log,
		client: client,
		out:    cmd.OutOrStdout(),
	}, nil
}

func (s *session) Close() {
	_ = s.log.Sync()
}

// download saves file into the download directory as name, or as the file's
// display name when name is empty, drawing a progress bar while it runs
func (s *session) download(ctx context.Context, file models.FileRecord, name string) error {
	if name == "" {
		name = file.Name
	}
	base := filepath.Base(name)
	if base == "." || base == string(filepath.Separator) {
		return fmt.Errorf("invalid file name %q", name)
	}
	dest := filepath.Join(s.cfg.Download.Directory, base)

	fmt.Fprintf(s.out, "Downloading %s to %s.\n", file.Link, dest)

	bar := newProgressBar(s.out)
	tracker := downloader.NewRatioTracker(func(ratio float64) {
		_ = bar.Set(int(ratio * barResolution))
	})

	dlConfig := downloader.Config{
		MaxRedirects: s.cfg.Download.MaxRedirects,
		UserAgent:    s.cfg.Site.UserAgent,
		Logger:       s.log.Named("downloader"),
	}
	tracker.Apply(&dlConfig)

	n, err := downloader.DownloadWithContext(ctx, dest, file.Link, dlConfig)
	if err != nil {
		fmt.Fprintln(s.out)
		return fmt.Errorf("failed to download %s: %w", file.Name, err)
	}
	_ = bar.Finish()

	fmt.Fprintf(s.out, "\nSaved %s (%d bytes)\n", dest, n)
	return nil
}

func newProgressBar(out io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(barResolution,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("Downloading."),
		progressbar.OptionSetWidth(20),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}
