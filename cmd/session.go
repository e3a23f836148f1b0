package cmd

import (
	"fmt"
	"os"

	"github.com/brogergvhs/tinydesk/internal/config"
	"github.com/brogergvhs/tinydesk/internal/output"
	"github.com/brogergvhs/tinydesk/internal/providers/tinydesk"
	"github.com/brogergvhs/tinydesk/internal/ui"
	"github.com/brogergvhs/tinydesk/internal/util"

	"github.com/spf13/cobra"
)

type session struct {
	cfg     *config.Config
	log     *ui.Logger
	scraper *tinydesk.Scraper
	writer  *output.Writer
}

// newSession merges config with the persistent flags and wires the scraper
// and writer shared by scrape and archive.
func newSession(cmd *cobra.Command, opts config.Options) (*session, error) {
	opts.IgnoreConfig = flagIgnoreConfig
	opts.Debug = flagDebug
	opts.Output = flagOutput
	opts.UserAgent = flagUserAgent
	opts.TimeoutSeconds = flagTimeout
	opts.TolerateStatus = flagTolerateStatus
	opts.CloudflareBypass = flagCloudflare

	cfg, usedPath, err := config.LoadMerged(opts)
	if err != nil {
		return nil, err
	}

	logSvc := ui.NewLogger(cfg.Debug)
	logSvc.Out = cmd.OutOrStdout()
	logSvc.Debugf("config: %s\n", usedPath)

	if err := os.MkdirAll(cfg.Output, 0755); err != nil {
		return nil, fmt.Errorf("cannot create output folder: %w", err)
	}

	client := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:          cfg.Timeout(),
		UserAgent:        cfg.UserAgent,
		CloudflareBypass: cfg.CloudflareBypass,
		DebugLogger:      logSvc,
	})

	return &session{
		cfg:     cfg,
		log:     logSvc,
		scraper: tinydesk.NewScraper(client, logSvc, !cfg.TolerateStatus),
		writer:  output.NewWriter(cfg.Output),
	}, nil
}
