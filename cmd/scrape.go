package cmd

import (
	"fmt"

	"github.com/brogergvhs/tinydesk/internal/config"
	"github.com/brogergvhs/tinydesk/internal/output"
	"github.com/brogergvhs/tinydesk/internal/ui"
	"github.com/brogergvhs/tinydesk/internal/util"

	"github.com/spf13/cobra"
)

func init() {
	scrapeCmd := &cobra.Command{
		Use:   "scrape <url>",
		Short: "Scrape a single Tiny Desk concert page into <artist>_info.json",
		Args:  cobra.ExactArgs(1),
		RunE:  runScrape,
	}

	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	sess, err := newSession(cmd, config.Options{})
	if err != nil {
		return err
	}

	util.SetupInterruptHandler(sess.cfg.Output, output.PartialSuffix)

	out := cmd.OutOrStdout()
	pageURL := args[0]

	fmt.Fprintf(out, "Navigating to %s...\n", pageURL)

	c, err := sess.scraper.Scrape(cmd.Context(), pageURL)
	if err != nil {
		return err
	}

	ui.PrintConcert(out, c)

	path, _, err := sess.writer.Write(c)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nInformation saved to %s\n", path)
	return nil
}
