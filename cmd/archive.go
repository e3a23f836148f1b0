package cmd

import (
	"fmt"
	"time"

	"github.com/brogergvhs/tinydesk/internal/archive"
	"github.com/brogergvhs/tinydesk/internal/config"
	"github.com/brogergvhs/tinydesk/internal/output"
	"github.com/brogergvhs/tinydesk/internal/ui"
	"github.com/brogergvhs/tinydesk/internal/util"

	"github.com/spf13/cobra"
)

var (
	flagRange      string
	flagList       string
	flagDryRun     bool
	flagArchiveURL string
	flagNoProgress bool
)

func init() {
	archiveCmd := &cobra.Command{
		Use:   "archive <year> <month> [day]",
		Short: "Scrape every concert the archive lists for a month or a single day",
		Args:  cobra.RangeArgs(2, 3),
		RunE:  runArchive,
	}

	archiveCmd.Flags().StringVar(&flagRange, "range", "", "scrape a range of the found concerts by position (e.g. 2-5)")
	archiveCmd.Flags().StringVar(&flagList, "list", "", "scrape specific found concerts by position (e.g. 1,3,5)")
	archiveCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "list the concerts that would be scraped, don't scrape")
	archiveCmd.Flags().StringVar(&flagArchiveURL, "archive-url", "", "archive listing page URL")
	archiveCmd.Flags().BoolVar(&flagNoProgress, "no-progress", false, "print one line per concert instead of a progress bar")

	rootCmd.AddCommand(archiveCmd)
}

func runArchive(cmd *cobra.Command, args []string) error {
	var day string
	if len(args) == 3 {
		day = args[2]
	}

	period, err := archive.ParsePeriod(args[0], args[1], day)
	if err != nil {
		return err
	}

	sess, err := newSession(cmd, config.Options{
		ArchiveURL: flagArchiveURL,
		NoProgress: flagNoProgress,
	})
	if err != nil {
		return err
	}

	util.SetupInterruptHandler(sess.cfg.Output, output.PartialSuffix)

	out := cmd.OutOrStdout()

	var pm *ui.MPBProgressManager
	if !sess.cfg.NoProgress && !flagDryRun {
		pm = ui.NewProgressManager(out)
	}

	runner := archive.NewRunner(sess.scraper, sess.writer, sess.log, out, pm)
	start := time.Now()

	sum, err := runner.Run(cmd.Context(), period, archive.Options{
		ArchiveURL: sess.cfg.ArchiveURL,
		Range:      flagRange,
		List:       flagList,
		DryRun:     flagDryRun,
	})
	if pm != nil {
		pm.Close()
	}
	if err != nil {
		return err
	}

	if flagDryRun {
		return nil
	}

	if sum.Stats.TotalConcerts.Load() == 0 {
		fmt.Fprintf(out, "No concerts scraped for %s.\n", period)
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Archive Summary:")
	fmt.Fprintf(out, "Concerts: %d\n", sum.Stats.TotalConcerts.Load())
	fmt.Fprintf(out, "Songs:    %d\n", sum.Stats.TotalSongs.Load())
	fmt.Fprintf(out, "Data:     %s\n", util.Human(sum.Stats.TotalBytes.Load()))
	fmt.Fprintf(out, "Time:     %s\n", time.Since(start).Round(time.Second))
	for _, f := range sum.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
	fmt.Fprintln(out, "\nAll done.")

	return nil
}
