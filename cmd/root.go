package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagIgnoreConfig bool
	flagDebug        bool

	flagOutput         string
	flagUserAgent      string
	flagTimeout        int
	flagTolerateStatus bool
	flagCloudflare     bool
)

var rootCmd = &cobra.Command{
	Use:           "tinydesk",
	Short:         "Tiny Desk concert metadata scraper with JSON output",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagIgnoreConfig, "ignore-config", false, "ignore config and use only CLI flags")

	rootCmd.PersistentFlags().StringVar(&flagOutput, "output", "", "output folder for JSON files")
	rootCmd.PersistentFlags().StringVar(&flagUserAgent, "user-agent", "", "send this User-Agent (default: none)")
	rootCmd.PersistentFlags().IntVar(&flagTimeout, "timeout", 0, "request timeout in seconds (0 = no timeout)")
	rootCmd.PersistentFlags().BoolVar(&flagTolerateStatus, "tolerate-status", false, "parse non-2xx responses instead of failing")
	rootCmd.PersistentFlags().BoolVar(&flagCloudflare, "cloudflare-bypass", false, "wrap the HTTP transport with the Cloudflare bypass")
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
