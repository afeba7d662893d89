package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KRNK97/ai-browser-tattoo-generator/internal/config"
)

// NewRootCmd creates the root command for histsum.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "histsum",
		Short: "Summarize browsing-history exports by domain",
		Long: `histsum turns a browsing-history export into a compact summary.

It works in two stages with a file handoff:
  1. extract   normalizes the export into {url, title, timestamp} records
  2. summarize groups cleaned titles by domain and ranks the domains

"run" performs both stages. Exports may be a JSON array of entries or an
object whose values are arrays of entries (Google Takeout layout).`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().String("log-format", config.LogFormatText, "Log format: text or json")

	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewExtractCmd())
	cmd.AddCommand(NewSummarizeCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
