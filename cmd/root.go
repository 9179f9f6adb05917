// Package cmd provides the command-line interface for the metro tool
package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/kedare/metro/internal/logger"
	"github.com/kedare/metro/internal/output"
	"github.com/kedare/metro/internal/status"
	"github.com/spf13/cobra"
)

const errorPrefix = "Ocorreu um erro:"

var logLevel string

// Overridden in tests.
var (
	feedURL        = status.DefaultURL
	reportLocation = time.Local
)

var rootCmd = &cobra.Command{
	Use:   "metro",
	Short: "Show the operational status of the metro lines",
	Long:  "Fetch the current status of every metro line and print it as a colorized report, highlighting lines running with reduced speed.",
	Args:  cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.SetLevel(logLevel); err != nil {
			return fmt.Errorf("invalid log level '%s': %w", logLevel, err)
		}
		logger.Log.Debugf("Log level set to: %s", logLevel)

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runReport(cmd.Context(), cmd.OutOrStdout()); err != nil {
			logger.Log.Errorf("%s %v", errorPrefix, err)
		}

		return nil
	},
	SilenceUsage: true,
}

// runReport fetches, formats and prints the status report. Nothing is written
// to out unless every step succeeds.
func runReport(ctx context.Context, out io.Writer) error {
	client := status.NewClient(nil, status.WithBaseURL(feedURL))

	spinner := output.NewSpinner("Consultando status do metrô")
	spinner.Start()
	report, err := client.Report(ctx)
	spinner.Stop()

	if err != nil {
		return err
	}

	logger.Log.Debugf("Fetched %d lines from %s", len(report.Entries), client.URL())

	lines, err := output.FormatReport(report)
	if err != nil {
		return fmt.Errorf("format report: %w", err)
	}

	return output.RenderReport(out, lines, report.Date, reportLocation)
}

// ExecuteContext runs the root command; a nil ctx is replaced by context.Background.
func ExecuteContext(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Set the logging level (trace, debug, info, warn, error, fatal)")
}
