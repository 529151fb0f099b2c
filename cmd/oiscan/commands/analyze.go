package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wonny/oiscan/internal/analysis"
	"github.com/wonny/oiscan/internal/analysisconfig"
	"github.com/wonny/oiscan/internal/dataset"
)

type analyzeOptions struct {
	in         string
	top        int
	minSamples int
}

func newAnalyzeCmd(root *rootOptions) *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Rank symbols by price/OI change correlation",
		Long: `Load the intraday dataset, compute % changes between consecutive
observations and print the top positively correlated symbols.

Exit code is 1 when the input is missing or malformed.

Example:
  go run ./cmd/oiscan analyze
  go run ./cmd/oiscan analyze --in data/intraday.parquet --top 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(root)
			if err != nil {
				return err
			}
			if err := applyAnalyzeFlags(cmd, a, opts); err != nil {
				return err
			}
			return runAnalyze(cmd.Context(), a, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&opts.in, "in", "", "input file (default DATA_FILE)")
	cmd.Flags().IntVar(&opts.top, "top", 0, "number of symbols to report (default from settings)")
	cmd.Flags().IntVar(&opts.minSamples, "min-samples", 0, "minimum change records per symbol, at least 6 (default from settings)")

	return cmd
}

// applyAnalyzeFlags overrides settings and re-validates them
func applyAnalyzeFlags(cmd *cobra.Command, a *app, opts *analyzeOptions) error {
	if cmd.Flags().Changed("in") {
		a.cfg.DataFile = opts.in
	}
	if cmd.Flags().Changed("top") {
		a.settings.Analysis.TopN = opts.top
	}
	if cmd.Flags().Changed("min-samples") {
		a.settings.Analysis.MinSamples = opts.minSamples
	}
	if err := analysisconfig.Validate(a.settings); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

// runAnalyze prints the report to out and user-facing errors to errOut
func runAnalyze(ctx context.Context, a *app, out, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	path := a.cfg.DataFile

	_, err := analysis.NewPipeline(a.settings, a.logger).Run(ctx, path, out)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, dataset.ErrInputNotFound):
		fmt.Fprintf(errOut, "Error: Input file '%s' not found.\n", path)
		fmt.Fprintln(errOut, "Please run 'oiscan fetch' first to generate the necessary data.")
	case errors.Is(err, dataset.ErrInputParse):
		fmt.Fprintf(errOut, "Error reading or processing input file: %v\n", err)
	default:
		fmt.Fprintf(errOut, "Error: %v\n", err)
	}

	a.logger.WithError(err).Error("Analysis failed")
	return &reportedError{err: err}
}
