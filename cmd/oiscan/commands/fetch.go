package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/oiscan/internal/contracts"
	"github.com/wonny/oiscan/internal/external/wikipedia"
	"github.com/wonny/oiscan/internal/provider"
	"github.com/wonny/oiscan/pkg/httputil"
)

type fetchOptions struct {
	out       string
	intervals int
	seed      int64
	noScrape  bool
}

func newFetchCmd(root *rootOptions) *cobra.Command {
	opts := &fetchOptions{}

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Generate the intraday dataset",
		Long: `Resolve the NIFTY 50 symbol list (Wikipedia, falling back to a static
list) and write a synthetic 5-minute price/OI series per symbol.

The output format follows the extension: .parquet or CSV.

Example:
  go run ./cmd/oiscan fetch
  go run ./cmd/oiscan fetch --out data/intraday.parquet --seed 42
  go run ./cmd/oiscan fetch --no-scrape --intervals 24`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(root)
			if err != nil {
				return err
			}
			applyFetchFlags(cmd, a, opts)
			return runFetch(cmd.Context(), a, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.out, "out", "", "output file (default DATA_FILE)")
	cmd.Flags().IntVar(&opts.intervals, "intervals", 0, "observations per symbol (default MOCK_INTERVALS)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed, 0 = time based (default MOCK_SEED)")
	cmd.Flags().BoolVar(&opts.noScrape, "no-scrape", false, "skip Wikipedia and use the static symbol list")

	return cmd
}

// applyFetchFlags lets explicit flags override env config
func applyFetchFlags(cmd *cobra.Command, a *app, opts *fetchOptions) {
	if cmd.Flags().Changed("out") {
		a.cfg.DataFile = opts.out
	}
	if cmd.Flags().Changed("intervals") && opts.intervals > 0 {
		a.cfg.Mock.Intervals = opts.intervals
	}
	if cmd.Flags().Changed("seed") {
		a.cfg.Mock.Seed = opts.seed
	}
	if opts.noScrape {
		a.cfg.Symbols.Enabled = false
	}
}

// newProvider wires symbol source, generator and writer
func newProvider(a *app) *provider.Provider {
	var source contracts.SymbolSource
	if a.cfg.Symbols.Enabled {
		httpClient := httputil.New(a.cfg, a.logger)
		source = wikipedia.NewClient(httpClient, a.logger, a.cfg.Symbols.URL, a.cfg.Symbols.Limit)
	}

	generator := provider.NewGenerator(
		a.cfg.Mock.Seed,
		a.cfg.Mock.Intervals,
		time.Duration(a.cfg.Mock.IntervalMinutes)*time.Minute,
	)

	return provider.New(source, generator, a.logger)
}

func runFetch(ctx context.Context, a *app, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	rows, err := newProvider(a).Fetch(ctx, a.cfg.DataFile)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	fmt.Fprintf(out, "Successfully generated %d data points and saved to '%s'.\n", rows, a.cfg.DataFile)
	return nil
}
