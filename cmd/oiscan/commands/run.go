package commands

import (
	"github.com/spf13/cobra"
)

func newRunCmd(root *rootOptions) *cobra.Command {
	fetchOpts := &fetchOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch then analyze in one process",
		Long: `Equivalent to "oiscan fetch" followed by "oiscan analyze" on the same file.

Example:
  go run ./cmd/oiscan run
  go run ./cmd/oiscan run --no-scrape --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(root)
			if err != nil {
				return err
			}
			applyFetchFlags(cmd, a, fetchOpts)

			if err := runFetch(cmd.Context(), a, cmd.ErrOrStderr()); err != nil {
				return err
			}
			return runAnalyze(cmd.Context(), a, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&fetchOpts.out, "out", "", "dataset file (default DATA_FILE)")
	cmd.Flags().IntVar(&fetchOpts.intervals, "intervals", 0, "observations per symbol (default MOCK_INTERVALS)")
	cmd.Flags().Int64Var(&fetchOpts.seed, "seed", 0, "random seed, 0 = time based (default MOCK_SEED)")
	cmd.Flags().BoolVar(&fetchOpts.noScrape, "no-scrape", false, "skip Wikipedia and use the static symbol list")

	return cmd
}
