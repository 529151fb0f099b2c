package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wonny/oiscan/internal/analysisconfig"
)

func newSettingsCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect analysis settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings and their hash",
		Long: `Print analysis settings after defaults and validation.

Example:
  go run ./cmd/oiscan settings show
  go run ./cmd/oiscan settings show --settings analysis.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(root)
			if err != nil {
				return err
			}
			return showSettings(cmd.OutOrStdout(), a.settings)
		},
	})

	return cmd
}

func showSettings(out io.Writer, settings *analysisconfig.Config) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	hash, err := analysisconfig.Hash(settings)
	if err != nil {
		return fmt.Errorf("hash settings: %w", err)
	}

	fmt.Fprintf(out, "# hash: %s\n", hash)
	_, err = out.Write(data)
	return err
}
