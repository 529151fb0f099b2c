package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wonny/oiscan/internal/analysisconfig"
	"github.com/wonny/oiscan/pkg/config"
	"github.com/wonny/oiscan/pkg/logger"
)

// rootOptions holds the global flags
type rootOptions struct {
	configFile   string
	settingsFile string
	verbose      bool
}

// app bundles what every command needs after bootstrap
type app struct {
	cfg      *config.Config
	settings *analysisconfig.Config
	logger   *logger.Logger
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "oiscan",
		Short: "Intraday price / open-interest correlation scanner",
		Long: `oiscan ranks symbols by the Pearson correlation between intraday
price % change and open-interest % change.

Usage:
  go run ./cmd/oiscan [command]

Examples:
  go run ./cmd/oiscan fetch
  go run ./cmd/oiscan analyze
  go run ./cmd/oiscan run --config .env
  go run ./cmd/oiscan scheduler start`,
		// 에러 출력은 executeRoot에서 한 번만
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "env file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&opts.settingsFile, "settings", "", "analysis settings YAML (overrides ANALYSIS_SETTINGS)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(
		newFetchCmd(opts),
		newAnalyzeCmd(opts),
		newRunCmd(opts),
		newSchedulerCmd(opts),
		newSettingsCmd(opts),
	)

	return rootCmd
}

// Execute runs the CLI. This is called by main.main().
// SIGINT/SIGTERM cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return executeRoot(ctx, NewRootCmd())
}

// reportedError marks an error whose message the command already printed
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// executeRoot runs the tree and prints any error not yet shown to the user
func executeRoot(ctx context.Context, rootCmd *cobra.Command) error {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	var reported *reportedError
	if !errors.As(err, &reported) {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// bootstrap loads env config, logger and analysis settings
func bootstrap(opts *rootOptions) (*app, error) {
	cfg, err := config.LoadFrom(opts.configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}

	log := logger.New(cfg)

	settingsPath := cfg.AnalysisSettings
	if opts.settingsFile != "" {
		settingsPath = opts.settingsFile
	}
	settings, err := analysisconfig.LoadOrDefault(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("load analysis settings %s: %w", settingsPath, err)
	}

	log.WithFields(map[string]interface{}{
		"env":       cfg.Env,
		"data_file": cfg.DataFile,
		"settings":  settingsPath,
	}).Debug("Configuration loaded")

	return &app{cfg: cfg, settings: settings, logger: log}, nil
}
