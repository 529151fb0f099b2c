package jobs

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/wonny/oiscan/internal/analysis"
	"github.com/wonny/oiscan/internal/analysisconfig"
	"github.com/wonny/oiscan/internal/provider"
	"github.com/wonny/oiscan/pkg/config"
	"github.com/wonny/oiscan/pkg/logger"
)

// AnalysisJob regenerates the dataset and reports the top correlations
// ⭐ SSOT: 정기 fetch → analyze 스케줄은 이 Job에서만
type AnalysisJob struct {
	provider *provider.Provider
	settings *analysisconfig.Config
	config   *config.Config
	out      io.Writer
	logger   *logger.Logger
}

// NewAnalysisJob creates a new analysis job writing reports to out
func NewAnalysisJob(p *provider.Provider, settings *analysisconfig.Config, cfg *config.Config, out io.Writer, log *logger.Logger) *AnalysisJob {
	return &AnalysisJob{
		provider: p,
		settings: settings,
		config:   cfg,
		out:      out,
		logger:   log,
	}
}

// Name returns the job name
func (j *AnalysisJob) Name() string {
	return "oi_analysis"
}

// Schedule returns the configured cron schedule (with seconds)
func (j *AnalysisJob) Schedule() string {
	return j.config.ScheduleCron
}

// Run executes fetch then analyze under a fresh run id
func (j *AnalysisJob) Run(ctx context.Context) error {
	runID := uuid.NewString()
	log := j.logger.WithField("run_id", runID)
	path := j.config.DataFile

	log.Info("Starting scheduled fetch")
	rows, err := j.provider.Fetch(ctx, path)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	log.WithField("rows", rows).Info("Fetch completed")

	report, err := analysis.NewPipeline(j.settings, j.logger).
		WithRunID(runID).
		Run(ctx, path, j.out)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	if !report.HasResults() {
		log.Warn("No positively correlated symbols this run")
	}
	log.WithFields(map[string]interface{}{
		"top":     len(report.Top),
		"skipped": len(report.Skipped),
	}).Info("Scheduled analysis completed")

	return nil
}
