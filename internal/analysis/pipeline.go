package analysis

import (
	"context"
	"fmt"
	"io"

	"github.com/wonny/oiscan/internal/analysisconfig"
	"github.com/wonny/oiscan/internal/contracts"
	"github.com/wonny/oiscan/internal/dataset"
	"github.com/wonny/oiscan/pkg/logger"
)

// Pipeline runs Loader → ChangeCalculator → Scorer → Ranker → Reporter
// ⭐ SSOT: 분석 실행 순서는 여기서만 정의
type Pipeline struct {
	loader   contracts.ObservationLoader
	settings *analysisconfig.Config
	logger   *logger.Logger
}

// NewPipeline creates a pipeline over the local dataset store
func NewPipeline(settings *analysisconfig.Config, log *logger.Logger) *Pipeline {
	if settings == nil {
		settings = analysisconfig.Default()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Pipeline{
		loader:   dataset.FileStore{},
		settings: settings,
		logger:   log,
	}
}

// WithLoader replaces the dataset loader
func (p *Pipeline) WithLoader(loader contracts.ObservationLoader) *Pipeline {
	p.loader = loader
	return p
}

// WithRunID tags every log line of this pipeline with run_id
func (p *Pipeline) WithRunID(runID string) *Pipeline {
	p.logger = p.logger.WithField("run_id", runID)
	return p
}

// Run analyzes the dataset at path and writes the report to out.
// A missing input writes nothing; a parse failure writes only the header.
func (p *Pipeline) Run(ctx context.Context, path string, out io.Writer) (*contracts.Report, error) {
	if err := dataset.Exists(path); err != nil {
		return nil, err
	}

	topN := p.settings.Analysis.TopN
	rep := NewReporter(out, p.settings.Report.Precision)
	rep.Header(path)

	hash, err := analysisconfig.Hash(p.settings)
	if err != nil {
		return nil, fmt.Errorf("hash settings: %w", err)
	}
	log := p.logger.WithFields(map[string]interface{}{
		"source":        path,
		"settings_hash": hash,
	})
	log.Info("Analysis started")

	observations, err := p.loader.Load(path)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	set := GroupBySymbol(observations)
	if err := set.Validate(); err != nil {
		return nil, &dataset.InputParseError{Path: path, Err: err}
	}

	changes := ComputeChanges(set)
	results, skipped := NewScorer(p.settings.Analysis.MinSamples).Score(changes)

	for _, s := range skipped {
		log.WithFields(map[string]interface{}{
			"symbol":  s.Symbol,
			"reason":  string(s.Reason),
			"samples": s.Samples,
		}).Warn("Symbol skipped")
	}

	report := &contracts.Report{
		Source:       path,
		Observations: len(observations),
		Symbols:      set.Len(),
		Skipped:      skipped,
		Scored:       results,
		Top:          Rank(results, topN),
		TopN:         topN,
	}
	if err := rep.Results(report); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}

	log.WithFields(map[string]interface{}{
		"observations": report.Observations,
		"symbols":      report.Symbols,
		"scored":       len(report.Scored),
		"insufficient": len(report.SkippedBy(contracts.SkipInsufficientSamples)),
		"undefined":    len(report.SkippedBy(contracts.SkipUndefinedCorrelation)),
		"top":          len(report.Top),
	}).Info("Analysis completed")

	return report, nil
}
