package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/wonny/oiscan/internal/contracts"
	"github.com/wonny/oiscan/internal/dataset"
	"github.com/wonny/oiscan/pkg/logger"
)

// Provider resolves symbols, generates mock series and writes the dataset
// ⭐ SSOT: 입력 데이터셋 생성은 여기서만
type Provider struct {
	source    contracts.SymbolSource
	fallback  []string
	generator *Generator
	writer    contracts.ObservationWriter
	logger    *logger.Logger
	now       func() time.Time
}

// New creates a provider; source may be nil to always use the fallback list
func New(source contracts.SymbolSource, generator *Generator, log *logger.Logger) *Provider {
	if log == nil {
		log = logger.Nop()
	}
	return &Provider{
		source:    source,
		fallback:  DefaultSymbols,
		generator: generator,
		writer:    dataset.FileStore{},
		logger:    log,
		now:       time.Now,
	}
}

// WithFallback replaces the static symbol list
func (p *Provider) WithFallback(symbols []string) *Provider {
	p.fallback = symbols
	return p
}

// WithWriter replaces the dataset writer
func (p *Provider) WithWriter(w contracts.ObservationWriter) *Provider {
	p.writer = w
	return p
}

// WithClock replaces the clock used for the series start time
func (p *Provider) WithClock(now func() time.Time) *Provider {
	p.now = now
	return p
}

// Fetch writes a fresh dataset to path and returns the number of rows written
func (p *Provider) Fetch(ctx context.Context, path string) (int, error) {
	p.logger.Info("Resolving symbol list")
	symbols := ResolveSymbols(ctx, p.source, p.fallback, p.logger)
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	// 마지막 관측이 현재 시각 직전이 되도록 시작 시각 계산
	span := time.Duration(p.generator.Intervals()) * p.generator.Step()
	start := p.now().Add(-span).Truncate(time.Second)

	p.logger.WithFields(map[string]interface{}{
		"symbols":   len(symbols),
		"intervals": p.generator.Intervals(),
		"start":     start.Format(dataset.TimestampLayout),
	}).Info("Generating intraday data simulation")

	observations := p.generator.Generate(symbols, start)

	if err := p.writer.Write(path, observations); err != nil {
		return 0, fmt.Errorf("write dataset %s: %w", path, err)
	}

	p.logger.WithFields(map[string]interface{}{
		"rows": len(observations),
		"path": path,
	}).Info("Dataset written")

	return len(observations), nil
}
