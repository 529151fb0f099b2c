package provider

import (
	"context"

	"github.com/wonny/oiscan/internal/contracts"
	"github.com/wonny/oiscan/pkg/logger"
)

// DefaultSymbols is used when the symbol source is disabled or fails
var DefaultSymbols = []string{
	"RELIANCE", "HDFCBANK", "TCS", "ICICIBANK", "INFY",
	"KOTAKBANK", "HINDUNILVR", "ITC", "LT", "SBIN",
}

// StaticSource serves a fixed symbol list
type StaticSource []string

// Symbols implements contracts.SymbolSource
func (s StaticSource) Symbols(ctx context.Context) ([]string, error) {
	out := make([]string, len(s))
	copy(out, s)
	return out, nil
}

// ResolveSymbols asks src for symbols and falls back on any error.
// A nil src means scraping is disabled.
func ResolveSymbols(ctx context.Context, src contracts.SymbolSource, fallback []string, log *logger.Logger) []string {
	if src == nil {
		log.Info("Symbol scraping disabled, using fallback list")
		return fallback
	}

	symbols, err := src.Symbols(ctx)
	if err != nil {
		log.WithError(err).Warn("Dynamic symbol scraping failed, falling back to static list")
		return fallback
	}
	if len(symbols) == 0 {
		log.Warn("Symbol source returned no symbols, falling back to static list")
		return fallback
	}

	log.WithField("count", len(symbols)).Info("Resolved symbols")
	return symbols
}
