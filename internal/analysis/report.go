package analysis

import (
	"fmt"
	"io"

	"github.com/wonny/oiscan/internal/contracts"
)

const (
	topRule        = "---------------------------------------------------"
	noResultsLine  = "No stocks found with a positive correlation between Price % Change and OI % Change."
	completionLine = "Analysis complete."
)

// Reporter renders an analysis run as console text
// The first write error is kept and every later write becomes a no-op.
type Reporter struct {
	w         io.Writer
	precision int
	err       error
}

// NewReporter creates a reporter writing correlations with precision decimals
func NewReporter(w io.Writer, precision int) *Reporter {
	if precision < 0 {
		precision = 4
	}
	return &Reporter{w: w, precision: precision}
}

func (r *Reporter) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// Header announces the data source
func (r *Reporter) Header(source string) {
	r.printf("--- Analyzing Data from '%s' ---\n", source)
}

// Warning prints one skipped symbol
func (r *Reporter) Warning(s contracts.SkippedSymbol) {
	switch s.Reason {
	case contracts.SkipInsufficientSamples:
		r.printf("Warning: %s has only %d data points. Skipping correlation.\n", s.Symbol, s.Samples)
	case contracts.SkipUndefinedCorrelation:
		r.printf("Warning: Correlation for %s is NaN (data likely constant). Skipping.\n", s.Symbol)
	default:
		r.printf("Warning: %s skipped (%s).\n", s.Symbol, s.Reason)
	}
}

// Top prints the ranked section
func (r *Reporter) Top(top []contracts.CorrelationResult, topN int) {
	r.printf("\nTop %d Stocks with Highest Positive Intraday Price-OI Correlation:\n", topN)
	r.printf("%s\n", topRule)

	if len(top) == 0 {
		r.printf("%s\n", noResultsLine)
		return
	}
	for _, res := range top {
		r.printf("Stock: %s, Correlation: %.*f\n", res.Symbol, r.precision, res.Correlation)
	}
}

// Complete prints the completion marker
func (r *Reporter) Complete() {
	r.printf("\n%s\n", completionLine)
}

// Results writes everything after the header: warnings, ranking, completion
func (r *Reporter) Results(report *contracts.Report) error {
	for _, s := range report.Skipped {
		r.Warning(s)
	}
	r.Top(report.Top, report.TopN)
	r.Complete()
	return r.err
}

// Err returns the first write error
func (r *Reporter) Err() error {
	return r.err
}
