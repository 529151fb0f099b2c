package contracts

// SkipReason explains why a symbol was excluded from scoring
type SkipReason string

const (
	// SkipInsufficientSamples: ChangeRecord 수가 최소 샘플 미만
	SkipInsufficientSamples SkipReason = "insufficient_samples"
	// SkipUndefinedCorrelation: 분산 0 또는 비유한 값으로 상관계수 정의 불가
	SkipUndefinedCorrelation SkipReason = "undefined_correlation"
)

// SkippedSymbol is a soft, per-symbol condition. It never aborts a run.
type SkippedSymbol struct {
	Symbol  string     `json:"symbol"`
	Reason  SkipReason `json:"reason"`
	Samples int        `json:"samples"`
}

// Report is the outcome of one analysis run
// ⭐ SSOT: Pipeline → Reporter 결과 전달
type Report struct {
	Source       string              `json:"source"`
	Observations int                 `json:"observations"`
	Symbols      int                 `json:"symbols"`
	Skipped      []SkippedSymbol     `json:"skipped"`
	Scored       []CorrelationResult `json:"scored"`
	Top          []CorrelationResult `json:"top"`
	TopN         int                 `json:"top_n"`
}

// HasResults reports whether at least one symbol made the top list
func (r *Report) HasResults() bool {
	return len(r.Top) > 0
}

// SkippedBy returns the skipped symbols with the given reason
func (r *Report) SkippedBy(reason SkipReason) []SkippedSymbol {
	var out []SkippedSymbol
	for _, s := range r.Skipped {
		if s.Reason == reason {
			out = append(out, s)
		}
	}
	return out
}
