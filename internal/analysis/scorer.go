package analysis

import (
	"github.com/wonny/oiscan/internal/contracts"
)

// DefaultMinSamples is the minimum number of change records per symbol
const DefaultMinSamples = 6

// Scorer computes the price/OI correlation per symbol
// ⭐ SSOT: 상관계수 산출 및 제외 판정은 여기서만
type Scorer struct {
	MinSamples int
}

// NewScorer creates a scorer; minSamples <= 0 falls back to DefaultMinSamples
func NewScorer(minSamples int) *Scorer {
	if minSamples <= 0 {
		minSamples = DefaultMinSamples
	}
	return &Scorer{MinSamples: minSamples}
}

// Score groups changes by symbol (first-appearance order) and scores each group.
// Symbols failing the sample threshold or with an undefined coefficient are
// returned as skipped, in the same order.
func (s *Scorer) Score(changes []contracts.ChangeRecord) ([]contracts.CorrelationResult, []contracts.SkippedSymbol) {
	var (
		order  []string
		groups = make(map[string][]contracts.ChangeRecord)
	)
	for _, c := range changes {
		if _, ok := groups[c.Symbol]; !ok {
			order = append(order, c.Symbol)
		}
		groups[c.Symbol] = append(groups[c.Symbol], c)
	}

	results := make([]contracts.CorrelationResult, 0, len(order))
	var skipped []contracts.SkippedSymbol

	for _, sym := range order {
		group := groups[sym]
		n := len(group)

		if n < s.MinSamples {
			skipped = append(skipped, contracts.SkippedSymbol{
				Symbol:  sym,
				Reason:  contracts.SkipInsufficientSamples,
				Samples: n,
			})
			continue
		}

		x := make([]float64, n)
		y := make([]float64, n)
		for i, c := range group {
			x[i] = c.PriceChangePct
			y[i] = c.OIChangePct
		}

		r, ok := Pearson(x, y)
		if !ok {
			skipped = append(skipped, contracts.SkippedSymbol{
				Symbol:  sym,
				Reason:  contracts.SkipUndefinedCorrelation,
				Samples: n,
			})
			continue
		}

		results = append(results, contracts.CorrelationResult{
			Symbol:      sym,
			Correlation: r,
			Samples:     n,
		})
	}

	return results, skipped
}
