package analysis

import (
	"sort"

	"github.com/wonny/oiscan/internal/contracts"
)

// DefaultTopN is the number of symbols reported
const DefaultTopN = 5

// Rank keeps strictly positive correlations, sorts them descending and
// truncates to topN. Ties keep their input order.
// ⭐ SSOT: 랭킹 로직은 여기서만
func Rank(results []contracts.CorrelationResult, topN int) []contracts.CorrelationResult {
	if topN <= 0 {
		topN = DefaultTopN
	}

	ranked := make([]contracts.CorrelationResult, 0, len(results))
	for _, r := range results {
		if r.IsPositive() {
			ranked = append(ranked, r)
		}
	}

	// Sort by correlation (descending)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Correlation > ranked[j].Correlation
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	return ranked
}
