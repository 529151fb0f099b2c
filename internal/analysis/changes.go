package analysis

import (
	"github.com/wonny/oiscan/internal/contracts"
)

// PercentChange returns (cur/prev - 1) * 100.
// prev == 0 gives ±Inf or NaN, left for the scorer to reject.
func PercentChange(prev, cur float64) float64 {
	return (cur/prev - 1) * 100
}

// ComputeChanges derives one ChangeRecord per consecutive observation pair.
// A series of n observations yields max(n-1, 0) records; the first is dropped.
func ComputeChanges(set *SeriesSet) []contracts.ChangeRecord {
	var changes []contracts.ChangeRecord

	for _, sym := range set.symbols {
		obs := set.Get(sym).Observations
		for i := 1; i < len(obs); i++ {
			prev, cur := obs[i-1], obs[i]
			changes = append(changes, contracts.ChangeRecord{
				Symbol:         sym,
				Timestamp:      cur.Timestamp,
				PriceChangePct: PercentChange(prev.Price, cur.Price),
				OIChangePct:    PercentChange(float64(prev.OpenInterest), float64(cur.OpenInterest)),
			})
		}
	}

	return changes
}
