package contracts

import "time"

// Observation is one intraday price/open-interest reading of a symbol
// ⭐ SSOT: Provider → Loader 관측 데이터 형식
type Observation struct {
	Symbol       string    `json:"symbol" validate:"required"`
	Timestamp    time.Time `json:"timestamp" validate:"required"`
	Price        float64   `json:"price" validate:"gt=0"`
	OpenInterest int64     `json:"open_interest" validate:"gte=0"`
}

// ObservationSeries holds the observations of a single symbol
// Observations are strictly ascending by Timestamp
type ObservationSeries struct {
	Symbol       string        `json:"symbol"`
	Observations []Observation `json:"observations"`
}

// Len returns the number of observations
func (s *ObservationSeries) Len() int {
	return len(s.Observations)
}

// IsOrdered reports whether timestamps are strictly increasing
func (s *ObservationSeries) IsOrdered() bool {
	for i := 1; i < len(s.Observations); i++ {
		if !s.Observations[i-1].Timestamp.Before(s.Observations[i].Timestamp) {
			return false
		}
	}
	return true
}

// ChangeRecord is the percentage change between two consecutive observations
// ⭐ SSOT: ChangeCalculator → Scorer 변화율 전달
type ChangeRecord struct {
	Symbol         string    `json:"symbol"`
	Timestamp      time.Time `json:"timestamp"` // later observation
	PriceChangePct float64   `json:"price_change_pct"`
	OIChangePct    float64   `json:"oi_change_pct"`
}

// CorrelationResult is the Pearson score of one qualifying symbol
// ⭐ SSOT: Scorer → Ranker 상관계수 전달
type CorrelationResult struct {
	Symbol      string  `json:"symbol"`
	Correlation float64 `json:"correlation"` // -1.0 ~ 1.0
	Samples     int     `json:"samples"`     // ChangeRecord 수
}

// IsPositive checks if the correlation is strictly positive
func (r *CorrelationResult) IsPositive() bool {
	return r.Correlation > 0
}
