package analysis

import (
	"time"

	"github.com/wonny/oiscan/internal/contracts"
)

var testBase = time.Date(2024, 1, 15, 9, 15, 0, 0, time.UTC)

// makeSeries builds 5-minute observations for one symbol
func makeSeries(symbol string, prices []float64, ois []int64) []contracts.Observation {
	obs := make([]contracts.Observation, len(prices))
	for i := range prices {
		obs[i] = contracts.Observation{
			Symbol:       symbol,
			Timestamp:    testBase.Add(time.Duration(i) * 5 * time.Minute),
			Price:        prices[i],
			OpenInterest: ois[i],
		}
	}
	return obs
}

// lockstep: price and OI move by the same percentage every interval
func lockstep(symbol string, n int) []contracts.Observation {
	prices := make([]float64, n)
	ois := make([]int64, n)
	for i := 0; i < n; i++ {
		prices[i] = float64(100 + i)
		ois[i] = int64(1000 + 10*i)
	}
	return makeSeries(symbol, prices, ois)
}

// opposing: price and OI alternate in opposite directions
func opposing(symbol string, n int) []contracts.Observation {
	prices := make([]float64, n)
	ois := make([]int64, n)
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			prices[i], ois[i] = 100, 1010
		} else {
			prices[i], ois[i] = 101, 1000
		}
	}
	return makeSeries(symbol, prices, ois)
}

func constantPrice(symbol string, n int) []contracts.Observation {
	prices := make([]float64, n)
	ois := make([]int64, n)
	for i := 0; i < n; i++ {
		prices[i] = 250
		ois[i] = int64(5000 + 25*i)
	}
	return makeSeries(symbol, prices, ois)
}
