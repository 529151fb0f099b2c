package provider

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wonny/oiscan/internal/contracts"
)

// Generator parameters
const (
	basePriceMin    = 500.0
	basePriceMax    = 3000.0
	baseOIMin       = 100000
	baseOIMax       = 500000 // exclusive
	priceFactorMin  = 0.999
	priceFactorMax  = 1.001
	oiNoiseStdDev   = 0.003
	oiInfluence     = 5.0
	oiFloor         = 50000
	unlistedIndex   = 5
	DefaultInterval = 5 * time.Minute
	DefaultSteps    = 12
)

// Generator synthesizes intraday series whose OI follows price with a
// per-symbol bias
type Generator struct {
	rng       *rand.Rand
	intervals int
	step      time.Duration
}

// NewGenerator creates a generator; seed 0 seeds from the clock
func NewGenerator(seed int64, intervals int, step time.Duration) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if intervals <= 0 {
		intervals = DefaultSteps
	}
	if step <= 0 {
		step = DefaultInterval
	}
	return &Generator{
		rng:       rand.New(rand.NewSource(seed)),
		intervals: intervals,
		step:      step,
	}
}

// Intervals returns the number of observations per symbol
func (g *Generator) Intervals() int { return g.intervals }

// Step returns the spacing between observations
func (g *Generator) Step() time.Duration { return g.step }

// Bias returns index/10 for symbol's position in symbols, or 0.5 if absent
func Bias(symbols []string, symbol string) float64 {
	for i, s := range symbols {
		if s == symbol {
			return float64(i) / 10
		}
	}
	return float64(unlistedIndex) / 10
}

// Generate produces series for every symbol, in list order
func (g *Generator) Generate(symbols []string, start time.Time) []contracts.Observation {
	observations := make([]contracts.Observation, 0, len(symbols)*g.intervals)
	for _, sym := range symbols {
		observations = append(observations, g.Series(sym, Bias(symbols, sym), start)...)
	}
	return observations
}

// Series produces one symbol's random walk starting at start
func (g *Generator) Series(symbol string, bias float64, start time.Time) []contracts.Observation {
	price := g.uniform(basePriceMin, basePriceMax)
	oi := int64(baseOIMin) + g.rng.Int63n(baseOIMax-baseOIMin)

	series := make([]contracts.Observation, 0, g.intervals)
	ts := start
	for i := 0; i < g.intervals; i++ {
		// 1. 가격: 최대 ±0.1% 랜덤워크
		pf := g.uniform(priceFactorMin, priceFactorMax)
		price *= pf

		// 2. OI: 노이즈 + 가격 변화 × bias
		noise := g.rng.NormFloat64() * oiNoiseStdDev
		factor := 1 + noise + (pf-1)*bias*oiInfluence
		oi = int64(float64(oi) * factor)
		if oi < oiFloor {
			oi = oiFloor
		}

		series = append(series, contracts.Observation{
			Symbol:       symbol,
			Timestamp:    ts,
			Price:        roundPrice(price),
			OpenInterest: oi,
		})
		ts = ts.Add(g.step)
	}

	return series
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// roundPrice rounds half away from zero to 2 decimals
func roundPrice(p float64) float64 {
	return decimal.NewFromFloat(p).Round(2).InexactFloat64()
}
