package analysis

import (
	"fmt"
	"sort"

	"github.com/wonny/oiscan/internal/contracts"
)

// SeriesSet is the symbol → series mapping, iterated in ascending symbol order
// ⭐ SSOT: 종목별 그룹핑은 GroupBySymbol에서 한 번만
type SeriesSet struct {
	symbols []string
	series  map[string]*contracts.ObservationSeries
}

// GroupBySymbol partitions observations by symbol.
// Each series is sorted by timestamp; input order is otherwise irrelevant.
func GroupBySymbol(observations []contracts.Observation) *SeriesSet {
	set := &SeriesSet{series: make(map[string]*contracts.ObservationSeries)}

	for _, o := range observations {
		s, ok := set.series[o.Symbol]
		if !ok {
			s = &contracts.ObservationSeries{Symbol: o.Symbol}
			set.series[o.Symbol] = s
			set.symbols = append(set.symbols, o.Symbol)
		}
		s.Observations = append(s.Observations, o)
	}

	sort.Strings(set.symbols)
	for _, s := range set.series {
		obs := s.Observations
		sort.SliceStable(obs, func(i, j int) bool {
			return obs[i].Timestamp.Before(obs[j].Timestamp)
		})
	}

	return set
}

// Symbols returns the symbols in ascending order
func (s *SeriesSet) Symbols() []string {
	out := make([]string, len(s.symbols))
	copy(out, s.symbols)
	return out
}

// Get returns the series of symbol, or nil
func (s *SeriesSet) Get(symbol string) *contracts.ObservationSeries {
	return s.series[symbol]
}

// Len returns the number of symbols
func (s *SeriesSet) Len() int {
	return len(s.symbols)
}

// Validate checks that every series has strictly ascending timestamps
func (s *SeriesSet) Validate() error {
	for _, sym := range s.symbols {
		if !s.Get(sym).IsOrdered() {
			return fmt.Errorf("series %s: timestamps are not strictly ascending", sym)
		}
	}
	return nil
}
