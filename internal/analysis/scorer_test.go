package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/oiscan/internal/contracts"
)

func TestNewScorer_Default(t *testing.T) {
	assert.Equal(t, DefaultMinSamples, NewScorer(0).MinSamples)
	assert.Equal(t, 3, NewScorer(3).MinSamples)
}

func TestScorer_SampleThreshold(t *testing.T) {
	tests := []struct {
		name         string
		observations int
		wantScored   bool
	}{
		{"five changes", 6, false},
		{"six changes", 7, true},
		{"twelve changes", 13, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes := ComputeChanges(GroupBySymbol(lockstep("AAA", tt.observations)))
			results, skipped := NewScorer(6).Score(changes)

			if tt.wantScored {
				require.Len(t, results, 1)
				assert.Empty(t, skipped)
				assert.Equal(t, tt.observations-1, results[0].Samples)
				assert.InDelta(t, 1.0, results[0].Correlation, 1e-9)
			} else {
				assert.Empty(t, results)
				require.Len(t, skipped, 1)
				assert.Equal(t, contracts.SkipInsufficientSamples, skipped[0].Reason)
				assert.Equal(t, tt.observations-1, skipped[0].Samples)
			}
		})
	}
}

func TestScorer_ConstantSeries(t *testing.T) {
	changes := ComputeChanges(GroupBySymbol(constantPrice("FLAT", 8)))

	results, skipped := NewScorer(6).Score(changes)
	assert.Empty(t, results)
	require.Len(t, skipped, 1)
	assert.Equal(t, contracts.SkippedSymbol{
		Symbol:  "FLAT",
		Reason:  contracts.SkipUndefinedCorrelation,
		Samples: 7,
	}, skipped[0])
}

func TestScorer_NonFiniteChange(t *testing.T) {
	prices := []float64{10, 11, 12, 13, 14, 15, 16}
	ois := []int64{0, 10, 20, 30, 40, 50, 60}
	changes := ComputeChanges(GroupBySymbol(makeSeries("ZERO", prices, ois)))

	results, skipped := NewScorer(6).Score(changes)
	assert.Empty(t, results)
	require.Len(t, skipped, 1)
	assert.Equal(t, contracts.SkipUndefinedCorrelation, skipped[0].Reason)
}

func TestScorer_PreservesOrder(t *testing.T) {
	var obs []contracts.Observation
	obs = append(obs, lockstep("AAA", 7)...)
	obs = append(obs, lockstep("BBB", 3)...)
	obs = append(obs, constantPrice("CCC", 7)...)
	obs = append(obs, opposing("DDD", 7)...)

	results, skipped := NewScorer(6).Score(ComputeChanges(GroupBySymbol(obs)))

	require.Len(t, results, 2)
	assert.Equal(t, "AAA", results[0].Symbol)
	assert.Equal(t, "DDD", results[1].Symbol)
	assert.Less(t, results[1].Correlation, 0.0)

	require.Len(t, skipped, 2)
	assert.Equal(t, "BBB", skipped[0].Symbol)
	assert.Equal(t, contracts.SkipInsufficientSamples, skipped[0].Reason)
	assert.Equal(t, "CCC", skipped[1].Symbol)
	assert.Equal(t, contracts.SkipUndefinedCorrelation, skipped[1].Reason)
}

func TestScorer_Empty(t *testing.T) {
	results, skipped := NewScorer(6).Score(nil)
	assert.Empty(t, results)
	assert.Empty(t, skipped)
}
