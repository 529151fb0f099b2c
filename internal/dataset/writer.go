package dataset

import (
	"fmt"

	"github.com/wonny/oiscan/internal/contracts"
)

// Write persists observations at path, choosing the format by extension
// ⭐ SSOT: 데이터셋 저장은 이 함수에서만
func Write(path string, observations []contracts.Observation) error {
	for i, o := range observations {
		if err := checkObservation(o); err != nil {
			return fmt.Errorf("observation %d: %w", i, err)
		}
	}

	switch FormatOf(path) {
	case FormatParquet:
		return writeParquet(path, observations)
	default:
		return writeCSV(path, observations)
	}
}
