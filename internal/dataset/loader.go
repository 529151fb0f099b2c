package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/wonny/oiscan/internal/contracts"
)

// FileStore reads and writes datasets on the local filesystem
type FileStore struct{}

// Load implements contracts.ObservationLoader
func (FileStore) Load(path string) ([]contracts.Observation, error) {
	return Load(path)
}

// Write implements contracts.ObservationWriter
func (FileStore) Write(path string, observations []contracts.Observation) error {
	return Write(path, observations)
}

// Exists returns *InputNotFoundError when path is absent
func Exists(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &InputNotFoundError{Path: path, Err: err}
		}
		return parseErr(path, 0, "", fmt.Errorf("stat: %w", err))
	}
	if info.IsDir() {
		return parseErr(path, 0, "", fmt.Errorf("is a directory"))
	}
	return nil
}

// Load reads the dataset at path and returns observations sorted by
// (symbol, timestamp)
// ⭐ SSOT: 입력 데이터셋 로딩은 이 함수에서만
func Load(path string) ([]contracts.Observation, error) {
	if err := Exists(path); err != nil {
		return nil, err
	}

	var (
		observations []contracts.Observation
		err          error
	)
	switch FormatOf(path) {
	case FormatParquet:
		observations, err = readParquet(path)
	default:
		observations, err = readCSV(path)
	}
	if err != nil {
		return nil, err
	}

	SortObservations(observations)
	return observations, nil
}

// SortObservations orders by symbol then timestamp, stable for equal keys
func SortObservations(observations []contracts.Observation) {
	sort.SliceStable(observations, func(i, j int) bool {
		a, b := observations[i], observations[j]
		if a.Symbol != b.Symbol {
			return a.Symbol < b.Symbol
		}
		return a.Timestamp.Before(b.Timestamp)
	})
}
