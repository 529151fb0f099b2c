package contracts

import "context"

// SymbolSource provides the list of symbols to simulate
// ⭐ SSOT: 종목 리스트 제공 인터페이스
type SymbolSource interface {
	Symbols(ctx context.Context) ([]string, error)
}

// ObservationLoader reads a stored dataset
type ObservationLoader interface {
	Load(path string) ([]Observation, error)
}

// ObservationWriter persists a generated dataset
type ObservationWriter interface {
	Write(path string, observations []Observation) error
}
