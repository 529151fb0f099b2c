package dataset

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/wonny/oiscan/internal/contracts"
)

// Column names of the dataset contract
// ⭐ SSOT: Provider ↔ Loader 스키마는 여기서만 정의
const (
	ColTimestamp    = "Timestamp"
	ColSymbol       = "Symbol"
	ColPrice        = "Price"
	ColOpenInterest = "Open_Interest"
)

// Columns is the header written by the Provider, in order
var Columns = []string{ColTimestamp, ColSymbol, ColPrice, ColOpenInterest}

// TimestampLayout is the layout written by the Provider
const TimestampLayout = "2006-01-02 15:04:05"

// accepted timestamp layouts, tried in order
var timestampLayouts = []string{
	TimestampLayout,
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
}

// Format is the on-disk encoding of a dataset
type Format string

const (
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
)

// FormatOf picks the format from the file extension (csv by default)
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return FormatParquet
	}
	return FormatCSV
}

var validate = validator.New()

// parseTimestamp accepts the layouts pandas would typically emit
func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable timestamp %q", s)
}

// checkObservation applies the struct rules plus finiteness
func checkObservation(o contracts.Observation) error {
	if math.IsNaN(o.Price) || math.IsInf(o.Price, 0) {
		return fmt.Errorf("price must be finite, got %v", o.Price)
	}
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid observation: %w", err)
	}
	return nil
}

type obsKey struct {
	symbol string
	ts     int64
}

// dedupe rejects repeated (symbol, timestamp) pairs
type dedupe map[obsKey]int

func (d dedupe) add(o contracts.Observation, row int) error {
	k := obsKey{symbol: o.Symbol, ts: o.Timestamp.UnixNano()}
	if first, ok := d[k]; ok {
		return fmt.Errorf("duplicate observation for %s at %s (first seen at row %d)",
			o.Symbol, o.Timestamp.Format(TimestampLayout), first)
	}
	d[k] = row
	return nil
}
