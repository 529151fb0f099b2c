package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/wonny/oiscan/internal/contracts"
)

// readCSV parses a delimited file with a header row
func readCSV(path string) ([]contracts.Observation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, parseErr(path, 0, "", fmt.Errorf("open csv: %w", err))
	}
	defer f.Close()

	return decodeCSV(path, f)
}

func decodeCSV(path string, src io.Reader) ([]contracts.Observation, error) {
	r := csv.NewReader(src)
	r.TrimLeadingSpace = true

	// Read header
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, parseErr(path, 0, "", fmt.Errorf("empty file: missing header"))
		}
		return nil, parseErr(path, 1, "", fmt.Errorf("read header: %w", err))
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, parseErr(path, 1, "", err)
	}

	var observations []contracts.Observation
	seen := dedupe{}

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, parseErr(path, pe.Line, "", pe.Err)
			}
			return nil, parseErr(path, 0, "", err)
		}
		row, _ := r.FieldPos(0)

		obs, col, err := parseRecord(record, index)
		if err != nil {
			return nil, parseErr(path, row, col, err)
		}
		if err := checkObservation(obs); err != nil {
			return nil, parseErr(path, row, "", err)
		}
		if err := seen.add(obs, row); err != nil {
			return nil, parseErr(path, row, "", err)
		}

		observations = append(observations, obs)
	}

	return observations, nil
}

// columnIndex maps required column names to header positions
func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		index[name] = i
	}

	var missing []string
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required column(s): %s", strings.Join(missing, ", "))
	}

	return index, nil
}

// parseRecord converts one CSV row, returning the offending column on error
func parseRecord(record []string, index map[string]int) (contracts.Observation, string, error) {
	var obs contracts.Observation

	ts, err := parseTimestamp(record[index[ColTimestamp]])
	if err != nil {
		return obs, ColTimestamp, err
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(record[index[ColPrice]]), 64)
	if err != nil {
		return obs, ColPrice, fmt.Errorf("parse price: %w", err)
	}

	oi, err := strconv.ParseInt(strings.TrimSpace(record[index[ColOpenInterest]]), 10, 64)
	if err != nil {
		return obs, ColOpenInterest, fmt.Errorf("parse open interest: %w", err)
	}

	obs = contracts.Observation{
		Symbol:       strings.TrimSpace(record[index[ColSymbol]]),
		Timestamp:    ts,
		Price:        price,
		OpenInterest: oi,
	}
	return obs, "", nil
}

// writeCSV writes observations with the contract header
func writeCSV(path string, observations []contracts.Observation) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, o := range observations {
		row := []string{
			o.Timestamp.Format(TimestampLayout),
			o.Symbol,
			strconv.FormatFloat(o.Price, 'f', -1, 64),
			strconv.FormatInt(o.OpenInterest, 10),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	return f.Close()
}
