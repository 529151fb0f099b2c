package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/wonny/oiscan/internal/contracts"
)

// observationRecord mirrors the CSV columns so both formats share one contract
type observationRecord struct {
	Timestamp    string  `parquet:"name=Timestamp, type=BYTE_ARRAY, convertedtype=UTF8"`
	Symbol       string  `parquet:"name=Symbol, type=BYTE_ARRAY, convertedtype=UTF8"`
	Price        float64 `parquet:"name=Price, type=DOUBLE"`
	OpenInterest int64   `parquet:"name=Open_Interest, type=INT64"`
}

// readParquet reads all rows of a parquet dataset
func readParquet(path string) ([]contracts.Observation, error) {
	// 타입 리더는 파일 스키마를 구조체 기준으로 덮어쓰므로 먼저 검사
	if err := checkParquetSchema(path); err != nil {
		return nil, err
	}

	fr, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, parseErr(path, 0, "", fmt.Errorf("open parquet: %w", err))
	}
	defer fr.Close()

	pr, err := reader.NewParquetReader(fr, new(observationRecord), 1)
	if err != nil {
		return nil, parseErr(path, 0, "", fmt.Errorf("read parquet footer: %w", err))
	}
	defer pr.ReadStop()

	num := int(pr.GetNumRows())
	records := make([]observationRecord, num)
	if num > 0 {
		if err := pr.Read(&records); err != nil {
			return nil, parseErr(path, 0, "", fmt.Errorf("read parquet rows: %w", err))
		}
	}

	observations := make([]contracts.Observation, 0, len(records))
	seen := dedupe{}
	for i, rec := range records {
		row := i + 1

		ts, err := parseTimestamp(rec.Timestamp)
		if err != nil {
			return nil, parseErr(path, row, ColTimestamp, err)
		}

		obs := contracts.Observation{
			Symbol:       strings.TrimSpace(rec.Symbol),
			Timestamp:    ts,
			Price:        rec.Price,
			OpenInterest: rec.OpenInterest,
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

// checkParquetSchema requires every contract column in the file schema.
// A schemaless reader keeps the on-disk column names in Infos[i].ExName.
func checkParquetSchema(path string) error {
	fr, err := local.NewLocalFileReader(path)
	if err != nil {
		return parseErr(path, 0, "", fmt.Errorf("open parquet: %w", err))
	}
	defer fr.Close()

	pr, err := reader.NewParquetReader(fr, nil, 1)
	if err != nil {
		return parseErr(path, 0, "", fmt.Errorf("read parquet footer: %w", err))
	}
	defer pr.ReadStop()

	present := make(map[string]bool)
	for i, info := range pr.SchemaHandler.Infos {
		if i == 0 {
			continue // root
		}
		present[info.ExName] = true
	}

	var missing []string
	for _, col := range Columns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return parseErr(path, 0, "", fmt.Errorf("missing required column(s): %s", strings.Join(missing, ", ")))
	}
	return nil
}

// writeParquet writes observations as a snappy-compressed parquet file
func writeParquet(path string, observations []contracts.Observation) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("create parquet: %w", err)
	}
	defer fw.Close()

	pw, err := writer.NewParquetWriter(fw, new(observationRecord), 1)
	if err != nil {
		return fmt.Errorf("new parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, o := range observations {
		rec := observationRecord{
			Timestamp:    o.Timestamp.Format(TimestampLayout),
			Symbol:       o.Symbol,
			Price:        o.Price,
			OpenInterest: o.OpenInterest,
		}
		if err := pw.Write(rec); err != nil {
			pw.WriteStop()
			return fmt.Errorf("write parquet record: %w", err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("finalize parquet: %w", err)
	}

	return nil
}
