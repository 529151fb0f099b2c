package analysisconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 6, cfg.Analysis.MinSamples)
	assert.Equal(t, 5, cfg.Analysis.TopN)
	assert.Equal(t, 4, cfg.Report.Precision)
	assert.NoError(t, Validate(cfg))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.yaml")
	yamlData := []byte(`analysis:
  min_samples: 8
  top_n: 3
report:
  precision: 2
`)
	require.NoError(t, os.WriteFile(path, yamlData, 0o644))

	cfg, raw, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Analysis.MinSamples)
	assert.Equal(t, 3, cfg.Analysis.TopN)
	assert.Equal(t, 2, cfg.Report.Precision)
	assert.Equal(t, yamlData, raw)
}

func TestParsePartialUsesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("analysis:\n  top_n: 10\n"))
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Analysis.MinSamples)
	assert.Equal(t, 10, cfg.Analysis.TopN)
	assert.Equal(t, 4, cfg.Report.Precision)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseUnknownField(t *testing.T) {
	// 오타 필드는 즉시 실패
	_, err := Parse([]byte("analysis:\n  min_sample: 6\n"))
	assert.Error(t, err)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{
			name:  "min_samples below 6",
			yaml:  "analysis:\n  min_samples: 5\n",
			field: "analysis.min_samples",
		},
		{
			name:  "top_n too large",
			yaml:  "analysis:\n  top_n: 500\n",
			field: "analysis.top_n",
		},
		{
			name:  "precision too large",
			yaml:  "report:\n  precision: 11\n",
			field: "report.precision",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)

			var ve ValidationError
			require.True(t, errors.As(err, &ve), "expected ValidationError, got %T", err)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Analysis.MinSamples)

	_, err = LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestHash(t *testing.T) {
	cfg := Default()

	hash, err := Hash(cfg)
	require.NoError(t, err)
	assert.Len(t, hash, 64)

	// 동일 설정 → 동일 해시
	hash2, _ := Hash(Default())
	assert.Equal(t, hash, hash2)

	cfg.Analysis.TopN = 3
	hash3, _ := Hash(cfg)
	assert.NotEqual(t, hash, hash3)
}

func TestValidate_ReportsYAMLKey(t *testing.T) {
	cfg := Default()
	cfg.Analysis.TopN = 0

	// 에러 필드명은 Go 필드명이 아닌 yaml 키
	assert.EqualError(t, Validate(cfg), "analysis.top_n: must be >= 1")

	cfg = Default()
	cfg.Report.Precision = -1
	assert.EqualError(t, Validate(cfg), "report.precision: must be >= 0")
}
