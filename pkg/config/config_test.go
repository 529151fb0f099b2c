package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Check defaults
	if cfg.Env != "development" {
		t.Errorf("Expected Env to be development, got %s", cfg.Env)
	}

	if cfg.DataFile != "intraday_data.csv" {
		t.Errorf("Expected DataFile to be intraday_data.csv, got %s", cfg.DataFile)
	}

	if cfg.Symbols.Limit != 10 {
		t.Errorf("Expected Symbols.Limit to be 10, got %d", cfg.Symbols.Limit)
	}

	if cfg.Mock.Intervals != 12 {
		t.Errorf("Expected Mock.Intervals to be 12, got %d", cfg.Mock.Intervals)
	}

	if cfg.Mock.IntervalMinutes != 5 {
		t.Errorf("Expected Mock.IntervalMinutes to be 5, got %d", cfg.Mock.IntervalMinutes)
	}
}

func TestLoadWithCustomValues(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("DATA_FILE", "/tmp/custom.parquet")
	t.Setenv("MOCK_INTERVALS", "24")
	t.Setenv("MOCK_SEED", "42")
	t.Setenv("SCRAPE_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Env != "production" {
		t.Errorf("Expected Env to be production, got %s", cfg.Env)
	}

	if cfg.DataFile != "/tmp/custom.parquet" {
		t.Errorf("Expected DataFile to be /tmp/custom.parquet, got %s", cfg.DataFile)
	}

	if cfg.Mock.Intervals != 24 {
		t.Errorf("Expected Mock.Intervals to be 24, got %d", cfg.Mock.Intervals)
	}

	if cfg.Mock.Seed != 42 {
		t.Errorf("Expected Mock.Seed to be 42, got %d", cfg.Mock.Seed)
	}

	if cfg.Symbols.Enabled {
		t.Error("Expected Symbols.Enabled to be false")
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("Expected LogLevel to be debug, got %s", cfg.LogLevel)
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("DATA_FILE=from_env_file.csv\n"), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("DATA_FILE") })

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}

	if cfg.DataFile != "from_env_file.csv" {
		t.Errorf("Expected DataFile from env file, got %s", cfg.DataFile)
	}
}

func TestLoadFromMissingEnvFile(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	if err == nil {
		t.Error("Expected error for missing env file, got nil")
	}
}

func TestValidateInvalidEnv(t *testing.T) {
	t.Setenv("ENV", "invalid")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when ENV is invalid, got nil")
	}
}

func TestValidateNonPositiveIntervals(t *testing.T) {
	t.Setenv("MOCK_INTERVALS", "0")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when MOCK_INTERVALS is 0, got nil")
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "2h")

	duration := getEnvAsDuration("TEST_DURATION", "1h")
	expected := 2 * time.Hour

	if duration != expected {
		t.Errorf("Expected duration to be %v, got %v", expected, duration)
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_INT", "100")

	value := getEnvAsInt("TEST_INT", 50)
	if value != 100 {
		t.Errorf("Expected value to be 100, got %d", value)
	}

	t.Setenv("TEST_INT", "not-a-number")
	if value := getEnvAsInt("TEST_INT", 50); value != 50 {
		t.Errorf("Expected fallback 50, got %d", value)
	}
}

func TestGetEnvAsFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT", "2.5")

	value := getEnvAsFloat("TEST_FLOAT", 1)
	if value != 2.5 {
		t.Errorf("Expected value to be 2.5, got %v", value)
	}
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")

	value := getEnvAsBool("TEST_BOOL", false)
	if value != true {
		t.Errorf("Expected value to be true, got %v", value)
	}
}
