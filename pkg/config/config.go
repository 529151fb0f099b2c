package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	Env string // development, staging, production

	// Dataset
	DataFile string

	// Symbol source (Wikipedia)
	Symbols SymbolSourceConfig

	// Mock provider
	Mock MockConfig

	// Scheduler
	ScheduleCron string

	// Analysis settings YAML (optional)
	AnalysisSettings string

	// Logging
	LogLevel  string
	LogFormat string
	LogFile   string
}

// SymbolSourceConfig holds the symbol scraping configuration
type SymbolSourceConfig struct {
	URL           string
	Limit         int
	Enabled       bool
	RatePerSecond float64
	Timeout       time.Duration
}

// MockConfig holds the synthetic intraday series configuration
type MockConfig struct {
	Intervals       int
	IntervalMinutes int
	Seed            int64 // 0 = time based
}

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom reads configuration, loading envFile first when given
func LoadFrom(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else {
		loadEnvFile()
	}

	cfg := &Config{
		Env: getEnv("ENV", "development"),

		DataFile: getEnv("DATA_FILE", "intraday_data.csv"),

		Symbols: SymbolSourceConfig{
			URL:           getEnv("SYMBOL_SOURCE_URL", "https://en.wikipedia.org/wiki/NIFTY_50"),
			Limit:         getEnvAsInt("SYMBOL_LIMIT", 10),
			Enabled:       getEnvAsBool("SCRAPE_ENABLED", true),
			RatePerSecond: getEnvAsFloat("SCRAPE_RATE_PER_SEC", 1),
			Timeout:       getEnvAsDuration("HTTP_TIMEOUT", "15s"),
		},

		Mock: MockConfig{
			Intervals:       getEnvAsInt("MOCK_INTERVALS", 12),
			IntervalMinutes: getEnvAsInt("MOCK_INTERVAL_MINUTES", 5),
			Seed:            getEnvAsInt64("MOCK_SEED", 0),
		},

		// 평일 장중 5분마다 (with seconds)
		ScheduleCron: getEnv("SCHEDULE_CRON", "0 */5 9-15 * * MON-FRI"),

		AnalysisSettings: getEnv("ANALYSIS_SETTINGS", ""),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
		LogFile:   getEnv("LOG_FILE", ""),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.DataFile == "" {
		return fmt.Errorf("DATA_FILE is required")
	}

	if c.Symbols.Limit <= 0 {
		return fmt.Errorf("SYMBOL_LIMIT must be > 0")
	}

	if c.Symbols.RatePerSecond <= 0 {
		return fmt.Errorf("SCRAPE_RATE_PER_SEC must be > 0")
	}

	if c.Mock.Intervals <= 0 {
		return fmt.Errorf("MOCK_INTERVALS must be > 0")
	}

	if c.Mock.IntervalMinutes <= 0 {
		return fmt.Errorf("MOCK_INTERVAL_MINUTES must be > 0")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to default
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
