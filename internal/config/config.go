package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Catalog storage
	DBPath string

	// Limits
	MaxUploadBytes    int64
	MaxInputBytes     int64
	MaxBatchFiles     int
	MaxBatchInputs    int
	MaxConcurrentScan int

	// Output
	KeySeparator string

	// Latency stats
	StatsWindow     time.Duration
	StatsMaxSamples int

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("JSXTEXT_API_KEY"),

		DBPath: envOr("DB_PATH", "data/jsxtext.db"),

		MaxUploadBytes:    envInt64("MAX_UPLOAD_BYTES", 10485760), // 10MB
		MaxInputBytes:     envInt64("MAX_INPUT_BYTES", 1048576),   // 1MB
		MaxBatchFiles:     envInt("MAX_BATCH_FILES", 50),
		MaxBatchInputs:    envInt("MAX_BATCH_INPUTS", 1000),
		MaxConcurrentScan: envInt("MAX_CONCURRENT_SCAN", 4),

		KeySeparator: os.Getenv("KEY_SEPARATOR"),

		StatsWindow:     envDuration("STATS_WINDOW", 1*time.Hour),
		StatsMaxSamples: envInt("STATS_MAX_SAMPLES", 1024),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10485760
	}
	if cfg.MaxInputBytes <= 0 {
		cfg.MaxInputBytes = 1048576
	}
	if cfg.MaxBatchFiles <= 0 {
		cfg.MaxBatchFiles = 50
	}
	if cfg.MaxBatchInputs <= 0 {
		cfg.MaxBatchInputs = 1000
	}
	if cfg.MaxConcurrentScan <= 0 {
		cfg.MaxConcurrentScan = 4
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = 1 * time.Hour
	}
	if cfg.StatsMaxSamples <= 0 {
		cfg.StatsMaxSamples = 1024
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("JSXTEXT_API_KEY is required")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH must not be empty")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
