// Package config loads runtime configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings.
type Config struct {
	Parser  ParserConfig
	Output  OutputConfig
	Logging LoggingConfig
}

// ParserConfig tunes the extraction pipeline.
type ParserConfig struct {
	// MaxTransactions caps the extracted transaction list; 0 means no cap.
	MaxTransactions int
	// NormalizeMerchants attaches cleaned merchant names to transactions.
	NormalizeMerchants bool
	// FuzzyIssuerMatch enables edit-distance fallback for issuer detection.
	FuzzyIssuerMatch bool
	// FuzzyMaxDistance bounds the edit distance for fuzzy issuer matching.
	FuzzyMaxDistance int
}

// OutputConfig controls where and how records are written.
type OutputConfig struct {
	// Path is the output file; empty means stdout.
	Path string
	// Pretty enables indented JSON output.
	Pretty bool
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string
	// Format is "text" or "json".
	Format string
}

// Load reads configuration from the environment. A .env file in the working
// directory is honored when present but never required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Parser: ParserConfig{
			MaxTransactions:    getEnvInt("STATEMENT_MAX_TRANSACTIONS", 0),
			NormalizeMerchants: getEnvBool("STATEMENT_NORMALIZE_MERCHANTS", true),
			FuzzyIssuerMatch:   getEnvBool("STATEMENT_FUZZY_ISSUER", false),
			FuzzyMaxDistance:   getEnvInt("STATEMENT_FUZZY_DISTANCE", 2),
		},
		Output: OutputConfig{
			Path:   getEnv("STATEMENT_OUTPUT_PATH", ""),
			Pretty: getEnvBool("STATEMENT_OUTPUT_PRETTY", true),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	if cfg.Parser.MaxTransactions < 0 {
		return nil, fmt.Errorf("STATEMENT_MAX_TRANSACTIONS must not be negative, got %d", cfg.Parser.MaxTransactions)
	}
	if cfg.Parser.FuzzyMaxDistance < 0 {
		return nil, fmt.Errorf("STATEMENT_FUZZY_DISTANCE must not be negative, got %d", cfg.Parser.FuzzyMaxDistance)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
