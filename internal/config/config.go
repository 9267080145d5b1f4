package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvData         = "ATTRBROWSER_DATA"
	EnvAddr         = "ATTRBROWSER_ADDR"
	EnvLogLevel     = "ATTRBROWSER_LOG_LEVEL"
	EnvFetchTimeout = "ATTRBROWSER_FETCH_TIMEOUT"
)

// Defaults used when neither the environment nor a flag sets a value.
const (
	DefaultData         = "data/custom_attributes.json"
	DefaultAddr         = ":8080"
	DefaultLogLevel     = "info"
	DefaultFetchTimeout = 30 * time.Second
)

// Config holds the runtime settings shared by every command.
type Config struct {
	DataSource   string        // URL or path of the attribute document
	Addr         string        // HTTP listen address for serve
	LogLevel     string        // debug, info, warn or error
	FetchTimeout time.Duration // Bound on the document fetch
}

// LoadDotEnv loads variables from the given .env files (".env" when none are
// given). A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load env files %v: %w", existing, err)
	}
	return nil
}

// Load builds a Config from the environment, falling back to defaults.
func Load() (Config, error) {
	cfg := Config{
		DataSource:   getEnv(EnvData, DefaultData),
		Addr:         getEnv(EnvAddr, DefaultAddr),
		LogLevel:     getEnv(EnvLogLevel, DefaultLogLevel),
		FetchTimeout: DefaultFetchTimeout,
	}

	if v, ok := os.LookupEnv(EnvFetchTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvFetchTimeout, v, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("invalid %s %q: must be positive", EnvFetchTimeout, v)
		}
		cfg.FetchTimeout = d
	}
	return cfg, nil
}

// getEnv reads an environment variable or returns a default.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
