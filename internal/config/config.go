// Package config contains everything related to configuration
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	OutputDir      string
	ChartEnabled   bool
	WorkbookExport bool
	HistoryEnabled bool
	DatabasePath   string
	// HistoryRetentionDays prunes older runs on startup; 0 keeps everything.
	HistoryRetentionDays int
	NotifyOnShift        bool
	LogLevel             string
	WatchDebounce        time.Duration
}

// Default values
const (
	defaultOutputDir     = "outputs"
	defaultLogLevel      = "warn"
	defaultWatchDebounce = 250 * time.Millisecond
)

// Load reads configuration from .env files and environment variables.
func Load() (*Config, error) {
	// Try loading .env from multiple locations
	for _, path := range getEnvPaths() {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	cfg := &Config{
		OutputDir:            getEnvString("OUTPUT_DIR", defaultOutputDir),
		ChartEnabled:         getEnvBool("CHART_ENABLED", true),
		WorkbookExport:       getEnvBool("WORKBOOK_EXPORT", false),
		HistoryEnabled:       getEnvBool("HISTORY_ENABLED", false),
		DatabasePath:         getEnvString("DATABASE_PATH", getDefaultDatabasePath()),
		HistoryRetentionDays: getEnvInt("HISTORY_RETENTION_DAYS", 0),
		NotifyOnShift:        getEnvBool("NOTIFY_ON_SHIFT", false),
		LogLevel:             getEnvString("LOG_LEVEL", defaultLogLevel),
		WatchDebounce:        getEnvDuration("WATCH_DEBOUNCE", defaultWatchDebounce),
	}

	// Only touch the filesystem for history when it is switched on
	if cfg.HistoryEnabled {
		if err := ensureDir(filepath.Dir(cfg.DatabasePath)); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		OutputDir:     defaultOutputDir,
		ChartEnabled:  true,
		DatabasePath:  getDefaultDatabasePath(),
		LogLevel:      defaultLogLevel,
		WatchDebounce: defaultWatchDebounce,
	}
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	// Current directory
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	// Home directory locations
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "freshbox", ".env"),
			filepath.Join(home, ".freshbox", ".env"),
		)
	}

	// Parent directories (useful for development)
	if cwd, err := os.Getwd(); err == nil {
		parent := filepath.Dir(cwd)
		paths = append(paths, filepath.Join(parent, ".env"))
		grandparent := filepath.Dir(parent)
		paths = append(paths, filepath.Join(grandparent, ".env"))
	}

	return paths
}

// getDefaultDatabasePath returns the default path for the SQLite run history.
func getDefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "history.db"
	}
	return filepath.Join(home, ".config", "freshbox", "history.db")
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns the default.
// Accepts strconv.ParseBool values plus "yes"/"no" and "on"/"off".
func getEnvBool(key string, defaultValue bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch value {
	case "":
		return defaultValue
	case "yes", "on":
		return true
	case "no", "off":
		return false
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return defaultValue
}

// getEnvInt retrieves a non-negative integer environment variable or returns
// the default.
func getEnvInt(key string, defaultValue int) int {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n >= 0 {
			return n
		}
	}
	return defaultValue
}

// getEnvDuration retrieves a duration environment variable or returns the default.
// Accepts values like "30s", "1m", "500ms".
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Try parsing as seconds if no unit specified
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}

// ensureDir creates a directory and all parent directories if they don't exist.
func ensureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, 0o750)
}
