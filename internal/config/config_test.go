package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var configKeys = []string{
	"OUTPUT_DIR", "CHART_ENABLED", "WORKBOOK_EXPORT", "HISTORY_ENABLED",
	"DATABASE_PATH", "HISTORY_RETENTION_DAYS", "NOTIFY_ON_SHIFT", "LOG_LEVEL", "WATCH_DEBOUNCE",
}

// isolate clears config variables and moves into an empty directory with an
// empty HOME so no stray .env file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Chdir(tmpDir)
	return tmpDir
}

func TestGetEnvString(t *testing.T) {
	key := "TEST_ENV_STRING"
	t.Setenv(key, "test_value")

	if got := getEnvString(key, "default"); got != "test_value" {
		t.Errorf("getEnvString() = %q, want %q", got, "test_value")
	}

	if got := getEnvString("NON_EXISTENT", "default"); got != "default" {
		t.Errorf("getEnvString() = %q, want %q", got, "default")
	}
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_ENV_BOOL"

	tests := []struct {
		name       string
		envVal     string
		defaultVal bool
		want       bool
	}{
		{"True", "true", false, true},
		{"One", "1", false, true},
		{"Yes", "yes", false, true},
		{"On", "ON", false, true},
		{"False", "false", true, false},
		{"Off", "off", true, false},
		{"Invalid", "maybe", true, true},
		{"Empty", "", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(key, tt.envVal)
			if got := getEnvBool(key, tt.defaultVal); got != tt.want {
				t.Errorf("getEnvBool() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	key := "TEST_ENV_DURATION"

	tests := []struct {
		name       string
		envVal     string
		defaultVal time.Duration
		want       time.Duration
	}{
		{"ValidDuration", "1m", time.Second, time.Minute},
		{"ValidSeconds", "60", time.Second, 60 * time.Second},
		{"Invalid", "invalid", time.Second, time.Second},
		{"Empty", "", time.Second, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(key, tt.envVal)
			if got := getEnvDuration(key, tt.defaultVal); got != tt.want {
				t.Errorf("getEnvDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"", 7},
		{"30", 30},
		{" 14 ", 14},
		{"0", 0},
		{"-3", 7},
		{"month", 7},
	}
	for _, tt := range tests {
		t.Setenv("TEST_INT", tt.value)
		if got := getEnvInt("TEST_INT", 7); got != tt.want {
			t.Errorf("getEnvInt(%q) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestEnsureDir(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "dir")

	if err := ensureDir(path); err != nil {
		t.Fatalf("ensureDir() failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("directory was not created")
	}

	if err := ensureDir(""); err != nil {
		t.Error("ensureDir(\"\") should not error")
	}
}

func TestGetEnvPaths(t *testing.T) {
	paths := getEnvPaths()
	if len(paths) == 0 {
		t.Error("getEnvPaths() returned empty list")
	}

	cwd, _ := os.Getwd()
	found := false
	for _, p := range paths {
		if p == filepath.Join(cwd, ".env") {
			found = true
			break
		}
	}
	if !found {
		t.Error("getEnvPaths() missing current directory .env")
	}
}

func TestLoad_Defaults(t *testing.T) {
	tmpDir := isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.OutputDir != "outputs" {
		t.Errorf("OutputDir = %q, want outputs", cfg.OutputDir)
	}
	if !cfg.ChartEnabled {
		t.Error("ChartEnabled should default to true")
	}
	if cfg.WorkbookExport || cfg.HistoryEnabled || cfg.NotifyOnShift {
		t.Error("optional extras should default to off")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if cfg.WatchDebounce != defaultWatchDebounce {
		t.Errorf("WatchDebounce = %v, want %v", cfg.WatchDebounce, defaultWatchDebounce)
	}

	// History is off, so its directory must not be created.
	if _, err := os.Stat(filepath.Join(tmpDir, ".config", "freshbox")); !os.IsNotExist(err) {
		t.Error("Load() should not create the history directory when history is disabled")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	tmpDir := isolate(t)

	dbPath := filepath.Join(tmpDir, "nested", "history.db")
	t.Setenv("OUTPUT_DIR", "artifacts")
	t.Setenv("CHART_ENABLED", "false")
	t.Setenv("WORKBOOK_EXPORT", "true")
	t.Setenv("HISTORY_ENABLED", "true")
	t.Setenv("DATABASE_PATH", dbPath)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HISTORY_RETENTION_DAYS", "90")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.OutputDir != "artifacts" || cfg.ChartEnabled || !cfg.WorkbookExport {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.DatabasePath != dbPath {
		t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, dbPath)
	}
	if cfg.HistoryRetentionDays != 90 {
		t.Errorf("HistoryRetentionDays = %d, want 90", cfg.HistoryRetentionDays)
	}
	if _, err := os.Stat(filepath.Dir(dbPath)); err != nil {
		t.Errorf("history directory was not created: %v", err)
	}
}

func TestLoad_WithEnvFile(t *testing.T) {
	tmpDir := isolate(t)

	envPath := filepath.Join(tmpDir, ".env")
	content := "OUTPUT_DIR=from-env-file\nWORKBOOK_EXPORT=yes"
	if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv("OUTPUT_DIR")
		os.Unsetenv("WORKBOOK_EXPORT")
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.OutputDir != "from-env-file" {
		t.Errorf("OutputDir = %q, want from-env-file", cfg.OutputDir)
	}
	if !cfg.WorkbookExport {
		t.Error("WorkbookExport should be read from .env")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.OutputDir != defaultOutputDir || !cfg.ChartEnabled {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}
