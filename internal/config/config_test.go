// ABOUTME: Tests for fittrack configuration management.
// ABOUTME: Covers load, save, defaults, env overrides, and path expansion.
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetAPIURLDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetAPIURL(); got != DefaultAPIURL {
		t.Errorf("GetAPIURL() = %q, want %q", got, DefaultAPIURL)
	}
}

func TestGetAPIURLTrimsTrailingSlash(t *testing.T) {
	cfg := &Config{APIURL: "https://fit.example.com/"}
	if got := cfg.GetAPIURL(); got != "https://fit.example.com" {
		t.Errorf("GetAPIURL() = %q", got)
	}
}

func TestGetTimeoutDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetTimeout(); got != 15*time.Second {
		t.Errorf("GetTimeout() = %v, want 15s", got)
	}
}

func TestGetTimeoutExplicit(t *testing.T) {
	cfg := &Config{TimeoutSeconds: 30}
	if got := cfg.GetTimeout(); got != 30*time.Second {
		t.Errorf("GetTimeout() = %v, want 30s", got)
	}
}

func TestGetLogLevelDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetLogLevel(); got != "warn" {
		t.Errorf("GetLogLevel() = %q, want %q", got, "warn")
	}
}

func TestGetDataDirDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetDataDir(); got == "" {
		t.Error("GetDataDir() returned empty string")
	}
}

func TestGetDataDirExpandsTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	cfg := &Config{DataDir: "~/fittrack-data"}
	got := cfg.GetDataDir()
	want := filepath.Join(home, "fittrack-data")
	if got != want {
		t.Errorf("GetDataDir() = %q, want %q", got, want)
	}
}

func TestExpandPathEmpty(t *testing.T) {
	if got := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(\"\") = %q, want %q", got, "")
	}
}

func TestExpandPathAbsolute(t *testing.T) {
	if got := ExpandPath("/tmp/foo"); got != "/tmp/foo" {
		t.Errorf("ExpandPath(\"/tmp/foo\") = %q, want %q", got, "/tmp/foo")
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	if got := ExpandPath("~"); got != home {
		t.Errorf("ExpandPath(\"~\") = %q, want %q", got, home)
	}
}

func TestExpandPathTildeSlash(t *testing.T) {
	home, _ := os.UserHomeDir()

	got := ExpandPath("~/data/fittrack")
	want := filepath.Join(home, "data/fittrack")
	if got != want {
		t.Errorf("ExpandPath(\"~/data/fittrack\") = %q, want %q", got, want)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}
	if cfg.APIURL != "" {
		t.Errorf("Expected empty APIURL, got %q", cfg.APIURL)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg := &Config{
		APIURL:         "https://fit.example.com",
		DataDir:        "/tmp/fittrack-data",
		TimeoutSeconds: 20,
		LogLevel:       "debug",
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if loaded.APIURL != cfg.APIURL {
		t.Errorf("APIURL mismatch: got %q, want %q", loaded.APIURL, cfg.APIURL)
	}
	if loaded.DataDir != cfg.DataDir {
		t.Errorf("DataDir mismatch: got %q, want %q", loaded.DataDir, cfg.DataDir)
	}
	if loaded.TimeoutSeconds != 20 {
		t.Errorf("TimeoutSeconds = %d, want 20", loaded.TimeoutSeconds)
	}
	if loaded.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", loaded.LogLevel, "debug")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "nonexistent"))

	cfg := &Config{LogLevel: "info"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() should create directory: %v", err)
	}

	configDir := filepath.Join(tmpDir, "nonexistent", "fittrack")
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		t.Error("Expected config directory to be created")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	configDir := filepath.Join(tmpDir, "fittrack")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte("invalid json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid JSON config")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg := &Config{APIURL: "https://file.example.com", LogLevel: "error"}
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}

	t.Setenv("FITTRACK_API_URL", "https://env.example.com")
	t.Setenv("FITTRACK_TIMEOUT", "45")
	t.Setenv("FITTRACK_LOG_LEVEL", "debug")

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if loaded.APIURL != "https://env.example.com" {
		t.Errorf("env did not win: APIURL = %q", loaded.APIURL)
	}
	if loaded.TimeoutSeconds != 45 {
		t.Errorf("TimeoutSeconds = %d, want 45", loaded.TimeoutSeconds)
	}
	if loaded.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", loaded.LogLevel, "debug")
	}
}

func TestEnvTimeoutIgnoresGarbage(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("FITTRACK_TIMEOUT", "not-a-number")

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.TimeoutSeconds != 0 {
		t.Errorf("garbage timeout applied: %d", loaded.TimeoutSeconds)
	}
	if loaded.GetTimeout() != DefaultTimeout {
		t.Errorf("GetTimeout() = %v, want default", loaded.GetTimeout())
	}
}

func TestGetConfigPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	got := GetConfigPath()
	want := filepath.Join(tmpDir, "fittrack", "config.json")
	if got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}
