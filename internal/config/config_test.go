package config

import (
	"os"
	"path/filepath"
	"testing"
)

// unsetEnv clears key for the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	unsetEnv(t, "RESTAURANT_FILE")
	unsetEnv(t, "RESTAURANT_THEME")
	unsetEnv(t, "RESTAURANT_LOG_LEVEL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.File != "restaurant.json" || cfg.Theme != "classic" || cfg.LogLevel != "warn" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RESTAURANT_FILE", "cafe.json")
	t.Setenv("RESTAURANT_THEME", "NEON")
	t.Setenv("RESTAURANT_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.File != "cafe.json" || cfg.Theme != "neon" || cfg.LogLevel != "debug" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	unsetEnv(t, "RESTAURANT_FILE")
	unsetEnv(t, "RESTAURANT_THEME")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("RESTAURANT_THEME=mono\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme != "mono" {
		t.Errorf("Theme = %q, want mono from .env", cfg.Theme)
	}
}
