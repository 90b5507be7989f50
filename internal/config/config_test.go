package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"reel/internal/config"
	"reel/internal/faults"
)

func TestLoadDefaultConfigUsesEnvTMDBKeyAndExpandsPaths(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "test-key")
	t.Setenv("LANG", "en_US.UTF-8")
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	chdir(t, tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantStorage := filepath.Join(tempHome, ".local", "share", "reel")
	if cfg.Storage.Dir != wantStorage {
		t.Fatalf("unexpected storage dir: got %q want %q", cfg.Storage.Dir, wantStorage)
	}
	if cfg.TMDB.APIKey != "test-key" {
		t.Fatalf("expected TMDB key from env, got %q", cfg.TMDB.APIKey)
	}
	if cfg.TMDB.BaseURL != config.Default().TMDB.BaseURL {
		t.Fatalf("unexpected TMDB base url: %q", cfg.TMDB.BaseURL)
	}
	if cfg.TMDB.Region != "US" {
		t.Fatalf("expected region inferred from locale, got %q", cfg.TMDB.Region)
	}
	if cfg.Cache.TTLMinutes != 30 {
		t.Fatalf("unexpected cache ttl: %d", cfg.Cache.TTLMinutes)
	}
}

func TestLoadMissingAPIKeyIsConfigurationError(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	chdir(t, tempHome)

	_, _, _, err := config.Load("")
	if err == nil {
		t.Fatal("expected error for missing api key")
	}
	if !errors.Is(err, faults.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestLoadReadsExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reel.toml")
	content := `
[tmdb]
api_key = "file-key"
region = "de"
language = "de-DE"

[cache]
ttl_minutes = 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.TMDB.APIKey != "file-key" {
		t.Fatalf("unexpected api key: %q", cfg.TMDB.APIKey)
	}
	if cfg.TMDB.Region != "DE" {
		t.Fatalf("expected region upper-cased, got %q", cfg.TMDB.Region)
	}
	if cfg.CacheTTL().Minutes() != 5 {
		t.Fatalf("unexpected ttl: %v", cfg.CacheTTL())
	}
}

func TestInferRegionFallback(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "C")
	if got := config.InferRegion(); got != config.FallbackRegion {
		t.Fatalf("expected fallback region, got %q", got)
	}

	t.Setenv("LANG", "es-AR")
	if got := config.InferRegion(); got != "AR" {
		t.Fatalf("expected AR, got %q", got)
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
