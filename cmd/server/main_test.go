package main

import (
	"os"
	"path/filepath"
	"testing"
)

// Smoke test to ensure main honors SKIP_SERVER_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestLoadDotEnvMissingFileIsIgnored(t *testing.T) {
	if err := loadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("expected missing file ignored, got %v", err)
	}
}

func TestLoadDotEnvDoesNotOverrideExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("SUPERLIGA_TEST_A=file\nSUPERLIGA_TEST_B=file\n"), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Setenv("SUPERLIGA_TEST_A", "env")
	t.Setenv("SUPERLIGA_TEST_B", "")
	os.Unsetenv("SUPERLIGA_TEST_B")

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got := os.Getenv("SUPERLIGA_TEST_A"); got != "env" {
		t.Fatalf("expected existing value kept, got %s", got)
	}
	if got := os.Getenv("SUPERLIGA_TEST_B"); got != "file" {
		t.Fatalf("expected value loaded from file, got %s", got)
	}
}

func TestRunFailsOnMissingConfigFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	if err := run(); err == nil {
		t.Fatalf("expected config load error")
	}
}
