package app

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"
)

func TestInit_WithDefaults_Succeeds(t *testing.T) {
	t.Setenv("STORE_PATH", filepath.Join(t.TempDir(), "glowscan.db"))

	var buf bytes.Buffer
	cfg, err := Init(&buf)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg == nil {
		t.Fatal("expected non-nil config")
	}

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want %q", cfg.ServerPort, "8080")
	}
	if cfg.HistoryLimit != 10 {
		t.Errorf("HistoryLimit = %d, want 10", cfg.HistoryLimit)
	}

	// Verify that slog global logger is configured for JSON output
	slog.Default().Info("init test")
	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log output, got error: %v\nraw: %s", err, buf.String())
	}
	if entry["msg"] != "init test" {
		t.Errorf("msg = %q, want %q", entry["msg"], "init test")
	}
}

func TestInit_WithCustomStorePath_Succeeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.db")
	t.Setenv("STORE_PATH", path)

	var buf bytes.Buffer
	cfg, err := Init(&buf)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.StorePath != path {
		t.Errorf("StorePath = %q, want %q", cfg.StorePath, path)
	}
}
