package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "analysis.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadOverlaysOnlyPresentFields(t *testing.T) {
	path := writeTempConfig(t, `{"limit_order": 5, "seed": 7}`)
	cfg, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LimitOrder != 5 {
		t.Errorf("LimitOrder: want 5, got %d", cfg.LimitOrder)
	}
	if cfg.Seed != 7 {
		t.Errorf("Seed: want 7, got %d", cfg.Seed)
	}
	// Fields absent from the file should keep New()'s defaults.
	if cfg.NSums != 1_000_000 {
		t.Errorf("NSums should keep its default, got %d", cfg.NSums)
	}
}

func TestLoadExplicitZeroDiffersFromAbsent(t *testing.T) {
	path := writeTempConfig(t, `{"cutoff": 0}`)
	cfg, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CutOff != 0 {
		t.Errorf("explicit cutoff=0 should be honored, got %v", cfg.CutOff)
	}
}

func TestLoadCollectsAllViolations(t *testing.T) {
	path := writeTempConfig(t, `{"limit_order": -1, "cutoff": 2, "n_sums": 0}`)
	if _, err := NewLoader(path).Load(); err == nil {
		t.Fatal("Load should reject a config with multiple invalid fields")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := NewLoader("/nonexistent/path/analysis.json").Load(); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeTempConfig(t, `{not valid json`)
	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("Load should fail for malformed JSON")
	}
}
