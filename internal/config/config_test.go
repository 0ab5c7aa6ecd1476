package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("BUDGETCUT_BUDGET_FILE", "")
	t.Setenv("BUDGETCUT_STRATEGY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
	if Exists() {
		t.Fatal("Exists() = true before any save")
	}
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("BUDGETCUT_BUDGET_FILE", "")
	t.Setenv("BUDGETCUT_STRATEGY", "")

	cfg := DefaultConfig()
	cfg.General.BudgetFile = "/tmp/budget.toml"
	cfg.General.Strategy = "greedy"
	cfg.Display.Currency = "€"
	cfg.Appearance.Theme = "tokyo-night"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Fatalf("loaded = %+v, want %+v", got, cfg)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("BUDGETCUT_BUDGET_FILE", "/data/mine.yaml")
	t.Setenv("BUDGETCUT_STRATEGY", "exact")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.General.BudgetFile != "/data/mine.yaml" {
		t.Errorf("BudgetFile = %q, want /data/mine.yaml", cfg.General.BudgetFile)
	}
	if cfg.General.Strategy != "exact" {
		t.Errorf("Strategy = %q, want exact", cfg.General.Strategy)
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[general\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[display]\ncurrency = \"£\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Display.Currency != "£" {
		t.Errorf("Currency = %q, want £", cfg.Display.Currency)
	}
	if cfg.Display.ChartWidth != 40 || cfg.General.Strategy != "both" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}
