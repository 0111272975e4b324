package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuildDefaults(t *testing.T) {
	cfg, err := Build("", nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if cfg.Currency != "$" || cfg.Unit != "m" {
		t.Errorf("expected default currency/unit, got %q/%q", cfg.Currency, cfg.Unit)
	}
	if cfg.CurrentYear != 2023 || cfg.LastYear != 2022 {
		t.Errorf("expected default years 2023/2022, got %d/%d", cfg.CurrentYear, cfg.LastYear)
	}
	if cfg.Delimiter != "," {
		t.Errorf("expected default delimiter, got %q", cfg.Delimiter)
	}
}

func TestBuildFromFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	content := "currency: €\nunit: k\ncompany: Acme Oy\ncurrent_year: 2025\nlast_year: 2024\n"
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Build(tmpFile, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if cfg.Currency != "€" || cfg.Unit != "k" || cfg.Company != "Acme Oy" {
		t.Errorf("expected file values, got %+v", cfg)
	}
	if cfg.CurrentYear != 2025 || cfg.LastYear != 2024 {
		t.Errorf("expected file years 2025/2024, got %d/%d", cfg.CurrentYear, cfg.LastYear)
	}
}

func TestBuildMissingExplicitFile(t *testing.T) {
	if _, err := Build(filepath.Join(t.TempDir(), "nope.yaml"), nil); err == nil {
		t.Error("expected an error for an explicit config file that does not exist")
	}
}
