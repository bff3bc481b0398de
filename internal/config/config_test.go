// Package config - configuration loading tests
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"pricing": {"default_mode": "piece-rounded"}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Pricing.DefaultMode != "piece-rounded" {
		t.Errorf("default mode: got %q", cfg.Pricing.DefaultMode)
	}
	// Untouched fields keep their defaults.
	if cfg.Pricing.VATRate != "1.13" {
		t.Errorf("vat rate: got %q, want 1.13", cfg.Pricing.VATRate)
	}
	if cfg.Output.ExportFilename == "" {
		t.Error("export filename default lost")
	}
	if cfg.Pricing.PriceScanLimit != 10 {
		t.Errorf("price scan limit default: got %d, want 10", cfg.Pricing.PriceScanLimit)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadOverheads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overheads.hcl")
	profile := `
overheads {
  rent                = 159000
  salaries            = 120000
  utilities           = 50000
  marketing           = 5000
  asset_value         = 1900000
  depreciation_years  = 5
  monthly_unit_volume = 2000
}
`
	if err := os.WriteFile(path, []byte(profile), 0644); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	o, err := LoadOverheads(path)
	if err != nil {
		t.Fatalf("LoadOverheads failed: %v", err)
	}
	if got := o.AveragePerUnit(); !got.Equal(decimal.RequireFromString("182.83")) {
		t.Errorf("average per unit: got %s, want 182.83", got)
	}
}

func TestLoadOverheadsMissingFile(t *testing.T) {
	o, err := LoadOverheads(filepath.Join(t.TempDir(), "absent.hcl"))
	if err != nil {
		t.Fatalf("missing profile should not error: %v", err)
	}
	if !o.AveragePerUnit().IsZero() {
		t.Errorf("expected zero overheads, got %s", o.AveragePerUnit())
	}
}

func TestLoadOverheadsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overheads.hcl")
	if err := os.WriteFile(path, []byte("not { hcl"), 0644); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	if _, err := LoadOverheads(path); err == nil {
		t.Fatal("expected parse error")
	}
}
