// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"recipe-cost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Pricing contains pricing-related settings
	Pricing PricingConfig `json:"pricing"`

	// Output contains export/display settings
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// PricingConfig contains pricing-related settings
type PricingConfig struct {
	// VATRate is the VAT multiplier applied when VAT is included
	VATRate string `json:"vat_rate"`

	// DefaultMode is the default pricing mode (simple, dine-in-delivery, piece-rounded)
	DefaultMode string `json:"default_mode"`

	// OverheadsFile is the path to the HCL overheads profile
	OverheadsFile string `json:"overheads_file"`

	// PriceScanLimit bounds the price-list header search; 0 scans every row
	PriceScanLimit int `json:"price_scan_limit"`
}

// OutputConfig contains export/display settings
type OutputConfig struct {
	// ExportFilename is the default master export filename
	ExportFilename string `json:"export_filename"`

	// Separators inserts a blank row after each product block on export
	Separators bool `json:"separators"`

	// NoColor disables colored terminal output
	NoColor bool `json:"no_color"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Version: "1",
		Pricing: PricingConfig{
			VATRate:        "1.13",
			DefaultMode:    "simple",
			OverheadsFile:  "overheads.hcl",
			PriceScanLimit: 10,
		},
		Output: OutputConfig{
			ExportFilename: "bagels_master_records.xlsx",
			Separators:     true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads configuration from a JSON file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".recipe-cost.json"
	}
	return filepath.Join(home, ".recipe-cost.json")
}

var current = Default()

// Get returns the active configuration
func Get() *Config {
	return current
}

// Set replaces the active configuration
func Set(cfg *Config) {
	if cfg != nil {
		current = cfg
	}
}
