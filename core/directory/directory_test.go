// Package directory - header sniffing tests
package directory

import (
	"testing"

	"github.com/shopspring/decimal"

	"recipe-cost/internal/errors"
)

// priceList is a typical human-authored upload: a title, a blank row,
// then the real table
var priceList = [][]string{
	{"Bagels & Co. Market Survey"},
	{},
	{"Ingredient Name", "Supplier", "Price per Unit"},
	{"Flour", "Mill Co", "0.05"},
	{"  Butter ", "Dairy Co", "1.25"},
	{"nan", "", "9.99"},
	{"", "", "3.50"},
	{"flour", "Other Mill", "0.06"},
}

func TestBuildSniffsHeader(t *testing.T) {
	d, err := Build(priceList, Options{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if d.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", d.Len(), d.Names())
	}

	// Duplicate names: last write wins.
	price, ok := d.Lookup("flour")
	if !ok {
		t.Fatal("flour not found")
	}
	if !price.Equal(decimal.RequireFromString("0.06")) {
		t.Errorf("flour: got %s, want 0.06", price)
	}

	// Lookups are case- and whitespace-insensitive.
	if _, ok := d.Lookup("  BUTTER "); !ok {
		t.Error("butter not found via normalized lookup")
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	first, err := Build(priceList, Options{})
	if err != nil {
		t.Fatalf("first Build failed: %v", err)
	}
	second, err := Build(priceList, Options{})
	if err != nil {
		t.Fatalf("second Build failed: %v", err)
	}
	if first.Len() != second.Len() {
		t.Fatalf("sync not idempotent: %d vs %d entries", first.Len(), second.Len())
	}
	for _, name := range first.Names() {
		a, _ := first.Lookup(name)
		b, ok := second.Lookup(name)
		if !ok || !a.Equal(b) {
			t.Errorf("%s: %s vs %s", name, a, b)
		}
	}
}

func TestBuildNoHeader(t *testing.T) {
	grid := [][]string{
		{"just", "some", "cells"},
		{"1", "2", "3"},
	}
	_, err := Build(grid, Options{})
	if err == nil {
		t.Fatal("expected HeaderNotFound, got none")
	}
	if !errors.IsType(err, errors.TypeHeaderNotFound) {
		t.Errorf("expected HEADER_NOT_FOUND, got %v", err)
	}
}

func TestBuildScanLimit(t *testing.T) {
	grid := [][]string{
		{"note"}, {"note"}, {"note"},
		{"Item", "Price"},
		{"salt", "2.00"},
	}
	if _, err := Build(grid, Options{ScanLimit: 2}); !errors.IsType(err, errors.TypeHeaderNotFound) {
		t.Errorf("limit 2: expected HEADER_NOT_FOUND, got %v", err)
	}
	d, err := Build(grid, Options{ScanLimit: 10})
	if err != nil {
		t.Fatalf("limit 10: %v", err)
	}
	if d.Len() != 1 {
		t.Errorf("limit 10: expected 1 entry, got %d", d.Len())
	}
}

// TestLocateColumnTieBreak proves keyword-list order beats column order:
// "rate" appears left of "price", but "price" is the earlier keyword.
func TestLocateColumnTieBreak(t *testing.T) {
	grid := [][]string{
		{"Rate Class", "Item", "Price"},
		{"a", "salt", "2.00"},
	}
	layout, err := Locate(grid, Options{})
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if layout.PriceCol != 2 {
		t.Errorf("price column: got %d, want 2", layout.PriceCol)
	}
	if layout.NameCol != 1 {
		t.Errorf("name column: got %d, want 1", layout.NameCol)
	}
}

// TestLocateOptionalColumns reports -1 for columns a price list lacks
func TestLocateOptionalColumns(t *testing.T) {
	layout, err := Locate(priceList, Options{})
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if layout.HeaderRow != 2 {
		t.Errorf("header row: got %d, want 2", layout.HeaderRow)
	}
	if layout.QtyCol != -1 {
		t.Errorf("qty column: got %d, want -1", layout.QtyCol)
	}
}

// TestLookupOnNilDirectory proves an unsynced directory just misses
func TestLookupOnNilDirectory(t *testing.T) {
	var d *Directory
	if _, ok := d.Lookup("flour"); ok {
		t.Error("nil directory returned a price")
	}
	if d.Len() != 0 {
		t.Error("nil directory has entries")
	}
}

// TestRaggedRows proves short rows read as empty cells
func TestRaggedRows(t *testing.T) {
	grid := [][]string{
		{"Item", "Price"},
		{"salt"},
		{"pepper", "4.00"},
	}
	d, err := Build(grid, Options{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	price, ok := d.Lookup("salt")
	if !ok {
		t.Fatal("salt not found")
	}
	if !price.IsZero() {
		t.Errorf("salt: got %s, want 0", price)
	}
}
