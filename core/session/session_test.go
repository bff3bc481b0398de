// Package session - session state tests
package session

import (
	"testing"

	"github.com/shopspring/decimal"

	"recipe-cost/core/directory"
	"recipe-cost/core/table"
	"recipe-cost/core/types"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func bagel() types.Product {
	return types.Product{
		Info: types.ProductInfo{Name: "Bagel", Yield: dec("12")},
		Recipe: []types.IngredientLine{
			{Name: "flour", Quantity: dec("400"), Unit: types.UnitGram, UnitPrice: dec("0.5")},
		},
	}
}

// TestSaveDropsBlankLines proves blank editor rows never reach the store
func TestSaveDropsBlankLines(t *testing.T) {
	s := New()
	p := bagel()
	p.Recipe = append(p.Recipe, types.IngredientLine{Name: "  "})

	s.Save(p)
	stored, err := s.Store.Get("Bagel")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(stored.Recipe) != 1 {
		t.Errorf("expected 1 recipe line, got %d", len(stored.Recipe))
	}
}

// TestFailedRestoreLeavesStoreUntouched is the atomicity guarantee:
// a malformed file must not wipe or partially replace existing records
func TestFailedRestoreLeavesStoreUntouched(t *testing.T) {
	s := New()
	s.Save(bagel())

	if _, err := s.Restore([][]string{{"Foo"}, {"x"}}); err == nil {
		t.Fatal("expected restore to fail")
	}
	if s.Store.Len() != 1 {
		t.Fatalf("store changed by failed restore: %d records", s.Store.Len())
	}
	if _, err := s.Store.Get("Bagel"); err != nil {
		t.Errorf("Bagel lost after failed restore: %v", err)
	}
}

// TestRestoreReplacesWholesale proves a good file swaps the whole store
func TestRestoreReplacesWholesale(t *testing.T) {
	s := New()
	s.Save(bagel())

	grid := [][]string{
		{table.ColItem, table.ColQty, table.ColUnit, table.ColPricePerUnit},
		{"--- PRODUCT: Croissant ---"},
		{"butter", "0.25", "kg", "800"},
	}
	n, err := s.Restore(grid)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 product, got %d", n)
	}
	if _, err := s.Store.Get("Bagel"); err == nil {
		t.Error("Bagel survived wholesale restore")
	}
	if _, err := s.Store.Get("Croissant"); err != nil {
		t.Errorf("Croissant missing after restore: %v", err)
	}
}

// TestFailedSyncKeepsDirectory proves a bad price list is a no-op
func TestFailedSyncKeepsDirectory(t *testing.T) {
	s := New()
	good := [][]string{
		{"Ingredient Name", "Price per Unit"},
		{"flour", "0.05"},
	}
	if _, err := s.SyncPrices(good, directory.Options{}); err != nil {
		t.Fatalf("sync failed: %v", err)
	}

	n, err := s.SyncPrices([][]string{{"nothing", "useful"}}, directory.Options{})
	if err == nil {
		t.Fatal("expected sync to fail")
	}
	if n != 1 {
		t.Errorf("directory size changed on failed sync: %d", n)
	}
	if _, ok := s.LookupPrice("flour"); !ok {
		t.Error("flour lost after failed sync")
	}
}

// TestLookupBeforeSync proves lookups just miss before any sync
func TestLookupBeforeSync(t *testing.T) {
	s := New()
	if _, ok := s.LookupPrice("flour"); ok {
		t.Error("unsynced session returned a price")
	}
}

// TestLoadFillsBuffer proves Load hands the editor an isolated copy
func TestLoadFillsBuffer(t *testing.T) {
	s := New()
	s.Save(bagel())

	if _, err := s.Load("Bagel"); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(s.EditableRecipe()) != 1 {
		t.Fatalf("buffer not filled: %d lines", len(s.EditableRecipe()))
	}

	// Editing the buffer must not change the stored record until Save.
	s.Buffer[0].Name = "sand"
	stored, err := s.Store.Get("Bagel")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if stored.Recipe[0].Name != "flour" {
		t.Errorf("store mutated through editor buffer: %q", stored.Recipe[0].Name)
	}
}

// TestExportRoundTrip proves a session export restores into an
// equivalent session
func TestExportRoundTrip(t *testing.T) {
	s := New()
	s.Save(bagel())
	rows := s.Export(table.SerializeOptions{Separators: true})

	restored := New()
	if _, err := restored.Restore(rows); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if restored.Store.Len() != 1 {
		t.Fatalf("expected 1 product, got %d", restored.Store.Len())
	}
	p, err := restored.Store.Get("Bagel")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !p.Recipe[0].Quantity.Equal(dec("400")) {
		t.Errorf("quantity: got %s, want 400", p.Recipe[0].Quantity)
	}
}
