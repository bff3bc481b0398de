// Package session holds the mutable state of one interactive costing
// session: the record store, the market price directory and the recipe
// buffer being edited. There is exactly one logical actor, so the
// session is a plain value with synchronous methods and no locking.
// Nothing here is persisted; the only way state survives a restart is
// an explicit export/restore through the table format.
package session

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"recipe-cost/core/costing"
	"recipe-cost/core/directory"
	"recipe-cost/core/store"
	"recipe-cost/core/table"
	"recipe-cost/core/types"
	"recipe-cost/internal/logging"
)

// Session is the per-session state container
type Session struct {
	// Store holds the saved product records
	Store *store.RecordStore

	// Directory is the market price lookup table; nil until first sync
	Directory *directory.Directory

	// Buffer is the recipe currently being edited
	Buffer []types.IngredientLine

	// Overheads is the monthly fixed-cost profile used for allocation
	Overheads costing.Overheads
}

// New creates an empty session
func New() *Session {
	return &Session{Store: store.New()}
}

// EditableRecipe returns the in-progress recipe buffer
func (s *Session) EditableRecipe() []types.IngredientLine {
	return s.Buffer
}

// LookupPrice resolves an ingredient's market unit price from the
// directory, reporting whether it was found
func (s *Session) LookupPrice(name string) (decimal.Decimal, bool) {
	return s.Directory.Lookup(name)
}

// Save upserts a product into the store, dropping blank recipe lines
func (s *Session) Save(p types.Product) {
	p.Recipe = p.CleanRecipe()
	s.Store.Upsert(p)
	logging.Info("product saved",
		zap.String("name", p.Info.Name),
		zap.Int("lines", len(p.Recipe)),
		zap.Int("store_size", s.Store.Len()))
}

// Delete removes a product by name, reporting whether it existed
func (s *Session) Delete(name string) bool {
	deleted := s.Store.Delete(name)
	if deleted {
		logging.Info("product deleted", zap.String("name", name))
	}
	return deleted
}

// Load copies a stored product into the editor buffer and returns it
func (s *Session) Load(name string) (types.Product, error) {
	p, err := s.Store.Get(name)
	if err != nil {
		return types.Product{}, err
	}
	s.Buffer = p.Recipe
	return p, nil
}

// SyncPrices rebuilds the price directory from an uploaded price-list
// grid. On failure the previous directory is kept unchanged and the
// error is returned for the caller to surface as a notice.
func (s *Session) SyncPrices(grid [][]string, opts directory.Options) (int, error) {
	d, err := directory.Build(grid, opts)
	if err != nil {
		logging.Warn("price sync failed", zap.Error(err))
		return s.Directory.Len(), err
	}
	s.Directory = d
	logging.Info("prices synced", zap.Int("entries", d.Len()))
	return d.Len(), nil
}

// Restore replaces the store wholesale from a master-records grid.
// Parsing happens into a temporary slice first; the store is only
// touched when the whole file parsed cleanly.
func (s *Session) Restore(grid [][]string) (int, error) {
	products, err := table.Parse(grid)
	if err != nil {
		logging.Warn("restore failed, store unchanged", zap.Error(err))
		return s.Store.Len(), err
	}
	s.Store.ReplaceAll(products)
	logging.Info("store restored", zap.Int("products", s.Store.Len()))
	return s.Store.Len(), nil
}

// Export flattens the store into export rows
func (s *Session) Export(opts table.SerializeOptions) [][]string {
	return table.Serialize(s.Store.Products(), opts)
}
