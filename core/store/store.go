// Package store holds the in-memory product records for one session.
//
// The store owns its records: callers get copies out and copies are
// taken on the way in, so an editor buffer can never alias a stored
// record. Order is insertion order and only matters for display.
package store

import (
	"recipe-cost/core/types"
	"recipe-cost/internal/errors"
)

// RecordStore is an ordered collection of products keyed by name
type RecordStore struct {
	products []types.Product
	index    map[string]int
}

// New creates an empty record store
func New() *RecordStore {
	return &RecordStore{index: make(map[string]int)}
}

// Len returns the number of stored products
func (s *RecordStore) Len() int {
	return len(s.products)
}

// Upsert saves a product under its name. An existing record with the
// same name is overwritten in place, keeping its display position.
func (s *RecordStore) Upsert(p types.Product) {
	clone := p.Clone()
	if i, ok := s.index[p.Info.Name]; ok {
		s.products[i] = clone
		return
	}
	s.index[p.Info.Name] = len(s.products)
	s.products = append(s.products, clone)
}

// Get returns a copy of the product with the given name
func (s *RecordStore) Get(name string) (types.Product, error) {
	i, ok := s.index[name]
	if !ok {
		return types.Product{}, errors.NotFound("product", name)
	}
	return s.products[i].Clone(), nil
}

// Delete removes the product with the given name, reporting whether it existed
func (s *RecordStore) Delete(name string) bool {
	i, ok := s.index[name]
	if !ok {
		return false
	}
	s.products = append(s.products[:i], s.products[i+1:]...)
	delete(s.index, name)
	for name, j := range s.index {
		if j > i {
			s.index[name] = j - 1
		}
	}
	return true
}

// Names returns the product names in display order
func (s *RecordStore) Names() []string {
	out := make([]string, len(s.products))
	for i, p := range s.products {
		out[i] = p.Info.Name
	}
	return out
}

// Products returns copies of all records in display order
func (s *RecordStore) Products() []types.Product {
	out := make([]types.Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.Clone()
	}
	return out
}

// ReplaceAll swaps the entire store contents for the given records.
// Restore operations parse into a temporary slice first and call this
// only on full success, so a failed restore never touches the store.
func (s *RecordStore) ReplaceAll(products []types.Product) {
	s.products = s.products[:0]
	s.index = make(map[string]int, len(products))
	for _, p := range products {
		s.Upsert(p)
	}
}
