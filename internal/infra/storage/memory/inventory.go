package memory

import (
	"context"
	"sync"

	"github.com/lndominguez/apexutravel-sub004/internal/domain/inventory"
)

// InventoryStore is an in-memory inventory backend.
type InventoryStore struct {
	mu    sync.RWMutex
	items map[inventory.RecordID]inventory.Record
}

func NewInventoryStore() *InventoryStore {
	return &InventoryStore{items: make(map[inventory.RecordID]inventory.Record)}
}

func (s *InventoryStore) Put(records ...inventory.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, record := range records {
		s.items[record.ID] = record
	}
}

// ByIDs returns the records that exist; missing ids are omitted.
func (s *InventoryStore) ByIDs(ctx context.Context, ids []inventory.RecordID) ([]inventory.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]inventory.Record, 0, len(ids))
	for _, id := range ids {
		if record, ok := s.items[id]; ok {
			out = append(out, record)
		}
	}
	return out, nil
}

var _ inventory.Store = (*InventoryStore)(nil)
