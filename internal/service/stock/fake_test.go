package stock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

// memStore is an in-memory inventory and ledger that honours the same
// conditional-update contract as the postgres repositories.
type memStore struct {
	mu      sync.Mutex
	items   map[uuid.UUID]domain.InventoryItem
	entries []domain.LedgerEntry
}

func newMemStore(items ...domain.InventoryItem) *memStore {
	s := &memStore{items: make(map[uuid.UUID]domain.InventoryItem)}
	for _, it := range items {
		s.items[it.ID] = it
	}
	return s
}

func (s *memStore) GetByID(_ context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &it, nil
}

func (s *memStore) GetBalance(_ context.Context, id uuid.UUID) (domain.Balance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return domain.Balance{}, domain.ErrNotFound
	}
	return it.Balance, nil
}

func (s *memStore) AdjustBalance(_ context.Context, id uuid.UUID, delta domain.Balance) (domain.Balance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return domain.Balance{}, domain.ErrNotFound
	}
	next := it.Balance.Add(delta)
	if next.IsNegative() {
		return domain.Balance{}, domain.ErrNegativeBalance
	}
	it.Balance = next
	s.items[id] = it
	return next, nil
}

func (s *memStore) Create(_ context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[item.ID]; ok {
		return nil, domain.ErrAlreadyExists
	}
	s.items[item.ID] = *item
	out := *item
	return &out, nil
}

func (s *memStore) Delete(_ context.Context, id uuid.UUID) (domain.Balance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return domain.Balance{}, domain.ErrNotFound
	}
	delete(s.items, id)
	return it.Balance, nil
}

func (s *memStore) List(_ context.Context, kind domain.ItemKind) ([]domain.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.InventoryItem
	for _, it := range s.items {
		if it.Kind == kind {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *memStore) Append(_ context.Context, e domain.LedgerEntry) (domain.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.Timestamp = time.Now()
	s.entries = append(s.entries, e)
	return e, nil
}

func (s *memStore) entriesFor(id uuid.UUID) []domain.LedgerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.LedgerEntry
	for _, e := range s.entries {
		if e.ItemID != nil && *e.ItemID == id {
			out = append(out, e)
		}
	}
	return out
}

// memLedger adapts memStore to ledgerStore.
type memLedger struct{ *memStore }

func (l memLedger) List(_ context.Context, _ domain.LedgerFilter, limit int) ([]domain.LedgerEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := append([]domain.LedgerEntry(nil), l.entries...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
