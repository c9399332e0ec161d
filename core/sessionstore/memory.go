package sessionstore

import (
	"context"
	"sync"

	"stock-check/core/ledger"
	"stock-check/core/scan"
)

// MemoryStore keeps sessions in memory.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*ledger.Record
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*ledger.Record)}
}

func (s *MemoryStore) Put(_ context.Context, id string, rec *ledger.Record) error {
	if err := validateID(id); err != nil {
		return err
	}
	s.mu.Lock()
	s.records[id] = clone(rec)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*ledger.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(rec), nil
}

func (s *MemoryStore) List(_ context.Context) ([]ledger.Summary, error) {
	s.mu.RLock()
	out := make([]ledger.Summary, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec.Summary())
	}
	s.mu.RUnlock()
	sortNewestFirst(out)
	return out, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}
	delete(s.records, id)
	return nil
}

func clone(rec *ledger.Record) *ledger.Record {
	c := *rec
	c.Items = make([]scan.Outcome, len(rec.Items))
	copy(c.Items, rec.Items)
	return &c
}
