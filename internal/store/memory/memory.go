package memory

import (
	"context"
	"sort"
	"sync"

	"bills/internal/core"
	"bills/internal/store"
)

var _ store.Store = (*Store)(nil)

type Store struct {
	mu    sync.Mutex
	items map[string]core.Bill
}

func New() *Store {
	return &Store{items: make(map[string]core.Bill)}
}

// NewWithBills returns a store seeded with the given bills. Later entries
// replace earlier ones with the same name.
func NewWithBills(seed ...core.Bill) *Store {
	s := New()
	for _, b := range seed {
		s.items[b.Name] = b
	}
	return s
}

// Add stores the bill under its name, replacing any previous record.
func (s *Store) Add(_ context.Context, b core.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[b.Name] = b
	return nil
}

// List returns all bills sorted by name.
func (s *Store) List(_ context.Context) ([]core.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Bill, 0, len(s.items))
	for _, b := range s.items {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) Remove(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[name]; !ok {
		return false, nil
	}
	delete(s.items, name)
	return true, nil
}

func (s *Store) Update(_ context.Context, name string, amount float64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.items[name]
	if !ok {
		return false, nil
	}
	b.Amount = amount
	s.items[name] = b
	return true, nil
}

func (s *Store) Len(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items), nil
}
