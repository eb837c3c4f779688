package order

import (
	"context"
	"sort"
	"sync"
)

type MemStore struct {
	mu sync.RWMutex
	m  map[string]Order
}

func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string]Order)}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Append(ctx context.Context, o Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[o.ID] = o
	return nil
}

func (s *MemStore) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Order, 0, 4)
	for _, o := range s.m {
		if o.UserID == userID {
			out = append(out, o)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *MemStore) Get(ctx context.Context, id string) (Order, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.m[id]
	return o, ok, nil
}

func (s *MemStore) SetStatus(ctx context.Context, id string, st Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.m[id]
	if !ok {
		return ErrOrderNotFound
	}
	o.Status = st
	s.m[id] = o
	return nil
}
