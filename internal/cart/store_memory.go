package cart

import (
	"context"
	"slices"
	"sync"
)

type MemSlot struct {
	mu sync.RWMutex
	m  map[string][]LineItem
}

func NewMemSlot() *MemSlot {
	return &MemSlot{m: make(map[string][]LineItem)}
}

func (s *MemSlot) Load(ctx context.Context, userID string) ([]LineItem, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items, ok := s.m[userID]
	return slices.Clone(items), ok, nil
}

func (s *MemSlot) Save(ctx context.Context, userID string, items []LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[userID] = slices.Clone(items)
	return nil
}

func (s *MemSlot) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, userID)
	return nil
}
