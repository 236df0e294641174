package database

import (
	"context"
	"sync"
)

// MemoryStore: süreç içinde tutulan store (testler ve LEDGER_BACKEND=memory)
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryStore(initial []byte) *MemoryStore {
	return &MemoryStore{data: clone(initial)}
}

func (s *MemoryStore) Load(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.data), nil
}

func (s *MemoryStore) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = clone(data)
	return nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
