package sequence

import (
	"context"
	"sync"
)

// MemoryRepository is a process-local counter store. Each instance owns its
// own counters, so independent sequences can run side by side.
type MemoryRepository struct {
	mu       sync.Mutex
	counters map[string]int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{counters: make(map[string]int64)}
}

func (r *MemoryRepository) Next(_ context.Context, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[name]++
	return r.counters[name], nil
}

func (r *MemoryRepository) Current(_ context.Context, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counters[name], nil
}
