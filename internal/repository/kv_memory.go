package repository

import (
	"context"
	"sync"
)

// MemoryKeyValueRepository keeps settings in process memory only
type MemoryKeyValueRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

// Ensure MemoryKeyValueRepository implements KeyValueRepositoryInterface
var _ KeyValueRepositoryInterface = (*MemoryKeyValueRepository)(nil)

// NewMemoryKeyValueRepository creates an empty in-memory store
func NewMemoryKeyValueRepository() *MemoryKeyValueRepository {
	return &MemoryKeyValueRepository{values: make(map[string]string)}
}

// Get returns the value stored under key
func (r *MemoryKeyValueRepository) Get(_ context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok, nil
}

// Set stores value under key
func (r *MemoryKeyValueRepository) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}

// Ping always succeeds
func (r *MemoryKeyValueRepository) Ping(context.Context) error { return nil }

// Close is a no-op
func (r *MemoryKeyValueRepository) Close() error { return nil }
