// Package mealplan implements meal plan persistence and the planning
// service that mutates one week's plan at a time.
package mealplan

import (
	"context"
	"sync"
)

// Backend is the raw key-value document storage the meal plan store
// sits on. Implementations persist whole serialized documents under a
// string key; the store owns serialization and key layout.
type Backend interface {
	// Get returns the document stored under key. The second return is
	// false when no document exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// MemoryBackend is an in-memory Backend used in tests and in execution
// contexts without durable storage configured.
type MemoryBackend struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{docs: make(map[string][]byte)}
}

// Get returns the stored document for key.
func (b *MemoryBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	data, ok := b.docs[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

// Set stores a copy of data under key.
func (b *MemoryBackend) Set(_ context.Context, key string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	b.docs[key] = stored
	return nil
}

// Delete removes the document under key. Deleting an absent key is not
// an error.
func (b *MemoryBackend) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.docs, key)
	return nil
}
