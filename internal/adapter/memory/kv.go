// Package memory provides an in-process key-value backend. Entries live only
// as long as the process; it suits tests and one-shot CLI runs.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/heartmarshall/pokecard/internal/domain"
)

// KV is a map guarded by a RWMutex.
type KV struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewKV creates an empty store.
func NewKV() *KV {
	return &KV{entries: make(map[string]string)}
}

// Get returns domain.ErrNotFound for absent keys.
func (s *KV) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.entries[key]
	if !ok {
		return "", fmt.Errorf("record_cache %s: %w", key, domain.ErrNotFound)
	}
	return v, nil
}

func (s *KV) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = value
	return nil
}

func (s *KV) Ping(_ context.Context) error { return nil }

// Len reports the number of stored entries.
func (s *KV) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
