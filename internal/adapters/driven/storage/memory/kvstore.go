// Package memory provides in-memory driven-port implementations for
// tests and for running the core without durable storage.
package memory

import (
	"context"
	"sync"

	"github.com/homebase-labs/homebase-core/internal/core/ports/driven"
)

// Ensure KVStore implements the interface.
var _ driven.KVStore = (*KVStore)(nil)

// KVStore is an in-memory implementation of driven.KVStore.
//
// Two hooks support failure-path and interleaving tests: FailWrites
// makes every mutation return the given error, and OnWrite runs before
// each mutation commits (useful for delaying a write from another
// goroutine). Both must be set before concurrent use begins.
type KVStore struct {
	mu     sync.RWMutex
	values map[string]string

	// FailWrites, when non-nil, is returned by every mutating call.
	FailWrites error
	// OnWrite, when non-nil, runs before each mutation commits.
	OnWrite func(key string)
}

// NewKVStore creates an empty in-memory store.
func NewKVStore() *KVStore {
	return &KVStore{values: make(map[string]string)}
}

// Get retrieves a value. A missing key is ("", false, nil).
func (s *KVStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok, nil
}

// Set stores a value.
func (s *KVStore) Set(_ context.Context, key, value string) error {
	if err := s.beforeWrite(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Remove deletes a key.
func (s *KVStore) Remove(_ context.Context, key string) error {
	if err := s.beforeWrite(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// MultiGet retrieves several keys, preserving order.
func (s *KVStore) MultiGet(_ context.Context, keys []string) ([]driven.KeyValue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]driven.KeyValue, 0, len(keys))
	for _, key := range keys {
		val, ok := s.values[key]
		out = append(out, driven.KeyValue{Key: key, Value: val, Found: ok})
	}
	return out, nil
}

// MultiSet stores several pairs.
func (s *KVStore) MultiSet(_ context.Context, pairs map[string]string) error {
	if err := s.beforeWrite(""); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, value := range pairs {
		s.values[key] = value
	}
	return nil
}

// MultiRemove deletes several keys.
func (s *KVStore) MultiRemove(_ context.Context, keys []string) error {
	if err := s.beforeWrite(""); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.values, key)
	}
	return nil
}

// Len returns the number of stored keys.
func (s *KVStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

func (s *KVStore) beforeWrite(key string) error {
	if s.OnWrite != nil {
		s.OnWrite(key)
	}
	return s.FailWrites
}
