package storage

import (
	"encoding/json"
	"sync"
)

// MemoryStore is a map-backed Store for tests and ephemeral runs. Values
// round-trip through JSON so it exercises the same serialization rules as
// the durable stores.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Load(key string, dst interface{}) error {
	s.mu.RLock()
	data, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return &PersistenceError{Op: "load", Key: key, Err: err}
	}
	return nil
}

func (s *MemoryStore) Save(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return &PersistenceError{Op: "save", Key: key, Err: err}
	}
	s.mu.Lock()
	s.data[key] = data
	s.mu.Unlock()
	return nil
}
