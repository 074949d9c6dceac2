package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps one <key>.json file per collection under a data directory.
// Saves go through a temp file and rename so a crash mid-write leaves the
// previous version readable.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &PersistenceError{Op: "mkdir", Key: dir, Err: err}
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Load(key string, dst interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return &PersistenceError{Op: "load", Key: key, Err: err}
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return &PersistenceError{Op: "load", Key: key, Err: err}
	}
	return nil
}

func (s *FileStore) Save(key string, value interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return &PersistenceError{Op: "save", Key: key, Err: err}
	}

	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return &PersistenceError{Op: "save", Key: key, Err: err}
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &PersistenceError{Op: "save", Key: key, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &PersistenceError{Op: "save", Key: key, Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return &PersistenceError{Op: "save", Key: key, Err: err}
	}
	return nil
}
