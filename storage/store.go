package storage

import "fmt"

// Collection keys. Each collection is an independent JSON array under its
// own key; writes are full-collection replacements and there is no
// cross-collection atomicity.
const (
	CollectionServices     = "services"
	CollectionClients      = "clients"
	CollectionOrders       = "orders"
	CollectionStylists     = "stylists"
	CollectionAppointments = "appointments"
)

// Store is the key-value persistence substrate shared by all collections.
// Load leaves dst untouched when the key has never been written, so callers
// start from an empty collection. Save replaces the whole value under key.
type Store interface {
	Load(key string, dst interface{}) error
	Save(key string, value interface{}) error
}

// PersistenceError wraps a storage-layer failure (unreadable file, broken
// connection, malformed stored JSON). No recovery behavior is attached; the
// operation that hit it is simply reported as failed.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage: %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
