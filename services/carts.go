package services

import (
	"sync"

	"github.com/google/uuid"
)

// CartManager hands out carts for checkout sessions, keyed by an opaque id.
// Carts are never persisted; abandoning one just leaves it to be discarded.
type CartManager struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewCartManager() *CartManager {
	return &CartManager{carts: make(map[string]*Cart)}
}

func (m *CartManager) Create() string {
	id := uuid.NewString()
	m.mu.Lock()
	m.carts[id] = NewCart()
	m.mu.Unlock()
	return id
}

func (m *CartManager) Get(id string) (*Cart, bool) {
	m.mu.Lock()
	cart, ok := m.carts[id]
	m.mu.Unlock()
	return cart, ok
}

func (m *CartManager) Discard(id string) {
	m.mu.Lock()
	delete(m.carts, id)
	m.mu.Unlock()
}
