package menu

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("menu item not found")
)

type Repository interface {
	List() []Item
	GetByID(id int) (Item, error)
	// Reset replaces all items with the provided list (used at catalog load)
	Reset(items []Item) error
}

// InMemoryRepository is a simple in-memory implementation useful for tests and
// for running the demo without a database.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Item
}

func NewInMemoryRepository(seed []Item) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Item, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) List() []Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Item, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) GetByID(id int) (Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.storage {
		if it.ID == id {
			return it, nil
		}
	}
	return Item{}, ErrNotFound
}

func (r *InMemoryRepository) Reset(items []Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = make([]Item, len(items))
	copy(r.storage, items)
	return nil
}
