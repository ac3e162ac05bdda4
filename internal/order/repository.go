package order

import "sync"

// Repository stores submission records.
type Repository interface {
	Create(ord Order) (Order, error)
	GetByOrderID(orderID string) (Order, error)
	ListByReferenceIDs(refs []string) ([]Order, error)
}

// InMemoryRepository is used for tests and for running the demo without a
// database.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{storage: make([]Order, 0)}
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = append(r.storage, ord)
	return ord, nil
}

func (r *InMemoryRepository) GetByOrderID(orderID string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ord := range r.storage {
		if ord.OrderID == orderID {
			return ord, nil
		}
	}
	return Order{}, ErrNotFound
}

// ListByReferenceIDs returns records matching the given payment references,
// preserving the order of the input slice. An empty slice yields an empty
// result.
func (r *InMemoryRepository) ListByReferenceIDs(refs []string) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0, len(refs))
	for _, ref := range refs {
		for _, ord := range r.storage {
			if ord.ReferenceID == ref {
				out = append(out, ord)
				break
			}
		}
	}
	return out, nil
}
