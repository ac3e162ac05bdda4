package cart

import (
	"sync"

	"github.com/wichananm65/restaurant-shop-backend/internal/customer"
)

// Session holds the per-session order-taking state: the cart, the customer
// info typed so far, and the reference ids of payments already submitted from
// this session. All of it lives only in memory and disappears with the
// process.
type Session struct {
	Cart      *Cart
	Customer  customer.Info
	OrderRefs []string
}

// Store keeps one Session per session id. The first touch of an unknown id
// creates an empty session. The store mutex covers the session map and the
// carts inside it, so handlers may mutate a session while holding the store's
// lock via Update.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

func (s *Store) get(id string) *Session {
	sess, ok := s.sessions[id]
	if !ok {
		sess = &Session{Cart: New()}
		s.sessions[id] = sess
	}
	return sess
}

// Update runs fn against the session under the store lock. fn must not retain
// the session past the call.
func (s *Store) Update(id string, fn func(*Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.get(id))
}

// Snapshot returns a copy-safe view of the session: the line snapshot, derived
// totals and the current customer info.
func (s *Store) Snapshot(id string) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(id)
	return View{
		Lines:       sess.Cart.Lines(),
		Total:       sess.Cart.Total(),
		ItemCount:   sess.Cart.ItemCount(),
		IsEmpty:     sess.Cart.IsEmpty(),
		Description: sess.Cart.OrderDescription(),
		Customer:    sess.Customer,
	}
}

// View is the JSON shape handed to the UI after every cart mutation.
type View struct {
	Lines       []Line        `json:"lines"`
	Total       float64       `json:"total"`
	ItemCount   int           `json:"itemCount"`
	IsEmpty     bool          `json:"isEmpty"`
	Description string        `json:"description"`
	Customer    customer.Info `json:"customer"`
}
