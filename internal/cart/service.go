package cart

import (
	"github.com/wichananm65/restaurant-shop-backend/internal/customer"
	"github.com/wichananm65/restaurant-shop-backend/internal/menu"
)

// Service orchestrates cart operations for a session. Item ids coming from the
// client are resolved against the menu catalog before they touch the cart, so
// a cart can never hold an item the menu does not know.
type Service struct {
	store *Store
	menu  *menu.Service
}

func NewService(store *Store, menuService *menu.Service) *Service {
	return &Service{store: store, menu: menuService}
}

func (s *Service) Store() *Store {
	return s.store
}

// AddItem resolves the menu item and adds qty units to the session cart.
// qty defaults to 1 when the client omits it.
func (s *Service) AddItem(sessionID string, itemID, qty int) (View, error) {
	item, err := s.menu.GetByID(itemID)
	if err != nil {
		return View{}, err
	}
	if qty == 0 {
		qty = 1
	}
	s.store.Update(sessionID, func(sess *Session) {
		sess.Cart.AddItem(item, qty)
	})
	return s.store.Snapshot(sessionID), nil
}

func (s *Service) RemoveItem(sessionID string, itemID int) (View, bool) {
	removed := false
	s.store.Update(sessionID, func(sess *Session) {
		removed = sess.Cart.RemoveItem(itemID)
	})
	return s.store.Snapshot(sessionID), removed
}

func (s *Service) UpdateQuantity(sessionID string, itemID, qty int) (View, bool) {
	updated := false
	s.store.Update(sessionID, func(sess *Session) {
		updated = sess.Cart.UpdateQuantity(itemID, qty)
	})
	return s.store.Snapshot(sessionID), updated
}

func (s *Service) IncrementItem(sessionID string, itemID int) View {
	s.store.Update(sessionID, func(sess *Session) {
		sess.Cart.IncrementItem(itemID)
	})
	return s.store.Snapshot(sessionID)
}

func (s *Service) DecrementItem(sessionID string, itemID int) View {
	s.store.Update(sessionID, func(sess *Session) {
		sess.Cart.DecrementItem(itemID)
	})
	return s.store.Snapshot(sessionID)
}

func (s *Service) Clear(sessionID string) View {
	s.store.Update(sessionID, func(sess *Session) {
		sess.Cart.Clear()
	})
	return s.store.Snapshot(sessionID)
}

func (s *Service) Get(sessionID string) View {
	return s.store.Snapshot(sessionID)
}

// SetCustomer replaces the customer info fields that the client sent, using
// the copy-on-write setters so earlier snapshots stay intact.
func (s *Service) SetCustomer(sessionID string, name, phone, table *string) customer.Info {
	var out customer.Info
	s.store.Update(sessionID, func(sess *Session) {
		info := sess.Customer
		if name != nil {
			info = info.WithName(*name)
		}
		if phone != nil {
			info = info.WithPhone(*phone)
		}
		if table != nil {
			info = info.WithTableNumber(*table)
		}
		sess.Customer = info
		out = info
	})
	return out
}

// ResetCustomer clears the customer info back to the zero value.
func (s *Service) ResetCustomer(sessionID string) {
	s.store.Update(sessionID, func(sess *Session) {
		sess.Customer = customer.Info{}
	})
}
