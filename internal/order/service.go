package order

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/wichananm65/restaurant-shop-backend/internal/cart"
	"github.com/wichananm65/restaurant-shop-backend/internal/payment"
)

// Service places orders: it snapshots the session cart into a payment
// request, submits it to the gateway and records the outcome. At most one
// submission may be in flight per session; the processing flag is set before
// the call and cleared on both the success and the error path.
type Service struct {
	store   *cart.Store
	builder *Builder
	gateway payment.Gateway
	repo    Repository

	// when true the session cart is emptied after a successful submission;
	// the shop historically kept the cart visible until navigation
	clearCartOnOrder bool

	mu         sync.Mutex
	processing map[string]bool
}

func NewService(store *cart.Store, builder *Builder, gateway payment.Gateway, repo Repository, clearCartOnOrder bool) *Service {
	return &Service{
		store:            store,
		builder:          builder,
		gateway:          gateway,
		repo:             repo,
		clearCartOnOrder: clearCartOnOrder,
		processing:       make(map[string]bool),
	}
}

// Processing reports whether a submission is pending for the session.
func (s *Service) Processing(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processing[sessionID]
}

func (s *Service) beginProcessing(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.processing[sessionID] {
		return false
	}
	s.processing[sessionID] = true
	return true
}

func (s *Service) endProcessing(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.processing, sessionID)
}

// PlaceOrder submits the session's cart as a payment. The empty-cart check
// runs before the processing flag is taken, so a rejected attempt leaves no
// state behind.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string) (Order, error) {
	var (
		req payment.CreateRequest
		err error
	)
	var tableNumber string
	s.store.Update(sessionID, func(sess *cart.Session) {
		req, err = s.builder.BuildRequest(sess.Cart, sess.Customer)
		tableNumber = sess.Customer.TableNumber
	})
	if err != nil {
		return Order{}, err
	}

	if !s.beginProcessing(sessionID) {
		return Order{}, ErrProcessing
	}
	defer s.endProcessing(sessionID)

	res, err := s.gateway.CreatePayment(ctx, req)
	if err != nil {
		return Order{}, err
	}

	ord := Order{
		OrderID:       req.OrderID,
		ReferenceID:   res.ReferenceID,
		Amount:        res.Amount,
		Currency:      res.Currency,
		Status:        res.Status,
		Description:   req.Description,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		TableNumber:   tableNumber,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	// the payment went through, so the session bookkeeping runs before the
	// history write and is not undone by its failure
	s.store.Update(sessionID, func(sess *cart.Session) {
		sess.OrderRefs = append(sess.OrderRefs, ord.ReferenceID)
		if s.clearCartOnOrder {
			sess.Cart.Clear()
		}
	})

	if _, err := s.repo.Create(ord); err != nil {
		// a failed history write must not fail the order, the caller
		// still gets the reference id
		fmt.Printf("warning: could not record order %s: %v\n", ord.OrderID, err)
	}
	return ord, nil
}

// ListSessionOrders returns the recorded orders placed from the session, in
// submission order. Orders whose history write failed are skipped.
func (s *Service) ListSessionOrders(sessionID string) ([]Order, error) {
	var refs []string
	s.store.Update(sessionID, func(sess *cart.Session) {
		refs = append(refs, sess.OrderRefs...)
	})
	if len(refs) == 0 {
		return []Order{}, nil
	}
	return s.repo.ListByReferenceIDs(refs)
}

func (s *Service) GetByOrderID(orderID string) (Order, error) {
	return s.repo.GetByOrderID(orderID)
}
