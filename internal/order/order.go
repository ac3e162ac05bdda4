package order

import "errors"

var (
	// ErrEmptyCart is raised before any network call when the session cart
	// has no lines. Non-retryable; the caller must add items first.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrProcessing rejects a second submission while one is still pending
	// for the same session.
	ErrProcessing = errors.New("order submission already in progress")
	ErrNotFound   = errors.New("order not found")
)

// Order records one submission attempt and its outcome. The live payment
// state belongs to the payment backend; this row only keeps what the shop
// showed the customer at submission time.
type Order struct {
	OrderID       string  `json:"orderId"`
	ReferenceID   string  `json:"referenceId"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status"`
	Description   string  `json:"description"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	TableNumber   string  `json:"tableNumber,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}
