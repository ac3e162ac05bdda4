package order

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/wichananm65/restaurant-shop-backend/internal/cart"
	"github.com/wichananm65/restaurant-shop-backend/internal/customer"
	"github.com/wichananm65/restaurant-shop-backend/internal/payment"
)

const (
	demoMerchantID       = 1
	defaultCurrency      = "THB"
	defaultPaymentMethod = "CREDIT_CARD"
	// the payment backend caps description at 200 characters
	maxDescriptionLen = 200

	orderTokenAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	orderTokenLen      = 5
)

// Builder assembles payment requests from a cart snapshot and customer info.
// It holds the pieces that come from configuration rather than from the
// session.
type Builder struct {
	callbackURL string
}

func NewBuilder(callbackURL string) *Builder {
	return &Builder{callbackURL: callbackURL}
}

// GenerateOrderID returns "ORD-<unix-ms>-<5-char token>". The random token
// makes collisions within one millisecond practically impossible; no retry is
// attempted.
func (b *Builder) GenerateOrderID() string {
	var sb strings.Builder
	sb.WriteString("ORD-")
	sb.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 10))
	sb.WriteByte('-')
	for i := 0; i < orderTokenLen; i++ {
		sb.WriteByte(orderTokenAlphabet[rand.Intn(len(orderTokenAlphabet))])
	}
	return sb.String()
}

// BuildRequest snapshots the cart into a submittable payment request. The
// only failure is an empty cart; no side effects occur on that path.
func (b *Builder) BuildRequest(c *cart.Cart, info customer.Info) (payment.CreateRequest, error) {
	if c.IsEmpty() {
		return payment.CreateRequest{}, ErrEmptyCart
	}

	return payment.CreateRequest{
		MerchantID:    demoMerchantID,
		OrderID:       b.GenerateOrderID(),
		Amount:        c.Total(),
		Currency:      defaultCurrency,
		PaymentMethod: defaultPaymentMethod,
		Description:   truncate(c.OrderDescription(), maxDescriptionLen),
		CustomerName:  info.DisplayName(),
		CustomerEmail: info.DerivedEmail(),
		CallbackURL:   b.callbackURL,
	}, nil
}

// truncate cuts s to at most n characters without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
