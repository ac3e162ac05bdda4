package order

import (
	"regexp"
	"strings"
	"testing"

	"github.com/wichananm65/restaurant-shop-backend/internal/cart"
	"github.com/wichananm65/restaurant-shop-backend/internal/customer"
	"github.com/wichananm65/restaurant-shop-backend/internal/menu"
)

var orderIDPattern = regexp.MustCompile(`^ORD-\d{13,}-[0-9A-Z]{5}$`)

func TestGenerateOrderID(t *testing.T) {
	b := NewBuilder("http://localhost/shop")

	id := b.GenerateOrderID()
	if !orderIDPattern.MatchString(id) {
		t.Fatalf("order id %q does not match ORD-<ms>-<TOKEN>", id)
	}

	// two rapid calls must yield distinct ids
	if b.GenerateOrderID() == b.GenerateOrderID() {
		t.Fatalf("expected distinct order ids in rapid succession")
	}
}

func TestBuildRequest_EmptyCart(t *testing.T) {
	b := NewBuilder("http://localhost/shop")

	_, err := b.BuildRequest(cart.New(), customer.Info{})
	if err != ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestBuildRequest_Fields(t *testing.T) {
	b := NewBuilder("http://localhost/shop")

	c := cart.New()
	c.AddItem(menu.Item{ID: 1, Name: "Fried Rice", Price: 80}, 2)
	c.AddItem(menu.Item{ID: 7, Name: "Thai Tea", Price: 35}, 1)
	info := customer.Info{Name: "Somchai", Phone: "0812345678"}

	req, err := b.BuildRequest(c, info)
	if err != nil {
		t.Fatalf("BuildRequest returned error: %v", err)
	}

	if req.MerchantID != 1 || req.Currency != "THB" || req.PaymentMethod != "CREDIT_CARD" {
		t.Fatalf("unexpected constants in request: %+v", req)
	}
	if req.Amount != 195 {
		t.Fatalf("amount = %v, want 195", req.Amount)
	}
	if req.Description != "Fried Rice x2, Thai Tea x1" {
		t.Fatalf("unexpected description %q", req.Description)
	}
	if req.CustomerName != "Somchai" || req.CustomerEmail != "0812345678@phone.local" {
		t.Fatalf("unexpected customer fields: %+v", req)
	}
	if req.CallbackURL != "http://localhost/shop" {
		t.Fatalf("unexpected callback %q", req.CallbackURL)
	}
	if !orderIDPattern.MatchString(req.OrderID) {
		t.Fatalf("unexpected order id %q", req.OrderID)
	}
}

func TestBuildRequest_TruncatesDescription(t *testing.T) {
	b := NewBuilder("")

	c := cart.New()
	longName := strings.Repeat("x", 300)
	c.AddItem(menu.Item{ID: 1, Name: longName, Price: 10}, 1)

	req, err := b.BuildRequest(c, customer.Info{})
	if err != nil {
		t.Fatalf("BuildRequest returned error: %v", err)
	}
	if got := len([]rune(req.Description)); got != 200 {
		t.Fatalf("description length = %d, want 200", got)
	}
}

func TestTruncate_RuneSafe(t *testing.T) {
	s := strings.Repeat("ข", 250)
	out := truncate(s, 200)
	if got := len([]rune(out)); got != 200 {
		t.Fatalf("expected 200 runes, got %d", got)
	}
	for _, r := range out {
		if r != 'ข' {
			t.Fatalf("truncate split a rune: %q", r)
		}
	}
}
