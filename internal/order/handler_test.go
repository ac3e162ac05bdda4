package order

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/restaurant-shop-backend/internal/cart"
	"github.com/wichananm65/restaurant-shop-backend/internal/menu"
)

func setupApp(gw *stubGateway, seed bool) *fiber.App {
	store := cart.NewStore()
	if seed {
		store.Update("s1", func(sess *cart.Session) {
			sess.Cart.AddItem(menu.Item{ID: 1, Name: "Fried Rice", Price: 80}, 2)
		})
	}
	svc := NewService(store, NewBuilder("http://localhost/shop"), gw, NewInMemoryRepository(), false)

	app := fiber.New()
	NewHandler(svc).RegisterPublicRoutes(app)
	return app
}

func TestPlaceOrderRoute_Success(t *testing.T) {
	app := setupApp(&stubGateway{}, true)

	req := httptest.NewRequest("POST", "/api/v1/shop/orders", nil)
	req.Header.Set("X-Session-ID", "s1")
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	var ord Order
	json.NewDecoder(res.Body).Decode(&ord)
	if ord.ReferenceID != "PAY-1" {
		t.Errorf("expected referenceId PAY-1, got %q", ord.ReferenceID)
	}
	if ord.Amount != 160 {
		t.Errorf("expected amount 160, got %v", ord.Amount)
	}
}

func TestPlaceOrderRoute_EmptyCart(t *testing.T) {
	gw := &stubGateway{}
	app := setupApp(gw, false)

	req := httptest.NewRequest("POST", "/api/v1/shop/orders", nil)
	req.Header.Set("X-Session-ID", "s1")
	res, _ := app.Test(req, -1)
	if res.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for empty cart, got %d", res.StatusCode)
	}
	if gw.calls != 0 {
		t.Fatalf("empty cart must not reach the gateway")
	}
}

func TestGetOrderRoute(t *testing.T) {
	app := setupApp(&stubGateway{}, true)

	req := httptest.NewRequest("POST", "/api/v1/shop/orders", nil)
	req.Header.Set("X-Session-ID", "s1")
	res, _ := app.Test(req, -1)

	var ord Order
	json.NewDecoder(res.Body).Decode(&ord)

	res2, _ := app.Test(httptest.NewRequest("GET", "/api/v1/shop/orders/"+ord.OrderID, nil), -1)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 looking up %q, got %d", ord.OrderID, res2.StatusCode)
	}

	res3, _ := app.Test(httptest.NewRequest("GET", "/api/v1/shop/orders/ORD-unknown", nil), -1)
	if res3.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown order, got %d", res3.StatusCode)
	}
}

func TestListOrdersRoute(t *testing.T) {
	app := setupApp(&stubGateway{}, true)

	req := httptest.NewRequest("POST", "/api/v1/shop/orders", nil)
	req.Header.Set("X-Session-ID", "s1")
	if res, _ := app.Test(req, -1); res.StatusCode != fiber.StatusCreated {
		t.Fatalf("placing the order failed with %d", res.StatusCode)
	}

	listReq := httptest.NewRequest("GET", "/api/v1/shop/orders", nil)
	listReq.Header.Set("X-Session-ID", "s1")
	res, err := app.Test(listReq, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var orders []Order
	json.NewDecoder(res.Body).Decode(&orders)
	if len(orders) != 1 || orders[0].ReferenceID != "PAY-1" {
		t.Fatalf("unexpected session orders %+v", orders)
	}

	// a different session sees an empty history
	otherReq := httptest.NewRequest("GET", "/api/v1/shop/orders", nil)
	otherReq.Header.Set("X-Session-ID", "s2")
	otherRes, _ := app.Test(otherReq, -1)
	var other []Order
	json.NewDecoder(otherRes.Body).Decode(&other)
	if len(other) != 0 {
		t.Fatalf("expected empty history for fresh session, got %+v", other)
	}
}
