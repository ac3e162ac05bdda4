package cart

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/wichananm65/restaurant-shop-backend/internal/menu"
)

// SessionID returns the caller's session id from the X-Session-ID header,
// minting a fresh one when the header is absent. Either way the id is echoed
// back on the response so the client can keep it.
func SessionID(c *fiber.Ctx) string {
	id := c.Get("X-Session-ID")
	if id == "" {
		id = uuid.NewString()
	}
	c.Set("X-Session-ID", id)
	return id
}

// Handler delegates cart operations to the cart service. This keeps
// cart-specific HTTP routing isolated.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/shop/cart", h.getCart)
	app.Post("/api/v1/shop/cart/items", h.addItem)
	app.Patch("/api/v1/shop/cart/items/:id", h.updateQuantity)
	app.Post("/api/v1/shop/cart/items/:id/increment", h.incrementItem)
	app.Post("/api/v1/shop/cart/items/:id/decrement", h.decrementItem)
	app.Delete("/api/v1/shop/cart/items/:id", h.removeItem)
	app.Delete("/api/v1/shop/cart", h.clearCart)
	app.Get("/api/v1/shop/customer", h.getCustomer)
	app.Put("/api/v1/shop/customer", h.setCustomer)
}

type addItemRequest struct {
	ItemID   int `json:"itemId"`
	Quantity int `json:"quantity,omitempty"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	return c.JSON(h.service.Get(SessionID(c)))
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ItemID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid itemId"})
	}

	view, err := h.service.AddItem(SessionID(c), payload.ItemID, payload.Quantity)
	if err != nil {
		switch err {
		case menu.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "menu item not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(view)
}

func (h *Handler) updateQuantity(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	payload := new(quantityRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	view, ok := h.service.UpdateQuantity(SessionID(c), id, payload.Quantity)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "item not in cart"})
	}
	return c.JSON(view)
}

func (h *Handler) incrementItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	return c.JSON(h.service.IncrementItem(SessionID(c), id))
}

func (h *Handler) decrementItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	return c.JSON(h.service.DecrementItem(SessionID(c), id))
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	view, removed := h.service.RemoveItem(SessionID(c), id)
	if !removed {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "item not in cart"})
	}
	return c.JSON(view)
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	h.service.Clear(SessionID(c))
	return c.SendStatus(fiber.StatusNoContent)
}

type customerRequest struct {
	Name        *string `json:"name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	TableNumber *string `json:"tableNumber,omitempty"`
}

func (h *Handler) getCustomer(c *fiber.Ctx) error {
	info := h.service.Get(SessionID(c)).Customer
	return c.JSON(fiber.Map{
		"name":         info.Name,
		"phone":        info.Phone,
		"tableNumber":  info.TableNumber,
		"displayName":  info.DisplayName(),
		"derivedEmail": info.DerivedEmail(),
	})
}

func (h *Handler) setCustomer(c *fiber.Ctx) error {
	payload := new(customerRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	info := h.service.SetCustomer(SessionID(c), payload.Name, payload.Phone, payload.TableNumber)
	return c.JSON(info)
}
