package order

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/restaurant-shop-backend/internal/cart"
)

// Handler exposes order placement for the shop session.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/shop/orders", h.placeOrder)
	app.Get("/api/v1/shop/orders", h.listOrders)
	app.Get("/api/v1/shop/orders/:orderId", h.getOrder)
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListSessionOrders(cart.SessionID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}

func (h *Handler) placeOrder(c *fiber.Ctx) error {
	ord, err := h.service.PlaceOrder(c.Context(), cart.SessionID(c))
	if err != nil {
		switch err {
		case ErrEmptyCart:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "cart is empty"})
		case ErrProcessing:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "order submission already in progress"})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(ord)
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	ord, err := h.service.GetByOrderID(c.Params("orderId"))
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(ord)
}
