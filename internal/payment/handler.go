package payment

import (
	"github.com/gofiber/fiber/v2"
)

// Handler exposes read-only passthrough routes for the admin dashboard.
// They are registered behind the JWT middleware; the shop flow never calls
// them.
type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/payments", h.list)
	app.Get("/api/v1/payments/:referenceId", h.getByReference)
}

func (h *Handler) list(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 20)
	status := c.Query("status")

	out, err := h.client.ListPayments(c.Context(), page, size, status)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(out)
}

func (h *Handler) getByReference(c *fiber.Ctx) error {
	out, err := h.client.GetPayment(c.Context(), c.Params("referenceId"))
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(out)
}
