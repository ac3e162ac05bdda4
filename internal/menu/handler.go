package menu

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the menu catalog over HTTP. The menu is public: the shop
// front-end reads it before any session exists.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/menu", h.list)
	app.Get("/api/v1/menu/categories", h.categories)
	app.Get("/api/v1/menu/:id", h.getByID)
}

func (h *Handler) list(c *fiber.Ctx) error {
	if q := c.Query("q"); q != "" {
		return c.JSON(h.service.Search(q))
	}
	if cat := c.Query("category"); cat != "" {
		return c.JSON(h.service.ByCategory(cat))
	}
	return c.JSON(h.service.List())
}

func (h *Handler) categories(c *fiber.Ctx) error {
	return c.JSON(h.service.Categories())
}

func (h *Handler) getByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	item, err := h.service.GetByID(id)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "menu item not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(item)
}
