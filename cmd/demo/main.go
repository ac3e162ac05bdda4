package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/wichananm65/restaurant-shop-backend/internal/cart"
	"github.com/wichananm65/restaurant-shop-backend/internal/config"
	"github.com/wichananm65/restaurant-shop-backend/internal/menu"
	"github.com/wichananm65/restaurant-shop-backend/internal/order"
	"github.com/wichananm65/restaurant-shop-backend/internal/payment"
)

// main wires the in-memory variant: no database, orders kept in process
// memory. The payment backend is still required for actual submissions.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, X-Session-ID",
	}))

	menuService := menu.NewService(menu.NewInMemoryRepository(nil))
	menuService.Load()

	store := cart.NewStore()
	cartService := cart.NewService(store, menuService)

	gateway := payment.NewClient(cfg.PaymentBaseURL, cfg.PaymentTimeout)
	builder := order.NewBuilder(cfg.CallbackURL)
	orderService := order.NewService(store, builder, gateway, order.NewInMemoryRepository(), cfg.ClearCartOnOrder)

	menu.NewHandler(menuService).RegisterPublicRoutes(app)
	cart.NewHandler(cartService).RegisterPublicRoutes(app)
	order.NewHandler(orderService).RegisterPublicRoutes(app)

	log.Printf("starting demo server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
