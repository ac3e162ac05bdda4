package main

import (
	"database/sql"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/wichananm65/restaurant-shop-backend/internal/cart"
	"github.com/wichananm65/restaurant-shop-backend/internal/config"
	"github.com/wichananm65/restaurant-shop-backend/internal/menu"
	"github.com/wichananm65/restaurant-shop-backend/internal/order"
	"github.com/wichananm65/restaurant-shop-backend/internal/payment"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()
	ensureSchema(db)

	// menu catalog: reload the static data on every start so the table always
	// matches the built-in seed
	menuService := menu.NewService(menu.NewPostgresRepository(db))
	menuService.Load()
	menuHandler := menu.NewHandler(menuService)

	// session store owns every cart and customer info; nothing survives a
	// restart
	store := cart.NewStore()
	cartService := cart.NewService(store, menuService)
	cartHandler := cart.NewHandler(cartService)

	gateway := payment.NewClient(cfg.PaymentBaseURL, cfg.PaymentTimeout)
	builder := order.NewBuilder(cfg.CallbackURL)
	orderService := order.NewService(store, builder, gateway, order.NewPostgresRepository(db), cfg.ClearCartOnOrder)
	orderHandler := order.NewHandler(orderService)

	paymentHandler := payment.NewHandler(gateway)

	menuHandler.RegisterPublicRoutes(app)
	cartHandler.RegisterPublicRoutes(app)
	orderHandler.RegisterPublicRoutes(app)

	// admin passthrough routes require a token; everything under /shop and
	// /menu stays public like the original demo
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
		Filter: func(c *fiber.Ctx) bool {
			return !strings.HasPrefix(c.Path(), "/api/v1/payments")
		},
	}))
	paymentHandler.RegisterProtectedRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, X-Session-ID",
	}))
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

func ensureSchema(db *sql.DB) {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS menu (
        menu_id INT PRIMARY KEY,
        name TEXT NOT NULL,
        price NUMERIC NOT NULL DEFAULT 0,
        image TEXT,
        category TEXT,
        description TEXT
    )`); err != nil {
		panic(err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS shop_orders (
        "orderId" TEXT PRIMARY KEY,
        "referenceId" TEXT NOT NULL,
        amount NUMERIC NOT NULL DEFAULT 0,
        currency TEXT,
        status TEXT,
        description TEXT,
        "customerName" TEXT,
        "customerEmail" TEXT,
        "tableNumber" TEXT,
        "createdAt" TEXT
    )`); err != nil {
		panic(err)
	}
}
