package config

import (
	"os"
	"time"
)

type Config struct {
	Addr           string
	DatabaseURL    string
	JWTSecret      string
	PaymentBaseURL string
	// CallbackURL is where the payment backend redirects after checkout
	CallbackURL    string
	PaymentTimeout time.Duration
	// ClearCartOnOrder empties the cart after a successful submission.
	// Off by default: the shop keeps the cart visible until navigation.
	ClearCartOnOrder bool
}

func Load() Config {
	cfg := Config{
		Addr:           getEnv("SHOP_ADDR", ":8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		PaymentBaseURL: getEnv("PAYMENT_BASE_URL", "http://localhost:8081"),
		CallbackURL:    getEnv("CALLBACK_URL", "http://localhost:4200/shop"),
		PaymentTimeout: 15 * time.Second,
	}

	if v := os.Getenv("PAYMENT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.PaymentTimeout = d
		}
	}
	cfg.ClearCartOnOrder = os.Getenv("CLEAR_CART_ON_ORDER") == "1"

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
