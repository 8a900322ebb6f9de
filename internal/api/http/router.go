package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront/internal/api/http/handlers"
	"github.com/spec-kit/storefront/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Products       *handlers.ProductsHandler
	Account        *handlers.AccountHandler
	Shopping       *handlers.ShoppingHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Routes touching user data are guarded by
// the auth middleware.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	if cfg.Health != nil {
		app.Get("/health/live", cfg.Health.Live)
		app.Get("/health/ready", cfg.Health.Ready)
		app.Get("/health/metrics", cfg.Health.Metrics)
	}

	app.Post("/create_user", cfg.Auth.CreateUser)
	app.Post("/login", cfg.Auth.Login)
	app.Post("/logout", cfg.Auth.Logout)

	if cfg.Products != nil {
		app.Get("/get_products", cfg.Products.List)
	}

	guard := cfg.AuthMiddleware.Handle
	app.Get("/me", guard, cfg.Auth.Me)

	if cfg.Account != nil {
		app.Get("/get_addresses", guard, cfg.Account.ListAddresses)
		app.Post("/create_address", guard, cfg.Account.CreateAddress)
		app.Get("/get_personal_info", guard, cfg.Account.GetPersonalInfo)
		app.Post("/add_personal_info", guard, cfg.Account.SavePersonalInfo)
	}

	if cfg.Shopping != nil {
		app.Get("/get_cart", guard, cfg.Shopping.Cart)
		app.Post("/add_to_cart", guard, cfg.Shopping.AddToCart)
		app.Post("/create_order", guard, cfg.Shopping.CreateOrder)
		app.Get("/get_orders", guard, cfg.Shopping.Orders)
		app.Get("/orders/:order_id", guard, cfg.Shopping.OrderItems)
	}
}
