package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fastfood-service/internal/api/http/handlers"
	"github.com/spec-kit/fastfood-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Menu           *handlers.MenuHandler
	Orders         *handlers.OrdersHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	v1 := app.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, cfg.Auth.Logout)

	menu := v1.Group("/menu", cfg.AuthMiddleware.Handle)
	menu.Get("", cfg.Menu.List)
	menu.Post("", auth.RequireAdmin(), cfg.Menu.Add)
	menu.Delete("/:item_id", auth.RequireAdmin(), cfg.Menu.Delete)

	orders := v1.Group("/orders", cfg.AuthMiddleware.Handle)
	orders.Post("", cfg.Orders.Place)
	orders.Get("", auth.RequireAdmin(), cfg.Orders.ListAll)
	orders.Get("/:order_id", auth.RequireAdmin(), cfg.Orders.Get)
	orders.Put("/:order_id", auth.RequireAdmin(), cfg.Orders.UpdateStatus)

	v1.Get("/users/orders", cfg.AuthMiddleware.Handle, cfg.Orders.History)
}
