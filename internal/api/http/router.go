package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/user-account-service/internal/api/http/handlers"
	"github.com/spec-kit/user-account-service/internal/auth"
)

// APIPrefix is the versioned base path for every route.
const APIPrefix = "/api/v1.0"

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Admin          *handlers.AdminHandler
	Profile        *handlers.ProfileHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group(APIPrefix)
	api.Post("/register", cfg.Auth.Register)
	api.Post("/login", cfg.Auth.Login)

	protected := api.Group("", cfg.AuthMiddleware.Handle)
	protected.Get("/admin/users", cfg.Admin.List)
	protected.Get("/admin/user/:id", cfg.Admin.GetByID)
	protected.Post("/admin/user", cfg.Admin.Create)
	protected.Put("/admin/user/:id", cfg.Admin.Update)
	protected.Delete("/admin/user/:id", cfg.Admin.Delete)

	protected.Get("/profile/:id", cfg.Profile.GetByID)
	protected.Put("/profile/:id", cfg.Profile.Update)
}
