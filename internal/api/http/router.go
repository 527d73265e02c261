package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/api/http/handlers"
	"github.com/spec-kit/account-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Children       *handlers.ChildrenHandler
	AuthMiddleware *auth.AuthMiddleware
	UploadsDir     string
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health", cfg.Health.Health)

	if cfg.UploadsDir != "" {
		app.Static("/uploads", cfg.UploadsDir)
	}

	users := app.Group("/api/users")
	users.Post("/register", cfg.Users.Register)
	users.Post("/login", cfg.Users.Login)

	users.Get("/me", cfg.AuthMiddleware.Handle, cfg.Users.GetMe)
	users.Patch("/me", cfg.AuthMiddleware.Handle, cfg.Users.UpdateMe)

	children := app.Group("/api/children", cfg.AuthMiddleware.Handle)
	children.Post("/", cfg.Children.Create)
	children.Get("/", cfg.Children.List)
	children.Get("/:id", cfg.Children.Get)
	children.Patch("/:id", cfg.Children.Update)
	children.Delete("/:id", cfg.Children.Delete)
}
