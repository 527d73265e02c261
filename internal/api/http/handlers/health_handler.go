package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/persistence"
)

// HealthHandler responds to liveness probes.
type HealthHandler struct {
	serviceName string
	version     string
	mongo       *persistence.Mongo
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, mongo *persistence.Mongo) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, mongo: mongo}
}

// Health reports liveness and backing-store connectivity. The endpoint
// returns 200 whenever the process is up; store trouble only shows in the
// body.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	database := "ok"
	if err := h.mongo.Ping(ctx); err != nil {
		database = err.Error()
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"service":  h.serviceName,
			"version":  h.version,
			"database": database,
		},
	})
}
