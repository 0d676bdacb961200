package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Dashboard returns the aggregated overview. Sections that could not be
// loaded in time come back zero-valued and named in meta.degraded.
func (handler *Handler) Dashboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	overview := handler.dashboardService.Overview(c.Context(), user, time.Now().In(handler.location))
	return dataEnvelope(c, overview, fiber.Map{"degraded": overview.Degraded})
}

// Healthz is the liveness probe. It reports global maintenance so load
// balancers and the front-end banner share one source of truth.
func (handler *Handler) Healthz(c *fiber.Ctx) error {
	enabled, message := handler.gate.GlobalMaintenance()
	status := fiber.Map{"status": "ok", "maintenance": enabled}
	if enabled && message != "" {
		status["message"] = message
	}
	return c.JSON(status)
}
