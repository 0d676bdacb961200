package api

import (
	"github.com/gofiber/fiber/v2"

	"renalog/internal/models"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}

// ClinicianOnly guards staff endpoints such as the maintenance overrides.
func (handler *Handler) ClinicianOnly(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok || user.Role != models.RoleClinician {
		return apiError(c, fiber.StatusForbidden, "forbidden")
	}
	return c.Next()
}
