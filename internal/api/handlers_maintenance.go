package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"renalog/internal/config"
	"renalog/internal/i18n"
	"renalog/internal/logger"
	"renalog/internal/services"
)

type globalMaintenanceInput struct {
	Enabled bool   `json:"enabled"`
	Message string `json:"message"`
}

type pageConfigInput struct {
	Enabled      bool   `json:"enabled"`
	Mode         string `json:"mode"`
	Title        string `json:"title"`
	Message      string `json:"message"`
	Progress     int    `json:"progress"`
	ExpectedDate string `json:"expectedDate"`
}

// PageStatus is public: the front-end shell asks it before rendering any
// section, including the login page.
func (handler *Handler) PageStatus(c *fiber.Ctx) error {
	pageKey := strings.TrimSpace(c.Params("key"))
	if pageKey == "" {
		return apiError(c, fiber.StatusBadRequest, "page key is required")
	}

	status := handler.gate.Status(pageKey)
	if status.Enabled {
		messages := handler.requestMessages(c)
		if status.Message == "" {
			key := "comingsoon.message"
			if status.Mode == services.MaintenanceModeMaintenance {
				key = "maintenance.message"
			}
			status.Message = i18n.Translate(messages, key)
		}
		if status.Title == "" {
			key := "comingsoon.title"
			if status.Mode == services.MaintenanceModeMaintenance {
				key = "maintenance.title"
			}
			status.Title = i18n.Translate(messages, key)
		}
	}
	return dataEnvelope(c, status, fiber.Map{"page": strings.ToLower(pageKey)})
}

// MaintenanceState returns the global override plus per-request page lookups
// for the admin screen.
func (handler *Handler) MaintenanceState(c *fiber.Ctx) error {
	enabled, message := handler.gate.GlobalMaintenance()
	return dataEnvelope(c, fiber.Map{"enabled": enabled, "message": message}, nil)
}

// SetGlobalMaintenance flips the process-wide override. Clinician only.
func (handler *Handler) SetGlobalMaintenance(c *fiber.Ctx) error {
	input := globalMaintenanceInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.gate.SetGlobalMaintenance(input.Enabled, input.Message)
	logger.Info("global maintenance updated", "enabled", input.Enabled)

	enabled, message := handler.gate.GlobalMaintenance()
	return dataEnvelope(c, fiber.Map{"enabled": enabled, "message": message}, nil)
}

// UpdatePage replaces one page's gate configuration. Clinician only.
func (handler *Handler) UpdatePage(c *fiber.Ctx) error {
	pageKey := strings.TrimSpace(c.Params("key"))
	if pageKey == "" {
		return apiError(c, fiber.StatusBadRequest, "page key is required")
	}

	input := pageConfigInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	switch input.Mode {
	case "", services.MaintenanceModeComingSoon, services.MaintenanceModeMaintenance:
	default:
		return apiError(c, fiber.StatusBadRequest, "invalid mode")
	}
	if input.Progress < 0 || input.Progress > 100 {
		return apiError(c, fiber.StatusBadRequest, "invalid progress")
	}

	handler.gate.UpdatePage(pageKey, config.PageConfig{
		Enabled:      input.Enabled,
		Mode:         input.Mode,
		Title:        strings.TrimSpace(input.Title),
		Message:      strings.TrimSpace(input.Message),
		Progress:     input.Progress,
		ExpectedDate: strings.TrimSpace(input.ExpectedDate),
	})
	logger.Info("maintenance page updated", "page", pageKey, "enabled", input.Enabled)

	return dataEnvelope(c, handler.gate.Status(pageKey), fiber.Map{"page": strings.ToLower(pageKey)})
}
