package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"renalog/internal/models"
)

const upcomingLimitMax = 50

type reminderInput struct {
	Title string    `json:"title"`
	DueAt time.Time `json:"dueAt"`
}

type appointmentInput struct {
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	ScheduledAt time.Time `json:"scheduledAt"`
}

func upcomingLimit(c *fiber.Ctx, fallback int) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		return fallback
	}
	if limit > upcomingLimitMax {
		return upcomingLimitMax
	}
	return limit
}

func (handler *Handler) ListAlerts(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	alerts, err := handler.repositories.Alerts.ListUnacknowledged(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch alerts")
	}
	return dataEnvelope(c, alerts, fiber.Map{"count": len(alerts)})
}

func (handler *Handler) AcknowledgeAlert(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	alertID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	acknowledged, err := handler.repositories.Alerts.Acknowledge(user.ID, uint(alertID))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to acknowledge alert")
	}
	if !acknowledged {
		return apiError(c, fiber.StatusNotFound, "alert not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ListReminders(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	reminders, err := handler.repositories.Reminders.ListUpcoming(user.ID, time.Now().In(handler.location), upcomingLimit(c, 0))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch reminders")
	}
	return dataEnvelope(c, reminders, fiber.Map{"count": len(reminders)})
}

func (handler *Handler) CreateReminder(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := reminderInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if strings.TrimSpace(input.Title) == "" {
		return apiError(c, fiber.StatusBadRequest, "title is required")
	}
	if input.DueAt.IsZero() {
		return apiError(c, fiber.StatusBadRequest, "due date is required")
	}

	reminder := models.Reminder{
		UserID: user.ID,
		Title:  strings.TrimSpace(input.Title),
		DueAt:  input.DueAt.In(handler.location),
	}
	if err := handler.repositories.Reminders.Create(&reminder); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save reminder")
	}
	return c.Status(fiber.StatusCreated).JSON(reminder)
}

func (handler *Handler) CompleteReminder(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	reminderID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	done, err := handler.repositories.Reminders.MarkDone(user.ID, uint(reminderID))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update reminder")
	}
	if !done {
		return apiError(c, fiber.StatusNotFound, "reminder not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ListAppointments(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	appointments, err := handler.repositories.Appointments.ListUpcoming(user.ID, time.Now().In(handler.location), upcomingLimit(c, 0))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch appointments")
	}
	return dataEnvelope(c, appointments, fiber.Map{"count": len(appointments)})
}

func (handler *Handler) CreateAppointment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := appointmentInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if strings.TrimSpace(input.Title) == "" {
		return apiError(c, fiber.StatusBadRequest, "title is required")
	}
	if input.ScheduledAt.IsZero() {
		return apiError(c, fiber.StatusBadRequest, "scheduled time is required")
	}

	appointment := models.Appointment{
		UserID:      user.ID,
		Title:       strings.TrimSpace(input.Title),
		Location:    strings.TrimSpace(input.Location),
		ScheduledAt: input.ScheduledAt.In(handler.location),
	}
	if err := handler.repositories.Appointments.Create(&appointment); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save appointment")
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}
