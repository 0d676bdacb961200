package api

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"renalog/internal/db"
	"renalog/internal/logger"
	"renalog/internal/models"
	"renalog/internal/services"
)

type sessionInput struct {
	RecordedAt      time.Time `json:"recordedAt"`
	Type            string    `json:"type"`
	DurationMinutes int       `json:"durationMinutes"`
	FluidRemovedML  int       `json:"fluidRemovedMl"`
	PreWeightKg     float64   `json:"preWeightKg"`
	PostWeightKg    float64   `json:"postWeightKg"`
	Notes           string    `json:"notes"`
}

type weightInput struct {
	RecordedAt time.Time `json:"recordedAt"`
	WeightKg   float64   `json:"weightKg"`
	Notes      string    `json:"notes"`
}

type fluidInput struct {
	RecordedAt time.Time `json:"recordedAt"`
	VolumeML   int       `json:"volumeMl"`
	FluidType  string    `json:"fluidType"`
}

type vitalInput struct {
	RecordedAt time.Time `json:"recordedAt"`
	Type       string    `json:"type"`
	Reading    string    `json:"reading"`
	Notes      string    `json:"notes"`
}

type medicationInput struct {
	RecordedAt time.Time `json:"recordedAt"`
	Name       string    `json:"name"`
	Dose       string    `json:"dose"`
	Taken      bool      `json:"taken"`
}

type moodInput struct {
	RecordedAt  time.Time `json:"recordedAt"`
	Mood        string    `json:"mood"`
	EnergyLevel int       `json:"energyLevel"`
	Notes       string    `json:"notes"`
}

type mealInput struct {
	RecordedAt   time.Time `json:"recordedAt"`
	Name         string    `json:"name"`
	Calories     int       `json:"calories"`
	SodiumMg     int       `json:"sodiumMg"`
	PotassiumMg  int       `json:"potassiumMg"`
	PhosphorusMg int       `json:"phosphorusMg"`
	FluidML      int       `json:"fluidMl"`
}

// listRecords returns a user's records, optionally narrowed by a range token
// in the "range" query parameter.
func listRecords[T services.TimestampedRecord](handler *Handler, c *fiber.Ctx, repo *db.RecordRepository[T]) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	records, err := repo.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch records")
	}

	if token := strings.TrimSpace(c.Query("range")); token != "" {
		records, err = services.SelectSince(records, time.Now().In(handler.location), token)
		if errors.Is(err, services.ErrInvalidRangeToken) {
			return apiError(c, fiber.StatusBadRequest, "invalid range token")
		}
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to filter records")
		}
	}

	return dataEnvelope(c, records, fiber.Map{"count": len(records)})
}

func deleteRecord[T services.TimestampedRecord](c *fiber.Ctx, repo *db.RecordRepository[T]) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entryID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	deleted, err := repo.DeleteByIDForUser(user.ID, uint(entryID))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete record")
	}
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "record not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) recordTimestamp(value time.Time) time.Time {
	if value.IsZero() {
		return time.Now().In(handler.location)
	}
	return value.In(handler.location)
}

func (handler *Handler) ListSessions(c *fiber.Ctx) error {
	return listRecords(handler, c, handler.repositories.Sessions)
}

func (handler *Handler) CreateSession(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := sessionInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	switch input.Type {
	case models.SessionHemodialysis, models.SessionPeritoneal:
	default:
		return apiError(c, fiber.StatusBadRequest, "invalid session type")
	}
	if input.DurationMinutes < 0 || input.FluidRemovedML < 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid session values")
	}

	entry := models.DialysisSession{
		UserID:          user.ID,
		RecordedAt:      handler.recordTimestamp(input.RecordedAt),
		Type:            input.Type,
		DurationMinutes: input.DurationMinutes,
		FluidRemovedML:  input.FluidRemovedML,
		PreWeightKg:     input.PreWeightKg,
		PostWeightKg:    input.PostWeightKg,
		Notes:           input.Notes,
	}
	if err := handler.repositories.Sessions.Create(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save record")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) DeleteSession(c *fiber.Ctx) error {
	return deleteRecord(c, handler.repositories.Sessions)
}

func (handler *Handler) ListWeights(c *fiber.Ctx) error {
	return listRecords(handler, c, handler.repositories.Weights)
}

func (handler *Handler) CreateWeight(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := weightInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.WeightKg <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid weight")
	}

	entry := models.WeightEntry{
		UserID:     user.ID,
		RecordedAt: handler.recordTimestamp(input.RecordedAt),
		WeightKg:   input.WeightKg,
		Notes:      input.Notes,
	}
	if err := handler.repositories.Weights.Create(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save record")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) DeleteWeight(c *fiber.Ctx) error {
	return deleteRecord(c, handler.repositories.Weights)
}

func (handler *Handler) ListFluids(c *fiber.Ctx) error {
	return listRecords(handler, c, handler.repositories.Fluids)
}

func (handler *Handler) CreateFluid(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := fluidInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.VolumeML <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid volume")
	}
	if strings.TrimSpace(input.FluidType) == "" {
		input.FluidType = "water"
	}

	entry := models.FluidEntry{
		UserID:     user.ID,
		RecordedAt: handler.recordTimestamp(input.RecordedAt),
		VolumeML:   input.VolumeML,
		FluidType:  input.FluidType,
	}
	if err := handler.repositories.Fluids.Create(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save record")
	}

	handler.raiseFluidLimitAlert(user, entry)

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// raiseFluidLimitAlert files a warning the first time the daily intake crosses
// the profile limit. Alerting is best effort, a failure never blocks the save.
func (handler *Handler) raiseFluidLimitAlert(user *models.User, created models.FluidEntry) {
	if user.DailyFluidLimitML <= 0 {
		return
	}

	day := created.RecordedAt.In(handler.location)
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, handler.location)

	entries, err := handler.repositories.Fluids.ListSince(user.ID, dayStart)
	if err != nil {
		logger.Warn("fluid limit check failed", "user", user.ID, "error", err)
		return
	}

	total := 0
	for _, entry := range entries {
		total += entry.VolumeML
	}

	// Alert only on the entry that crosses the limit.
	if total <= user.DailyFluidLimitML || total-created.VolumeML > user.DailyFluidLimitML {
		return
	}

	alert := models.Alert{
		UserID:   user.ID,
		Severity: models.AlertWarning,
		Message:  fmt.Sprintf("Fluid intake reached %d mL, above the daily limit of %d mL", total, user.DailyFluidLimitML),
	}
	if err := handler.repositories.Alerts.Create(&alert); err != nil {
		logger.Warn("fluid limit alert not saved", "user", user.ID, "error", err)
	}
}

func (handler *Handler) DeleteFluid(c *fiber.Ctx) error {
	return deleteRecord(c, handler.repositories.Fluids)
}

func (handler *Handler) ListVitals(c *fiber.Ctx) error {
	return listRecords(handler, c, handler.repositories.Vitals)
}

func (handler *Handler) CreateVital(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := vitalInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	switch input.Type {
	case models.VitalBloodPressure, models.VitalHeartRate, models.VitalTemperature, models.VitalGlucose:
	default:
		return apiError(c, fiber.StatusBadRequest, "invalid vital type")
	}
	if strings.TrimSpace(input.Reading) == "" {
		return apiError(c, fiber.StatusBadRequest, "reading is required")
	}

	entry := models.VitalEntry{
		UserID:     user.ID,
		RecordedAt: handler.recordTimestamp(input.RecordedAt),
		Type:       input.Type,
		Reading:    strings.TrimSpace(input.Reading),
		Notes:      input.Notes,
	}
	if err := handler.repositories.Vitals.Create(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save record")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) DeleteVital(c *fiber.Ctx) error {
	return deleteRecord(c, handler.repositories.Vitals)
}

func (handler *Handler) ListMedications(c *fiber.Ctx) error {
	return listRecords(handler, c, handler.repositories.Medications)
}

func (handler *Handler) CreateMedication(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := medicationInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if strings.TrimSpace(input.Name) == "" {
		return apiError(c, fiber.StatusBadRequest, "name is required")
	}

	entry := models.MedicationEntry{
		UserID:     user.ID,
		RecordedAt: handler.recordTimestamp(input.RecordedAt),
		Name:       strings.TrimSpace(input.Name),
		Dose:       strings.TrimSpace(input.Dose),
		Taken:      input.Taken,
	}
	if err := handler.repositories.Medications.Create(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save record")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) DeleteMedication(c *fiber.Ctx) error {
	return deleteRecord(c, handler.repositories.Medications)
}

func (handler *Handler) ListMoods(c *fiber.Ctx) error {
	return listRecords(handler, c, handler.repositories.Moods)
}

func (handler *Handler) CreateMood(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := moodInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if strings.TrimSpace(input.Mood) == "" {
		return apiError(c, fiber.StatusBadRequest, "mood is required")
	}

	entry := models.MoodEntry{
		UserID:      user.ID,
		RecordedAt:  handler.recordTimestamp(input.RecordedAt),
		Mood:        strings.TrimSpace(input.Mood),
		EnergyLevel: input.EnergyLevel,
		Notes:       input.Notes,
	}
	if err := handler.repositories.Moods.Create(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save record")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) DeleteMood(c *fiber.Ctx) error {
	return deleteRecord(c, handler.repositories.Moods)
}

func (handler *Handler) ListMeals(c *fiber.Ctx) error {
	return listRecords(handler, c, handler.repositories.Meals)
}

func (handler *Handler) CreateMeal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := mealInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if strings.TrimSpace(input.Name) == "" {
		return apiError(c, fiber.StatusBadRequest, "name is required")
	}

	entry := models.MealEntry{
		UserID:       user.ID,
		RecordedAt:   handler.recordTimestamp(input.RecordedAt),
		Name:         strings.TrimSpace(input.Name),
		Calories:     input.Calories,
		SodiumMg:     input.SodiumMg,
		PotassiumMg:  input.PotassiumMg,
		PhosphorusMg: input.PhosphorusMg,
		FluidML:      input.FluidML,
	}
	if err := handler.repositories.Meals.Create(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save record")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) DeleteMeal(c *fiber.Ctx) error {
	return deleteRecord(c, handler.repositories.Meals)
}
