package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"renalog/internal/models"
)

type profileInput struct {
	DisplayName       string   `json:"displayName"`
	Modality          string   `json:"modality"`
	DryWeightGoalKg   *float64 `json:"dryWeightGoalKg"`
	DailyFluidLimitML *int     `json:"dailyFluidLimitMl"`
}

type profileResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	models.ProfileSnapshot
}

func (handler *Handler) Profile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return dataEnvelope(c, profileResponse{
		Email:           user.Email,
		Role:            user.Role,
		ProfileSnapshot: user.ProfileSnapshot(),
	}, nil)
}

// UpdateProfile applies partial updates; absent fields keep their value.
func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := profileInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if name := strings.TrimSpace(input.DisplayName); name != "" {
		user.DisplayName = name
	}
	if input.Modality != "" {
		switch input.Modality {
		case models.ModalityHemodialysis, models.ModalityPeritoneal:
			user.Modality = input.Modality
		default:
			return apiError(c, fiber.StatusBadRequest, "invalid modality")
		}
	}
	if input.DryWeightGoalKg != nil {
		if *input.DryWeightGoalKg < 0 {
			return apiError(c, fiber.StatusBadRequest, "invalid dry weight goal")
		}
		user.DryWeightGoalKg = *input.DryWeightGoalKg
	}
	if input.DailyFluidLimitML != nil {
		if *input.DailyFluidLimitML < 0 {
			return apiError(c, fiber.StatusBadRequest, "invalid fluid limit")
		}
		user.DailyFluidLimitML = *input.DailyFluidLimitML
	}

	if err := handler.repositories.Users.Save(user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save profile")
	}
	return dataEnvelope(c, profileResponse{
		Email:           user.Email,
		Role:            user.Role,
		ProfileSnapshot: user.ProfileSnapshot(),
	}, nil)
}
