package models

import "time"

const (
	RolePatient   = "patient"
	RoleClinician = "clinician"
)

const (
	ModalityHemodialysis = "hemodialysis"
	ModalityPeritoneal   = "peritoneal"
)

type User struct {
	ID                uint      `gorm:"primaryKey"`
	Email             string    `gorm:"uniqueIndex;not null"`
	PasswordHash      string    `gorm:"not null"`
	Role              string    `gorm:"not null;default:patient"`
	DisplayName       string    `gorm:"not null;default:''"`
	Modality          string    `gorm:"not null;default:hemodialysis"`
	DryWeightGoalKg   float64   `gorm:"not null;default:0"`
	DailyFluidLimitML int       `gorm:"not null;default:0"`
	CreatedAt         time.Time `gorm:"not null"`
}

// ProfileSnapshot is the read-only profile view embedded into report payloads.
type ProfileSnapshot struct {
	DisplayName       string  `json:"displayName"`
	Modality          string  `json:"modality"`
	DryWeightGoalKg   float64 `json:"dryWeightGoalKg"`
	DailyFluidLimitML int     `json:"dailyFluidLimitMl"`
}

func (user *User) ProfileSnapshot() ProfileSnapshot {
	return ProfileSnapshot{
		DisplayName:       user.DisplayName,
		Modality:          user.Modality,
		DryWeightGoalKg:   user.DryWeightGoalKg,
		DailyFluidLimitML: user.DailyFluidLimitML,
	}
}
