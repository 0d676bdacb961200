package models

import "time"

const (
	SessionHemodialysis = "hemodialysis"
	SessionPeritoneal   = "peritoneal"
)

const (
	VitalBloodPressure = "blood_pressure"
	VitalHeartRate     = "heart_rate"
	VitalTemperature   = "temperature"
	VitalGlucose       = "glucose"
)

type DialysisSession struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"-"`
	RecordedAt      time.Time `gorm:"not null;index" json:"recordedAt"`
	Type            string    `gorm:"not null;default:hemodialysis" json:"type"`
	DurationMinutes int       `gorm:"not null;default:0" json:"durationMinutes"`
	FluidRemovedML  int       `gorm:"not null;default:0" json:"fluidRemovedMl"`
	PreWeightKg     float64   `gorm:"not null;default:0" json:"preWeightKg"`
	PostWeightKg    float64   `gorm:"not null;default:0" json:"postWeightKg"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"-"`
}

type WeightEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"-"`
	RecordedAt time.Time `gorm:"not null;index" json:"recordedAt"`
	WeightKg   float64   `gorm:"not null" json:"weightKg"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"-"`
}

type FluidEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"-"`
	RecordedAt time.Time `gorm:"not null;index" json:"recordedAt"`
	VolumeML   int       `gorm:"not null" json:"volumeMl"`
	FluidType  string    `gorm:"not null;default:water" json:"fluidType"`
	CreatedAt  time.Time `json:"-"`
}

type VitalEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"-"`
	RecordedAt time.Time `gorm:"not null;index" json:"recordedAt"`
	Type       string    `gorm:"not null" json:"type"`
	Reading    string    `gorm:"not null" json:"reading"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"-"`
}

type MedicationEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"-"`
	RecordedAt time.Time `gorm:"not null;index" json:"recordedAt"`
	Name       string    `gorm:"not null" json:"name"`
	Dose       string    `gorm:"not null;default:''" json:"dose"`
	Taken      bool      `gorm:"not null;default:false" json:"taken"`
	CreatedAt  time.Time `json:"-"`
}

type MoodEntry struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"-"`
	RecordedAt  time.Time `gorm:"not null;index" json:"recordedAt"`
	Mood        string    `gorm:"not null" json:"mood"`
	EnergyLevel int       `gorm:"not null;default:0" json:"energyLevel"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"-"`
}

func (entry DialysisSession) Timestamp() time.Time { return entry.RecordedAt }
func (entry WeightEntry) Timestamp() time.Time     { return entry.RecordedAt }
func (entry FluidEntry) Timestamp() time.Time      { return entry.RecordedAt }
func (entry VitalEntry) Timestamp() time.Time      { return entry.RecordedAt }
func (entry MedicationEntry) Timestamp() time.Time { return entry.RecordedAt }
func (entry MoodEntry) Timestamp() time.Time       { return entry.RecordedAt }
