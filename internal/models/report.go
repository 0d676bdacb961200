package models

import "time"

const (
	CategorySessions    = "sessions"
	CategoryWeights     = "weights"
	CategoryFluids      = "fluids"
	CategoryVitals      = "vitals"
	CategoryMedications = "medications"
	CategoryMoods       = "moods"
)

// ReportCategories lists every exportable record category in render order.
func ReportCategories() []string {
	return []string{
		CategorySessions,
		CategoryWeights,
		CategoryFluids,
		CategoryVitals,
		CategoryMedications,
		CategoryMoods,
	}
}

func IsReportCategory(name string) bool {
	for _, category := range ReportCategories() {
		if category == name {
			return true
		}
	}
	return false
}

type ReportConfig struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"-"`
	Name       string    `gorm:"not null" json:"name"`
	Categories []string  `gorm:"serializer:json" json:"categories"`
	RangeToken string    `gorm:"not null" json:"rangeToken"`
	CreatedAt  time.Time `json:"createdAt"`
}
