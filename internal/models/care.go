package models

import "time"

const (
	AlertInfo     = "info"
	AlertWarning  = "warning"
	AlertCritical = "critical"
)

type Alert struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"-"`
	Severity     string    `gorm:"not null;default:info" json:"severity"`
	Message      string    `gorm:"not null" json:"message"`
	Acknowledged bool      `gorm:"not null;default:false" json:"acknowledged"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Reminder struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"-"`
	Title     string    `gorm:"not null" json:"title"`
	DueAt     time.Time `gorm:"not null;index" json:"dueAt"`
	Done      bool      `gorm:"not null;default:false" json:"done"`
	CreatedAt time.Time `json:"-"`
}

type Appointment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"-"`
	Title       string    `gorm:"not null" json:"title"`
	Location    string    `gorm:"not null;default:''" json:"location"`
	ScheduledAt time.Time `gorm:"not null;index" json:"scheduledAt"`
	CreatedAt   time.Time `json:"-"`
}

type MealEntry struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"-"`
	RecordedAt   time.Time `gorm:"not null;index" json:"recordedAt"`
	Name         string    `gorm:"not null" json:"name"`
	Calories     int       `gorm:"not null;default:0" json:"calories"`
	SodiumMg     int       `gorm:"not null;default:0" json:"sodiumMg"`
	PotassiumMg  int       `gorm:"not null;default:0" json:"potassiumMg"`
	PhosphorusMg int       `gorm:"not null;default:0" json:"phosphorusMg"`
	FluidML      int       `gorm:"not null;default:0" json:"fluidMl"`
	CreatedAt    time.Time `json:"-"`
}

func (entry MealEntry) Timestamp() time.Time { return entry.RecordedAt }
