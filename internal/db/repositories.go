package db

import (
	"renalog/internal/models"

	"gorm.io/gorm"
)

type Repositories struct {
	Users        *UserRepository
	Sessions     *RecordRepository[models.DialysisSession]
	Weights      *RecordRepository[models.WeightEntry]
	Fluids       *RecordRepository[models.FluidEntry]
	Vitals       *RecordRepository[models.VitalEntry]
	Medications  *RecordRepository[models.MedicationEntry]
	Moods        *RecordRepository[models.MoodEntry]
	Meals        *RecordRepository[models.MealEntry]
	Reports      *ReportConfigRepository
	Alerts       *AlertRepository
	Reminders    *ReminderRepository
	Appointments *AppointmentRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(database),
		Sessions:     NewRecordRepository[models.DialysisSession](database),
		Weights:      NewRecordRepository[models.WeightEntry](database),
		Fluids:       NewRecordRepository[models.FluidEntry](database),
		Vitals:       NewRecordRepository[models.VitalEntry](database),
		Medications:  NewRecordRepository[models.MedicationEntry](database),
		Moods:        NewRecordRepository[models.MoodEntry](database),
		Meals:        NewRecordRepository[models.MealEntry](database),
		Reports:      NewReportConfigRepository(database),
		Alerts:       NewAlertRepository(database),
		Reminders:    NewReminderRepository(database),
		Appointments: NewAppointmentRepository(database),
	}
}
