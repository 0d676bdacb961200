package db

import (
	"time"

	"renalog/internal/models"

	"gorm.io/gorm"
)

type AlertRepository struct {
	database *gorm.DB
}

func NewAlertRepository(database *gorm.DB) *AlertRepository {
	return &AlertRepository{database: database}
}

func (repo *AlertRepository) ListUnacknowledged(userID uint) ([]models.Alert, error) {
	alerts := make([]models.Alert, 0)
	if err := repo.database.
		Where("user_id = ? AND acknowledged = ?", userID, false).
		Order("created_at DESC").
		Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

func (repo *AlertRepository) Create(alert *models.Alert) error {
	return repo.database.Create(alert).Error
}

func (repo *AlertRepository) Acknowledge(userID uint, alertID uint) (bool, error) {
	result := repo.database.
		Model(&models.Alert{}).
		Where("user_id = ? AND id = ?", userID, alertID).
		Update("acknowledged", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

type ReminderRepository struct {
	database *gorm.DB
}

func NewReminderRepository(database *gorm.DB) *ReminderRepository {
	return &ReminderRepository{database: database}
}

func (repo *ReminderRepository) Create(reminder *models.Reminder) error {
	return repo.database.Create(reminder).Error
}

func (repo *ReminderRepository) MarkDone(userID uint, reminderID uint) (bool, error) {
	result := repo.database.
		Model(&models.Reminder{}).
		Where("user_id = ? AND id = ?", userID, reminderID).
		Update("done", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *ReminderRepository) ListUpcoming(userID uint, after time.Time, limit int) ([]models.Reminder, error) {
	reminders := make([]models.Reminder, 0)
	query := repo.database.
		Where("user_id = ? AND done = ? AND due_at >= ?", userID, false, after).
		Order("due_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

type AppointmentRepository struct {
	database *gorm.DB
}

func NewAppointmentRepository(database *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{database: database}
}

func (repo *AppointmentRepository) Create(appointment *models.Appointment) error {
	return repo.database.Create(appointment).Error
}

func (repo *AppointmentRepository) ListUpcoming(userID uint, after time.Time, limit int) ([]models.Appointment, error) {
	appointments := make([]models.Appointment, 0)
	query := repo.database.
		Where("user_id = ? AND scheduled_at >= ?", userID, after).
		Order("scheduled_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}
