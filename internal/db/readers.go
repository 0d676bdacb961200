package db

import (
	"context"
	"time"

	"renalog/internal/models"

	"gorm.io/gorm"
)

// Report reader surface: per-category collections restricted to timestamps
// strictly after the cutoff.

func (repos *Repositories) SessionsSince(userID uint, cutoff time.Time) ([]models.DialysisSession, error) {
	return repos.Sessions.ListSince(userID, cutoff)
}

func (repos *Repositories) WeightsSince(userID uint, cutoff time.Time) ([]models.WeightEntry, error) {
	return repos.Weights.ListSince(userID, cutoff)
}

func (repos *Repositories) FluidsSince(userID uint, cutoff time.Time) ([]models.FluidEntry, error) {
	return repos.Fluids.ListSince(userID, cutoff)
}

func (repos *Repositories) VitalsSince(userID uint, cutoff time.Time) ([]models.VitalEntry, error) {
	return repos.Vitals.ListSince(userID, cutoff)
}

func (repos *Repositories) MedicationsSince(userID uint, cutoff time.Time) ([]models.MedicationEntry, error) {
	return repos.Medications.ListSince(userID, cutoff)
}

func (repos *Repositories) MoodsSince(userID uint, cutoff time.Time) ([]models.MoodEntry, error) {
	return repos.Moods.ListSince(userID, cutoff)
}

// DashboardReader backs the dashboard fan-out with context-aware queries so a
// slow source can be abandoned on timeout.
type DashboardReader struct {
	database *gorm.DB
}

func NewDashboardReader(database *gorm.DB) *DashboardReader {
	return &DashboardReader{database: database}
}

func (reader *DashboardReader) FluidsSince(ctx context.Context, userID uint, cutoff time.Time) ([]models.FluidEntry, error) {
	entries := make([]models.FluidEntry, 0)
	err := reader.database.WithContext(ctx).
		Where("user_id = ? AND recorded_at > ?", userID, cutoff).
		Order("recorded_at DESC, id DESC").
		Find(&entries).Error
	return entries, err
}

func (reader *DashboardReader) LatestWeight(ctx context.Context, userID uint) (models.WeightEntry, bool, error) {
	entry := models.WeightEntry{}
	result := reader.database.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.WeightEntry{}, false, result.Error
	}
	return entry, result.RowsAffected > 0, nil
}

func (reader *DashboardReader) SessionsSince(ctx context.Context, userID uint, cutoff time.Time) ([]models.DialysisSession, error) {
	sessions := make([]models.DialysisSession, 0)
	err := reader.database.WithContext(ctx).
		Where("user_id = ? AND recorded_at > ?", userID, cutoff).
		Order("recorded_at DESC, id DESC").
		Find(&sessions).Error
	return sessions, err
}

func (reader *DashboardReader) UnacknowledgedAlerts(ctx context.Context, userID uint) ([]models.Alert, error) {
	alerts := make([]models.Alert, 0)
	err := reader.database.WithContext(ctx).
		Where("user_id = ? AND acknowledged = ?", userID, false).
		Order("created_at DESC").
		Find(&alerts).Error
	return alerts, err
}

func (reader *DashboardReader) UpcomingReminders(ctx context.Context, userID uint, after time.Time, limit int) ([]models.Reminder, error) {
	reminders := make([]models.Reminder, 0)
	query := reader.database.WithContext(ctx).
		Where("user_id = ? AND done = ? AND due_at >= ?", userID, false, after).
		Order("due_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&reminders).Error
	return reminders, err
}

func (reader *DashboardReader) UpcomingAppointments(ctx context.Context, userID uint, after time.Time, limit int) ([]models.Appointment, error) {
	appointments := make([]models.Appointment, 0)
	query := reader.database.WithContext(ctx).
		Where("user_id = ? AND scheduled_at >= ?", userID, after).
		Order("scheduled_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&appointments).Error
	return appointments, err
}

func (reader *DashboardReader) MealsSince(ctx context.Context, userID uint, cutoff time.Time) ([]models.MealEntry, error) {
	meals := make([]models.MealEntry, 0)
	err := reader.database.WithContext(ctx).
		Where("user_id = ? AND recorded_at > ?", userID, cutoff).
		Order("recorded_at DESC, id DESC").
		Find(&meals).Error
	return meals, err
}
