package db

import (
	"time"

	"gorm.io/gorm"
)

// RecordRepository provides the shared persistence surface for the six
// timestamped record categories. The zero-value type parameter carries the
// table mapping.
type RecordRepository[T any] struct {
	database *gorm.DB
}

func NewRecordRepository[T any](database *gorm.DB) *RecordRepository[T] {
	return &RecordRepository[T]{database: database}
}

func (repo *RecordRepository[T]) Create(entry *T) error {
	return repo.database.Create(entry).Error
}

func (repo *RecordRepository[T]) ListByUser(userID uint) ([]T, error) {
	entries := make([]T, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("recorded_at DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListSince returns records with recorded_at strictly after the cutoff.
func (repo *RecordRepository[T]) ListSince(userID uint, cutoff time.Time) ([]T, error) {
	entries := make([]T, 0)
	if err := repo.database.
		Where("user_id = ? AND recorded_at > ?", userID, cutoff).
		Order("recorded_at DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *RecordRepository[T]) DeleteByIDForUser(userID uint, entryID uint) (bool, error) {
	var zero T
	result := repo.database.Where("user_id = ? AND id = ?", userID, entryID).Delete(&zero)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
