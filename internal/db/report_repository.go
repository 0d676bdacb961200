package db

import (
	"renalog/internal/models"

	"gorm.io/gorm"
)

type ReportConfigRepository struct {
	database *gorm.DB
}

func NewReportConfigRepository(database *gorm.DB) *ReportConfigRepository {
	return &ReportConfigRepository{database: database}
}

func (repo *ReportConfigRepository) Create(report *models.ReportConfig) error {
	return repo.database.Create(report).Error
}

func (repo *ReportConfigRepository) ListByUser(userID uint) ([]models.ReportConfig, error) {
	reports := make([]models.ReportConfig, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (repo *ReportConfigRepository) FindByIDForUser(userID uint, reportID string) (models.ReportConfig, bool, error) {
	report := models.ReportConfig{}
	result := repo.database.
		Where("user_id = ? AND id = ?", userID, reportID).
		Limit(1).
		Find(&report)
	if result.Error != nil {
		return models.ReportConfig{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.ReportConfig{}, false, nil
	}
	return report, true, nil
}

func (repo *ReportConfigRepository) DeleteByIDForUser(userID uint, reportID string) (bool, error) {
	result := repo.database.Where("user_id = ? AND id = ?", userID, reportID).Delete(&models.ReportConfig{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
