package api

import (
	"errors"
	"time"

	"renalog/internal/db"
	"renalog/internal/i18n"
	"renalog/internal/services"

	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	repositories *db.Repositories
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	i18n         *i18n.Manager
	gate         *services.MaintenanceGate

	reportService    *services.ReportService
	dashboardService *services.DashboardService
}

func NewHandler(
	database *gorm.DB,
	secret string,
	location *time.Location,
	i18nManager *i18n.Manager,
	gate *services.MaintenanceGate,
	cookieSecure bool,
) (*Handler, error) {
	if location == nil {
		location = time.Local
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}
	if gate == nil {
		return nil, errors.New("maintenance gate is required")
	}

	repositories := db.NewRepositories(database)

	return &Handler{
		db:               database,
		repositories:     repositories,
		secretKey:        []byte(secret),
		location:         location,
		cookieSecure:     cookieSecure,
		i18n:             i18nManager,
		gate:             gate,
		reportService:    services.NewReportService(repositories),
		dashboardService: services.NewDashboardService(db.NewDashboardReader(database), location),
	}, nil
}
