package services

import (
	"errors"
	"fmt"
	"time"

	"renalog/internal/models"
)

// ErrUnknownCategory reports a selected category that is not one of the six
// exportable record categories.
var ErrUnknownCategory = errors.New("unknown report category")

// ReportRecordReader supplies the per-category record collections for a user,
// already restricted to timestamps strictly after the cutoff.
type ReportRecordReader interface {
	SessionsSince(userID uint, cutoff time.Time) ([]models.DialysisSession, error)
	WeightsSince(userID uint, cutoff time.Time) ([]models.WeightEntry, error)
	FluidsSince(userID uint, cutoff time.Time) ([]models.FluidEntry, error)
	VitalsSince(userID uint, cutoff time.Time) ([]models.VitalEntry, error)
	MedicationsSince(userID uint, cutoff time.Time) ([]models.MedicationEntry, error)
	MoodsSince(userID uint, cutoff time.Time) ([]models.MoodEntry, error)
}

// ReportPayload is the transient aggregate produced for a single export
// request. A category field is non-nil exactly when the category was selected
// in the report configuration, so the serialized payload carries exactly the
// selected category keys.
type ReportPayload struct {
	Profile     models.ProfileSnapshot     `json:"profile"`
	GeneratedAt string                     `json:"generatedAt"`
	ReportName  string                     `json:"reportName"`
	DateRange   string                     `json:"dateRange"`
	Sessions    *[]models.DialysisSession  `json:"sessions,omitempty"`
	Weights     *[]models.WeightEntry      `json:"weights,omitempty"`
	Fluids      *[]models.FluidEntry       `json:"fluids,omitempty"`
	Vitals      *[]models.VitalEntry       `json:"vitals,omitempty"`
	Medications *[]models.MedicationEntry  `json:"medications,omitempty"`
	Moods       *[]models.MoodEntry        `json:"moods,omitempty"`
}

// ReportSummary carries per-category selection counts for the UI preview.
type ReportSummary struct {
	ReportName   string         `json:"reportName"`
	DateRange    string         `json:"dateRange"`
	TotalRecords int            `json:"totalRecords"`
	HasData      bool           `json:"hasData"`
	Counts       map[string]int `json:"counts"`
}

type ReportService struct {
	records ReportRecordReader
}

func NewReportService(records ReportRecordReader) *ReportService {
	return &ReportService{records: records}
}

// BuildPayload assembles the export payload for a report configuration.
// Both the preview and the exported payload honor the configured range.
func (service *ReportService) BuildPayload(user *models.User, report models.ReportConfig, now time.Time) (ReportPayload, error) {
	window, err := ParseRangeToken(report.RangeToken)
	if err != nil {
		return ReportPayload{}, err
	}
	cutoff := window.CutoffFrom(now)

	payload := ReportPayload{
		Profile:     user.ProfileSnapshot(),
		GeneratedAt: now.Format(time.RFC3339),
		ReportName:  report.Name,
		DateRange:   report.RangeToken,
	}

	for _, category := range report.Categories {
		switch category {
		case models.CategorySessions:
			sessions, err := service.records.SessionsSince(user.ID, cutoff)
			if err != nil {
				return ReportPayload{}, fmt.Errorf("load sessions: %w", err)
			}
			payload.Sessions = &sessions
		case models.CategoryWeights:
			weights, err := service.records.WeightsSince(user.ID, cutoff)
			if err != nil {
				return ReportPayload{}, fmt.Errorf("load weights: %w", err)
			}
			payload.Weights = &weights
		case models.CategoryFluids:
			fluids, err := service.records.FluidsSince(user.ID, cutoff)
			if err != nil {
				return ReportPayload{}, fmt.Errorf("load fluids: %w", err)
			}
			payload.Fluids = &fluids
		case models.CategoryVitals:
			vitals, err := service.records.VitalsSince(user.ID, cutoff)
			if err != nil {
				return ReportPayload{}, fmt.Errorf("load vitals: %w", err)
			}
			payload.Vitals = &vitals
		case models.CategoryMedications:
			medications, err := service.records.MedicationsSince(user.ID, cutoff)
			if err != nil {
				return ReportPayload{}, fmt.Errorf("load medications: %w", err)
			}
			payload.Medications = &medications
		case models.CategoryMoods:
			moods, err := service.records.MoodsSince(user.ID, cutoff)
			if err != nil {
				return ReportPayload{}, fmt.Errorf("load moods: %w", err)
			}
			payload.Moods = &moods
		default:
			return ReportPayload{}, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
		}
	}

	return payload, nil
}

// BuildSummary computes the per-category counts the export preview shows.
func (service *ReportService) BuildSummary(user *models.User, report models.ReportConfig, now time.Time) (ReportSummary, error) {
	payload, err := service.BuildPayload(user, report, now)
	if err != nil {
		return ReportSummary{}, err
	}

	counts := make(map[string]int, len(report.Categories))
	for _, category := range report.Categories {
		counts[category] = payload.categoryLength(category)
	}

	total := 0
	for _, count := range counts {
		total += count
	}

	return ReportSummary{
		ReportName:   report.Name,
		DateRange:    report.RangeToken,
		TotalRecords: total,
		HasData:      total > 0,
		Counts:       counts,
	}, nil
}

// SelectedCategories lists the categories present in the payload, in the
// canonical render order.
func (payload ReportPayload) SelectedCategories() []string {
	selected := make([]string, 0, 6)
	for _, category := range models.ReportCategories() {
		if payload.hasCategory(category) {
			selected = append(selected, category)
		}
	}
	return selected
}

func (payload ReportPayload) hasCategory(category string) bool {
	switch category {
	case models.CategorySessions:
		return payload.Sessions != nil
	case models.CategoryWeights:
		return payload.Weights != nil
	case models.CategoryFluids:
		return payload.Fluids != nil
	case models.CategoryVitals:
		return payload.Vitals != nil
	case models.CategoryMedications:
		return payload.Medications != nil
	case models.CategoryMoods:
		return payload.Moods != nil
	default:
		return false
	}
}

func (payload ReportPayload) categoryLength(category string) int {
	switch category {
	case models.CategorySessions:
		if payload.Sessions != nil {
			return len(*payload.Sessions)
		}
	case models.CategoryWeights:
		if payload.Weights != nil {
			return len(*payload.Weights)
		}
	case models.CategoryFluids:
		if payload.Fluids != nil {
			return len(*payload.Fluids)
		}
	case models.CategoryVitals:
		if payload.Vitals != nil {
			return len(*payload.Vitals)
		}
	case models.CategoryMedications:
		if payload.Medications != nil {
			return len(*payload.Medications)
		}
	case models.CategoryMoods:
		if payload.Moods != nil {
			return len(*payload.Moods)
		}
	}
	return 0
}

// ValidateReportCategories rejects empty or unknown category selections.
func ValidateReportCategories(categories []string) error {
	if len(categories) == 0 {
		return fmt.Errorf("%w: empty selection", ErrUnknownCategory)
	}
	seen := make(map[string]struct{}, len(categories))
	for _, category := range categories {
		if !models.IsReportCategory(category) {
			return fmt.Errorf("%w: %s", ErrUnknownCategory, category)
		}
		if _, duplicate := seen[category]; duplicate {
			return fmt.Errorf("%w: duplicate %s", ErrUnknownCategory, category)
		}
		seen[category] = struct{}{}
	}
	return nil
}
