package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"renalog/internal/models"
)

// ReportCSVHeaders is the flat column set shared by every record category in
// the CSV export.
var ReportCSVHeaders = []string{
	"Category",
	"Date",
	"Type",
	"Value",
	"Details",
	"Notes",
}

// RenderReportCSV flattens every present category into one denormalized CSV
// table, records ordered as assembled (most recent first per category).
func RenderReportCSV(payload ReportPayload) ([]byte, error) {
	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(ReportCSVHeaders); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, category := range payload.SelectedCategories() {
		for _, row := range csvRows(payload, category) {
			if err := writer.Write(row); err != nil {
				return nil, fmt.Errorf("write csv row: %w", err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return output.Bytes(), nil
}

func csvRows(payload ReportPayload, category string) [][]string {
	rows := make([][]string, 0)
	switch category {
	case models.CategorySessions:
		for _, entry := range *payload.Sessions {
			details := fmt.Sprintf("removed %d mL, %s -> %s kg", entry.FluidRemovedML, formatKg(entry.PreWeightKg), formatKg(entry.PostWeightKg))
			rows = append(rows, []string{category, formatDocumentTime(entry.RecordedAt), entry.Type, strconv.Itoa(entry.DurationMinutes), details, entry.Notes})
		}
	case models.CategoryWeights:
		for _, entry := range *payload.Weights {
			rows = append(rows, []string{category, formatDocumentTime(entry.RecordedAt), "", formatKg(entry.WeightKg), "", entry.Notes})
		}
	case models.CategoryFluids:
		for _, entry := range *payload.Fluids {
			rows = append(rows, []string{category, formatDocumentTime(entry.RecordedAt), entry.FluidType, strconv.Itoa(entry.VolumeML), "", ""})
		}
	case models.CategoryVitals:
		for _, entry := range *payload.Vitals {
			rows = append(rows, []string{category, formatDocumentTime(entry.RecordedAt), entry.Type, entry.Reading, "", entry.Notes})
		}
	case models.CategoryMedications:
		for _, entry := range *payload.Medications {
			taken := "no"
			if entry.Taken {
				taken = "yes"
			}
			rows = append(rows, []string{category, formatDocumentTime(entry.RecordedAt), entry.Name, entry.Dose, taken, ""})
		}
	case models.CategoryMoods:
		for _, entry := range *payload.Moods {
			rows = append(rows, []string{category, formatDocumentTime(entry.RecordedAt), entry.Mood, strconv.Itoa(entry.EnergyLevel), "", entry.Notes})
		}
	}
	return rows
}
