package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"renalog/internal/models"
)

func TestRenderReportDocument(t *testing.T) {
	now := time.Date(2026, time.March, 15, 9, 30, 0, 0, time.UTC)
	messages := map[string]string{}

	t.Run("each category table is capped at five rows", func(t *testing.T) {
		sessions := make([]models.DialysisSession, 0, 8)
		for day := 1; day <= 8; day++ {
			sessions = append(sessions, models.DialysisSession{
				RecordedAt:     now.AddDate(0, 0, -day),
				Type:           models.SessionHemodialysis,
				FluidRemovedML: 2000 + day,
			})
		}
		payload := ReportPayload{
			Profile:     testUser().ProfileSnapshot(),
			GeneratedAt: now.Format(time.RFC3339),
			ReportName:  "Weekly",
			DateRange:   "2weeks",
			Sessions:    &sessions,
		}

		rows := buildCategoryRows(payload, models.CategorySessions, messages, documentRowCap)
		if len(rows) != documentRowCap {
			t.Fatalf("rows = %d, want %d", len(rows), documentRowCap)
		}

		document, err := RenderReportDocument(payload, messages)
		if err != nil {
			t.Fatalf("RenderReportDocument returned error: %v", err)
		}
		html := string(document)
		if count := strings.Count(html, "<td>"); count != documentRowCap*5 {
			t.Errorf("document has %d data cells, want %d", count, documentRowCap*5)
		}
		// Most recent records survive the cap, the oldest are dropped.
		if !strings.Contains(html, "2001") || strings.Contains(html, "2008") {
			t.Error("cap kept the wrong records")
		}
	})

	t.Run("document carries name, profile and section headers", func(t *testing.T) {
		weights := []models.WeightEntry{{RecordedAt: now.AddDate(0, 0, -1), WeightKg: 63.4}}
		payload := ReportPayload{
			Profile:     testUser().ProfileSnapshot(),
			GeneratedAt: now.Format(time.RFC3339),
			ReportName:  "Clinic Visit",
			DateRange:   "30days",
			Weights:     &weights,
		}

		document, err := RenderReportDocument(payload, messages)
		if err != nil {
			t.Fatalf("RenderReportDocument returned error: %v", err)
		}
		html := string(document)

		for _, fragment := range []string{
			"Clinic Visit",
			"Ana Torres",
			"category.weights",
			"column.weight",
			"63.4",
			"window.print()",
		} {
			if !strings.Contains(html, fragment) {
				t.Errorf("document missing %q", fragment)
			}
		}
	})

	t.Run("empty selected category renders the empty marker", func(t *testing.T) {
		fluids := []models.FluidEntry{}
		payload := ReportPayload{
			Profile:     testUser().ProfileSnapshot(),
			GeneratedAt: now.Format(time.RFC3339),
			ReportName:  "Fluids",
			DateRange:   "1weeks",
			Fluids:      &fluids,
		}

		document, err := RenderReportDocument(payload, messages)
		if err != nil {
			t.Fatalf("RenderReportDocument returned error: %v", err)
		}
		if !strings.Contains(string(document), "report.no_records") {
			t.Error("empty category did not render the no-records marker")
		}
	})

	t.Run("localized labels replace the keys", func(t *testing.T) {
		moods := []models.MoodEntry{{RecordedAt: now.AddDate(0, 0, -1), Mood: "bien", EnergyLevel: 4}}
		payload := ReportPayload{
			Profile:     testUser().ProfileSnapshot(),
			GeneratedAt: now.Format(time.RFC3339),
			ReportName:  "Resumen",
			DateRange:   "1weeks",
			Moods:       &moods,
		}
		localized := map[string]string{
			"report.title":    "Informe de salud",
			"category.moods":  "Estado de ánimo",
			"column.date":     "Fecha",
			"report.patient":  "Paciente",
		}

		document, err := RenderReportDocument(payload, localized)
		if err != nil {
			t.Fatalf("RenderReportDocument returned error: %v", err)
		}
		html := string(document)
		for _, fragment := range []string{"Informe de salud", "Fecha"} {
			if !strings.Contains(html, fragment) {
				t.Errorf("document missing translated %q", fragment)
			}
		}
	})
}

func TestCapRecords(t *testing.T) {
	records := []int{1, 2, 3, 4}

	if got := capRecords(records, 0); len(got) != 4 {
		t.Errorf("non-positive limit trimmed records: %v", got)
	}
	if got := capRecords(records, 10); len(got) != 4 {
		t.Errorf("oversized limit trimmed records: %v", got)
	}
	if got := capRecords(records, 2); fmt.Sprint(got) != "[1 2]" {
		t.Errorf("capRecords(_, 2) = %v, want [1 2]", got)
	}
}
