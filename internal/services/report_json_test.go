package services

import (
	"encoding/json"
	"testing"
	"time"

	"renalog/internal/models"
)

func TestRenderReportJSON(t *testing.T) {
	now := time.Date(2026, time.March, 15, 9, 30, 0, 0, time.UTC)
	sessions := []models.DialysisSession{
		{RecordedAt: now.AddDate(0, 0, -1), Type: models.SessionHemodialysis, FluidRemovedML: 2000},
	}
	payload := ReportPayload{
		Profile:     testUser().ProfileSnapshot(),
		GeneratedAt: now.Format(time.RFC3339),
		ReportName:  "Clinic Visit",
		DateRange:   "30days",
		Sessions:    &sessions,
	}

	serialized, err := RenderReportJSON(payload)
	if err != nil {
		t.Fatalf("RenderReportJSON returned error: %v", err)
	}

	decoded := map[string]json.RawMessage{}
	if err := json.Unmarshal(serialized, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	var reportName string
	if err := json.Unmarshal(decoded["reportName"], &reportName); err != nil || reportName != "Clinic Visit" {
		t.Errorf("reportName = %q (%v)", reportName, err)
	}

	var generatedAt string
	if err := json.Unmarshal(decoded["generatedAt"], &generatedAt); err != nil {
		t.Fatalf("generatedAt missing: %v", err)
	}
	if _, err := time.Parse(time.RFC3339, generatedAt); err != nil {
		t.Errorf("generatedAt %q is not RFC3339: %v", generatedAt, err)
	}

	if _, ok := decoded["sessions"]; !ok {
		t.Error("selected sessions category missing from output")
	}
	if _, ok := decoded["weights"]; ok {
		t.Error("unselected weights category present in output")
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, time.March, 15, 9, 30, 0, 0, time.UTC)

	cases := []struct {
		name       string
		reportName string
		extension  string
		want       string
	}{
		{"simple", "Clinic Visit", "json", "clinic-visit-2026-03-15.json"},
		{"unsafe characters", "März / Report #2!", "csv", "m-rz-report-2-2026-03-15.csv"},
		{"blank name falls back", "   ", "xlsx", "report-2026-03-15.xlsx"},
		{"already a slug", "monthly-summary", "html", "monthly-summary-2026-03-15.html"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExportFilename(tc.reportName, now, tc.extension); got != tc.want {
				t.Errorf("ExportFilename = %q, want %q", got, tc.want)
			}
		})
	}
}
