package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
)

const exportDateLayout = "2006-01-02"

var filenameUnsafePattern = regexp.MustCompile(`[^a-z0-9-]+`)

// RenderReportJSON serializes the payload with stable 2-space indentation.
func RenderReportJSON(payload ReportPayload) ([]byte, error) {
	serialized, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report payload: %w", err)
	}
	return serialized, nil
}

// ExportFilename builds "<name>-<YYYY-MM-DD>.<ext>" with the report name
// reduced to a filesystem-safe slug.
func ExportFilename(reportName string, now time.Time, extension string) string {
	slug := filenameUnsafePattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(reportName)), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "report"
	}
	return fmt.Sprintf("%s-%s.%s", slug, now.Format(exportDateLayout), extension)
}
