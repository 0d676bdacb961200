package services

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"renalog/internal/i18n"
	"renalog/internal/models"
)

// documentRowCap limits each category table in the print document to its most
// recent records; the full collections stay available in the JSON/CSV/XLSX
// renderers.
const documentRowCap = 5

const documentTimeLayout = "2006-01-02 15:04"

var documentTemplate = template.Must(template.New("report_document").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}} — {{.ReportName}}</title>
<style>
  body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; color: #1f2933; margin: 32px; }
  h1 { font-size: 22px; margin-bottom: 4px; }
  .meta { color: #52606d; font-size: 13px; margin-bottom: 24px; }
  .card { border: 1px solid #d9e2ec; border-radius: 8px; padding: 16px; margin-bottom: 24px; background: #f8fafc; }
  .card h2 { font-size: 15px; margin: 0 0 8px 0; }
  .card dl { display: flex; gap: 32px; margin: 0; }
  .card dt { font-size: 12px; color: #52606d; }
  .card dd { font-size: 16px; font-weight: 600; margin: 0; }
  section { margin-bottom: 28px; }
  section h2 { font-size: 16px; border-bottom: 2px solid #d9e2ec; padding-bottom: 4px; }
  table { width: 100%; border-collapse: collapse; font-size: 13px; }
  th { text-align: left; color: #52606d; border-bottom: 1px solid #d9e2ec; padding: 6px 8px; }
  td { border-bottom: 1px solid #edf2f7; padding: 6px 8px; }
  .empty { color: #829ab1; font-style: italic; font-size: 13px; }
  @media print { body { margin: 12mm; } }
</style>
</head>
<body>
<h1>{{.Title}}: {{.ReportName}}</h1>
<div class="meta">
  {{.Labels.Generated}}: {{.GeneratedAt}} · {{.Labels.Patient}}: {{.PatientName}} · {{.Labels.Modality}}: {{.Modality}} · {{.Labels.Range}}: {{.DateRange}}
</div>
<div class="card">
  <h2>{{.Labels.Profile}}</h2>
  <dl>
    <div><dt>{{.Labels.DryWeightGoal}}</dt><dd>{{.DryWeightGoal}} kg</dd></div>
    <div><dt>{{.Labels.DailyFluidLimit}}</dt><dd>{{.DailyFluidLimit}} mL</dd></div>
  </dl>
</div>
{{range .Sections}}
<section>
  <h2>{{.Title}}</h2>
  {{if .Rows}}
  <table>
    <tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
    {{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
    {{end}}
  </table>
  {{else}}
  <p class="empty">{{$.Labels.NoRecords}}</p>
  {{end}}
</section>
{{end}}
<script>window.addEventListener("load", function () { window.print(); });</script>
</body>
</html>
`))

type documentLabels struct {
	Generated       string
	Patient         string
	Modality        string
	Range           string
	Profile         string
	DryWeightGoal   string
	DailyFluidLimit string
	NoRecords       string
}

type documentSection struct {
	Title   string
	Columns []string
	Rows    [][]string
}

type documentData struct {
	Title           string
	ReportName      string
	GeneratedAt     string
	PatientName     string
	Modality        string
	DateRange       string
	DryWeightGoal   string
	DailyFluidLimit string
	Labels          documentLabels
	Sections        []documentSection
}

// RenderReportDocument renders the payload as a self-contained, print-ready
// HTML document. It is a pure transformation; writing the document to the
// client is the caller's concern.
func RenderReportDocument(payload ReportPayload, messages map[string]string) ([]byte, error) {
	data := documentData{
		Title:           i18n.Translate(messages, "report.title"),
		ReportName:      payload.ReportName,
		GeneratedAt:     payload.GeneratedAt,
		PatientName:     payload.Profile.DisplayName,
		Modality:        payload.Profile.Modality,
		DateRange:       payload.DateRange,
		DryWeightGoal:   formatKg(payload.Profile.DryWeightGoalKg),
		DailyFluidLimit: strconv.Itoa(payload.Profile.DailyFluidLimitML),
		Labels: documentLabels{
			Generated:       i18n.Translate(messages, "report.generated"),
			Patient:         i18n.Translate(messages, "report.patient"),
			Modality:        i18n.Translate(messages, "report.modality"),
			Range:           i18n.Translate(messages, "report.range"),
			Profile:         i18n.Translate(messages, "report.profile"),
			DryWeightGoal:   i18n.Translate(messages, "report.dry_weight_goal"),
			DailyFluidLimit: i18n.Translate(messages, "report.daily_fluid_limit"),
			NoRecords:       i18n.Translate(messages, "report.no_records"),
		},
		Sections: buildDocumentSections(payload, messages),
	}

	var output bytes.Buffer
	if err := documentTemplate.Execute(&output, data); err != nil {
		return nil, fmt.Errorf("render report document: %w", err)
	}
	return output.Bytes(), nil
}

func buildDocumentSections(payload ReportPayload, messages map[string]string) []documentSection {
	sections := make([]documentSection, 0, 6)
	for _, category := range payload.SelectedCategories() {
		sections = append(sections, documentSection{
			Title:   i18n.Translate(messages, "category."+category),
			Columns: documentColumns(category, messages),
			Rows:    documentRows(payload, category, messages),
		})
	}
	return sections
}

func documentColumns(category string, messages map[string]string) []string {
	keys := documentColumnKeys(category)
	columns := make([]string, 0, len(keys))
	for _, key := range keys {
		columns = append(columns, i18n.Translate(messages, key))
	}
	return columns
}

func documentColumnKeys(category string) []string {
	switch category {
	case models.CategorySessions:
		return []string{"column.date", "column.type", "column.fluid_removed", "column.pre_weight", "column.post_weight"}
	case models.CategoryWeights:
		return []string{"column.date", "column.weight", "column.notes"}
	case models.CategoryFluids:
		return []string{"column.date", "column.type", "column.volume"}
	case models.CategoryVitals:
		return []string{"column.date", "column.type", "column.reading", "column.notes"}
	case models.CategoryMedications:
		return []string{"column.date", "column.name", "column.dose", "column.taken"}
	case models.CategoryMoods:
		return []string{"column.date", "column.mood", "column.energy", "column.notes"}
	default:
		return nil
	}
}

func documentRows(payload ReportPayload, category string, messages map[string]string) [][]string {
	return buildCategoryRows(payload, category, messages, documentRowCap)
}

// buildCategoryRows renders a category's records as display rows; a
// non-positive cap keeps every record.
func buildCategoryRows(payload ReportPayload, category string, messages map[string]string, limit int) [][]string {
	yes := i18n.Translate(messages, "value.yes")
	no := i18n.Translate(messages, "value.no")

	rows := make([][]string, 0)
	switch category {
	case models.CategorySessions:
		for _, entry := range capRecords(*payload.Sessions, limit) {
			rows = append(rows, []string{
				formatDocumentTime(entry.RecordedAt),
				entry.Type,
				strconv.Itoa(entry.FluidRemovedML),
				formatKg(entry.PreWeightKg),
				formatKg(entry.PostWeightKg),
			})
		}
	case models.CategoryWeights:
		for _, entry := range capRecords(*payload.Weights, limit) {
			rows = append(rows, []string{formatDocumentTime(entry.RecordedAt), formatKg(entry.WeightKg), entry.Notes})
		}
	case models.CategoryFluids:
		for _, entry := range capRecords(*payload.Fluids, limit) {
			rows = append(rows, []string{formatDocumentTime(entry.RecordedAt), entry.FluidType, strconv.Itoa(entry.VolumeML)})
		}
	case models.CategoryVitals:
		for _, entry := range capRecords(*payload.Vitals, limit) {
			rows = append(rows, []string{formatDocumentTime(entry.RecordedAt), entry.Type, entry.Reading, entry.Notes})
		}
	case models.CategoryMedications:
		for _, entry := range capRecords(*payload.Medications, limit) {
			taken := no
			if entry.Taken {
				taken = yes
			}
			rows = append(rows, []string{formatDocumentTime(entry.RecordedAt), entry.Name, entry.Dose, taken})
		}
	case models.CategoryMoods:
		for _, entry := range capRecords(*payload.Moods, limit) {
			rows = append(rows, []string{
				formatDocumentTime(entry.RecordedAt),
				entry.Mood,
				strconv.Itoa(entry.EnergyLevel),
				entry.Notes,
			})
		}
	}
	return rows
}

func capRecords[T any](records []T, limit int) []T {
	if limit <= 0 || len(records) <= limit {
		return records
	}
	return records[:limit]
}

func formatDocumentTime(value time.Time) string {
	return value.Format(documentTimeLayout)
}

func formatKg(value float64) string {
	return strconv.FormatFloat(value, 'f', 1, 64)
}
