package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"renalog/internal/models"
	"renalog/internal/security"
	"renalog/internal/services"
)

type reportInput struct {
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
	RangeToken string   `json:"rangeToken"`
}

func (handler *Handler) ListReports(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	reports, err := handler.repositories.Reports.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch reports")
	}
	return dataEnvelope(c, reports, fiber.Map{"count": len(reports)})
}

func (handler *Handler) CreateReport(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := reportInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return apiError(c, fiber.StatusBadRequest, "name is required")
	}
	if err := services.ValidateReportCategories(input.Categories); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	if _, err := services.ParseRangeToken(input.RangeToken); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid range token")
	}

	reportID, err := security.NewReportID()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create report id")
	}

	report := models.ReportConfig{
		ID:         reportID,
		UserID:     user.ID,
		Name:       input.Name,
		Categories: input.Categories,
		RangeToken: input.RangeToken,
		CreatedAt:  time.Now().In(handler.location),
	}
	if err := handler.repositories.Reports.Create(&report); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save report")
	}
	return c.Status(fiber.StatusCreated).JSON(report)
}

func (handler *Handler) DeleteReport(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	deleted, err := handler.repositories.Reports.DeleteByIDForUser(user.ID, c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete report")
	}
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "report not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}

// ExportSummary returns the per-category record counts for the export preview.
func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	user, report, ok := handler.loadOwnedReport(c)
	if !ok {
		return nil
	}

	summary, err := handler.reportService.BuildSummary(user, report, time.Now().In(handler.location))
	if err != nil {
		return handler.exportError(c, err)
	}
	return dataEnvelope(c, summary, fiber.Map{"reportId": report.ID})
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	user, report, ok := handler.loadOwnedReport(c)
	if !ok {
		return nil
	}

	now := time.Now().In(handler.location)
	payload, err := handler.reportService.BuildPayload(user, report, now)
	if err != nil {
		return handler.exportError(c, err)
	}

	serialized, err := services.RenderReportJSON(payload)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to render report")
	}

	setExportAttachmentHeaders(c, fiber.MIMEApplicationJSONCharsetUTF8, services.ExportFilename(report.Name, now, "json"))
	return c.Send(serialized)
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	user, report, ok := handler.loadOwnedReport(c)
	if !ok {
		return nil
	}

	now := time.Now().In(handler.location)
	payload, err := handler.reportService.BuildPayload(user, report, now)
	if err != nil {
		return handler.exportError(c, err)
	}

	serialized, err := services.RenderReportCSV(payload)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to render report")
	}

	setExportAttachmentHeaders(c, "text/csv; charset=utf-8", services.ExportFilename(report.Name, now, "csv"))
	return c.Send(serialized)
}

func (handler *Handler) ExportXLSX(c *fiber.Ctx) error {
	user, report, ok := handler.loadOwnedReport(c)
	if !ok {
		return nil
	}

	now := time.Now().In(handler.location)
	payload, err := handler.reportService.BuildPayload(user, report, now)
	if err != nil {
		return handler.exportError(c, err)
	}

	serialized, err := services.RenderReportXLSX(payload, handler.requestMessages(c))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to render report")
	}

	setExportAttachmentHeaders(c,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		services.ExportFilename(report.Name, now, "xlsx"))
	return c.Send(serialized)
}

// ExportDocument renders the printable report page. It is served inline so the
// browser can open it and trigger the print dialog.
func (handler *Handler) ExportDocument(c *fiber.Ctx) error {
	user, report, ok := handler.loadOwnedReport(c)
	if !ok {
		return nil
	}

	now := time.Now().In(handler.location)
	payload, err := handler.reportService.BuildPayload(user, report, now)
	if err != nil {
		return handler.exportError(c, err)
	}

	document, err := services.RenderReportDocument(payload, handler.requestMessages(c))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to render report")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(document)
}

// loadOwnedReport resolves the report in the URL for the authenticated user.
// On failure it writes the error response and reports ok=false; callers must
// stop without writing anything further.
func (handler *Handler) loadOwnedReport(c *fiber.Ctx) (*models.User, models.ReportConfig, bool) {
	user, ok := currentUser(c)
	if !ok {
		_ = apiError(c, fiber.StatusUnauthorized, "unauthorized")
		return nil, models.ReportConfig{}, false
	}

	report, found, err := handler.repositories.Reports.FindByIDForUser(user.ID, c.Params("id"))
	if err != nil {
		_ = apiError(c, fiber.StatusInternalServerError, "failed to fetch report")
		return nil, models.ReportConfig{}, false
	}
	if !found {
		_ = apiError(c, fiber.StatusNotFound, "report not found")
		return nil, models.ReportConfig{}, false
	}
	return user, report, true
}

func (handler *Handler) exportError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrInvalidRangeToken) || errors.Is(err, services.ErrUnknownCategory) {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	return apiError(c, fiber.StatusInternalServerError, "failed to build report")
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
}
