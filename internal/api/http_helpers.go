package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// dataEnvelope wraps list and summary responses in the {data, meta} shape the
// front-end consumes.
func dataEnvelope(c *fiber.Ctx, data any, meta fiber.Map) error {
	if meta == nil {
		meta = fiber.Map{}
	}
	return c.JSON(fiber.Map{"data": data, "meta": meta})
}

// requestLanguage resolves the response language from the lang query
// parameter, then the lang cookie, then the configured default.
func (handler *Handler) requestLanguage(c *fiber.Ctx) string {
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" && handler.i18n.IsSupported(lang) {
		return lang
	}
	if lang := strings.TrimSpace(c.Cookies("renalog_lang")); lang != "" && handler.i18n.IsSupported(lang) {
		return lang
	}
	return handler.i18n.DefaultLanguage()
}

func (handler *Handler) requestMessages(c *fiber.Ctx) map[string]string {
	return handler.i18n.Messages(handler.requestLanguage(c))
}
