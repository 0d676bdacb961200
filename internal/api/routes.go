package api

import "github.com/gofiber/fiber/v2"

// RegisterRoutes wires the full HTTP surface onto the app.
func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Healthz)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)

	// Page gate status is public so the shell can decide what to render
	// before the user signs in.
	api.Get("/pages/:key/status", handler.PageStatus)

	api.Get("/profile", handler.AuthRequired, handler.Profile)
	api.Put("/profile", handler.AuthRequired, handler.UpdateProfile)

	sessions := api.Group("/sessions", handler.AuthRequired)
	sessions.Get("/", handler.ListSessions)
	sessions.Post("/", handler.CreateSession)
	sessions.Delete("/:id", handler.DeleteSession)

	weights := api.Group("/weights", handler.AuthRequired)
	weights.Get("/", handler.ListWeights)
	weights.Post("/", handler.CreateWeight)
	weights.Delete("/:id", handler.DeleteWeight)

	fluids := api.Group("/fluids", handler.AuthRequired)
	fluids.Get("/", handler.ListFluids)
	fluids.Post("/", handler.CreateFluid)
	fluids.Delete("/:id", handler.DeleteFluid)

	vitals := api.Group("/vitals", handler.AuthRequired)
	vitals.Get("/", handler.ListVitals)
	vitals.Post("/", handler.CreateVital)
	vitals.Delete("/:id", handler.DeleteVital)

	medications := api.Group("/medications", handler.AuthRequired)
	medications.Get("/", handler.ListMedications)
	medications.Post("/", handler.CreateMedication)
	medications.Delete("/:id", handler.DeleteMedication)

	moods := api.Group("/moods", handler.AuthRequired)
	moods.Get("/", handler.ListMoods)
	moods.Post("/", handler.CreateMood)
	moods.Delete("/:id", handler.DeleteMood)

	meals := api.Group("/meals", handler.AuthRequired)
	meals.Get("/", handler.ListMeals)
	meals.Post("/", handler.CreateMeal)
	meals.Delete("/:id", handler.DeleteMeal)

	alerts := api.Group("/alerts", handler.AuthRequired)
	alerts.Get("/", handler.ListAlerts)
	alerts.Post("/:id/ack", handler.AcknowledgeAlert)

	reminders := api.Group("/reminders", handler.AuthRequired)
	reminders.Get("/", handler.ListReminders)
	reminders.Post("/", handler.CreateReminder)
	reminders.Post("/:id/done", handler.CompleteReminder)

	appointments := api.Group("/appointments", handler.AuthRequired)
	appointments.Get("/", handler.ListAppointments)
	appointments.Post("/", handler.CreateAppointment)

	api.Get("/dashboard", handler.AuthRequired, handler.Dashboard)

	reports := api.Group("/reports", handler.AuthRequired)
	reports.Get("/", handler.ListReports)
	reports.Post("/", handler.CreateReport)
	reports.Delete("/:id", handler.DeleteReport)
	reports.Get("/:id/export/summary", handler.ExportSummary)
	reports.Get("/:id/export/json", handler.ExportJSON)
	reports.Get("/:id/export/csv", handler.ExportCSV)
	reports.Get("/:id/export/xlsx", handler.ExportXLSX)
	reports.Get("/:id/export/document", handler.ExportDocument)

	admin := api.Group("/admin", handler.AuthRequired, handler.ClinicianOnly)
	admin.Get("/maintenance", handler.MaintenanceState)
	admin.Post("/maintenance", handler.SetGlobalMaintenance)
	admin.Put("/pages/:key", handler.UpdatePage)
}
