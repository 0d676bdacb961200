package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"renalog/internal/api"
	"renalog/internal/config"
	"renalog/internal/db"
	"renalog/internal/i18n"
	"renalog/internal/logger"
	"renalog/internal/services"
)

func main() {
	configFile := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	location, err := time.LoadLocation(cfg.Server.Timezone)
	if err != nil {
		logger.Warn("invalid timezone, falling back to UTC", "timezone", cfg.Server.Timezone)
		location = time.UTC
	}

	database, err := db.OpenSQLite(cfg.Database.Path)
	if err != nil {
		logger.Error("failed to open database", "path", cfg.Database.Path, "error", err)
		os.Exit(1)
	}

	i18nManager, err := i18n.NewManager(i18n.LangEN)
	if err != nil {
		logger.Error("failed to load locales", "error", err)
		os.Exit(1)
	}

	gate := services.NewMaintenanceGate(cfg.Maintenance)

	handler, err := api.NewHandler(database, cfg.Auth.Secret, location, i18nManager, gate, cfg.Server.CookieSecure)
	if err != nil {
		logger.Error("failed to build handler", "error", err)
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{
		AppName:      "renalog",
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", "addr", cfg.Addr())
		if err := app.Listen(cfg.Addr()); err != nil {
			logger.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if fiberErr, ok := err.(*fiber.Error); ok {
		code = fiberErr.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
