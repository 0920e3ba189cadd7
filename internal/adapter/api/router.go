package api

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRouter(app *fiber.App, handler *CaseHandler) {
	// Middleware
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"version": os.Getenv("APP_VERSION"),
			"env":     os.Getenv("ENV"),
		})
	})

	// API Versioning
	v1 := app.Group("/v1")
	// Endpoints
	v1.Post("/analyze", handler.HandleAnalyze)
	v1.Get("/providers", handler.HandleProviders)
	v1.Get("/presets", handler.HandlePresets)
	v1.Post("/sections", handler.HandleSections)
	v1.Post("/export", handler.HandleExport)
	v1.Post("/reports", handler.HandleSaveReport)
	v1.Get("/reports/:id", handler.HandleGetReport)
}
