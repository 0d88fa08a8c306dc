package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"wineapi/internal/logger"
	"wineapi/internal/service"
)

// RegisterRoutes attaches the health and wine record routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, wineSvc service.WineService, log *logger.Logger) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/wine-records", CreateWineRecord(wineSvc, log))
	app.Get("/wine-records", ListWineRecords(wineSvc, log))
	app.Put("/wine-records/:id", UpdateWineRecord(wineSvc, log))
	app.Delete("/wine-records/:id", DeleteWineRecord(wineSvc, log))
}
