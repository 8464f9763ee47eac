package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"clinicadmin/internal/service"
)

// RegisterRoutes attaches the HTTP routes to the provided Fiber app.
// Handlers stay free of business logic; every tenant-scoped route carries the
// clinic id as a path parameter.
func RegisterRoutes(app *fiber.App, db *sql.DB, docs service.DocumentService, settings service.SettingsService, clinics service.ClinicService) {
	// Health endpoint checks DB connectivity; healthz is a bare liveness probe.
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	// Superadmin directory. Registered before the tenant-scoped wildcard
	// routes so the static segment wins.
	app.Get("/clinics", ListClinics(clinics))

	// Tenant-scoped document storage.
	app.Get("/:clinicId/documents", ListDocuments(docs))
	app.Post("/:clinicId/documents", UploadDocument(docs))
	app.Get("/:clinicId/documents/:id", GetDocument(docs))
	app.Get("/:clinicId/documents/:id/download", DownloadDocument(docs))
	app.Delete("/:clinicId/documents/:id", DeleteDocument(docs))

	// Tenant-scoped configuration.
	app.Get("/:clinicId/settings", GetSettings(settings))
	app.Patch("/:clinicId/settings", UpdateSettings(settings))
}
