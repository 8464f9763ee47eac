package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"clinicadmin/internal/service"
)

// docErrorPayload is the error body of the documents routes.
type docErrorPayload struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// writeDocError writes the documents-route error shape:
// {"success":false,"error":"..."} with a human-readable, safe message.
func writeDocError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(docErrorPayload{Success: false, Error: message})
}

// writeSettingsError writes the settings-route error shape: {"error":"..."}.
func writeSettingsError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// documentErrorStatus maps a document service error to an HTTP status and a
// safe message. Internal failures never leak their details to the caller.
func documentErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound, service.ErrNotFound.Error()
	default:
		return fiber.StatusInternalServerError, "internal server error"
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes
// responses for errors that escape the route handlers.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeDocError(c, status, "bad request")
		case fiber.StatusNotFound:
			return writeDocError(c, status, "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeDocError(c, status, "method not allowed")
		default:
			return writeDocError(c, status, "internal server error")
		}
	}
}
