package handler

import (
	"github.com/gofiber/fiber/v2"

	"clinicadmin/internal/service"
)

// ListClinics is the superadmin directory listing of all clinics.
func ListClinics(svc service.ClinicService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clinics, err := svc.List(c.UserContext())
		if err != nil {
			return writeDocError(c, fiber.StatusInternalServerError, "internal server error")
		}
		return c.JSON(fiber.Map{"success": true, "clinics": clinics})
	}
}
