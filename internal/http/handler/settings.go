package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"clinicadmin/internal/service"
)

// GetSettings returns the clinic profile and its grouped settings. Clinics
// without a settings row get one created on the fly (or in-memory defaults if
// that fails), so this never 404s for an existing clinic.
func GetSettings(svc service.SettingsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clinicID := c.Params("clinicId")
		if _, err := uuid.Parse(clinicID); err != nil {
			return writeSettingsError(c, fiber.StatusBadRequest, "invalid clinic id")
		}

		res, err := svc.Get(c.UserContext(), clinicID)
		if err != nil {
			if errors.Is(err, service.ErrClinicNotFound) {
				return writeSettingsError(c, fiber.StatusNotFound, service.ErrClinicNotFound.Error())
			}
			return writeSettingsError(c, fiber.StatusInternalServerError, "failed to load settings")
		}
		return c.JSON(res)
	}
}

// UpdateSettings applies a partial update to the clinic profile and settings.
// Omitted fields keep their stored values; business_hours is replaced whole.
func UpdateSettings(svc service.SettingsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clinicID := c.Params("clinicId")
		if _, err := uuid.Parse(clinicID); err != nil {
			return writeSettingsError(c, fiber.StatusBadRequest, "invalid clinic id")
		}

		var in service.SettingsUpdateInput
		if err := c.BodyParser(&in); err != nil {
			return writeSettingsError(c, fiber.StatusBadRequest, "invalid request body")
		}

		if err := svc.Update(c.UserContext(), clinicID, in); err != nil {
			if errors.Is(err, service.ErrClinicNotFound) {
				return writeSettingsError(c, fiber.StatusNotFound, service.ErrClinicNotFound.Error())
			}
			return writeSettingsError(c, fiber.StatusInternalServerError, "failed to update settings")
		}
		return c.JSON(fiber.Map{"success": true, "message": "settings updated"})
	}
}
