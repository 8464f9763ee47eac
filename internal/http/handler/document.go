package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"clinicadmin/internal/service"
)

// ListDocuments returns a clinic's documents, newest first.
// The optional category query narrows the listing; "all" means no filter.
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clinicID := c.Params("clinicId")
		if _, err := uuid.Parse(clinicID); err != nil {
			return writeDocError(c, fiber.StatusBadRequest, "invalid clinic id")
		}

		docs, err := svc.List(c.UserContext(), clinicID, c.Query("category"))
		if err != nil {
			status, msg := documentErrorStatus(err)
			return writeDocError(c, status, msg)
		}
		return c.JSON(fiber.Map{"success": true, "documents": docs})
	}
}

// UploadDocument accepts a JSON body carrying base64 file data and document
// metadata, and stores the blob plus its metadata row.
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clinicID := c.Params("clinicId")
		if _, err := uuid.Parse(clinicID); err != nil {
			return writeDocError(c, fiber.StatusBadRequest, "invalid clinic id")
		}

		var in service.UploadInput
		if err := c.BodyParser(&in); err != nil {
			return writeDocError(c, fiber.StatusBadRequest, "invalid request body")
		}

		doc, err := svc.Upload(c.UserContext(), clinicID, in)
		if err != nil {
			status, msg := documentErrorStatus(err)
			return writeDocError(c, status, msg)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "document": doc})
	}
}

// GetDocument returns a single document scoped to the clinic.
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clinicID, id, err := tenantDocumentParams(c)
		if err != nil {
			return writeDocError(c, fiber.StatusBadRequest, err.Error())
		}

		doc, err := svc.Get(c.UserContext(), clinicID, id)
		if err != nil {
			status, msg := documentErrorStatus(err)
			return writeDocError(c, status, msg)
		}
		return c.JSON(fiber.Map{"success": true, "document": doc})
	}
}

// DownloadDocument issues a presigned, time-limited download URL for the
// document's blob.
func DownloadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clinicID, id, err := tenantDocumentParams(c)
		if err != nil {
			return writeDocError(c, fiber.StatusBadRequest, err.Error())
		}

		link, err := svc.DownloadURL(c.UserContext(), clinicID, id)
		if err != nil {
			status, msg := documentErrorStatus(err)
			return writeDocError(c, status, msg)
		}
		return c.JSON(fiber.Map{
			"success":     true,
			"downloadUrl": link.URL,
			"fileName":    link.FileName,
		})
	}
}

// DeleteDocument removes the blob (best effort) and the metadata row.
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clinicID, id, err := tenantDocumentParams(c)
		if err != nil {
			return writeDocError(c, fiber.StatusBadRequest, err.Error())
		}

		if err := svc.Delete(c.UserContext(), clinicID, id); err != nil {
			status, msg := documentErrorStatus(err)
			return writeDocError(c, status, msg)
		}
		return c.JSON(fiber.Map{"success": true, "message": "document deleted"})
	}
}

// tenantDocumentParams extracts and validates the clinicId and document id
// path parameters.
func tenantDocumentParams(c *fiber.Ctx) (clinicID, id string, err error) {
	clinicID = c.Params("clinicId")
	if _, err := uuid.Parse(clinicID); err != nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "invalid clinic id")
	}
	id = c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "invalid document id")
	}
	return clinicID, id, nil
}
