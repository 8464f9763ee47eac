package model

import "time"

// Document represents one uploaded file belonging to a clinic.
// This is a pure domain model with no database-specific dependencies or tags.
// It can be used across layers (HTTP, service, storage) without coupling to persistence.
type Document struct {
	ID             string    `json:"id"`
	ClinicID       string    `json:"clinic_id"`
	Name           string    `json:"name"`
	FileName       string    `json:"file_name"`
	FilePath       string    `json:"file_path"`
	FileSize       int64     `json:"file_size"`
	FileType       string    `json:"file_type"`
	Category       string    `json:"category"`
	UploadedBy     *string   `json:"uploaded_by,omitempty"`
	UploadedByName string    `json:"uploaded_by_name"`
	CreatedAt      time.Time `json:"created_at"`
}

// DefaultCategory is applied when an upload does not name a category.
const DefaultCategory = "other"

// DefaultUploaderName is stored when an upload does not name the actor.
const DefaultUploaderName = "Unknown"
