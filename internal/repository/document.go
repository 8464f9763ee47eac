package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
//
// Every document access is scoped by clinic ID. Lookups that take both an id
// and a clinic ID must filter on both; a document belonging to another clinic
// behaves exactly like a missing row. Keeping the tenant key in every method
// signature is what prevents a forgotten filter from leaking cross-tenant data.

import (
	"context"

	"clinicadmin/internal/model"
)

// DocumentRepository defines data access for clinic documents using SQL
// queries only. No business logic here - strictly persistence operations.
type DocumentRepository interface {
	// Create inserts a new document row. The id and created_at come from the
	// database; the returned document carries them.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns the document matching both id and clinicID.
	// Missing rows surface as sql.ErrNoRows.
	FindByID(ctx context.Context, clinicID, id string) (*model.Document, error)

	// ListByClinic returns all documents of a clinic, newest first.
	// An empty category means no category filter.
	ListByClinic(ctx context.Context, clinicID, category string) ([]model.Document, error)

	// Delete removes the document matching both id and clinicID.
	// Returns sql.ErrNoRows if no row matched.
	Delete(ctx context.Context, clinicID, id string) error
}
