package postgres

import (
	"context"
	"database/sql"

	"clinicadmin/internal/model"
	"clinicadmin/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
// Every query that touches a single document filters on id AND clinic_id.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = `id, clinic_id, name, file_name, file_path, file_size, file_type, category, uploaded_by, uploaded_by_name, created_at`

func scanDocument(row interface{ Scan(...any) error }) (*model.Document, error) {
	var d model.Document
	if err := row.Scan(
		&d.ID,
		&d.ClinicID,
		&d.Name,
		&d.FileName,
		&d.FilePath,
		&d.FileSize,
		&d.FileType,
		&d.Category,
		&d.UploadedBy,
		&d.UploadedByName,
		&d.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new document row and returns the stored record,
// including the server-assigned id and created_at.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO clinic_documents (clinic_id, name, file_name, file_path, file_size, file_type, category, uploaded_by, uploaded_by_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.ClinicID,
		doc.Name,
		doc.FileName,
		doc.FilePath,
		doc.FileSize,
		doc.FileType,
		doc.Category,
		doc.UploadedBy,
		doc.UploadedByName,
	)
	return scanDocument(row)
}

// FindByID fetches a single document scoped by id and clinic.
func (r *DocumentPostgres) FindByID(ctx context.Context, clinicID, id string) (*model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM clinic_documents
		WHERE id = $1 AND clinic_id = $2
	`
	return scanDocument(r.db.QueryRowContext(ctx, q, id, clinicID))
}

// ListByClinic returns a clinic's documents, newest first, optionally
// restricted to one category.
func (r *DocumentPostgres) ListByClinic(ctx context.Context, clinicID, category string) ([]model.Document, error) {
	const qAll = `
		SELECT ` + documentColumns + `
		FROM clinic_documents
		WHERE clinic_id = $1
		ORDER BY created_at DESC, id DESC
	`
	const qCategory = `
		SELECT ` + documentColumns + `
		FROM clinic_documents
		WHERE clinic_id = $1 AND category = $2
		ORDER BY created_at DESC, id DESC
	`

	var (
		rows *sql.Rows
		err  error
	)
	if category == "" {
		rows, err = r.db.QueryContext(ctx, qAll, clinicID)
	} else {
		rows, err = r.db.QueryContext(ctx, qCategory, clinicID, category)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a document scoped by id and clinic. A miss (already deleted,
// or owned by another clinic) is reported as sql.ErrNoRows.
func (r *DocumentPostgres) Delete(ctx context.Context, clinicID, id string) error {
	const q = `DELETE FROM clinic_documents WHERE id = $1 AND clinic_id = $2`
	res, err := r.db.ExecContext(ctx, q, id, clinicID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
