package postgres

import (
	"context"
	"database/sql"

	"clinicadmin/internal/model"
	"clinicadmin/internal/repository"
)

// ClinicPostgres is a PostgreSQL implementation of repository.ClinicRepository.
type ClinicPostgres struct {
	db *sql.DB
}

// NewClinicPostgres creates a new ClinicPostgres repository.
func NewClinicPostgres(db *sql.DB) *ClinicPostgres {
	return &ClinicPostgres{db: db}
}

var _ repository.ClinicRepository = (*ClinicPostgres)(nil)

const clinicColumns = `id, name, town, email, phone, contact_name, status, created_at`

func scanClinic(row interface{ Scan(...any) error }) (*model.Clinic, error) {
	var c model.Clinic
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Town,
		&c.Email,
		&c.Phone,
		&c.ContactName,
		&c.Status,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByID fetches one clinic profile by id.
func (r *ClinicPostgres) FindByID(ctx context.Context, id string) (*model.Clinic, error) {
	const q = `
		SELECT ` + clinicColumns + `
		FROM clinics
		WHERE id = $1
	`
	return scanClinic(r.db.QueryRowContext(ctx, q, id))
}

// List returns all clinic profiles, newest first.
func (r *ClinicPostgres) List(ctx context.Context) ([]model.Clinic, error) {
	const q = `
		SELECT ` + clinicColumns + `
		FROM clinics
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Clinic, 0)
	for rows.Next() {
		c, err := scanClinic(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateProfile applies the provided profile fields and stamps updated_at.
// Nil fields keep their stored values via COALESCE.
func (r *ClinicPostgres) UpdateProfile(ctx context.Context, id string, up repository.ClinicProfileUpdate) error {
	const q = `
		UPDATE clinics
		SET name         = COALESCE($2, name),
		    town         = COALESCE($3, town),
		    phone        = COALESCE($4, phone),
		    contact_name = COALESCE($5, contact_name),
		    updated_at   = now()
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, q, id, up.Name, up.Town, up.Phone, up.ContactName)
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
