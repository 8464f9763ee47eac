package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"clinicadmin/internal/model"
	"clinicadmin/internal/repository"
)

func clinicRows(clinics ...model.Clinic) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "name", "town", "email", "phone", "contact_name", "status", "created_at",
	})
	for _, c := range clinics {
		rows.AddRow(c.ID, c.Name, c.Town, c.Email, c.Phone, c.ContactName, c.Status, c.CreatedAt)
	}
	return rows
}

func TestClinicPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewClinicPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		clinic := model.Clinic{
			ID:          "clinic-1",
			Name:        "Sunrise Dental",
			Town:        "Worthing",
			Email:       "admin@sunrise.example",
			Phone:       "01903 000000",
			ContactName: "Jane Field",
			Status:      "active",
			CreatedAt:   time.Now(),
		}

		mock.ExpectQuery("SELECT (.+) FROM clinics WHERE id = \\$1").
			WithArgs("clinic-1").
			WillReturnRows(clinicRows(clinic))

		got, err := repo.FindByID(ctx, "clinic-1")

		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, "Sunrise Dental", got.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM clinics WHERE id = \\$1").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		got, err := repo.FindByID(ctx, "missing")

		assert.True(t, errors.Is(err, sql.ErrNoRows))
		assert.Nil(t, got)
	})
}

func TestClinicPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewClinicPostgres(db)
	ctx := context.Background()

	rows := clinicRows(
		model.Clinic{ID: "c2", Name: "Beta Clinic", CreatedAt: time.Now()},
		model.Clinic{ID: "c1", Name: "Alpha Clinic", CreatedAt: time.Now().Add(-time.Hour)},
	)

	mock.ExpectQuery("SELECT (.+) FROM clinics ORDER BY created_at DESC").
		WillReturnRows(rows)

	clinics, err := repo.List(ctx)

	assert.NoError(t, err)
	assert.Len(t, clinics, 2)
	assert.Equal(t, "c2", clinics[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClinicPostgres_UpdateProfile(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewClinicPostgres(db)
	ctx := context.Background()

	name := "Renamed Clinic"
	town := "Brighton"

	t.Run("partial update keeps omitted fields", func(t *testing.T) {
		mock.ExpectExec("UPDATE clinics SET name = COALESCE\\(\\$2, name\\)").
			WithArgs("clinic-1", name, town, nil, nil).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateProfile(ctx, "clinic-1", repository.ClinicProfileUpdate{
			Name: &name,
			Town: &town,
		})

		assert.NoError(t, err)
	})

	t.Run("unknown clinic", func(t *testing.T) {
		mock.ExpectExec("UPDATE clinics SET name = COALESCE\\(\\$2, name\\)").
			WithArgs("missing", name, nil, nil, nil).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateProfile(ctx, "missing", repository.ClinicProfileUpdate{Name: &name})

		assert.True(t, errors.Is(err, sql.ErrNoRows))
	})
}
