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
)

func documentRows(docs ...model.Document) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "clinic_id", "name", "file_name", "file_path", "file_size",
		"file_type", "category", "uploaded_by", "uploaded_by_name", "created_at",
	})
	for _, d := range docs {
		rows.AddRow(d.ID, d.ClinicID, d.Name, d.FileName, d.FilePath, d.FileSize,
			d.FileType, d.Category, d.UploadedBy, d.UploadedByName, d.CreatedAt)
	}
	return rows
}

func TestDocumentPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	uploader := "user-1"
	doc := model.Document{
		ID:             "doc-uuid",
		ClinicID:       "clinic-uuid",
		Name:           "Insurance Policy",
		FileName:       "policy.pdf",
		FilePath:       "clinic-uuid/1700000000000_policy.pdf",
		FileSize:       2048,
		FileType:       "application/pdf",
		Category:       "insurance",
		UploadedBy:     &uploader,
		UploadedByName: "Dr. Adams",
		CreatedAt:      time.Now().UTC(),
	}

	mock.ExpectQuery("INSERT INTO clinic_documents").
		WithArgs(doc.ClinicID, doc.Name, doc.FileName, doc.FilePath, doc.FileSize,
			doc.FileType, doc.Category, doc.UploadedBy, doc.UploadedByName).
		WillReturnRows(documentRows(doc))

	result, err := repo.Create(ctx, &doc)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, doc.ID, result.ID)
	assert.Equal(t, doc.ClinicID, result.ClinicID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		doc := model.Document{
			ID:             "doc-1",
			ClinicID:       "clinic-1",
			Name:           "License",
			FileName:       "license.pdf",
			FilePath:       "clinic-1/1_license.pdf",
			FileSize:       100,
			FileType:       "application/pdf",
			Category:       "legal",
			UploadedByName: "Unknown",
			CreatedAt:      time.Now(),
		}

		mock.ExpectQuery("SELECT (.+) FROM clinic_documents WHERE id = \\$1 AND clinic_id = \\$2").
			WithArgs("doc-1", "clinic-1").
			WillReturnRows(documentRows(doc))

		got, err := repo.FindByID(ctx, "clinic-1", "doc-1")

		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, "doc-1", got.ID)
		assert.Nil(t, got.UploadedBy)
	})

	t.Run("wrong clinic is not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM clinic_documents WHERE id = \\$1 AND clinic_id = \\$2").
			WithArgs("doc-1", "other-clinic").
			WillReturnError(sql.ErrNoRows)

		got, err := repo.FindByID(ctx, "other-clinic", "doc-1")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, sql.ErrNoRows))
		assert.Nil(t, got)
	})
}

func TestDocumentPostgres_ListByClinic(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("all categories", func(t *testing.T) {
		rows := documentRows(
			model.Document{ID: "d2", ClinicID: "clinic-1", Category: "other", CreatedAt: time.Now()},
			model.Document{ID: "d1", ClinicID: "clinic-1", Category: "insurance", CreatedAt: time.Now().Add(-time.Hour)},
		)

		mock.ExpectQuery("SELECT (.+) FROM clinic_documents WHERE clinic_id = \\$1 ORDER BY created_at DESC").
			WithArgs("clinic-1").
			WillReturnRows(rows)

		docs, err := repo.ListByClinic(ctx, "clinic-1", "")

		assert.NoError(t, err)
		assert.Len(t, docs, 2)
		assert.Equal(t, "d2", docs[0].ID)
	})

	t.Run("single category", func(t *testing.T) {
		rows := documentRows(
			model.Document{ID: "d1", ClinicID: "clinic-1", Category: "insurance", CreatedAt: time.Now()},
		)

		mock.ExpectQuery("SELECT (.+) FROM clinic_documents WHERE clinic_id = \\$1 AND category = \\$2").
			WithArgs("clinic-1", "insurance").
			WillReturnRows(rows)

		docs, err := repo.ListByClinic(ctx, "clinic-1", "insurance")

		assert.NoError(t, err)
		assert.Len(t, docs, 1)
		assert.Equal(t, "insurance", docs[0].Category)
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM clinic_documents WHERE clinic_id = \\$1 ORDER BY created_at DESC").
			WithArgs("clinic-empty").
			WillReturnRows(documentRows())

		docs, err := repo.ListByClinic(ctx, "clinic-empty", "")

		assert.NoError(t, err)
		assert.NotNil(t, docs)
		assert.Len(t, docs, 0)
	})
}

func TestDocumentPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM clinic_documents WHERE id = \\$1 AND clinic_id = \\$2").
			WithArgs("doc-1", "clinic-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(ctx, "clinic-1", "doc-1")

		assert.NoError(t, err)
	})

	t.Run("miss reported as no rows", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM clinic_documents WHERE id = \\$1 AND clinic_id = \\$2").
			WithArgs("doc-1", "other-clinic").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, "other-clinic", "doc-1")

		assert.True(t, errors.Is(err, sql.ErrNoRows))
	})
}
