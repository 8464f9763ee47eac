package service

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"clinicadmin/internal/model"
	"clinicadmin/internal/repository"
	"clinicadmin/internal/storage"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("document not found")
)

// downloadURLValidity is how long a presigned download link stays usable.
// Expiry is enforced by the object store, not by this service.
const downloadURLValidity = 3600 * time.Second

// categoryAll is the client-side sentinel meaning "no category filter".
const categoryAll = "all"

// fileNameSanitizer keeps alphanumerics, dot and hyphen; everything else in a
// client-supplied filename becomes an underscore before it reaches a store key.
var fileNameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// UploadInput is the service-level DTO for a document upload request.
// FileData is a raw base64 string or a data URI (data:<mime>;base64,...).
type UploadInput struct {
	Name           string  `json:"name" validate:"required"`
	FileName       string  `json:"fileName" validate:"required"`
	FileData       string  `json:"fileData" validate:"required"`
	FileType       string  `json:"fileType"`
	FileSize       int64   `json:"fileSize"`
	Category       string  `json:"category"`
	UploadedBy     *string `json:"uploadedBy"`
	UploadedByName string  `json:"uploadedByName"`
}

// DownloadLink is a presigned, time-limited document download.
type DownloadLink struct {
	URL      string `json:"downloadUrl"`
	FileName string `json:"fileName"`
}

// DocumentService defines the use cases for clinic document handling.
// Every operation is scoped to one clinic; a document owned by another clinic
// is indistinguishable from a missing one.
type DocumentService interface {
	// List returns a clinic's documents, newest first; category "" or "all"
	// means no filter.
	List(ctx context.Context, clinicID, category string) ([]model.Document, error)

	// Upload decodes the payload, writes the blob, then inserts the metadata
	// row. If the insert fails the just-written blob is deleted before the
	// insert failure is surfaced.
	Upload(ctx context.Context, clinicID string, in UploadInput) (*model.Document, error)

	// Get returns a single document by id within the clinic.
	Get(ctx context.Context, clinicID, id string) (*model.Document, error)

	// DownloadURL resolves the document and issues a presigned store URL.
	DownloadURL(ctx context.Context, clinicID, id string) (*DownloadLink, error)

	// Delete removes the blob (best effort) and then the metadata row.
	Delete(ctx context.Context, clinicID, id string) error
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	store    storage.Storage
	repo     repository.DocumentRepository
	validate *validator.Validate
	log      zerolog.Logger
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository, log zerolog.Logger) DocumentService {
	return &documentService{
		store:    store,
		repo:     repo,
		validate: validator.New(),
		log:      log.With().Str("component", "document_service").Logger(),
	}
}

func (s *documentService) List(ctx context.Context, clinicID, category string) ([]model.Document, error) {
	if category == categoryAll {
		category = ""
	}
	docs, err := s.repo.ListByClinic(ctx, clinicID, category)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

func (s *documentService) Upload(ctx context.Context, clinicID string, in UploadInput) (*model.Document, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: name, fileName and fileData are required", ErrValidation)
	}

	raw, err := decodeFileData(in.FileData)
	if err != nil {
		return nil, fmt.Errorf("%w: fileData is not valid base64", ErrValidation)
	}

	// Key uniqueness comes from the millisecond timestamp; the sanitized
	// filename keeps the key readable without trusting client input.
	key := fmt.Sprintf("%s/%d_%s", clinicID, time.Now().UnixMilli(), sanitizeFileName(in.FileName))

	fileType := in.FileType
	if fileType == "" {
		fileType = "application/octet-stream"
	}

	// Blob write must complete before the metadata insert is attempted.
	if _, err := s.store.Put(ctx, key, bytes.NewReader(raw), storage.PutObjectOptions{
		Size:        int64(len(raw)),
		ContentType: fileType,
		Metadata:    map[string]string{"original-filename": in.FileName},
	}); err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	fileSize := in.FileSize
	if fileSize <= 0 {
		fileSize = int64(len(raw))
	}
	category := in.Category
	if category == "" {
		category = model.DefaultCategory
	}
	uploaderName := in.UploadedByName
	if uploaderName == "" {
		uploaderName = model.DefaultUploaderName
	}

	doc := &model.Document{
		ClinicID:       clinicID,
		Name:           in.Name,
		FileName:       in.FileName,
		FilePath:       key,
		FileSize:       fileSize,
		FileType:       fileType,
		Category:       category,
		UploadedBy:     in.UploadedBy,
		UploadedByName: uploaderName,
	}

	var stored *model.Document
	insert := func(ctx context.Context) error {
		var err error
		if stored, err = s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("db save failed: %w", err)
		}
		return nil
	}
	undo := func(ctx context.Context) error {
		s.log.Warn().Str("clinic_id", clinicID).Str("file_path", key).
			Msg("metadata insert failed, removing uploaded blob")
		return s.store.Delete(ctx, key)
	}
	if err := withCompensation(ctx, insert, undo); err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *documentService) Get(ctx context.Context, clinicID, id string) (*model.Document, error) {
	doc, err := s.repo.FindByID(ctx, clinicID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) DownloadURL(ctx context.Context, clinicID, id string) (*DownloadLink, error) {
	doc, err := s.Get(ctx, clinicID, id)
	if err != nil {
		return nil, err
	}
	u, err := s.store.PresignGet(ctx, doc.FilePath, downloadURLValidity)
	if err != nil {
		return nil, fmt.Errorf("presign download: %w", err)
	}
	return &DownloadLink{URL: u, FileName: doc.FileName}, nil
}

// Delete removes the blob first, then the metadata row. A blob delete failure
// is logged and skipped; the metadata row is the system of record, so its
// removal must succeed for the operation to succeed.
func (s *documentService) Delete(ctx context.Context, clinicID, id string) error {
	doc, err := s.repo.FindByID(ctx, clinicID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if err := s.store.Delete(ctx, doc.FilePath); err != nil {
		s.log.Warn().Err(err).Str("clinic_id", clinicID).Str("file_path", doc.FilePath).
			Msg("blob delete failed, continuing with metadata removal")
	}
	if err := s.repo.Delete(ctx, clinicID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("delete metadata: %w", err)
	}
	return nil
}

// decodeFileData decodes a raw base64 string, stripping a data URI prefix
// (data:<mime>;base64,) when present.
func decodeFileData(data string) ([]byte, error) {
	if strings.HasPrefix(data, "data:") {
		if i := strings.Index(data, ";base64,"); i >= 0 {
			data = data[i+len(";base64,"):]
		}
	}
	return base64.StdEncoding.DecodeString(data)
}

func sanitizeFileName(name string) string {
	return fileNameSanitizer.ReplaceAllString(name, "_")
}
