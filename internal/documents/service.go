package documents

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"cvreview-backend/internal/extract"
	"cvreview-backend/internal/shared/storage/object"
	"cvreview-backend/internal/shared/telemetry"
)

// Service contains business logic for documents.
type Service struct {
	Store object.ObjectStore
	Repo  DocumentsRepo
}

// Upload saves the file to object storage, records the document and
// extracts its text. Extraction failure does not fail the upload; the
// analysis path re-extracts on demand.
func (s *Service) Upload(ctx context.Context, userID, fileName string, r io.Reader) (Document, error) {
	if fileName == "" {
		return Document{}, ErrInvalidInput
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userID, fileName, r)
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		ID:         uuid.NewString(),
		UserID:     userID,
		FileName:   fileName,
		MimeType:   mimeType,
		SizeBytes:  size,
		StorageKey: storageKey,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}

	if _, err := extract.ExtractText(ctx, s.Store, doc.StorageKey, doc.MimeType, doc.FileName); err != nil {
		telemetry.Warn("documents.extract_failed", map[string]any{"document_id": doc.ID, "error": err.Error()})
		return doc, nil
	}
	extractedAt := time.Now().UTC()
	doc.ExtractedTextKey = doc.StorageKey + ".extracted.txt"
	doc.ExtractedAt = &extractedAt
	if err := s.Repo.UpdateExtraction(ctx, userID, doc.ID, doc.ExtractedTextKey, extractedAt); err != nil {
		telemetry.Warn("documents.extraction_update_failed", map[string]any{"document_id": doc.ID, "error": err.Error()})
	}
	return doc, nil
}

// Current returns the most recent document for a user.
func (s *Service) Current(ctx context.Context, userID string) (Document, error) {
	if userID == "" {
		return Document{}, errors.New("user id required")
	}
	return s.Repo.GetCurrentByUser(ctx, userID)
}

// Get returns a document by ID for a user.
func (s *Service) Get(ctx context.Context, userID, documentID string) (Document, error) {
	if userID == "" || documentID == "" {
		return Document{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, documentID)
}

// List returns a user's documents, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Document, error) {
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}
