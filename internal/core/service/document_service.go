package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/courtflow/case-management/internal/core/domain"
	"github.com/courtflow/case-management/internal/core/ports"
)

// DocumentService stores uploaded file bodies through the FileStore and
// records the metadata against the owning case.
type DocumentService struct {
	documents ports.DocumentRepository
	cases     ports.CaseRepository
	store     ports.FileStore
	logger    zerolog.Logger
}

func NewDocumentService(
	documents ports.DocumentRepository,
	cases ports.CaseRepository,
	store ports.FileStore,
	logger zerolog.Logger,
) *DocumentService {
	return &DocumentService{documents: documents, cases: cases, store: store, logger: logger}
}

func (s *DocumentService) Upload(ctx context.Context, caseID, fileName string, r io.Reader) (*domain.Document, error) {
	if fileName == "" {
		return nil, fmt.Errorf("%w: file name is required", domain.ErrValidation)
	}

	if _, err := s.cases.FindByID(ctx, caseID); err != nil {
		return nil, err
	}

	path, err := s.store.Save(fileName, r)
	if err != nil {
		s.logger.Error().Err(err).Str("case_id", caseID).Msg("failed to store document file")
		return nil, err
	}

	created, err := s.documents.Create(ctx, &domain.Document{
		CaseID:     caseID,
		FileName:   fileName,
		FilePath:   path,
		UploadedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("document_id", created.ID).Str("case_id", caseID).Msg("document uploaded")
	return created, nil
}

func (s *DocumentService) ListByCase(ctx context.Context, caseID string) ([]*domain.Document, error) {
	return s.documents.ListByCase(ctx, caseID)
}
