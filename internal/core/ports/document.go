package ports

import (
	"context"
	"io"

	"github.com/courtflow/case-management/internal/core/domain"
)

// FileStore persists uploaded file bodies. Save returns the stored path
// recorded on the document.
type FileStore interface {
	Save(fileName string, r io.Reader) (string, error)
}

// DocumentRepository defines persistence operations for document metadata.
type DocumentRepository interface {
	Create(ctx context.Context, d *domain.Document) (*domain.Document, error)
	ListByCase(ctx context.Context, caseID string) ([]*domain.Document, error)
}

// DocumentService attaches uploaded files to cases.
type DocumentService interface {
	Upload(ctx context.Context, caseID, fileName string, r io.Reader) (*domain.Document, error)
	ListByCase(ctx context.Context, caseID string) ([]*domain.Document, error)
}
