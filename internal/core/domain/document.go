package domain

import (
	"errors"
	"time"
)

var ErrDocumentNotFound = errors.New("document not found")

// Document is a file attachment recorded against a case. The file body lives
// on disk; only the metadata is stored.
type Document struct {
	ID         string    `json:"id"`
	CaseID     string    `json:"caseId"`
	FileName   string    `json:"fileName"`
	FilePath   string    `json:"filePath"`
	UploadedAt time.Time `json:"uploadedAt"`
}
