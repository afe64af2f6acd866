package ports

import (
	"context"

	"github.com/courtflow/case-management/internal/core/domain"
)

// CreateCaseInput carries the data for filing a new case. When RegisteredBy
// is set (clerk walk-in registration) the case opens as Registered; a
// self-filed case opens as Filed and awaits clerk registration.
type CreateCaseInput struct {
	CaseNumber        string
	Title             string
	Description       string
	PartiesInvolved   string
	FiledByName       string
	RegistrationNotes string
	RegisteredBy      string
}

// RegisterCaseInput carries the clerk registration of a self-filed case.
type RegisterCaseInput struct {
	RegistrationNotes string
	ClerkName         string
}

// SubmitCaseInput carries the clerk handing a case to the registrar.
type SubmitCaseInput struct {
	ClerkID   string
	ClerkName string
}

// EndorseCaseInput carries the registrar assigning a judge to an approved case.
type EndorseCaseInput struct {
	JudgeID       string
	RegistrarName string
}

// EndorseResult is returned by Endorse: the updated case plus the assignment
// notification (existing one on idempotent replay, nil if the notification
// write failed and was deferred to sync).
type EndorseResult struct {
	Case         *domain.Case
	Notification *domain.Notification
}

// CaseStats is the dashboard aggregate over cases.
type CaseStats struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
}

// CaseService owns the case lifecycle: every status change is a guarded
// transition validated against the state machine in domain.
type CaseService interface {
	Create(ctx context.Context, input CreateCaseInput) (*domain.Case, error)
	Get(ctx context.Context, id string) (*domain.Case, error)
	List(ctx context.Context, filter ListCasesFilter) ([]*domain.Case, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*CaseStats, error)

	Register(ctx context.Context, id string, input RegisterCaseInput) (*domain.Case, error)
	Submit(ctx context.Context, id string, input SubmitCaseInput) (*domain.Case, error)
	Approve(ctx context.Context, id string, registrarName string) (*domain.Case, error)
	Disapprove(ctx context.Context, id string, registrarName string) (*domain.Case, error)
	Endorse(ctx context.Context, id string, input EndorseCaseInput) (*EndorseResult, error)
}
