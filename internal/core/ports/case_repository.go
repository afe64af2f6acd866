package ports

import (
	"context"

	"github.com/courtflow/case-management/internal/core/domain"
)

// ListCasesFilter carries the field-equality filters for listing cases.
// Zero values mean "no filter". Results are returned newest first.
type ListCasesFilter struct {
	Status        domain.CaseStatus
	RegisteredBy  string
	AssignedJudge string
}

// CasePatch is a partial update applied atomically to a single case document.
// Nil fields are left untouched; the repository always bumps updated_at.
// Lifecycle operations are the only writers of Status.
type CasePatch struct {
	Status               *domain.CaseStatus
	RegistrationNotes    *string
	RegisteredByName     *string
	SubmittedToRegistrar *bool
	SubmittedBy          *string
	SubmittedByName      *string
	AssignedJudge        *string
	AssignedJudgeName    *string
	EndorsedBy           *string
	RegistrarName        *string
}

// CaseRepository defines persistence operations for cases.
type CaseRepository interface {
	Create(ctx context.Context, c *domain.Case) (*domain.Case, error)
	FindByID(ctx context.Context, id string) (*domain.Case, error)
	List(ctx context.Context, filter ListCasesFilter) ([]*domain.Case, error)
	// Update applies patch to the case in a single atomic document update and
	// returns the updated case. ErrCaseNotFound when id does not resolve.
	Update(ctx context.Context, id string, patch CasePatch) (*domain.Case, error)
	Delete(ctx context.Context, id string) error
	// Count returns the number of cases, optionally restricted to one status
	// (empty status counts everything).
	Count(ctx context.Context, status domain.CaseStatus) (int64, error)
}
