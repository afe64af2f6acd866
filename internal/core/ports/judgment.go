package ports

import (
	"context"

	"github.com/courtflow/case-management/internal/core/domain"
)

// JudgmentRepository defines persistence operations for judgments.
type JudgmentRepository interface {
	Create(ctx context.Context, j *domain.Judgment) (*domain.Judgment, error)
	ListByCase(ctx context.Context, caseID string) ([]*domain.Judgment, error)
}

// RecordJudgmentInput carries the verdict entered by the assigned judge.
type RecordJudgmentInput struct {
	CaseID       string
	JudgmentText string
	Verdict      string
	JudgeID      string
}

// JudgmentService records verdicts and closes the case.
type JudgmentService interface {
	// Record persists the judgment and transitions the case to Judged.
	Record(ctx context.Context, input RecordJudgmentInput) (*domain.Judgment, error)
	ListByCase(ctx context.Context, caseID string) ([]*domain.Judgment, error)
}
