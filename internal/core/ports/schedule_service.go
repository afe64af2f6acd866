package ports

import (
	"context"
	"time"

	"github.com/courtflow/case-management/internal/core/domain"
)

// CreateScheduleInput carries all data needed to book a hearing. Every field
// is required; the case must currently be Assigned.
type CreateScheduleInput struct {
	CaseID        string
	AssignedJudge string
	StartDate     time.Time
	StartTime     string
	EndDate       time.Time
	EndTime       string
	Room          string
}

// ScheduleService books hearings and serves read-time-projected listings.
type ScheduleService interface {
	// Create books the hearing and transitions the case Assigned -> Scheduled.
	Create(ctx context.Context, input CreateScheduleInput) (*domain.Schedule, error)
	// List returns all hearings with the display status derived from the clock.
	List(ctx context.Context) ([]*domain.HearingView, error)
	// ListByJudge is List scoped to one judge.
	ListByJudge(ctx context.Context, judgeID string) ([]*domain.HearingView, error)
	// ProgressByJudge is ListByJudge with progress percentage and color filled.
	ProgressByJudge(ctx context.Context, judgeID string) ([]*domain.HearingView, error)
}
