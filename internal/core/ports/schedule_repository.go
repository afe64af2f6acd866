package ports

import (
	"context"

	"github.com/courtflow/case-management/internal/core/domain"
)

// ScheduleRepository defines persistence operations for hearing schedules.
type ScheduleRepository interface {
	Create(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error)
	// List returns hearings sorted ascending by start date then start time,
	// with the referenced case and judge summaries embedded. An empty judgeID
	// returns all hearings. Status comes back as stored; the service layer
	// re-derives it before anything leaves the API.
	List(ctx context.Context, judgeID string) ([]*domain.HearingView, error)
}
