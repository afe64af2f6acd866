package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/courtflow/case-management/internal/core/domain"
	"github.com/courtflow/case-management/internal/core/ports"
	"github.com/courtflow/case-management/internal/pkg/clock"
)

// ScheduleService books hearings and applies the read-time status projection
// to every listing. The projection is pure: the stored status field is a
// weak default and is never written back.
type ScheduleService struct {
	schedules ports.ScheduleRepository
	cases     ports.CaseRepository
	clock     clock.Clock
	logger    zerolog.Logger
}

func NewScheduleService(
	schedules ports.ScheduleRepository,
	cases ports.CaseRepository,
	clk clock.Clock,
	logger zerolog.Logger,
) *ScheduleService {
	if clk == nil {
		clk = clock.System{}
	}
	return &ScheduleService{schedules: schedules, cases: cases, clock: clk, logger: logger}
}

// Create books a hearing. The case must exist and be Assigned; booking
// transitions it to Scheduled. The case update after a successful schedule
// insert is non-fatal: a failure is logged as a reconcilable inconsistency.
func (s *ScheduleService) Create(ctx context.Context, input ports.CreateScheduleInput) (*domain.Schedule, error) {
	if input.CaseID == "" || input.AssignedJudge == "" || strings.TrimSpace(input.Room) == "" ||
		input.StartDate.IsZero() || input.EndDate.IsZero() ||
		strings.TrimSpace(input.StartTime) == "" || strings.TrimSpace(input.EndTime) == "" {
		return nil, fmt.Errorf("%w: all hearing fields are required", domain.ErrValidation)
	}

	c, err := s.cases.FindByID(ctx, input.CaseID)
	if err != nil {
		return nil, err
	}
	if !c.Status.CanTransitionTo(domain.StatusScheduled) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, c.Status, domain.StatusScheduled)
	}

	created, err := s.schedules.Create(ctx, &domain.Schedule{
		CaseID:        input.CaseID,
		AssignedJudge: input.AssignedJudge,
		StartDate:     input.StartDate,
		StartTime:     input.StartTime,
		EndDate:       input.EndDate,
		EndTime:       input.EndTime,
		Room:          input.Room,
		Status:        domain.HearingScheduled,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("case_id", input.CaseID).Msg("failed to create schedule")
		return nil, err
	}

	status := domain.StatusScheduled
	if _, err := s.cases.Update(ctx, input.CaseID, ports.CasePatch{Status: &status}); err != nil {
		s.logger.Warn().Err(err).
			Str("case_id", input.CaseID).
			Str("schedule_id", created.ID).
			Msg("hearing booked but case status not updated")
	}

	s.logger.Info().
		Str("schedule_id", created.ID).
		Str("case_id", input.CaseID).
		Str("room", input.Room).
		Msg("hearing scheduled")
	return created, nil
}

func (s *ScheduleService) List(ctx context.Context) ([]*domain.HearingView, error) {
	return s.list(ctx, "", false)
}

func (s *ScheduleService) ListByJudge(ctx context.Context, judgeID string) ([]*domain.HearingView, error) {
	return s.list(ctx, judgeID, false)
}

func (s *ScheduleService) ProgressByJudge(ctx context.Context, judgeID string) ([]*domain.HearingView, error) {
	return s.list(ctx, judgeID, true)
}

// list fetches hearings (repository order: start ascending) and projects the
// display status for each record at the current instant.
func (s *ScheduleService) list(ctx context.Context, judgeID string, withProgress bool) ([]*domain.HearingView, error) {
	views, err := s.schedules.List(ctx, judgeID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	for _, v := range views {
		v.Status = domain.ProjectScheduleStatus(v.StartAt(), v.EndAt(), now)
		if withProgress {
			v.Progress = v.Status.Progress()
			v.Color = v.Status.Color()
		}
	}
	return views, nil
}
