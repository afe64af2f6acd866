package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/courtflow/case-management/internal/core/domain"
	"github.com/courtflow/case-management/internal/core/ports"
)

// EndorseGuard is a fast-path idempotency check for judge assignments,
// backed by Redis. A guard failure is never fatal: the notification unique
// index is the backstop.
type EndorseGuard interface {
	Seen(ctx context.Context, judgeID, caseID string) (bool, error)
	Mark(ctx context.Context, judgeID, caseID string) error
}

// CaseService implements the case lifecycle. Every status change loads the
// case, validates the requested edge against the transition table, and
// applies the patch as one atomic document update.
type CaseService struct {
	cases  ports.CaseRepository
	users  ports.UserRepository
	notifs ports.NotificationRepository
	guard  EndorseGuard
	logger zerolog.Logger
}

func NewCaseService(
	cases ports.CaseRepository,
	users ports.UserRepository,
	notifs ports.NotificationRepository,
	guard EndorseGuard,
	logger zerolog.Logger,
) *CaseService {
	return &CaseService{cases: cases, users: users, notifs: notifs, guard: guard, logger: logger}
}

// Create files a new case. Title and the filer's name are mandatory. A case
// registered by a clerk opens as Registered; a self-filed one as Filed.
func (s *CaseService) Create(ctx context.Context, input ports.CreateCaseInput) (*domain.Case, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.FiledByName) == "" {
		return nil, fmt.Errorf("%w: title and filedByName are required", domain.ErrValidation)
	}

	status := domain.StatusFiled
	if input.RegisteredBy != "" {
		status = domain.StatusRegistered
	}

	now := time.Now().UTC()
	c := &domain.Case{
		CaseNumber:        input.CaseNumber,
		Title:             input.Title,
		Description:       input.Description,
		PartiesInvolved:   input.PartiesInvolved,
		FiledByName:       input.FiledByName,
		RegistrationNotes: input.RegistrationNotes,
		RegisteredBy:      input.RegisteredBy,
		Status:            status,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := s.cases.Create(ctx, c)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create case")
		return nil, err
	}

	s.logger.Info().Str("case_id", created.ID).Str("status", string(created.Status)).Msg("case created")
	return created, nil
}

func (s *CaseService) Get(ctx context.Context, id string) (*domain.Case, error) {
	return s.cases.FindByID(ctx, id)
}

func (s *CaseService) List(ctx context.Context, filter ports.ListCasesFilter) ([]*domain.Case, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, filter.Status)
	}
	return s.cases.List(ctx, filter)
}

func (s *CaseService) Delete(ctx context.Context, id string) error {
	if err := s.cases.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("case_id", id).Msg("case deleted")
	return nil
}

// Stats returns the dashboard totals: overall count plus one count per status.
func (s *CaseService) Stats(ctx context.Context) (*ports.CaseStats, error) {
	total, err := s.cases.Count(ctx, "")
	if err != nil {
		return nil, err
	}

	byStatus := make(map[string]int64)
	for _, st := range []domain.CaseStatus{
		domain.StatusFiled, domain.StatusRegistered, domain.StatusSubmitted,
		domain.StatusApproved, domain.StatusDisapproved, domain.StatusAssigned,
		domain.StatusScheduled, domain.StatusJudged,
	} {
		n, err := s.cases.Count(ctx, st)
		if err != nil {
			return nil, err
		}
		byStatus[string(st)] = n
	}

	return &ports.CaseStats{Total: total, ByStatus: byStatus}, nil
}

// Register records clerk registration of a self-filed case (Filed -> Registered).
func (s *CaseService) Register(ctx context.Context, id string, input ports.RegisterCaseInput) (*domain.Case, error) {
	status := domain.StatusRegistered
	return s.transition(ctx, id, status, ports.CasePatch{
		Status:            &status,
		RegistrationNotes: &input.RegistrationNotes,
		RegisteredByName:  &input.ClerkName,
	})
}

// Submit hands the case to the registrar (Filed/Registered -> Submitted).
func (s *CaseService) Submit(ctx context.Context, id string, input ports.SubmitCaseInput) (*domain.Case, error) {
	status := domain.StatusSubmitted
	submitted := true
	return s.transition(ctx, id, status, ports.CasePatch{
		Status:               &status,
		SubmittedToRegistrar: &submitted,
		SubmittedBy:          &input.ClerkID,
		SubmittedByName:      &input.ClerkName,
	})
}

// Approve accepts a submitted case (Submitted -> Approved).
func (s *CaseService) Approve(ctx context.Context, id string, registrarName string) (*domain.Case, error) {
	if strings.TrimSpace(registrarName) == "" {
		return nil, fmt.Errorf("%w: registrarName is required", domain.ErrValidation)
	}
	status := domain.StatusApproved
	submitted := true
	return s.transition(ctx, id, status, ports.CasePatch{
		Status:               &status,
		SubmittedToRegistrar: &submitted,
		RegistrarName:        &registrarName,
	})
}

// Disapprove rejects a submitted case (Submitted -> Disapproved, terminal).
func (s *CaseService) Disapprove(ctx context.Context, id string, registrarName string) (*domain.Case, error) {
	if strings.TrimSpace(registrarName) == "" {
		return nil, fmt.Errorf("%w: registrarName is required", domain.ErrValidation)
	}
	status := domain.StatusDisapproved
	submitted := true
	return s.transition(ctx, id, status, ports.CasePatch{
		Status:               &status,
		SubmittedToRegistrar: &submitted,
		RegistrarName:        &registrarName,
	})
}

// Endorse assigns a judge to an approved case (Approved -> Assigned) and
// emits exactly one assignment notification for the (judge, case) pair.
// The notification write is not transactional with the case update: on
// failure it is logged and left to SyncForJudge to reconcile.
func (s *CaseService) Endorse(ctx context.Context, id string, input ports.EndorseCaseInput) (*ports.EndorseResult, error) {
	if input.JudgeID == "" {
		return nil, fmt.Errorf("%w: judgeId is required", domain.ErrValidation)
	}

	judge, err := s.users.FindByID(ctx, input.JudgeID)
	if err != nil {
		return nil, fmt.Errorf("%w: judgeId does not resolve", domain.ErrNotAJudge)
	}
	if judge.Role != domain.RoleJudge {
		return nil, fmt.Errorf("%w: %s has role %s", domain.ErrNotAJudge, judge.ID, judge.Role)
	}

	status := domain.StatusAssigned
	updated, err := s.transition(ctx, id, status, ports.CasePatch{
		Status:            &status,
		AssignedJudge:     &input.JudgeID,
		AssignedJudgeName: &judge.Fullname,
		EndorsedBy:        &input.RegistrarName,
	})
	if err != nil {
		return nil, err
	}

	notif := s.notifyAssignment(ctx, judge.ID, updated)
	return &ports.EndorseResult{Case: updated, Notification: notif}, nil
}

// notifyAssignment creates the assignment alert idempotently. Any failure is
// non-fatal; the sync endpoint backfills later.
func (s *CaseService) notifyAssignment(ctx context.Context, judgeID string, c *domain.Case) *domain.Notification {
	if s.guard != nil {
		seen, err := s.guard.Seen(ctx, judgeID, c.ID)
		if err != nil {
			s.logger.Warn().Err(err).Str("case_id", c.ID).Msg("endorse guard check failed, continuing")
		} else if seen {
			existing, err := s.notifs.FindByUserAndCase(ctx, judgeID, c.ID)
			if err == nil {
				return existing
			}
		}
	}

	if existing, err := s.notifs.FindByUserAndCase(ctx, judgeID, c.ID); err == nil {
		return existing
	}

	created, err := s.notifs.Create(ctx, &domain.Notification{
		UserID:  judgeID,
		CaseID:  c.ID,
		Title:   c.Title,
		Message: domain.AssignmentMessage(c.Title, c.CaseNumber),
		Status:  domain.NotificationUnread,
		SentAt:  time.Now().UTC(),
	})
	if err != nil {
		if existing, findErr := s.notifs.FindByUserAndCase(ctx, judgeID, c.ID); findErr == nil {
			return existing
		}
		s.logger.Warn().Err(err).
			Str("case_id", c.ID).
			Str("judge_id", judgeID).
			Msg("assignment notification not created, pending sync")
		return nil
	}

	if s.guard != nil {
		if err := s.guard.Mark(ctx, judgeID, c.ID); err != nil {
			s.logger.Warn().Err(err).Str("case_id", c.ID).Msg("failed to mark endorse guard")
		}
	}

	s.logger.Info().Str("case_id", c.ID).Str("judge_id", judgeID).Msg("assignment notification created")
	return created
}

// transition validates the requested edge against the current status and
// applies the patch. The status stays untouched when the edge is illegal.
func (s *CaseService) transition(ctx context.Context, id string, next domain.CaseStatus, patch ports.CasePatch) (*domain.Case, error) {
	current, err := s.cases.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !current.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current.Status, next)
	}

	updated, err := s.cases.Update(ctx, id, patch)
	if err != nil {
		s.logger.Error().Err(err).Str("case_id", id).Str("to", string(next)).Msg("transition update failed")
		return nil, err
	}

	s.logger.Info().
		Str("case_id", id).
		Str("from", string(current.Status)).
		Str("to", string(next)).
		Msg("case transitioned")
	return updated, nil
}
