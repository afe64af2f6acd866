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

// JudgmentService records verdicts. Recording is coupled to the terminal
// case transition: the judgment only persists when the case can legally
// move to Judged.
type JudgmentService struct {
	judgments ports.JudgmentRepository
	cases     ports.CaseRepository
	logger    zerolog.Logger
}

func NewJudgmentService(
	judgments ports.JudgmentRepository,
	cases ports.CaseRepository,
	logger zerolog.Logger,
) *JudgmentService {
	return &JudgmentService{judgments: judgments, cases: cases, logger: logger}
}

func (s *JudgmentService) Record(ctx context.Context, input ports.RecordJudgmentInput) (*domain.Judgment, error) {
	if input.CaseID == "" || input.JudgeID == "" ||
		strings.TrimSpace(input.JudgmentText) == "" || strings.TrimSpace(input.Verdict) == "" {
		return nil, fmt.Errorf("%w: caseId, judgeId, verdict and judgmentText are required", domain.ErrValidation)
	}

	c, err := s.cases.FindByID(ctx, input.CaseID)
	if err != nil {
		return nil, err
	}
	if !c.Status.CanTransitionTo(domain.StatusJudged) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, c.Status, domain.StatusJudged)
	}

	created, err := s.judgments.Create(ctx, &domain.Judgment{
		CaseID:       input.CaseID,
		JudgmentText: input.JudgmentText,
		Verdict:      input.Verdict,
		JudgeID:      input.JudgeID,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("case_id", input.CaseID).Msg("failed to record judgment")
		return nil, err
	}

	status := domain.StatusJudged
	if _, err := s.cases.Update(ctx, input.CaseID, ports.CasePatch{Status: &status}); err != nil {
		s.logger.Warn().Err(err).
			Str("case_id", input.CaseID).
			Str("judgment_id", created.ID).
			Msg("judgment recorded but case status not updated")
	}

	s.logger.Info().
		Str("judgment_id", created.ID).
		Str("case_id", input.CaseID).
		Str("verdict", input.Verdict).
		Msg("judgment recorded")
	return created, nil
}

func (s *JudgmentService) ListByCase(ctx context.Context, caseID string) ([]*domain.Judgment, error) {
	return s.judgments.ListByCase(ctx, caseID)
}
