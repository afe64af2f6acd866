package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/courtflow/case-management/internal/core/domain"
	"github.com/courtflow/case-management/internal/core/ports"
)

// NotificationService serves judge alerts and reconciles missing ones
// against the assigned cases (the source of truth).
type NotificationService struct {
	notifs ports.NotificationRepository
	cases  ports.CaseRepository
	logger zerolog.Logger
}

func NewNotificationService(
	notifs ports.NotificationRepository,
	cases ports.CaseRepository,
	logger zerolog.Logger,
) *NotificationService {
	return &NotificationService{notifs: notifs, cases: cases, logger: logger}
}

func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	return s.notifs.ListByUser(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	return s.notifs.MarkRead(ctx, id)
}

// SyncForJudge backfills an assignment notification for every case assigned
// to the judge that lacks one. Safe to re-run: existing pairs are skipped,
// and a concurrent insert racing the existence check is absorbed by the
// unique index.
func (s *NotificationService) SyncForJudge(ctx context.Context, judgeID string) (int, error) {
	assigned, err := s.cases.List(ctx, ports.ListCasesFilter{
		AssignedJudge: judgeID,
		Status:        domain.StatusAssigned,
	})
	if err != nil {
		return 0, err
	}

	created := 0
	for _, c := range assigned {
		if _, err := s.notifs.FindByUserAndCase(ctx, judgeID, c.ID); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrNotificationNotFound) {
			return created, err
		}

		_, err := s.notifs.Create(ctx, &domain.Notification{
			UserID:  judgeID,
			CaseID:  c.ID,
			Title:   c.Title,
			Message: domain.AssignmentMessage(c.Title, c.CaseNumber),
			Status:  domain.NotificationUnread,
			SentAt:  time.Now().UTC(),
		})
		if err != nil {
			if errors.Is(err, domain.ErrNotificationExists) {
				continue
			}
			return created, err
		}
		created++
	}

	s.logger.Info().Str("judge_id", judgeID).Int("created", created).Msg("notifications synced")
	return created, nil
}
