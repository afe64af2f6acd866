package ports

import (
	"context"

	"github.com/courtflow/case-management/internal/core/domain"
)

// NotificationService serves judge-facing alerts.
type NotificationService interface {
	ListForUser(ctx context.Context, userID string) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
	// SyncForJudge backfills missing assignment notifications for every case
	// currently assigned to the judge. Idempotent; returns the number created.
	SyncForJudge(ctx context.Context, judgeID string) (int, error)
}
