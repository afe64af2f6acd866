package ports

import (
	"context"

	"github.com/courtflow/case-management/internal/core/domain"
)

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	// Create inserts a notification. Returns ErrNotificationExists when the
	// (user, case) pair already has one (unique index).
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	FindByUserAndCase(ctx context.Context, userID, caseID string) (*domain.Notification, error)
	// ListByUser returns the user's notifications newest first, with the case
	// summary embedded.
	ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error)
	// MarkRead flips the notification to Read and returns it.
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
}
