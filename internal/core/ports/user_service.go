package ports

import (
	"context"

	"github.com/courtflow/case-management/internal/core/domain"
)

// CreateUserInput carries an admin-created user account.
type CreateUserInput struct {
	Fullname string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput carries the mutable user profile fields.
type UpdateUserInput struct {
	Fullname string
	Email    string
	Role     string
}

// UserStats is the dashboard aggregate over users.
type UserStats struct {
	Total  int64            `json:"total"`
	ByRole map[string]int64 `json:"byRole"`
	Recent []*domain.User   `json:"recent"`
}

// UserService manages actor accounts.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*UserStats, error)
	Judges(ctx context.Context) ([]*domain.User, error)
}
