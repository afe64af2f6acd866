package ports

import (
	"context"

	"github.com/courtflow/case-management/internal/core/domain"
)

// UserPatch is a partial update to a user record. Nil fields are untouched.
type UserPatch struct {
	Fullname *string
	Email    *string
	Role     *string
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create inserts a user. Returns ErrUserExists on a duplicate email.
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	ListByRole(ctx context.Context, role string) ([]*domain.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context) (map[string]int64, error)
	// Recent returns the most recently created users, newest first.
	Recent(ctx context.Context, limit int) ([]*domain.User, error)
}
