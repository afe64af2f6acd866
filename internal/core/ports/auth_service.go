package ports

import (
	"context"

	"github.com/courtflow/case-management/internal/core/domain"
)

// AuthService handles account registration and login.
type AuthService interface {
	Register(ctx context.Context, fullname, email, password, role string) (*domain.User, error)
	// Login returns a signed JWT and the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
