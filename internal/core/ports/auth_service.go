package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// RegisterInput carries the validated registration payload.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Bio      string
}

// UpdateDetailsInput carries a profile update for the authenticated user.
type UpdateDetailsInput struct {
	UserID string
	Name   string
	Email  string
	Bio    string
}

// AuthService implements registration, login and profile maintenance.
// Register and Login return a freshly issued credential alongside the user.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	UpdateDetails(ctx context.Context, input UpdateDetailsInput) (*domain.User, error)
	// UpdatePassword verifies the current password, stores the new hash and
	// reissues a credential.
	UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) (string, error)
}
