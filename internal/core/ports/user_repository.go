package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByIDs loads a batch of users; missing ids are silently skipped.
	FindByIDs(ctx context.Context, ids []string) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}
