package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// CategoryRepository defines the interface for category persistence.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Category, error)
	// List returns all categories sorted by name ascending.
	List(ctx context.Context) ([]domain.Category, error)
}
