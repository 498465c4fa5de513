package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// CreateCategoryInput carries a validated category creation payload.
type CreateCategoryInput struct {
	Name        string
	Description string
	Color       string
}

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error)
}
