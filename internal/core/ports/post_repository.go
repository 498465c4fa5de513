package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// PostFilter narrows and pages a post listing. Query uses the store's
// full-text index; an empty Query matches everything.
type PostFilter struct {
	Query         string
	CategoryID    string
	PublishedOnly bool
	Page          int
	Limit         int
}

// PostRepository defines the interface for post persistence.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// Find returns one page of posts sorted by creation time descending,
	// plus the total count matching the filter.
	Find(ctx context.Context, filter PostFilter) ([]domain.Post, int64, error)
	Update(ctx context.Context, post *domain.Post) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
}
