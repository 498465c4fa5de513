package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// CommentRepository defines the interface for comment persistence.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	// FindByPost returns all comments on a post, newest first.
	FindByPost(ctx context.Context, postID string) ([]domain.Comment, error)
	Delete(ctx context.Context, id string) error
}
