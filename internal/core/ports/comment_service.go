package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

type CommentService interface {
	// ListForPost fails with domain.ErrPostNotFound when the post is absent.
	ListForPost(ctx context.Context, postID string) ([]domain.Comment, error)
	Add(ctx context.Context, postID, content string, author *domain.User) (*domain.Comment, error)
	Delete(ctx context.Context, id string, actor *domain.User) error
}
