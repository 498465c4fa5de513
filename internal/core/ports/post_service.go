package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// CreatePostInput carries a validated post creation payload. Author is the
// authenticated requester; any author supplied by the client is ignored.
type CreatePostInput struct {
	Title         string
	Content       string
	Excerpt       string
	CategoryID    string
	Tags          []string
	Published     bool
	FeaturedImage string
	Author        *domain.User
}

// UpdatePostInput carries a validated post update. An empty FeaturedImage
// keeps the existing image. Actor must pass the ownership check.
type UpdatePostInput struct {
	ID            string
	Title         string
	Content       string
	Excerpt       string
	CategoryID    string
	Tags          []string
	Published     bool
	FeaturedImage string
	Actor         *domain.User
}

// ListPostsInput pages the unfiltered post listing.
type ListPostsInput struct {
	Page  int
	Limit int
}

// SearchPostsInput pages a full-text search over published posts.
type SearchPostsInput struct {
	Query      string
	CategoryID string
	Page       int
	Limit      int
}

// PostPage is one page of posts with pagination metadata.
type PostPage struct {
	Posts       []domain.Post
	CurrentPage int
	TotalPages  int
	TotalPosts  int64
}

type PostService interface {
	Create(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context, input ListPostsInput) (*PostPage, error)
	Search(ctx context.Context, input SearchPostsInput) (*PostPage, error)
	Update(ctx context.Context, input UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, id string, actor *domain.User) error
}
