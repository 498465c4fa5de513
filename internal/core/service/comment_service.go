package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

// CommentService implements comment listing, creation and deletion. Comments
// can only be attached to existing posts; deletion enforces ownership.
type CommentService struct {
	comments ports.CommentRepository
	posts    ports.PostRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewCommentService(comments ports.CommentRepository, posts ports.PostRepository, users ports.UserRepository, logger zerolog.Logger) *CommentService {
	return &CommentService{comments: comments, posts: posts, users: users, logger: logger}
}

func (s *CommentService) ListForPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.comments.FindByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := s.hydrate(ctx, comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentService) Add(ctx context.Context, postID, content string, author *domain.User) (*domain.Comment, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		Content:   content,
		PostID:    postID,
		AuthorID:  author.ID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		return nil, err
	}
	created.Author = domain.AuthorRef{ID: author.ID, Name: author.Name}
	return created, nil
}

func (s *CommentService) Delete(ctx context.Context, id string, actor *domain.User) error {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !actor.CanMutate(comment.AuthorID) {
		return domain.ErrNotOwner
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("comment_id", id).Str("actor_id", actor.ID).Msg("comment deleted")
	return nil
}

func (s *CommentService) hydrate(ctx context.Context, comments []domain.Comment) error {
	if len(comments) == 0 {
		return nil
	}

	ids := make([]string, 0, len(comments))
	seen := make(map[string]bool)
	for i := range comments {
		if id := comments[i].AuthorID; id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	authors := make(map[string]domain.AuthorRef, len(users))
	for _, u := range users {
		authors[u.ID] = domain.AuthorRef{ID: u.ID, Name: u.Name}
	}

	for i := range comments {
		comments[i].Author = authors[comments[i].AuthorID]
	}
	return nil
}
