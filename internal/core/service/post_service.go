package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// PostService implements post CRUD, listing and search. Mutations enforce the
// ownership rule: only the author or an admin may update or delete a post.
type PostService struct {
	posts      ports.PostRepository
	users      ports.UserRepository
	categories ports.CategoryRepository
	logger     zerolog.Logger
}

func NewPostService(posts ports.PostRepository, users ports.UserRepository, categories ports.CategoryRepository, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, categories: categories, logger: logger}
}

func (s *PostService) Create(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	now := time.Now().UTC()
	post := &domain.Post{
		Title:         input.Title,
		Content:       input.Content,
		Excerpt:       input.Excerpt,
		CategoryID:    input.CategoryID,
		AuthorID:      input.Author.ID,
		Tags:          input.Tags,
		Published:     input.Published,
		FeaturedImage: input.FeaturedImage,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("post_id", created.ID).Str("author_id", created.AuthorID).Msg("post created")
	return s.hydrateOne(ctx, created)
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.hydrateOne(ctx, post)
}

func (s *PostService) List(ctx context.Context, input ports.ListPostsInput) (*ports.PostPage, error) {
	return s.page(ctx, ports.PostFilter{
		Page:  input.Page,
		Limit: input.Limit,
	})
}

func (s *PostService) Search(ctx context.Context, input ports.SearchPostsInput) (*ports.PostPage, error) {
	return s.page(ctx, ports.PostFilter{
		Query:         input.Query,
		CategoryID:    input.CategoryID,
		PublishedOnly: true,
		Page:          input.Page,
		Limit:         input.Limit,
	})
}

func (s *PostService) Update(ctx context.Context, input ports.UpdatePostInput) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if !input.Actor.CanMutate(post.AuthorID) {
		return nil, domain.ErrNotOwner
	}

	post.Title = input.Title
	post.Content = input.Content
	post.Excerpt = input.Excerpt
	post.CategoryID = input.CategoryID
	post.Tags = input.Tags
	post.Published = input.Published
	if input.FeaturedImage != "" {
		post.FeaturedImage = input.FeaturedImage
	}
	post.UpdatedAt = time.Now().UTC()

	updated, err := s.posts.Update(ctx, post)
	if err != nil {
		return nil, err
	}
	return s.hydrateOne(ctx, updated)
}

func (s *PostService) Delete(ctx context.Context, id string, actor *domain.User) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !actor.CanMutate(post.AuthorID) {
		return domain.ErrNotOwner
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("post_id", id).Str("actor_id", actor.ID).Msg("post deleted")
	return nil
}

func (s *PostService) page(ctx context.Context, filter ports.PostFilter) (*ports.PostPage, error) {
	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}

	posts, total, err := s.posts.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	if err := s.hydrate(ctx, posts); err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &ports.PostPage{
		Posts:       posts,
		CurrentPage: filter.Page,
		TotalPages:  totalPages,
		TotalPosts:  total,
	}, nil
}

func (s *PostService) hydrateOne(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	batch := []domain.Post{*post}
	if err := s.hydrate(ctx, batch); err != nil {
		return nil, err
	}
	return &batch[0], nil
}

// hydrate fills the denormalized author and category projections for a batch
// of posts with one lookup per referenced collection.
func (s *PostService) hydrate(ctx context.Context, posts []domain.Post) error {
	if len(posts) == 0 {
		return nil
	}

	authorIDs := make([]string, 0, len(posts))
	categoryIDs := make([]string, 0, len(posts))
	seenAuthor := make(map[string]bool)
	seenCategory := make(map[string]bool)
	for i := range posts {
		if id := posts[i].AuthorID; id != "" && !seenAuthor[id] {
			seenAuthor[id] = true
			authorIDs = append(authorIDs, id)
		}
		if id := posts[i].CategoryID; id != "" && !seenCategory[id] {
			seenCategory[id] = true
			categoryIDs = append(categoryIDs, id)
		}
	}

	users, err := s.users.FindByIDs(ctx, authorIDs)
	if err != nil {
		return err
	}
	authors := make(map[string]domain.AuthorRef, len(users))
	for _, u := range users {
		authors[u.ID] = domain.AuthorRef{ID: u.ID, Name: u.Name}
	}

	cats, err := s.categories.FindByIDs(ctx, categoryIDs)
	if err != nil {
		return err
	}
	categories := make(map[string]domain.CategoryRef, len(cats))
	for _, c := range cats {
		categories[c.ID] = domain.CategoryRef{ID: c.ID, Name: c.Name}
	}

	for i := range posts {
		posts[i].Author = authors[posts[i].AuthorID]
		posts[i].Category = categories[posts[i].CategoryID]
	}
	return nil
}
