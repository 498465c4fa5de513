package service

import (
	"context"
	"errors"
	"time"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

// CategoryService implements category listing and creation.
type CategoryService struct {
	categories ports.CategoryRepository
}

func NewCategoryService(categories ports.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) Create(ctx context.Context, input ports.CreateCategoryInput) (*domain.Category, error) {
	switch _, err := s.categories.FindByName(ctx, input.Name); {
	case err == nil:
		return nil, domain.ErrCategoryExists
	case !errors.Is(err, domain.ErrCategoryNotFound):
		return nil, err
	}

	category := &domain.Category{
		Name:        input.Name,
		Description: input.Description,
		Color:       input.Color,
		CreatedAt:   time.Now().UTC(),
	}
	return s.categories.Create(ctx, category)
}
