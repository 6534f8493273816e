package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "pressroom/internal/errors"
	"pressroom/internal/model"
	"pressroom/internal/repository"
)

// CategoryWithCount pairs a category with its article count for listings.
type CategoryWithCount struct {
	model.Category
	ArticleCount int64 `json:"article_count"`
}

// CategoryService exposes category operations.
type CategoryService interface {
	Create(ctx context.Context, name, description string) (*model.Category, error)
	Update(ctx context.Context, id uuid.UUID, name, description string) (*model.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*model.Category, error)
	List(ctx context.Context) ([]CategoryWithCount, error)
}

type categoryService struct {
	categories repository.CategoryRepository
	articles   repository.ArticleRepository
}

// NewCategoryService builds a CategoryService.
func NewCategoryService(categories repository.CategoryRepository, articles repository.ArticleRepository) CategoryService {
	return &categoryService{categories: categories, articles: articles}
}

func (s *categoryService) Create(ctx context.Context, name, description string) (*model.Category, error) {
	existing, err := s.categories.FindByName(ctx, name)
	if err == nil && existing != nil {
		return nil, apperrors.ErrCategoryNameTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check category name: %w", err)
	}

	category := &model.Category{
		Name:        name,
		Slug:        model.Slugify(name),
		Description: description,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, name, description string) (*model.Category, error) {
	category, err := s.findCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" && name != category.Name {
		other, err := s.categories.FindByName(ctx, name)
		if err == nil && other != nil && other.ID != category.ID {
			return nil, apperrors.ErrCategoryNameTaken
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check category name: %w", err)
		}
		category.Name = name
		category.Slug = model.Slugify(name)
	}
	if description != "" {
		category.Description = description
	}

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findCategory(ctx, id); err != nil {
		return err
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (s *categoryService) Get(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	return s.findCategory(ctx, id)
}

func (s *categoryService) List(ctx context.Context) ([]CategoryWithCount, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]CategoryWithCount, 0, len(categories))
	for _, category := range categories {
		count, err := s.articles.CountByCategory(ctx, category.ID)
		if err != nil {
			return nil, fmt.Errorf("count articles for category %s: %w", category.Slug, err)
		}
		result = append(result, CategoryWithCount{Category: category, ArticleCount: count})
	}
	return result, nil
}

func (s *categoryService) findCategory(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return category, nil
}
