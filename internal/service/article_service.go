package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "pressroom/internal/errors"
	"pressroom/internal/model"
	"pressroom/internal/repository"
)

// ArticleInput carries the fields accepted on article creation.
type ArticleInput struct {
	Title      string
	Excerpt    string
	Content    string
	CoverImage string
	CategoryID *uuid.UUID
	Status     model.ArticleStatus
}

// ArticleUpdate carries the mutable article fields; nil means "leave as is".
type ArticleUpdate struct {
	Title      *string
	Excerpt    *string
	Content    *string
	CoverImage *string
	CategoryID *uuid.UUID
}

// ArticleService exposes article operations for both the admin dashboard
// and the public site.
type ArticleService interface {
	Create(ctx context.Context, authorID uuid.UUID, input ArticleInput) (*model.Article, error)
	Update(ctx context.Context, id uuid.UUID, update ArticleUpdate) (*model.Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*model.Article, error)
	GetBySlug(ctx context.Context, slug string, countView bool) (*model.Article, error)
	List(ctx context.Context, filter repository.ArticleFilter) ([]model.Article, int64, error)
	SetStatus(ctx context.Context, id uuid.UUID, status model.ArticleStatus) (*model.Article, error)
}

type articleService struct {
	articles repository.ArticleRepository
}

// NewArticleService builds an ArticleService.
func NewArticleService(articles repository.ArticleRepository) ArticleService {
	return &articleService{articles: articles}
}

func (s *articleService) Create(ctx context.Context, authorID uuid.UUID, input ArticleInput) (*model.Article, error) {
	status := input.Status
	if status == "" {
		status = model.ArticleStatusDraft
	}

	article := &model.Article{
		Title:      input.Title,
		Slug:       s.uniqueSlug(ctx, model.Slugify(input.Title)),
		Excerpt:    input.Excerpt,
		Content:    input.Content,
		CoverImage: input.CoverImage,
		Status:     status,
		CategoryID: input.CategoryID,
		AuthorID:   authorID,
	}
	if status == model.ArticleStatusPublished {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := s.articles.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return article, nil
}

func (s *articleService) Update(ctx context.Context, id uuid.UUID, update ArticleUpdate) (*model.Article, error) {
	article, err := s.findArticle(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil && *update.Title != article.Title {
		article.Title = *update.Title
		article.Slug = s.uniqueSlug(ctx, model.Slugify(*update.Title))
	}
	if update.Excerpt != nil {
		article.Excerpt = *update.Excerpt
	}
	if update.Content != nil {
		article.Content = *update.Content
	}
	if update.CoverImage != nil {
		article.CoverImage = *update.CoverImage
	}
	if update.CategoryID != nil {
		article.CategoryID = update.CategoryID
	}

	if err := s.articles.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return article, nil
}

func (s *articleService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findArticle(ctx, id); err != nil {
		return err
	}
	if err := s.articles.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

func (s *articleService) Get(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	return s.findArticle(ctx, id)
}

// GetBySlug resolves an article for the public site. The view counter is
// bumped fire-and-forget on published articles only; a failed increment
// never blocks the read, and drafts never accrue views.
func (s *articleService) GetBySlug(ctx context.Context, slug string, countView bool) (*model.Article, error) {
	article, err := s.articles.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	if countView && article.Status == model.ArticleStatusPublished {
		if err := s.articles.IncrementViews(ctx, article.ID); err == nil {
			article.Views++
		}
	}
	return article, nil
}

func (s *articleService) List(ctx context.Context, filter repository.ArticleFilter) ([]model.Article, int64, error) {
	return s.articles.List(ctx, filter)
}

// SetStatus publishes or unpublishes an article. PublishedAt is stamped
// on the first transition to published and cleared on unpublish.
func (s *articleService) SetStatus(ctx context.Context, id uuid.UUID, status model.ArticleStatus) (*model.Article, error) {
	article, err := s.findArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	article.Status = status
	switch status {
	case model.ArticleStatusPublished:
		if article.PublishedAt == nil {
			now := time.Now()
			article.PublishedAt = &now
		}
	case model.ArticleStatusDraft:
		article.PublishedAt = nil
	}
	if err := s.articles.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("update article status: %w", err)
	}
	return article, nil
}

// uniqueSlug appends a short random suffix when the derived slug is
// already taken. Lookup errors fall through to the plain slug and let
// the unique index have the final word.
func (s *articleService) uniqueSlug(ctx context.Context, slug string) string {
	if slug == "" {
		slug = uuid.NewString()[:8]
	}
	if _, err := s.articles.FindBySlug(ctx, slug); err == nil {
		return slug + "-" + uuid.NewString()[:8]
	}
	return slug
}

func (s *articleService) findArticle(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return article, nil
}
