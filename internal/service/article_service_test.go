package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "pressroom/internal/errors"
	"pressroom/internal/model"
	"pressroom/internal/repository"
)

// MockArticleRepository is a mock implementation of ArticleRepository.
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(ctx context.Context, article *model.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) Update(ctx context.Context, article *model.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArticleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Article), args.Error(1)
}

func (m *MockArticleRepository) FindBySlug(ctx context.Context, slug string) (*model.Article, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Article), args.Error(1)
}

func (m *MockArticleRepository) List(ctx context.Context, filter repository.ArticleFilter) ([]model.Article, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Article), args.Get(1).(int64), args.Error(2)
}

func (m *MockArticleRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArticleRepository) TopViewed(ctx context.Context, limit int) ([]model.Article, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Article), args.Error(1)
}

func (m *MockArticleRepository) CountByStatus(ctx context.Context, status model.ArticleStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArticleRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func TestArticleService_Create(t *testing.T) {
	authorID := uuid.New()

	t.Run("defaults to draft without a published timestamp", func(t *testing.T) {
		articles := new(MockArticleRepository)
		articles.On("FindBySlug", mock.Anything, "breaking-news").Return(nil, gorm.ErrRecordNotFound)
		articles.On("Create", mock.Anything, mock.AnythingOfType("*model.Article")).Return(nil)

		svc := NewArticleService(articles)
		article, err := svc.Create(context.Background(), authorID, ArticleInput{
			Title:   "Breaking News",
			Content: "Something happened.",
		})

		assert.NoError(t, err)
		assert.Equal(t, model.ArticleStatusDraft, article.Status)
		assert.Equal(t, "breaking-news", article.Slug)
		assert.Nil(t, article.PublishedAt)
		assert.Equal(t, authorID, article.AuthorID)
	})

	t.Run("publishing on create stamps the timestamp", func(t *testing.T) {
		articles := new(MockArticleRepository)
		articles.On("FindBySlug", mock.Anything, "launch-day").Return(nil, gorm.ErrRecordNotFound)
		articles.On("Create", mock.Anything, mock.AnythingOfType("*model.Article")).Return(nil)

		svc := NewArticleService(articles)
		article, err := svc.Create(context.Background(), authorID, ArticleInput{
			Title:   "Launch Day",
			Content: "We are live.",
			Status:  model.ArticleStatusPublished,
		})

		assert.NoError(t, err)
		assert.Equal(t, model.ArticleStatusPublished, article.Status)
		assert.NotNil(t, article.PublishedAt)
	})

	t.Run("slug collision gets a suffix", func(t *testing.T) {
		articles := new(MockArticleRepository)
		articles.On("FindBySlug", mock.Anything, "breaking-news").Return(&model.Article{
			ID:   uuid.New(),
			Slug: "breaking-news",
		}, nil)
		articles.On("Create", mock.Anything, mock.AnythingOfType("*model.Article")).Return(nil)

		svc := NewArticleService(articles)
		article, err := svc.Create(context.Background(), authorID, ArticleInput{
			Title:   "Breaking News",
			Content: "Again.",
		})

		assert.NoError(t, err)
		assert.NotEqual(t, "breaking-news", article.Slug)
		assert.Contains(t, article.Slug, "breaking-news-")
	})
}

func TestArticleService_SetStatus(t *testing.T) {
	id := uuid.New()

	t.Run("first publish stamps PublishedAt once", func(t *testing.T) {
		articles := new(MockArticleRepository)
		articles.On("FindByID", mock.Anything, id).Return(&model.Article{
			ID:     id,
			Title:  "Draft Piece",
			Status: model.ArticleStatusDraft,
		}, nil)
		articles.On("Update", mock.Anything, mock.AnythingOfType("*model.Article")).Return(nil)

		svc := NewArticleService(articles)
		article, err := svc.SetStatus(context.Background(), id, model.ArticleStatusPublished)

		assert.NoError(t, err)
		assert.Equal(t, model.ArticleStatusPublished, article.Status)
		assert.NotNil(t, article.PublishedAt)
	})

	t.Run("unpublish clears PublishedAt", func(t *testing.T) {
		published := &model.Article{
			ID:     id,
			Title:  "Live Piece",
			Status: model.ArticleStatusPublished,
		}
		now := published.CreatedAt
		published.PublishedAt = &now

		articles := new(MockArticleRepository)
		articles.On("FindByID", mock.Anything, id).Return(published, nil)
		articles.On("Update", mock.Anything, mock.AnythingOfType("*model.Article")).Return(nil)

		svc := NewArticleService(articles)
		article, err := svc.SetStatus(context.Background(), id, model.ArticleStatusDraft)

		assert.NoError(t, err)
		assert.Equal(t, model.ArticleStatusDraft, article.Status)
		assert.Nil(t, article.PublishedAt)
	})

	t.Run("unknown article", func(t *testing.T) {
		articles := new(MockArticleRepository)
		articles.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		svc := NewArticleService(articles)
		_, err := svc.SetStatus(context.Background(), id, model.ArticleStatusPublished)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestArticleService_GetBySlug(t *testing.T) {
	t.Run("counts the view", func(t *testing.T) {
		article := &model.Article{
			ID:     uuid.New(),
			Slug:   "popular-piece",
			Status: model.ArticleStatusPublished,
			Views:  41,
		}
		articles := new(MockArticleRepository)
		articles.On("FindBySlug", mock.Anything, "popular-piece").Return(article, nil)
		articles.On("IncrementViews", mock.Anything, article.ID).Return(nil)

		svc := NewArticleService(articles)
		got, err := svc.GetBySlug(context.Background(), "popular-piece", true)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), got.Views)
		articles.AssertExpectations(t)
	})

	t.Run("failed increment does not block the read", func(t *testing.T) {
		article := &model.Article{
			ID:     uuid.New(),
			Slug:   "flaky-piece",
			Status: model.ArticleStatusPublished,
			Views:  7,
		}
		articles := new(MockArticleRepository)
		articles.On("FindBySlug", mock.Anything, "flaky-piece").Return(article, nil)
		articles.On("IncrementViews", mock.Anything, article.ID).Return(assert.AnError)

		svc := NewArticleService(articles)
		got, err := svc.GetBySlug(context.Background(), "flaky-piece", true)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), got.Views)
	})

	t.Run("draft reads never count a view", func(t *testing.T) {
		article := &model.Article{
			ID:     uuid.New(),
			Slug:   "unpublished-piece",
			Status: model.ArticleStatusDraft,
			Views:  0,
		}
		articles := new(MockArticleRepository)
		articles.On("FindBySlug", mock.Anything, "unpublished-piece").Return(article, nil)

		svc := NewArticleService(articles)
		got, err := svc.GetBySlug(context.Background(), "unpublished-piece", true)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), got.Views)
		articles.AssertNotCalled(t, "IncrementViews", mock.Anything, mock.Anything)
	})

	t.Run("unknown slug", func(t *testing.T) {
		articles := new(MockArticleRepository)
		articles.On("FindBySlug", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

		svc := NewArticleService(articles)
		_, err := svc.GetBySlug(context.Background(), "missing", false)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
