package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pressroom/internal/model"
)

// ArticleFilter narrows article listings.
type ArticleFilter struct {
	Status     model.ArticleStatus
	CategoryID *uuid.UUID
	Search     string
	Page       int
	PerPage    int
}

// ArticleRepository defines article persistence operations.
type ArticleRepository interface {
	Create(ctx context.Context, article *model.Article) error
	Update(ctx context.Context, article *model.Article) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Article, error)
	FindBySlug(ctx context.Context, slug string) (*model.Article, error)
	List(ctx context.Context, filter ArticleFilter) ([]model.Article, int64, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
	TopViewed(ctx context.Context, limit int) ([]model.Article, error)
	CountByStatus(ctx context.Context, status model.ArticleStatus) (int64, error)
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository builds a GORM-backed repository.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *model.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *articleRepository) Update(ctx context.Context, article *model.Article) error {
	return r.db.WithContext(ctx).Save(article).Error
}

func (r *articleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Article{}, "id = ?", id).Error
}

func (r *articleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	var article model.Article
	if err := r.db.WithContext(ctx).Preload("Category").
		Where("id = ?", id).First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) FindBySlug(ctx context.Context, slug string) (*model.Article, error) {
	var article model.Article
	if err := r.db.WithContext(ctx).Preload("Category").
		Where("slug = ?", slug).First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) List(ctx context.Context, filter ArticleFilter) ([]model.Article, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Article{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("title LIKE ? OR excerpt LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, perPage := filter.Page, filter.PerPage
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	var articles []model.Article
	if err := q.Preload("Category").Order("created_at DESC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&articles).Error; err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *articleRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Article{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *articleRepository) TopViewed(ctx context.Context, limit int) ([]model.Article, error) {
	var articles []model.Article
	if err := r.db.WithContext(ctx).
		Where("status = ?", model.ArticleStatusPublished).
		Order("views DESC").Limit(limit).
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) CountByStatus(ctx context.Context, status model.ArticleStatus) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Article{}).
		Where("status = ?", status).Count(&total).Error
	return total, err
}

func (r *articleRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Article{}).
		Where("category_id = ?", categoryID).Count(&total).Error
	return total, err
}
