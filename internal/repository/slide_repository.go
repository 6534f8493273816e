package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pressroom/internal/model"
)

// SlideRepository defines carousel slide persistence operations.
type SlideRepository interface {
	Create(ctx context.Context, slide *model.Slide) error
	Update(ctx context.Context, slide *model.Slide) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Slide, error)
	List(ctx context.Context, activeOnly bool) ([]model.Slide, error)
	NextPosition(ctx context.Context) (int, error)
	SetPositions(ctx context.Context, ordered []uuid.UUID) error
}

type slideRepository struct {
	db *gorm.DB
}

// NewSlideRepository builds a GORM-backed repository.
func NewSlideRepository(db *gorm.DB) SlideRepository {
	return &slideRepository{db: db}
}

func (r *slideRepository) Create(ctx context.Context, slide *model.Slide) error {
	return r.db.WithContext(ctx).Create(slide).Error
}

func (r *slideRepository) Update(ctx context.Context, slide *model.Slide) error {
	return r.db.WithContext(ctx).Save(slide).Error
}

func (r *slideRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Slide{}, "id = ?", id).Error
}

func (r *slideRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Slide, error) {
	var slide model.Slide
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&slide).Error; err != nil {
		return nil, err
	}
	return &slide, nil
}

func (r *slideRepository) List(ctx context.Context, activeOnly bool) ([]model.Slide, error) {
	q := r.db.WithContext(ctx)
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var slides []model.Slide
	if err := q.Order("position ASC").Find(&slides).Error; err != nil {
		return nil, err
	}
	return slides, nil
}

func (r *slideRepository) NextPosition(ctx context.Context) (int, error) {
	var max *int
	if err := r.db.WithContext(ctx).Model(&model.Slide{}).
		Select("MAX(position)").Scan(&max).Error; err != nil {
		return 0, err
	}
	if max == nil {
		return 1, nil
	}
	return *max + 1, nil
}

// SetPositions rewrites slide positions to match the given order. Runs in
// a transaction so a partial reorder never persists.
func (r *slideRepository) SetPositions(ctx context.Context, ordered []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range ordered {
			if err := tx.Model(&model.Slide{}).
				Where("id = ?", id).
				UpdateColumn("position", i+1).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
