package repository

import (
	"context"

	"gorm.io/gorm"

	"pressroom/internal/model"
)

// ActivityRepository appends to and reads the audit log. There is no
// update or delete: the log is append-only.
type ActivityRepository interface {
	Create(ctx context.Context, activity *model.Activity) error
	List(ctx context.Context, page, perPage int) ([]model.Activity, int64, error)
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository builds a GORM-backed repository.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) List(ctx context.Context, page, perPage int) ([]model.Activity, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Activity{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var activities []model.Activity
	if err := q.Order("created_at DESC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&activities).Error; err != nil {
		return nil, 0, err
	}
	return activities, total, nil
}
