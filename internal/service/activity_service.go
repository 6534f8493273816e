package service

import (
	"context"

	"github.com/rs/zerolog"

	"pressroom/internal/model"
	"pressroom/internal/repository"
)

// ActivityService appends audit log entries and reads them back.
// Recording is fire-and-forget: a failed append is logged, never
// surfaced to the caller.
type ActivityService interface {
	Record(ctx context.Context, entry model.Activity)
	List(ctx context.Context, page, perPage int) ([]model.Activity, int64, error)
}

type activityService struct {
	activities repository.ActivityRepository
	log        zerolog.Logger
}

// NewActivityService builds an ActivityService.
func NewActivityService(activities repository.ActivityRepository, log zerolog.Logger) ActivityService {
	return &activityService{activities: activities, log: log}
}

func (s *activityService) Record(ctx context.Context, entry model.Activity) {
	if err := s.activities.Create(ctx, &entry); err != nil {
		s.log.Warn().Err(err).
			Str("type", string(entry.Type)).
			Msg("failed to record activity")
	}
}

func (s *activityService) List(ctx context.Context, page, perPage int) ([]model.Activity, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return s.activities.List(ctx, page, perPage)
}
