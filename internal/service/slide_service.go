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

// SlideInput carries the fields accepted on slide creation.
type SlideInput struct {
	Title    string
	Subtitle string
	Image    string
	LinkURL  string
}

// SlideUpdate carries the mutable slide fields; nil means "leave as is".
type SlideUpdate struct {
	Title    *string
	Subtitle *string
	Image    *string
	LinkURL  *string
	Active   *bool
}

// SlideService exposes carousel operations. New slides are appended at
// the end of the carousel; Reorder rewrites all positions at once.
type SlideService interface {
	Create(ctx context.Context, input SlideInput) (*model.Slide, error)
	Update(ctx context.Context, id uuid.UUID, update SlideUpdate) (*model.Slide, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*model.Slide, error)
	List(ctx context.Context, activeOnly bool) ([]model.Slide, error)
	Reorder(ctx context.Context, ordered []uuid.UUID) error
}

type slideService struct {
	slides repository.SlideRepository
}

// NewSlideService builds a SlideService.
func NewSlideService(slides repository.SlideRepository) SlideService {
	return &slideService{slides: slides}
}

func (s *slideService) Create(ctx context.Context, input SlideInput) (*model.Slide, error) {
	position, err := s.slides.NextPosition(ctx)
	if err != nil {
		return nil, fmt.Errorf("next slide position: %w", err)
	}
	slide := &model.Slide{
		Title:    input.Title,
		Subtitle: input.Subtitle,
		Image:    input.Image,
		LinkURL:  input.LinkURL,
		Position: position,
		Active:   true,
	}
	if err := s.slides.Create(ctx, slide); err != nil {
		return nil, fmt.Errorf("create slide: %w", err)
	}
	return slide, nil
}

func (s *slideService) Update(ctx context.Context, id uuid.UUID, update SlideUpdate) (*model.Slide, error) {
	slide, err := s.findSlide(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		slide.Title = *update.Title
	}
	if update.Subtitle != nil {
		slide.Subtitle = *update.Subtitle
	}
	if update.Image != nil {
		slide.Image = *update.Image
	}
	if update.LinkURL != nil {
		slide.LinkURL = *update.LinkURL
	}
	if update.Active != nil {
		slide.Active = *update.Active
	}

	if err := s.slides.Update(ctx, slide); err != nil {
		return nil, fmt.Errorf("update slide: %w", err)
	}
	return slide, nil
}

func (s *slideService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findSlide(ctx, id); err != nil {
		return err
	}
	if err := s.slides.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete slide: %w", err)
	}
	return nil
}

func (s *slideService) Get(ctx context.Context, id uuid.UUID) (*model.Slide, error) {
	return s.findSlide(ctx, id)
}

func (s *slideService) List(ctx context.Context, activeOnly bool) ([]model.Slide, error) {
	return s.slides.List(ctx, activeOnly)
}

func (s *slideService) Reorder(ctx context.Context, ordered []uuid.UUID) error {
	if len(ordered) == 0 {
		return nil
	}
	if err := s.slides.SetPositions(ctx, ordered); err != nil {
		return fmt.Errorf("reorder slides: %w", err)
	}
	return nil
}

func (s *slideService) findSlide(ctx context.Context, id uuid.UUID) (*model.Slide, error) {
	slide, err := s.slides.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return slide, nil
}
