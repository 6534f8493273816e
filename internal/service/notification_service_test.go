package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "pressroom/internal/errors"
	"pressroom/internal/model"
)

// MockNotificationRepository is a mock implementation of NotificationRepository.
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *model.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListForUser(ctx context.Context, userID uuid.UUID, page, perPage int) ([]model.Notification, int64, error) {
	args := m.Called(ctx, userID, page, perPage)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func TestNotificationService_MarkRead(t *testing.T) {
	id := uuid.New()
	owner := uuid.New()
	stranger := uuid.New()

	t.Run("own notification", func(t *testing.T) {
		notifications := new(MockNotificationRepository)
		notifications.On("MarkRead", mock.Anything, id, owner).Return(nil)

		svc := NewNotificationService(notifications, zerolog.Nop())
		assert.NoError(t, svc.MarkRead(context.Background(), id, owner))
		notifications.AssertExpectations(t)
	})

	t.Run("another user's notification reads as missing", func(t *testing.T) {
		notifications := new(MockNotificationRepository)
		notifications.On("MarkRead", mock.Anything, id, stranger).Return(gorm.ErrRecordNotFound)

		svc := NewNotificationService(notifications, zerolog.Nop())
		err := svc.MarkRead(context.Background(), id, stranger)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestNotificationService_Delete(t *testing.T) {
	id := uuid.New()
	owner := uuid.New()
	stranger := uuid.New()

	t.Run("own notification", func(t *testing.T) {
		notifications := new(MockNotificationRepository)
		notifications.On("Delete", mock.Anything, id, owner).Return(nil)

		svc := NewNotificationService(notifications, zerolog.Nop())
		assert.NoError(t, svc.Delete(context.Background(), id, owner))
		notifications.AssertExpectations(t)
	})

	t.Run("another user's notification reads as missing", func(t *testing.T) {
		notifications := new(MockNotificationRepository)
		notifications.On("Delete", mock.Anything, id, stranger).Return(gorm.ErrRecordNotFound)

		svc := NewNotificationService(notifications, zerolog.Nop())
		err := svc.Delete(context.Background(), id, stranger)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
