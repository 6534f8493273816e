package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pressroom/internal/auth"
	apperrors "pressroom/internal/errors"
	"pressroom/internal/model"
)

// MockNotificationService is a mock implementation of service.NotificationService.
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Notify(ctx context.Context, recipientID *uuid.UUID, kind, title, body string) (*model.Notification, error) {
	args := m.Called(ctx, recipientID, kind, title, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Notification), args.Error(1)
}

func (m *MockNotificationService) List(ctx context.Context, userID uuid.UUID, page, perPage int) ([]model.Notification, int64, error) {
	args := m.Called(ctx, userID, page, perPage)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockNotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockNotificationService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockNotificationService) CleanupRead(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func notificationContext(t *testing.T, method string, ident *auth.Identity, notificationID uuid.UUID) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(notificationID.String())
	if ident != nil {
		auth.SetIdentity(c, ident)
	}
	return c
}

// The mutation endpoints act on the caller's own notifications only: the
// handler hands the authenticated identity to the service, so an id
// addressed to another user comes back not found.
func TestNotificationHandler_MarkRead(t *testing.T) {
	caller := &auth.Identity{ID: uuid.New(), Role: "viewer"}
	notificationID := uuid.New()

	t.Run("scopes to the caller", func(t *testing.T) {
		notifications := new(MockNotificationService)
		notifications.On("MarkRead", mock.Anything, notificationID, caller.ID).Return(nil)

		h := NewNotificationHandler(notifications)
		c := notificationContext(t, http.MethodPatch, caller, notificationID)

		assert.NoError(t, h.MarkRead(c))
		notifications.AssertExpectations(t)
	})

	t.Run("foreign notification comes back not found", func(t *testing.T) {
		notifications := new(MockNotificationService)
		notifications.On("MarkRead", mock.Anything, notificationID, caller.ID).Return(apperrors.ErrNotFound)

		h := NewNotificationHandler(notifications)
		c := notificationContext(t, http.MethodPatch, caller, notificationID)

		assert.ErrorIs(t, h.MarkRead(c), apperrors.ErrNotFound)
	})

	t.Run("no identity", func(t *testing.T) {
		notifications := new(MockNotificationService)

		h := NewNotificationHandler(notifications)
		c := notificationContext(t, http.MethodPatch, nil, notificationID)

		assert.ErrorIs(t, h.MarkRead(c), apperrors.ErrInvalidToken)
		notifications.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestNotificationHandler_Delete(t *testing.T) {
	caller := &auth.Identity{ID: uuid.New(), Role: "viewer"}
	notificationID := uuid.New()

	t.Run("scopes to the caller", func(t *testing.T) {
		notifications := new(MockNotificationService)
		notifications.On("Delete", mock.Anything, notificationID, caller.ID).Return(nil)

		h := NewNotificationHandler(notifications)
		c := notificationContext(t, http.MethodDelete, caller, notificationID)

		assert.NoError(t, h.Delete(c))
		notifications.AssertExpectations(t)
	})

	t.Run("foreign notification comes back not found", func(t *testing.T) {
		notifications := new(MockNotificationService)
		notifications.On("Delete", mock.Anything, notificationID, caller.ID).Return(apperrors.ErrNotFound)

		h := NewNotificationHandler(notifications)
		c := notificationContext(t, http.MethodDelete, caller, notificationID)

		assert.ErrorIs(t, h.Delete(c), apperrors.ErrNotFound)
	})

	t.Run("no identity", func(t *testing.T) {
		notifications := new(MockNotificationService)

		h := NewNotificationHandler(notifications)
		c := notificationContext(t, http.MethodDelete, nil, notificationID)

		assert.ErrorIs(t, h.Delete(c), apperrors.ErrInvalidToken)
		notifications.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}
