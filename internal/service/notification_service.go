package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	apperrors "pressroom/internal/errors"
	"pressroom/internal/model"
	"pressroom/internal/repository"
)

// retainRead is how long read notifications are kept before cleanup.
const retainRead = 30 * 24 * time.Hour

// NotificationService manages in-app notifications.
type NotificationService interface {
	Notify(ctx context.Context, recipientID *uuid.UUID, kind, title, body string) (*model.Notification, error)
	List(ctx context.Context, userID uuid.UUID, page, perPage int) ([]model.Notification, int64, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	CleanupRead(ctx context.Context) (int64, error)
}

type notificationService struct {
	notifications repository.NotificationRepository
	log           zerolog.Logger
}

// NewNotificationService builds a NotificationService.
func NewNotificationService(notifications repository.NotificationRepository, log zerolog.Logger) NotificationService {
	return &notificationService{notifications: notifications, log: log}
}

// Notify creates a notification. A nil recipient makes it visible to
// every dashboard user.
func (s *notificationService) Notify(ctx context.Context, recipientID *uuid.UUID, kind, title, body string) (*model.Notification, error) {
	notification := &model.Notification{
		RecipientID: recipientID,
		Type:        kind,
		Title:       title,
		Body:        body,
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return notification, nil
}

func (s *notificationService) List(ctx context.Context, userID uuid.UUID, page, perPage int) ([]model.Notification, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return s.notifications.ListForUser(ctx, userID, page, perPage)
}

// MarkRead marks one of the user's notifications read. Ids addressed to
// another user are indistinguishable from missing ones.
func (s *notificationService) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.notifications.MarkRead(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.notifications.MarkAllRead(ctx, userID)
}

func (s *notificationService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.notifications.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return nil
}

// CleanupRead deletes read notifications older than the retention window.
// Called periodically from main.
func (s *notificationService) CleanupRead(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-retainRead)
	deleted, err := s.notifications.DeleteReadBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup notifications: %w", err)
	}
	if deleted > 0 {
		s.log.Info().Int64("deleted", deleted).Msg("cleaned up read notifications")
	}
	return deleted, nil
}
