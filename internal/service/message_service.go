package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "pressroom/internal/errors"
	"pressroom/internal/model"
	"pressroom/internal/repository"
)

// MessageService handles contact-form submissions and their admin surface.
type MessageService interface {
	Submit(ctx context.Context, name, email, subject, body string) (*model.Message, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Message, error)
	List(ctx context.Context, unreadOnly bool, page, perPage int) ([]model.Message, int64, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExportCSV(ctx context.Context, w io.Writer) error
}

type messageService struct {
	messages repository.MessageRepository
}

// NewMessageService builds a MessageService.
func NewMessageService(messages repository.MessageRepository) MessageService {
	return &messageService{messages: messages}
}

func (s *messageService) Submit(ctx context.Context, name, email, subject, body string) (*model.Message, error) {
	message := &model.Message{
		Name:    name,
		Email:   normalizeEmail(email),
		Subject: subject,
		Body:    body,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return message, nil
}

func (s *messageService) Get(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	message, err := s.messages.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return message, nil
}

func (s *messageService) List(ctx context.Context, unreadOnly bool, page, perPage int) ([]model.Message, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return s.messages.List(ctx, unreadOnly, page, perPage)
}

func (s *messageService) MarkRead(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.messages.MarkRead(ctx, id)
}

func (s *messageService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.messages.Delete(ctx, id)
}

// ExportCSV streams every message as CSV, oldest first.
func (s *messageService) ExportCSV(ctx context.Context, w io.Writer) error {
	messages, err := s.messages.All(ctx)
	if err != nil {
		return fmt.Errorf("load messages: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "name", "email", "subject", "body", "read", "created_at"}); err != nil {
		return err
	}
	for _, m := range messages {
		record := []string{
			m.ID.String(),
			m.Name,
			m.Email,
			m.Subject,
			m.Body,
			strconv.FormatBool(m.Read),
			m.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
