package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pressroom/internal/model"
)

// MockMessageRepository is a mock implementation of MessageRepository.
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, message *model.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Message), args.Error(1)
}

func (m *MockMessageRepository) List(ctx context.Context, unreadOnly bool, page, perPage int) ([]model.Message, int64, error) {
	args := m.Called(ctx, unreadOnly, page, perPage)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Message), args.Get(1).(int64), args.Error(2)
}

func (m *MockMessageRepository) All(ctx context.Context) ([]model.Message, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Message), args.Error(1)
}

func (m *MockMessageRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMessageRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageRepository) CountUnread(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestMessageService_Submit(t *testing.T) {
	messages := new(MockMessageRepository)
	messages.On("Create", mock.Anything, mock.AnythingOfType("*model.Message")).Return(nil)

	svc := NewMessageService(messages)
	message, err := svc.Submit(context.Background(), "Visitor", "  Visitor@Example.COM ", "Hello", "A question about pricing.")

	assert.NoError(t, err)
	assert.Equal(t, "visitor@example.com", message.Email)
	assert.False(t, message.Read)
	messages.AssertExpectations(t)
}

func TestMessageService_ExportCSV(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	rows := []model.Message{
		{
			ID:        uuid.New(),
			Name:      "First Visitor",
			Email:     "first@example.com",
			Subject:   "Hello",
			Body:      "Line with, commas and \"quotes\"",
			Read:      true,
			CreatedAt: created,
		},
		{
			ID:        uuid.New(),
			Name:      "Second Visitor",
			Email:     "second@example.com",
			Subject:   "Support",
			Body:      "Plain body",
			CreatedAt: created.Add(time.Hour),
		},
	}

	messages := new(MockMessageRepository)
	messages.On("All", mock.Anything).Return(rows, nil)

	var buf bytes.Buffer
	svc := NewMessageService(messages)
	assert.NoError(t, svc.ExportCSV(context.Background(), &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, []string{"id", "name", "email", "subject", "body", "read", "created_at"}, records[0])
	assert.Equal(t, rows[0].ID.String(), records[1][0])
	assert.Equal(t, "Line with, commas and \"quotes\"", records[1][4])
	assert.Equal(t, "true", records[1][5])
	assert.Equal(t, "false", records[2][5])
	assert.Equal(t, "2026-03-14T09:30:00Z", records[1][6])
}
