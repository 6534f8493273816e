package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "pressroom/internal/errors"
	"pressroom/internal/model"
)

func TestUserService_Delete(t *testing.T) {
	t.Run("self delete is rejected", func(t *testing.T) {
		id := uuid.New()
		users := new(MockUserRepository)

		svc := NewUserService(users)
		err := svc.Delete(context.Background(), id, id)
		assert.ErrorIs(t, err, apperrors.ErrSelfDelete)
		users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deleting another user", func(t *testing.T) {
		actorID, targetID := uuid.New(), uuid.New()
		users := new(MockUserRepository)
		users.On("FindByID", mock.Anything, targetID).Return(&model.User{ID: targetID}, nil)
		users.On("Delete", mock.Anything, targetID).Return(nil)

		svc := NewUserService(users)
		assert.NoError(t, svc.Delete(context.Background(), actorID, targetID))
		users.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		actorID, targetID := uuid.New(), uuid.New()
		users := new(MockUserRepository)
		users.On("FindByID", mock.Anything, targetID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(users)
		err := svc.Delete(context.Background(), actorID, targetID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestUserService_Update(t *testing.T) {
	id := uuid.New()

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByID", mock.Anything, id).Return(&model.User{
			ID:     id,
			Name:   "Original Name",
			Email:  "user@example.com",
			Role:   "viewer",
			Status: model.UserStatusActive,
		}, nil)
		users.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		role := "editor"
		svc := NewUserService(users)
		user, err := svc.Update(context.Background(), id, UserUpdate{Role: &role})

		assert.NoError(t, err)
		assert.Equal(t, "editor", user.Role)
		assert.Equal(t, "Original Name", user.Name)
		assert.Equal(t, model.UserStatusActive, user.Status)
	})

	t.Run("deactivation", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByID", mock.Anything, id).Return(&model.User{
			ID:     id,
			Status: model.UserStatusActive,
		}, nil)
		users.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		inactive := model.UserStatusInactive
		svc := NewUserService(users)
		user, err := svc.Update(context.Background(), id, UserUpdate{Status: &inactive})

		assert.NoError(t, err)
		assert.False(t, user.IsActive())
	})

	t.Run("password change rehashes", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByID", mock.Anything, id).Return(&model.User{
			ID:           id,
			PasswordHash: "old-hash",
		}, nil)
		users.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		password := "new-password"
		svc := NewUserService(users)
		user, err := svc.Update(context.Background(), id, UserUpdate{Password: &password})

		assert.NoError(t, err)
		assert.NotEqual(t, "old-hash", user.PasswordHash)
		assert.NotEqual(t, password, user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)))
	})
}
