package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "pressroom/internal/errors"
	"pressroom/internal/model"
)

// MockRoleRepository is a mock implementation of RoleRepository.
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) Create(ctx context.Context, role *model.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) Update(ctx context.Context, role *model.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRoleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *MockRoleRepository) FindByName(ctx context.Context, name string) (*model.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *MockRoleRepository) FindBySlug(ctx context.Context, slug string) (*model.Role, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *MockRoleRepository) List(ctx context.Context) ([]model.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Role), args.Error(1)
}

// MockPermissionRepository is a mock implementation of PermissionRepository.
type MockPermissionRepository struct {
	mock.Mock
}

func (m *MockPermissionRepository) List(ctx context.Context) ([]model.Permission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Permission), args.Error(1)
}

func TestRoleService_Create(t *testing.T) {
	t.Run("derives slug from name", func(t *testing.T) {
		roles := new(MockRoleRepository)
		roles.On("FindByName", mock.Anything, "Content Manager").Return(nil, gorm.ErrRecordNotFound)
		roles.On("Create", mock.Anything, mock.AnythingOfType("*model.Role")).Return(nil)

		svc := NewRoleService(roles, new(MockPermissionRepository))
		role, err := svc.Create(context.Background(), "Content Manager", "Runs the newsroom", []string{"edit_articles"})

		assert.NoError(t, err)
		assert.Equal(t, "content-manager", role.Slug)
		assert.False(t, role.IsSystem)
		roles.AssertExpectations(t)
	})

	t.Run("duplicate name", func(t *testing.T) {
		roles := new(MockRoleRepository)
		roles.On("FindByName", mock.Anything, "Editor").Return(&model.Role{
			ID:   uuid.New(),
			Name: "Editor",
		}, nil)

		svc := NewRoleService(roles, new(MockPermissionRepository))
		_, err := svc.Create(context.Background(), "Editor", "", nil)
		assert.ErrorIs(t, err, apperrors.ErrRoleNameTaken)
	})
}

func TestRoleService_Update(t *testing.T) {
	t.Run("system role is immutable", func(t *testing.T) {
		id := uuid.New()
		roles := new(MockRoleRepository)
		roles.On("FindByID", mock.Anything, id).Return(&model.Role{
			ID:       id,
			Name:     "Admin",
			Slug:     "admin",
			IsSystem: true,
		}, nil)

		svc := NewRoleService(roles, new(MockPermissionRepository))
		_, err := svc.Update(context.Background(), id, "Administrator", "", nil)
		assert.ErrorIs(t, err, apperrors.ErrSystemRole)
		roles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("rename re-derives the slug", func(t *testing.T) {
		id := uuid.New()
		roles := new(MockRoleRepository)
		roles.On("FindByID", mock.Anything, id).Return(&model.Role{
			ID:   id,
			Name: "News Desk",
			Slug: "news-desk",
		}, nil)
		roles.On("FindByName", mock.Anything, "Sports Desk").Return(nil, gorm.ErrRecordNotFound)
		roles.On("Update", mock.Anything, mock.AnythingOfType("*model.Role")).Return(nil)

		svc := NewRoleService(roles, new(MockPermissionRepository))
		role, err := svc.Update(context.Background(), id, "Sports Desk", "", nil)

		assert.NoError(t, err)
		assert.Equal(t, "sports-desk", role.Slug)
	})

	t.Run("rename onto an existing name", func(t *testing.T) {
		id := uuid.New()
		roles := new(MockRoleRepository)
		roles.On("FindByID", mock.Anything, id).Return(&model.Role{
			ID:   id,
			Name: "News Desk",
			Slug: "news-desk",
		}, nil)
		roles.On("FindByName", mock.Anything, "Editor").Return(&model.Role{
			ID:   uuid.New(),
			Name: "Editor",
		}, nil)

		svc := NewRoleService(roles, new(MockPermissionRepository))
		_, err := svc.Update(context.Background(), id, "Editor", "", nil)
		assert.ErrorIs(t, err, apperrors.ErrRoleNameTaken)
	})
}

func TestRoleService_Delete(t *testing.T) {
	t.Run("system role cannot be deleted", func(t *testing.T) {
		id := uuid.New()
		roles := new(MockRoleRepository)
		roles.On("FindByID", mock.Anything, id).Return(&model.Role{
			ID:       id,
			Name:     "Viewer",
			Slug:     "viewer",
			IsSystem: true,
		}, nil)

		svc := NewRoleService(roles, new(MockPermissionRepository))
		err := svc.Delete(context.Background(), id)
		assert.ErrorIs(t, err, apperrors.ErrSystemRole)
		roles.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("custom role is deleted", func(t *testing.T) {
		id := uuid.New()
		roles := new(MockRoleRepository)
		roles.On("FindByID", mock.Anything, id).Return(&model.Role{
			ID:   id,
			Name: "News Desk",
			Slug: "news-desk",
		}, nil)
		roles.On("Delete", mock.Anything, id).Return(nil)

		svc := NewRoleService(roles, new(MockPermissionRepository))
		assert.NoError(t, svc.Delete(context.Background(), id))
		roles.AssertExpectations(t)
	})

	t.Run("unknown role", func(t *testing.T) {
		id := uuid.New()
		roles := new(MockRoleRepository)
		roles.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		svc := NewRoleService(roles, new(MockPermissionRepository))
		err := svc.Delete(context.Background(), id)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestRoleService_Catalog(t *testing.T) {
	permissions := new(MockPermissionRepository)
	permissions.On("List", mock.Anything).Return([]model.Permission{
		{Name: "Create Articles", Slug: "create_articles", Category: "articles"},
		{Name: "Edit Articles", Slug: "edit_articles", Category: "articles"},
		{Name: "Manage Users", Slug: "manage_users", Category: "users"},
	}, nil)

	svc := NewRoleService(new(MockRoleRepository), permissions)
	catalog, err := svc.Catalog(context.Background())

	assert.NoError(t, err)
	assert.Len(t, catalog.Permissions, 3)
	assert.Len(t, catalog.ByCategory["articles"], 2)
	assert.Len(t, catalog.ByCategory["users"], 1)
}
