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

// PermissionCatalog is the permission listing plus a grouping by
// category for presentation.
type PermissionCatalog struct {
	Permissions []model.Permission            `json:"permissions"`
	ByCategory  map[string][]model.Permission `json:"by_category"`
}

// RoleService enforces the role table invariants: unique names, derived
// slugs, and immutability of system roles.
type RoleService interface {
	Create(ctx context.Context, name, description string, permissions []string) (*model.Role, error)
	Update(ctx context.Context, id uuid.UUID, name, description string, permissions []string) (*model.Role, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*model.Role, error)
	List(ctx context.Context) ([]model.Role, error)
	Catalog(ctx context.Context) (*PermissionCatalog, error)
}

type roleService struct {
	roles       repository.RoleRepository
	permissions repository.PermissionRepository
}

// NewRoleService builds a RoleService.
func NewRoleService(roles repository.RoleRepository, permissions repository.PermissionRepository) RoleService {
	return &roleService{roles: roles, permissions: permissions}
}

func (s *roleService) Create(ctx context.Context, name, description string, permissions []string) (*model.Role, error) {
	existing, err := s.roles.FindByName(ctx, name)
	if err == nil && existing != nil {
		return nil, apperrors.ErrRoleNameTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check role name: %w", err)
	}

	role := &model.Role{
		Name:        name,
		Slug:        model.Slugify(name),
		Description: description,
		Permissions: model.StringList(permissions),
		IsSystem:    false,
	}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, fmt.Errorf("create role: %w", err)
	}
	return role, nil
}

// Update mutates a custom role. Renaming re-derives the slug, which is
// the join key the authorization gates match against: tokens minted
// under the old name stop matching until their users are reassigned.
func (s *roleService) Update(ctx context.Context, id uuid.UUID, name, description string, permissions []string) (*model.Role, error) {
	role, err := s.findRole(ctx, id)
	if err != nil {
		return nil, err
	}
	if role.IsSystem {
		return nil, apperrors.ErrSystemRole
	}

	if name != "" && name != role.Name {
		other, err := s.roles.FindByName(ctx, name)
		if err == nil && other != nil && other.ID != role.ID {
			return nil, apperrors.ErrRoleNameTaken
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check role name: %w", err)
		}
		role.Name = name
		role.Slug = model.Slugify(name)
	}
	if description != "" {
		role.Description = description
	}
	if permissions != nil {
		role.Permissions = model.StringList(permissions)
	}

	if err := s.roles.Update(ctx, role); err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}
	return role, nil
}

func (s *roleService) Delete(ctx context.Context, id uuid.UUID) error {
	role, err := s.findRole(ctx, id)
	if err != nil {
		return err
	}
	if role.IsSystem {
		return apperrors.ErrSystemRole
	}
	if err := s.roles.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}

func (s *roleService) Get(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	return s.findRole(ctx, id)
}

func (s *roleService) List(ctx context.Context) ([]model.Role, error) {
	return s.roles.List(ctx)
}

func (s *roleService) Catalog(ctx context.Context) (*PermissionCatalog, error) {
	perms, err := s.permissions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	grouped := make(map[string][]model.Permission)
	for _, p := range perms {
		grouped[p.Category] = append(grouped[p.Category], p)
	}
	return &PermissionCatalog{Permissions: perms, ByCategory: grouped}, nil
}

func (s *roleService) findRole(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return role, nil
}
