package service

import (
	"context"

	"github.com/vanozi/superleuk-backend/internal/apierror"
	"github.com/vanozi/superleuk-backend/internal/dto"
	"github.com/vanozi/superleuk-backend/internal/model"
	"github.com/vanozi/superleuk-backend/internal/repository"
)

type RolesService interface {
	Create(ctx context.Context, req dto.CreateRoleRequest) (*dto.RoleResponse, error)
	List(ctx context.Context) ([]dto.RoleResponse, error)
	Delete(ctx context.Context, id uint) error
}

type rolesService struct {
	roles repository.RoleRepository
}

func NewRolesService(roles repository.RoleRepository) RolesService {
	return &rolesService{roles: roles}
}

func (s *rolesService) Create(ctx context.Context, req dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	if _, err := s.roles.FindByName(ctx, req.Name); err == nil {
		return nil, apierror.Conflict("Rol met deze naam bestaat al")
	}

	role := &model.Role{Name: req.Name, Description: req.Description}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, err
	}
	resp := toRoleResponse(*role)
	return &resp, nil
}

func (s *rolesService) List(ctx context.Context) ([]dto.RoleResponse, error) {
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.RoleResponse, len(roles))
	for i, r := range roles {
		resp[i] = toRoleResponse(r)
	}
	return resp, nil
}

func (s *rolesService) Delete(ctx context.Context, id uint) error {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFound("Rol niet gevonden")
	}
	return s.roles.Delete(ctx, role)
}
