package service

import (
	"context"
	"errors"
	"time"

	"github.com/vanozi/superleuk-backend/internal/apierror"
	"github.com/vanozi/superleuk-backend/internal/dto"
	"github.com/vanozi/superleuk-backend/internal/model"
	"github.com/vanozi/superleuk-backend/internal/repository"

	"gorm.io/gorm"
)

type UsersService interface {
	Get(ctx context.Context, id uint) (*dto.UserResponse, error)
	List(ctx context.Context) ([]dto.UserResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id uint) error

	AddRole(ctx context.Context, req dto.AddRoleToUserRequest) (*dto.UserResponse, error)
	RemoveRole(ctx context.Context, req dto.RemoveRoleFromUserRequest) (*dto.UserResponse, error)

	UpsertAddress(ctx context.Context, userID uint, req dto.UpdateAddressRequest) (*dto.UserResponse, error)
}

type usersService struct {
	users repository.UserRepository
	roles repository.RoleRepository
}

func NewUsersService(users repository.UserRepository, roles repository.RoleRepository) UsersService {
	return &usersService{users: users, roles: roles}
}

func (s *usersService) Get(ctx context.Context, id uint) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Gebruiker niet gevonden")
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *usersService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UserResponse, len(users))
	for i := range users {
		resp[i] = toUserResponse(&users[i])
	}
	return resp, nil
}

// Update applies a partial profile update: only fields present in the request
// body are written.
func (s *usersService) Update(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Gebruiker niet gevonden")
	}

	if req.FirstName != nil {
		user.FirstName = req.FirstName
	}
	if req.LastName != nil {
		user.LastName = req.LastName
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, apierror.BadRequest("Ongeldige geboortedatum")
		}
		user.DateOfBirth = &dob
	}
	if req.TelephoneNumber != nil {
		user.TelephoneNumber = req.TelephoneNumber
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *usersService) Delete(ctx context.Context, id uint) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFound("Gebruiker niet gevonden")
	}
	return s.users.Delete(ctx, user)
}

func (s *usersService) AddRole(ctx context.Context, req dto.AddRoleToUserRequest) (*dto.UserResponse, error) {
	user, role, err := s.findUserAndRole(ctx, req.UserID, req.RoleID)
	if err != nil {
		return nil, err
	}
	if !user.HasRole(role.Name) {
		if err := s.users.AddRole(ctx, user, role); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, user.ID)
}

func (s *usersService) RemoveRole(ctx context.Context, req dto.RemoveRoleFromUserRequest) (*dto.UserResponse, error) {
	user, role, err := s.findUserAndRole(ctx, req.UserID, req.RoleID)
	if err != nil {
		return nil, err
	}
	if err := s.users.RemoveRole(ctx, user, role); err != nil {
		return nil, err
	}
	return s.Get(ctx, user.ID)
}

func (s *usersService) findUserAndRole(ctx context.Context, userID, roleID uint) (*model.User, *model.Role, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, apierror.NotFound("Gebruiker niet gevonden")
	}
	role, err := s.roles.FindByID(ctx, roleID)
	if err != nil {
		return nil, nil, apierror.NotFound("Rol niet gevonden")
	}
	return user, role, nil
}

// UpsertAddress creates the user's address on first write and partially
// updates it afterwards.
func (s *usersService) UpsertAddress(ctx context.Context, userID uint, req dto.UpdateAddressRequest) (*dto.UserResponse, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, apierror.NotFound("Gebruiker niet gevonden")
	}

	address, err := s.users.FindAddressByUserID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		address = &model.Address{UserID: userID}
	} else if err != nil {
		return nil, err
	}

	if req.Street != nil {
		address.Street = req.Street
	}
	if req.Number != nil {
		address.Number = req.Number
	}
	if req.PostalCode != nil {
		address.PostalCode = req.PostalCode
	}
	if req.City != nil {
		address.City = req.City
	}
	if req.Country != nil {
		address.Country = req.Country
	}

	if err := s.users.SaveAddress(ctx, address); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}
