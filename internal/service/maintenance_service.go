package service

import (
	"context"

	"github.com/vanozi/superleuk-backend/internal/apierror"
	"github.com/vanozi/superleuk-backend/internal/dto"
	"github.com/vanozi/superleuk-backend/internal/model"
	"github.com/vanozi/superleuk-backend/internal/repository"
)

type MaintenanceService interface {
	Create(ctx context.Context, user *model.User, req dto.CreateMaintenanceRequest) (*dto.MaintenanceResponse, error)
	Update(ctx context.Context, user *model.User, req dto.UpdateMaintenanceRequest) (*dto.MaintenanceResponse, error)
	List(ctx context.Context) ([]dto.MaintenanceResponse, error)
	Get(ctx context.Context, id uint) (*dto.MaintenanceResponse, error)
	Delete(ctx context.Context, id uint) error
}

type maintenanceService struct {
	maintenance repository.MaintenanceRepository
	machines    repository.MachineRepository
}

func NewMaintenanceService(maintenance repository.MaintenanceRepository, machines repository.MachineRepository) MaintenanceService {
	return &maintenanceService{maintenance: maintenance, machines: machines}
}

func (s *maintenanceService) Create(ctx context.Context, user *model.User, req dto.CreateMaintenanceRequest) (*dto.MaintenanceResponse, error) {
	if _, err := s.machines.FindByID(ctx, req.MachineID); err != nil {
		return nil, apierror.BadRequest("Machine niet bekend")
	}

	issue := &model.MaintenanceIssue{
		IssueDescription: &req.IssueDescription,
		Status:           &req.Status,
		Priority:         req.Priority,
		CreatedBy:        user.Email,
		LastModifiedBy:   &user.Email,
		MachineID:        req.MachineID,
		UserID:           user.ID,
	}
	if err := s.maintenance.Create(ctx, issue); err != nil {
		return nil, err
	}
	return s.Get(ctx, issue.ID)
}

func (s *maintenanceService) Update(ctx context.Context, user *model.User, req dto.UpdateMaintenanceRequest) (*dto.MaintenanceResponse, error) {
	issue, err := s.maintenance.FindByID(ctx, req.ID)
	if err != nil {
		return nil, apierror.BadRequest("Onderhouds issue niet bekend")
	}

	if req.IssueDescription != nil {
		issue.IssueDescription = req.IssueDescription
	}
	if req.Status != nil {
		issue.Status = req.Status
	}
	if req.Priority != nil {
		issue.Priority = req.Priority
	}
	issue.LastModifiedBy = &user.Email

	if err := s.maintenance.Update(ctx, issue); err != nil {
		return nil, err
	}
	return s.Get(ctx, issue.ID)
}

func (s *maintenanceService) List(ctx context.Context) ([]dto.MaintenanceResponse, error) {
	issues, err := s.maintenance.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MaintenanceResponse, len(issues))
	for i, issue := range issues {
		resp[i] = toMaintenanceResponse(issue)
	}
	return resp, nil
}

func (s *maintenanceService) Get(ctx context.Context, id uint) (*dto.MaintenanceResponse, error) {
	issue, err := s.maintenance.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Onderhouds issue niet gevonden")
	}
	resp := toMaintenanceResponse(*issue)
	return &resp, nil
}

func (s *maintenanceService) Delete(ctx context.Context, id uint) error {
	issue, err := s.maintenance.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFound("Onderhouds issue is niet gevonden")
	}
	return s.maintenance.Delete(ctx, issue)
}
