package service

import (
	"context"
	"fmt"

	"github.com/vanozi/superleuk-backend/internal/apierror"
	"github.com/vanozi/superleuk-backend/internal/dto"
	"github.com/vanozi/superleuk-backend/internal/model"
	"github.com/vanozi/superleuk-backend/internal/repository"
)

type MachinesService interface {
	Create(ctx context.Context, user *model.User, req dto.MachineRequest) (*dto.MachineResponse, error)
	UpdateByWorkNumber(ctx context.Context, user *model.User, req dto.MachineRequest) (*dto.MachineResponse, error)
	List(ctx context.Context) ([]dto.MachineResponse, error)
	Get(ctx context.Context, id uint) (*dto.SingleMachineResponse, error)
	Delete(ctx context.Context, id uint) error
}

type machinesService struct {
	machines    repository.MachineRepository
	maintenance repository.MaintenanceRepository
	tank        repository.TankTransactionRepository
}

func NewMachinesService(
	machines repository.MachineRepository,
	maintenance repository.MaintenanceRepository,
	tank repository.TankTransactionRepository,
) MachinesService {
	return &machinesService{machines: machines, maintenance: maintenance, tank: tank}
}

func (s *machinesService) Create(ctx context.Context, user *model.User, req dto.MachineRequest) (*dto.MachineResponse, error) {
	if _, err := s.machines.FindByWorkNumber(ctx, req.WorkNumber); err == nil {
		return nil, apierror.Conflict(fmt.Sprintf("Machine met werknummer %s bestaat al", req.WorkNumber))
	}

	machine := &model.Machine{
		WorkNumber: req.WorkNumber,
		CreatedBy:  user.Email,
	}
	applyMachineUpdate(machine, req, user.Email)
	if err := s.machines.Create(ctx, machine); err != nil {
		return nil, err
	}
	resp := toMachineResponse(machine)
	return &resp, nil
}

// UpdateByWorkNumber addresses the machine by its work number, the identifier
// the workshop uses.
func (s *machinesService) UpdateByWorkNumber(ctx context.Context, user *model.User, req dto.MachineRequest) (*dto.MachineResponse, error) {
	machine, err := s.machines.FindByWorkNumber(ctx, req.WorkNumber)
	if err != nil {
		return nil, apierror.NotFound(fmt.Sprintf("Machine met werknummer %s niet gevonden", req.WorkNumber))
	}

	applyMachineUpdate(machine, req, user.Email)
	if err := s.machines.Update(ctx, machine); err != nil {
		return nil, err
	}
	resp := toMachineResponse(machine)
	return &resp, nil
}

func applyMachineUpdate(machine *model.Machine, req dto.MachineRequest, modifiedBy string) {
	if req.WorkName != nil {
		machine.WorkName = req.WorkName
	}
	if req.Category != nil {
		machine.Category = req.Category
	}
	if req.Group != nil {
		machine.Group = req.Group
	}
	if req.BrandName != nil {
		machine.BrandName = req.BrandName
	}
	if req.TypeName != nil {
		machine.TypeName = req.TypeName
	}
	if req.LicenceNumber != nil {
		machine.LicenceNumber = req.LicenceNumber
	}
	if req.ChassisNumber != nil {
		machine.ChassisNumber = req.ChassisNumber
	}
	if req.ConstructionYear != nil {
		machine.ConstructionYear = req.ConstructionYear
	}
	if req.AscriptionCode != nil {
		machine.AscriptionCode = req.AscriptionCode
	}
	if req.InsuranceType != nil {
		machine.InsuranceType = req.InsuranceType
	}
	machine.LastModifiedBy = &modifiedBy
}

func (s *machinesService) List(ctx context.Context) ([]dto.MachineResponse, error) {
	machines, err := s.machines.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MachineResponse, len(machines))
	for i := range machines {
		resp[i] = toMachineResponse(&machines[i])
	}
	return resp, nil
}

// Get bundles the machine with its maintenance tickets and the fuel
// transactions booked on its work name.
func (s *machinesService) Get(ctx context.Context, id uint) (*dto.SingleMachineResponse, error) {
	machine, err := s.machines.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound(fmt.Sprintf("Machine met ID %d niet gevonden", id))
	}

	issues, err := s.maintenance.ListByMachine(ctx, machine.ID)
	if err != nil {
		return nil, err
	}
	issueResponses := make([]dto.MaintenanceResponse, len(issues))
	for i, issue := range issues {
		issueResponses[i] = toMaintenanceResponse(issue)
	}

	transactions := []dto.TankTransactionResponse{}
	if machine.WorkName != nil {
		records, err := s.tank.ListByVehicle(ctx, *machine.WorkName)
		if err != nil {
			return nil, err
		}
		for _, t := range records {
			transactions = append(transactions, toTankTransactionResponse(t))
		}
	}

	return &dto.SingleMachineResponse{
		Info:              toMachineResponse(machine),
		MaintenanceIssues: issueResponses,
		TankTransactions:  transactions,
	}, nil
}

func (s *machinesService) Delete(ctx context.Context, id uint) error {
	machine, err := s.machines.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFound("Machine niet gevonden")
	}
	return s.machines.Delete(ctx, machine)
}
