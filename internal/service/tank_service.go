package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vanozi/superleuk-backend/internal/apierror"
	"github.com/vanozi/superleuk-backend/internal/dto"
	"github.com/vanozi/superleuk-backend/internal/model"
	"github.com/vanozi/superleuk-backend/internal/repository"
)

// Internal bookkeeping transactions carry this vehicle name; they never show
// up in listings or charts.
const excludedVehicle = "Klein materiaal"

type TankService interface {
	Create(ctx context.Context, req dto.TankTransactionRequest) (*dto.TankTransactionResponse, error)
	List(ctx context.Context) ([]dto.TankTransactionResponse, error)
	Get(ctx context.Context, id uint) (*dto.TankTransactionResponse, error)
	ListByVehicle(ctx context.Context, vehicle string) ([]dto.TankTransactionResponse, error)
	Delete(ctx context.Context, id uint) error
	SummedQuantityBetween(ctx context.Context, from, to time.Time) (map[string]int, error)
}

type tankService struct {
	tank repository.TankTransactionRepository
}

func NewTankService(tank repository.TankTransactionRepository) TankService {
	return &tankService{tank: tank}
}

// Create stores one dispensing record; the start timestamp is the natural key
// the tank installation provides.
func (s *tankService) Create(ctx context.Context, req dto.TankTransactionRequest) (*dto.TankTransactionResponse, error) {
	start, err := time.Parse(time.RFC3339, req.StartDateTime)
	if err != nil {
		// The tank export writes timestamps without a zone.
		start, err = time.Parse("2006-01-02 15:04:05", req.StartDateTime)
		if err != nil {
			return nil, apierror.BadRequest("Ongeldige start tijd")
		}
	}

	if _, err := s.tank.FindByStartDateTime(ctx, start); err == nil {
		return nil, apierror.Conflict("Tank transactie bestaat al op basis van start tijd tank beurt")
	}

	transaction := &model.TankTransaction{
		Vehicle:             req.Vehicle,
		Driver:              req.Driver,
		TransactionType:     req.TransactionType,
		AcquisitionMode:     req.AcquisitionMode,
		TransactionStatus:   req.TransactionStatus,
		StartDateTime:       start,
		TransactionNumber:   req.TransactionNumber,
		Product:             req.Product,
		Quantity:            req.Quantity,
		TransactionDuration: req.TransactionDuration,
		Meter:               req.Meter,
		MeterType:           req.MeterType,
	}
	if err := s.tank.Create(ctx, transaction); err != nil {
		return nil, err
	}
	resp := toTankTransactionResponse(*transaction)
	return &resp, nil
}

func (s *tankService) List(ctx context.Context) ([]dto.TankTransactionResponse, error) {
	transactions, err := s.tank.List(ctx, excludedVehicle)
	if err != nil {
		return nil, err
	}
	return toTankTransactionResponses(transactions), nil
}

func (s *tankService) Get(ctx context.Context, id uint) (*dto.TankTransactionResponse, error) {
	transaction, err := s.tank.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound(fmt.Sprintf("Tank transactie met %d niet gevonden", id))
	}
	resp := toTankTransactionResponse(*transaction)
	return &resp, nil
}

func (s *tankService) ListByVehicle(ctx context.Context, vehicle string) ([]dto.TankTransactionResponse, error) {
	transactions, err := s.tank.ListByVehicle(ctx, vehicle)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, apierror.NotFound(fmt.Sprintf("Geen transacties voor %s gevonden", vehicle))
	}
	return toTankTransactionResponses(transactions), nil
}

func (s *tankService) Delete(ctx context.Context, id uint) error {
	transaction, err := s.tank.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFound("Tank transactie niet gevonden")
	}
	return s.tank.Delete(ctx, transaction)
}

// SummedQuantityBetween feeds the consumption chart: whole litres dispensed
// per day, internal transactions excluded.
func (s *tankService) SummedQuantityBetween(ctx context.Context, from, to time.Time) (map[string]int, error) {
	transactions, err := s.tank.ListBetween(ctx, from, to, excludedVehicle)
	if err != nil {
		return nil, err
	}
	sums := map[string]int{}
	for _, t := range transactions {
		day := t.StartDateTime.Format("2006-01-02")
		sums[day] += int(t.Quantity.IntPart())
	}
	return sums, nil
}

func toTankTransactionResponses(transactions []model.TankTransaction) []dto.TankTransactionResponse {
	resp := make([]dto.TankTransactionResponse, len(transactions))
	for i, t := range transactions {
		resp[i] = toTankTransactionResponse(t)
	}
	return resp
}
