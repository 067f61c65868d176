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

type BouwPlanService interface {
	Create(ctx context.Context, user *model.User, req dto.BouwPlanRequest) (*dto.BouwPlanResponse, error)
	List(ctx context.Context, year *int) ([]dto.BouwPlanResponse, error)
	Get(ctx context.Context, id uint) (*dto.BouwPlanResponse, error)
	Update(ctx context.Context, user *model.User, id uint, req dto.BouwPlanRequest) (*dto.BouwPlanResponse, error)
	Delete(ctx context.Context, id uint) error
}

type bouwPlanService struct {
	plans repository.BouwPlanRepository
}

func NewBouwPlanService(plans repository.BouwPlanRepository) BouwPlanService {
	return &bouwPlanService{plans: plans}
}

func (s *bouwPlanService) Create(ctx context.Context, user *model.User, req dto.BouwPlanRequest) (*dto.BouwPlanResponse, error) {
	plan := &model.BouwPlan{CreatedBy: user.Email}
	applyBouwPlanUpdate(plan, req, user.Email)
	if plan.Year == nil {
		year := time.Now().Year()
		plan.Year = &year
	}
	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, err
	}
	resp := toBouwPlanResponse(plan)
	return &resp, nil
}

// List returns the whole plan history, or one cropping year when given.
func (s *bouwPlanService) List(ctx context.Context, year *int) ([]dto.BouwPlanResponse, error) {
	var (
		plans []model.BouwPlan
		err   error
	)
	if year != nil {
		plans, err = s.plans.ListByYear(ctx, *year)
	} else {
		plans, err = s.plans.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	resp := make([]dto.BouwPlanResponse, len(plans))
	for i := range plans {
		resp[i] = toBouwPlanResponse(&plans[i])
	}
	return resp, nil
}

func (s *bouwPlanService) Get(ctx context.Context, id uint) (*dto.BouwPlanResponse, error) {
	plan, err := s.plans.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound(fmt.Sprintf("Bouwplan met ID %d niet gevonden", id))
	}
	resp := toBouwPlanResponse(plan)
	return &resp, nil
}

func (s *bouwPlanService) Update(ctx context.Context, user *model.User, id uint, req dto.BouwPlanRequest) (*dto.BouwPlanResponse, error) {
	plan, err := s.plans.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound(fmt.Sprintf("Bouwplan met ID %d niet gevonden", id))
	}
	applyBouwPlanUpdate(plan, req, user.Email)
	if err := s.plans.Update(ctx, plan); err != nil {
		return nil, err
	}
	resp := toBouwPlanResponse(plan)
	return &resp, nil
}

func applyBouwPlanUpdate(plan *model.BouwPlan, req dto.BouwPlanRequest, modifiedBy string) {
	if req.Year != nil {
		plan.Year = req.Year
	}
	if req.Ha != nil {
		plan.Ha = req.Ha
	}
	if req.Link != nil {
		plan.Link = req.Link
	}
	if req.Gewas != nil {
		plan.Gewas = req.Gewas
	}
	if req.IngetekendDoor != nil {
		plan.IngetekendDoor = req.IngetekendDoor
	}
	if req.Opmerking != nil {
		plan.Opmerking = req.Opmerking
	}
	if req.PerceelNummer != nil {
		plan.PerceelNummer = req.PerceelNummer
	}
	if req.Werknaam != nil {
		plan.Werknaam = req.Werknaam
	}
	if req.Mest != nil {
		plan.Mest = req.Mest
	}
	plan.LastModifiedBy = &modifiedBy
}

func (s *bouwPlanService) Delete(ctx context.Context, id uint) error {
	plan, err := s.plans.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFound(fmt.Sprintf("Bouwplan met ID %d niet gevonden", id))
	}
	return s.plans.Delete(ctx, plan)
}

func toBouwPlanResponse(p *model.BouwPlan) dto.BouwPlanResponse {
	return dto.BouwPlanResponse{
		ID:             p.ID,
		Year:           p.Year,
		Ha:             p.Ha,
		Link:           p.Link,
		Gewas:          p.Gewas,
		IngetekendDoor: p.IngetekendDoor,
		Opmerking:      p.Opmerking,
		PerceelNummer:  p.PerceelNummer,
		Werknaam:       p.Werknaam,
		Mest:           p.Mest,
		CreatedAt:      fmtDate(p.CreatedAt),
	}
}
