package repository

import (
	"context"

	"github.com/vanozi/superleuk-backend/internal/model"

	"gorm.io/gorm"
)

type BouwPlanRepository interface {
	Create(ctx context.Context, p *model.BouwPlan) error
	FindByID(ctx context.Context, id uint) (*model.BouwPlan, error)
	List(ctx context.Context) ([]model.BouwPlan, error)
	ListByYear(ctx context.Context, year int) ([]model.BouwPlan, error)
	Update(ctx context.Context, p *model.BouwPlan) error
	Delete(ctx context.Context, p *model.BouwPlan) error
}

type bouwPlanRepo struct{ db *gorm.DB }

func NewBouwPlanRepository(db *gorm.DB) BouwPlanRepository { return &bouwPlanRepo{db: db} }

func (r *bouwPlanRepo) Create(ctx context.Context, p *model.BouwPlan) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *bouwPlanRepo) FindByID(ctx context.Context, id uint) (*model.BouwPlan, error) {
	var p model.BouwPlan
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *bouwPlanRepo) List(ctx context.Context) ([]model.BouwPlan, error) {
	var plans []model.BouwPlan
	err := r.db.WithContext(ctx).Order("year DESC, perceel_nummer ASC").Find(&plans).Error
	return plans, err
}

func (r *bouwPlanRepo) ListByYear(ctx context.Context, year int) ([]model.BouwPlan, error) {
	var plans []model.BouwPlan
	err := r.db.WithContext(ctx).Where("year = ?", year).Order("perceel_nummer ASC").Find(&plans).Error
	return plans, err
}

func (r *bouwPlanRepo) Update(ctx context.Context, p *model.BouwPlan) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *bouwPlanRepo) Delete(ctx context.Context, p *model.BouwPlan) error {
	return r.db.WithContext(ctx).Delete(p).Error
}
