package repository

import (
	"context"

	"github.com/vanozi/superleuk-backend/internal/model"

	"gorm.io/gorm"
)

type MachineRepository interface {
	Create(ctx context.Context, m *model.Machine) error
	FindByID(ctx context.Context, id uint) (*model.Machine, error)
	FindByWorkNumber(ctx context.Context, workNumber string) (*model.Machine, error)
	List(ctx context.Context) ([]model.Machine, error)
	Update(ctx context.Context, m *model.Machine) error
	Delete(ctx context.Context, m *model.Machine) error
}

type machineRepo struct{ db *gorm.DB }

func NewMachineRepository(db *gorm.DB) MachineRepository { return &machineRepo{db: db} }

func (r *machineRepo) Create(ctx context.Context, m *model.Machine) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *machineRepo) FindByID(ctx context.Context, id uint) (*model.Machine, error) {
	var m model.Machine
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *machineRepo) FindByWorkNumber(ctx context.Context, workNumber string) (*model.Machine, error) {
	var m model.Machine
	err := r.db.WithContext(ctx).Where("work_number = ?", workNumber).First(&m).Error
	return &m, err
}

func (r *machineRepo) List(ctx context.Context) ([]model.Machine, error) {
	var machines []model.Machine
	err := r.db.WithContext(ctx).Order("work_number ASC").Find(&machines).Error
	return machines, err
}

func (r *machineRepo) Update(ctx context.Context, m *model.Machine) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *machineRepo) Delete(ctx context.Context, m *model.Machine) error {
	return r.db.WithContext(ctx).Select("MaintenanceIssues").Delete(m).Error
}
