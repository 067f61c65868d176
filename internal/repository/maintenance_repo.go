package repository

import (
	"context"

	"github.com/vanozi/superleuk-backend/internal/model"

	"gorm.io/gorm"
)

type MaintenanceRepository interface {
	Create(ctx context.Context, issue *model.MaintenanceIssue) error
	FindByID(ctx context.Context, id uint) (*model.MaintenanceIssue, error)
	List(ctx context.Context) ([]model.MaintenanceIssue, error)
	ListByMachine(ctx context.Context, machineID uint) ([]model.MaintenanceIssue, error)
	Update(ctx context.Context, issue *model.MaintenanceIssue) error
	Delete(ctx context.Context, issue *model.MaintenanceIssue) error
}

type maintenanceRepo struct{ db *gorm.DB }

func NewMaintenanceRepository(db *gorm.DB) MaintenanceRepository {
	return &maintenanceRepo{db: db}
}

func (r *maintenanceRepo) Create(ctx context.Context, issue *model.MaintenanceIssue) error {
	return r.db.WithContext(ctx).Create(issue).Error
}

func (r *maintenanceRepo) FindByID(ctx context.Context, id uint) (*model.MaintenanceIssue, error) {
	var issue model.MaintenanceIssue
	err := r.db.WithContext(ctx).
		Preload("Machine").Preload("User.Roles").Preload("User.Address").
		First(&issue, id).Error
	return &issue, err
}

func (r *maintenanceRepo) List(ctx context.Context) ([]model.MaintenanceIssue, error) {
	var issues []model.MaintenanceIssue
	err := r.db.WithContext(ctx).
		Preload("Machine").Preload("User.Roles").Preload("User.Address").
		Order("created_at DESC").Find(&issues).Error
	return issues, err
}

func (r *maintenanceRepo) ListByMachine(ctx context.Context, machineID uint) ([]model.MaintenanceIssue, error) {
	var issues []model.MaintenanceIssue
	err := r.db.WithContext(ctx).Where("machine_id = ?", machineID).
		Order("created_at DESC").Find(&issues).Error
	return issues, err
}

func (r *maintenanceRepo) Update(ctx context.Context, issue *model.MaintenanceIssue) error {
	return r.db.WithContext(ctx).Save(issue).Error
}

func (r *maintenanceRepo) Delete(ctx context.Context, issue *model.MaintenanceIssue) error {
	return r.db.WithContext(ctx).Delete(issue).Error
}
