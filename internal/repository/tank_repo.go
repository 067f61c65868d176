package repository

import (
	"context"
	"time"

	"github.com/vanozi/superleuk-backend/internal/model"

	"gorm.io/gorm"
)

type TankTransactionRepository interface {
	Create(ctx context.Context, t *model.TankTransaction) error
	FindByID(ctx context.Context, id uint) (*model.TankTransaction, error)
	FindByStartDateTime(ctx context.Context, start time.Time) (*model.TankTransaction, error)
	List(ctx context.Context, excludeVehicle string) ([]model.TankTransaction, error)
	ListByVehicle(ctx context.Context, vehicle string) ([]model.TankTransaction, error)
	ListBetween(ctx context.Context, from, to time.Time, excludeVehicle string) ([]model.TankTransaction, error)
	Delete(ctx context.Context, t *model.TankTransaction) error
}

type tankRepo struct{ db *gorm.DB }

func NewTankTransactionRepository(db *gorm.DB) TankTransactionRepository {
	return &tankRepo{db: db}
}

func (r *tankRepo) Create(ctx context.Context, t *model.TankTransaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tankRepo) FindByID(ctx context.Context, id uint) (*model.TankTransaction, error) {
	var t model.TankTransaction
	err := r.db.WithContext(ctx).First(&t, id).Error
	return &t, err
}

func (r *tankRepo) FindByStartDateTime(ctx context.Context, start time.Time) (*model.TankTransaction, error) {
	var t model.TankTransaction
	err := r.db.WithContext(ctx).Where("start_date_time = ?", start).First(&t).Error
	return &t, err
}

func (r *tankRepo) List(ctx context.Context, excludeVehicle string) ([]model.TankTransaction, error) {
	var transactions []model.TankTransaction
	q := r.db.WithContext(ctx)
	if excludeVehicle != "" {
		q = q.Where("vehicle IS NULL OR vehicle <> ?", excludeVehicle)
	}
	err := q.Order("start_date_time DESC").Find(&transactions).Error
	return transactions, err
}

func (r *tankRepo) ListByVehicle(ctx context.Context, vehicle string) ([]model.TankTransaction, error) {
	var transactions []model.TankTransaction
	err := r.db.WithContext(ctx).Where("vehicle = ?", vehicle).
		Order("start_date_time DESC").Find(&transactions).Error
	return transactions, err
}

func (r *tankRepo) ListBetween(ctx context.Context, from, to time.Time, excludeVehicle string) ([]model.TankTransaction, error) {
	var transactions []model.TankTransaction
	q := r.db.WithContext(ctx).Where("start_date_time >= ? AND start_date_time <= ?", from, to)
	if excludeVehicle != "" {
		q = q.Where("vehicle IS NULL OR vehicle <> ?", excludeVehicle)
	}
	err := q.Order("start_date_time ASC").Find(&transactions).Error
	return transactions, err
}

func (r *tankRepo) Delete(ctx context.Context, t *model.TankTransaction) error {
	return r.db.WithContext(ctx).Delete(t).Error
}
