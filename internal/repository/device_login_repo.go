package repository

import (
	"context"

	"github.com/vanozi/superleuk-backend/internal/model"

	"gorm.io/gorm"
)

type DeviceLoginRepository interface {
	Create(ctx context.Context, d *model.DeviceLoginStatus) error
	FindByDeviceID(ctx context.Context, deviceID string) (*model.DeviceLoginStatus, error)
	Update(ctx context.Context, d *model.DeviceLoginStatus) error
	Delete(ctx context.Context, d *model.DeviceLoginStatus) error
}

type deviceLoginRepo struct{ db *gorm.DB }

func NewDeviceLoginRepository(db *gorm.DB) DeviceLoginRepository {
	return &deviceLoginRepo{db: db}
}

func (r *deviceLoginRepo) Create(ctx context.Context, d *model.DeviceLoginStatus) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *deviceLoginRepo) FindByDeviceID(ctx context.Context, deviceID string) (*model.DeviceLoginStatus, error) {
	var d model.DeviceLoginStatus
	err := r.db.WithContext(ctx).Where("device_id = ?", deviceID).First(&d).Error
	return &d, err
}

func (r *deviceLoginRepo) Update(ctx context.Context, d *model.DeviceLoginStatus) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *deviceLoginRepo) Delete(ctx context.Context, d *model.DeviceLoginStatus) error {
	return r.db.WithContext(ctx).Delete(d).Error
}
