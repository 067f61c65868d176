package repository

import (
	"context"

	"github.com/vanozi/superleuk-backend/internal/model"

	"gorm.io/gorm"
)

type AllowedUserRepository interface {
	Create(ctx context.Context, a *model.AllowedUser) error
	FindByID(ctx context.Context, id uint) (*model.AllowedUser, error)
	FindByEmail(ctx context.Context, email string) (*model.AllowedUser, error)
	List(ctx context.Context) ([]model.AllowedUser, error)
	Update(ctx context.Context, a *model.AllowedUser) error
	Delete(ctx context.Context, a *model.AllowedUser) error
}

type allowedUserRepo struct{ db *gorm.DB }

func NewAllowedUserRepository(db *gorm.DB) AllowedUserRepository {
	return &allowedUserRepo{db: db}
}

func (r *allowedUserRepo) Create(ctx context.Context, a *model.AllowedUser) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *allowedUserRepo) FindByID(ctx context.Context, id uint) (*model.AllowedUser, error) {
	var a model.AllowedUser
	err := r.db.WithContext(ctx).First(&a, id).Error
	return &a, err
}

func (r *allowedUserRepo) FindByEmail(ctx context.Context, email string) (*model.AllowedUser, error) {
	var a model.AllowedUser
	err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&a).Error
	return &a, err
}

func (r *allowedUserRepo) List(ctx context.Context) ([]model.AllowedUser, error) {
	var invitations []model.AllowedUser
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&invitations).Error
	return invitations, err
}

func (r *allowedUserRepo) Update(ctx context.Context, a *model.AllowedUser) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *allowedUserRepo) Delete(ctx context.Context, a *model.AllowedUser) error {
	return r.db.WithContext(ctx).Delete(a).Error
}
