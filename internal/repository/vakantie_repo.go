package repository

import (
	"context"
	"time"

	"github.com/vanozi/superleuk-backend/internal/model"

	"gorm.io/gorm"
)

type VakantieRepository interface {
	Create(ctx context.Context, v *model.Vakantie) error
	FindByID(ctx context.Context, id uint) (*model.Vakantie, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Vakantie, error)
	ListAll(ctx context.Context) ([]model.Vakantie, error)
	ListBetween(ctx context.Context, start, end time.Time) ([]model.Vakantie, error)
	Delete(ctx context.Context, v *model.Vakantie) error
}

type vakantieRepo struct{ db *gorm.DB }

func NewVakantieRepository(db *gorm.DB) VakantieRepository { return &vakantieRepo{db: db} }

func (r *vakantieRepo) Create(ctx context.Context, v *model.Vakantie) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vakantieRepo) FindByID(ctx context.Context, id uint) (*model.Vakantie, error) {
	var v model.Vakantie
	err := r.db.WithContext(ctx).Preload("User").First(&v, id).Error
	return &v, err
}

func (r *vakantieRepo) ListByUser(ctx context.Context, userID uint) ([]model.Vakantie, error) {
	var vakanties []model.Vakantie
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("start_date DESC").Find(&vakanties).Error
	return vakanties, err
}

func (r *vakantieRepo) ListAll(ctx context.Context) ([]model.Vakantie, error) {
	var vakanties []model.Vakantie
	err := r.db.WithContext(ctx).Preload("User.Roles").Order("start_date DESC").Find(&vakanties).Error
	return vakanties, err
}

// ListBetween returns every vacation intersecting [start, end].
func (r *vakantieRepo) ListBetween(ctx context.Context, start, end time.Time) ([]model.Vakantie, error) {
	var vakanties []model.Vakantie
	err := r.db.WithContext(ctx).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Order("start_date ASC").Find(&vakanties).Error
	return vakanties, err
}

func (r *vakantieRepo) Delete(ctx context.Context, v *model.Vakantie) error {
	return r.db.WithContext(ctx).Delete(v).Error
}
