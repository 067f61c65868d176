package repository

import (
	"context"
	"time"

	"github.com/vanozi/superleuk-backend/internal/model"

	"gorm.io/gorm"
)

type WorkingHoursRepository interface {
	Create(ctx context.Context, w *model.WorkingHours) error
	FindByID(ctx context.Context, id uint) (*model.WorkingHours, error)
	FindByUserAndDate(ctx context.Context, userID uint, date time.Time) (*model.WorkingHours, error)
	ListByUser(ctx context.Context, userID uint) ([]model.WorkingHours, error)
	ListByUserBetween(ctx context.Context, userID uint, from, to time.Time) ([]model.WorkingHours, error)
	ListByUserForYear(ctx context.Context, userID uint, year int) ([]model.WorkingHours, error)
	Update(ctx context.Context, w *model.WorkingHours) error
	Delete(ctx context.Context, w *model.WorkingHours) error
}

type workingHoursRepo struct{ db *gorm.DB }

func NewWorkingHoursRepository(db *gorm.DB) WorkingHoursRepository {
	return &workingHoursRepo{db: db}
}

func (r *workingHoursRepo) Create(ctx context.Context, w *model.WorkingHours) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *workingHoursRepo) FindByID(ctx context.Context, id uint) (*model.WorkingHours, error) {
	var w model.WorkingHours
	err := r.db.WithContext(ctx).First(&w, id).Error
	return &w, err
}

func (r *workingHoursRepo) FindByUserAndDate(ctx context.Context, userID uint, date time.Time) (*model.WorkingHours, error) {
	var w model.WorkingHours
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).First(&w).Error
	return &w, err
}

func (r *workingHoursRepo) ListByUser(ctx context.Context, userID uint) ([]model.WorkingHours, error) {
	var hours []model.WorkingHours
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("date ASC").Find(&hours).Error
	return hours, err
}

func (r *workingHoursRepo) ListByUserBetween(ctx context.Context, userID uint, from, to time.Time) ([]model.WorkingHours, error) {
	var hours []model.WorkingHours
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date ASC").Find(&hours).Error
	return hours, err
}

func (r *workingHoursRepo) ListByUserForYear(ctx context.Context, userID uint, year int) ([]model.WorkingHours, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return r.ListByUserBetween(ctx, userID, from, to)
}

func (r *workingHoursRepo) Update(ctx context.Context, w *model.WorkingHours) error {
	return r.db.WithContext(ctx).Save(w).Error
}

func (r *workingHoursRepo) Delete(ctx context.Context, w *model.WorkingHours) error {
	return r.db.WithContext(ctx).Delete(w).Error
}
