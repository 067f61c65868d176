package repository

import (
	"context"

	"github.com/vanozi/superleuk-backend/internal/model"

	"gorm.io/gorm"
)

// UserRepository defines the data access contract for accounts.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	ListActiveWithRole(ctx context.Context, role string) ([]model.User, error)
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, u *model.User) error

	AddRole(ctx context.Context, u *model.User, r *model.Role) error
	RemoveRole(ctx context.Context, u *model.User, r *model.Role) error

	FindAddressByUserID(ctx context.Context, userID uint) (*model.Address, error)
	SaveAddress(ctx context.Context, a *model.Address) error
}

type userRepo struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepo{db: db} }

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Preload("Roles").Preload("Address").First(&u, id).Error
	return &u, err
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Preload("Roles").Preload("Address").
		Where("LOWER(email) = LOWER(?)", email).First(&u).Error
	return &u, err
}

func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Preload("Roles").Preload("Address").Find(&users).Error
	return users, err
}

// ListActiveWithRole returns active users carrying the named role, roles preloaded.
func (r *userRepo) ListActiveWithRole(ctx context.Context, role string) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Preload("Roles").
		Joins("JOIN user_roles ON user_roles.user_id = users.id").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("users.is_active = true AND roles.name = ?", role).
		Distinct("users.*").
		Find(&users).Error
	return users, err
}

func (r *userRepo) Update(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *userRepo) Delete(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Select("Address", "WorkingHours", "Vakanties", "DeviceLoginStatuses").
		Delete(u).Error
}

func (r *userRepo) AddRole(ctx context.Context, u *model.User, role *model.Role) error {
	return r.db.WithContext(ctx).Model(u).Association("Roles").Append(role)
}

func (r *userRepo) RemoveRole(ctx context.Context, u *model.User, role *model.Role) error {
	return r.db.WithContext(ctx).Model(u).Association("Roles").Delete(role)
}

func (r *userRepo) FindAddressByUserID(ctx context.Context, userID uint) (*model.Address, error) {
	var a model.Address
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&a).Error
	return &a, err
}

func (r *userRepo) SaveAddress(ctx context.Context, a *model.Address) error {
	return r.db.WithContext(ctx).Save(a).Error
}
