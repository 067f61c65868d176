package infra

import (
	"fmt"

	"github.com/vanozi/superleuk-backend/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// to create / update all tables. Unique constraints (email, role name, work
// number, (user,date), start_date_time, device_id) are declared on the models
// and enforced at the storage layer.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}

// RunMigrations applies the schema; also used by integration setups.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Address{},
		&model.AllowedUser{},
		&model.WorkingHours{},
		&model.Vakantie{},
		&model.Machine{},
		&model.MaintenanceIssue{},
		&model.TankTransaction{},
		&model.DeviceLoginStatus{},
		&model.BouwPlan{},
	)
}
