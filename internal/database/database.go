package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/witoldp/petcare-backend/internal/config"
	"github.com/witoldp/petcare-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return nil
}

// Migrate runs AutoMigrate for all clinic models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Pet{},
		&models.VetProfile{},
		&models.VetScheduleEntry{},
		&models.VetTimeOff{},
		&models.Visit{},
		&models.MedicalRecord{},
		&models.SystemLog{},
	)
}

// WithBookingTx wraps fn in the transaction the booking conflict check
// runs in. It must stay at the driver's default isolation (READ
// COMMITTED on postgres): the overlap query has to see visits
// committed while LockProfile was waiting on the profile row, and a
// snapshot taken before the lock wait would hide them.
func WithBookingTx(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.Transaction(fn)
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
