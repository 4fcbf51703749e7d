package database

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/witoldp/petcare-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, Migrate(db))
	return db
}

func testUser(username string) *models.User {
	u := &models.User{
		ID:           uuid.New(),
		FullName:     "Test User",
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	u.SetRoles([]models.Role{models.RoleOwner})
	return u
}

// WithBookingTx must run the whole booking sequence in one
// transaction at the driver's default isolation level, so writes made
// inside are atomic with the conflict check.
func TestWithBookingTx(t *testing.T) {
	db := newTestDB(t)

	err := WithBookingTx(db, func(tx *gorm.DB) error {
		return tx.Create(testUser("committed")).Error
	})
	require.NoError(t, err)

	boom := errors.New("conflict detected late")
	err = WithBookingTx(db, func(tx *gorm.DB) error {
		if err := tx.Create(testUser("discarded")).Error; err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var survivor models.User
	require.NoError(t, db.First(&survivor, "username = ?", "committed").Error)
}
