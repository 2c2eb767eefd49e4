package services

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/davidthissen1/Nutrify/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nutrify-test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserToken{},
		&models.NutritionGoal{},
	))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: "irrelevant",
		IsActive:     true,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}
