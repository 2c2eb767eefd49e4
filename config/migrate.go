package config

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/davidthissen1/Nutrify/models"
)

// Migrate provisions the schema. It is idempotent and safe to run on every
// deploy. The food_logs table is only created when absent: pre-existing
// deployments may carry the legacy column naming, which the food-log
// service adapts to at runtime and a migration must not disturb.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.UserToken{},
		&models.NutritionGoal{},
	); err != nil {
		return fmt.Errorf("migrate failed: %w", err)
	}

	if !db.Migrator().HasTable(&models.FoodLog{}) {
		if err := db.Migrator().AutoMigrate(&models.FoodLog{}); err != nil {
			return fmt.Errorf("failed to create food_logs table: %w", err)
		}
	}
	return nil
}
