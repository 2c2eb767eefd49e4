package services

import (
	"fmt"

	"github.com/davidthissen1/Nutrify/models"

	"gorm.io/gorm"
)

// foodLogColumns names the physical columns the live food_logs table uses.
// Two naming generations exist in the wild:
//
//	legacy:    name, protein, carbs, fats, date_added
//	canonical: food_name, protein_g, carbs_g, fat_g, log_date
//
// Queries are built against whichever set is present; the legacy name wins
// when a deployment somehow carries both.
type foodLogColumns struct {
	Name    string
	Protein string
	Carbs   string
	Fats    string
	Date    string
	HasDate bool
}

// resolveFoodLogColumns provisions the table on first use (canonical set,
// idempotent) and then introspects the actual columns.
func resolveFoodLogColumns(db *gorm.DB) (foodLogColumns, error) {
	migrator := db.Migrator()
	if !migrator.HasTable(&models.FoodLog{}) {
		if err := migrator.AutoMigrate(&models.FoodLog{}); err != nil {
			return foodLogColumns{}, fmt.Errorf("failed to create food_logs table: %w", err)
		}
	}

	types, err := migrator.ColumnTypes(&models.FoodLog{})
	if err != nil {
		return foodLogColumns{}, fmt.Errorf("failed to introspect food_logs columns: %w", err)
	}
	present := make(map[string]bool, len(types))
	for _, ct := range types {
		present[ct.Name()] = true
	}

	cols := foodLogColumns{
		Name:    pickColumn(present, "name", "food_name"),
		Protein: pickColumn(present, "protein", "protein_g"),
		Carbs:   pickColumn(present, "carbs", "carbs_g"),
		Fats:    pickColumn(present, "fats", "fat_g"),
	}
	switch {
	case present["date_added"]:
		cols.Date, cols.HasDate = "date_added", true
	case present["log_date"]:
		cols.Date, cols.HasDate = "log_date", true
	}
	return cols, nil
}

func pickColumn(present map[string]bool, legacy, canonical string) string {
	if present[legacy] {
		return legacy
	}
	return canonical
}
