package models

import "time"

// FoodLog is the canonical shape of the food_logs table. Older deployments
// carry a different physical column set (name/protein/carbs/fats/date_added);
// the food-log service introspects the live table and adapts, so this model
// is only used to create fresh tables and for owner-scoped deletes, which
// touch columns common to both variants.
type FoodLog struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"column:user_id;index;not null" json:"user_id"`
	User     User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	FoodName string    `gorm:"column:food_name;size:100;not null" json:"food_name"`
	Calories int       `gorm:"column:calories;default:0" json:"calories"`
	ProteinG float64   `gorm:"column:protein_g;default:0" json:"protein_g"`
	CarbsG   float64   `gorm:"column:carbs_g;default:0" json:"carbs_g"`
	FatG     float64   `gorm:"column:fat_g;default:0" json:"fat_g"`
	LogDate  time.Time `gorm:"column:log_date;default:CURRENT_TIMESTAMP" json:"log_date"`
}

func (FoodLog) TableName() string { return "food_logs" }
