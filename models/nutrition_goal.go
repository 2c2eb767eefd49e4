package models

import "time"

// NutritionGoal stores per-user daily macro targets.
type NutritionGoal struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"-"`
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Calories  int       `gorm:"default:2000" json:"calories"`
	Protein   float64   `gorm:"default:150" json:"protein"`
	Carbs     float64   `gorm:"default:200" json:"carbs"`
	Fats      float64   `gorm:"default:70" json:"fats"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (NutritionGoal) TableName() string { return "nutrition_goals" }
