package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/davidthissen1/Nutrify/models"
)

// Per-user daily targets returned when a user has never set goals.
const (
	DefaultGoalCalories = 2000
	DefaultGoalProtein  = 50.0
	DefaultGoalCarbs    = 300.0
	DefaultGoalFats     = 70.0
)

type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

// Get returns the user's goals, or the defaults when none are stored.
func (s *GoalService) Get(userID uint) (*models.NutritionGoal, error) {
	var goal models.NutritionGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.NutritionGoal{
			UserID:   userID,
			Calories: DefaultGoalCalories,
			Protein:  DefaultGoalProtein,
			Carbs:    DefaultGoalCarbs,
			Fats:     DefaultGoalFats,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load nutrition goals: %w", err)
	}
	return &goal, nil
}

// Upsert stores the user's daily targets, one row per user.
func (s *GoalService) Upsert(userID uint, calories int, protein, carbs, fats float64) (*models.NutritionGoal, error) {
	var goal models.NutritionGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load nutrition goals: %w", err)
	}

	goal.UserID = userID
	goal.Calories = calories
	goal.Protein = protein
	goal.Carbs = carbs
	goal.Fats = fats
	if err := s.db.Save(&goal).Error; err != nil {
		return nil, fmt.Errorf("failed to save nutrition goals: %w", err)
	}
	return &goal, nil
}
