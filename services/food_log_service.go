package services

import (
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

var ErrLogNotFound = errors.New("food log entry not found")

// DefaultFoodName is what an entry gets when the request body omits a name.
const DefaultFoodName = "Unknown Food"

type FoodLogService struct {
	db *gorm.DB
}

func NewFoodLogService(db *gorm.DB) *FoodLogService {
	return &FoodLogService{db: db}
}

// FoodLogInput is deliberately permissive: every field is optional and
// missing values fall back to documented defaults rather than rejecting
// the request. Callers relying on the defaults is part of the contract.
type FoodLogInput struct {
	FoodName *string  `json:"food_name"`
	Calories *int     `json:"calories"`
	ProteinG *float64 `json:"protein_g"`
	CarbsG   *float64 `json:"carbs_g"`
	FatG     *float64 `json:"fat_g"`
	LogDate  *string  `json:"log_date"`
}

// FoodLogEntry is the canonical output shape, regardless of which column
// naming generation the underlying table uses.
type FoodLogEntry struct {
	ID       uint    `json:"id"`
	FoodName string  `json:"food_name"`
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	LogDate  string  `json:"log_date"`
}

// Create inserts a log entry using whichever columns the live table has.
// A missing log_date becomes the database's current timestamp.
func (s *FoodLogService) Create(userID uint, in FoodLogInput) (uint, error) {
	cols, err := resolveFoodLogColumns(s.db)
	if err != nil {
		return 0, err
	}

	name := DefaultFoodName
	if in.FoodName != nil && *in.FoodName != "" {
		name = *in.FoodName
	}
	calories := 0
	if in.Calories != nil {
		calories = *in.Calories
	}
	protein, carbs, fat := 0.0, 0.0, 0.0
	if in.ProteinG != nil {
		protein = *in.ProteinG
	}
	if in.CarbsG != nil {
		carbs = *in.CarbsG
	}
	if in.FatG != nil {
		fat = *in.FatG
	}

	insertCols := []string{"user_id", cols.Name, "calories", cols.Protein, cols.Carbs, cols.Fats}
	values := []interface{}{userID, name, calories, protein, carbs, fat}
	if cols.HasDate {
		insertCols = append(insertCols, cols.Date)
		var logDate interface{}
		if in.LogDate != nil && *in.LogDate != "" {
			logDate = *in.LogDate
		}
		values = append(values, sq.Expr("COALESCE(?, CURRENT_TIMESTAMP)", logDate))
	}
	builder := sq.Insert("food_logs").
		Columns(insertCols...).
		Values(values...).
		Suffix("RETURNING id")

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert: %w", err)
	}

	var id uint
	if err := s.db.Raw(query, args...).Scan(&id).Error; err != nil {
		return 0, fmt.Errorf("failed to insert food log: %w", err)
	}
	return id, nil
}

// List returns the user's entries in canonical shape, newest first. A
// non-empty date filters to entries whose date portion matches it.
func (s *FoodLogService) List(userID uint, date string) ([]FoodLogEntry, error) {
	cols, err := resolveFoodLogColumns(s.db)
	if err != nil {
		return nil, err
	}

	builder := sq.Select(
		"id",
		cols.Name+" AS food_name",
		"calories",
		cols.Protein+" AS protein_g",
		cols.Carbs+" AS carbs_g",
		cols.Fats+" AS fat_g",
	).
		From("food_logs").
		Where(sq.Eq{"user_id": userID})
	if cols.HasDate {
		builder = builder.Column(cols.Date + " AS log_date")
		if date != "" {
			builder = builder.Where(fmt.Sprintf("DATE(%s) = ?", cols.Date), date)
		}
		builder = builder.OrderBy(cols.Date + " DESC")
	} else {
		builder = builder.OrderBy("id DESC")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	entries := []FoodLogEntry{}
	if err := s.db.Raw(query, args...).Scan(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list food logs: %w", err)
	}
	return entries, nil
}

// Delete removes an entry only when it belongs to the requesting user.
// A missing id and someone else's id are indistinguishable to the caller.
func (s *FoodLogService) Delete(userID, logID uint) error {
	res := s.db.Exec("DELETE FROM food_logs WHERE id = ? AND user_id = ?", logID, userID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete food log: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrLogNotFound
	}
	return nil
}
