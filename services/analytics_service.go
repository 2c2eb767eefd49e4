package services

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// NutritionHistory carries four value sequences in lockstep with dates:
// index i of every slice describes the same calendar day.
type NutritionHistory struct {
	Dates    []string  `json:"dates"`
	Calories []float64 `json:"calories"`
	Protein  []float64 `json:"protein"`
	Carbs    []float64 `json:"carbs"`
	Fat      []float64 `json:"fat"`
}

type dailyTotals struct {
	Day      string
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// History sums the user's logged macros per day over the window and walks
// the window start to end, emitting zeros for days with no entries. Every
// sequence therefore spans exactly windowDays+1 contiguous calendar days.
func (s *AnalyticsService) History(userID uint, rangeParam string) (*NutritionHistory, error) {
	days := 30
	if rangeParam == "week" || rangeParam == "" {
		days = 7
	}
	end := time.Now()
	start := end.AddDate(0, 0, -days)

	cols, err := resolveFoodLogColumns(s.db)
	if err != nil {
		return nil, err
	}

	var rows []dailyTotals
	if cols.HasDate {
		rows, err = s.dailySums(userID, cols, start, end)
		if err != nil {
			return nil, err
		}
	}

	byDay := make(map[string]dailyTotals, len(rows))
	for _, r := range rows {
		byDay[r.Day] = r
	}

	out := &NutritionHistory{
		Dates:    []string{},
		Calories: []float64{},
		Protein:  []float64{},
		Carbs:    []float64{},
		Fat:      []float64{},
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		out.Dates = append(out.Dates, key)
		totals := byDay[key]
		out.Calories = append(out.Calories, totals.Calories)
		out.Protein = append(out.Protein, totals.Protein)
		out.Carbs = append(out.Carbs, totals.Carbs)
		out.Fat = append(out.Fat, totals.Fat)
	}
	return out, nil
}

func (s *AnalyticsService) dailySums(userID uint, cols foodLogColumns, start, end time.Time) ([]dailyTotals, error) {
	builder := sq.Select(
		fmt.Sprintf("CAST(DATE(%s) AS varchar) AS day", cols.Date),
		"COALESCE(SUM(calories), 0) AS calories",
		fmt.Sprintf("COALESCE(SUM(%s), 0) AS protein", cols.Protein),
		fmt.Sprintf("COALESCE(SUM(%s), 0) AS carbs", cols.Carbs),
		fmt.Sprintf("COALESCE(SUM(%s), 0) AS fat", cols.Fats),
	).
		From("food_logs").
		Where(sq.Eq{"user_id": userID}).
		Where(fmt.Sprintf("DATE(%s) BETWEEN ? AND ?", cols.Date),
			start.Format("2006-01-02"), end.Format("2006-01-02")).
		GroupBy(fmt.Sprintf("DATE(%s)", cols.Date))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build history query: %w", err)
	}

	var rows []dailyTotals
	if err := s.db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query nutrition history: %w", err)
	}
	return rows, nil
}
