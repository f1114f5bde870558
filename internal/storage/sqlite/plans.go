// ABOUTME: Planned meal persistence for SQLite
// ABOUTME: Saves generated plan days and loads them back by date range
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harper/nutritrack/internal/models"
)

// PlanStore handles generated meal plan persistence
type PlanStore struct {
	db *DB
}

// NewPlanStore creates a new PlanStore
func NewPlanStore(db *DB) *PlanStore {
	return &PlanStore{db: db}
}

// SavePlan persists a generated plan, replacing any previously planned
// meals on the same dates. Items are stored as JSON per planned meal.
func (s *PlanStore) SavePlan(days []models.PlanDay) error {
	tx, err := s.db.Conn().Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, day := range days {
		date := day.Date.Format(dateLayout)
		if _, err := tx.Exec(`DELETE FROM planned_meals WHERE plan_date = ?`, date); err != nil {
			return fmt.Errorf("failed to clear planned meals: %w", err)
		}
		for _, meal := range day.Meals {
			itemsJSON, err := json.Marshal(meal.Items)
			if err != nil {
				return fmt.Errorf("failed to encode plan items: %w", err)
			}
			_, err = tx.Exec(`
				INSERT INTO planned_meals (plan_date, meal_type, name, items, notes)
				VALUES (?, ?, ?, ?, ?)
			`, date, string(meal.MealType), meal.Name, string(itemsJSON), meal.Notes)
			if err != nil {
				return fmt.Errorf("failed to save planned meal: %w", err)
			}
		}
	}

	return tx.Commit()
}

// PlannedRange loads planned days between start and end (inclusive),
// oldest first. Dates with no planned meals are omitted.
func (s *PlanStore) PlannedRange(start, end time.Time) ([]models.PlanDay, error) {
	rows, err := s.db.Query(`
		SELECT plan_date, meal_type, name, items, notes
		FROM planned_meals
		WHERE plan_date >= ? AND plan_date <= ?
		ORDER BY plan_date, id
	`, start.Format(dateLayout), end.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to query planned meals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var days []models.PlanDay
	byDate := make(map[string]int)
	for rows.Next() {
		var (
			date      string
			mealType  string
			name      string
			itemsJSON string
			notes     sql.NullString
		)
		if err := rows.Scan(&date, &mealType, &name, &itemsJSON, &notes); err != nil {
			return nil, fmt.Errorf("failed to scan planned meal: %w", err)
		}

		var items []models.MealItem
		if err := json.Unmarshal([]byte(itemsJSON), &items); err != nil {
			return nil, fmt.Errorf("failed to decode plan items: %w", err)
		}

		idx, ok := byDate[date]
		if !ok {
			parsed, err := time.Parse(dateLayout, date)
			if err != nil {
				return nil, fmt.Errorf("failed to parse plan date %q: %w", date, err)
			}
			days = append(days, models.PlanDay{Date: parsed})
			idx = len(days) - 1
			byDate[date] = idx
		}

		days[idx].Meals = append(days[idx].Meals, models.PlanMeal{
			Name:     name,
			MealType: models.MealType(mealType),
			Items:    items,
			Notes:    notes.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return days, nil
}
