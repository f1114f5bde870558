// ABOUTME: Logged meal persistence for SQLite
// ABOUTME: Implements meal logging, daily queries, totals, and weekly summaries
package sqlite

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harper/nutritrack/internal/models"
)

// dateLayout is how meal dates are stored in the meals table
const dateLayout = "2006-01-02"

// MealStore handles logged meal persistence
type MealStore struct {
	db *DB
}

// NewMealStore creates a new MealStore
func NewMealStore(db *DB) *MealStore {
	return &MealStore{db: db}
}

// LogMeal saves a meal and its items in one transaction. A missing ID or
// CreatedAt is filled in; the meal is updated in place on reuse of an ID.
func (s *MealStore) LogMeal(meal *models.Meal) error {
	if meal.ID == "" {
		meal.ID = fmt.Sprintf("meal_%d_%s", time.Now().Unix(), uuid.NewString()[:8])
	}
	if meal.CreatedAt.IsZero() {
		meal.CreatedAt = time.Now()
	}
	if meal.MealDate.IsZero() {
		meal.MealDate = meal.CreatedAt
	}

	tx, err := s.db.Conn().Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`
		INSERT INTO meals (id, description, meal_type, meal_date, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			description = excluded.description,
			meal_type = excluded.meal_type,
			meal_date = excluded.meal_date
	`, meal.ID, meal.Description, string(meal.MealType),
		meal.MealDate.Format(dateLayout), meal.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save meal: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM meal_items WHERE meal_id = ?`, meal.ID); err != nil {
		return fmt.Errorf("failed to clear meal items: %w", err)
	}
	for _, item := range meal.Items {
		_, err := tx.Exec(`
			INSERT INTO meal_items (meal_id, name, quantity, unit, calories, protein_g, carb_g, fat_g, estimated)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, meal.ID, item.Name, item.Quantity, item.Unit,
			item.Calories, item.ProteinG, item.CarbG, item.FatG, item.Estimated)
		if err != nil {
			return fmt.Errorf("failed to save meal item: %w", err)
		}
	}

	return tx.Commit()
}

// GetByID retrieves a meal and its items by ID, or nil when not found
func (s *MealStore) GetByID(mealID string) (*models.Meal, error) {
	meals, err := s.queryMeals(`WHERE m.id = ?`, mealID)
	if err != nil {
		return nil, err
	}
	if len(meals) == 0 {
		return nil, nil
	}
	return &meals[0], nil
}

// MealsForDate retrieves all meals logged on a calendar date, oldest first
func (s *MealStore) MealsForDate(date time.Time) ([]models.Meal, error) {
	return s.queryMeals(`WHERE m.meal_date = ? ORDER BY m.created_at`, date.Format(dateLayout))
}

// Delete removes a meal and, via cascade, its items. Returns whether a
// row was deleted.
func (s *MealStore) Delete(mealID string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM meals WHERE id = ?`, mealID)
	if err != nil {
		return false, fmt.Errorf("failed to delete meal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DailyTotals returns the rounded macro totals and meal count for a date
func (s *MealStore) DailyTotals(date time.Time) (models.Macros, int, error) {
	meals, err := s.MealsForDate(date)
	if err != nil {
		return models.Macros{}, 0, err
	}

	totals := make([]models.Macros, len(meals))
	for i := range meals {
		totals[i] = meals[i].Totals()
	}
	return models.SumMacros(totals), len(meals), nil
}

// DaySummary is one day's logged totals within a weekly summary
type DaySummary struct {
	Date      time.Time     `json:"date"`
	MealCount int           `json:"meal_count"`
	Totals    models.Macros `json:"totals"`
}

// WeeklySummary returns per-day totals for the 7 days ending at end
// (inclusive), oldest day first. Days with no logged meals appear with
// zero totals.
func (s *MealStore) WeeklySummary(end time.Time) ([]DaySummary, error) {
	summary := make([]DaySummary, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		date := end.AddDate(0, 0, -offset)
		totals, count, err := s.DailyTotals(date)
		if err != nil {
			return nil, err
		}
		summary = append(summary, DaySummary{Date: date, MealCount: count, Totals: totals})
	}
	return summary, nil
}

// queryMeals loads meals matching the given WHERE clause, then attaches
// their items with a query per meal.
func (s *MealStore) queryMeals(where string, args ...interface{}) ([]models.Meal, error) {
	rows, err := s.db.Query(`
		SELECT m.id, m.description, m.meal_type, m.meal_date, m.created_at
		FROM meals m `+where, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query meals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var meals []models.Meal
	for rows.Next() {
		var (
			meal     models.Meal
			mealType string
			mealDate string
		)
		if err := rows.Scan(&meal.ID, &meal.Description, &mealType, &mealDate, &meal.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan meal: %w", err)
		}
		meal.MealType = models.MealType(mealType)
		meal.MealDate, err = time.Parse(dateLayout, mealDate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse meal date %q: %w", mealDate, err)
		}
		meals = append(meals, meal)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range meals {
		items, err := s.itemsForMeal(meals[i].ID)
		if err != nil {
			return nil, err
		}
		meals[i].Items = items
	}
	return meals, nil
}

func (s *MealStore) itemsForMeal(mealID string) ([]models.MealItem, error) {
	rows, err := s.db.Query(`
		SELECT name, quantity, unit, calories, protein_g, carb_g, fat_g, estimated
		FROM meal_items
		WHERE meal_id = ?
		ORDER BY id
	`, mealID)
	if err != nil {
		return nil, fmt.Errorf("failed to query meal items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []models.MealItem
	for rows.Next() {
		var item models.MealItem
		if err := rows.Scan(&item.Name, &item.Quantity, &item.Unit,
			&item.Calories, &item.ProteinG, &item.CarbG, &item.FatG, &item.Estimated); err != nil {
			return nil, fmt.Errorf("failed to scan meal item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
