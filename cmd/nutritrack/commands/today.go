// ABOUTME: CLI command showing logged totals for a day or trailing week
// ABOUTME: Renders meals, rounded macro totals, and optional target deltas
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/nutritrack/internal/models"
)

var (
	todayDate     string
	todayWeek     bool
	todayCalories float64
)

// NewTodayCmd creates the today command
func NewTodayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show logged meals and macro totals",
		Long: `Show logged meals and rounded macro totals for a date.

Examples:
  nutritrack today
  nutritrack today --date 2026-03-02
  nutritrack today --week
  nutritrack today --calories 2000`,
		RunE: runToday,
	}

	cmd.Flags().StringVar(&todayDate, "date", "", "Date as YYYY-MM-DD (default: today)")
	cmd.Flags().BoolVar(&todayWeek, "week", false, "Show the trailing 7-day summary")
	cmd.Flags().Float64Var(&todayCalories, "calories", 0, "Calorie target for delta display")

	return cmd
}

func runToday(cmd *cobra.Command, args []string) error {
	date, err := parseDateFlag(todayDate)
	if err != nil {
		return err
	}

	svc, cleanup, err := openTracker()
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()

	if todayWeek {
		summary, err := svc.WeeklySummary(date)
		if err != nil {
			return err
		}
		for _, day := range summary {
			_, _ = fmt.Fprintf(out, "%s  %d meals  %s\n",
				day.Date.Format(dateLayout), day.MealCount, formatMacros(day.Totals))
		}
		return nil
	}

	meals, err := svc.MealsForDate(date)
	if err != nil {
		return err
	}
	if len(meals) == 0 {
		_, _ = fmt.Fprintf(out, "No meals logged on %s\n", date.Format(dateLayout))
		return nil
	}

	for _, meal := range meals {
		_, _ = fmt.Fprintf(out, "%-9s %-48s %s\n",
			meal.MealType, truncate(meal.Description, 48), formatMacros(meal.Totals()))
	}

	totals, count, err := svc.DailyTotals(date)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "\n%d meals  Total: %s\n", count, formatMacros(totals))

	if todayCalories > 0 {
		delta := models.MacroDelta(totals, models.Macros{Calories: todayCalories})
		_, _ = fmt.Fprintf(out, "Calorie delta vs target: %+.1f\n", delta.Calories)
	}
	return nil
}
