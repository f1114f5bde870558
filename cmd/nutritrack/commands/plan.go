// ABOUTME: CLI command to generate a weekly meal plan
// ABOUTME: Plans meals against macro targets and persists the result
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/nutritrack/internal/models"
	"github.com/harper/nutritrack/internal/storage/sqlite"
)

var (
	planCalories float64
	planProtein  float64
	planCarbs    float64
	planFat      float64
	planDays     int
	planMeals    int
	planTags     []string
	planExclude  []string
	planStart    string
)

// NewPlanCmd creates the plan command
func NewPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a meal plan against macro targets",
		Long: `Generate a meal plan by round-robin recipe selection against daily
macro targets. Days falling short of the calorie target are scaled up
proportionally. The plan is persisted for the grocery command.

Examples:
  nutritrack plan --calories 2000
  nutritrack plan --calories 1800 --days 5 --meals 4 --tags vegetarian
  nutritrack plan --calories 2200 --exclude shellfish --start 2026-03-09`,
		RunE: runPlan,
	}

	cmd.Flags().Float64Var(&planCalories, "calories", 2000, "Daily calorie target")
	cmd.Flags().Float64Var(&planProtein, "protein", 0, "Daily protein target in grams")
	cmd.Flags().Float64Var(&planCarbs, "carbs", 0, "Daily carbohydrate target in grams")
	cmd.Flags().Float64Var(&planFat, "fat", 0, "Daily fat target in grams")
	cmd.Flags().IntVar(&planDays, "days", 7, "Number of days to plan")
	cmd.Flags().IntVar(&planMeals, "meals", 3, "Meals per day (1-4)")
	cmd.Flags().StringSliceVar(&planTags, "tags", nil, "Diet tags every recipe must carry")
	cmd.Flags().StringSliceVar(&planExclude, "exclude", nil, "Ingredients to exclude")
	cmd.Flags().StringVar(&planStart, "start", "", "First plan date as YYYY-MM-DD (default: today)")

	return cmd
}

func runPlan(cmd *cobra.Command, args []string) error {
	startDate, err := parseDateFlag(planStart)
	if err != nil {
		return err
	}

	svc, cleanup, err := openTracker()
	if err != nil {
		return err
	}
	defer cleanup()

	targets := models.MacroTargets{
		Calories:    planCalories,
		ProteinG:    planProtein,
		CarbG:       planCarbs,
		FatG:        planFat,
		DietTags:    planTags,
		Exclusions:  planExclude,
		MealsPerDay: planMeals,
	}

	// Saved profile fills in anything not given on the command line
	if profile, perr := models.LoadUserProfile(sqlite.DefaultDataDir()); perr == nil && profile != nil {
		saved := profile.MacroTargets()
		if !cmd.Flags().Changed("calories") && saved.Calories > 0 {
			targets.Calories = saved.Calories
		}
		if !cmd.Flags().Changed("protein") && saved.ProteinG > 0 {
			targets.ProteinG = saved.ProteinG
		}
		if !cmd.Flags().Changed("carbs") && saved.CarbG > 0 {
			targets.CarbG = saved.CarbG
		}
		if !cmd.Flags().Changed("fat") && saved.FatG > 0 {
			targets.FatG = saved.FatG
		}
		if !cmd.Flags().Changed("meals") && saved.MealsPerDay > 0 {
			targets.MealsPerDay = saved.MealsPerDay
		}
		if !cmd.Flags().Changed("tags") && len(saved.DietTags) > 0 {
			targets.DietTags = saved.DietTags
		}
		if !cmd.Flags().Changed("exclude") && len(saved.Exclusions) > 0 {
			targets.Exclusions = saved.Exclusions
		}
	}

	plan, err := svc.GeneratePlan(targets, startDate, planDays)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, day := range plan {
		_, _ = fmt.Fprintf(out, "%s\n", day.Date.Format(dateLayout))
		for _, meal := range day.Meals {
			_, _ = fmt.Fprintf(out, "  %-9s %-28s %s\n", meal.MealType, meal.Name, formatMacros(meal.Totals()))
		}
	}

	if !quiet {
		totals := models.PlanTotals(plan)
		_, _ = fmt.Fprintf(out, "\nPlan totals: %s\n", formatMacros(totals))
		delta := models.MacroDelta(totals, targets.Macros().Scale(float64(len(plan))))
		_, _ = fmt.Fprintf(out, "Delta vs targets: %+.1f kcal  P %+.1fg  C %+.1fg  F %+.1fg\n",
			delta.Calories, delta.ProteinG, delta.CarbG, delta.FatG)
	}
	return nil
}
