// ABOUTME: CLI command to view and update the user profile
// ABOUTME: Stores macro targets, diet tags, and exclusions for planning defaults
package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harper/nutritrack/internal/models"
	"github.com/harper/nutritrack/internal/storage/sqlite"
)

var (
	profileName     string
	profileGoal     string
	profileCalories float64
	profileProtein  float64
	profileCarbs    float64
	profileFat      float64
	profileMeals    int
	profileTags     []string
	profileExclude  []string
)

// NewProfileCmd creates the profile command
func NewProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and manage your nutrition profile",
		Long: `View and manage your nutrition profile.

The profile stores your macro targets, diet tags, and excluded
ingredients. The plan command uses them as defaults so you don't
have to repeat flags on every run.

Examples:
  nutritrack profile
  nutritrack profile --format json
  nutritrack profile set --calories 2000 --protein 150
  nutritrack profile set --tags vegetarian --exclude peanut`,
		RunE: runProfileShow,
	}

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields",
		Long: `Update profile fields.

Examples:
  nutritrack profile set --name "Harper"
  nutritrack profile set --calories 1800 --meals 4
  nutritrack profile set --tags vegan --exclude shellfish`,
		RunE: runProfileSet,
	}

	setCmd.Flags().StringVar(&profileName, "name", "", "Set user name")
	setCmd.Flags().StringVar(&profileGoal, "goal", "", "Set goal (e.g. maintain, cut, bulk)")
	setCmd.Flags().Float64Var(&profileCalories, "calories", 0, "Daily calorie target")
	setCmd.Flags().Float64Var(&profileProtein, "protein", 0, "Daily protein target in grams")
	setCmd.Flags().Float64Var(&profileCarbs, "carbs", 0, "Daily carbohydrate target in grams")
	setCmd.Flags().Float64Var(&profileFat, "fat", 0, "Daily fat target in grams")
	setCmd.Flags().IntVar(&profileMeals, "meals", 0, "Meals per day (1-4)")
	setCmd.Flags().StringSliceVar(&profileTags, "tags", nil, "Diet tags every planned recipe must carry")
	setCmd.Flags().StringSliceVar(&profileExclude, "exclude", nil, "Ingredients to exclude from plans")

	cmd.AddCommand(setCmd)

	return cmd
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	profile, err := models.LoadUserProfile(sqlite.DefaultDataDir())
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	if profile == nil {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No profile found. Create one with: nutritrack profile set --calories 2000\n")
		}
		return nil
	}

	if format == "json" {
		jsonData, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "FIELD\tVALUE\n")
	fmt.Fprintf(w, "-----\t-----\n")

	name := profile.Name
	if name == "" {
		name = "(not set)"
	}
	fmt.Fprintf(w, "Name\t%s\n", name)

	goal := profile.Goal
	if goal == "" {
		goal = "(not set)"
	}
	fmt.Fprintf(w, "Goal\t%s\n", goal)

	fmt.Fprintf(w, "Targets\t%s\n", formatMacros(profile.Targets))
	fmt.Fprintf(w, "Meals/day\t%d\n", profile.MealsPerDay)

	tags := "(none)"
	if len(profile.DietTags) > 0 {
		tags = strings.Join(profile.DietTags, ", ")
	}
	fmt.Fprintf(w, "Diet tags\t%s\n", truncate(tags, 60))

	exclusions := "(none)"
	if len(profile.Exclusions) > 0 {
		exclusions = strings.Join(profile.Exclusions, ", ")
	}
	fmt.Fprintf(w, "Exclusions\t%s\n", truncate(exclusions, 60))

	fmt.Fprintf(w, "Last Updated\t%s\n", profile.LastUpdated.Format("2006-01-02 15:04"))

	w.Flush()

	return nil
}

func runProfileSet(cmd *cobra.Command, args []string) error {
	if profileName == "" && profileGoal == "" && profileCalories == 0 &&
		profileProtein == 0 && profileCarbs == 0 && profileFat == 0 &&
		profileMeals == 0 && len(profileTags) == 0 && len(profileExclude) == 0 {
		return fmt.Errorf("no updates specified. Use --calories, --tags, --exclude, or another field flag")
	}

	dataDir := sqlite.DefaultDataDir()
	profile, err := models.LoadUserProfile(dataDir)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	if profile == nil {
		profile = &models.UserProfile{}
	}

	if profileName != "" {
		profile.Name = profileName
	}
	if profileGoal != "" {
		profile.Goal = profileGoal
	}
	if profileCalories > 0 {
		profile.Targets.Calories = profileCalories
	}
	if profileProtein > 0 {
		profile.Targets.ProteinG = profileProtein
	}
	if profileCarbs > 0 {
		profile.Targets.CarbG = profileCarbs
	}
	if profileFat > 0 {
		profile.Targets.FatG = profileFat
	}
	if profileMeals > 0 {
		profile.MealsPerDay = profileMeals
	}
	if len(profileTags) > 0 {
		profile.DietTags = profileTags
	}
	if len(profileExclude) > 0 {
		profile.Exclusions = profileExclude
	}

	if err := profile.Save(dataDir); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Profile updated\n")
	}

	return nil
}
