// ABOUTME: CLI command to log a meal from free text
// ABOUTME: Parses the description, matches foods, and stores the meal
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harper/nutritrack/internal/models"
	"github.com/harper/nutritrack/internal/nutrition"
)

var (
	logMealType string
	logDate     string
)

// NewLogCmd creates the log command
func NewLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log [text]",
		Short: "Log a meal from a free-text description",
		Long: `Log a meal from a free-text description.

Quantities, units, and food names are parsed and matched against the
nutrition reference. Foods that cannot be matched are reported and
skipped rather than blocking the log.

Examples:
  nutritrack log "1 cup greek yogurt and 1 banana"
  nutritrack log --type dinner "150g chicken breast with rice"
  nutritrack log --type lunch --date 2026-03-02 "2 eggs, 1 apple"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runLog,
	}

	cmd.Flags().StringVar(&logMealType, "type", "snack", "Meal type: breakfast, lunch, dinner, snack")
	cmd.Flags().StringVar(&logDate, "date", "", "Meal date as YYYY-MM-DD (default: today)")

	return cmd
}

func runLog(cmd *cobra.Command, args []string) error {
	var text string
	if len(args) > 0 {
		text = args[0]
	} else {
		// Read from stdin
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("no meal description provided")
	}

	date, err := parseDateFlag(logDate)
	if err != nil {
		return err
	}

	svc, cleanup, err := openTracker()
	if err != nil {
		return err
	}
	defer cleanup()

	meal, unmatched, err := svc.LogMeal(text, models.MealType(logMealType), date)
	if err != nil {
		if errors.Is(err, nutrition.ErrNoItemsParsed) || errors.Is(err, nutrition.ErrNotFound) {
			return fmt.Errorf("could not parse any food items from %q: %w", text, err)
		}
		return err
	}

	if !quiet {
		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "✓ Logged %s %s\n", meal.MealType, meal.ID)
		for _, item := range meal.Items {
			marker := ""
			if item.Estimated {
				marker = " (estimated)"
			}
			_, _ = fmt.Fprintf(out, "  %-24s %s%s\n", item.Name, formatMacros(item.Macros()), marker)
		}
		_, _ = fmt.Fprintf(out, "Total: %s\n", formatMacros(meal.Totals()))
		for _, name := range unmatched {
			_, _ = fmt.Fprintf(out, "Skipped unmatched food: %s (add it with 'nutritrack foods add')\n", name)
		}
	}
	return nil
}
