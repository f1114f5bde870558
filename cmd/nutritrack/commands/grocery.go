// ABOUTME: CLI command to build a grocery list from planned meals
// ABOUTME: Aggregates ingredients by name and unit with optional CSV export
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harper/nutritrack/internal/planner"
)

var (
	groceryStart string
	groceryEnd   string
	groceryCSV   string
)

// NewGroceryCmd creates the grocery command
func NewGroceryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grocery",
		Short: "Build a grocery list from planned meals",
		Long: `Build a grocery list from planned meals in a date range.

Identical (name, unit) pairs across the plan merge into one entry with
a summed quantity, bucketed by store category.

Examples:
  nutritrack grocery --start 2026-03-09 --end 2026-03-15
  nutritrack grocery --start 2026-03-09 --end 2026-03-15 --csv list.csv`,
		RunE: runGrocery,
	}

	cmd.Flags().StringVar(&groceryStart, "start", "", "Range start as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&groceryEnd, "end", "", "Range end as YYYY-MM-DD (default: start + 6 days)")
	cmd.Flags().StringVar(&groceryCSV, "csv", "", "Write the list to a CSV file")

	return cmd
}

func runGrocery(cmd *cobra.Command, args []string) error {
	start, err := parseDateFlag(groceryStart)
	if err != nil {
		return err
	}
	end := start.AddDate(0, 0, 6)
	if groceryEnd != "" {
		end, err = parseDateFlag(groceryEnd)
		if err != nil {
			return err
		}
	}

	svc, cleanup, err := openTracker()
	if err != nil {
		return err
	}
	defer cleanup()

	list, err := svc.GroceryList(start, end)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No planned meals in range; run 'nutritrack plan' first")
		return nil
	}

	if groceryCSV != "" {
		f, err := os.Create(groceryCSV)
		if err != nil {
			return fmt.Errorf("creating CSV file: %w", err)
		}
		defer func() { _ = f.Close() }()

		if err := planner.WriteGroceryCSV(f, list); err != nil {
			return err
		}
		if !quiet {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %d items to %s\n", len(list), groceryCSV)
		}
		return nil
	}

	out := cmd.OutOrStdout()
	category := ""
	for _, item := range list {
		if item.Category != category {
			category = item.Category
			_, _ = fmt.Fprintf(out, "%s:\n", category)
		}
		_, _ = fmt.Fprintf(out, "  %-24s %.2g %s\n", item.Name, item.Quantity, item.Unit)
	}
	return nil
}
