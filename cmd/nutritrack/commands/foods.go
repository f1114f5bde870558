// ABOUTME: CLI commands for the nutrition reference store
// ABOUTME: Provides food list, lookup, and add operations
package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/nutritrack/internal/models"
	"github.com/harper/nutritrack/internal/nutrition"
)

// NewFoodsCmd creates the foods command group
func NewFoodsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "foods",
		Short: "Manage the nutrition reference",
		Long: `Manage the nutrition reference of per-100g food macros.

The reference backs meal parsing: every food name in a logged meal is
resolved here by case-insensitive exact or substring match.`,
	}

	cmd.AddCommand(newFoodsListCmd())
	cmd.AddCommand(newFoodsLookupCmd())
	cmd.AddCommand(newFoodsAddCmd())

	return cmd
}

func newFoodsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all reference foods",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openTracker()
			if err != nil {
				return err
			}
			defer cleanup()

			names, err := svc.Reference().List()
			if err != nil {
				return err
			}
			for _, name := range names {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			if !quiet {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n%d foods\n", len(names))
			}
			return nil
		},
	}
}

func newFoodsLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup [name]",
		Short: "Look up per-100g macros for a food",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openTracker()
			if err != nil {
				return err
			}
			defer cleanup()

			canonical, macros, err := svc.Reference().Lookup(args[0])
			if err != nil {
				if errors.Is(err, nutrition.ErrNotFound) {
					return fmt.Errorf("no food matching %q", args[0])
				}
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (per 100g): %s\n", canonical, formatMacros(macros))
			return nil
		},
	}
}

func newFoodsAddCmd() *cobra.Command {
	var (
		calories float64
		protein  float64
		carbs    float64
		fat      float64
		grams    float64
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a food to the reference",
		Long: `Add a food to the nutrition reference.

Macro values are given at an arbitrary reference gram amount and
rescaled to the per-100g basis before storing.

Examples:
  nutritrack foods add "cottage cheese" --calories 98 --protein 11.1 --carbs 3.4 --fat 4.3
  nutritrack foods add "protein bar" --grams 60 --calories 220 --protein 20 --carbs 23 --fat 7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openTracker()
			if err != nil {
				return err
			}
			defer cleanup()

			macros := models.Macros{Calories: calories, ProteinG: protein, CarbG: carbs, FatG: fat}
			if err := svc.Reference().Add(args[0], macros, grams); err != nil {
				return err
			}

			canonical, per100, err := svc.Reference().Lookup(args[0])
			if err != nil {
				return fmt.Errorf("food added but lookup failed: %w", err)
			}
			if !quiet {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Added %s (per 100g): %s\n", canonical, formatMacros(per100))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&calories, "calories", 0, "Calories at the reference amount")
	cmd.Flags().Float64Var(&protein, "protein", 0, "Protein grams at the reference amount")
	cmd.Flags().Float64Var(&carbs, "carbs", 0, "Carbohydrate grams at the reference amount")
	cmd.Flags().Float64Var(&fat, "fat", 0, "Fat grams at the reference amount")
	cmd.Flags().Float64Var(&grams, "grams", 100, "Gram amount the macro values describe")
	_ = cmd.MarkFlagRequired("calories")

	return cmd
}
