// ABOUTME: CLI command to build or rebuild the recipe retrieval index
// ABOUTME: Embeds corpus documents and persists metadata plus vectors
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var indexForce bool

// NewIndexCmd creates the index command
func NewIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Build the recipe retrieval index",
		Long: `Build the recipe retrieval index from the corpus.

Every recipe document is embedded and the metadata and vector lists are
persisted. An existing index is reused unless --force is given.

Examples:
  nutritrack index
  nutritrack index --force`,
		RunE: runIndex,
	}

	cmd.Flags().BoolVar(&indexForce, "force", false, "Rebuild even if the index already exists")

	return cmd
}

func runIndex(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := openTracker()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := svc.Index().Build(indexForce); err != nil {
		return fmt.Errorf("building index: %w", err)
	}

	docs, err := svc.Index().Documents()
	if err != nil {
		return err
	}
	if !quiet {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Index ready with %d recipes\n", len(docs))
	}
	return nil
}
