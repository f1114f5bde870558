// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Tracker construction, date parsing, and display formatting
package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/harper/nutritrack/internal/config"
	"github.com/harper/nutritrack/internal/kv"
	"github.com/harper/nutritrack/internal/llm"
	"github.com/harper/nutritrack/internal/models"
	"github.com/harper/nutritrack/internal/nutrition"
	"github.com/harper/nutritrack/internal/rag"
	"github.com/harper/nutritrack/internal/recipes"
	"github.com/harper/nutritrack/internal/storage/sqlite"
	"github.com/harper/nutritrack/internal/tracker"
)

// dateLayout is the CLI date argument format
const dateLayout = "2006-01-02"

// openTracker assembles the tracker from configuration. Charm cloud KV
// is preferred; when unreachable the session runs against an in-memory
// store so meal logging still works offline.
func openTracker() (*tracker.Tracker, func(), error) {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading configuration: %w", err)
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = sqlite.DefaultDBPath()
	}
	db, err := sqlite.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening meal database: %w", err)
	}

	loadCorpus := func() ([]models.RecipeDocument, error) {
		return recipes.LoadCorpus(cfg.CorpusPath)
	}

	var (
		ref   *nutrition.Reference
		index *rag.Index
	)
	if client, cerr := kv.GetClient(); cerr == nil {
		ref = nutrition.NewReference(client)
		index = rag.NewIndex(client, loadCorpus)
	} else {
		if verbose {
			fmt.Fprintf(os.Stderr, "Warning: Charm cloud unavailable, using in-memory store: %v\n", cerr)
		}
		mem := kv.NewMemory()
		ref = nutrition.NewReference(mem)
		index = rag.NewIndex(mem, loadCorpus)
	}

	svc := tracker.New(ref, index, db, llm.FromEnv())
	svc.SetRetrievalTopK(cfg.RetrievalTopK)
	svc.SetPlannerLimits(cfg.CalorieFloor, cfg.ScaleThreshold)

	cleanup := func() { _ = db.Close() }
	return svc, cleanup, nil
}

// parseDateFlag reads a YYYY-MM-DD flag value, defaulting to today
func parseDateFlag(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", raw, err)
	}
	return date, nil
}

// formatMacros renders macros for display
func formatMacros(m models.Macros) string {
	return fmt.Sprintf("%.0f kcal  P %.1fg  C %.1fg  F %.1fg", m.Calories, m.ProteinG, m.CarbG, m.FatG)
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return string(runes[:maxLen-3]) + "..."
}
