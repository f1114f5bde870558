// ABOUTME: Nutrition reference store mapping food names to per-100g macros
// ABOUTME: Charm KV backed with an atomically swapped in-process lookup cache
package nutrition

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/harper/nutritrack/internal/kv"
	"github.com/harper/nutritrack/internal/models"
)

// ReferenceBasisGrams is the normalization convention for stored macros:
// every entry's macro values are per 100 grams of the food.
const ReferenceBasisGrams = 100.0

// KV is the key-value surface the reference store needs. Satisfied by
// both kv.Client (charm cloud) and kv.Memory (tests, offline fallback).
type KV interface {
	SetJSON(key string, value interface{}) error
	GetJSON(key string, dest interface{}) error
	ListKeys(prefix string) ([]string, error)
}

// FoodEntry is a stored reference food with per-100g macro values
type FoodEntry struct {
	Name   string        `json:"name"`
	Macros models.Macros `json:"macros"`
}

// refSnapshot is an immutable view of the reference set. Writers build a
// fresh snapshot and swap it in atomically so readers never observe a
// partially updated store.
type refSnapshot struct {
	names  []string // canonical lowercase names, sorted
	macros map[string]models.Macros
}

// Reference is the process-wide nutrition reference store. It is lazily
// populated from the KV on first use and rebuilt wholesale on every write.
type Reference struct {
	kv   KV
	mu   sync.Mutex // serializes writers around the cache swap
	snap atomic.Pointer[refSnapshot]
}

// NewReference creates a reference store over the given KV backend
func NewReference(store KV) *Reference {
	return &Reference{kv: store}
}

// Lookup resolves a food name to its canonical name and per-100g macros.
// Matching is case-insensitive: exact match first, then the first
// substring match scanning names in sorted order, so results are
// reproducible across runs.
func (r *Reference) Lookup(name string) (string, models.Macros, error) {
	snap, err := r.snapshot()
	if err != nil {
		return "", models.Macros{}, err
	}

	token := strings.ToLower(strings.TrimSpace(name))
	if macros, ok := snap.macros[token]; ok {
		return token, macros, nil
	}

	for _, candidate := range snap.names {
		if strings.Contains(candidate, token) {
			return candidate, snap.macros[candidate], nil
		}
	}

	return "", models.Macros{}, fmt.Errorf("%w: food %q", ErrNotFound, name)
}

// Add stores a new reference entry. Macro values may be supplied at any
// reference gram amount; they are rescaled to the per-100g basis before
// storing. The entry persists immediately and the lookup cache is rebuilt
// and swapped atomically.
func (r *Reference) Add(name string, macros models.Macros, referenceGrams float64) error {
	canonical := strings.ToLower(strings.TrimSpace(name))
	if canonical == "" {
		return fmt.Errorf("%w: food name must not be empty", ErrValidation)
	}
	if referenceGrams <= 0 {
		return fmt.Errorf("%w: reference grams must be positive, got %v", ErrValidation, referenceGrams)
	}
	if macros.Calories < 0 || macros.ProteinG < 0 || macros.CarbG < 0 || macros.FatG < 0 {
		return fmt.Errorf("%w: macro values must not be negative", ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry := FoodEntry{
		Name:   canonical,
		Macros: macros.Scale(ReferenceBasisGrams / referenceGrams),
	}
	if err := r.kv.SetJSON(kv.FoodKey(canonical), entry); err != nil {
		return fmt.Errorf("failed to persist food entry: %w", err)
	}

	return r.rebuildLocked()
}

// List returns all canonical food names in case-insensitive alphabetical order
func (r *Reference) List() ([]string, error) {
	snap, err := r.snapshot()
	if err != nil {
		return nil, err
	}

	names := make([]string, len(snap.names))
	copy(names, snap.names)
	return names, nil
}

// Refresh discards the cache and rebuilds it from the KV backend
func (r *Reference) Refresh() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rebuildLocked()
}

// snapshot returns the current cache, building it on first use
func (r *Reference) snapshot() (*refSnapshot, error) {
	if snap := r.snap.Load(); snap != nil {
		return snap, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another goroutine may have built it while we waited for the lock
	if snap := r.snap.Load(); snap != nil {
		return snap, nil
	}

	if err := r.seedIfEmptyLocked(); err != nil {
		return nil, err
	}
	if err := r.rebuildLocked(); err != nil {
		return nil, err
	}
	return r.snap.Load(), nil
}

// rebuildLocked loads every food entry from the KV and swaps in a fresh
// snapshot. Callers must hold r.mu.
func (r *Reference) rebuildLocked() error {
	keys, err := r.kv.ListKeys(kv.FoodPrefix)
	if err != nil {
		return fmt.Errorf("failed to list food keys: %w", err)
	}

	snap := &refSnapshot{
		macros: make(map[string]models.Macros, len(keys)),
	}

	for _, key := range keys {
		var entry FoodEntry
		if err := r.kv.GetJSON(key, &entry); err != nil {
			continue
		}
		name := strings.ToLower(entry.Name)
		if name == "" {
			continue
		}
		if _, seen := snap.macros[name]; !seen {
			snap.names = append(snap.names, name)
		}
		snap.macros[name] = entry.Macros
	}

	sort.Strings(snap.names)
	r.snap.Store(snap)
	return nil
}

// seedIfEmptyLocked writes the built-in seed dataset when the KV holds no
// food entries yet. Callers must hold r.mu.
func (r *Reference) seedIfEmptyLocked() error {
	keys, err := r.kv.ListKeys(kv.FoodPrefix)
	if err != nil {
		return fmt.Errorf("failed to list food keys: %w", err)
	}
	if len(keys) > 0 {
		return nil
	}

	for name, macros := range seedFoods {
		entry := FoodEntry{Name: name, Macros: macros}
		if err := r.kv.SetJSON(kv.FoodKey(name), entry); err != nil {
			return fmt.Errorf("failed to seed food %q: %w", name, err)
		}
	}
	return nil
}
