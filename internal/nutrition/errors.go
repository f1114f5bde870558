// ABOUTME: Sentinel errors for the nutrition pipeline
// ABOUTME: All failures are typed and checkable with errors.Is
package nutrition

import "errors"

var (
	// ErrValidation indicates bad caller input such as an empty name or
	// non-positive quantity/servings.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates no match in the reference store for a
	// required lookup.
	ErrNotFound = errors.New("not found")

	// ErrNoItemsParsed indicates a free-text description yielded zero
	// resolvable items.
	ErrNoItemsParsed = errors.New("no items parsed")

	// ErrNoMatch indicates a retrieval or estimation pipeline found
	// nothing even approximate.
	ErrNoMatch = errors.New("no match")
)
