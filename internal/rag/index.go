// ABOUTME: Vector retrieval index over the recipe corpus
// ABOUTME: Persists document metadata and vectors to two parallel KV entries
package rag

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/harper/nutritrack/internal/kv"
	"github.com/harper/nutritrack/internal/models"
)

// DefaultTopK is the default number of retrieval results
const DefaultTopK = 6

// Store is the key-value surface the index needs. Satisfied by both
// kv.Client (charm cloud) and kv.Memory (tests, offline fallback).
type Store interface {
	SetJSON(key string, value interface{}) error
	GetJSON(key string, dest interface{}) error
	Get(key string) ([]byte, error)
}

// Result pairs a retrieved document with its similarity score
type Result struct {
	Document models.RecipeDocument `json:"document"`
	Score    float64               `json:"score"`
}

// indexSnapshot is an immutable view of the built index. Rebuilds swap in
// a fresh snapshot atomically; readers never observe a half-built index.
type indexSnapshot struct {
	docs    []models.RecipeDocument
	vectors [][]float64
}

// Index is the process-wide retrieval index. Vectors are regenerated
// wholesale on rebuild; there is no incremental update.
type Index struct {
	store      Store
	loadCorpus func() ([]models.RecipeDocument, error)
	mu         sync.Mutex // serializes builds around the snapshot swap
	snap       atomic.Pointer[indexSnapshot]
}

// NewIndex creates an index persisting to store and sourcing documents
// from loadCorpus on build.
func NewIndex(store Store, loadCorpus func() ([]models.RecipeDocument, error)) *Index {
	return &Index{store: store, loadCorpus: loadCorpus}
}

// Build embeds every corpus document and persists the metadata list and
// vector list to their two KV entries. When both entries already exist
// the build is skipped unless force is set.
func (ix *Index) Build(force bool) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if !force {
		if snap, err := ix.loadPersistedLocked(); err == nil && snap != nil {
			ix.snap.Store(snap)
			return nil
		}
	}

	docs, err := ix.loadCorpus()
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}

	vectors := make([][]float64, len(docs))
	for i, doc := range docs {
		vectors[i] = EmbedText(doc.Text)
	}

	if err := ix.store.SetJSON(kv.IndexMetaKey, docs); err != nil {
		return fmt.Errorf("failed to persist index metadata: %w", err)
	}
	if err := ix.store.SetJSON(kv.IndexVecsKey, vectors); err != nil {
		return fmt.Errorf("failed to persist index vectors: %w", err)
	}

	ix.snap.Store(&indexSnapshot{docs: docs, vectors: vectors})
	return nil
}

// Retrieve embeds the query, scores every stored vector by dot product,
// and returns the top-k (document, score) pairs in descending score
// order. Equal scores keep their original corpus order (stable sort).
// k <= 0 selects DefaultTopK.
func (ix *Index) Retrieve(query string, k int) ([]Result, error) {
	snap, err := ix.snapshot()
	if err != nil {
		return nil, err
	}

	if k <= 0 {
		k = DefaultTopK
	}

	queryVec := EmbedText(query)
	results := make([]Result, len(snap.docs))
	for i, doc := range snap.docs {
		results[i] = Result{Document: doc, Score: Dot(snap.vectors[i], queryVec)}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}

// Documents returns the indexed corpus documents, building the index on
// first use when necessary.
func (ix *Index) Documents() ([]models.RecipeDocument, error) {
	snap, err := ix.snapshot()
	if err != nil {
		return nil, err
	}
	return snap.docs, nil
}

// snapshot returns the current index, loading the persisted entries or
// building from the corpus on first use.
func (ix *Index) snapshot() (*indexSnapshot, error) {
	if snap := ix.snap.Load(); snap != nil {
		return snap, nil
	}

	if err := ix.Build(false); err != nil {
		return nil, err
	}
	return ix.snap.Load(), nil
}

// loadPersistedLocked loads the two persisted entries, returning nil when
// either is missing. Callers must hold ix.mu.
func (ix *Index) loadPersistedLocked() (*indexSnapshot, error) {
	metaRaw, err := ix.store.Get(kv.IndexMetaKey)
	if err != nil || metaRaw == nil {
		return nil, err
	}
	vecsRaw, err := ix.store.Get(kv.IndexVecsKey)
	if err != nil || vecsRaw == nil {
		return nil, err
	}

	var docs []models.RecipeDocument
	if err := ix.store.GetJSON(kv.IndexMetaKey, &docs); err != nil {
		return nil, err
	}
	var vectors [][]float64
	if err := ix.store.GetJSON(kv.IndexVecsKey, &vectors); err != nil {
		return nil, err
	}
	if len(docs) != len(vectors) {
		return nil, fmt.Errorf("index metadata and vectors out of sync: %d docs, %d vectors", len(docs), len(vectors))
	}

	return &indexSnapshot{docs: docs, vectors: vectors}, nil
}
