// ABOUTME: In-memory KV store implementing the same surface as the charm client
// ABOUTME: Used for tests and as a local fallback when the charm cloud is unreachable
package kv

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Memory is a process-local KV store with the same operations as Client.
// Keys are listed in sorted order for deterministic iteration.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Set stores a value with the given key
func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	buf := make([]byte, len(value))
	copy(buf, value)
	m.data[key] = buf
	return nil
}

// Get retrieves a value by key, returning nil when absent
func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.data[key], nil
}

// Delete removes a key
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

// SetJSON marshals and stores a value as JSON
func (m *Memory) SetJSON(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return m.Set(key, data)
}

// GetJSON retrieves and unmarshals a JSON value
func (m *Memory) GetJSON(key string, dest interface{}) error {
	data, err := m.Get(key)
	if err != nil {
		return err
	}
	if data == nil {
		return fmt.Errorf("key not found: %s", key)
	}
	return json.Unmarshal(data, dest)
}

// ListKeys returns all keys with the given prefix in sorted order
func (m *Memory) ListKeys(prefix string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []string
	for key := range m.data {
		if strings.HasPrefix(key, prefix) {
			result = append(result, key)
		}
	}
	sort.Strings(result)
	return result, nil
}
