package iocache

import (
	"context"
	"slices"
	"sync"

	"github.com/gnames/gnflora/pkg/flora"
)

type memory struct {
	mu   sync.RWMutex
	data map[string][]flora.SpeciesAggregate
}

// NewMemory creates a cache that lives as long as the process. It is safe
// for concurrent use.
func NewMemory() flora.Cache {
	return &memory{data: make(map[string][]flora.SpeciesAggregate)}
}

// Get implements flora.Cache. It returns a copy of the stored list.
func (m *memory) Get(
	_ context.Context,
	key string,
) ([]flora.SpeciesAggregate, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(res), true, nil
}

// Set implements flora.Cache.
func (m *memory) Set(
	_ context.Context,
	key string,
	species []flora.SpeciesAggregate,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = slices.Clone(species)
	return nil
}

// Close implements flora.Cache.
func (m *memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.data)
	return nil
}
