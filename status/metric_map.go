package status

import (
	"slices"
	"sync"
)

// MetricMap maps names to metric cells of type T
// Lookups after the first take only the read lock; callers cache the returned pointer
type MetricMap[T any] struct {
	mu    sync.RWMutex
	cells map[string]*T
}

// NewMetricMap creates an empty map
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{cells: make(map[string]*T)}
}

// Get returns the cell for name, allocating it on first use
func (m *MetricMap[T]) Get(name string) *T {
	m.mu.RLock()
	cell, ok := m.cells[name]
	m.mu.RUnlock()
	if ok {
		return cell
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if cell, ok = m.cells[name]; ok {
		return cell
	}
	cell = new(T)
	m.cells[name] = cell
	return cell
}

// Lookup returns the cell for name without creating it
func (m *MetricMap[T]) Lookup(name string) (*T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cell, ok := m.cells[name]
	return cell, ok
}

// Range visits cells in name order
func (m *MetricMap[T]) Range(fn func(name string, cell *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.cells))
	for name := range m.cells {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		fn(name, m.cells[name])
	}
}

// Count returns the number of cells
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cells)
}
