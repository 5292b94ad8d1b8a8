package status

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricMapCachesCells(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	a := m.Get("x")
	a.Store(7)

	assert.Same(t, a, m.Get("x"))
	cell, ok := m.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, int64(7), cell.Load())

	_, ok = m.Lookup("missing")
	assert.False(t, ok)
	assert.Equal(t, 1, m.Count())
}

func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	for _, k := range []string{"b", "c", "a"} {
		m.Get(k)
	}

	var names []string
	m.Range(func(name string, _ *atomic.Int64) { names = append(names, name) })
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Get("shared").Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1600), m.Get("shared").Load())
	assert.Equal(t, 1, m.Count())
}

func TestAtomicFloat(t *testing.T) {
	var f AtomicFloat
	assert.Equal(t, 0.0, f.Get())

	f.Set(1.5)
	assert.Equal(t, 4.0, f.Add(2.5))

	f.Max(3)
	assert.Equal(t, 4.0, f.Get())
	f.Max(9)
	assert.Equal(t, 9.0, f.Get())
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	assert.Equal(t, "", s.Load())

	s.Store("CommitWindow")
	assert.Equal(t, "CommitWindow", s.Load())

	long := "abcdefghijklmnopqrstuvwxyz0123456789"
	s.Store(long)
	assert.Equal(t, long[:MaxStringLen], s.Load())
}

func TestRegistryTotalCount(t *testing.T) {
	r := NewRegistry()
	r.Bools.Get(KeyPaused)
	r.Ints.Get(KeyFrames)
	r.Floats.Get(KeyEnergyLevel)
	r.Strings.Get(KeyChargePhase)
	assert.Equal(t, 4, r.TotalCount())
}
