package memo

import (
	"sync"
	"sync/atomic"
)

// Table is a generic thread-safe memo table without eviction.
type Table[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
	hits    atomic.Uint64
	misses  atomic.Uint64
}

// New creates an empty table.
func New[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{
		entries: make(map[K]V),
	}
}

// Get retrieves a value from the table.
// Returns (value, true) if found, (zero, false) otherwise.
func (t *Table[K, V]) Get(key K) (V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.entries[key]
	return v, ok
}

// GetOrCreate returns the remembered value for key or creates it.
// create runs under the write lock, so it is called at most once per key
// and must not call back into the table.
func (t *Table[K, V]) GetOrCreate(key K, create func() V) V {
	t.mu.RLock()
	v, ok := t.entries[key]
	t.mu.RUnlock()
	if ok {
		t.hits.Add(1)
		return v
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Another goroutine may have created it between the locks.
	if v, ok := t.entries[key]; ok {
		t.hits.Add(1)
		return v
	}

	v = create()
	t.entries[key] = v
	t.misses.Add(1)
	return v
}

// Len returns the number of remembered entries.
func (t *Table[K, V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.entries)
}

// Stats returns table statistics.
func (t *Table[K, V]) Stats() Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return Stats{
		Len:    len(t.entries),
		Hits:   t.hits.Load(),
		Misses: t.misses.Load(),
	}
}

// Stats contains memo table statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Hits is the number of GetOrCreate calls answered from the table.
	Hits uint64
	// Misses is the number of GetOrCreate calls that ran create.
	Misses uint64
}
