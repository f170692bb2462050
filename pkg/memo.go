// Package pkg provides small generic utilities for solsig.
package pkg

import "sync"

// Memo is a concurrency-safe memoization cache around a pure function.
// Concurrent callers for the same key may race on the first computation;
// the function must therefore be deterministic so either result is valid.
type Memo[K comparable, V any] struct {
	fn    func(K) V
	mu    sync.RWMutex
	store map[K]V
}

// NewMemo wraps fn with a cache. fn must be a pure function of its key.
func NewMemo[K comparable, V any](fn func(K) V) *Memo[K, V] {
	return &Memo[K, V]{
		fn:    fn,
		store: make(map[K]V),
	}
}

// Get returns the cached value for key, computing and storing it on first use.
func (m *Memo[K, V]) Get(key K) V {
	m.mu.RLock()
	v, ok := m.store[key]
	m.mu.RUnlock()

	if ok {
		return v
	}

	v = m.fn(key)

	m.mu.Lock()
	m.store[key] = v
	m.mu.Unlock()

	return v
}

// Len returns the number of cached entries.
func (m *Memo[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.store)
}
