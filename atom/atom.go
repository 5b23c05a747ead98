package atom

import "sync"

// Atom holds a single value behind a lock. The zero value holds the zero T
// and is ready to use.
type Atom[T any] struct {
	mu sync.RWMutex
	v  T
}

func (at *Atom[T]) Deref() T {
	at.mu.RLock()
	defer at.mu.RUnlock()

	return at.v
}

// Swap replaces the value with fn(old) and returns old.
func (at *Atom[T]) Swap(fn func(T) T) T {
	at.mu.Lock()
	defer at.mu.Unlock()

	old := at.v
	at.v = fn(old)
	return old
}
