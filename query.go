package collection

// ForEach calls fn for every entry in order.
func (c *Collection[K, V]) ForEach(fn func(value V, key K)) {
	for k, v := range c.All() {
		fn(v, k)
	}
}

// Each is ForEach that returns c for chaining.
func (c *Collection[K, V]) Each(fn func(value V, key K)) *Collection[K, V] {
	c.ForEach(fn)
	return c
}

// Tap calls fn with c and returns c.
func (c *Collection[K, V]) Tap(fn func(*Collection[K, V])) *Collection[K, V] {
	fn(c)
	return c
}

// Every reports whether fn holds for every entry, stopping at the first
// that fails. It is true for an empty collection.
func (c *Collection[K, V]) Every(fn func(value V, key K) bool) bool {
	for k, v := range c.All() {
		if !fn(v, k) {
			return false
		}
	}
	return true
}

// Some reports whether fn holds for any entry, stopping at the first match.
func (c *Collection[K, V]) Some(fn func(value V, key K) bool) bool {
	_, found := c.FindKey(fn)
	return found
}

func (c *Collection[K, V]) Find(fn func(value V, key K) bool) (V, bool) {
	for k, v := range c.All() {
		if fn(v, k) {
			return v, true
		}
	}
	var zero V
	return zero, false
}

func (c *Collection[K, V]) FindKey(fn func(value V, key K) bool) (K, bool) {
	for k, v := range c.All() {
		if fn(v, k) {
			return k, true
		}
	}
	var zero K
	return zero, false
}

// Filter returns a new collection of the entries for which fn holds.
func (c *Collection[K, V]) Filter(fn func(value V, key K) bool) *Collection[K, V] {
	out := c.derive()
	for k, v := range c.All() {
		if fn(v, k) {
			out.Set(k, v)
		}
	}
	return out
}

// MapValues returns a new collection with the same keys, in the same order,
// holding fn of each value.
func (c *Collection[K, V]) MapValues(fn func(value V, key K) V) *Collection[K, V] {
	out := c.derive()
	for k, v := range c.All() {
		out.Set(k, fn(v, k))
	}
	return out
}

// Sweep deletes every entry for which fn holds and returns how many it
// deleted. OnRemove does not fire.
func (c *Collection[K, V]) Sweep(fn func(value V, key K) bool) int {
	if c.IsDestroyed() {
		c.ignored("Sweep")
		return 0
	}
	n := 0
	for k, v := range c.All() {
		if fn(v, k) {
			c.entries.Delete(k)
			n++
		}
	}
	return n
}

// Map projects every entry through fn, in order.
func Map[K comparable, V, T any](c *Collection[K, V], fn func(value V, key K) T) []T {
	out := make([]T, 0, c.Size())
	for k, v := range c.All() {
		out = append(out, fn(v, k))
	}
	return out
}

// FlatMap concatenates fn of every entry, in order.
func FlatMap[K comparable, V, T any](c *Collection[K, V], fn func(value V, key K) []T) []T {
	var out []T
	for k, v := range c.All() {
		out = append(out, fn(v, k)...)
	}
	return out
}

// Reduce folds the entries left to right starting from initial.
func Reduce[K comparable, V, T any](c *Collection[K, V], fn func(acc T, value V, key K) T, initial T) T {
	acc := initial
	for k, v := range c.All() {
		acc = fn(acc, v, k)
	}
	return acc
}
