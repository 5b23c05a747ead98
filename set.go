package collection

import "slices"

// Keep is a merge callback's verdict on one entry: keep it with a value, or
// discard it.
type Keep[V any] struct {
	value V
	keep  bool
}

func KeepValue[V any](value V) Keep[V] {
	return Keep[V]{value: value, keep: true}
}

func Discard[V any]() Keep[V] {
	return Keep[V]{}
}

// Kept returns the kept value and whether the entry is kept.
func (k Keep[V]) Kept() (V, bool) {
	return k.value, k.keep
}

// Clone returns a shallow copy of c.
func (c *Collection[K, V]) Clone() *Collection[K, V] {
	out := c.derive()
	for k, v := range c.All() {
		out.Set(k, v)
	}
	return out
}

// Concat returns a copy of c with the entries of each other collection set
// on top, in argument order, so later collections win.
func (c *Collection[K, V]) Concat(others ...*Collection[K, V]) *Collection[K, V] {
	out := c.Clone()
	for _, other := range others {
		for k, v := range other.All() {
			out.Set(k, v)
		}
	}
	return out
}

// Difference returns the entries of c whose keys are not in other.
func (c *Collection[K, V]) Difference(other *Collection[K, V]) *Collection[K, V] {
	return c.Filter(func(_ V, k K) bool {
		return !other.Has(k)
	})
}

// Intersect returns the entries of c whose keys are also in other. Values
// and order come from c.
func (c *Collection[K, V]) Intersect(other *Collection[K, V]) *Collection[K, V] {
	return c.Filter(func(_ V, k K) bool {
		return other.Has(k)
	})
}

// Merge reconciles other into a copy of c.
//
// Each entry of other, in order, goes to whenInBoth if the copy has its key
// and to whenInOther if not; kept entries are set, and a discard from
// whenInBoth deletes the key. Then whenInSelf runs over every entry of the
// merged copy, including ones just added from other, and its discards are
// deleted.
func (c *Collection[K, V]) Merge(
	other *Collection[K, V],
	whenInSelf func(value V, key K) Keep[V],
	whenInOther func(otherValue V, key K) Keep[V],
	whenInBoth func(value, otherValue V, key K) Keep[V],
) *Collection[K, V] {
	out := c.Clone()

	for k, theirs := range other.All() {
		if ours, ok := out.Get(k); ok {
			if v, keep := whenInBoth(ours, theirs, k).Kept(); keep {
				out.Set(k, v)
			} else {
				out.Delete(k)
			}
			continue
		}
		if v, keep := whenInOther(theirs, k).Kept(); keep {
			out.Set(k, v)
		}
	}

	for k, v := range out.All() {
		if _, keep := whenInSelf(v, k).Kept(); !keep {
			out.Delete(k)
		}
	}

	return out
}

// Equal reports whether a and b hold the same keys with == values. Order is
// not compared.
func Equal[K, V comparable](a, b *Collection[K, V]) bool {
	return a.EqualFunc(b, func(x, y V) bool {
		return x == y
	})
}

// EqualFunc is Equal with a caller-supplied value comparison.
func (c *Collection[K, V]) EqualFunc(other *Collection[K, V], eq func(V, V) bool) bool {
	if c.Size() != other.Size() {
		return false
	}
	for k, v := range c.All() {
		theirs, ok := other.Get(k)
		if !ok || !eq(v, theirs) {
			return false
		}
	}
	return true
}

// Partition splits c into the entries for which fn holds and the rest.
func (c *Collection[K, V]) Partition(fn func(value V, key K) bool) (pass, fail *Collection[K, V]) {
	pass, fail = c.derive(), c.derive()
	for k, v := range c.All() {
		if fn(v, k) {
			pass.Set(k, v)
		} else {
			fail.Set(k, v)
		}
	}
	return pass, fail
}

// Reverse returns a copy of c in reverse insertion order.
func (c *Collection[K, V]) Reverse() *Collection[K, V] {
	out := c.derive()
	for k, v := range c.Backward() {
		out.Set(k, v)
	}
	return out
}

// Sort returns a copy of c ordered by cmp on values. Only cmp(a, b) > 0 is
// consulted: it places a after b, so comparators that never return a
// negative number still sort. Entries that compare equal keep their
// relative order.
func (c *Collection[K, V]) Sort(cmp func(a, b V) int) *Collection[K, V] {
	entries := c.Entries()
	slices.SortStableFunc(entries, func(a, b Entry[K, V]) int {
		switch {
		case cmp(a.Value, b.Value) > 0:
			return 1
		case cmp(b.Value, a.Value) > 0:
			return -1
		}
		return 0
	})

	out := c.derive()
	for _, entry := range entries {
		out.Set(entry.Key, entry.Value)
	}
	return out
}
