package collection

import (
	"encoding/json"
	"iter"
	"math/rand/v2"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// All iterates entries in insertion order. The loop body may delete the
// entry it was handed.
func (c *Collection[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if c == nil {
			return
		}
		for pair := c.entries.Oldest(); pair != nil; {
			next := pair.Next()
			if !yield(pair.Key, pair.Value) {
				return
			}
			pair = next
		}
	}
}

// Backward iterates entries newest first.
func (c *Collection[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if c == nil {
			return
		}
		for pair := c.entries.Newest(); pair != nil; {
			prev := pair.Prev()
			if !yield(pair.Key, pair.Value) {
				return
			}
			pair = prev
		}
	}
}

// Values returns a new slice of the values in insertion order.
func (c *Collection[K, V]) Values() []V {
	values := make([]V, 0, c.Size())
	for _, v := range c.All() {
		values = append(values, v)
	}
	return values
}

// Array is Values.
func (c *Collection[K, V]) Array() []V {
	return c.Values()
}

// ToJSON returns the values in order with the keys dropped, for handing to
// a JSON encoder.
func (c *Collection[K, V]) ToJSON() []V {
	return c.Values()
}

// MarshalJSON encodes the collection as the array returned by ToJSON.
func (c *Collection[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.ToJSON())
}

// Keys returns a new slice of the keys in insertion order.
func (c *Collection[K, V]) Keys() []K {
	keys := make([]K, 0, c.Size())
	for k := range c.All() {
		keys = append(keys, k)
	}
	return keys
}

// KeyArray is Keys.
func (c *Collection[K, V]) KeyArray() []K {
	return c.Keys()
}

func (c *Collection[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, c.Size())
	for k, v := range c.All() {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}
	return entries
}

// At returns the value at index. Negative indexes count back from the end,
// so -1 is the last value.
func (c *Collection[K, V]) At(index int) (V, bool) {
	pair := c.pairAt(index)
	if pair == nil {
		var zero V
		return zero, false
	}
	return pair.Value, true
}

// KeyAt is At for keys.
func (c *Collection[K, V]) KeyAt(index int) (K, bool) {
	pair := c.pairAt(index)
	if pair == nil {
		var zero K
		return zero, false
	}
	return pair.Key, true
}

func (c *Collection[K, V]) pairAt(index int) *orderedmap.Pair[K, V] {
	size := c.Size()
	if index < 0 {
		index += size
	}
	if index < 0 || index >= size {
		return nil
	}

	// walk from whichever end is closer
	if index < size/2 {
		pair := c.entries.Oldest()
		for range index {
			pair = pair.Next()
		}
		return pair
	}
	pair := c.entries.Newest()
	for range size - 1 - index {
		pair = pair.Prev()
	}
	return pair
}

func (c *Collection[K, V]) First() (V, bool) {
	if c.IsEmpty() {
		var zero V
		return zero, false
	}
	return c.entries.Oldest().Value, true
}

// Selection is the result of FirstN: nothing, one value, or several.
type Selection[V any] struct {
	values  []V
	present bool
}

// Absent reports whether nothing was selected.
func (s Selection[V]) Absent() bool {
	return !s.present
}

// Single returns the value when exactly one was selected.
func (s Selection[V]) Single() (V, bool) {
	if !s.present || len(s.values) != 1 {
		var zero V
		return zero, false
	}
	return s.values[0], true
}

// Values returns the selected values. It is nil when the selection is absent
// and empty, not nil, for a negative count.
func (s Selection[V]) Values() []V {
	return s.values
}

func (s Selection[V]) Len() int {
	return len(s.values)
}

// FirstN selects up to count leading values. Selecting nothing from a
// non-negative count is absent; a negative count selects an empty slice.
func (c *Collection[K, V]) FirstN(count int) Selection[V] {
	if count < 0 {
		return Selection[V]{values: []V{}, present: true}
	}

	var values []V
	for _, v := range c.All() {
		if len(values) >= count {
			break
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return Selection[V]{}
	}
	return Selection[V]{values: values, present: true}
}

func (c *Collection[K, V]) Last() (V, bool) {
	if c.IsEmpty() {
		var zero V
		return zero, false
	}
	return c.entries.Newest().Value, true
}

func (c *Collection[K, V]) LastKey() (K, bool) {
	if c.IsEmpty() {
		var zero K
		return zero, false
	}
	return c.entries.Newest().Key, true
}

// Random returns a uniformly chosen value.
func (c *Collection[K, V]) Random() (V, bool) {
	values := c.Values()
	if len(values) == 0 {
		var zero V
		return zero, false
	}
	return values[c.intN(len(values))], true
}

// RandomKey returns a uniformly chosen key.
func (c *Collection[K, V]) RandomKey() (K, bool) {
	keys := c.Keys()
	if len(keys) == 0 {
		var zero K
		return zero, false
	}
	return keys[c.intN(len(keys))], true
}

func (c *Collection[K, V]) intN(n int) int {
	if c.opts.rand != nil {
		return c.opts.rand.IntN(n)
	}
	return rand.IntN(n)
}
