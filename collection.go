// Package collection provides Collection, an insertion-ordered map with
// filtering, set algebra, sorting and lifecycle events.
//
// A Collection is owned by one goroutine at a time. Every builder method
// (Clone, Filter, Sort, Merge, ...) returns a new Collection that shares no
// storage with its source.
//
// Destroyed collections ignore mutation: Set, Ensure, Delete, Clear, Sweep
// and Destroy become no-ops that log through the configured logger, and
// reads see an empty collection.
package collection

import (
	"fmt"
	"math/rand/v2"

	"github.com/dustin/go-humanize"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"monks.co/collection/event"
	"monks.co/collection/lifecycle"
	"monks.co/collection/logger"
)

var _ lifecycle.Destroyer = &Collection[string, int]{}

// Collection is an insertion-ordered map from K to V. The zero value is not
// usable; construct one with New. A nil *Collection reads as empty.
type Collection[K comparable, V any] struct {
	lifecycle.Base

	// OnAdd fires with the value after every successful Set, including
	// overwrites of an existing key.
	OnAdd *event.Event[V]
	// OnRemove is never fired by Delete, Sweep or Clear. It exists so
	// callers can fire removals they perform themselves.
	OnRemove *event.Event[V]
	// OnDestroy fires once, from Destroy, with a copy of the entries as
	// they were before destruction.
	OnDestroy *event.Event[*Collection[K, V]]

	entries *orderedmap.OrderedMap[K, V]
	opts    options
}

type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

type Option func(*options)

type options struct {
	logger logger.Logger
	rand   *rand.Rand
}

// WithLogger sets where a collection, and every collection derived from it,
// reports destruction and ignored mutations.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithRand sets the source used by Random and RandomKey.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}

func New[K comparable, V any](opts ...Option) *Collection[K, V] {
	o := options{logger: logger.Discard}
	for _, opt := range opts {
		opt(&o)
	}
	return newWithOptions[K, V](o)
}

func newWithOptions[K comparable, V any](o options) *Collection[K, V] {
	return &Collection[K, V]{
		OnAdd:     event.New[V](),
		OnRemove:  event.New[V](),
		OnDestroy: event.New[*Collection[K, V]](),
		entries:   orderedmap.New[K, V](),
		opts:      o,
	}
}

// derive returns an empty collection with the same options as c.
func (c *Collection[K, V]) derive() *Collection[K, V] {
	return newWithOptions[K, V](c.opts)
}

func (c *Collection[K, V]) String() string {
	if c == nil {
		return "<no collection>"
	}
	return fmt.Sprintf("<%s entries>", humanize.Comma(int64(c.Size())))
}

func (c *Collection[K, V]) Get(key K) (V, bool) {
	if c == nil {
		var zero V
		return zero, false
	}
	return c.entries.Get(key)
}

func (c *Collection[K, V]) Has(key K) bool {
	_, has := c.Get(key)
	return has
}

// HasAll reports whether every key is present. It is true for no keys.
func (c *Collection[K, V]) HasAll(keys ...K) bool {
	for _, key := range keys {
		if !c.Has(key) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one key is present.
func (c *Collection[K, V]) HasAny(keys ...K) bool {
	for _, key := range keys {
		if c.Has(key) {
			return true
		}
	}
	return false
}

func (c *Collection[K, V]) Size() int {
	if c == nil {
		return 0
	}
	return c.entries.Len()
}

func (c *Collection[K, V]) IsEmpty() bool {
	return c.Size() == 0
}

// Set stores value under key and fires OnAdd. A key that is already present
// keeps its position.
func (c *Collection[K, V]) Set(key K, value V) V {
	if c.IsDestroyed() {
		c.ignored("Set")
		return value
	}
	c.entries.Set(key, value)
	c.OnAdd.Fire(value)
	return value
}

// Delete removes key and reports whether it was present.
func (c *Collection[K, V]) Delete(key K) bool {
	if c.IsDestroyed() {
		c.ignored("Delete")
		return false
	}
	_, present := c.entries.Delete(key)
	return present
}

// Ensure sets key to defaultValue unless it is already present, and returns
// whatever is stored under key afterwards.
func (c *Collection[K, V]) Ensure(key K, defaultValue V) V {
	if c.IsDestroyed() {
		c.ignored("Ensure")
		return defaultValue
	}
	if v, ok := c.entries.Get(key); ok {
		return v
	}
	return c.Set(key, defaultValue)
}

func (c *Collection[K, V]) Clear() {
	if c.IsDestroyed() {
		c.ignored("Clear")
		return
	}
	c.entries = orderedmap.New[K, V]()
}

// Destroy fires OnDestroy with a snapshot of the entries, tears down all
// three events and empties the collection.
//
// The collection counts as destroyed from the moment Destroy starts, so
// OnDestroy listeners cannot mutate it or destroy it again.
func (c *Collection[K, V]) Destroy() {
	if !c.MarkDestroyed() {
		c.ignored("Destroy")
		return
	}

	snapshot := c.Clone()
	c.OnDestroy.Fire(snapshot)
	lifecycle.DestroyAll(c.OnAdd, c.OnRemove, c.OnDestroy)
	c.entries = orderedmap.New[K, V]()

	c.opts.logger.Printf("destroyed collection with %s", snapshot)
}

func (c *Collection[K, V]) ignored(op string) {
	c.opts.logger.Printf("ignoring %s on destroyed collection", op)
}
