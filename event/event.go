// Package event implements the synchronous notification channels fired by
// collections.
//
// Listeners run on the goroutine that calls Fire, in the order they were
// connected. A panicking listener unwinds through Fire to whoever triggered
// it. An Event is not safe for concurrent use.
package event

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"monks.co/collection/lifecycle"
)

var _ lifecycle.Destroyer = &Event[int]{}

type Event[T any] struct {
	lifecycle.Base

	listeners *orderedmap.OrderedMap[uint64, *listener[T]]
	nextID    uint64
}

type listener[T any] struct {
	fn   func(T)
	conn *Connection
}

// Connection is the handle returned by Connect.
type Connection struct {
	connected  bool
	disconnect func()
}

func New[T any]() *Event[T] {
	return &Event[T]{
		listeners: orderedmap.New[uint64, *listener[T]](),
	}
}

// Connect subscribes fn. It fails with lifecycle.ErrDestroyed once the
// event has been destroyed.
func (ev *Event[T]) Connect(fn func(T)) (*Connection, error) {
	if ev.IsDestroyed() {
		return nil, lifecycle.ErrDestroyed
	}

	id := ev.nextID
	ev.nextID++

	conn := &Connection{connected: true}
	conn.disconnect = func() {
		ev.listeners.Delete(id)
	}
	ev.listeners.Set(id, &listener[T]{fn: fn, conn: conn})
	return conn, nil
}

// Once subscribes fn for a single firing.
func (ev *Event[T]) Once(fn func(T)) (*Connection, error) {
	var conn *Connection
	conn, err := ev.Connect(func(v T) {
		conn.Disconnect()
		fn(v)
	})
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Fire calls every connected listener with v. Listeners connected during
// dispatch are not called until the next Fire; listeners disconnected
// during dispatch are skipped. Firing a destroyed event does nothing.
func (ev *Event[T]) Fire(v T) {
	if ev.IsDestroyed() || ev.listeners.Len() == 0 {
		return
	}

	snapshot := make([]*listener[T], 0, ev.listeners.Len())
	for pair := ev.listeners.Oldest(); pair != nil; pair = pair.Next() {
		snapshot = append(snapshot, pair.Value)
	}

	for _, l := range snapshot {
		if !l.conn.connected {
			continue
		}
		l.fn(v)
	}
}

// Len returns the number of connected listeners.
func (ev *Event[T]) Len() int {
	return ev.listeners.Len()
}

// Destroy disconnects every listener. Further Connect calls fail and
// further Fire calls are ignored.
func (ev *Event[T]) Destroy() {
	if !ev.MarkDestroyed() {
		return
	}
	for pair := ev.listeners.Oldest(); pair != nil; pair = pair.Next() {
		pair.Value.conn.connected = false
	}
	ev.listeners = orderedmap.New[uint64, *listener[T]]()
}

func (conn *Connection) Connected() bool {
	return conn != nil && conn.connected
}

func (conn *Connection) Disconnect() {
	if !conn.Connected() {
		return
	}
	conn.connected = false
	conn.disconnect()
}
