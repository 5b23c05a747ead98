// Package lifecycle carries the Destroy/IsDestroyed convention shared by
// collections and their event channels.
package lifecycle

import (
	"errors"

	"monks.co/collection/atom"
)

// ErrDestroyed is returned by operations that cannot run on a destroyed module.
var ErrDestroyed = errors.New("already destroyed")

type Destroyer interface {
	Destroy()
	IsDestroyed() bool
}

// Base tracks the destroyed flag. Embed it and call MarkDestroyed from Destroy.
// The zero value is a live module.
type Base struct {
	destroyed atom.Atom[bool]
}

func (b *Base) IsDestroyed() bool {
	return b.destroyed.Deref()
}

// MarkDestroyed sets the flag and reports whether this call was the one
// that flipped it.
func (b *Base) MarkDestroyed() bool {
	was := b.destroyed.Swap(func(bool) bool { return true })
	return !was
}

// DestroyAll destroys every non-nil module that is not destroyed yet, in order.
func DestroyAll(ds ...Destroyer) {
	for _, d := range ds {
		if d == nil || d.IsDestroyed() {
			continue
		}
		d.Destroy()
	}
}
