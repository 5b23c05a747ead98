package render

import (
	"fmt"
	"io"
	"strings"

	"monks.co/collection"
)

// Diff writes every key of from and to, in the order of from followed by
// keys only in to. Keys only in from are marked "-", keys only in to "+",
// and keys in both whose values differ "~".
func Diff[K, V comparable](w io.Writer, prefix string, from, to *collection.Collection[K, V]) error {
	return DiffFunc(w, prefix, from, to, func(a, b V) bool {
		return a == b
	})
}

// DiffFunc is Diff with a caller-supplied value comparison.
func DiffFunc[K comparable, V any](w io.Writer, prefix string, from, to *collection.Collection[K, V], eq func(V, V) bool) error {
	removed := from.Difference(to)
	added := to.Difference(from)

	var out strings.Builder
	for k, v := range from.Concat(added).All() {
		sigil := " "
		if removed.Has(k) {
			sigil = "-"
		} else if added.Has(k) {
			sigil = "+"
		} else if theirs, _ := to.Get(k); !eq(v, theirs) {
			sigil = "~"
			v = theirs
		}
		fmt.Fprintf(&out, "%s%s %v = %v\n", prefix, sigil, k, v)
	}

	_, err := io.WriteString(w, out.String())
	return err
}
