// Package render writes collections for people and programs.
package render

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"monks.co/collection"
)

// JSON writes the collection's values as a JSON array, keys dropped.
func JSON[K comparable, V any](w io.Writer, c *collection.Collection[K, V]) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// Text writes one "key = value" line per entry and a count footer.
func Text[K comparable, V any](w io.Writer, c *collection.Collection[K, V]) error {
	var out strings.Builder
	for k, v := range c.All() {
		fmt.Fprintf(&out, "%v = %v\n", k, v)
	}
	fmt.Fprintf(&out, "# %s\n", c)
	_, err := io.WriteString(w, out.String())
	return err
}

// Table renders the collection as an HTML table with one row per entry.
func Table[K comparable, V any](title string, c *collection.Collection[K, V]) templ.Component {
	rows := make([]row, 0, c.Size())
	for k, v := range c.All() {
		rows = append(rows, row{Key: fmt.Sprint(k), Value: fmt.Sprint(v)})
	}
	return table(title, rows)
}

// HTML writes Table to w.
func HTML[K comparable, V any](ctx context.Context, w io.Writer, title string, c *collection.Collection[K, V]) error {
	return Table(title, c).Render(ctx, w)
}
