// Package load reads TOML documents into collections, keeping the order in
// which keys appear in the document.
package load

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/sync/errgroup"
	"monks.co/collection"
)

var ErrNotTable = errors.New("not a table")

// Document decodes r and returns the entries of table in document order.
// An empty table selects the top level; a dotted name selects a nested
// table.
func Document(r io.Reader, table string, opts ...collection.Option) (*collection.Collection[string, any], error) {
	var raw map[string]any
	md, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}

	var prefix []string
	if table != "" {
		prefix = strings.Split(table, ".")
		v, ok := lookup(raw, prefix)
		if _, isTable := v.(map[string]any); !ok || !isTable {
			return nil, fmt.Errorf("'%s': %w", table, ErrNotTable)
		}
	}

	out := collection.New[string, any](opts...)
	for _, key := range md.Keys() {
		if len(key) != len(prefix)+1 || !slices.Equal([]string(key[:len(prefix)]), prefix) {
			continue
		}
		v, ok := lookup(raw, key)
		if !ok {
			continue
		}
		out.Set(key[len(key)-1], v)
	}
	return out, nil
}

func lookup(raw map[string]any, path []string) (any, bool) {
	var cur any = raw
	for _, part := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func File(path, table string, opts ...collection.Option) (*collection.Collection[string, any], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Document(f, table, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading '%s': %w", path, err)
	}
	return c, nil
}

// Files loads every path concurrently and concatenates the results in
// argument order, so a key in a later file overrides the same key in an
// earlier one.
func Files(ctx context.Context, paths []string, table string, opts ...collection.Option) (*collection.Collection[string, any], error) {
	loaded := make([]*collection.Collection[string, any], len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := File(path, table, opts...)
			if err != nil {
				return err
			}
			loaded[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(loaded) == 0 {
		return collection.New[string, any](opts...), nil
	}
	return loaded[0].Concat(loaded[1:]...), nil
}
