package types

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Tree is the parsed registry document: full key path to the key's values.
// Iteration preserves the order keys first appeared in the source text, so
// downstream "later key wins" tie-breaks are defined by file order rather
// than by map hashing.
type Tree struct {
	keys *orderedmap.OrderedMap[string, ValueMap]
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{keys: orderedmap.New[string, ValueMap]()}
}

// Ensure returns the value map for path, creating an empty entry the first
// time the path is seen. Keys declared with no values still surface this way.
func (t *Tree) Ensure(path string) ValueMap {
	if values, ok := t.keys.Get(path); ok {
		return values
	}
	values := make(ValueMap)
	t.keys.Set(path, values)
	return values
}

// Get returns the value map for path, if present.
func (t *Tree) Get(path string) (ValueMap, bool) {
	return t.keys.Get(path)
}

// Len returns the number of key paths in the tree.
func (t *Tree) Len() int {
	return t.keys.Len()
}

// Each calls fn for every key path in insertion order.
func (t *Tree) Each(fn func(path string, values ValueMap)) {
	for pair := t.keys.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Paths returns all key paths in insertion order.
func (t *Tree) Paths() []string {
	out := make([]string, 0, t.keys.Len())
	for pair := t.keys.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}
