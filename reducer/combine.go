package reducer

import (
	"fmt"
	"maps"

	"github.com/RookieGameDevs/revived/action"
)

// Combine builds a composite reducer from top-level and keyed reducers.
//
// Top-level reducers run first, in the order supplied, each receiving the
// whole accumulating state: reducer i+1 sees the output of reducer i. This
// lets several cross-cutting reducers co-own the full state tree.
//
// Keyed reducers run after the top-level pass. Each receives only the value
// stored under its key in the map-shaped state (nil if the key is absent)
// and its result is written back under the same key. The relative order
// between different keys is unspecified; keyed reducers are isolated and
// must not depend on each other's output within one pass.
//
// The combined reducer never mutates its input. When keyed reducers are
// present the state map is shallow-cloned before the keyed writes, so
// unchanged subtrees are shared with the previous state. A nil state is
// materialized as a fresh map[string]any; a non-map state combined with
// keyed reducers is a programming error and panics.
//
// Either argument may be nil or empty. The result satisfies the Reducer
// contract and can be nested inside another Combine call to build reducer
// trees of arbitrary shape.
func Combine(top []Reducer, keyed map[string]Reducer) Reducer {
	return func(prev any, act action.Action) any {
		next := prev
		for _, r := range top {
			next = r(next, act)
		}

		if len(keyed) == 0 {
			return next
		}

		var tree map[string]any
		switch t := next.(type) {
		case nil:
			tree = make(map[string]any, len(keyed))
		case map[string]any:
			tree = maps.Clone(t)
			if tree == nil {
				tree = make(map[string]any, len(keyed))
			}
		default:
			panic(fmt.Sprintf("reducer: keyed combination requires map[string]any state, got %T", next))
		}

		for key, r := range keyed {
			tree[key] = r(tree[key], act)
		}
		return tree
	}
}
