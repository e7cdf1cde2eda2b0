// Package reducer defines the pure-function contract at the heart of the
// store and the composition tools that let independently authored reducers
// be combined into one whole-state reducer.
//
// A reducer computes the next state from the previous state and an action:
//
//	func(prev any, act action.Action) any
//
// Reducers must be pure. Never mutate the previous state in place, perform
// I/O, or call Store.Dispatch from inside a reducer. Given the same inputs a
// reducer returns the same output. Return new values and share unchanged
// substructure.
//
// # Composition
//
// TypeFiltered scopes a reducer to a single action type; for every other
// type it returns its input unchanged. Combine merges top-level reducers
// (applied in sequence to the whole state) with keyed reducers (each scoped
// to one subtree of a map-shaped state). A combined reducer is itself a
// reducer and nests inside further Combine calls, so a tree of reducers can
// mirror a tree-shaped state without any leaf knowing its position.
//
// # Modules
//
// A Module collects type-filtered reducers incrementally and behaves as one
// reducer over the whole collection:
//
//	mod := reducer.NewModule()
//	mod.Register(TypeAdd, addTodo)
//	mod.Register(TypeToggle, toggleTodo)
//
//	root := reducer.Combine(nil, map[string]reducer.Reducer{
//	    "todos": mod.Reducer(),
//	})
package reducer
