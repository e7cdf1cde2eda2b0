package reducer

import "github.com/RookieGameDevs/revived/action"

// Module is a registry of type-filtered reducers that itself behaves as one
// reducer.
//
// Modules let a set of type-scoped reducers over the same state slice be
// authored incrementally and still be combined as a single unit. The
// registry is append-only; entries are never removed. Although an
// implementation detail applies entries in registration order, callers must
// not depend on call order across entries.
//
// A Module is a convenience construct: registering r1 for type A and r2 for
// type B yields exactly the behavior of Combine([]Reducer{
// TypeFiltered(A, r1), TypeFiltered(B, r2)}, nil).
type Module struct {
	reducers []Reducer
}

// NewModule creates an empty Module.
func NewModule() *Module {
	return &Module{}
}

// Register wraps r with a type filter for t, appends the wrapper to the
// module, and returns the wrapper.
//
// The returned reducer is independently callable and composable; the append
// is the registration. Registering two handlers for the same type is
// allowed, in which case both apply in registration order when that type is
// dispatched.
func (m *Module) Register(t action.Type, r Reducer) Reducer {
	wrapped := TypeFiltered(t, r)
	m.reducers = append(m.reducers, wrapped)
	return wrapped
}

// Reduce applies every registered reducer in registration order, folding the
// state through each.
//
// Because each entry is a passthrough for non-matching action types, the net
// effect is that only handlers registered for the action's type transform
// the state; all others are inert for this call.
func (m *Module) Reduce(prev any, act action.Action) any {
	next := prev
	for _, r := range m.reducers {
		next = r(next, act)
	}
	return next
}

// Reducer adapts the module to the Reducer function contract so it can be
// passed anywhere a plain reducer or a Combine input is expected.
//
// The returned function reflects registrations made after the call: it
// closes over the module, not a snapshot of its entries.
func (m *Module) Reducer() Reducer {
	return m.Reduce
}

// Len returns the number of registered reducers.
func (m *Module) Len() int {
	return len(m.reducers)
}
