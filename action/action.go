package action

// Type is the discriminator tag of an Action.
//
// Tags compare by value, so independently declared constants with the same
// underlying string match each other. Each subsystem declares its own tags;
// group them in a TypeSet to get construction-time uniqueness checking.
type Type string

// Action is an immutable tagged record describing an intended state change.
//
// The Type is set once at creation and never mutated. Payload keys are
// strings; values are unconstrained and may nest arbitrarily. An Action is
// consumed exactly once by the reducer pass of a single dispatch and is not
// retained by the store afterwards.
type Action struct {
	Type    Type
	Payload map[string]any
}

// New creates an Action with the given type and payload.
//
// A nil payload is valid and common for actions that carry no data.
func New(t Type, payload map[string]any) Action {
	return Action{Type: t, Payload: payload}
}

// Creator binds a payload-building function to a fixed action type and
// returns the resulting action creator.
//
// The returned function builds the payload from its argument and wraps it in
// an Action:
//
//	var SetUser = action.Creator(TypeSetUser, func(name string) map[string]any {
//	    return map[string]any{"name": name}
//	})
func Creator[A any](t Type, payload func(A) map[string]any) func(A) Action {
	return func(arg A) Action {
		return New(t, payload(arg))
	}
}

// FixedCreator returns an action creator for a zero-payload action type.
//
// Every call produces a fresh Action with a nil payload:
//
//	var Reset = action.FixedCreator(TypeReset)
//	store.Dispatch(Reset())
func FixedCreator(t Type) func() Action {
	return func() Action {
		return New(t, nil)
	}
}
