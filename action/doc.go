// Package action defines the tagged records that describe state changes and
// the helpers used to declare action types and action creators.
//
// Actions are payloads of information sent to the store via Store.Dispatch.
// They are the only source of information for the store. Each action carries
// a Type discriminator drawn from a closed, unique-per-subsystem set, plus an
// arbitrary string-keyed payload.
//
// # Declaring action types
//
// Each subsystem declares its own tags and groups them in a TypeSet so
// duplicates are rejected when the set is built, not when an action is
// dispatched:
//
//	const (
//	    TypeAdd    action.Type = "todos/add"
//	    TypeToggle action.Type = "todos/toggle"
//	)
//
//	var Types = action.MustTypeSet(TypeAdd, TypeToggle)
//
// # Action creators
//
// Action creators are plain functions returning an Action. Creator binds a
// payload-building function to a fixed type:
//
//	var Add = action.Creator(TypeAdd, func(text string) map[string]any {
//	    return map[string]any{"text": text}
//	})
//
//	store.Dispatch(Add("buy milk"))
//
// FixedCreator covers the zero-payload case.
package action
