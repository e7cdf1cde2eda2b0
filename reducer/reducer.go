package reducer

import "github.com/RookieGameDevs/revived/action"

// Reducer computes the next state from the previous state and an action.
//
// Reducers must be pure: no mutation of prev, no side effects, deterministic
// for identical inputs. A reducer that does not recognize an action's type
// must return prev unchanged.
type Reducer func(prev any, act action.Action) any

// TypeFiltered scopes r to a single action type.
//
// The returned reducer invokes r only when the action's type equals t;
// otherwise it returns its input unchanged. Matching uses value equality, so
// tags recreated across package boundaries still match. This is how a
// reducer opts in to exactly one action type while remaining composable with
// reducers for other types over the same state slice.
func TypeFiltered(t action.Type, r Reducer) Reducer {
	return func(prev any, act action.Action) any {
		if act.Type != t {
			return prev
		}
		return r(prev, act)
	}
}
