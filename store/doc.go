// Package store implements the global state container: a single owner of the
// current state that serializes dispatches through a root reducer and
// notifies subscribers after every transition.
//
// # The dispatch cycle
//
// A caller builds an action via an action creator and passes it to Dispatch.
// The store invokes the root reducer with the current state and the action,
// assigns the returned value as the new current state, then invokes every
// currently registered subscriber callback with no arguments, in unspecified
// order. The full reduce-then-notify sequence completes before Dispatch
// returns; the store itself has no internal goroutines or suspension points.
//
//	root := reducer.Combine(nil, map[string]reducer.Reducer{
//	    "counter": counterModule.Reducer(),
//	})
//	st, err := store.New(config.DefaultStoreConfig("app"), root)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	unsubscribe := st.Subscribe(func() {
//	    fmt.Println("state:", st.GetState())
//	})
//	defer unsubscribe()
//
//	st.Dispatch(Increment())
//
// You will only have a single store in an application. To split data
// handling logic, use reducer composition instead of multiple stores.
//
// # Initialization
//
// Construction performs one internal dispatch of the reserved Init action
// (type TypeInit) so reducers can establish the initial state for the
// subtree they own. There is no preloaded-state parameter; seed values
// belong in the reducers' Init handling.
//
// # Reentrancy
//
// Dispatch during an in-progress dispatch's reducer run is a contract
// violation detected at runtime: the inner call fails with
// DispatchInReducerError and mutates nothing. Dispatching from a subscriber
// callback is allowed and produces a full nested reduce+notify cycle, since
// the guard is clear by the time notification runs.
package store
