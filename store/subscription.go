package store

// Subscription pairs a subscribed callback with its unsubscribe handle.
//
// Returned by Store.Subscriber for callers that want to hold the callback
// and its removal function as a single value instead of tracking the
// closure returned by Subscribe separately.
type Subscription struct {
	callback    func()
	unsubscribe func()
}

// Call invokes the wrapped callback.
func (s *Subscription) Call() {
	s.callback()
}

// Unsubscribe removes the registration from the store.
//
// Safe to call multiple times; removal is idempotent.
func (s *Subscription) Unsubscribe() {
	s.unsubscribe()
}
