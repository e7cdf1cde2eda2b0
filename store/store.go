package store

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/RookieGameDevs/revived/action"
	"github.com/RookieGameDevs/revived/config"
	"github.com/RookieGameDevs/revived/observability"
	"github.com/RookieGameDevs/revived/reducer"
)

// TypeInit is the reserved action type dispatched once at store construction.
//
// Reducers should match on it to establish the initial state for the state
// subtree they are responsible for; reducers that ignore it simply start
// from a nil subtree.
const TypeInit action.Type = "@@revived/init"

// Init is the action creator for the reserved initialization action.
var Init = action.FixedCreator(TypeInit)

// Store is the container object for the global state.
//
// The store holds the current state, a root reducer fixed at construction,
// and the set of subscribed callbacks. All dispatches are serialized: at
// most one reduce pass runs at a time, and an overlapping Dispatch call is
// rejected with DispatchInReducerError rather than queued. The internal
// mutex protects the state value, the reentrancy guard, and the subscriber
// map; the reducer and subscriber callbacks always run outside the lock.
type Store struct {
	name    string
	id      string
	reducer reducer.Reducer

	mu          sync.RWMutex
	state       any
	subscribers map[uuid.UUID]func()
	dispatching bool

	observer observability.Observer
	metrics  *Metrics
}

// New creates a store with the given configuration and root reducer.
//
// The observer named in cfg.Observer is resolved through the observability
// registry. Construction dispatches the reserved Init action once, so
// reducers run before New returns and the first GetState already reflects
// their initial state.
//
// Example:
//
//	cfg := config.DefaultStoreConfig("app")
//	st, err := store.New(cfg, rootReducer)
//	if err != nil {
//	    // unknown observer name or nil reducer
//	}
func New(cfg config.StoreConfig, root reducer.Reducer) (*Store, error) {
	observer, err := observability.GetObserver(cfg.Observer)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve observer: %w", err)
	}

	return newStore(cfg, root, observer)
}

// NewWithObserver creates a store with an explicit observer, bypassing the
// registry. A nil observer falls back to NoOpObserver.
func NewWithObserver(cfg config.StoreConfig, root reducer.Reducer, observer observability.Observer) (*Store, error) {
	if observer == nil {
		observer = observability.NoOpObserver{}
	}

	return newStore(cfg, root, observer)
}

func newStore(cfg config.StoreConfig, root reducer.Reducer, observer observability.Observer) (*Store, error) {
	if root == nil {
		return nil, fmt.Errorf("root reducer cannot be nil")
	}

	s := &Store{
		name:        cfg.Name,
		id:          uuid.New().String(),
		reducer:     root,
		subscribers: make(map[uuid.UUID]func()),
		observer:    observer,
		metrics:     NewMetrics(),
	}

	observer.OnEvent(context.Background(), observability.Event{
		Type:      EventStoreCreate,
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Source:    s.name,
		Data:      map[string]any{"store_id": s.id},
	})

	if err := s.Dispatch(Init()); err != nil {
		return nil, fmt.Errorf("initial dispatch failed: %w", err)
	}

	return s, nil
}

// Dispatch sends an action through the root reducer and notifies subscribers.
//
// On success the state returned by the root reducer becomes the current
// state and every subscriber registered at the moment notification begins is
// invoked exactly once, with no arguments, in unspecified order. The
// subscriber set is snapshotted before the pass starts: subscribe and
// unsubscribe calls made by a callback take effect for future dispatches,
// not the one in flight, so a subscriber that unsubscribes itself still
// receives the current notification.
//
// Dispatch returns DispatchInReducerError, with no state mutation, when a
// dispatch is already in progress on this store. That covers direct reentry
// from a running reducer as well as an overlapping call from another
// goroutine during the reduce pass. Dispatching from a subscriber callback
// is legal: the guard is already clear during notification and the nested
// call runs a full reduce+notify cycle of its own.
//
// A panic in the root reducer propagates to the caller. The guard is cleared
// on all exit paths, so the store remains usable, and the state keeps the
// value it had before the failed dispatch.
func (s *Store) Dispatch(act action.Action) error {
	s.mu.Lock()
	if s.dispatching {
		s.mu.Unlock()
		s.metrics.RecordRejected(1)

		s.observer.OnEvent(context.Background(), observability.Event{
			Type:      EventDispatchReject,
			Level:     observability.LevelWarning,
			Timestamp: time.Now(),
			Source:    s.name,
			Data:      map[string]any{"action_type": string(act.Type)},
		})

		return &DispatchInReducerError{Store: s.name, Type: act.Type}
	}
	s.dispatching = true
	prev := s.state
	s.mu.Unlock()

	s.observer.OnEvent(context.Background(), observability.Event{
		Type:      EventDispatchStart,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    s.name,
		Data:      map[string]any{"action_type": string(act.Type)},
	})

	s.reduce(prev, act)

	s.mu.Lock()
	snapshot := maps.Clone(s.subscribers)
	s.mu.Unlock()

	s.metrics.RecordDispatch(1)

	s.observer.OnEvent(context.Background(), observability.Event{
		Type:      EventStateChange,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    s.name,
		Data:      map[string]any{"action_type": string(act.Type)},
	})

	for _, callback := range snapshot {
		callback()
	}

	s.metrics.RecordNotifications(len(snapshot))

	s.observer.OnEvent(context.Background(), observability.Event{
		Type:      EventNotifyComplete,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    s.name,
		Data: map[string]any{
			"action_type": string(act.Type),
			"subscribers": len(snapshot),
		},
	})

	return nil
}

// reduce runs the root reducer and assigns its result while the guard is
// held. The guard is released on all exit paths so a panicking reducer
// cannot wedge the store; in that case no assignment happens and the state
// keeps its previous value.
func (s *Store) reduce(prev any, act action.Action) {
	defer func() {
		s.mu.Lock()
		s.dispatching = false
		s.mu.Unlock()
	}()

	next := s.reducer(prev, act)

	s.mu.Lock()
	s.state = next
	s.mu.Unlock()
}

// GetState returns the current state.
//
// Subscribers read state lazily through this method at call time; dispatches
// performed earlier in the same notification pass are visible to
// later-running callbacks.
func (s *Store) GetState() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// Subscribe registers a callback invoked after every successful dispatch.
//
// No parameters are passed to the callback; it reads whatever it needs via
// GetState. The returned function removes the registration and is
// idempotent: calling it more than once, or after the registration is
// already gone, is a no-op.
func (s *Store) Subscribe(callback func()) func() {
	key := uuid.New()

	s.mu.Lock()
	s.subscribers[key] = callback
	s.mu.Unlock()

	s.metrics.RecordSubscriber(1)

	s.observer.OnEvent(context.Background(), observability.Event{
		Type:      EventSubscribe,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    s.name,
		Data:      map[string]any{"subscription_id": key.String()},
	})

	return func() {
		s.mu.Lock()
		_, exists := s.subscribers[key]
		delete(s.subscribers, key)
		s.mu.Unlock()

		if !exists {
			return
		}

		s.metrics.RecordSubscriber(-1)

		s.observer.OnEvent(context.Background(), observability.Event{
			Type:      EventUnsubscribe,
			Level:     observability.LevelVerbose,
			Timestamp: time.Now(),
			Source:    s.name,
			Data:      map[string]any{"subscription_id": key.String()},
		})
	}
}

// Subscriber registers a callback like Subscribe but returns a Subscription
// that carries the unsubscribe handle alongside the callback, for callers
// that want to pass both around as one value.
func (s *Store) Subscriber(callback func()) *Subscription {
	return &Subscription{
		callback:    callback,
		unsubscribe: s.Subscribe(callback),
	}
}

// Name returns the store identifier used in emitted events.
func (s *Store) Name() string {
	return s.name
}

// Metrics returns a snapshot of the store's counters.
func (s *Store) Metrics() MetricsSnapshot {
	return s.metrics.Snapshot()
}
