package store

import "github.com/RookieGameDevs/revived/observability"

const (
	// Lifecycle
	EventStoreCreate observability.EventType = "store.create"

	// Dispatch cycle
	EventDispatchStart  observability.EventType = "dispatch.start"
	EventDispatchReject observability.EventType = "dispatch.reject"
	EventStateChange    observability.EventType = "state.change"
	EventNotifyComplete observability.EventType = "notify.complete"

	// Subscriptions
	EventSubscribe   observability.EventType = "subscribe"
	EventUnsubscribe observability.EventType = "unsubscribe"
)
