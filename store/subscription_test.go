package store_test

import (
	"testing"

	"github.com/RookieGameDevs/revived/action"
)

func TestSubscriber_WrapsCallbackAndUnsubscribe(t *testing.T) {
	st := newCounterStore(t)

	calls := 0
	sub := st.Subscriber(func() { calls++ })

	st.Dispatch(action.New("inc", nil))
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}

	sub.Call()
	if calls != 2 {
		t.Errorf("calls after Call() = %d, want 2", calls)
	}

	sub.Unsubscribe()
	st.Dispatch(action.New("inc", nil))
	if calls != 2 {
		t.Errorf("calls after Unsubscribe = %d, want 2", calls)
	}
}

func TestSubscription_UnsubscribeIsIdempotent(t *testing.T) {
	st := newCounterStore(t)

	sub := st.Subscriber(func() {})
	sub.Unsubscribe()
	sub.Unsubscribe()

	if got := st.Metrics().ActiveSubscribers; got != 0 {
		t.Errorf("ActiveSubscribers = %d, want 0 (double unsubscribe must not underflow)", got)
	}
}
