package store

import (
	"errors"
	"fmt"

	"github.com/RookieGameDevs/revived/action"
)

// ErrDispatchInReducer is the sentinel matched by errors.Is for dispatches
// rejected because a dispatch was already in progress.
var ErrDispatchInReducer = errors.New("dispatch called while a dispatch is in progress")

// DispatchInReducerError reports a Dispatch call made while the store was
// already running a reduce pass, typically direct reentry from a reducer.
//
// The rejected call performs no state mutation; the outer dispatch completes
// normally.
type DispatchInReducerError struct {
	// Store is the name of the store that rejected the dispatch.
	Store string

	// Type is the action type of the rejected dispatch.
	Type action.Type
}

// Error implements the error interface.
func (e *DispatchInReducerError) Error() string {
	return fmt.Sprintf("store %s: cannot dispatch %s: %v", e.Store, e.Type, ErrDispatchInReducer)
}

// Unwrap enables matching against ErrDispatchInReducer with errors.Is.
func (e *DispatchInReducerError) Unwrap() error {
	return ErrDispatchInReducer
}
