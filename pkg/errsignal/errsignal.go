// Package errsignal holds the process-wide error signal written by the
// flag-returning container APIs.
//
// The slot is shared by every caller in the process. Read it right after a
// call reports failure; any later failing call overwrites it.
package errsignal

import "sync/atomic"

type slot struct {
	err error
}

var last atomic.Pointer[slot]

// Set records err as the most recent failure cause. A nil err clears the slot.
func Set(err error) {
	if err == nil {
		last.Store(nil)
		return
	}
	last.Store(&slot{err: err})
}

// Last returns the most recent failure cause, or nil when no failure has been
// recorded since the last Clear.
func Last() error {
	s := last.Load()
	if s == nil {
		return nil
	}
	return s.err
}

// Clear resets the slot to the no-error state.
func Clear() {
	last.Store(nil)
}
