// Package sched provides the timer abstraction the game runs on.
//
// The simulation is single-threaded: every callback must run on the owner's
// event loop, never concurrently with another one. Manual satisfies this by
// running callbacks inside Advance on the caller's goroutine; Queue does it by
// delivering fired timers over a channel for the owner to run.
package sched

import "time"

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the timer. Calling Stop more than once is a no-op.
	// A stopped timer never runs its callback again.
	Stop()
}

// Scheduler arms one-shot and recurring callbacks.
type Scheduler interface {
	// After runs fn once, d from now.
	After(d time.Duration, fn func()) Timer

	// Every runs fn every d until the returned timer is stopped.
	// It panics if d is not positive, like time.NewTicker.
	Every(d time.Duration, fn func()) Timer
}

func checkPeriod(d time.Duration) {
	if d <= 0 {
		panic("sched: non-positive interval for Every")
	}
}
