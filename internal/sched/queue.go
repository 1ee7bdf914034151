package sched

import (
	"sync"
	"sync/atomic"
	"time"
)

// Queue is a real-time Scheduler that never runs callbacks itself. Fired
// timers are delivered on C and the owner runs them from its own event loop,
// which keeps every callback on a single goroutine.
type Queue struct {
	c    chan Fired
	done chan struct{}
	once sync.Once
}

// Fired is a timer that came due. Run executes its callback unless the timer
// was stopped after it was queued.
type Fired struct {
	t *queueTimer
}

// Run executes the callback on the calling goroutine.
func (f Fired) Run() {
	if f.t == nil || f.t.stopped.Load() {
		return
	}
	if f.t.oneShot {
		f.t.Stop()
	}
	f.t.fn()
}

type queueTimer struct {
	fn      func()
	oneShot bool
	stopped atomic.Bool
	stop    chan struct{}
	once    sync.Once
	timer   *time.Timer
}

// NewQueue creates a Queue with a small delivery buffer.
func NewQueue() *Queue {
	return &Queue{
		c:    make(chan Fired, 16),
		done: make(chan struct{}),
	}
}

// C returns the channel fired timers are delivered on.
func (q *Queue) C() <-chan Fired {
	return q.c
}

// Done is closed once the queue is closed.
func (q *Queue) Done() <-chan struct{} {
	return q.done
}

// Close stops delivery for every timer armed on this queue.
func (q *Queue) Close() {
	q.once.Do(func() {
		close(q.done)
	})
}

// After implements Scheduler.
func (q *Queue) After(d time.Duration, fn func()) Timer {
	t := newQueueTimer(fn, true)
	t.timer = time.AfterFunc(d, func() {
		q.deliver(t)
	})
	return t
}

// Every implements Scheduler.
func (q *Queue) Every(d time.Duration, fn func()) Timer {
	checkPeriod(d)
	t := newQueueTimer(fn, false)
	ticker := time.NewTicker(d)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				q.deliver(t)
			case <-t.stop:
				return
			case <-q.done:
				return
			}
		}
	}()

	return t
}

func (q *Queue) deliver(t *queueTimer) {
	if t.stopped.Load() {
		return
	}
	select {
	case q.c <- Fired{t: t}:
	case <-t.stop:
	case <-q.done:
	}
}

func newQueueTimer(fn func(), oneShot bool) *queueTimer {
	return &queueTimer{
		fn:      fn,
		oneShot: oneShot,
		stop:    make(chan struct{}),
	}
}

// Stop implements Timer.
func (t *queueTimer) Stop() {
	t.stopped.Store(true)
	t.once.Do(func() {
		close(t.stop)
	})
	if t.timer != nil {
		t.timer.Stop()
	}
}
