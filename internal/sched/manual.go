package sched

import "time"

// Manual is a virtual-time Scheduler. Time only moves when Advance or
// FireNext is called, and callbacks run on the calling goroutine, so a test
// can step a game tick by tick without sleeping.
type Manual struct {
	now    time.Duration
	seq    uint64
	timers []*manualTimer
}

type manualTimer struct {
	m       *Manual
	when    time.Duration
	period  time.Duration // 0 for one-shot timers
	seq     uint64
	fn      func()
	stopped bool
}

// NewManual creates a virtual clock at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of armed timers.
func (m *Manual) Pending() int {
	return len(m.timers)
}

// After implements Scheduler.
func (m *Manual) After(d time.Duration, fn func()) Timer {
	return m.arm(d, 0, fn)
}

// Every implements Scheduler.
func (m *Manual) Every(d time.Duration, fn func()) Timer {
	checkPeriod(d)
	return m.arm(d, d, fn)
}

func (m *Manual) arm(d, period time.Duration, fn func()) *manualTimer {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{
		m:      m,
		when:   m.now + d,
		period: period,
		seq:    m.seq,
		fn:     fn,
	}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves virtual time forward by d, firing every timer that comes due
// in due-time order. Timers due at the same instant fire in the order they
// were armed. Callbacks may arm or stop timers, including themselves.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.next()
		if next == nil || next.when > target {
			break
		}
		m.fire(next)
	}
	m.now = target
}

// FireNext jumps to the earliest armed timer and fires only that one.
// Returns false if nothing is armed.
func (m *Manual) FireNext() bool {
	next := m.next()
	if next == nil {
		return false
	}
	m.fire(next)
	return true
}

func (m *Manual) fire(t *manualTimer) {
	m.now = t.when
	if t.period > 0 {
		m.seq++
		t.when += t.period
		t.seq = m.seq
	} else {
		m.remove(t)
	}
	t.fn()
}

// next returns the earliest armed timer, or nil.
func (m *Manual) next() *manualTimer {
	var best *manualTimer
	for _, t := range m.timers {
		if best == nil || t.when < best.when || (t.when == best.when && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (m *Manual) remove(t *manualTimer) {
	t.stopped = true
	for i, other := range m.timers {
		if other == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
}

// Stop implements Timer.
func (t *manualTimer) Stop() {
	if t.stopped {
		return
	}
	t.m.remove(t)
}
