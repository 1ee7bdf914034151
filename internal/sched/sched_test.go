package sched

import (
	"testing"
	"time"
)

func TestManualAfter(t *testing.T) {
	m := NewManual()
	fired := 0
	m.After(1500*time.Millisecond, func() { fired++ })

	m.Advance(1499 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("After fired early at %v", m.Now())
	}

	m.Advance(time.Millisecond)
	if fired != 1 {
		t.Fatalf("After should fire exactly at its deadline, fired %d times", fired)
	}
	if m.Pending() != 0 {
		t.Errorf("One-shot timer should be removed after firing, %d pending", m.Pending())
	}

	m.Advance(time.Hour)
	if fired != 1 {
		t.Errorf("One-shot timer fired again: %d", fired)
	}
}

func TestManualEvery(t *testing.T) {
	m := NewManual()
	var at []time.Duration
	timer := m.Every(100*time.Millisecond, func() { at = append(at, m.Now()) })

	m.Advance(350 * time.Millisecond)
	expected := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 300 * time.Millisecond}
	if len(at) != len(expected) {
		t.Fatalf("Every fired %d times, expected %d", len(at), len(expected))
	}
	for i := range expected {
		if at[i] != expected[i] {
			t.Errorf("Firing %d at %v, expected %v", i, at[i], expected[i])
		}
	}
	if m.Now() != 350*time.Millisecond {
		t.Errorf("Now() = %v, expected 350ms", m.Now())
	}

	timer.Stop()
	timer.Stop() // idempotent
	m.Advance(time.Second)
	if len(at) != 3 {
		t.Errorf("Stopped timer kept firing: %d firings", len(at))
	}
}

func TestManualOrdering(t *testing.T) {
	m := NewManual()
	var order []string
	m.After(10*time.Millisecond, func() { order = append(order, "b") })
	m.After(5*time.Millisecond, func() { order = append(order, "a") })
	m.After(10*time.Millisecond, func() { order = append(order, "c") })

	m.Advance(10 * time.Millisecond)

	got := ""
	for _, s := range order {
		got += s
	}
	if got != "abc" {
		t.Errorf("Firing order = %q, expected %q", got, "abc")
	}
}

func TestManualCallbackRearms(t *testing.T) {
	m := NewManual()
	ticks := 0
	var timer Timer
	var start func(time.Duration)
	start = func(d time.Duration) {
		if timer != nil {
			timer.Stop()
		}
		timer = m.Every(d, func() {
			ticks++
			if ticks == 2 {
				// Switch to a faster period from inside the callback
				start(10 * time.Millisecond)
			}
		})
	}
	start(100 * time.Millisecond)

	m.Advance(200 * time.Millisecond) // ticks at 100, 200 -> rearmed at 200 with 10ms
	if ticks != 2 {
		t.Fatalf("ticks = %d, expected 2", ticks)
	}
	m.Advance(30 * time.Millisecond)
	if ticks != 5 {
		t.Errorf("ticks = %d after faster period, expected 5", ticks)
	}
	if m.Pending() != 1 {
		t.Errorf("Pending() = %d, expected exactly one recurring timer", m.Pending())
	}
}

func TestManualFireNext(t *testing.T) {
	m := NewManual()
	if m.FireNext() {
		t.Fatal("FireNext on an empty scheduler should return false")
	}

	fired := false
	m.After(time.Second, func() { fired = true })
	if !m.FireNext() || !fired {
		t.Fatal("FireNext should fire the pending timer")
	}
	if m.Now() != time.Second {
		t.Errorf("Now() = %v, expected 1s", m.Now())
	}
}

func TestEveryRejectsNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Every(0) should panic")
		}
	}()
	NewManual().Every(0, func() {})
}

func TestQueueAfter(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	fired := 0
	q.After(time.Millisecond, func() { fired++ })

	select {
	case f := <-q.C():
		f.Run()
		f.Run() // a one-shot runs once
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for After to fire")
	}
	if fired != 1 {
		t.Errorf("fired = %d, expected 1", fired)
	}
}

func TestQueueStoppedTimerIsNoop(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	fired := 0
	timer := q.Every(time.Millisecond, func() { fired++ })

	var f Fired
	select {
	case f = <-q.C():
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for Every to fire")
	}

	// Stopped after delivery but before the owner ran it
	timer.Stop()
	f.Run()
	if fired != 0 {
		t.Errorf("Stopped timer ran its callback %d times", fired)
	}
}

func TestQueueEveryRepeats(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	fired := 0
	timer := q.Every(time.Millisecond, func() { fired++ })
	defer timer.Stop()

	deadline := time.After(2 * time.Second)
	for fired < 3 {
		select {
		case f := <-q.C():
			f.Run()
		case <-deadline:
			t.Fatalf("only %d firings before timeout", fired)
		}
	}
}

func TestQueueClose(t *testing.T) {
	q := NewQueue()
	q.Close()
	q.Close() // idempotent

	select {
	case <-q.Done():
	default:
		t.Error("Done should be closed after Close")
	}
}
