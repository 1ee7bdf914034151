package snake

import (
	"time"

	"github.com/vovakirdan/gridsnake/internal/sched"
)

// GameClock drives the recurring tick. At most one tick timer is armed at a
// time.
type GameClock struct {
	sched       sched.Scheduler
	timer       sched.Timer
	interval    time.Duration
	minInterval time.Duration
}

// NewGameClock creates a stopped clock. Intervals below minInterval are
// raised to it when armed.
func NewGameClock(s sched.Scheduler, minInterval time.Duration) *GameClock {
	return &GameClock{
		sched:       s,
		minInterval: max(minInterval, time.Nanosecond),
	}
}

// Start arms onTick every interval, replacing any armed timer.
func (c *GameClock) Start(interval time.Duration, onTick func()) {
	c.Stop()
	c.interval = max(interval, c.minInterval)
	c.timer = c.sched.Every(c.interval, onTick)
}

// Stop cancels the armed timer, if any.
func (c *GameClock) Stop() {
	if c.timer == nil {
		return
	}
	c.timer.Stop()
	c.timer = nil
}

// Reschedule restarts the clock so a new interval applies immediately
// instead of after the current period.
func (c *GameClock) Reschedule(interval time.Duration, onTick func()) {
	c.Stop()
	c.Start(interval, onTick)
}

// Running reports whether a tick timer is armed.
func (c *GameClock) Running() bool {
	return c.timer != nil
}

// Interval returns the interval last armed.
func (c *GameClock) Interval() time.Duration {
	return c.interval
}
