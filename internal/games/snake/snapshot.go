package snake

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	State     LifecycleState
	Score     int
	Speed     int
	Interval  time.Duration
	Head      core.Position
	Apple     core.Position
	TrailLen  int
	MaxLength int
	Dir       core.Direction
	Started   bool
	Reason    LossReason
}

// Snapshot returns the current game snapshot for determinism verification.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:      s.ticks,
		State:     s.state,
		Score:     s.score,
		Speed:     s.speed,
		Interval:  s.TickInterval(),
		Head:      s.head,
		Apple:     s.apple.Position(),
		TrailLen:  s.body.Len(),
		MaxLength: s.body.MaxLength(),
		Dir:       s.direction.Current(),
		Started:   s.body.Started(),
		Reason:    s.reason,
	}
}

// String returns a multi-line dump of the snapshot.
func (sn Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "State: %s, Tick: %d, Score: %d\n", sn.State, sn.Tick, sn.Score)
	fmt.Fprintf(&b, "Speed: %d, Interval: %v\n", sn.Speed, sn.Interval)
	fmt.Fprintf(&b, "Head: %v, Apple: %v, Direction: %v\n", sn.Head, sn.Apple, sn.Dir)
	fmt.Fprintf(&b, "Body: %d/%d, Started: %v, Loss: %s\n", sn.TrailLen, sn.MaxLength, sn.Started, sn.Reason)
	return b.String()
}
