package snake

import (
	"slices"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// BodyTracker owns the trail of cells the head has occupied, oldest first,
// and the cap on its length.
//
// The loss check compares the new head with the previous head only: it
// detects a tick without movement, not the head running into its own body.
// Full-body collision is a separate opt-in rule.
type BodyTracker struct {
	trail     []core.Position
	maxLength int
	started   bool
	fullBody  bool
	renderer  Renderer
}

// NewBodyTracker creates an empty tracker. With fullBody set, entering any
// trail cell after the start gate is also a loss.
func NewBodyTracker(r Renderer, fullBody bool) *BodyTracker {
	return &BodyTracker{
		maxLength: InitialBodyLength,
		fullBody:  fullBody,
		renderer:  r,
	}
}

// Initialize clears the trail and the start flag.
func (b *BodyTracker) Initialize() {
	b.trail = b.trail[:0]
	b.maxLength = InitialBodyLength
	b.started = false
}

// Step draws the current trail, then records head.
// Returns the loss reason and true if the move lost the game.
func (b *BodyTracker) Step(head core.Position) (LossReason, bool) {
	b.renderer.DrawBody(b.trail)

	if n := len(b.trail); n > 0 && b.trail[n-1] == head {
		if b.started {
			return LossNoMovement, true
		}
		// Still on the spawn cell before the gate opened
		b.maxLength = InitialBodyLength
	} else if b.started && b.fullBody && b.occupied(head) {
		return LossSelfCollision, true
	}

	b.trail = append(b.trail, head)
	if excess := len(b.trail) - b.maxLength; excess > 0 {
		b.trail = append(b.trail[:0], b.trail[excess:]...)
	}
	return LossNone, false
}

// occupied checks head against the cells that will still be part of the
// body after this step (the tail cell about to be trimmed is free).
func (b *BodyTracker) occupied(head core.Position) bool {
	keep := b.trail
	if excess := len(b.trail) + 1 - b.maxLength; excess > 0 {
		keep = b.trail[excess:]
	}
	return slices.Contains(keep, head)
}

// GrowBy raises the length cap by n.
func (b *BodyTracker) GrowBy(n int) {
	b.maxLength += n
}

// MarkStarted enables the stationary loss check.
func (b *BodyTracker) MarkStarted() {
	b.started = true
}

// Started reports whether the start gate has opened.
func (b *BodyTracker) Started() bool {
	return b.started
}

// MaxLength returns the length cap.
func (b *BodyTracker) MaxLength() int {
	return b.maxLength
}

// Len returns the number of trail cells.
func (b *BodyTracker) Len() int {
	return len(b.trail)
}

// Trail returns a copy of the trail, head last.
func (b *BodyTracker) Trail() []core.Position {
	return slices.Clone(b.trail)
}
