package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// DirectionController turns directional signals into the active movement
// vector. A signal opposite to the last accepted one is ignored, so the snake
// can't reverse into itself with a single key press.
type DirectionController struct {
	current core.Direction
	last    core.Signal
}

// NewDirectionController creates a controller that is not moving yet.
func NewDirectionController() *DirectionController {
	return &DirectionController{}
}

// Submit applies a signal. Returns false if it was rejected.
func (c *DirectionController) Submit(sig core.Signal) bool {
	if !sig.Valid() {
		return false
	}
	// Prevent instant reversal
	if c.last != core.SignalNone && sig == c.last.Opposite() {
		return false
	}
	c.current = sig.Vector()
	c.last = sig
	return true
}

// Current returns the active movement vector.
func (c *DirectionController) Current() core.Direction {
	return c.current
}

// Last returns the last accepted signal.
func (c *DirectionController) Last() core.Signal {
	return c.last
}
