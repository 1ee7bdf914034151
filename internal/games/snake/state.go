package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// Fixed board geometry. The board is not configurable.
const (
	TileCount         = 20 // Tiles per side
	GridSize          = 20 // Pixels per tile on a canvas renderer
	InitialBodyLength = 5
)

// Spawn points used on every reset.
var (
	SpawnHead  = core.Pos(10, 10)
	SpawnApple = core.Pos(5, 5)
)

// LifecycleState represents the current game state.
type LifecycleState string

const (
	StateMenu     LifecycleState = "menu"
	StatePlaying  LifecycleState = "playing"
	StateGameOver LifecycleState = "game_over"
)

// LossReason tells why a game ended.
type LossReason string

const (
	LossNone          LossReason = ""
	LossOutOfBounds   LossReason = "out_of_bounds"
	LossNoMovement    LossReason = "no_movement"
	LossSelfCollision LossReason = "self_collision"
)

// String returns the reason code, or "none".
func (r LossReason) String() string {
	if r == LossNone {
		return "none"
	}
	return string(r)
}

// InBounds reports whether p is on the playable board. The vertical range is
// 1..TileCount inclusive: row 0 holds the score bar, and the row just below
// the last tile still counts as on the board.
func InBounds(p core.Position) bool {
	return p.X >= 0 && p.X < TileCount && p.Y >= 1 && p.Y <= TileCount
}
