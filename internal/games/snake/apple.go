package snake

import (
	"math/rand"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// AppleSpawner owns the apple position.
type AppleSpawner struct {
	pos      core.Position
	rng      *rand.Rand
	renderer Renderer
}

// NewAppleSpawner creates a spawner drawing from rng.
func NewAppleSpawner(rng *rand.Rand, r Renderer) *AppleSpawner {
	return &AppleSpawner{
		pos:      SpawnApple,
		rng:      rng,
		renderer: r,
	}
}

// Initialize puts the apple back on its spawn point.
func (a *AppleSpawner) Initialize() {
	a.pos = SpawnApple
}

// Position returns the current apple position.
func (a *AppleSpawner) Position() core.Position {
	return a.pos
}

// Step draws the apple and checks whether head is on it. An eaten apple moves
// to a random cell with x in [0, TileCount-2] and y in [1, TileCount-1]. The
// new cell is not checked against the body.
func (a *AppleSpawner) Step(head core.Position) (core.Position, bool) {
	a.renderer.DrawApple(a.pos)

	if head != a.pos {
		return a.pos, false
	}

	a.pos = core.Position{
		X: a.rng.Intn(TileCount - 1),
		Y: a.rng.Intn(TileCount-1) + 1,
	}
	return a.pos, true
}
