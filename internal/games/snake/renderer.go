package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// Renderer draws the game. Calls are synchronous and can't fail; the game
// never reads anything back from the renderer. Slices passed to DrawBody are
// only valid for the duration of the call.
type Renderer interface {
	ClearBoard()
	ShowStartView()
	ShowGameOverView()
	DrawScore(score int)
	DrawApple(p core.Position)
	DrawBody(trail []core.Position)
}

// NopRenderer discards every draw call.
type NopRenderer struct{}

func (NopRenderer) ClearBoard()              {}
func (NopRenderer) ShowStartView()           {}
func (NopRenderer) ShowGameOverView()        {}
func (NopRenderer) DrawScore(int)            {}
func (NopRenderer) DrawApple(core.Position)  {}
func (NopRenderer) DrawBody([]core.Position) {}
