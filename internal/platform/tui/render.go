package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// Board layout. Every tile is two columns wide so the board looks square in
// a terminal. Row 0 holds the status line; the box starts on row 1 and tile
// row y is drawn on screen row y+1, so the off-board row y=0 falls on the
// box's top border.
const (
	ScreenW = snake.TileCount*2 + 2
	ScreenH = snake.TileCount + 3
	boxTop  = 1
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
}

// ScreenRenderer implements snake.Renderer on a core.Screen.
type ScreenRenderer struct {
	screen  *core.Screen
	variant string
	best    int
}

var _ snake.Renderer = (*ScreenRenderer)(nil)

// NewScreenRenderer creates a renderer with a blank board.
func NewScreenRenderer(variant string) *ScreenRenderer {
	r := &ScreenRenderer{
		screen:  core.NewScreen(ScreenW, ScreenH),
		variant: variant,
	}
	r.ClearBoard()
	return r
}

// Screen returns the buffer drawn into.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

// SetBest sets the high score shown on the status line.
func (r *ScreenRenderer) SetBest(best int) {
	r.best = best
}

// Best returns the high score shown on the status line.
func (r *ScreenRenderer) Best() int {
	return r.best
}

// ClearBoard blanks the screen and redraws the frame.
func (r *ScreenRenderer) ClearBoard() {
	r.screen.Clear()
	r.screen.DrawBox(0, boxTop, ScreenW, ScreenH-boxTop, core.ColorGray)
	r.drawStatus(0)
}

// ShowStartView draws the title screen.
func (r *ScreenRenderer) ShowStartView() {
	r.ClearBoard()
	mid := boxTop + ScreenH/2
	r.screen.DrawTextCentered(mid-2, "S N A K E", core.ColorBrightGreen)
	r.screen.DrawTextCentered(mid, "press an arrow key", core.ColorBrightWhite)
	r.screen.DrawTextCentered(mid+1, "to start", core.ColorBrightWhite)
}

// ShowGameOverView draws the game-over banner over the last frame.
func (r *ScreenRenderer) ShowGameOverView() {
	mid := boxTop + ScreenH/2
	lines := []string{
		"                ",
		"   GAME  OVER   ",
		"                ",
		" press any key  ",
		"                ",
	}
	for i, line := range lines {
		color := core.ColorBrightWhite
		if i == 1 {
			color = core.ColorRed
		}
		r.screen.DrawTextCentered(mid-2+i, line, color)
	}
}

// DrawScore writes the status line.
func (r *ScreenRenderer) DrawScore(score int) {
	r.drawStatus(score)
}

func (r *ScreenRenderer) drawStatus(score int) {
	for x := range ScreenW {
		r.screen.Set(x, 0, ' ')
	}
	r.screen.DrawText(1, 0, fmt.Sprintf("Score: %d", score), core.ColorYellow)

	right := fmt.Sprintf("%s  Best: %d", r.variant, r.best)
	r.screen.DrawText(ScreenW-1-len(right), 0, right, core.ColorCyan)
}

// DrawApple draws the apple tile.
func (r *ScreenRenderer) DrawApple(p core.Position) {
	r.drawTile(p, core.ColorRed)
}

// DrawBody draws the trail, head last.
func (r *ScreenRenderer) DrawBody(trail []core.Position) {
	for i, p := range trail {
		color := core.ColorGreen
		if i == len(trail)-1 {
			color = core.ColorBrightGreen
		}
		r.drawTile(p, color)
	}
}

func (r *ScreenRenderer) drawTile(p core.Position, c core.Color) {
	if !snake.InBounds(p) {
		return
	}
	x, y := TileOrigin(p)
	r.screen.SetCell(x, y, core.Cell{Rune: '█', Color: c})
	r.screen.SetCell(x+1, y, core.Cell{Rune: '█', Color: c})
}

// TileOrigin returns the screen cell of the left half of tile p.
func TileOrigin(p core.Position) (x, y int) {
	return 1 + p.X*2, boxTop + p.Y
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
