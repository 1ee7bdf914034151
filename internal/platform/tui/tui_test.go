package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/sched"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func TestKeyMapSignals(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		keys     []string
		expected core.Signal
	}{
		{[]string{"left", "h", "a"}, core.SignalLeft},
		{[]string{"up", "k", "w"}, core.SignalUp},
		{[]string{"right", "l", "d"}, core.SignalRight},
		{[]string{"down", "j", "s"}, core.SignalDown},
		{[]string{"x", "enter", " ", "q"}, core.SignalNone},
	}

	for _, tt := range tests {
		for _, k := range tt.keys {
			if got := km.Signal(keyMsg(k)); got != tt.expected {
				t.Errorf("Signal(%q) = %v, expected %v", k, got, tt.expected)
			}
		}
	}
}

func TestTileOrigin(t *testing.T) {
	tests := []struct {
		p    core.Position
		x, y int
	}{
		{core.Pos(0, 1), 1, 2},
		{core.Pos(19, 20), 39, 21},
		{core.Pos(10, 10), 21, 11},
	}
	for _, tt := range tests {
		x, y := TileOrigin(tt.p)
		if x != tt.x || y != tt.y {
			t.Errorf("TileOrigin(%v) = (%d, %d), expected (%d, %d)", tt.p, x, y, tt.x, tt.y)
		}
	}
}

func TestScreenRendererDraws(t *testing.T) {
	r := NewScreenRenderer("classic")
	s := r.Screen()

	if s.Width() != ScreenW || s.Height() != ScreenH {
		t.Fatalf("Screen is %dx%d, expected %dx%d", s.Width(), s.Height(), ScreenW, ScreenH)
	}

	r.ClearBoard()
	r.DrawScore(7)
	r.DrawBody([]core.Position{{X: 3, Y: 4}, {X: 4, Y: 4}})
	r.DrawApple(core.Pos(5, 5))

	x, y := TileOrigin(core.Pos(3, 4))
	if c := s.GetCell(x, y); c.Rune != '█' || c.Color != core.ColorGreen {
		t.Errorf("Body cell = %+v, expected green block", c)
	}
	x, y = TileOrigin(core.Pos(4, 4))
	if c := s.GetCell(x+1, y); c.Color != core.ColorBrightGreen {
		t.Errorf("Head cell color = %v, expected bright green", c.Color)
	}
	x, y = TileOrigin(core.Pos(5, 5))
	if c := s.GetCell(x, y); c.Color != core.ColorRed {
		t.Errorf("Apple cell color = %v, expected red", c.Color)
	}

	out := s.String()
	if !strings.Contains(out, "Score: 7") {
		t.Errorf("Status line missing score:\n%s", out)
	}
	if !strings.Contains(out, "classic  Best: 0") {
		t.Errorf("Status line missing variant and best:\n%s", out)
	}

	// Cells off the board are ignored
	r.DrawApple(core.Pos(10, 0))
	x, y = TileOrigin(core.Pos(10, 0))
	if c := s.GetCell(x, y); c.Rune == '█' {
		t.Error("Off-board tile should not be drawn over the frame")
	}

	r.ClearBoard()
	x, y = TileOrigin(core.Pos(3, 4))
	if s.Get(x, y) != ' ' {
		t.Error("ClearBoard should blank the board")
	}
	if s.Get(0, boxTop) != '┌' {
		t.Error("ClearBoard should redraw the frame")
	}
}

func TestScreenRendererViews(t *testing.T) {
	r := NewScreenRenderer("strict")

	r.ShowStartView()
	if !strings.Contains(r.Screen().String(), "S N A K E") {
		t.Errorf("Start view missing title:\n%s", r.Screen().String())
	}

	r.DrawBody([]core.Position{{X: 1, Y: 1}})
	r.ShowGameOverView()
	out := r.Screen().String()
	if !strings.Contains(out, "GAME  OVER") {
		t.Errorf("Game-over view missing banner:\n%s", out)
	}
	// The banner is drawn over the last frame
	x, y := TileOrigin(core.Pos(1, 1))
	if r.Screen().Get(x, y) != '█' {
		t.Error("Game-over view should keep the board behind the banner")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorGreen)
	s.DrawText(0, 1, "xyz", core.ColorDefault)

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") || !strings.Contains(out, "xyz") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("Expected 2 lines, got %q", out)
	}
}

func newTestModel(t *testing.T, store *storage.Store) (Model, *sched.Manual) {
	t.Helper()
	m := sched.NewManual()
	model := NewModel(Options{
		Config:    config.DefaultSnakeConfig(),
		Variant:   "classic",
		Seed:      5,
		Store:     store,
		Scheduler: m,
	})
	t.Cleanup(model.Close)
	return model, m
}

func press(model Model, keys ...string) Model {
	for _, k := range keys {
		next, _ := model.Update(keyMsg(k))
		model = next.(Model)
	}
	return model
}

func TestModelStartsGameOnArrow(t *testing.T) {
	model, _ := newTestModel(t, nil)

	if model.Init() != nil {
		t.Error("Init should not listen when a custom scheduler is used")
	}
	if model.Session().State() != snake.StateMenu {
		t.Fatalf("State() = %s, expected menu", model.Session().State())
	}

	model = press(model, "x")
	if model.Session().State() != snake.StateMenu {
		t.Error("A non-steering key should not start the game")
	}

	model = press(model, "w")
	if model.Session().State() != snake.StatePlaying {
		t.Errorf("State() = %s, expected playing", model.Session().State())
	}

	model = press(model, "l")
	if model.Session().Direction() != core.DirRight {
		t.Errorf("Direction() = %v, expected right", model.Session().Direction())
	}
}

func TestModelQuit(t *testing.T) {
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		model, _ := newTestModel(t, nil)
		model = press(model, "up")

		next, cmd := model.Update(keyMsg(k))
		if cmd == nil {
			t.Fatalf("%s: expected a quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", k)
		}
		if next.(Model).View() != "" {
			t.Errorf("%s: view should be empty after quitting", k)
		}
		if model.Session().Running() {
			t.Errorf("%s: quitting should stop the clock", k)
		}
	}
}

func TestModelHelpToggle(t *testing.T) {
	model, _ := newTestModel(t, nil)
	short := model.View()

	model = press(model, "?")
	if model.View() == short {
		t.Error("Help toggle should change the view")
	}
	if !strings.Contains(model.View(), "quit") {
		t.Error("Help should list the quit key")
	}
}

func TestModelViewCentersOnLargeWindow(t *testing.T) {
	model, _ := newTestModel(t, nil)

	next, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model = next.(Model)

	lines := strings.Split(model.View(), "\n")
	if len(lines) != 40 {
		t.Errorf("View has %d lines, expected the window height 40", len(lines))
	}
}

func TestModelSavesScoreOnGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	model, clock := newTestModel(t, store)

	// Left five tiles, up five onto the apple, then up into the wall
	model = press(model, "up", "left")
	clock.Advance(700 * time.Millisecond)
	model = press(model, "up")
	clock.Advance(700 * time.Millisecond)
	if model.Session().Score() != 1 {
		t.Fatalf("Score() = %d at %v, expected the apple eaten", model.Session().Score(), model.Session().Head())
	}
	clock.Advance(time.Second)

	if model.Session().State() != snake.StateGameOver {
		t.Fatalf("State() = %s, expected game_over", model.Session().State())
	}
	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	score := model.Session().Score()
	if high != score {
		t.Errorf("HighScore() = %d, expected the saved %d", high, score)
	}
	if model.renderer.Best() != score {
		t.Errorf("Best() = %d, expected %d", model.renderer.Best(), score)
	}

	scores, _ := store.TopScores("classic", 10)
	if len(scores) != 1 || scores[0].Reason != string(snake.LossOutOfBounds) {
		t.Errorf("Saved scores = %+v", scores)
	}
}

func TestModelSkipsZeroScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	model, clock := newTestModel(t, store)
	press(model, "up")
	clock.Advance(1100 * time.Millisecond)

	if model.Session().LossReason() != snake.LossNoMovement {
		t.Fatalf("LossReason() = %s, expected no_movement", model.Session().LossReason())
	}
	variants, _ := store.Variants()
	if len(variants) != 0 {
		t.Errorf("Zero scores should not be saved, got variants %v", variants)
	}
}

func TestModelLoadsBestScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveScore("classic", 12, "out_of_bounds")

	model, _ := newTestModel(t, store)
	if !strings.Contains(model.renderer.Screen().String(), "Best: 12") {
		t.Errorf("Status line should show the stored best:\n%s", model.renderer.Screen().String())
	}
}

func TestModelRunsQueuedTimers(t *testing.T) {
	model := NewModel(Options{Config: config.DefaultSnakeConfig(), Seed: 1})
	defer model.Close()

	cmd := model.Init()
	if cmd == nil {
		t.Fatal("Init should listen on the timer queue")
	}

	model = press(model, "up", "right")
	deadline := time.After(2 * time.Second)
	for model.Session().Ticks() == 0 {
		msgCh := make(chan tea.Msg, 1)
		go func() { msgCh <- cmd() }()

		select {
		case msg := <-msgCh:
			next, nextCmd := model.Update(msg)
			model, cmd = next.(Model), nextCmd
		case <-deadline:
			t.Fatal("No tick delivered through the queue")
		}
	}
	if model.Session().Head() != core.Pos(11, 10) {
		t.Errorf("Head() = %v, expected one step right", model.Session().Head())
	}

	model.Close()
	// Timers queued before the close may still be buffered
	for range 32 {
		if _, ok := cmd().(queueClosedMsg); ok {
			return
		}
	}
	t.Error("Listener should stop once the queue is released")
}

func TestPresetModel(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveScore("strict", 9, "self_collision")

	m := NewPresetModel(store, config.PresetStrict, 80, 24)
	if !strings.Contains(m.View(), "best 9") {
		t.Errorf("View should show stored best:\n%s", m.View())
	}

	next, _ := m.Update(keyMsg("down"))
	m = next.(PresetModel)
	next, cmd := m.Update(keyMsg("enter"))
	m = next.(PresetModel)
	if cmd == nil {
		t.Fatal("Select should quit the picker")
	}

	preset, ok := m.Selected()
	if !ok || preset != config.PresetSteady {
		t.Errorf("Selected() = %s, %v, expected steady", preset, ok)
	}

	quit := NewPresetModel(nil, config.PresetClassic, 80, 24)
	next, _ = quit.Update(keyMsg("q"))
	if _, ok := next.(PresetModel).Selected(); ok {
		t.Error("Quitting should not select a preset")
	}
}

func TestScoreboardModel(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveScore("classic", 3, "no_movement")
	store.SaveScore("custom", 4, "out_of_bounds")

	m := NewScoreboardModel(store, 100, 30)
	if len(m.variants) != 4 || m.variants[3] != "custom" {
		t.Errorf("Variants = %v, expected presets plus custom", m.variants)
	}
	if m.Variant() != "classic" || len(m.scores) != 1 {
		t.Errorf("First variant %s with %d scores", m.Variant(), len(m.scores))
	}
	if !strings.Contains(m.View(), "no_movement") {
		t.Errorf("View should list the score reason:\n%s", m.View())
	}

	next, _ := m.Update(keyMsg("shift+tab"))
	m = next.(ScoreboardModel)
	if m.Variant() != "custom" {
		t.Errorf("Variant() = %s, expected wrap to custom", m.Variant())
	}

	next, _ = m.Update(keyMsg("right"))
	m = next.(ScoreboardModel)
	if m.Variant() != "classic" {
		t.Errorf("Variant() = %s, expected wrap to classic", m.Variant())
	}

	next, _ = m.Update(keyMsg("l"))
	m = next.(ScoreboardModel)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Errorf("Empty variant should show the empty message:\n%s", m.View())
	}
}
