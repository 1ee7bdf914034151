package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/sched"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

// Options configures a game model.
type Options struct {
	Config  config.SnakeConfig
	Variant string
	Seed    int64
	Store   *storage.Store
	Logger  *log.Logger

	// Scheduler overrides the real-time timer queue. Tests pass a
	// sched.Manual and advance it by hand.
	Scheduler sched.Scheduler
}

// Model is the Bubble Tea model for one snake game session.
type Model struct {
	session  *snake.Session
	renderer *ScreenRenderer
	queue    *sched.Queue // nil when a custom scheduler is used
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewModel creates a model with a fresh session in the menu state.
func NewModel(opts Options) Model {
	if opts.Variant == "" {
		opts.Variant = string(config.PresetClassic)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	renderer := NewScreenRenderer(opts.Variant)
	if opts.Store != nil {
		if best, err := opts.Store.HighScore(opts.Variant); err == nil {
			renderer.SetBest(best)
		} else {
			logger.Warn("could not load high score", "error", err)
		}
	}

	var queue *sched.Queue
	s := opts.Scheduler
	if s == nil {
		queue = sched.NewQueue()
		s = queue
	}

	store := opts.Store
	onGameOver := func(res snake.Result) {
		if res.Score > renderer.Best() {
			renderer.SetBest(res.Score)
		}
		// Best-effort save, the game continues regardless
		if store == nil || res.Score == 0 {
			return
		}
		if _, err := store.SaveScore(res.Variant, res.Score, string(res.Reason)); err != nil {
			logger.Warn("could not save score", "error", err)
		}
	}

	session := snake.New(opts.Config, s, renderer,
		snake.WithSeed(opts.Seed),
		snake.WithLogger(logger),
		snake.WithVariant(opts.Variant),
		snake.WithGameOverHook(onGameOver),
	)

	h := help.New()
	h.ShowAll = false

	return Model{
		session:  session,
		renderer: renderer,
		queue:    queue,
		keys:     DefaultKeyMap(),
		help:     h,
	}
}

// Init starts listening for timers.
func (m Model) Init() tea.Cmd {
	if m.queue == nil {
		return nil
	}
	return listen(m.queue)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerMsg:
		msg.fired.Run()
		return m, listen(m.queue)

	case queueClosedMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if sig := m.keys.Signal(msg); sig.Valid() {
		m.session.Input(sig)
	}
	return m, nil
}

// View renders the board and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	var b strings.Builder
	b.WriteString(RenderScreen(m.renderer.Screen()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	if m.width < ScreenW || m.height < ScreenH {
		return b.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Session returns the game session driven by this model.
func (m Model) Session() *snake.Session {
	return m.session
}

// Close stops the session's timers and the timer queue. Must be called from
// the event loop goroutine; use Release from elsewhere.
func (m Model) Close() {
	m.session.Close()
	m.Release()
}

// Release stops timer delivery. It is safe to call from any goroutine and
// more than once.
func (m Model) Release() {
	if m.queue != nil {
		m.queue.Close()
	}
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	model := NewModel(opts)
	defer model.Release()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
