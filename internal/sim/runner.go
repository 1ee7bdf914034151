package sim

import (
	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/sched"
)

// Frame is the state after one step.
type Frame struct {
	Step     Step
	Snapshot snake.Snapshot
}

// Runner owns a session on a virtual clock.
type Runner struct {
	clock    *sched.Manual
	session  *snake.Session
	renderer *tui.ScreenRenderer
	results  []snake.Result
}

// NewRunner creates a session in the menu state. Options are passed to the
// session after the runner's own, so a caller's game-over hook replaces the
// runner's result collection.
func NewRunner(cfg config.SnakeConfig, variant string, opts ...snake.Option) *Runner {
	r := &Runner{
		clock:    sched.NewManual(),
		renderer: tui.NewScreenRenderer(variant),
	}

	all := append([]snake.Option{
		snake.WithVariant(variant),
		snake.WithGameOverHook(func(res snake.Result) {
			r.results = append(r.results, res)
		}),
	}, opts...)
	r.session = snake.New(cfg, r.clock, r.renderer, all...)
	return r
}

// Run executes steps in order and returns a frame per step.
func (r *Runner) Run(steps []Step) []Frame {
	frames := make([]Frame, 0, len(steps))
	for _, s := range steps {
		r.Apply(s)
		frames = append(frames, Frame{Step: s, Snapshot: r.session.Snapshot()})
	}
	return frames
}

// Apply executes one step.
func (r *Runner) Apply(s Step) {
	switch {
	case s.Signal.Valid():
		r.session.Input(s.Signal)
	case s.Wait > 0:
		r.clock.Advance(s.Wait)
	default:
		for range s.Tick {
			r.session.Tick()
		}
	}
}

// Session returns the simulated session.
func (r *Runner) Session() *snake.Session {
	return r.session
}

// Results returns every finished game so far.
func (r *Runner) Results() []snake.Result {
	return r.results
}

// Board returns the current board as plain text.
func (r *Runner) Board() string {
	return r.renderer.Screen().String()
}

// Close stops the session's timers.
func (r *Runner) Close() {
	r.session.Close()
}
