package snake

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/sched"
)

// Result describes a finished game. It is passed to the game-over hook.
type Result struct {
	Variant string
	Score   int
	Reason  LossReason
	Ticks   uint64
	Speed   int
}

// Option configures a Session.
type Option func(*options)

type options struct {
	rng        *rand.Rand
	logger     *log.Logger
	onGameOver func(Result)
	variant    string
}

// WithRand sets the random source used for apple placement.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithSeed seeds apple placement. Zero keeps the time-based default.
func WithSeed(seed int64) Option {
	return func(o *options) {
		if seed != 0 {
			o.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// WithLogger sets the logger for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithGameOverHook registers fn to run each time a game is lost.
func WithGameOverHook(fn func(Result)) Option {
	return func(o *options) { o.onGameOver = fn }
}

// WithVariant names the rule variant reported in results.
func WithVariant(name string) Option {
	return func(o *options) { o.variant = name }
}

// Session is one independent snake game: the lifecycle state machine plus the
// components it drives. A Session is not safe for concurrent use; Input, Tick
// and the scheduler callbacks must all run on one goroutine.
type Session struct {
	cfg        config.SnakeConfig
	variant    string
	sched      sched.Scheduler
	renderer   Renderer
	logger     *log.Logger
	onGameOver func(Result)

	direction *DirectionController
	apple     *AppleSpawner
	body      *BodyTracker
	clock     *GameClock

	state  LifecycleState
	score  int
	speed  int
	head   core.Position
	ticks  uint64
	reason LossReason

	gateTimer sched.Timer // opens the start gate
	viewTimer sched.Timer // shows the game-over view
}

// New creates a session in the menu state and runs the menu entry action, so
// the start view is drawn and the board is ready before any input arrives.
func New(cfg config.SnakeConfig, s sched.Scheduler, r Renderer, opts ...Option) *Session {
	o := options{variant: string(config.PresetClassic)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if r == nil {
		r = NopRenderer{}
	}

	sess := &Session{
		cfg:        cfg,
		variant:    o.variant,
		sched:      s,
		renderer:   r,
		logger:     o.logger,
		onGameOver: o.onGameOver,
		direction:  NewDirectionController(),
		apple:      NewAppleSpawner(o.rng, r),
		body:       NewBodyTracker(r, cfg.Rules.FullBodyCollision),
		clock:      NewGameClock(s, cfg.Speed.MinInterval),
		state:      StateMenu,
	}
	sess.enterMenu()
	return sess
}

// Input is the input boundary. In the menu and on the game-over screen any
// directional signal moves to the next state; while playing it steers.
// Invalid signals are ignored.
func (s *Session) Input(sig core.Signal) {
	if !sig.Valid() {
		return
	}

	switch s.state {
	case StateMenu:
		s.setState(StatePlaying)
	case StateGameOver:
		s.setState(StateMenu)
	case StatePlaying:
		if !s.direction.Submit(sig) {
			s.logger.Debug("signal rejected", "signal", sig, "last", s.direction.Last())
		}
	}
}

// Tick advances the game by one step. It does nothing outside the playing
// state. The clock calls it; tests may call it directly.
func (s *Session) Tick() {
	if s.state != StatePlaying {
		return
	}
	s.ticks++

	s.head = s.head.Add(s.direction.Current())
	s.renderer.ClearBoard()
	s.renderer.DrawScore(s.score)

	if !InBounds(s.head) {
		s.lose(LossOutOfBounds)
		return
	}

	if reason, lost := s.body.Step(s.head); lost {
		s.lose(reason)
		return
	}

	if _, ate := s.apple.Step(s.head); ate {
		s.eat()
	}
}

// eat applies the rewards for an apple and speeds the clock up right away.
func (s *Session) eat() {
	s.body.GrowBy(1)
	s.score++

	next := s.speed - s.cfg.Speed.Decrement
	if floor := s.cfg.Speed.Floor; floor > 0 && next < floor {
		next = min(floor, s.speed)
	}
	s.speed = next

	s.clock.Reschedule(s.TickInterval(), s.Tick)
	s.logger.Debug("apple eaten",
		"score", s.score,
		"speed", s.speed,
		"interval", s.clock.Interval(),
		"apple", s.apple.Position(),
	)
}

func (s *Session) lose(reason LossReason) {
	s.reason = reason
	s.setState(StateGameOver)
}

// setState switches state and runs the entry action of the new state.
func (s *Session) setState(next LifecycleState) {
	s.logger.Debug("state transition", "from", s.state, "to", next)
	s.state = next

	switch next {
	case StateMenu:
		s.enterMenu()
	case StatePlaying:
		s.enterPlaying()
	case StateGameOver:
		s.enterGameOver()
	}
}

func (s *Session) enterMenu() {
	if s.cfg.Rules.CancelPendingViews {
		stopTimer(&s.viewTimer)
	}

	s.speed = s.cfg.Speed.Initial
	s.score = 0
	s.head = SpawnHead
	s.ticks = 0
	s.reason = LossNone

	s.renderer.ShowStartView()
	s.apple.Initialize()
	s.body.Initialize()
}

func (s *Session) enterPlaying() {
	s.clock.Start(s.TickInterval(), s.Tick)

	stopTimer(&s.gateTimer)
	s.gateTimer = s.sched.After(s.cfg.Timing.StartedGate, func() {
		s.gateTimer = nil
		s.body.MarkStarted()
	})
}

func (s *Session) enterGameOver() {
	s.clock.Stop()
	stopTimer(&s.gateTimer)

	if s.cfg.Rules.CancelPendingViews {
		stopTimer(&s.viewTimer)
	}
	s.viewTimer = s.sched.After(s.cfg.Timing.GameOverViewDelay, func() {
		s.viewTimer = nil
		s.renderer.ShowGameOverView()
	})

	result := Result{
		Variant: s.variant,
		Score:   s.score,
		Reason:  s.reason,
		Ticks:   s.ticks,
		Speed:   s.speed,
	}
	s.logger.Info("game over",
		"variant", result.Variant,
		"score", result.Score,
		"reason", result.Reason,
		"ticks", result.Ticks,
	)
	if s.onGameOver != nil {
		s.onGameOver(result)
	}
}

// Close cancels every timer the session owns. The session must not be used
// afterwards.
func (s *Session) Close() {
	s.clock.Stop()
	stopTimer(&s.gateTimer)
	stopTimer(&s.viewTimer)
}

func stopTimer(t *sched.Timer) {
	if *t != nil {
		(*t).Stop()
		*t = nil
	}
}

// State returns the current lifecycle state.
func (s *Session) State() LifecycleState {
	return s.state
}

// Score returns the number of apples eaten this game.
func (s *Session) Score() int {
	return s.score
}

// Speed returns the raw speed value the interval is derived from.
func (s *Session) Speed() int {
	return s.speed
}

// TickInterval returns the interval derived from the current speed. It is not
// clamped; the clock raises non-positive values to its minimum when arming.
func (s *Session) TickInterval() time.Duration {
	return s.cfg.Speed.Interval(s.speed)
}

// ClockInterval returns the interval the clock actually armed last.
func (s *Session) ClockInterval() time.Duration {
	return s.clock.Interval()
}

// Running reports whether the tick clock is armed.
func (s *Session) Running() bool {
	return s.clock.Running()
}

// Head returns the head position.
func (s *Session) Head() core.Position {
	return s.head
}

// Apple returns the apple position.
func (s *Session) Apple() core.Position {
	return s.apple.Position()
}

// Trail returns a copy of the body cells, head last.
func (s *Session) Trail() []core.Position {
	return s.body.Trail()
}

// MaxLength returns the body length cap.
func (s *Session) MaxLength() int {
	return s.body.MaxLength()
}

// Direction returns the active movement vector.
func (s *Session) Direction() core.Direction {
	return s.direction.Current()
}

// Started reports whether the start gate has opened this game.
func (s *Session) Started() bool {
	return s.body.Started()
}

// LossReason returns why the last game ended, or LossNone.
func (s *Session) LossReason() LossReason {
	return s.reason
}

// Ticks returns the number of ticks played this game.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Variant returns the rule variant name.
func (s *Session) Variant() string {
	return s.variant
}
