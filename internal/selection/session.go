package selection

import "wordrush.gg/wordrush/internal/grid"

// SamplePhase classifies one normalized pointer sample.
type SamplePhase int

const (
	PhaseDown   SamplePhase = iota // press began
	PhaseMove                      // pointer moved while down
	PhaseUp                        // press released
	PhaseCancel                    // gesture lost (pointer left the surface)
)

// Source identifies the device a sample came from. The dead-zone provider
// receives it so thresholds can differ between mouse and touch.
type Source int

const (
	SourceMouse Source = iota
	SourceTouch
)

// Sample is one pointer event in the same coordinate space as the grid's
// rendered layout.
type Sample struct {
	X      float64
	Y      float64
	Phase  SamplePhase
	Source Source
}

// State is the session's observable state. Submission itself is atomic:
// the SELECTING -> SUBMITTING -> FADING run happens inside a single event
// handler, so the session is never observed mid-submit between ticks.
type State int

const (
	StateIdle      State = iota // no selection, no fade
	StateSelecting              // a gesture is building a path
	StateFading                 // a submitted path is clearing cell by cell
)

// WordEmitter receives the final letter sequence of each submitted
// selection, exactly once per submission. Word validation and scoring
// live behind this port, outside the engine.
type WordEmitter interface {
	WordSubmitted(letters string)
}

// FeedbackKind identifies an abstract feedback event. Mapping kinds to
// concrete haptic or audio output is entirely the sink's business.
type FeedbackKind int

const (
	FeedbackSelectStart FeedbackKind = iota
	FeedbackCellAdded
	FeedbackCellRemoved
	FeedbackSubmit
	FeedbackDiscard
)

// FeedbackSink receives feedback events with an intensity in [0, 1].
type FeedbackSink interface {
	Feedback(kind FeedbackKind, intensity float64)
}

// Session is the state machine tying the guard, the path rules and the
// timers together. It is the single owner of path, pointer and fade
// state; Apply and Guard are pure helpers it consults. All mutation
// happens on the caller's tick thread: feed samples with HandleSample and
// drive time with Advance.
type Session struct {
	cfg  *Config
	grid *grid.Grid

	// Injected collaborators.
	LayoutFunc   func() grid.Layout     // current rendered geometry, asked per sample
	DeadzoneFunc func(s Source) float64 // dead-zone threshold provider
	Emitter      WordEmitter
	Feedback     FeedbackSink

	// Advisory signals for presentation layers. All optional.
	OnSelectionStarted   func(first grid.Cell)
	OnCellAdded          func(cell grid.Cell, pathLen, comboLevel int)
	OnCellRemoved        func(cell grid.Cell, pathLen int)
	OnSelectionDiscarded func()
	OnFadeStarted        func(cells []grid.Cell)
	OnFadeCellCleared    func(cell grid.Cell)
	OnFadeComplete       func()

	interactive bool
	comboLevel  int

	state         State
	path          []grid.Cell
	guard         Guard
	pointerActive bool

	// Auto-submit debounce, counted down by Advance.
	autoPending bool
	autoLeft    float64

	// Fade queue; fading[0] is the first-selected cell and clears first.
	fading    []grid.Cell
	fadeLeft  float64
	fadeDelay float64 // per-cell step, captured at submit time
}

// NewSession creates a session over g. A nil cfg uses the defaults.
// The session starts interactive with a combo level of zero.
func NewSession(g *grid.Grid, cfg *Config) *Session {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	s := &Session{
		cfg:         cfg,
		grid:        g,
		interactive: true,
		state:       StateIdle,
	}
	s.DeadzoneFunc = func(src Source) float64 {
		if src == SourceTouch {
			return cfg.TouchDeadzone
		}
		return cfg.MouseDeadzone
	}
	return s
}

// State returns the session's current state.
func (s *Session) State() State { return s.state }

// Path returns the active selection path in selection order. The slice is
// owned by the session; callers must not mutate it.
func (s *Session) Path() []grid.Cell { return s.path }

// Fading returns the cells still mid-fade, first-selected first.
func (s *Session) Fading() []grid.Cell { return s.fading }

// CurrentWord returns the letters of the in-progress path.
func (s *Session) CurrentWord() string { return Word(s.path) }

// Interactive reports whether gesture processing is enabled.
func (s *Session) Interactive() bool { return s.interactive }

// SetInteractive enables or disables gesture processing. Disabling
// mid-gesture discards the current selection; a fade already playing out
// is left to finish.
func (s *Session) SetInteractive(on bool) {
	s.interactive = on
	if !on && s.state == StateSelecting {
		s.discard()
	}
}

// ComboLevel returns the externally supplied combo level.
func (s *Session) ComboLevel() int { return s.comboLevel }

// SetComboLevel updates the read-only combo input. Dropping to zero
// cancels any pending auto-submit so no stale timer fires.
func (s *Session) SetComboLevel(level int) {
	if level < 0 {
		level = 0
	}
	s.comboLevel = level
	if level == 0 {
		s.cancelAutoSubmit()
	}
}

// HandleSample feeds one pointer sample through the state machine.
// Samples that fail a gate are dropped silently; noisy input is expected,
// not an error.
func (s *Session) HandleSample(sm Sample) {
	switch sm.Phase {
	case PhaseDown:
		s.handleDown(sm)
	case PhaseMove:
		s.handleMove(sm)
	case PhaseUp:
		s.handleUp()
	case PhaseCancel:
		s.handleCancel()
	}
}

// Advance drives the session's timers by dt seconds of game time. The
// caller invokes it once per tick, after that tick's samples.
func (s *Session) Advance(dt float64) {
	s.advanceAutoSubmit(dt)
	s.advanceFade(dt)
}

func (s *Session) handleDown(sm Sample) {
	// A new press abandons any fade still playing out, synchronously,
	// before the new gesture's first cell registers.
	if s.state == StateFading {
		s.clearFade()
		s.state = StateIdle
	}
	if !s.interactive || s.state != StateIdle {
		return
	}

	hit := s.grid.Resolve(s.layout(), sm.X, sm.Y)
	if hit == nil {
		return
	}

	s.state = StateSelecting
	s.pointerActive = true
	s.guard.Start(sm.X, sm.Y)
	s.path = append(s.path[:0], hit.Cell)

	if s.OnSelectionStarted != nil {
		s.OnSelectionStarted(hit.Cell)
	}
	s.feedback(FeedbackSelectStart, 0.3)
}

func (s *Session) handleMove(sm Sample) {
	if s.state != StateSelecting || !s.pointerActive {
		return
	}
	if !s.guard.CrossedDeadzone(sm.X, sm.Y, s.deadzone(sm.Source)) {
		return
	}

	hit := s.grid.Resolve(s.layout(), sm.X, sm.Y)
	if hit == nil {
		return
	}
	if !WithinCenter(hit, s.cfg.ProximityFraction) {
		return
	}

	tail := s.path[len(s.path)-1]
	path, change := Apply(s.path, hit.Cell)
	s.path = path

	switch change {
	case ChangeExtend:
		if s.OnCellAdded != nil {
			s.OnCellAdded(hit.Cell, len(s.path), s.comboLevel)
		}
		s.feedback(FeedbackCellAdded, s.cellIntensity())
		s.restartAutoSubmit()
	case ChangeBacktrack:
		if s.OnCellRemoved != nil {
			s.OnCellRemoved(tail, len(s.path))
		}
		s.feedback(FeedbackCellRemoved, 0.2)
		s.restartAutoSubmit()
	}
}

func (s *Session) handleUp() {
	// A late release after an auto-submission already ended the gesture
	// must stay a no-op; this check is the double-submit guard.
	if s.state != StateSelecting {
		return
	}
	s.pointerActive = false
	if len(s.path) >= 2 {
		s.submit()
		return
	}
	// A single cell never submits, drag or no drag: a stray tap must not
	// register as a one-letter word.
	s.discard()
}

func (s *Session) handleCancel() {
	if s.state != StateSelecting {
		return
	}
	s.discard()
}

// submit emits the current path exactly once, then hands it to the fade
// queue and frees the session for new input. Callers reach it only from
// StateSelecting; flipping the state first is what collapses a racing
// pointer-up and auto-submit into a single emission.
func (s *Session) submit() {
	word := Word(s.path)
	cells := append([]grid.Cell(nil), s.path...)

	s.state = StateFading
	s.cancelAutoSubmit()
	s.pointerActive = false
	s.path = s.path[:0]

	s.fading = cells
	if s.comboLevel > 0 {
		s.fadeLeft = s.cfg.FadeHoldCombo
		s.fadeDelay = s.cfg.FadeCellDelayCombo
	} else {
		s.fadeLeft = s.cfg.FadeHold
		s.fadeDelay = s.cfg.FadeCellDelay
	}

	if s.Emitter != nil {
		s.Emitter.WordSubmitted(word)
	}
	s.feedback(FeedbackSubmit, 0.8)
	if s.OnFadeStarted != nil {
		s.OnFadeStarted(cells)
	}
}

// discard clears the selection with no emission and no fade.
func (s *Session) discard() {
	s.state = StateIdle
	s.cancelAutoSubmit()
	s.pointerActive = false
	s.path = s.path[:0]

	if s.OnSelectionDiscarded != nil {
		s.OnSelectionDiscarded()
	}
	s.feedback(FeedbackDiscard, 0.1)
}

func (s *Session) layout() grid.Layout {
	if s.LayoutFunc != nil {
		return s.LayoutFunc()
	}
	return grid.Layout{}
}

func (s *Session) deadzone(src Source) float64 {
	if s.DeadzoneFunc != nil {
		return s.DeadzoneFunc(src)
	}
	return 0
}

func (s *Session) feedback(kind FeedbackKind, intensity float64) {
	if s.Feedback != nil {
		s.Feedback.Feedback(kind, intensity)
	}
}

// cellIntensity scales cell-added feedback with path length and combo
// level, capped at full strength.
func (s *Session) cellIntensity() float64 {
	v := 0.3 + 0.05*float64(len(s.path)) + 0.1*float64(s.comboLevel)
	if v > 1 {
		v = 1
	}
	return v
}
