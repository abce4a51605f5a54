package game

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/ivasilev/popchain/internal/config"
)

// SessionState is the lifecycle of one game session.
type SessionState int

const (
	SessionNotStarted SessionState = iota
	SessionActive
	SessionGameOver
)

// String returns a human-readable name for the state.
func (s SessionState) String() string {
	switch s {
	case SessionNotStarted:
		return "not_started"
	case SessionActive:
		return "active"
	case SessionGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session coordinates the gameplay components: it owns one instance of
// each tracker/engine, wires their notifications together, enforces the
// sequence-change re-entrancy guard, and exposes the entry points the
// presentation layer calls.
//
// Three asynchronous triggers can request a sequence change: sequence
// completion, countdown expiry, and a manual skip. All three funnel
// through the advancing guard so that at most one change protocol
// executes at a time; a re-entrant request short-circuits without
// effect.
type Session struct {
	cfg    config.Config
	rng    *rand.Rand
	logger *log.Logger
	events Events

	score     *ScoreTracker
	health    *HealthTracker
	sequence  *SequenceEngine
	balloons  *BalloonField
	countdown *RoundCountdown

	state        SessionState
	advancing    bool // re-entrancy guard across the three sequence-change call sites
	firstSession bool // countdown deferral applies only to the very first session
}

// NewSession builds a session from gameplay configuration and a seed.
// A nil logger disables diagnostics. Events hooks may be zero-valued.
func NewSession(cfg config.Config, seed int64, logger *log.Logger, events Events) *Session {
	if logger == nil {
		logger = discardLogger()
	}

	s := &Session{
		cfg:          cfg,
		rng:          rand.New(rand.NewSource(seed)),
		logger:       logger,
		events:       events,
		state:        SessionNotStarted,
		firstSession: true,
	}

	s.score = NewScoreTracker(events.ScoreChanged)
	s.health = NewHealthTracker(events.HealthChanged)
	s.sequence = NewSequenceEngine(s.rng, events.SlotColorSet, events.SlotCompleted, events.SequenceCleared)
	s.countdown = NewRoundCountdown(s.onCountdownExpired)
	s.balloons = NewBalloonField(cfg.Balloons, s.rng, logger, FieldHooks{
		BalloonSpawned:  events.BalloonSpawned,
		BalloonRemoved:  events.BalloonRemoved,
		SpawningStarted: s.onSpawningStarted,
	})
	s.balloons.SetShouldSpawn(func() bool { return s.state == SessionActive })

	return s
}

// Start begins (or fully restarts) a session: trackers reset to
// configured defaults, the balloon field restarts, and the first target
// sequence is generated. On the very first session the countdown is
// deferred until the field reports that spawning has begun, so the timer
// cannot race ahead of the first visible balloon; later sessions start
// it immediately.
func (s *Session) Start() {
	s.advancing = false
	s.score.Reset()
	s.health.ResetTo(s.cfg.Rules.StartingHealth)
	s.countdown.Stop()
	s.balloons.ClearAll()
	s.balloons.StartSpawning()
	s.sequence.Generate(s.cfg.Rules.SequenceLength)
	s.state = SessionActive

	if s.events.RoundStarted != nil {
		s.events.RoundStarted()
	}
	if !s.firstSession {
		s.countdown.Start(s.cfg.Rules.CountdownSeconds)
	}
}

// Restart is equivalent to calling Start again.
func (s *Session) Restart() {
	s.Start()
}

// onSpawningStarted handles the one-shot notification from the balloon
// field. It releases the deferred first-session countdown and flips the
// first-session flag for all future sessions.
func (s *Session) onSpawningStarted() {
	if s.firstSession {
		s.firstSession = false
		if s.state == SessionActive && !s.countdown.Active() {
			s.countdown.Start(s.cfg.Rules.CountdownSeconds)
		}
	}
	if s.events.SpawningStarted != nil {
		s.events.SpawningStarted()
	}
}

// SubmitColor reports a popped balloon's hue against the target
// sequence. Returns true on a match. No-op (false) unless the session is
// active and no sequence change is in flight: input events are racy
// against state transitions by nature, so invalid-state calls are
// ignored rather than rejected loudly.
func (s *Session) SubmitColor(h Hue) bool {
	if s.state != SessionActive {
		return false
	}
	if s.advancing {
		s.logger.Debug("color submitted during sequence change; ignoring", "hue", h.String())
		return false
	}

	if s.sequence.Validate(h) {
		s.score.Add(1)
		if s.sequence.IsComplete() {
			s.advanceSequence(true)
		}
		return true
	}

	s.health.Change(-1)
	if s.health.Value() <= 0 {
		s.endGame()
	}
	return false
}

// SkipSequence discards the current target sequence and draws a fresh
// one, without bonus or penalty. This is the manual (swipe) reset path;
// it shares the guard with completion and expiry.
func (s *Session) SkipSequence() {
	if s.state != SessionActive {
		return
	}
	s.advanceSequence(false)
}

// advanceSequence runs the sequence-advance protocol: award the
// completion bonus (completion path only), generate a new sequence, and
// restart the countdown. Idempotent against re-entry: if a change is
// already in flight the call returns immediately without effect.
func (s *Session) advanceSequence(awardBonus bool) {
	if s.advancing {
		s.logger.Debug("sequence advance re-entered; short-circuiting")
		return
	}
	s.advancing = true

	if awardBonus {
		s.score.Add(s.cfg.Rules.CompletionBonus)
	}
	s.sequence.Generate(s.cfg.Rules.SequenceLength)
	s.countdown.Start(s.cfg.Rules.CountdownSeconds)
	if s.events.RoundStarted != nil {
		s.events.RoundStarted()
	}

	s.advancing = false
}

// onCountdownExpired runs the expiry protocol: one health penalty, then
// either game over or a fresh sequence with a restarted countdown.
// Shares the guard with advanceSequence: if completion and expiry race
// within the same frame, only the first to enter has any effect.
func (s *Session) onCountdownExpired() {
	if s.advancing {
		s.logger.Debug("countdown expired during sequence change; short-circuiting")
		return
	}
	s.advancing = true

	s.countdown.Stop()
	s.health.Change(-1)
	if s.health.Value() <= 0 {
		s.advancing = false
		s.endGame()
		return
	}

	s.sequence.Generate(s.cfg.Rules.SequenceLength)
	s.countdown.Start(s.cfg.Rules.CountdownSeconds)
	if s.events.RoundStarted != nil {
		s.events.RoundStarted()
	}

	s.advancing = false
}

// endGame runs the game-over protocol. A normal, re-enterable terminal
// state: Restart begins a new session.
func (s *Session) endGame() {
	if s.events.GameOver != nil {
		s.events.GameOver(s.score.Value())
	}
	s.state = SessionGameOver
	s.balloons.StopSpawning()
	s.balloons.ClearAll()
	s.sequence.Clear()
	s.countdown.Stop()
	if s.events.CountdownFraction != nil {
		s.events.CountdownFraction(0)
	}
}

// Tick advances all timers by dt elapsed seconds. Balloon cleanup and
// countdown advancement each run exactly once per tick; the expiry
// callback may end the round or the game synchronously.
func (s *Session) Tick(dt float64) {
	if s.state == SessionNotStarted {
		return
	}

	s.balloons.Tick(dt)

	if s.state != SessionActive {
		return
	}
	s.countdown.Tick(dt)
	if s.state == SessionActive && s.countdown.Active() && s.events.CountdownFraction != nil {
		s.events.CountdownFraction(s.countdown.Fraction())
	}
}

// State returns the session lifecycle state.
func (s *Session) State() SessionState {
	return s.state
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score.Value()
}

// Health returns the current health.
func (s *Session) Health() int {
	return s.health.Value()
}

// Slots returns the target sequence in display order.
func (s *Session) Slots() []SequenceSlot {
	return s.sequence.Slots()
}

// Cursor returns the sequence progress cursor.
func (s *Session) Cursor() int {
	return s.sequence.Cursor()
}

// Balloons returns a copy of the live balloon set.
func (s *Session) Balloons() []Balloon {
	return s.balloons.Balloons()
}

// Field exposes the balloon field to the input collaborator for
// hit-testing and the one-way Pop transition.
func (s *Session) Field() *BalloonField {
	return s.balloons
}

// CountdownFraction returns the countdown progress in [0,1].
func (s *Session) CountdownFraction() float64 {
	return s.countdown.Fraction()
}

// CountdownActive reports whether the round countdown is running.
func (s *Session) CountdownActive() bool {
	return s.countdown.Active()
}

// discardLogger returns a logger that drops everything.
func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
