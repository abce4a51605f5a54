package game

import (
	"testing"

	"github.com/ivasilev/popchain/internal/config"
)

func fixedSessionConfig() config.Config {
	return config.Config{
		Rules: config.Rules{
			StartingHealth:   3,
			SequenceLength:   3,
			CompletionBonus:  10,
			CountdownSeconds: 10,
		},
		Balloons: fixedBalloonConfig(),
	}
}

func newTestSession(cfg config.Config, events Events) *Session {
	s := NewSession(cfg, 1, nil, events)
	s.Start()
	return s
}

// warmUp ticks the session past the initial spawn delay so the deferred
// first-session countdown is running.
func warmUp(s *Session) {
	for i := 0; i < 10; i++ {
		s.Tick(0.1)
	}
}

func TestSessionStart(t *testing.T) {
	s := newTestSession(fixedSessionConfig(), Events{})

	if s.State() != SessionActive {
		t.Errorf("State() = %v, expected active", s.State())
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", s.Score())
	}
	if s.Health() != 3 {
		t.Errorf("Health() = %d, expected starting health 3", s.Health())
	}
	if len(s.Slots()) != 3 {
		t.Errorf("Slots() len = %d, expected 3", len(s.Slots()))
	}
	if s.Cursor() != 0 {
		t.Errorf("Cursor() = %d, expected 0", s.Cursor())
	}
}

func TestFirstSessionCountdownDeferred(t *testing.T) {
	s := newTestSession(fixedSessionConfig(), Events{})

	if s.CountdownActive() {
		t.Fatal("countdown must not run before spawning has started")
	}

	warmUp(s) // past the 0.5s initial spawn delay

	if !s.CountdownActive() {
		t.Fatal("countdown should start once the field reports spawning")
	}

	// Later sessions start the countdown immediately.
	s.Restart()
	if !s.CountdownActive() {
		t.Error("restarted session should start the countdown without deferral")
	}
}

func TestSubmitColorHappyPath(t *testing.T) {
	rounds := 0
	s := newTestSession(fixedSessionConfig(), Events{
		RoundStarted: func() { rounds++ },
	})
	warmUp(s)
	rounds = 0 // ignore the initial round

	slots := s.Slots()
	for i, slot := range slots {
		if !s.SubmitColor(slot.Hue) {
			t.Fatalf("SubmitColor(%v) at slot %d should match", slot.Hue, i)
		}
	}

	// 3 matches + completion bonus
	if s.Score() != 3+10 {
		t.Errorf("Score() = %d, expected 13", s.Score())
	}
	if s.Health() != 3 {
		t.Errorf("Health() = %d, completing a sequence must not cost health", s.Health())
	}
	if rounds != 1 {
		t.Errorf("RoundStarted fired %d times, expected 1 for the advance", rounds)
	}
	if s.Cursor() != 0 || len(s.Slots()) != 3 {
		t.Errorf("Cursor()=%d len=%d, expected a fresh full sequence", s.Cursor(), len(s.Slots()))
	}
	if !s.CountdownActive() || s.CountdownFraction() != 1.0 {
		t.Errorf("countdown active=%v fraction=%v, expected a restarted countdown",
			s.CountdownActive(), s.CountdownFraction())
	}
}

func TestSubmitColorMismatch(t *testing.T) {
	s := newTestSession(fixedSessionConfig(), Events{})
	warmUp(s)

	wrong := otherHue(s.Slots()[0].Hue)
	if s.SubmitColor(wrong) {
		t.Fatal("mismatched hue should return false")
	}
	if s.Health() != 2 {
		t.Errorf("Health() = %d after mismatch, expected 2", s.Health())
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d after mismatch, expected 0", s.Score())
	}
	if s.Cursor() != 0 {
		t.Errorf("Cursor() = %d, mismatch must not advance progress", s.Cursor())
	}
	if s.State() != SessionActive {
		t.Errorf("State() = %v, one mismatch must not end the game", s.State())
	}
}

func TestMismatchAtZeroHealthEndsGame(t *testing.T) {
	cfg := fixedSessionConfig()
	cfg.Rules.StartingHealth = 1

	gameOvers := 0
	finalScore := -1
	var fractions []float64
	s := newTestSession(cfg, Events{
		GameOver:          func(score int) { gameOvers++; finalScore = score },
		CountdownFraction: func(f float64) { fractions = append(fractions, f) },
	})
	warmUp(s)

	// Score a point first so the final score is nonzero.
	s.SubmitColor(s.Slots()[0].Hue)
	wrong := otherHue(s.Slots()[1].Hue)
	s.SubmitColor(wrong)

	if s.State() != SessionGameOver {
		t.Fatalf("State() = %v, expected game over", s.State())
	}
	if gameOvers != 1 {
		t.Errorf("GameOver fired %d times, expected 1", gameOvers)
	}
	if finalScore != 1 {
		t.Errorf("final score = %d, expected 1", finalScore)
	}
	if len(s.Slots()) != 0 {
		t.Error("target sequence should be cleared on game over")
	}
	if len(s.Balloons()) != 0 {
		t.Error("balloons should be cleared on game over")
	}
	if s.CountdownActive() {
		t.Error("countdown should be stopped on game over")
	}
	if len(fractions) == 0 || fractions[len(fractions)-1] != 0 {
		t.Error("game over should push a zero countdown fraction")
	}

	// Terminal state ignores further input.
	if s.SubmitColor(HueRed) {
		t.Error("SubmitColor should be a no-op after game over")
	}

	// But a restart begins a new session.
	s.Restart()
	if s.State() != SessionActive || s.Health() != 1 || s.Score() != 0 {
		t.Errorf("restart after game over: state=%v health=%d score=%d",
			s.State(), s.Health(), s.Score())
	}
}

func TestCountdownExpiryPenaltyAndNewRound(t *testing.T) {
	rounds := 0
	s := newTestSession(fixedSessionConfig(), Events{
		RoundStarted: func() { rounds++ },
	})
	warmUp(s)
	rounds = 0
	before := s.Slots()

	// Run out the full 10-second round.
	for i := 0; i < 101; i++ {
		s.Tick(0.1)
	}

	if s.Health() != 2 {
		t.Errorf("Health() = %d after expiry, expected the 1-point penalty", s.Health())
	}
	if rounds != 1 {
		t.Errorf("RoundStarted fired %d times after expiry, expected 1", rounds)
	}
	if !s.CountdownActive() {
		t.Error("countdown should restart after a survivable expiry")
	}
	if s.Cursor() != 0 || len(s.Slots()) != len(before) {
		t.Error("expiry should draw a fresh sequence of the configured length")
	}
	if s.State() != SessionActive {
		t.Errorf("State() = %v, expected still active", s.State())
	}
}

func TestCountdownExpiryAtLastHealthEndsGame(t *testing.T) {
	cfg := fixedSessionConfig()
	cfg.Rules.StartingHealth = 1

	gameOvers := 0
	s := newTestSession(cfg, Events{
		GameOver: func(int) { gameOvers++ },
	})
	warmUp(s)

	for i := 0; i < 101; i++ {
		s.Tick(0.1)
	}

	if s.State() != SessionGameOver {
		t.Fatalf("State() = %v, expected game over on expiry at 1 health", s.State())
	}
	if gameOvers != 1 {
		t.Errorf("GameOver fired %d times, expected 1", gameOvers)
	}
}

func TestSkipSequence(t *testing.T) {
	rounds := 0
	s := newTestSession(fixedSessionConfig(), Events{
		RoundStarted: func() { rounds++ },
	})
	warmUp(s)
	rounds = 0

	s.SubmitColor(s.Slots()[0].Hue) // partial progress
	s.SkipSequence()

	if s.Cursor() != 0 {
		t.Errorf("Cursor() = %d after skip, expected 0", s.Cursor())
	}
	if rounds != 1 {
		t.Errorf("RoundStarted fired %d times, expected 1", rounds)
	}
	if s.Score() != 1 {
		t.Errorf("Score() = %d, skip must not award the completion bonus", s.Score())
	}
	if s.Health() != 3 {
		t.Errorf("Health() = %d, skip must not cost health", s.Health())
	}
	if !s.CountdownActive() || s.CountdownFraction() != 1.0 {
		t.Error("skip should restart the countdown")
	}
}

func TestSequenceChangeGuard(t *testing.T) {
	s := newTestSession(fixedSessionConfig(), Events{})
	warmUp(s)

	// Simulate a change already in flight: every other trigger
	// short-circuits without effect.
	s.advancing = true

	healthBefore, scoreBefore, cursorBefore := s.Health(), s.Score(), s.Cursor()

	s.onCountdownExpired()
	if s.Health() != healthBefore {
		t.Error("expiry during a sequence change must not apply the penalty")
	}

	s.advanceSequence(true)
	if s.Score() != scoreBefore {
		t.Error("re-entered advance must not award the bonus")
	}

	if s.SubmitColor(s.Slots()[0].Hue) {
		t.Error("color submitted during a sequence change must be ignored")
	}
	if s.Cursor() != cursorBefore {
		t.Error("guarded submit must not advance the cursor")
	}

	// Releasing the guard restores normal operation.
	s.advancing = false
	if !s.SubmitColor(s.Slots()[0].Hue) {
		t.Error("submit should work again once the guard clears")
	}
}

func TestSubmitBeforeStartIsNoOp(t *testing.T) {
	s := NewSession(fixedSessionConfig(), 1, nil, Events{})
	if s.SubmitColor(HueRed) {
		t.Error("SubmitColor before Start should return false")
	}
	if s.State() != SessionNotStarted {
		t.Errorf("State() = %v, expected not started", s.State())
	}
	s.SkipSequence() // must not panic or generate anything
	if len(s.Slots()) != 0 {
		t.Error("SkipSequence before Start should not generate a sequence")
	}
}

func TestBalloonsSpawnOnlyWhileActive(t *testing.T) {
	cfg := fixedSessionConfig()
	cfg.Rules.StartingHealth = 1
	s := newTestSession(cfg, Events{})
	warmUp(s)

	// End the game, then keep ticking: no new balloons may appear.
	s.SubmitColor(otherHue(s.Slots()[0].Hue))
	if s.State() != SessionGameOver {
		t.Fatal("expected game over")
	}
	for i := 0; i < 50; i++ {
		s.Tick(0.1)
	}
	if len(s.Balloons()) != 0 {
		t.Errorf("%d balloons spawned after game over, expected none", len(s.Balloons()))
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func() ([]Hue, []Balloon) {
		s := NewSession(fixedSessionConfig(), 42, nil, Events{})
		s.Start()
		for i := 0; i < 100; i++ {
			s.Tick(0.05)
		}
		hues := make([]Hue, 0, 3)
		for _, slot := range s.Slots() {
			hues = append(hues, slot.Hue)
		}
		return hues, s.Balloons()
	}

	hues1, balloons1 := run()
	hues2, balloons2 := run()

	for i := range hues1 {
		if hues1[i] != hues2[i] {
			t.Fatalf("sequence diverged at slot %d: %v vs %v", i, hues1[i], hues2[i])
		}
	}
	if len(balloons1) != len(balloons2) {
		t.Fatalf("balloon counts diverged: %d vs %d", len(balloons1), len(balloons2))
	}
	for i := range balloons1 {
		a, b := balloons1[i], balloons2[i]
		if a.X != b.X || a.Y != b.Y || a.Hue != b.Hue || a.Speed != b.Speed {
			t.Fatalf("balloon %d diverged: %+v vs %+v", i, a, b)
		}
	}
}
