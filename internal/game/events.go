package game

// Events holds the presentation-layer hooks fired by the gameplay core.
// Every field is optional; nil hooks are skipped. All hooks are invoked
// synchronously from the tick or input call that caused them.
type Events struct {
	// ScoreChanged fires after every score mutation with the new value.
	ScoreChanged func(score int)

	// HealthChanged fires after every health mutation with the new value.
	HealthChanged func(health int)

	// SlotColorSet fires once per slot when a sequence is generated,
	// in draw order: slot i always corresponds to sequence element i.
	SlotColorSet func(slot int, hue Hue)

	// SlotCompleted fires when the slot's hue is matched.
	SlotCompleted func(slot int)

	// SequenceCleared fires when all slot visuals should be destroyed.
	SequenceCleared func()

	// BalloonSpawned fires when a new balloon enters the play area.
	BalloonSpawned func(b Balloon)

	// BalloonRemoved fires when a balloon leaves the live set, whether
	// popped or drifted past the ceiling.
	BalloonRemoved func(id int)

	// CountdownFraction reports remaining/duration in [0,1] while the
	// round countdown is active, and 0 once a session ends.
	CountdownFraction func(f float64)

	// SpawningStarted fires once per spawning session, before the first
	// spawn-interval wait begins.
	SpawningStarted func()

	// RoundStarted fires whenever a new target sequence becomes active.
	RoundStarted func()

	// GameOver fires exactly once per session when health reaches zero,
	// with the final score.
	GameOver func(finalScore int)
}
