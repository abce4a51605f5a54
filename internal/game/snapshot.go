package game

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick            uint64
	Score           int
	Health          int
	Cursor          int
	SequenceLen     int
	LiveBalloons    int
	PoppedBalloons  int
	State           string
	CountdownActive bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	popped := 0
	balloons := g.session.Balloons()
	for _, b := range balloons {
		if b.Popped {
			popped++
		}
	}

	return Snapshot{
		Tick:            g.tickCount,
		Score:           g.session.Score(),
		Health:          g.session.Health(),
		Cursor:          g.session.Cursor(),
		SequenceLen:     len(g.session.Slots()),
		LiveBalloons:    len(balloons),
		PoppedBalloons:  popped,
		State:           g.session.State().String(),
		CountdownActive: g.session.CountdownActive(),
	}
}
