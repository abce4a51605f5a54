package game

// ScoreTracker holds the current session score.
// Mutations are unconstrained integers; negative deltas are permitted.
// Every mutation synchronously invokes the display callback, if set.
type ScoreTracker struct {
	value    int
	onChange func(int)
}

// NewScoreTracker creates a tracker with an optional display callback.
func NewScoreTracker(onChange func(int)) *ScoreTracker {
	return &ScoreTracker{onChange: onChange}
}

// Add adjusts the score by amount.
func (t *ScoreTracker) Add(amount int) {
	t.value += amount
	t.notify()
}

// Set replaces the score.
func (t *ScoreTracker) Set(value int) {
	t.value = value
	t.notify()
}

// Reset returns the score to zero.
func (t *ScoreTracker) Reset() {
	t.Set(0)
}

// Value returns the current score.
func (t *ScoreTracker) Value() int {
	return t.value
}

func (t *ScoreTracker) notify() {
	if t.onChange != nil {
		t.onChange(t.value)
	}
}
