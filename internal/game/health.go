package game

// HealthTracker holds the current session health.
// The stored value is floor-clamped at zero on every mutation; there is
// no ceiling. Every mutation synchronously invokes the display callback,
// if set.
type HealthTracker struct {
	value    int
	onChange func(int)
}

// NewHealthTracker creates a tracker with an optional display callback.
func NewHealthTracker(onChange func(int)) *HealthTracker {
	return &HealthTracker{onChange: onChange}
}

// Change adjusts health by delta. Any sign is accepted.
func (t *HealthTracker) Change(delta int) {
	t.Set(t.value + delta)
}

// Set replaces health with max(0, value).
func (t *HealthTracker) Set(value int) {
	if value < 0 {
		value = 0
	}
	t.value = value
	t.notify()
}

// ResetTo restores health to the configured starting value.
func (t *HealthTracker) ResetTo(startingValue int) {
	t.Set(startingValue)
}

// Value returns the current health.
func (t *HealthTracker) Value() int {
	return t.value
}

func (t *HealthTracker) notify() {
	if t.onChange != nil {
		t.onChange(t.value)
	}
}
