package game

import "math/rand"

// SequenceSlot is one position of the target sequence as shown to the
// player: its hue and whether it has already been matched.
type SequenceSlot struct {
	Hue  Hue
	Done bool
}

// SequenceEngine owns the target color sequence and the player's
// progress through it. Once generated, a sequence is never reordered or
// mutated; it is only consumed by advancing the cursor, and replaced
// wholesale by the next Generate.
type SequenceEngine struct {
	rng    *rand.Rand
	hues   []Hue
	cursor int
	active bool // false between Clear and the next Generate

	onSlotColorSet func(slot int, hue Hue)
	onSlotDone     func(slot int)
	onCleared      func()
}

// NewSequenceEngine creates an engine drawing from rng, with optional
// per-slot presentation hooks.
func NewSequenceEngine(rng *rand.Rand, onSlotColorSet func(int, Hue), onSlotDone func(int), onCleared func()) *SequenceEngine {
	return &SequenceEngine{
		rng:            rng,
		onSlotColorSet: onSlotColorSet,
		onSlotDone:     onSlotDone,
		onCleared:      onCleared,
	}
}

// Generate discards any previous sequence and draws length independent
// uniform-random hues (with replacement; repeats are allowed). Slot i
// always corresponds to sequence element i. A length of zero yields an
// immediately-complete sequence.
func (e *SequenceEngine) Generate(length int) {
	e.Clear()
	if length < 0 {
		length = 0
	}
	e.active = true
	e.hues = make([]Hue, 0, length)
	for i := 0; i < length; i++ {
		h := RandomHue(e.rng)
		e.hues = append(e.hues, h)
		if e.onSlotColorSet != nil {
			e.onSlotColorSet(i, h)
		}
	}
}

// Validate submits a hue against the current cursor position.
// On a match the cursor advances by one and the slot is marked
// completed; on a mismatch nothing changes. Calls after completion or
// with no sequence present return false rather than panicking.
func (e *SequenceEngine) Validate(h Hue) bool {
	if e.cursor >= len(e.hues) {
		return false
	}
	if e.hues[e.cursor] != h {
		return false
	}
	if e.onSlotDone != nil {
		e.onSlotDone(e.cursor)
	}
	e.cursor++
	return true
}

// IsComplete reports whether every element of a generated sequence has
// been matched. A cleared engine is never complete.
func (e *SequenceEngine) IsComplete() bool {
	return e.active && e.cursor == len(e.hues)
}

// Clear discards the sequence, destroys slot visuals, and resets the
// cursor to zero.
func (e *SequenceEngine) Clear() {
	had := e.active
	e.hues = nil
	e.cursor = 0
	e.active = false
	if had && e.onCleared != nil {
		e.onCleared()
	}
}

// Cursor returns how many leading elements have been matched.
func (e *SequenceEngine) Cursor() int {
	return e.cursor
}

// Len returns the sequence length.
func (e *SequenceEngine) Len() int {
	return len(e.hues)
}

// Slots returns a copy of the sequence in display order.
func (e *SequenceEngine) Slots() []SequenceSlot {
	slots := make([]SequenceSlot, len(e.hues))
	for i, h := range e.hues {
		slots[i] = SequenceSlot{Hue: h, Done: i < e.cursor}
	}
	return slots
}
