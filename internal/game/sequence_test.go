package game

import (
	"math/rand"
	"testing"
)

func newTestEngine(seed int64) (*SequenceEngine, *[]int, *[]Hue, *int) {
	var doneSlots []int
	var setHues []Hue
	cleared := 0

	e := NewSequenceEngine(
		rand.New(rand.NewSource(seed)),
		func(_ int, h Hue) { setHues = append(setHues, h) },
		func(slot int) { doneSlots = append(doneSlots, slot) },
		func() { cleared++ },
	)
	return e, &doneSlots, &setHues, &cleared
}

func TestSequenceGenerate(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		complete bool
	}{
		{"default length", 3, false},
		{"single slot", 1, false},
		{"zero length is immediately complete", 0, true},
		{"negative length treated as zero", -2, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, _, setHues, _ := newTestEngine(1)
			e.Generate(tc.length)

			wantLen := tc.length
			if wantLen < 0 {
				wantLen = 0
			}
			if e.Len() != wantLen {
				t.Errorf("Len() = %d, expected %d", e.Len(), wantLen)
			}
			if e.Cursor() != 0 {
				t.Errorf("Cursor() = %d, expected 0 after generate", e.Cursor())
			}
			if e.IsComplete() != tc.complete {
				t.Errorf("IsComplete() = %v, expected %v", e.IsComplete(), tc.complete)
			}
			if len(*setHues) != wantLen {
				t.Errorf("SlotColorSet fired %d times, expected %d", len(*setHues), wantLen)
			}
		})
	}
}

func TestSequenceSlotOrderMatchesDrawOrder(t *testing.T) {
	e, _, setHues, _ := newTestEngine(42)
	e.Generate(5)

	slots := e.Slots()
	if len(slots) != 5 {
		t.Fatalf("Slots() len = %d, expected 5", len(slots))
	}
	for i, slot := range slots {
		if slot.Hue != (*setHues)[i] {
			t.Errorf("slot %d hue %v does not match draw order hue %v", i, slot.Hue, (*setHues)[i])
		}
		if slot.Done {
			t.Errorf("slot %d marked done before any validation", i)
		}
	}
}

func TestSequenceValidate(t *testing.T) {
	e, doneSlots, _, _ := newTestEngine(7)
	e.Generate(3)
	slots := e.Slots()

	// Mismatch does not advance the cursor
	wrong := otherHue(slots[0].Hue)
	if e.Validate(wrong) {
		t.Error("Validate() should return false for a mismatched hue")
	}
	if e.Cursor() != 0 {
		t.Errorf("Cursor() = %d after mismatch, expected 0", e.Cursor())
	}

	// Matches advance by exactly one each
	for i, slot := range slots {
		if !e.Validate(slot.Hue) {
			t.Fatalf("Validate(%v) at slot %d should succeed", slot.Hue, i)
		}
		if e.Cursor() != i+1 {
			t.Errorf("Cursor() = %d after match %d, expected %d", e.Cursor(), i, i+1)
		}
	}

	if !e.IsComplete() {
		t.Error("IsComplete() should be true after matching every slot")
	}
	if len(*doneSlots) != 3 {
		t.Errorf("SlotCompleted fired %d times, expected 3", len(*doneSlots))
	}

	// Validate past completion is bounds-checked, not a panic
	if e.Validate(slots[0].Hue) {
		t.Error("Validate() after completion should return false")
	}
}

func TestSequenceClear(t *testing.T) {
	e, _, _, cleared := newTestEngine(3)
	e.Generate(3)
	slots := e.Slots()
	e.Validate(slots[0].Hue)

	e.Clear()

	if e.IsComplete() {
		t.Error("IsComplete() should be false after Clear")
	}
	if e.Cursor() != 0 {
		t.Errorf("Cursor() = %d after Clear, expected 0", e.Cursor())
	}
	if e.Len() != 0 {
		t.Errorf("Len() = %d after Clear, expected 0", e.Len())
	}
	if *cleared != 1 {
		t.Errorf("SequenceCleared fired %d times, expected 1", *cleared)
	}

	// Clearing an already-empty engine fires nothing
	e.Clear()
	if *cleared != 1 {
		t.Errorf("SequenceCleared fired %d times after double clear, expected 1", *cleared)
	}

	// Validate on an empty engine is a safe no-op
	if e.Validate(HueRed) {
		t.Error("Validate() on a cleared engine should return false")
	}
}

func TestSequenceGenerateReplacesWholesale(t *testing.T) {
	e, _, _, cleared := newTestEngine(9)
	e.Generate(3)
	slots := e.Slots()
	e.Validate(slots[0].Hue)

	e.Generate(4)

	if e.Cursor() != 0 {
		t.Errorf("Cursor() = %d after regeneration, expected 0", e.Cursor())
	}
	if e.Len() != 4 {
		t.Errorf("Len() = %d after regeneration, expected 4", e.Len())
	}
	if *cleared != 1 {
		t.Errorf("regeneration should clear the previous sequence once, cleared %d times", *cleared)
	}
}

func TestRandomHueWithinSet(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		h := RandomHue(rng)
		if h < HueRed || h > HuePink {
			t.Fatalf("RandomHue() = %v, outside the closed hue set", h)
		}
	}
}

func TestHueRGBTotal(t *testing.T) {
	for _, h := range AllHues {
		r, g, b := h.RGB()
		if r == 0 && g == 0 && b == 0 {
			t.Errorf("Hue %v maps to black, expected a display color", h)
		}
		if h.String() == "unknown" {
			t.Errorf("Hue %v has no name", h)
		}
	}
}

// otherHue returns a hue different from h.
func otherHue(h Hue) Hue {
	return AllHues[(int(h)+1)%HueCount]
}
