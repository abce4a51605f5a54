package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionSkip) {
		t.Error("fresh frame should have no actions")
	}

	f.Set(ActionSkip)
	f.AddClick(5, 7)
	f.HueKey = 3

	if !f.Has(ActionSkip) {
		t.Error("Set action not reported by Has")
	}
	if !f.Has(ActionTap) {
		t.Error("AddClick should also set ActionTap")
	}
	if len(f.Clicks) != 1 || f.Clicks[0] != (Click{X: 5, Y: 7}) {
		t.Errorf("Clicks = %v, expected one click at (5,7)", f.Clicks)
	}

	f.Clear()
	if f.Has(ActionSkip) || f.Has(ActionTap) || len(f.Clicks) != 0 || f.HueKey != 0 {
		t.Error("Clear should reset actions, clicks, and the hue key")
	}
}

func TestInputFrameSetOnZeroValue(t *testing.T) {
	var f InputFrame // nil Actions map
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on a zero-value frame should allocate the map")
	}
}

func TestActionString(t *testing.T) {
	actions := []Action{ActionNone, ActionTap, ActionSkip, ActionConfirm,
		ActionBack, ActionRestart, ActionQuit, ActionPause}
	seen := map[string]bool{}
	for _, a := range actions {
		name := a.String()
		if name == "Unknown" {
			t.Errorf("action %d has no name", a)
		}
		if seen[name] {
			t.Errorf("duplicate action name %q", name)
		}
		seen[name] = true
	}
}
