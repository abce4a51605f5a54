package game

import "testing"

func TestScoreTracker(t *testing.T) {
	var notified []int
	s := NewScoreTracker(func(v int) { notified = append(notified, v) })

	if s.Value() != 0 {
		t.Errorf("fresh tracker Value() = %d, expected 0", s.Value())
	}

	s.Add(1)
	s.Add(10)
	s.Set(5)
	s.Reset()

	want := []int{1, 11, 5, 0}
	if len(notified) != len(want) {
		t.Fatalf("notified %d times, expected %d", len(notified), len(want))
	}
	for i, v := range want {
		if notified[i] != v {
			t.Errorf("notification %d = %d, expected %d", i, notified[i], v)
		}
	}
}

func TestScoreTrackerNilCallback(t *testing.T) {
	s := NewScoreTracker(nil)
	s.Add(3)
	if s.Value() != 3 {
		t.Errorf("Value() = %d, expected 3", s.Value())
	}
}

func TestHealthTrackerNeverNegative(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		deltas []int
		want   int
	}{
		{"simple damage", 3, []int{-1}, 2},
		{"damage to zero", 3, []int{-1, -1, -1}, 0},
		{"overkill clamps at zero", 3, []int{-5}, 0},
		{"repeated damage at zero stays zero", 1, []int{-1, -1, -1}, 0},
		{"heal after damage", 3, []int{-2, 1}, 2},
		{"heal from zero", 2, []int{-4, 3}, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHealthTracker(nil)
			h.ResetTo(tc.start)
			for _, d := range tc.deltas {
				h.Change(d)
				if h.Value() < 0 {
					t.Fatalf("Value() = %d went negative after delta %d", h.Value(), d)
				}
			}
			if h.Value() != tc.want {
				t.Errorf("Value() = %d, expected %d", h.Value(), tc.want)
			}
		})
	}
}

func TestHealthTrackerNotifications(t *testing.T) {
	var notified []int
	h := NewHealthTracker(func(v int) { notified = append(notified, v) })

	h.ResetTo(3)
	h.Change(-1)
	h.Change(-5)

	want := []int{3, 2, 0}
	if len(notified) != len(want) {
		t.Fatalf("notified %d times, expected %d", len(notified), len(want))
	}
	for i, v := range want {
		if notified[i] != v {
			t.Errorf("notification %d = %d, expected %d", i, notified[i], v)
		}
	}
}
