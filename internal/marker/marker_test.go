package marker

import "testing"

func TestAddRemoveRoundTrip(t *testing.T) {
	s := NewSet(nil)
	s.Add(1.5)

	if !s.RemoveNearest(1.5, 0.01) {
		t.Fatal("RemoveNearest(1.5) = false, want true")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestRemoveNearestEmpty(t *testing.T) {
	s := NewSet(nil)
	if s.RemoveNearest(1.0, 100) {
		t.Error("RemoveNearest on empty set = true, want false")
	}
}

func TestRemoveNearestThreshold(t *testing.T) {
	s := NewSet([]float64{1.0})

	if s.RemoveNearest(1.2, 0.1) {
		t.Error("RemoveNearest outside threshold = true, want false")
	}
	if s.Len() != 1 {
		t.Errorf("miss mutated the set: Len() = %d, want 1", s.Len())
	}
	if !s.RemoveNearest(1.05, 0.1) {
		t.Error("RemoveNearest within threshold = false, want true")
	}
}

func TestRemoveNearestTieFirstWins(t *testing.T) {
	// Two markers equidistant from 2.0; the first stored one goes.
	s := NewSet([]float64{2.5, 1.5})

	if !s.RemoveNearest(2.0, 1.0) {
		t.Fatal("RemoveNearest = false, want true")
	}
	got := s.Stamps()
	if len(got) != 1 || got[0] != 1.5 {
		t.Errorf("remaining = %v, want [1.5]", got)
	}
}

func TestSortedLeavesStorageOrder(t *testing.T) {
	s := NewSet(nil)
	s.Add(3.0)
	s.Add(1.0)
	s.Add(2.0)

	sorted := s.Sorted()
	if sorted[0] != 1.0 || sorted[1] != 2.0 || sorted[2] != 3.0 {
		t.Errorf("Sorted() = %v, want [1 2 3]", sorted)
	}

	raw := s.Stamps()
	if raw[0] != 3.0 || raw[1] != 1.0 || raw[2] != 2.0 {
		t.Errorf("Stamps() = %v, want insertion order [3 1 2]", raw)
	}
}

func TestDuplicatesKept(t *testing.T) {
	s := NewSet(nil)
	s.Add(1.0)
	s.Add(1.0)

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (duplicates are kept)", s.Len())
	}
}

func TestFootAndKindStrings(t *testing.T) {
	if got := FootRight.String(); got != "right" {
		t.Errorf("FootRight = %q, want %q", got, "right")
	}
	if got := FootLeft.String(); got != "left" {
		t.Errorf("FootLeft = %q, want %q", got, "left")
	}
	if got := KindStep.String(); got != "step" {
		t.Errorf("KindStep = %q, want %q", got, "step")
	}
	if got := KindHalfCycle.String(); got != "half-cycle" {
		t.Errorf("KindHalfCycle = %q, want %q", got, "half-cycle")
	}
}
