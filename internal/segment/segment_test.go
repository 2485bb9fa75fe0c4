package segment

import "testing"

func TestDeriveCount(t *testing.T) {
	// Markers [2 5 8] over a stream ending at 10: leading boundary is
	// synthesized at 0 and a trailing segment reaches the stream end.
	segs := Derive([]float64{2, 5, 8}, 10)

	if len(segs) != 4 {
		t.Fatalf("got %d segments, want 4", len(segs))
	}

	want := []Segment{
		{Start: 0, End: 2, Ordinal: 1},
		{Start: 2, End: 5, Ordinal: 2},
		{Start: 5, End: 8, Ordinal: 3},
		{Start: 8, End: 10, Ordinal: 4},
	}
	for i, w := range want {
		if segs[i] != w {
			t.Errorf("segs[%d] = %+v, want %+v", i, segs[i], w)
		}
	}
}

func TestDeriveEmpty(t *testing.T) {
	if segs := Derive(nil, 10); segs != nil {
		t.Errorf("Derive(nil) = %v, want nil", segs)
	}
}

func TestDeriveMarkerAtZero(t *testing.T) {
	segs := Derive([]float64{0, 4}, 10)

	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	if segs[0].Start != 0 || segs[0].End != 4 {
		t.Errorf("segs[0] = %+v, want [0,4)", segs[0])
	}
}

func TestDeriveLastMarkerAtEnd(t *testing.T) {
	segs := Derive([]float64{5, 10}, 10)

	// No trailing segment when the last marker already sits at the end.
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	if last := segs[len(segs)-1]; last.End != 10 {
		t.Errorf("last.End = %v, want 10", last.End)
	}
}

func TestSegmentsTile(t *testing.T) {
	segs := Derive([]float64{2, 5, 8}, 10)

	// Every boundary-exact time belongs to exactly one segment.
	for _, probe := range []float64{0, 1.9, 2, 5, 8, 9.99} {
		n := 0
		for _, s := range segs {
			if s.Contains(probe) {
				n++
			}
		}
		if n != 1 {
			t.Errorf("time %v contained in %d segments, want 1", probe, n)
		}
	}

	// The stream end itself falls outside all half-open segments.
	if got := Active(segs, 10); got != nil {
		t.Errorf("Active(10) = %+v, want nil", got)
	}
}

func TestSplitAtMarker(t *testing.T) {
	seg := Segment{Start: 3, End: 4, Ordinal: 2}

	first, second := Split(seg, []float64{3.2, 3.6})
	if first.End != 3.2 || second.Start != 3.2 {
		t.Errorf("split at %v/%v, want first interior marker 3.2", first.End, second.Start)
	}
	if first.Ordinal != 2 || second.Ordinal != 2 {
		t.Errorf("ordinals = %d/%d, want 2/2", first.Ordinal, second.Ordinal)
	}
}

func TestSplitAtMidpoint(t *testing.T) {
	seg := Segment{Start: 3, End: 4, Ordinal: 1}

	// Markers on the boundaries are not interior and do not count.
	first, second := Split(seg, []float64{3, 4, 7})
	if first.End != 3.5 || second.Start != 3.5 {
		t.Errorf("split at %v/%v, want midpoint 3.5", first.End, second.Start)
	}
}

func TestActive(t *testing.T) {
	segs := Derive([]float64{2, 5}, 10)

	got := Active(segs, 3)
	if got == nil || got.Ordinal != 2 {
		t.Fatalf("Active(3) = %+v, want segment 2", got)
	}
	if Active(segs, -1) != nil {
		t.Error("Active(-1) should be nil")
	}
}
