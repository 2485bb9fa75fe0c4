// Package timeseries holds the per-foot sensor sample tables. A Series is
// produced once by the CSV loader and read-only afterwards; display, marker
// capture and export all share the same table.
package timeseries

import "math"

// Series is one foot's ordered sample table. Times holds the VideoTime axis
// in seconds from the first retained sample (always starting at 0), Rows the
// channel values parallel to Times.
type Series struct {
	Columns []string
	Times   []float64
	Rows    [][]float64

	// SampleRate is the sampling frequency declared in the file header,
	// in Hz, or 0 when the header does not declare one.
	SampleRate int
}

// Len returns the number of samples.
func (s *Series) Len() int { return len(s.Times) }

// End returns the last sample's time, or 0 for an empty series.
func (s *Series) End() float64 {
	if len(s.Times) == 0 {
		return 0
	}
	return s.Times[len(s.Times)-1]
}

// NearestIndex returns the index of the sample closest in time to t.
// Ties go to the earlier sample. Returns -1 for an empty series.
func (s *Series) NearestIndex(t float64) int {
	n := len(s.Times)
	if n == 0 {
		return -1
	}
	// Binary search for the insertion point, then compare neighbors.
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		if s.Times[mid] < t {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == 0 {
		return 0
	}
	if lo == n {
		return n - 1
	}
	if math.Abs(t-s.Times[lo-1]) <= math.Abs(s.Times[lo]-t) {
		return lo - 1
	}
	return lo
}

// NearestTime returns the VideoTime of the sample closest to t.
func (s *Series) NearestTime(t float64) float64 {
	i := s.NearestIndex(t)
	if i < 0 {
		return 0
	}
	return s.Times[i]
}

// Slice returns a new Series restricted to samples with start <= time < end.
// The backing slices are shared with the parent; callers treat both as
// read-only.
func (s *Series) Slice(start, end float64) *Series {
	lo := lowerBound(s.Times, start)
	hi := lowerBound(s.Times, end)
	return &Series{
		Columns:    s.Columns,
		Times:      s.Times[lo:hi],
		Rows:       s.Rows[lo:hi],
		SampleRate: s.SampleRate,
	}
}

// ColumnIndex returns the position of the named channel, or -1.
func (s *Series) ColumnIndex(name string) int {
	for i, c := range s.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

func lowerBound(xs []float64, t float64) int {
	lo, hi := 0, len(xs)
	for lo < hi {
		mid := (lo + hi) / 2
		if xs[mid] < t {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
