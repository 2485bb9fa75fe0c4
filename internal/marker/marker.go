// Package marker maintains the per-foot gait event annotations. A Set keeps
// its timestamps in insertion order: the operator may click markers in any
// order, so consumers sort on read instead of the set keeping itself sorted.
// Duplicates are allowed by the same contract.
package marker

import (
	"math"
	"sort"
)

// Foot identifies which sensor stream a marker set annotates.
type Foot int

const (
	FootRight Foot = iota
	FootLeft
)

func (f Foot) String() string {
	if f == FootLeft {
		return "left"
	}
	return "right"
}

// Kind distinguishes step boundaries from half-cycle boundaries.
type Kind int

const (
	KindStep Kind = iota
	KindHalfCycle
)

func (k Kind) String() string {
	if k == KindHalfCycle {
		return "half-cycle"
	}
	return "step"
}

// Set holds one foot's markers of one kind, as data-time seconds.
type Set struct {
	stamps []float64
}

// NewSet builds a set from previously persisted timestamps, preserving their
// stored order.
func NewSet(stamps []float64) *Set {
	return &Set{stamps: append([]float64(nil), stamps...)}
}

// Len returns the number of markers.
func (s *Set) Len() int { return len(s.stamps) }

// Add appends a marker timestamp. No sorting, no deduplication, no bounds
// check: the value is stored exactly as captured.
func (s *Set) Add(t float64) {
	s.stamps = append(s.stamps, t)
}

// RemoveNearest removes the single marker closest to t if it lies within
// threshold, and reports whether anything was removed. The first marker at
// the minimum distance wins on ties. A miss leaves the set unchanged.
func (s *Set) RemoveNearest(t, threshold float64) bool {
	best := -1
	bestDist := math.Inf(1)
	for i, m := range s.stamps {
		d := math.Abs(m - t)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	if best < 0 || bestDist > threshold {
		return false
	}
	s.stamps = append(s.stamps[:best], s.stamps[best+1:]...)
	return true
}

// Sorted returns an ascending copy of the markers. The underlying storage
// order is never touched.
func (s *Set) Sorted() []float64 {
	out := append([]float64(nil), s.stamps...)
	sort.Float64s(out)
	return out
}

// Stamps returns a copy of the markers in insertion order, for persistence.
func (s *Set) Stamps() []float64 {
	return append([]float64(nil), s.stamps...)
}

// Clear removes all markers.
func (s *Set) Clear() {
	s.stamps = s.stamps[:0]
}
