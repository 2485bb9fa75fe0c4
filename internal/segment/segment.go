// Package segment derives labeled time intervals from sorted marker lists.
// The same derivation backs on-screen step highlighting and file export, so
// it stays a pure function of its inputs.
package segment

// A Segment is one derived interval with its 1-based ordinal label. Intervals
// are half-open: a time t belongs to the segment when Start <= t < End.
type Segment struct {
	Start   float64
	End     float64
	Ordinal int
}

// Contains reports whether t falls inside the segment's half-open range.
func (s Segment) Contains(t float64) bool {
	return t >= s.Start && t < s.End
}

// Derive turns an ascending marker list into the ordered segments tiling
// [0, streamEnd]. An empty marker list yields no segments at all. A boundary
// at 0 is synthesized when the first marker lies after the stream start, and
// a trailing segment is appended when the last marker lies before streamEnd.
func Derive(sorted []float64, streamEnd float64) []Segment {
	if len(sorted) == 0 {
		return nil
	}

	bounds := sorted
	if bounds[0] > 0 {
		bounds = append([]float64{0}, bounds...)
	}

	var segs []Segment
	for i := 0; i+1 < len(bounds); i++ {
		segs = append(segs, Segment{
			Start:   bounds[i],
			End:     bounds[i+1],
			Ordinal: i + 1,
		})
	}
	if last := bounds[len(bounds)-1]; last < streamEnd {
		segs = append(segs, Segment{
			Start:   last,
			End:     streamEnd,
			Ordinal: len(bounds),
		})
	}
	return segs
}

// Split divides a step segment into its two half-cycle parts. The cut point
// is the first half-cycle marker strictly inside the segment; markers after
// the first interior one are ignored. Without an interior marker the segment
// splits at its midpoint.
func Split(seg Segment, halvesSorted []float64) (first, second Segment) {
	cut := (seg.Start + seg.End) / 2
	for _, h := range halvesSorted {
		if h > seg.Start && h < seg.End {
			cut = h
			break
		}
	}
	first = Segment{Start: seg.Start, End: cut, Ordinal: seg.Ordinal}
	second = Segment{Start: cut, End: seg.End, Ordinal: seg.Ordinal}
	return first, second
}

// Active returns the segment containing t, or nil when t falls outside all
// derived segments.
func Active(segs []Segment, t float64) *Segment {
	for i := range segs {
		if segs[i].Contains(t) {
			return &segs[i]
		}
	}
	return nil
}
