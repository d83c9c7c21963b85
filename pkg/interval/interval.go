// Package interval implements the half-open instant ranges the overlap
// engine trades in, plus the set operations over them: pairwise and n-way
// intersection, coalescing, and fixed-duration slicing.
package interval

import (
	"sort"
	"time"
)

// Range is a half-open interval [Start, End) of absolute instants.
// A range whose end does not come after its start is empty and is
// discarded by every operation here rather than propagated.
type Range struct {
	Start time.Time
	End   time.Time
}

// IsValid reports whether the range has positive length.
func (r Range) IsValid() bool {
	return r.End.After(r.Start)
}

// Duration returns the range's length.
func (r Range) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Contains reports whether t falls inside the half-open range.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Intersect returns the overlap of a and b. The boolean is false when the
// ranges do not overlap (touching endpoints count as no overlap).
func Intersect(a, b Range) (Range, bool) {
	start := a.Start
	if b.Start.After(start) {
		start = b.Start
	}
	end := a.End
	if b.End.Before(end) {
		end = b.End
	}
	out := Range{Start: start, End: end}
	return out, out.IsValid()
}

// Merge drops invalid ranges, sorts the rest, and coalesces overlapping or
// touching neighbors, so the result is the minimal set of maximal ranges
// covering the same instants.
func Merge(ranges []Range) []Range {
	valid := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if r.IsValid() {
			valid = append(valid, r)
		}
	}
	if len(valid) == 0 {
		return nil
	}
	sort.Slice(valid, func(i, j int) bool {
		return valid[i].Start.Before(valid[j].Start)
	})

	out := []Range{valid[0]}
	for _, r := range valid[1:] {
		last := &out[len(out)-1]
		if !r.Start.After(last.End) {
			if r.End.After(last.End) {
				last.End = r.End
			}
			continue
		}
		out = append(out, r)
	}
	return out
}

// IntersectSets intersects n groups of ranges: the result covers exactly
// the instants present in at least one range of every group. Each group may
// hold several disjoint ranges, so the fold crosses every accumulator range
// with every range of the next group. Zero groups means there is nothing to
// overlap and yields nil; an accumulator that empties out short-circuits the
// remaining groups.
func IntersectSets(groups [][]Range) []Range {
	if len(groups) == 0 {
		return nil
	}
	acc := Merge(groups[0])
	for _, group := range groups[1:] {
		if len(acc) == 0 {
			return nil
		}
		merged := Merge(group)
		next := make([]Range, 0, len(acc))
		for _, a := range acc {
			for _, b := range merged {
				if out, ok := Intersect(a, b); ok {
					next = append(next, out)
				}
			}
		}
		acc = Merge(next)
	}
	return acc
}

// SliceByDuration enumerates every fixed-length candidate slot that fits
// fully inside one of the given ranges, sliding the cursor by step. Slots
// never span the gap between two ranges. A range shorter than duration
// contributes nothing, and a non-positive duration or step yields nil
// rather than a cursor that cannot advance.
func SliceByDuration(ranges []Range, duration, step time.Duration) []Range {
	if duration <= 0 || step <= 0 {
		return nil
	}
	var slots []Range
	for _, r := range ranges {
		if !r.IsValid() {
			continue
		}
		for cursor := r.Start; !cursor.Add(duration).After(r.End); cursor = cursor.Add(step) {
			slots = append(slots, Range{Start: cursor, End: cursor.Add(duration)})
		}
	}
	return slots
}
