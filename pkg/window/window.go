// Package window builds a city's local-time windows as absolute ranges and
// maps them onto another zone's calendar day. The builder goes through
// pkg/civil for every local-to-instant conversion, so a window on a
// daylight-saving transition day has whatever absolute length the zone's
// rules dictate rather than an assumed fixed one.
package window

import (
	"time"

	"github.com/codeGROOVE-dev/meetTZ/pkg/civil"
	"github.com/codeGROOVE-dev/meetTZ/pkg/interval"
)

// Build returns the absolute range covering the local window
// [startLocal, endLocal) on the civil date containing day in loc. An end at
// or before the start means the window crosses midnight, and the end rolls
// to the next civil day in that zone.
func Build(day time.Time, loc *time.Location, startLocal, endLocal civil.Clock) interval.Range {
	start := civil.At(day, loc, startLocal)
	end := civil.At(day, loc, endLocal)
	if !end.After(start) {
		end = civil.At(day.In(loc).AddDate(0, 0, 1), loc, endLocal)
	}
	return interval.Range{Start: start, End: end}
}

// MapToSourceDay expresses the city-local window [startLocal, endLocal) as
// ranges clipped to the absolute 24h span of sourceDay's calendar day in
// srcLoc. The city's civil day rarely lines up with the source day, so a
// single local window can surface as zero, one, or two disjoint fragments;
// the span touches at most two consecutive city-local civil dates, and a
// window is built for each.
func MapToSourceDay(cityLoc, srcLoc *time.Location, sourceDay time.Time, startLocal, endLocal civil.Clock) []interval.Range {
	dayStart := civil.StartOfDay(sourceDay, srcLoc)
	span := interval.Range{Start: dayStart, End: dayStart.Add(24 * time.Hour)}

	first := civil.StartOfDay(span.Start, cityLoc)
	second := civil.StartOfDay(span.End.Add(-time.Nanosecond), cityLoc)

	localDays := []time.Time{first}
	if !second.Equal(first) {
		localDays = append(localDays, second)
	}

	var out []interval.Range
	for _, localDay := range localDays {
		w := Build(localDay, cityLoc, startLocal, endLocal)
		if clipped, ok := interval.Intersect(w, span); ok {
			out = append(out, clipped)
		}
	}
	return out
}
