// Package civil wraps IANA-timezone-aware civil time conversion.
// All engine math runs on absolute instants; these helpers are the only
// place wall-clock times are interpreted or rendered, so daylight-saving
// rules are applied in exactly one spot.
package civil

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	// Fall back to the embedded zone database when the host has none.
	_ "time/tzdata"
)

// Clock is a wall-clock time of day without a date or zone.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses a 24-hour "HH:MM" string.
func ParseClock(s string) (Clock, error) {
	before, after, found := strings.Cut(s, ":")
	if !found {
		return Clock{}, fmt.Errorf("civil: malformed clock %q", s)
	}
	h, err := strconv.Atoi(before)
	if err != nil {
		return Clock{}, fmt.Errorf("civil: malformed clock %q: %w", s, err)
	}
	m, err := strconv.Atoi(after)
	if err != nil {
		return Clock{}, fmt.Errorf("civil: malformed clock %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return Clock{}, fmt.Errorf("civil: clock %q out of range", s)
	}
	return Clock{Hour: h, Minute: m}, nil
}

// String renders the clock back as "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// LoadZone resolves an IANA zone name. Unknown zones fail fast; callers
// must never be handed a silent UTC fallback, since plausible-looking
// wrong times are worse than a visible failure.
func LoadZone(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("civil: loading zone %q: %w", name, err)
	}
	return loc, nil
}

// StartOfDay returns local midnight of the civil date containing t in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// At returns the instant at which the wall clock in loc reads c on the
// civil date containing day. Times falling inside a DST gap or overlap
// resolve the way time.Date resolves them.
func At(day time.Time, loc *time.Location, c Clock) time.Time {
	y, m, d := day.In(loc).Date()
	return time.Date(y, m, d, c.Hour, c.Minute, 0, 0, loc)
}

// Abbrev returns the short zone name in effect at t, e.g. "EST" or "JST".
// Zones without an abbreviation yield their numeric form, e.g. "+0530".
func Abbrev(t time.Time, loc *time.Location) string {
	name, _ := t.In(loc).Zone()
	return name
}

// OffsetLabel renders the UTC offset in effect at t, e.g. "UTC+9",
// "UTC-5" or "UTC+5:30".
func OffsetLabel(t time.Time, loc *time.Location) string {
	_, secs := t.In(loc).Zone()
	mins := secs / 60
	sign := "+"
	if mins < 0 {
		sign = "-"
		mins = -mins
	}
	if mins%60 == 0 {
		return fmt.Sprintf("UTC%s%d", sign, mins/60)
	}
	return fmt.Sprintf("UTC%s%d:%02d", sign, mins/60, mins%60)
}
