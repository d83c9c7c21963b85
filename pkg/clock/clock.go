// Package clock backs the world-clock and conversion views: time in a
// zone, offset gaps between zones, and wall-clock conversion of a point in
// time. Everything takes the reference instant as an argument so callers
// stay in charge of "now".
package clock

import (
	"fmt"
	"time"

	"github.com/codeGROOVE-dev/meetTZ/pkg/civil"
)

// TimeIn re-expresses an instant in the named zone.
func TimeIn(at time.Time, tz string) (time.Time, error) {
	loc, err := civil.LoadZone(tz)
	if err != nil {
		return time.Time{}, err
	}
	return at.In(loc), nil
}

// Difference renders the offset gap from one zone to another at the given
// instant, e.g. "+13h", "-3h 30m", or "Same time". DST means the answer
// can differ by date, which is why the instant is explicit.
func Difference(at time.Time, fromTZ, toTZ string) (string, error) {
	fromLoc, err := civil.LoadZone(fromTZ)
	if err != nil {
		return "", err
	}
	toLoc, err := civil.LoadZone(toTZ)
	if err != nil {
		return "", err
	}

	_, fromOffset := at.In(fromLoc).Zone()
	_, toOffset := at.In(toLoc).Zone()
	diffMins := (toOffset - fromOffset) / 60
	if diffMins == 0 {
		return "Same time", nil
	}

	sign := "+"
	if diffMins < 0 {
		sign = "-"
		diffMins = -diffMins
	}
	if diffMins%60 == 0 {
		return fmt.Sprintf("%s%dh", sign, diffMins/60), nil
	}
	return fmt.Sprintf("%s%dh %dm", sign, diffMins/60, diffMins%60), nil
}

// Convert interprets a "HH:MM" wall clock in fromTZ on the civil date
// containing day, and re-expresses that instant in each target zone. The
// resolved source instant comes back first so callers can display it too.
func Convert(day time.Time, wallClock, fromTZ string, toTZs []string) (time.Time, []time.Time, error) {
	c, err := civil.ParseClock(wallClock)
	if err != nil {
		return time.Time{}, nil, err
	}
	fromLoc, err := civil.LoadZone(fromTZ)
	if err != nil {
		return time.Time{}, nil, err
	}
	src := civil.At(day, fromLoc, c)

	out := make([]time.Time, 0, len(toTZs))
	for _, tz := range toTZs {
		loc, err := civil.LoadZone(tz)
		if err != nil {
			return time.Time{}, nil, err
		}
		out = append(out, src.In(loc))
	}
	return src, out, nil
}
