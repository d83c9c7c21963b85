package overlap

import (
	"time"

	"github.com/codeGROOVE-dev/meetTZ/pkg/interval"
)

// City is the engine's snapshot of one participant city. Only Timezone
// affects the math; ID, Name, and Country are display identity carried
// through to the per-city breakdown. The caller owns the city lifecycle and
// hands the engine an immutable snapshot per query.
type City struct {
	ID       string
	Name     string
	Country  string
	Timezone string
}

// Query is one engine invocation. SourceDay is any instant inside the
// source-zone calendar day to search; the engine derives the day span from
// it and never reads a wall clock of its own, which keeps results
// deterministic for a given query.
type Query struct {
	SourceDay time.Time
	SourceTZ  string
	Cities    []City
	Duration  time.Duration
	// Step is the slide between candidate starts. Zero means the planner
	// default.
	Step time.Duration
}

// CityAssessment is one city's view of a candidate slot.
type CityAssessment struct {
	LocalStart time.Time
	LocalEnd   time.Time
	CityID     string
	CityName   string
	Abbrev     string
	Band       Band
}

// Slot is a ranked candidate meeting window. Quality is the worst band any
// city lands in, independent of the numeric score: a slot can score poorly
// yet still be comfortable when nobody is outright unfriendly, and both are
// reported. Slots are computed values with no identity; every query
// regenerates them.
type Slot struct {
	Range   interval.Range
	PerCity []CityAssessment
	Score   float64
	Quality Band
}
