package overlap

// Band classifies how acceptable a local clock hour is for a meeting
// participant in a given city.
type Band int

// Bands, ordered from best to worst so the worst across a group is the max.
const (
	Comfortable Band = iota
	Borderline
	Unfriendly
)

// Local clock-hour boundaries for the bands. Classify is the single place
// these thresholds live; the scorer, formatter, and timeline all go through
// it rather than re-deriving the cutoffs.
const (
	comfortStartHour  = 9
	comfortEndHour    = 17
	shoulderStartHour = 7
	shoulderEndHour   = 21

	// Starts before 08:00 or after 20:00 draw an extra penalty even when
	// the hour is nominally within a shoulder.
	extremeEarlyHour = 8
	extremeLateHour  = 20
)

// Classify returns the band for a local clock hour: comfortable within
// business hours 09-17, borderline in the 07-09 and 17-21 shoulders,
// unfriendly everywhere else.
func Classify(hour int) Band {
	switch {
	case hour >= comfortStartHour && hour < comfortEndHour:
		return Comfortable
	case hour >= shoulderStartHour && hour < comfortStartHour,
		hour >= comfortEndHour && hour < shoulderEndHour:
		return Borderline
	default:
		return Unfriendly
	}
}

// Worse returns the stricter of two bands.
func Worse(a, b Band) Band {
	if a > b {
		return a
	}
	return b
}

func (b Band) String() string {
	switch b {
	case Comfortable:
		return "comfortable"
	case Borderline:
		return "borderline"
	case Unfriendly:
		return "unfriendly"
	default:
		return "unknown"
	}
}
