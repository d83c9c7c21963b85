// Package overlap implements the multi-timezone meeting window engine: it
// builds each city's eligible hours for a calendar day, intersects them
// across all cities, slices the result into fixed-duration candidates, and
// ranks the candidates by how comfortable they are for every participant.
package overlap

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/meetTZ/pkg/civil"
	"github.com/codeGROOVE-dev/meetTZ/pkg/interval"
	"github.com/codeGROOVE-dev/meetTZ/pkg/window"
)

// Defaults for the tunable knobs. Five-minute steps keep candidates dense
// without flooding the ranking, and five results keep suggestions
// actionable rather than exhaustive.
const (
	DefaultStep       = 5 * time.Minute
	DefaultMaxResults = 5
)

// Scoring weights. The magnitudes are heuristic, not load-bearing; what
// matters is the ordering they induce: one unfriendly participant sinks a
// slot well below all-borderline alternatives, and starts at extreme edge
// hours are pushed further down even inside a shoulder.
const (
	comfortableWeight  = 2
	borderlineWeight   = 1
	unfriendlyWeight   = -5
	extremeHourPenalty = -3
)

// ResultCache memoizes ranked slot lists by query fingerprint. The engine
// is referentially transparent, so a hit can be replayed verbatim.
type ResultCache interface {
	Get(key string) ([]Slot, bool)
	Set(key string, slots []Slot)
}

// Option configures a Planner.
type Option func(*Planner)

// WithStep overrides the default slide between candidate starts.
func WithStep(step time.Duration) Option {
	return func(p *Planner) {
		p.step = step
	}
}

// WithMaxResults overrides how many ranked slots Suggest returns.
func WithMaxResults(n int) Option {
	return func(p *Planner) {
		p.maxResults = n
	}
}

// WithCache attaches a memo cache for ranked results.
func WithCache(c ResultCache) Option {
	return func(p *Planner) {
		p.cache = c
	}
}

// Planner computes ranked meeting windows. It holds only configuration and
// an optional memo cache, so a single Planner is safe to share across
// concurrent callers.
type Planner struct {
	logger     *slog.Logger
	cache      ResultCache
	step       time.Duration
	maxResults int
}

// New returns a Planner with the default logger.
func New(opts ...Option) *Planner {
	return NewWithLogger(slog.Default(), opts...)
}

// NewWithLogger returns a Planner that logs through the given logger.
func NewWithLogger(logger *slog.Logger, opts ...Option) *Planner {
	p := &Planner{
		logger:     logger,
		step:       DefaultStep,
		maxResults: DefaultMaxResults,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Suggest returns ranked meeting windows for the query, best first. An
// empty city set, a non-positive duration, or a day without joint
// eligibility all yield an empty list and no error; an unknown timezone
// fails fast instead of being masked.
func (p *Planner) Suggest(q Query) ([]Slot, error) {
	if len(q.Cities) == 0 {
		return nil, nil
	}
	step := q.Step
	if step <= 0 {
		step = p.step
	}

	srcLoc, err := civil.LoadZone(q.SourceTZ)
	if err != nil {
		return nil, err
	}
	dayStart := civil.StartOfDay(q.SourceDay, srcLoc)

	var key string
	if p.cache != nil {
		key = fingerprint(q, dayStart, step, p.maxResults)
		if slots, ok := p.cache.Get(key); ok {
			p.logger.Debug("suggestion cache hit", "key", key)
			return slots, nil
		}
	}

	groups := make([][]interval.Range, 0, len(q.Cities))
	locs := make(map[string]*time.Location, len(q.Cities))
	for _, city := range q.Cities {
		loc, err := civil.LoadZone(city.Timezone)
		if err != nil {
			return nil, fmt.Errorf("overlap: city %q: %w", city.ID, err)
		}
		locs[city.ID] = loc
		groups = append(groups, eligibleWindows(loc, srcLoc, q.SourceDay))
	}

	free := interval.IntersectSets(groups)
	candidates := interval.SliceByDuration(free, q.Duration, step)
	slots := p.rank(candidates, q.Cities, locs)

	p.logger.Debug("suggestions computed",
		"cities", len(q.Cities),
		"free_ranges", len(free),
		"candidates", len(candidates),
		"returned", len(slots))

	if p.cache != nil {
		p.cache.Set(key, slots)
	}
	return slots, nil
}

// eligibleWindows returns the merged ranges during the source day when the
// city is at least borderline: the 09-17 business window plus the 07-09 and
// 17-21 shoulders, each mapped onto the source day. Merging keeps the group
// maximal so adjacent bands never split an intersection.
func eligibleWindows(cityLoc, srcLoc *time.Location, sourceDay time.Time) []interval.Range {
	windows := [][2]civil.Clock{
		{{Hour: shoulderStartHour}, {Hour: comfortStartHour}},
		{{Hour: comfortStartHour}, {Hour: comfortEndHour}},
		{{Hour: comfortEndHour}, {Hour: shoulderEndHour}},
	}
	var out []interval.Range
	for _, w := range windows {
		out = append(out, window.MapToSourceDay(cityLoc, srcLoc, sourceDay, w[0], w[1])...)
	}
	return interval.Merge(out)
}

// rank scores every candidate, orders by score descending with earlier
// starts winning ties, and caps the list.
func (p *Planner) rank(candidates []interval.Range, cities []City, locs map[string]*time.Location) []Slot {
	slots := make([]Slot, 0, len(candidates))
	for _, c := range candidates {
		slots = append(slots, assess(c, cities, locs))
	}
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Score != slots[j].Score {
			return slots[i].Score > slots[j].Score
		}
		return slots[i].Range.Start.Before(slots[j].Range.Start)
	})
	if len(slots) > p.maxResults {
		slots = slots[:p.maxResults]
	}
	return slots
}

// assess classifies one candidate against every city and derives the
// aggregate score (normalized by city count so different group sizes stay
// comparable) and the worst-case quality.
func assess(r interval.Range, cities []City, locs map[string]*time.Location) Slot {
	slot := Slot{
		Range:   r,
		Quality: Comfortable,
		PerCity: make([]CityAssessment, 0, len(cities)),
	}
	total := 0
	for _, city := range cities {
		loc := locs[city.ID]
		localStart := r.Start.In(loc)
		band := Classify(localStart.Hour())
		switch band {
		case Comfortable:
			total += comfortableWeight
		case Borderline:
			total += borderlineWeight
		case Unfriendly:
			total += unfriendlyWeight
		}
		if h := localStart.Hour(); h < extremeEarlyHour || h > extremeLateHour {
			total += extremeHourPenalty
		}
		slot.Quality = Worse(slot.Quality, band)
		slot.PerCity = append(slot.PerCity, CityAssessment{
			CityID:     city.ID,
			CityName:   city.Name,
			LocalStart: localStart,
			LocalEnd:   r.End.In(loc),
			Band:       band,
			Abbrev:     civil.Abbrev(r.Start, loc),
		})
	}
	slot.Score = float64(total) / float64(len(cities))
	return slot
}

// fingerprint hashes every input Suggest's output depends on. The day is
// normalized to its source-zone midnight so any anchor instant within the
// same day maps to the same key.
func fingerprint(q Query, dayStart time.Time, step time.Duration, maxResults int) string {
	zones := make([]string, 0, len(q.Cities))
	for _, c := range q.Cities {
		zones = append(zones, c.ID+"="+c.Timezone)
	}
	sort.Strings(zones)

	h := sha256.New()
	fmt.Fprintf(h, "%d|%s|%d|%d|%d|%s",
		dayStart.Unix(), q.SourceTZ, q.Duration, step, maxResults,
		strings.Join(zones, ","))
	return hex.EncodeToString(h.Sum(nil))
}
