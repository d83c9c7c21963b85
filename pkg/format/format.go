// Package format renders ranked slots for display and copy/paste. It only
// re-expresses instants the engine already resolved; zone math stays in
// pkg/civil and the per-city assessments.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/meetTZ/pkg/overlap"
)

const (
	labelLayout = "Mon, Jan 2 • 15:04"
	clockLayout = "15:04"
)

// Rendered is the structured form of a slot: a source-zone headline plus
// one line per city with its local start-end and zone abbreviation.
type Rendered struct {
	Label        string
	PerCityLines []string
}

// Render expresses the slot in the source zone with per-city local times.
func Render(slot overlap.Slot, srcLoc *time.Location) Rendered {
	start := slot.Range.Start.In(srcLoc)
	end := slot.Range.End.In(srcLoc)
	r := Rendered{
		Label: fmt.Sprintf("%s – %s (%s)",
			start.Format(labelLayout), end.Format(clockLayout), srcLoc.String()),
	}
	for _, pc := range slot.PerCity {
		r.PerCityLines = append(r.PerCityLines, fmt.Sprintf("%s: %s–%s (%s)",
			pc.CityName,
			pc.LocalStart.Format(clockLayout),
			pc.LocalEnd.Format(clockLayout),
			pc.Abbrev))
	}
	return r
}

// ForCopy renders the slot as a copy-paste block: the source-zone headline
// followed by one city per line.
func ForCopy(slot overlap.Slot, srcLoc *time.Location) string {
	r := Render(slot, srcLoc)
	var b strings.Builder
	b.WriteString(r.Label)
	for _, line := range r.PerCityLines {
		b.WriteString("\n")
		b.WriteString(line)
	}
	return b.String()
}
