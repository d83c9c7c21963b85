// Package ics exports a chosen meeting slot as a single-event iCalendar
// document, ready to import into any calendar client. Event times are
// emitted in UTC; the per-city local breakdown goes into the description.
package ics

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/codeGROOVE-dev/meetTZ/pkg/format"
	"github.com/codeGROOVE-dev/meetTZ/pkg/overlap"
)

// Export renders the slot as a VEVENT. An empty summary gets a generated
// one naming the participant count.
func Export(slot overlap.Slot, srcLoc *time.Location, summary string) string {
	if summary == "" {
		summary = fmt.Sprintf("Meeting (%d cities)", len(slot.PerCity))
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//meetTZ//overlap//EN")

	ev := cal.AddEvent(uuid.NewString())
	ev.SetDtStampTime(slot.Range.Start.UTC())
	ev.SetStartAt(slot.Range.Start.UTC())
	ev.SetEndAt(slot.Range.End.UTC())
	ev.SetSummary(summary)

	r := format.Render(slot, srcLoc)
	ev.SetDescription(r.Label + "\n" + strings.Join(r.PerCityLines, "\n"))

	return cal.Serialize()
}
