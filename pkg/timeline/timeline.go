// Package timeline renders a terminal band timeline for the source day:
// one row per city, one cell per half hour, colored by comfort band. It is
// the CLI counterpart of the dashboard's overlap visualizer.
package timeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/codeGROOVE-dev/meetTZ/pkg/civil"
	"github.com/codeGROOVE-dev/meetTZ/pkg/interval"
	"github.com/codeGROOVE-dev/meetTZ/pkg/overlap"
)

const (
	cellsPerDay = 48
	cellMinutes = 30
	labelWidth  = 16
)

// Render draws the band timeline across the source day. Each cell shows
// the city's band at that half hour: green for comfortable, yellow for
// borderline, dim for unfriendly. When best is non-nil its span is marked
// above the rows.
func Render(cities []overlap.City, sourceDay time.Time, srcLoc *time.Location, best *overlap.Slot) (string, error) {
	dayStart := civil.StartOfDay(sourceDay, srcLoc)

	var out strings.Builder
	out.WriteString(fmt.Sprintf("🕐 Band timeline • %s • %s\n",
		dayStart.Format("Mon, Jan 2"), srcLoc.String()))
	out.WriteString(strings.Repeat("─", labelWidth+cellsPerDay) + "\n")

	// Hour ruler in source time, one mark every three hours (six cells).
	out.WriteString(strings.Repeat(" ", labelWidth))
	for h := 0; h < 24; h += 3 {
		out.WriteString(fmt.Sprintf("%-6d", h))
	}
	out.WriteString("\n")

	if best != nil {
		out.WriteString(fmt.Sprintf("%-*s", labelWidth, "best window"))
		for i := range cellsPerDay {
			cell := interval.Range{
				Start: dayStart.Add(time.Duration(i) * cellMinutes * time.Minute),
				End:   dayStart.Add(time.Duration(i+1) * cellMinutes * time.Minute),
			}
			if _, ok := interval.Intersect(cell, best.Range); ok {
				out.WriteString("▼")
			} else {
				out.WriteString(" ")
			}
		}
		out.WriteString("\n")
	}

	comfortable := color.New(color.FgGreen)
	borderline := color.New(color.FgYellow)
	unfriendly := color.New(color.FgHiBlack)

	for _, city := range cities {
		loc, err := civil.LoadZone(city.Timezone)
		if err != nil {
			return "", err
		}
		out.WriteString(fmt.Sprintf("%-*s", labelWidth, truncate(city.Name, labelWidth-1)))
		for i := range cellsPerDay {
			t := dayStart.Add(time.Duration(i) * cellMinutes * time.Minute)
			switch overlap.Classify(t.In(loc).Hour()) {
			case overlap.Comfortable:
				out.WriteString(comfortable.Sprint("█"))
			case overlap.Borderline:
				out.WriteString(borderline.Sprint("▓"))
			default:
				out.WriteString(unfriendly.Sprint("░"))
			}
		}
		out.WriteString(fmt.Sprintf(" %s\n", civil.OffsetLabel(dayStart, loc)))
	}

	return out.String(), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
