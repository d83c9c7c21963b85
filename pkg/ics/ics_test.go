package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/codeGROOVE-dev/meetTZ/pkg/civil"
	"github.com/codeGROOVE-dev/meetTZ/pkg/interval"
	"github.com/codeGROOVE-dev/meetTZ/pkg/overlap"
)

func TestExport(t *testing.T) {
	ny, err := civil.LoadZone("America/New_York")
	if err != nil {
		t.Fatal(err)
	}
	start := time.Date(2025, 8, 26, 9, 0, 0, 0, ny) // 13:00 UTC
	slot := overlap.Slot{
		Range:   interval.Range{Start: start, End: start.Add(30 * time.Minute)},
		Quality: overlap.Comfortable,
		Score:   2,
		PerCity: []overlap.CityAssessment{
			{CityID: "london", CityName: "London", LocalStart: start, LocalEnd: start.Add(30 * time.Minute), Abbrev: "BST", Band: overlap.Comfortable},
		},
	}

	out := Export(slot, ny, "Weekly sync")

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"BEGIN:VEVENT",
		"DTSTART:20250826T130000Z",
		"DTEND:20250826T133000Z",
		"SUMMARY:Weekly sync",
		"END:VEVENT",
		"END:VCALENDAR",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if !strings.Contains(out, "UID:") {
		t.Error("event should carry a UID")
	}
}

func TestExportDefaultSummary(t *testing.T) {
	start := time.Date(2025, 8, 26, 13, 0, 0, 0, time.UTC)
	slot := overlap.Slot{
		Range: interval.Range{Start: start, End: start.Add(time.Hour)},
		PerCity: []overlap.CityAssessment{
			{CityName: "A"}, {CityName: "B"},
		},
	}
	out := Export(slot, time.UTC, "")
	if !strings.Contains(out, "SUMMARY:Meeting (2 cities)") {
		t.Errorf("missing generated summary\n%s", out)
	}
}
