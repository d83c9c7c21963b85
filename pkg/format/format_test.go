package format

import (
	"strings"
	"testing"
	"time"

	"github.com/codeGROOVE-dev/meetTZ/pkg/civil"
	"github.com/codeGROOVE-dev/meetTZ/pkg/interval"
	"github.com/codeGROOVE-dev/meetTZ/pkg/overlap"
)

func sampleSlot(t *testing.T) (overlap.Slot, *time.Location) {
	t.Helper()
	ny, err := civil.LoadZone("America/New_York")
	if err != nil {
		t.Fatal(err)
	}
	start := time.Date(2025, 8, 26, 9, 0, 0, 0, ny)
	end := start.Add(30 * time.Minute)
	slot := overlap.Slot{
		Range:   interval.Range{Start: start, End: end},
		Quality: overlap.Comfortable,
		Score:   2,
		PerCity: []overlap.CityAssessment{
			{
				CityID:     "london",
				CityName:   "London",
				LocalStart: start.In(time.UTC).Add(time.Hour), // 14:00 BST
				LocalEnd:   end.In(time.UTC).Add(time.Hour),
				Band:       overlap.Comfortable,
				Abbrev:     "BST",
			},
		},
	}
	return slot, ny
}

func TestRender(t *testing.T) {
	slot, ny := sampleSlot(t)
	r := Render(slot, ny)

	if !strings.Contains(r.Label, "Tue, Aug 26") {
		t.Errorf("label %q missing the source date", r.Label)
	}
	if !strings.Contains(r.Label, "09:00 – 09:30") {
		t.Errorf("label %q missing the source range", r.Label)
	}
	if !strings.Contains(r.Label, "America/New_York") {
		t.Errorf("label %q missing the source zone", r.Label)
	}
	if len(r.PerCityLines) != 1 {
		t.Fatalf("got %d city lines, want 1", len(r.PerCityLines))
	}
	line := r.PerCityLines[0]
	if !strings.Contains(line, "London") || !strings.Contains(line, "14:00–14:30") || !strings.Contains(line, "BST") {
		t.Errorf("unexpected city line %q", line)
	}
}

func TestForCopy(t *testing.T) {
	slot, ny := sampleSlot(t)
	out := ForCopy(slot, ny)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want headline plus one city", len(lines))
	}
	if !strings.HasPrefix(lines[1], "London:") {
		t.Errorf("city line %q should lead with the city name", lines[1])
	}
}
