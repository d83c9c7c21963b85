package interval

import (
	"testing"
	"time"
)

var base = time.Date(2025, 8, 26, 0, 0, 0, 0, time.UTC)

// rng builds a range from minute offsets off a fixed base instant.
func rng(startMin, endMin int) Range {
	return Range{
		Start: base.Add(time.Duration(startMin) * time.Minute),
		End:   base.Add(time.Duration(endMin) * time.Minute),
	}
}

func TestIsValid(t *testing.T) {
	if !rng(0, 1).IsValid() {
		t.Error("positive-length range should be valid")
	}
	if rng(5, 5).IsValid() {
		t.Error("zero-length range should be invalid")
	}
	if rng(10, 5).IsValid() {
		t.Error("inverted range should be invalid")
	}
}

func TestIntersect(t *testing.T) {
	t.Run("Overlapping", func(t *testing.T) {
		out, ok := Intersect(rng(0, 60), rng(30, 90))
		if !ok {
			t.Fatal("expected overlap")
		}
		if want := rng(30, 60); out != want {
			t.Errorf("got %v, want %v", out, want)
		}
	})

	t.Run("Disjoint", func(t *testing.T) {
		if _, ok := Intersect(rng(0, 30), rng(60, 90)); ok {
			t.Error("disjoint ranges should not intersect")
		}
	})

	t.Run("Touching endpoints do not overlap", func(t *testing.T) {
		if _, ok := Intersect(rng(0, 30), rng(30, 60)); ok {
			t.Error("half-open ranges sharing an endpoint should not intersect")
		}
	})

	t.Run("Containment", func(t *testing.T) {
		out, ok := Intersect(rng(0, 120), rng(30, 60))
		if !ok || out != rng(30, 60) {
			t.Errorf("got %v ok=%v, want inner range", out, ok)
		}
	})
}

func TestMerge(t *testing.T) {
	t.Run("Coalesces overlap and adjacency", func(t *testing.T) {
		out := Merge([]Range{rng(60, 120), rng(0, 60), rng(90, 150)})
		if len(out) != 1 || out[0] != rng(0, 150) {
			t.Errorf("got %v, want single range [0,150)", out)
		}
	})

	t.Run("Keeps gaps", func(t *testing.T) {
		out := Merge([]Range{rng(0, 30), rng(60, 90)})
		if len(out) != 2 {
			t.Fatalf("got %d ranges, want 2", len(out))
		}
	})

	t.Run("Drops invalid input", func(t *testing.T) {
		out := Merge([]Range{rng(10, 10), rng(30, 20)})
		if out != nil {
			t.Errorf("got %v, want nil", out)
		}
	})
}

func TestIntersectSets(t *testing.T) {
	t.Run("Zero groups yields nil", func(t *testing.T) {
		if out := IntersectSets(nil); out != nil {
			t.Errorf("got %v, want nil", out)
		}
	})

	t.Run("Single group passes through merged", func(t *testing.T) {
		out := IntersectSets([][]Range{{rng(0, 30), rng(30, 60)}})
		if len(out) != 1 || out[0] != rng(0, 60) {
			t.Errorf("got %v, want [0,60)", out)
		}
	})

	t.Run("Multi-fragment groups intersect exactly", func(t *testing.T) {
		a := []Range{rng(0, 60), rng(120, 180)}
		b := []Range{rng(30, 150)}
		out := IntersectSets([][]Range{a, b})
		if len(out) != 2 || out[0] != rng(30, 60) || out[1] != rng(120, 150) {
			t.Errorf("got %v, want [30,60) and [120,150)", out)
		}
	})

	t.Run("Empty group empties the result", func(t *testing.T) {
		out := IntersectSets([][]Range{{rng(0, 60)}, nil, {rng(0, 60)}})
		if out != nil {
			t.Errorf("got %v, want nil", out)
		}
	})

	t.Run("Output instants belong to every group", func(t *testing.T) {
		groups := [][]Range{
			{rng(0, 100), rng(200, 300)},
			{rng(50, 250)},
			{rng(0, 300)},
		}
		out := IntersectSets(groups)
		if len(out) == 0 {
			t.Fatal("expected non-empty intersection")
		}
		for _, r := range out {
			if !r.IsValid() {
				t.Fatalf("invalid range emitted: %v", r)
			}
			for probe := r.Start; probe.Before(r.End); probe = probe.Add(time.Minute) {
				for gi, group := range groups {
					covered := false
					for _, gr := range group {
						if gr.Contains(probe) {
							covered = true
							break
						}
					}
					if !covered {
						t.Fatalf("instant %v not covered by group %d", probe, gi)
					}
				}
			}
		}
	})
}

func TestSliceByDuration(t *testing.T) {
	t.Run("Slot count follows floor((L-D)/S)+1", func(t *testing.T) {
		slots := SliceByDuration([]Range{rng(0, 120)}, 30*time.Minute, 15*time.Minute)
		if want := 7; len(slots) != want { // floor((120-30)/15)+1
			t.Errorf("got %d slots, want %d", len(slots), want)
		}
	})

	t.Run("Never exceeds range end", func(t *testing.T) {
		src := rng(0, 95)
		for _, s := range SliceByDuration([]Range{src}, 30*time.Minute, 10*time.Minute) {
			if s.End.After(src.End) {
				t.Errorf("slot %v spills past range end %v", s, src.End)
			}
			if s.Duration() != 30*time.Minute {
				t.Errorf("slot %v has wrong duration", s)
			}
		}
	})

	t.Run("Short range yields nothing", func(t *testing.T) {
		if slots := SliceByDuration([]Range{rng(0, 20)}, 30*time.Minute, 5*time.Minute); slots != nil {
			t.Errorf("got %v, want nil", slots)
		}
	})

	t.Run("Slots never span disjoint ranges", func(t *testing.T) {
		ranges := []Range{rng(0, 40), rng(60, 100)}
		for _, s := range SliceByDuration(ranges, 30*time.Minute, 5*time.Minute) {
			inOne := false
			for _, r := range ranges {
				if !s.Start.Before(r.Start) && !s.End.After(r.End) {
					inOne = true
				}
			}
			if !inOne {
				t.Errorf("slot %v crosses a gap", s)
			}
		}
	})

	t.Run("Non-positive step or duration yields nil", func(t *testing.T) {
		if SliceByDuration([]Range{rng(0, 120)}, 30*time.Minute, 0) != nil {
			t.Error("zero step must not produce slots")
		}
		if SliceByDuration([]Range{rng(0, 120)}, 0, 5*time.Minute) != nil {
			t.Error("zero duration must not produce slots")
		}
	})
}
