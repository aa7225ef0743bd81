package layout

import (
	"math"
	"testing"

	"github.com/punchtape/tapecut/pkg/code"
	"github.com/punchtape/tapecut/pkg/tape"
)

func makeRows(banner, leader, codeRows, trailer int) tape.List {
	syms := make([]code.Symbol, codeRows)
	return tape.Spec{
		Level:   8,
		Banner:  make([]byte, banner),
		Code:    syms,
		Length:  -1,
		Leader:  leader,
		Trailer: trailer,
	}.Assemble()
}

func TestCompute_SegmentCountQuirk(t *testing.T) {
	// The historical formula over-allocates one empty trailing segment when
	// the division is exact: 100 rows at 100 per segment yields 2 segments.
	rows := makeRows(0, 0, 100, 0)
	plan := Compute(rows, Options{RowsPerSegment: 100, Level: 8})

	if len(plan.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(plan.Segments))
	}
	if n := len(plan.Segments[0].Rows); n != 100 {
		t.Errorf("first segment: expected 100 rows, got %d", n)
	}
	if n := len(plan.Segments[1].Rows); n != 0 {
		t.Errorf("trailing segment: expected 0 rows, got %d", n)
	}
	if !plan.Segments[1].IsLast {
		t.Errorf("trailing segment should be last")
	}
}

func TestCompute_ExactSegments(t *testing.T) {
	rows := makeRows(0, 0, 100, 0)
	plan := Compute(rows, Options{RowsPerSegment: 100, Level: 8, ExactSegments: true})
	if len(plan.Segments) != 1 {
		t.Errorf("exact mode: expected 1 segment, got %d", len(plan.Segments))
	}
}

func TestCompute_OriginsAndExtents(t *testing.T) {
	rows := makeRows(0, 0, 25, 0)
	plan := Compute(rows, Options{RowsPerSegment: 10, Level: 8, Gap: 5})

	// 25/10+1 = 3 segments of 10, 10, 5 rows.
	if len(plan.Segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(plan.Segments))
	}
	if plan.TapeWidth != 25.4 {
		t.Errorf("expected 25.4mm tape, got %g", plan.TapeWidth)
	}
	for i, seg := range plan.Segments {
		wantX := float64(i) * (25.4 + 5)
		if math.Abs(seg.OriginX-wantX) > 1e-9 {
			t.Errorf("segment %d: expected origin %g, got %g", i, wantX, seg.OriginX)
		}
	}
	if got := plan.Segments[2].LengthY; math.Abs(got-5*HoleSpacing) > 1e-9 {
		t.Errorf("last segment: expected length %g, got %g", 5*HoleSpacing, got)
	}
}

func TestTapeWidth(t *testing.T) {
	tests := []struct {
		level  int
		joiner bool
		want   float64
	}{
		{8, false, 25.4},
		{6, false, 25.4},
		{5, false, 17.46},
		{2, false, 4 * HoleSpacing},
		{1, false, 3 * HoleSpacing},
		{8, true, 50.8},
		{5, true, 34.92},
	}
	for _, tt := range tests {
		if got := TapeWidth(tt.level, tt.joiner); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("TapeWidth(%d, %v) = %g, want %g", tt.level, tt.joiner, got, tt.want)
		}
	}
}

func TestCompute_EndCaps(t *testing.T) {
	rows := makeRows(0, 0, 25, 0)

	t.Run("flat by default", func(t *testing.T) {
		plan := Compute(rows, Options{RowsPerSegment: 10, Level: 8})
		for _, seg := range plan.Segments {
			if seg.TopCap != CapFlat || seg.BottomCap != CapFlat {
				t.Errorf("segment %d: expected flat caps", seg.Index)
			}
		}
	})

	t.Run("vee on the outer ends only", func(t *testing.T) {
		plan := Compute(rows, Options{RowsPerSegment: 10, Level: 8, Vee: true})
		segs := plan.Segments
		if segs[0].TopCap != CapVee || segs[0].BottomCap != CapFlat {
			t.Errorf("first segment caps wrong: %v %v", segs[0].TopCap, segs[0].BottomCap)
		}
		if segs[1].TopCap != CapFlat || segs[1].BottomCap != CapFlat {
			t.Errorf("interior segment caps wrong")
		}
		last := segs[len(segs)-1]
		if last.TopCap != CapFlat || last.BottomCap != CapVee {
			t.Errorf("last segment caps wrong: %v %v", last.TopCap, last.BottomCap)
		}
	})

	t.Run("joiner tab wins over vee", func(t *testing.T) {
		plan := Compute(rows, Options{RowsPerSegment: 10, Level: 8, Vee: true, Joiner: true})
		if plan.Segments[0].TopCap != CapJoinerTab {
			t.Errorf("expected joiner tab, got %v", plan.Segments[0].TopCap)
		}
		if plan.TapeWidth != 50.8 {
			t.Errorf("joiner mode should double the width, got %g", plan.TapeWidth)
		}
	})
}

func TestCompute_JoinerOffsets(t *testing.T) {
	// 4 banner + 6 leader rows ahead of the code region.
	rows := makeRows(4, 6, 30, 0)
	plan := Compute(rows, Options{RowsPerSegment: 20, Level: 8})

	seg := plan.Segments[1]
	if seg.StartRow != 20 {
		t.Errorf("expected start row 20, got %d", seg.StartRow)
	}
	// Absolute offset excludes the 10 banner and leader rows.
	if seg.CodeOffset != 10 {
		t.Errorf("expected code offset 10, got %d", seg.CodeOffset)
	}
	if plan.Segments[0].CodeOffset != -10 {
		t.Errorf("expected first segment code offset -10, got %d", plan.Segments[0].CodeOffset)
	}
}

func TestPlan_FileGroups(t *testing.T) {
	rows := makeRows(0, 0, 45, 0)
	plan := Compute(rows, Options{RowsPerSegment: 10, Level: 8})
	// 45/10+1 = 5 segments.

	if groups := plan.FileGroups(0); len(groups) != 1 || len(groups[0]) != 5 {
		t.Errorf("pagination off: expected one group of 5")
	}
	groups := plan.FileGroups(2)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	if len(groups[0]) != 2 || len(groups[1]) != 2 || len(groups[2]) != 1 {
		t.Errorf("group sizes wrong: %d %d %d", len(groups[0]), len(groups[1]), len(groups[2]))
	}
}
