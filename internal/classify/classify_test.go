package classify

import (
	"math"
	"reflect"
	"testing"

	"github.com/tobyjack19/hole-tools-mcp/internal/geometry"
)

func cone(top, height, halfAngle float64) geometry.Segment {
	return geometry.Segment{Kind: geometry.Cone, TopDiameter: top, Height: height, HalfAngle: halfAngle}
}

func cyl(top, height float64) geometry.Segment {
	return geometry.Segment{Kind: geometry.Cylinder, TopDiameter: top, Height: height}
}

func flat(height float64) geometry.Segment {
	return geometry.Segment{Kind: geometry.Flat, Height: height}
}

func hole(total float64, through, threaded bool, segs ...geometry.Segment) geometry.Hole {
	return geometry.Hole{Segments: segs, TotalLength: total, IsThrough: through, IsThreaded: threaded}
}

// want describes the expected result; nil pointer fields mean "absent".
type want struct {
	holeType string
	drill    DrillParams
	bore     CounterBoreParams
}

func checkField(t *testing.T, name string, got, wantV *float64) {
	t.Helper()
	switch {
	case wantV == nil && got != nil:
		t.Errorf("%s: got %v, want unset", name, *got)
	case wantV != nil && got == nil:
		t.Errorf("%s: got unset, want %v", name, *wantV)
	case wantV != nil && got != nil && math.Abs(*got-*wantV) > 1e-12:
		t.Errorf("%s: got %v, want %v", name, *got, *wantV)
	}
}

func checkResult(t *testing.T, got Result, w want) {
	t.Helper()
	if got.HoleType != w.holeType {
		t.Errorf("HoleType: got %q, want %q", got.HoleType, w.holeType)
	}
	checkField(t, "Drill.Diameter", got.Drill.Diameter, w.drill.Diameter)
	checkField(t, "Drill.TipAngle", got.Drill.TipAngle, w.drill.TipAngle)
	checkField(t, "Drill.Depth", got.Drill.Depth, w.drill.Depth)
	checkField(t, "CounterBore.Diameter", got.CounterBore.Diameter, w.bore.Diameter)
	checkField(t, "CounterBore.Length", got.CounterBore.Length, w.bore.Length)
}

func TestClassify_SingleSegment(t *testing.T) {
	tests := []struct {
		name string
		hole geometry.Hole
		want want
	}{
		{
			"cone is a spot drill",
			hole(5, false, false, cone(4, 5, math.Pi/4)),
			want{SpotDrill, DrillParams{ptr(4.0), ptr(math.Pi / 2), ptr(5.0)}, CounterBoreParams{}},
		},
		{
			"through unthreaded cylinder",
			hole(12, true, false, cyl(6, 12)),
			want{ThroughHole, DrillParams{ptr(6.0), ptr(0.0), ptr(12.0)}, CounterBoreParams{}},
		},
		{
			"blind cylinder",
			hole(8, false, false, cyl(3, 8)),
			want{BlindHole, DrillParams{ptr(3.0), ptr(0.0), ptr(8.0)}, CounterBoreParams{}},
		},
		{
			// Both decision conditions hold for a threaded through hole;
			// the through-and-unthreaded test is first, fails, and the
			// hole classifies as blind.
			"threaded through cylinder is blind",
			hole(8, true, true, cyl(3, 8)),
			want{BlindHole, DrillParams{ptr(3.0), ptr(0.0), ptr(8.0)}, CounterBoreParams{}},
		},
		{
			"threaded blind cylinder",
			hole(8, false, true, cyl(3, 8)),
			want{BlindHole, DrillParams{ptr(3.0), ptr(0.0), ptr(8.0)}, CounterBoreParams{}},
		},
		{
			"lone flat is unrecognized",
			hole(1, false, false, flat(1)),
			want{Unknown, DrillParams{}, CounterBoreParams{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkResult(t, Classify(tt.hole), tt.want)
		})
	}
}

func TestClassify_TwoSegments(t *testing.T) {
	tests := []struct {
		name string
		hole geometry.Hole
		want want
	}{
		{
			"counter-sink through",
			hole(10, true, false, cone(12, 2, math.Pi/4), cyl(6, 8)),
			want{CounterSinkThroughHole, DrillParams{ptr(6.0), ptr(0.0), ptr(10.0)}, CounterBoreParams{}},
		},
		{
			"counter-sink through threaded",
			hole(10, true, true, cone(12, 2, math.Pi/4), cyl(6, 8)),
			want{CounterSinkThroughHoleThreaded, DrillParams{ptr(6.0), ptr(0.0), ptr(10.0)}, CounterBoreParams{}},
		},
		{
			// Known taxonomy gap: the blind counter-sink pattern assigns
			// no label but still reports the drill dimensions.
			"counter-sink non-through stays unknown",
			hole(10, false, false, cone(12, 2, math.Pi/4), cyl(6, 8)),
			want{Unknown, DrillParams{ptr(6.0), ptr(0.0), ptr(10.0)}, CounterBoreParams{}},
		},
		{
			"counter-bore through",
			hole(10, true, false, cyl(14, 3), cyl(6, 7)),
			want{CounterBoreThroughHole, DrillParams{ptr(6.0), ptr(0.0), ptr(10.0)}, CounterBoreParams{ptr(14.0), ptr(3.0)}},
		},
		{
			"counter-bore through threaded",
			hole(10, true, true, cyl(14, 3), cyl(6, 7)),
			want{CounterBoreThroughHoleThreaded, DrillParams{ptr(6.0), ptr(0.0), ptr(10.0)}, CounterBoreParams{ptr(14.0), ptr(3.0)}},
		},
		{
			// Same gap as the counter-sink pattern: dimensions, no label.
			"counter-bore non-through stays unknown",
			hole(10, false, false, cyl(14, 3), cyl(6, 7)),
			want{Unknown, DrillParams{ptr(6.0), ptr(0.0), ptr(10.0)}, CounterBoreParams{ptr(14.0), ptr(3.0)}},
		},
		{
			"non-flat-bottom blind",
			hole(9, false, false, cyl(6, 8), cone(6, 1, math.Pi/3)),
			want{NonFlatBottomBlindHole, DrillParams{ptr(6.0), ptr(2 * math.Pi / 3), ptr(9.0)}, CounterBoreParams{}},
		},
		{
			"non-flat-bottom blind threaded",
			hole(9, false, true, cyl(6, 8), cone(6, 1, math.Pi/3)),
			want{NonFlatBottomBlindHoleThreaded, DrillParams{ptr(6.0), ptr(2 * math.Pi / 3), ptr(9.0)}, CounterBoreParams{}},
		},
		{
			"cone over cone is unrecognized",
			hole(4, false, false, cone(8, 2, math.Pi/4), cone(4, 2, math.Pi/4)),
			want{Unknown, DrillParams{}, CounterBoreParams{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkResult(t, Classify(tt.hole), tt.want)
		})
	}
}

func TestClassify_ThreeSegments(t *testing.T) {
	tests := []struct {
		name string
		hole geometry.Hole
		want want
	}{
		{
			"counter-sink blind flat bottom",
			hole(11, false, false, cone(12, 2, math.Pi/4), cyl(6, 9), flat(0)),
			want{CounterSinkBlindHole, DrillParams{Diameter: ptr(6.0), Depth: ptr(11.0)}, CounterBoreParams{}},
		},
		{
			"counter-sink blind flat bottom threaded",
			hole(11, false, true, cone(12, 2, math.Pi/4), cyl(6, 9), flat(0)),
			want{CounterSinkBlindHoleThreaded, DrillParams{Diameter: ptr(6.0), Depth: ptr(11.0)}, CounterBoreParams{}},
		},
		{
			"counter-sink blind cone bottom",
			hole(12, false, false, cone(12, 2, math.Pi/4), cyl(6, 9), cone(6, 1, math.Pi/3)),
			want{NonFlatBottomCounterSinkBlindHole, DrillParams{ptr(6.0), ptr(2 * math.Pi / 3), ptr(12.0)}, CounterBoreParams{}},
		},
		{
			"counter-sink blind cone bottom threaded",
			hole(12, false, true, cone(12, 2, math.Pi/4), cyl(6, 9), cone(6, 1, math.Pi/3)),
			want{NonFlatBottomCounterSinkBlindHoleThreaded, DrillParams{ptr(6.0), ptr(2 * math.Pi / 3), ptr(12.0)}, CounterBoreParams{}},
		},
		{
			// Drill diameter comes from the inner cylinder below the
			// shoulder, not the middle segment.
			"counter-bore through with shoulder",
			hole(10, true, false, cyl(14, 3), flat(0), cyl(6, 7)),
			want{CounterBoreThroughHole3, DrillParams{Diameter: ptr(6.0), Depth: ptr(10.0)}, CounterBoreParams{ptr(14.0), ptr(3.0)}},
		},
		{
			"counter-bore through with shoulder threaded",
			hole(10, true, true, cyl(14, 3), flat(0), cyl(6, 7)),
			want{CounterBoreThroughHole3Threaded, DrillParams{Diameter: ptr(6.0), Depth: ptr(10.0)}, CounterBoreParams{ptr(14.0), ptr(3.0)}},
		},
		{
			"flat first is unrecognized",
			hole(10, false, false, flat(0), cyl(6, 10), flat(0)),
			want{Unknown, DrillParams{}, CounterBoreParams{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkResult(t, Classify(tt.hole), tt.want)
		})
	}
}

func TestClassify_FourSegments(t *testing.T) {
	tests := []struct {
		name string
		hole geometry.Hole
		want want
	}{
		{
			"counter-bore blind flat bottom",
			hole(12, false, false, cyl(14, 3), flat(0), cyl(6, 9), flat(0)),
			want{CounterBoreBlindHole, DrillParams{Diameter: ptr(6.0), Depth: ptr(12.0)}, CounterBoreParams{ptr(14.0), ptr(3.0)}},
		},
		{
			"counter-bore blind flat bottom threaded",
			hole(12, false, true, cyl(14, 3), flat(0), cyl(6, 9), flat(0)),
			want{CounterBoreBlindHoleThreaded, DrillParams{Diameter: ptr(6.0), Depth: ptr(12.0)}, CounterBoreParams{ptr(14.0), ptr(3.0)}},
		},
		{
			"counter-bore blind cone bottom",
			hole(13, false, false, cyl(14, 3), flat(0), cyl(6, 9), cone(6, 1, math.Pi/3)),
			want{NonFlatBottomCounterBoreBlindHole, DrillParams{ptr(6.0), ptr(2 * math.Pi / 3), ptr(13.0)}, CounterBoreParams{ptr(14.0), ptr(3.0)}},
		},
		{
			"counter-bore blind cone bottom threaded",
			hole(13, false, true, cyl(14, 3), flat(0), cyl(6, 9), cone(6, 1, math.Pi/3)),
			want{NonFlatBottomCounterBoreBlindHoleThreaded, DrillParams{ptr(6.0), ptr(2 * math.Pi / 3), ptr(13.0)}, CounterBoreParams{ptr(14.0), ptr(3.0)}},
		},
		{
			"four cylinders is unrecognized",
			hole(12, true, false, cyl(14, 3), cyl(12, 3), cyl(8, 3), cyl(6, 3)),
			want{Unknown, DrillParams{}, CounterBoreParams{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkResult(t, Classify(tt.hole), tt.want)
		})
	}
}

func TestClassify_SegmentCountCutoff(t *testing.T) {
	// Five segments are always Unknown regardless of kinds and flags,
	// even when a prefix would match a known pattern.
	h := hole(15, true, true,
		cyl(14, 3), flat(0), cyl(6, 9), flat(0), cone(6, 1, math.Pi/3))

	got := Classify(h)
	checkResult(t, got, want{Unknown, DrillParams{}, CounterBoreParams{}})
}

func TestClassify_EmptyHole(t *testing.T) {
	got := Classify(geometry.Hole{})
	checkResult(t, got, want{Unknown, DrillParams{}, CounterBoreParams{}})
}

func TestClassify_Pure(t *testing.T) {
	h := hole(10, true, false, cyl(14, 3), cyl(6, 7))

	first := Classify(h)
	second := Classify(h)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Classify is not deterministic: %+v vs %+v", first, second)
	}

	// The two results must not share pointers; mutating one through its
	// dimension fields cannot affect the other.
	if first.Drill.Diameter == second.Drill.Diameter {
		t.Error("results share a Drill.Diameter pointer")
	}
}

func TestClassify_DoesNotMutateInput(t *testing.T) {
	segs := []geometry.Segment{cyl(14, 3), cyl(6, 7)}
	h := geometry.Hole{Segments: segs, TotalLength: 10, IsThrough: true}
	copySegs := append([]geometry.Segment(nil), segs...)

	Classify(h)

	if !reflect.DeepEqual(segs, copySegs) {
		t.Error("Classify mutated the input segments")
	}
}
