package classify

import (
	"strings"

	"github.com/tobyjack19/hole-tools-mcp/internal/geometry"
)

// maxSegments is the complexity cutoff: the geometry engine can emit exotic
// profiles the taxonomy does not cover, and anything past four segments is
// reported as Unknown without inspection.
const maxSegments = 4

// Classify maps a hole's ordered segment sequence and through/threaded flags
// to a taxonomy label and the dimensions applicable to that shape.
//
// Classify is a pure function of its input and never fails: unrecognized
// segment patterns degrade to an Unknown result with empty dimension records.
// Upstream geometry recognition is itself heuristic, so zero classifiable
// holes is a valid outcome rather than an error.
//
// All dimensions are returned in the hole's own (internal) units; see the
// units package for conversion to user-facing units.
//
// The returned HoleCount is zero; the aggregator attaches group sizes.
func Classify(hole geometry.Hole) Result {
	r := Result{HoleType: Unknown}

	if len(hole.Segments) > maxSegments {
		return r
	}

	handler, ok := patterns[signature(hole.Segments)]
	if !ok {
		return r
	}
	handler(hole, &r)
	return r
}

// patternHandler fills in the label and dimensions for one recognized
// segment-kind signature. Handlers that represent known gaps in the taxonomy
// may populate dimensions while leaving the label at Unknown.
type patternHandler func(hole geometry.Hole, r *Result)

// patterns maps an ordered segment-kind signature (see signature) to its
// handler. Signatures absent from this table classify as Unknown. Keeping
// the dispatch flat makes the taxonomy's coverage, and its deliberate gaps,
// visible in one place.
var patterns = map[string]patternHandler{
	"cone":     classifyCone,
	"cylinder": classifyCylinder,

	"cone|cylinder":     classifyCounterSinkThrough,
	"cylinder|cylinder": classifyCounterBoreThrough,
	"cylinder|cone":     classifyNonFlatBottomBlind,

	"cone|cylinder|flat":     classifyCounterSinkBlind,
	"cone|cylinder|cone":     classifyNonFlatBottomCounterSinkBlind,
	"cylinder|flat|cylinder": classifyCounterBoreThrough3,

	"cylinder|flat|cylinder|flat": classifyCounterBoreBlind,
	"cylinder|flat|cylinder|cone": classifyNonFlatBottomCounterBoreBlind,
}

// signature joins the ordered segment kinds with "|", e.g. "cone|cylinder".
func signature(segments []geometry.Segment) string {
	kinds := make([]string, len(segments))
	for i, s := range segments {
		kinds[i] = s.Kind.String()
	}
	return strings.Join(kinds, "|")
}

// --- single segment ---

// [Cone]: a spot drill. The tip angle is twice the cone half angle.
func classifyCone(hole geometry.Hole, r *Result) {
	k := hole.Segments[0]
	r.Drill.Diameter = ptr(k.TopDiameter)
	r.Drill.Depth = ptr(hole.TotalLength)
	r.Drill.TipAngle = ptr(2 * k.HalfAngle)
	r.HoleType = SpotDrill
}

// [Cylinder]: through or blind. A threaded through hole still classifies as
// blind: the through-and-unthreaded test is first in the source decision
// order and a threaded wall fails it.
func classifyCylinder(hole geometry.Hole, r *Result) {
	k := hole.Segments[0]
	r.Drill.Diameter = ptr(k.TopDiameter)
	r.Drill.Depth = ptr(hole.TotalLength)
	// Computed for cylinders too (zero for a true cylinder); meaningful
	// only for cones.
	r.Drill.TipAngle = ptr(2 * k.HalfAngle)

	if hole.IsThrough && !hole.IsThreaded {
		r.HoleType = ThroughHole
	} else {
		r.HoleType = BlindHole
	}
}

// --- two segments ---

// drillFromSecond fills the dimensions shared by every 2-segment pattern:
// the second segment carries the drill geometry.
func drillFromSecond(hole geometry.Hole, r *Result) {
	b := hole.Segments[1]
	r.Drill.Diameter = ptr(b.TopDiameter)
	r.Drill.Depth = ptr(hole.TotalLength)
	r.Drill.TipAngle = ptr(2 * b.HalfAngle)
}

// [Cone, Cylinder]: counter-sunk through hole. A non-through hole with this
// pattern is a known taxonomy gap: dimensions are reported but the label
// stays Unknown.
func classifyCounterSinkThrough(hole geometry.Hole, r *Result) {
	drillFromSecond(hole, r)
	switch {
	case hole.IsThrough && hole.IsThreaded:
		r.HoleType = CounterSinkThroughHoleThreaded
	case hole.IsThrough:
		r.HoleType = CounterSinkThroughHole
	}
}

// [Cylinder, Cylinder]: counter-bored through hole, with the same
// non-through gap as the counter-sink pattern.
func classifyCounterBoreThrough(hole geometry.Hole, r *Result) {
	drillFromSecond(hole, r)
	a := hole.Segments[0]
	r.CounterBore.Diameter = ptr(a.TopDiameter)
	r.CounterBore.Length = ptr(a.Height)
	switch {
	case hole.IsThrough && hole.IsThreaded:
		r.HoleType = CounterBoreThroughHoleThreaded
	case hole.IsThrough:
		r.HoleType = CounterBoreThroughHole
	}
}

// [Cylinder, Cone]: blind hole ending in a drill tip.
func classifyNonFlatBottomBlind(hole geometry.Hole, r *Result) {
	drillFromSecond(hole, r)
	if hole.IsThreaded {
		r.HoleType = NonFlatBottomBlindHoleThreaded
	} else {
		r.HoleType = NonFlatBottomBlindHole
	}
}

// --- three segments ---

// drillFromMiddle fills the dimensions shared by the 3-segment patterns.
// Unlike the 2-segment patterns, the tip angle is not set here; only the
// cone-bottomed sub-pattern has one.
func drillFromMiddle(hole geometry.Hole, r *Result) {
	b := hole.Segments[1]
	r.Drill.Diameter = ptr(b.TopDiameter)
	r.Drill.Depth = ptr(hole.TotalLength)
}

// [Cone, Cylinder, Flat]: counter-sunk blind hole with a flat bottom.
func classifyCounterSinkBlind(hole geometry.Hole, r *Result) {
	drillFromMiddle(hole, r)
	if hole.IsThreaded {
		r.HoleType = CounterSinkBlindHoleThreaded
	} else {
		r.HoleType = CounterSinkBlindHole
	}
}

// [Cone, Cylinder, Cone]: counter-sunk blind hole ending in a drill tip.
func classifyNonFlatBottomCounterSinkBlind(hole geometry.Hole, r *Result) {
	drillFromMiddle(hole, r)
	c := hole.Segments[2]
	r.Drill.TipAngle = ptr(2 * c.HalfAngle)
	if hole.IsThreaded {
		r.HoleType = NonFlatBottomCounterSinkBlindHoleThreaded
	} else {
		r.HoleType = NonFlatBottomCounterSinkBlindHole
	}
}

// [Cylinder, Flat, Cylinder]: counter-bored through hole. The drill
// diameter comes from the final cylinder, below the counter-bore shoulder.
func classifyCounterBoreThrough3(hole geometry.Hole, r *Result) {
	drillFromMiddle(hole, r)
	a := hole.Segments[0]
	c := hole.Segments[2]
	r.CounterBore.Diameter = ptr(a.TopDiameter)
	r.CounterBore.Length = ptr(a.Height)
	r.Drill.Diameter = ptr(c.TopDiameter)
	if hole.IsThreaded {
		r.HoleType = CounterBoreThroughHole3Threaded
	} else {
		r.HoleType = CounterBoreThroughHole3
	}
}

// --- four segments ---

// counterBoreFromFirst fills the dimensions shared by the 4-segment
// patterns: counter-bore from the entry cylinder, drill diameter from the
// inner cylinder, depth from the full length.
func counterBoreFromFirst(hole geometry.Hole, r *Result) {
	a := hole.Segments[0]
	c := hole.Segments[2]
	r.Drill.Depth = ptr(hole.TotalLength)
	r.Drill.Diameter = ptr(c.TopDiameter)
	r.CounterBore.Diameter = ptr(a.TopDiameter)
	r.CounterBore.Length = ptr(a.Height)
}

// [Cylinder, Flat, Cylinder, Flat]: counter-bored blind hole with a flat
// bottom.
func classifyCounterBoreBlind(hole geometry.Hole, r *Result) {
	counterBoreFromFirst(hole, r)
	if hole.IsThreaded {
		r.HoleType = CounterBoreBlindHoleThreaded
	} else {
		r.HoleType = CounterBoreBlindHole
	}
}

// [Cylinder, Flat, Cylinder, Cone]: counter-bored blind hole ending in a
// drill tip.
func classifyNonFlatBottomCounterBoreBlind(hole geometry.Hole, r *Result) {
	counterBoreFromFirst(hole, r)
	d := hole.Segments[3]
	r.Drill.TipAngle = ptr(2 * d.HalfAngle)
	if hole.IsThreaded {
		r.HoleType = NonFlatBottomCounterBoreBlindHoleThreaded
	} else {
		r.HoleType = NonFlatBottomCounterBoreBlindHole
	}
}
