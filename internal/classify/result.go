package classify

// Hole type labels. These strings are an external contract: downstream JSON
// consumers key off the exact text, including the lowercase "through" in
// CounterBoreThroughHole3. Do not normalize.
const (
	Unknown     = "Unknown"
	SpotDrill   = "Spot Drill"
	ThroughHole = "Through Hole"
	BlindHole   = "Blind Hole"

	CounterSinkThroughHole         = "CounterSink Through Hole"
	CounterSinkThroughHoleThreaded = "CounterSink Through Hole with threaded"

	CounterBoreThroughHole         = "CounterBore Through Hole"
	CounterBoreThroughHoleThreaded = "CounterBore Through Hole with threaded"

	NonFlatBottomBlindHole         = "Non Flat Bottom Blind Hole"
	NonFlatBottomBlindHoleThreaded = "Non Flat Bottom Blind Hole with threaded"

	CounterSinkBlindHole         = "CounterSink Blind Hole"
	CounterSinkBlindHoleThreaded = "CounterSink Blind Hole with threaded"

	NonFlatBottomCounterSinkBlindHole         = "Non Flat Bottom CounterSink Blind Hole"
	NonFlatBottomCounterSinkBlindHoleThreaded = "Non Flat Bottom CounterSink Blind Hole with threaded"

	// The 3-segment counter-bore label spells "through" in lowercase in the
	// source taxonomy, unlike the 2-segment variant above.
	CounterBoreThroughHole3         = "CounterBore through Hole"
	CounterBoreThroughHole3Threaded = "CounterBore through Hole with threaded"

	CounterBoreBlindHole         = "CounterBore Blind Hole"
	CounterBoreBlindHoleThreaded = "CounterBore Blind Hole with threaded"

	NonFlatBottomCounterBoreBlindHole         = "Non Flat Bottom CounterBore Blind Hole"
	NonFlatBottomCounterBoreBlindHoleThreaded = "Non Flat Bottom CounterBore Blind Hole with threaded"
)

// DrillParams holds the drilling dimensions of a classified hole.
//
// Fields are pointers: a nil field means the dimension is not meaningful for
// the recognized shape, not that it is zero.
type DrillParams struct {
	// Diameter is the drill diameter.
	Diameter *float64 `json:"diameter,omitempty"`

	// TipAngle is the full drill tip angle (twice the cone half angle).
	// Radians until normalized, degrees after.
	TipAngle *float64 `json:"tipAngle,omitempty"`

	// Depth is the drilling depth (the hole's total axial length).
	Depth *float64 `json:"depth,omitempty"`
}

// CounterBoreParams holds the counter-bore dimensions of a classified hole.
// Fields follow the same nil-means-absent convention as DrillParams.
type CounterBoreParams struct {
	// Diameter is the counter-bore diameter.
	Diameter *float64 `json:"diameter,omitempty"`

	// Length is the counter-bore's axial length.
	Length *float64 `json:"length,omitempty"`
}

// Result is the classification of one hole group.
//
// Results are produced fresh on each call and have no persistent identity.
// The drill and counterBore objects are always serialized, possibly empty,
// so consumers can index into them unconditionally.
type Result struct {
	// HoleType is the taxonomy label, or "Unknown" for unrecognized
	// segment patterns.
	HoleType string `json:"holeType"`

	// Drill holds the drilling dimensions applicable to the shape.
	Drill DrillParams `json:"drill"`

	// CounterBore holds the counter-bore dimensions, when the shape has one.
	CounterBore CounterBoreParams `json:"counterBore"`

	// HoleCount is the size of the originating hole group. Attached by the
	// aggregator after classification; zero for a bare Classify call.
	HoleCount int `json:"holeCount"`
}

// ResultSet is the serialization envelope for a document's classifications:
// one result per hole group, in upstream group order.
type ResultSet struct {
	Holes []Result `json:"holes"`
}

func ptr(v float64) *float64 { return &v }
