package geometry

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SegmentKind identifies the wall geometry of one axial section of a hole.
//
// The set is closed: every segment produced by the upstream geometry engine
// is one of these three kinds.
type SegmentKind int

const (
	// Cone is a conical wall section (e.g. a drill tip or counter-sink).
	Cone SegmentKind = iota

	// Cylinder is a straight cylindrical wall section.
	Cylinder

	// Flat is a flat annular shoulder, such as the bottom of a counter-bore.
	Flat
)

// String returns the lowercase JSON name of the kind.
func (k SegmentKind) String() string {
	switch k {
	case Cone:
		return "cone"
	case Cylinder:
		return "cylinder"
	case Flat:
		return "flat"
	}
	return fmt.Sprintf("SegmentKind(%d)", int(k))
}

// ParseSegmentKind converts a JSON kind name to a SegmentKind.
// Matching is case-insensitive. Unknown names return an error.
func ParseSegmentKind(s string) (SegmentKind, error) {
	switch strings.ToLower(s) {
	case "cone":
		return Cone, nil
	case "cylinder":
		return Cylinder, nil
	case "flat":
		return Flat, nil
	}
	return 0, fmt.Errorf("unknown segment kind: %q", s)
}

// MarshalJSON encodes the kind as its lowercase name.
func (k SegmentKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a kind from its JSON name.
func (k *SegmentKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseSegmentKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Segment is one axial section of a hole's wall profile.
//
// Segments are ordered from the hole's entry face toward its bottom; the
// position in the sequence is semantically significant. Segments are
// read-only snapshots and are never reordered after construction.
type Segment struct {
	// Kind is the wall geometry of this section.
	Kind SegmentKind `json:"kind"`

	// TopDiameter is the diameter at the top (entry side) of the section,
	// in the document's internal length unit. Meaningful for Cone and
	// Cylinder segments.
	TopDiameter float64 `json:"topDiameter"`

	// Height is the axial extent of the section in the document's internal
	// length unit.
	Height float64 `json:"height"`

	// HalfAngle is the cone half angle in radians. Meaningful only for
	// Cone segments; zero otherwise.
	HalfAngle float64 `json:"halfAngle"`
}

// Hole is an ordered sequence of segments describing one machined hole.
type Hole struct {
	// Segments are ordered from the entry face toward the bottom.
	Segments []Segment `json:"segments"`

	// TotalLength is the hole's full axial extent in the document's
	// internal length unit.
	TotalLength float64 `json:"totalLength"`

	// IsThrough reports whether the hole penetrates the full material
	// thickness.
	IsThrough bool `json:"isThrough"`

	// IsThreaded reports whether the wall carries thread geometry.
	IsThreaded bool `json:"isThreaded"`
}

// HoleGroup is a set of holes the upstream geometry engine considers
// structurally identical (same segment pattern and dimensions within
// tolerance). Classification examines only one representative member;
// grouping correctness is the upstream engine's responsibility.
type HoleGroup struct {
	Holes []Hole `json:"holes"`
}

// Representative returns the group's first member, the deterministic
// choice of representative as delivered by the upstream engine.
// Returns an error for an empty group, which violates the upstream
// contract that groups are non-empty.
func (g HoleGroup) Representative() (Hole, error) {
	if len(g.Holes) == 0 {
		return Hole{}, fmt.Errorf("hole group has no members")
	}
	return g.Holes[0], nil
}

// Document is the geometry interchange file produced by the upstream
// geometry engine: the pre-clustered hole groups of one body, plus the
// internal length unit all values are expressed in.
type Document struct {
	// Units is the internal length unit of every length value in the
	// document (e.g. "cm"). Defaults to DefaultUnits when absent.
	Units string `json:"units,omitempty"`

	// Groups are the pre-clustered hole groups, in upstream order.
	Groups []HoleGroup `json:"groups"`
}

// DefaultUnits is the internal length unit assumed when a document does
// not declare one. Matches the host CAD system's internal unit.
const DefaultUnits = "cm"

// HoleCount returns the total number of holes across all groups.
func (d *Document) HoleCount() int {
	n := 0
	for _, g := range d.Groups {
		n += len(g.Holes)
	}
	return n
}
