package classify

import (
	"fmt"
	"sort"

	"github.com/tobyjack19/hole-tools-mcp/internal/geometry"
	"github.com/tobyjack19/hole-tools-mcp/internal/units"
)

// Aggregate classifies one representative hole per group, normalizes the
// result with conv, and attaches the group's member count. Output order
// matches input group order.
//
// Whether every member of a group truly shares a classification is the
// upstream geometry engine's guarantee; only the first member is examined.
// An empty group violates that contract and is reported as an error.
func Aggregate(groups []geometry.HoleGroup, conv units.Converter) ([]Result, error) {
	results := make([]Result, 0, len(groups))
	for i, group := range groups {
		rep, err := group.Representative()
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", i, err)
		}
		r := Normalize(Classify(rep), conv)
		r.HoleCount = len(group.Holes)
		results = append(results, r)
	}
	return results, nil
}

// ClassifyDocument aggregates all groups of a geometry document, converting
// dimensions from the document's internal unit to targetUnits.
func ClassifyDocument(doc *geometry.Document, targetUnits string) (*ResultSet, error) {
	conv, err := units.NewConverter(doc.Units, targetUnits)
	if err != nil {
		return nil, err
	}
	results, err := Aggregate(doc.Groups, conv)
	if err != nil {
		return nil, err
	}
	return &ResultSet{Holes: results}, nil
}

// TypeCount is one row of a per-type summary: how many groups and how many
// individual holes of a document classified under a label.
type TypeCount struct {
	HoleType   string `json:"holeType"`
	GroupCount int    `json:"group_count"`
	HoleCount  int    `json:"hole_count"`
}

// Summarize tallies a document's hole groups by taxonomy label. Labels are
// independent of length units, so no conversion is involved. Rows are sorted
// by hole count descending, then label, for stable output.
func Summarize(doc *geometry.Document) ([]TypeCount, error) {
	byType := make(map[string]*TypeCount)
	for i, group := range doc.Groups {
		rep, err := group.Representative()
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", i, err)
		}
		label := Classify(rep).HoleType
		tc, ok := byType[label]
		if !ok {
			tc = &TypeCount{HoleType: label}
			byType[label] = tc
		}
		tc.GroupCount++
		tc.HoleCount += len(group.Holes)
	}

	rows := make([]TypeCount, 0, len(byType))
	for _, tc := range byType {
		rows = append(rows, *tc)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].HoleCount != rows[j].HoleCount {
			return rows[i].HoleCount > rows[j].HoleCount
		}
		return rows[i].HoleType < rows[j].HoleType
	})
	return rows, nil
}
