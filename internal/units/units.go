package units

import (
	"fmt"
	"math"
	"sort"
)

// millimetersPer maps each supported length unit name to its size in
// millimeters. The set is closed; unit names are matched exactly.
var millimetersPer = map[string]float64{
	"mm": 1,
	"cm": 10,
	"m":  1000,
	"in": 25.4,
	"ft": 304.8,
}

// DegreesPerRadian is the fixed radians-to-degrees factor. Angle conversion
// is not part of the length-unit table; classified tip angles always convert
// by exactly this factor.
const DegreesPerRadian = 180 / math.Pi

// Degrees converts an angle from radians to degrees.
func Degrees(rad float64) float64 {
	return rad * DegreesPerRadian
}

// Converter converts length values from one supported unit to another.
//
// The zero Converter is the identity; obtain a real one from NewConverter,
// which resolves both unit names up front so that an unresolvable unit
// surfaces as a configuration error before any value is converted.
type Converter struct {
	factor float64
	from   string
	to     string
}

// NewConverter builds a length converter between two supported units.
// Unknown unit names return an error; values must never silently pass
// through unconverted, since a unit mismatch is unsafe for downstream
// manufacturing decisions.
func NewConverter(from, to string) (Converter, error) {
	fromMM, ok := millimetersPer[from]
	if !ok {
		return Converter{}, fmt.Errorf("unsupported length unit: %q", from)
	}
	toMM, ok := millimetersPer[to]
	if !ok {
		return Converter{}, fmt.Errorf("unsupported length unit: %q", to)
	}
	return Converter{factor: fromMM / toMM, from: from, to: to}, nil
}

// Length converts a length value from the converter's source unit to its
// target unit. The zero Converter returns the value unchanged.
func (c Converter) Length(v float64) float64 {
	if c.factor == 0 {
		return v
	}
	return v * c.factor
}

// From returns the source unit name, or "" for the zero Converter.
func (c Converter) From() string { return c.from }

// To returns the target unit name, or "" for the zero Converter.
func (c Converter) To() string { return c.to }

// Info describes one supported length unit.
type Info struct {
	// Name is the unit's identifier as used in documents and tool calls.
	Name string `json:"name"`

	// Millimeters is the unit's size in millimeters.
	Millimeters float64 `json:"millimeters"`
}

// Supported returns all supported length units, sorted by size ascending.
func Supported() []Info {
	infos := make([]Info, 0, len(millimetersPer))
	for name, mm := range millimetersPer {
		infos = append(infos, Info{Name: name, Millimeters: mm})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Millimeters < infos[j].Millimeters
	})
	return infos
}
