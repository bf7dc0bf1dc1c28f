package classify

import (
	"github.com/tobyjack19/hole-tools-mcp/internal/units"
)

// Normalize converts a result's populated length fields with the given
// converter and its tip angle from radians to degrees. Unset fields stay
// unset; normalization never invents values.
//
// Normalize must be applied exactly once per result. It is deliberately not
// idempotent: a second application converts the already-converted values
// again. The aggregator applies it at the single point where results leave
// internal units.
//
// The input is not mutated; the returned result carries fresh pointers.
func Normalize(r Result, conv units.Converter) Result {
	out := r
	out.Drill.Diameter = convertLength(r.Drill.Diameter, conv)
	out.Drill.Depth = convertLength(r.Drill.Depth, conv)
	out.Drill.TipAngle = convertAngle(r.Drill.TipAngle)
	out.CounterBore.Diameter = convertLength(r.CounterBore.Diameter, conv)
	out.CounterBore.Length = convertLength(r.CounterBore.Length, conv)
	return out
}

func convertLength(v *float64, conv units.Converter) *float64 {
	if v == nil {
		return nil
	}
	return ptr(conv.Length(*v))
}

func convertAngle(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return ptr(units.Degrees(*v))
}
