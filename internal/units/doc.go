// Package units converts classified hole dimensions from the geometry
// document's internal length unit to a caller-chosen unit.
//
// Length conversion goes through a closed table of supported units (mm, cm,
// m, in, ft). Angles are independent of that table: tip angles arrive in
// radians and always convert to degrees by the fixed factor 180/pi.
//
// Unit names that are not in the table are a configuration error. NewConverter
// resolves both endpoint units eagerly and fails before any value is touched;
// nothing in this package silently passes a value through unconverted.
package units
