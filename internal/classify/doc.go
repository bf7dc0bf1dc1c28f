// Package classify recognizes manufacturing hole types from ordered segment
// sequences and aggregates per-group occurrence counts.
//
// # Taxonomy
//
// A hole's wall profile, read from the entry face toward the bottom, is a
// sequence of cone, cylinder, and flat segments. The ordered kind signature,
// together with the through and threaded flags, selects one of a fixed set
// of labels: spot drills, plain through/blind holes, counter-sunk and
// counter-bored variants (through, blind, flat- or cone-bottomed), each with
// a "with threaded" form. Unrecognized signatures, and any profile with more
// than four segments, classify as "Unknown".
//
// The label strings are an external contract. Downstream consumers key off
// the exact text, so they are preserved verbatim, including the historical
// lowercase "through" in the 3-segment "CounterBore through Hole" label.
//
// # Dispatch
//
// Classification is a flat pattern table keyed on the kind signature rather
// than a nested decision tree. This keeps the taxonomy's coverage auditable:
// two 2-segment patterns deliberately assign no label when the hole is not a
// through hole (their blind variants are unclassified upstream), and the
// table makes that gap explicit instead of burying it in branch fall-through.
//
// # Dimensions
//
// Each recognized pattern extracts the dimensions meaningful for its shape:
// drill diameter, depth, and tip angle, and counter-bore diameter and length.
// Absent dimensions are nil, not zero. Values stay in the geometry document's
// internal units until Normalize converts them exactly once for presentation.
//
// # Purity
//
// Classify, Normalize, Aggregate, and Summarize are pure functions over
// immutable inputs: no shared state, no caching, deterministic output.
package classify
