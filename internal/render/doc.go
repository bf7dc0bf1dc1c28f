// Package render draws hole cross-section profiles as PNG images.
//
// The renderer turns a hole's segment sequence into a silhouette of the
// cut material: wall radius plotted against depth, mirrored about the hole
// axis, with the entry face at the top. Cones taper by their half angle,
// cylinders hold a constant radius, and flat shoulders step the radius at
// constant depth.
//
// Rendering happens at a fixed internal resolution and is then resized to
// the requested output height, optionally with a Gaussian blur pass to
// soften the hard rasterized edge. The silhouette is tinted either with an
// explicit hex color or with a stable per-hole-type color so that renders
// of the same type always match.
//
// Results are returned as base64-encoded PNG with dimensions, the same
// shape the other tools use for image payloads.
package render
