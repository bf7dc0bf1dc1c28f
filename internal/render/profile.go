package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tobyjack19/hole-tools-mcp/internal/geometry"
)

// Options controls profile rendering.
type Options struct {
	// Height is the output image height in pixels. Default 400.
	Height int

	// Color is the silhouette fill color as a hex string ("#RRGGBB").
	// When empty, a deterministic per-hole-type color is used.
	Color string

	// Smooth applies a light Gaussian blur to soften the rasterized
	// silhouette edges.
	Smooth bool
}

// ProfileResult contains a rendered hole cross-section.
type ProfileResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	HoleType    string `json:"hole_type,omitempty"`
	FillColor   string `json:"fill_color"`
}

// rasterHeight is the internal rasterization height before scaling.
const rasterHeight = 512

// Profile renders a hole's cross-section silhouette: the wall profile
// (radius against depth), mirrored about the hole axis, filled on a white
// background. The entry face is at the top of the image.
//
// holeType selects the default fill color and is echoed in the result; pass
// the classifier's label, or "" for a neutral gray.
func Profile(hole geometry.Hole, holeType string, opts Options) (*ProfileResult, error) {
	if len(hole.Segments) == 0 {
		return nil, fmt.Errorf("hole has no segments")
	}
	if opts.Height <= 0 {
		opts.Height = 400
	}

	fill, hex, err := fillColor(holeType, opts.Color)
	if err != nil {
		return nil, err
	}

	outline, depth, maxRadius := wallOutline(hole)
	if depth <= 0 || maxRadius <= 0 {
		return nil, fmt.Errorf("hole has no positive extent (depth=%g, radius=%g)", depth, maxRadius)
	}

	img := rasterize(outline, depth, maxRadius)

	var out image.Image = img
	if opts.Smooth {
		out = blur.Gaussian(out, 1.5)
	}
	out = imaging.Resize(out, 0, opts.Height, imaging.Lanczos)

	// Recolor after scaling so the anti-aliased edge keeps its gradient.
	final := tint(out, fill)

	var buf bytes.Buffer
	if err := png.Encode(&buf, final); err != nil {
		return nil, fmt.Errorf("failed to encode profile image: %w", err)
	}

	return &ProfileResult{
		Width:       final.Bounds().Dx(),
		Height:      final.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		HoleType:    holeType,
		FillColor:   hex,
	}, nil
}

// profilePoint is one vertex of the wall outline: axial depth from the entry
// face and wall radius at that depth, both in the hole's own units.
type profilePoint struct {
	depth  float64
	radius float64
}

// wallOutline walks the segment sequence from the entry face downward and
// returns the outline vertices plus the total depth and widest radius.
//
// Cones taper linearly by their half angle, cylinders hold their radius,
// and flats step the radius to the next segment's at constant depth
// (a zero-height shoulder).
func wallOutline(hole geometry.Hole) (points []profilePoint, depth, maxRadius float64) {
	r := hole.Segments[0].TopDiameter / 2
	points = append(points, profilePoint{0, r})
	maxRadius = r

	for i, seg := range hole.Segments {
		switch seg.Kind {
		case geometry.Cone:
			r = seg.TopDiameter/2 - seg.Height*math.Tan(seg.HalfAngle)
			if r < 0 {
				r = 0
			}
			depth += seg.Height
		case geometry.Cylinder:
			r = seg.TopDiameter / 2
			depth += seg.Height
		case geometry.Flat:
			if i+1 < len(hole.Segments) {
				r = hole.Segments[i+1].TopDiameter / 2
			} else {
				r = 0
			}
			depth += seg.Height
		}
		if r > maxRadius {
			maxRadius = r
		}
		points = append(points, profilePoint{depth, r})
	}
	return points, depth, maxRadius
}

// rasterize fills the mirrored silhouette into a grayscale image: black
// inside the hole, white outside. A margin of 8% is left on every side.
func rasterize(outline []profilePoint, depth, maxRadius float64) *image.Gray {
	h := rasterHeight
	aspect := (2 * maxRadius) / depth
	w := int(float64(h) * aspect)
	if w < 16 {
		w = 16
	}
	if w > 4*h {
		w = 4 * h
	}

	marginX := w / 12
	marginY := h / 12
	plotW := float64(w - 2*marginX)
	plotH := float64(h - 2*marginY)
	centerX := float64(w) / 2

	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}

	for y := 0; y < int(plotH); y++ {
		d := depth * float64(y) / plotH
		r := radiusAt(outline, d)
		halfPx := r / maxRadius * plotW / 2
		x1 := int(centerX - halfPx)
		x2 := int(centerX + halfPx)
		for x := x1; x <= x2; x++ {
			if x >= 0 && x < w {
				img.SetGray(x, y+marginY, color.Gray{Y: 0})
			}
		}
	}
	return img
}

// radiusAt interpolates the wall radius at a given depth. Flat shoulders
// produce coincident depths; the later (inner) vertex wins at the step.
func radiusAt(outline []profilePoint, d float64) float64 {
	for i := 0; i+1 < len(outline); i++ {
		a, b := outline[i], outline[i+1]
		if d < a.depth || d > b.depth {
			continue
		}
		if b.depth == a.depth {
			return b.radius
		}
		t := (d - a.depth) / (b.depth - a.depth)
		return a.radius + t*(b.radius-a.radius)
	}
	return outline[len(outline)-1].radius
}

// fillColor resolves the silhouette color: an explicit hex value wins,
// otherwise each hole type gets a stable color derived from its label.
func fillColor(holeType, hex string) (colorful.Color, string, error) {
	if hex != "" {
		c, err := colorful.Hex(hex)
		if err != nil {
			return colorful.Color{}, "", fmt.Errorf("invalid fill color %q: %w", hex, err)
		}
		return c, c.Hex(), nil
	}
	if holeType == "" {
		c := colorful.Color{R: 0.45, G: 0.45, B: 0.45}
		return c, c.Hex(), nil
	}
	c := TypeColor(holeType)
	return c, c.Hex(), nil
}

// TypeColor returns a deterministic display color for a hole type label.
// The hue is hashed from the label; saturation and value are fixed so the
// palette stays legible across the taxonomy.
func TypeColor(holeType string) colorful.Color {
	h := fnv.New32a()
	h.Write([]byte(holeType))
	hue := float64(h.Sum32()%360)
	return colorful.Hsv(hue, 0.65, 0.85)
}

// tint maps the grayscale silhouette onto the fill color: black pixels take
// the full fill color, white stays white, and anti-aliased edges blend.
func tint(img image.Image, fill colorful.Color) *image.NRGBA {
	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)
	fr, fg, fb := fill.RGB255()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			g, _, _, _ := img.At(x, y).RGBA()
			// t is 1 inside the silhouette, 0 outside.
			t := 1 - float64(g)/0xffff
			out.SetNRGBA(x, y, color.NRGBA{
				R: blend(fr, t),
				G: blend(fg, t),
				B: blend(fb, t),
				A: 0xff,
			})
		}
	}
	return out
}

func blend(c uint8, t float64) uint8 {
	return uint8(float64(c)*t + 255*(1-t))
}
