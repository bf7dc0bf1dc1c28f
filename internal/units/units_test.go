package units

import (
	"math"
	"testing"
)

func TestConverter_Length(t *testing.T) {
	tests := []struct {
		from, to string
		value    float64
		want     float64
	}{
		{"cm", "mm", 1.2, 12},
		{"mm", "cm", 12, 1.2},
		{"mm", "mm", 6, 6},
		{"in", "mm", 1, 25.4},
		{"mm", "in", 25.4, 1},
		{"m", "cm", 0.5, 50},
		{"ft", "in", 1, 12},
		{"cm", "mm", 0, 0},
	}

	for _, tt := range tests {
		conv, err := NewConverter(tt.from, tt.to)
		if err != nil {
			t.Fatalf("NewConverter(%q, %q) failed: %v", tt.from, tt.to, err)
		}
		got := conv.Length(tt.value)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%g %s -> %s: got %g, want %g", tt.value, tt.from, tt.to, got, tt.want)
		}
	}
}

func TestNewConverter_UnknownUnit(t *testing.T) {
	if _, err := NewConverter("furlong", "mm"); err == nil {
		t.Error("expected error for unknown source unit")
	}
	if _, err := NewConverter("mm", "furlong"); err == nil {
		t.Error("expected error for unknown target unit")
	}
	if _, err := NewConverter("", "mm"); err == nil {
		t.Error("expected error for empty source unit")
	}
}

func TestConverter_Zero(t *testing.T) {
	// The zero Converter is the identity.
	var conv Converter
	if got := conv.Length(3.5); got != 3.5 {
		t.Errorf("zero converter: got %v, want 3.5", got)
	}
	if conv.From() != "" || conv.To() != "" {
		t.Errorf("zero converter names: got %q -> %q", conv.From(), conv.To())
	}
}

func TestDegrees(t *testing.T) {
	tests := []struct {
		rad  float64
		want float64
	}{
		{0, 0},
		{math.Pi, 180},
		{math.Pi / 2, 90},
		{math.Pi / 4, 45},
		{2 * math.Pi, 360},
		{-math.Pi / 2, -90},
	}

	for _, tt := range tests {
		if got := Degrees(tt.rad); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Degrees(%g): got %g, want %g", tt.rad, got, tt.want)
		}
	}

	// The factor is exactly 180/pi, not an approximation.
	if DegreesPerRadian != 180/math.Pi {
		t.Errorf("DegreesPerRadian: got %v, want 180/pi", DegreesPerRadian)
	}
}

func TestSupported(t *testing.T) {
	infos := Supported()
	if len(infos) != 5 {
		t.Fatalf("got %d units, want 5", len(infos))
	}

	// Sorted ascending by size.
	for i := 1; i < len(infos); i++ {
		if infos[i].Millimeters <= infos[i-1].Millimeters {
			t.Errorf("units not sorted: %q (%g) after %q (%g)",
				infos[i].Name, infos[i].Millimeters, infos[i-1].Name, infos[i-1].Millimeters)
		}
	}

	if infos[0].Name != "mm" || infos[0].Millimeters != 1 {
		t.Errorf("smallest unit: got %+v, want mm/1", infos[0])
	}
}
