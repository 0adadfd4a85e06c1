package wcag

import (
	"math"
	"testing"
)

var (
	black = Color{0, 0, 0}
	white = Color{255, 255, 255}
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestRelativeLuminance_Anchors(t *testing.T) {
	if got := RelativeLuminance(black); !almostEqual(got, 0.0, 1e-9) {
		t.Errorf("luminance(black) = %v, want 0", got)
	}
	if got := RelativeLuminance(white); !almostEqual(got, 1.0, 1e-9) {
		t.Errorf("luminance(white) = %v, want 1", got)
	}
}

func TestRelativeLuminance_Monotonic(t *testing.T) {
	// Ровный серый: яркость должна расти вместе с каналом.
	prev := -1.0
	for v := 0; v <= 255; v += 15 {
		l := RelativeLuminance(Color{uint8(v), uint8(v), uint8(v)})
		if l <= prev {
			t.Fatalf("luminance not increasing at channel %d: %v <= %v", v, l, prev)
		}
		prev = l
	}
}

func TestContrastRatio_BlackWhite(t *testing.T) {
	if got := ContrastRatio(black, white); !almostEqual(got, 21.0, 1e-6) {
		t.Errorf("ContrastRatio(black, white) = %v, want 21.0", got)
	}
}

func TestContrastRatio_Symmetry(t *testing.T) {
	tests := []struct {
		name string
		a, b Color
	}{
		{name: "black/white", a: black, b: white},
		{name: "gray pair", a: Color{118, 118, 118}, b: white},
		{name: "arbitrary pair", a: Color{0x12, 0x34, 0x56}, b: Color{0xab, 0xcd, 0xef}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab := ContrastRatio(tt.a, tt.b)
			ba := ContrastRatio(tt.b, tt.a)
			if !almostEqual(ab, ba, 1e-12) {
				t.Errorf("ratio not symmetric: %v vs %v", ab, ba)
			}
		})
	}
}

func TestContrastRatio_SameColor(t *testing.T) {
	for _, c := range []Color{black, white, {118, 118, 118}} {
		if got := ContrastRatio(c, c); !almostEqual(got, 1.0, 1e-12) {
			t.Errorf("ContrastRatio(%v, %v) = %v, want 1.0", c, c, got)
		}
	}
}

func TestContrastRatio_KnownPairs(t *testing.T) {
	tests := []struct {
		name string
		fg   string
		bg   string
		want float64
	}{
		{name: "gray 767676 on white", fg: "#767676", bg: "#FFFFFF", want: 4.54},
		{name: "light gray on white", fg: "#CCCCCC", bg: "#FFFFFF", want: 1.61},
		{name: "999999 on white", fg: "#999999", bg: "#FFFFFF", want: 2.85},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fg, err := ParseHex(tt.fg)
			if err != nil {
				t.Fatal(err)
			}
			bg, err := ParseHex(tt.bg)
			if err != nil {
				t.Fatal(err)
			}
			got := ContrastRatio(fg, bg)
			if !almostEqual(got, tt.want, 0.01) {
				t.Errorf("ContrastRatio(%s, %s) = %v, want ~%v", tt.fg, tt.bg, got, tt.want)
			}
		})
	}
}
