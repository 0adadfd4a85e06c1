package wcag

import (
	"errors"
	"testing"
)

func TestParseHex_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Color
	}{
		{name: "black with hash", input: "#000000", want: Color{0, 0, 0}},
		{name: "white with hash", input: "#FFFFFF", want: Color{255, 255, 255}},
		{name: "white lowercase", input: "#ffffff", want: Color{255, 255, 255}},
		{name: "without hash", input: "767676", want: Color{0x76, 0x76, 0x76}},
		{name: "mixed case", input: "#AbCdEf", want: Color{0xab, 0xcd, 0xef}},
		{name: "mid gray", input: "#808080", want: Color{128, 128, 128}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if err != nil {
				t.Fatalf("ParseHex(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHex_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "non-hex digits", input: "#ZZZZZZ"},
		{name: "shorthand form", input: "#FFF"},
		{name: "too long", input: "#FFFFFFF"},
		{name: "empty", input: ""},
		{name: "bare hash", input: "#"},
		{name: "color name", input: "white"},
		{name: "trailing garbage", input: "#00000g"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHex(tt.input)
			if err == nil {
				t.Fatalf("ParseHex(%q) expected error, got nil", tt.input)
			}
			if !errors.Is(err, ErrInvalidColorFormat) {
				t.Errorf("ParseHex(%q) error = %v, want ErrInvalidColorFormat", tt.input, err)
			}
		})
	}
}

func TestNewColor(t *testing.T) {
	c, err := NewColor(118, 118, 118)
	if err != nil {
		t.Fatalf("NewColor error: %v", err)
	}
	if c != (Color{118, 118, 118}) {
		t.Errorf("NewColor = %v", c)
	}

	for _, bad := range [][3]int{{-1, 0, 0}, {0, 256, 0}, {0, 0, 1000}} {
		if _, err := NewColor(bad[0], bad[1], bad[2]); !errors.Is(err, ErrInvalidColorFormat) {
			t.Errorf("NewColor(%v) error = %v, want ErrInvalidColorFormat", bad, err)
		}
	}
}

func TestColor_Hex_Roundtrip(t *testing.T) {
	c := Color{R: 0x76, G: 0x12, B: 0xef}
	if got := c.Hex(); got != "#7612ef" {
		t.Errorf("Hex() = %q, want %q", got, "#7612ef")
	}
	back, err := ParseHex(c.Hex())
	if err != nil {
		t.Fatalf("ParseHex(Hex()) error: %v", err)
	}
	if back != c {
		t.Errorf("roundtrip = %v, want %v", back, c)
	}
}
