package wcag

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidColorFormat reports malformed hex text or an out-of-range
// channel. The color model never clamps and never substitutes a default;
// defaulting is a caller-site policy.
var ErrInvalidColorFormat = errors.New("invalid color format")

// Color is one sRGB color with 8-bit channels.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// NewColor validates an integer channel triple. Channels outside [0, 255]
// are rejected, not clamped.
func NewColor(r, g, b int) (Color, error) {
	for _, ch := range [3]int{r, g, b} {
		if ch < 0 || ch > 255 {
			return Color{}, fmt.Errorf("%w: channel %d out of range [0,255]", ErrInvalidColorFormat, ch)
		}
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// ParseHex parses a 6-hex-digit color, case-insensitive, with or without
// the leading '#'. Shorthand forms like #FFF are rejected.
func ParseHex(s string) (Color, error) {
	hexPart := strings.TrimPrefix(s, "#")
	if len(hexPart) != 6 {
		return Color{}, fmt.Errorf("%w: %q must have exactly 6 hex digits", ErrInvalidColorFormat, s)
	}
	var channels [3]uint8
	for i := range 3 {
		hi, ok1 := hexDigit(hexPart[i*2])
		lo, ok2 := hexDigit(hexPart[i*2+1])
		if !ok1 || !ok2 {
			return Color{}, fmt.Errorf("%w: %q contains a non-hex digit", ErrInvalidColorFormat, s)
		}
		channels[i] = hi<<4 | lo
	}
	return Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// Hex returns the canonical lowercase "#rrggbb" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}
