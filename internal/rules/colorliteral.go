package rules

import (
	"strings"

	"axlint/internal/wcag"
)

// namedColors maps the handful of color names common in GUI scripts to
// their hex values. Anything outside this table is treated as statically
// unverifiable, not as an error.
var namedColors = map[string]string{
	"black":  "#000000",
	"white":  "#ffffff",
	"red":    "#ff0000",
	"green":  "#008000",
	"blue":   "#0000ff",
	"yellow": "#ffff00",
	"gray":   "#808080",
	"grey":   "#808080",
	"orange": "#ffa500",
	"purple": "#800080",
}

// ResolveColorLiteral interprets a color string the way a GUI toolkit
// would: "#RRGGBB" hex or a well-known color name. The second return is
// false when the literal is a name outside the table (unverifiable); err
// is non-nil only for a malformed hex literal.
func ResolveColorLiteral(s string) (wcag.Color, bool, error) {
	if strings.HasPrefix(s, "#") {
		c, err := wcag.ParseHex(s)
		if err != nil {
			return wcag.Color{}, false, err
		}
		return c, true, nil
	}
	hex, ok := namedColors[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return wcag.Color{}, false, nil
	}
	c, err := wcag.ParseHex(hex)
	if err != nil {
		return wcag.Color{}, false, err
	}
	return c, true, nil
}
