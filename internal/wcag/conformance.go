package wcag

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLevel reports a conformance level outside {AA, AAA}.
var ErrInvalidLevel = errors.New("invalid conformance level")

// Level is a WCAG conformance tier.
type Level uint8

const (
	// LevelAA is the minimum conformance tier.
	LevelAA Level = iota
	// LevelAAA is the enhanced conformance tier.
	LevelAAA
)

func (l Level) String() string {
	switch l {
	case LevelAA:
		return "AA"
	case LevelAAA:
		return "AAA"
	}
	return "UNKNOWN"
}

// ParseLevel reads a conformance level, case-insensitive.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "AA":
		return LevelAA, nil
	case "AAA":
		return LevelAAA, nil
	}
	return LevelAA, fmt.Errorf("%w: %q (expected AA or AAA)", ErrInvalidLevel, s)
}

// Contrast requirement table, WCAG 2.1 SC 1.4.3 / 1.4.6.
const (
	aaNormalRatio  = 4.5
	aaLargeRatio   = 3.0
	aaaNormalRatio = 7.0
	aaaLargeRatio  = 4.5
)

// RequiredRatio returns the minimum contrast ratio for a level and text
// size class. "Large" is caller-supplied; font metrics are not inferred
// here.
func RequiredRatio(level Level, largeText bool) float64 {
	if largeText {
		if level == LevelAAA {
			return aaaLargeRatio
		}
		return aaLargeRatio
	}
	if level == LevelAAA {
		return aaaNormalRatio
	}
	return aaNormalRatio
}

// Grade letter-grades a ratio for the given size class. A ratio exactly
// equal to a threshold meets it.
func Grade(ratio float64, largeText bool) string {
	switch {
	case ratio >= RequiredRatio(LevelAAA, largeText):
		return "AAA"
	case ratio >= RequiredRatio(LevelAA, largeText):
		return "AA"
	}
	return "FAIL"
}

// Result is the outcome of one contrast evaluation.
type Result struct {
	Ratio         float64
	RequiredRatio float64
	PassesAA      bool
	PassesAAA     bool
	MeetsLevel    bool
	LevelTested   Level
	LargeText     bool
}

// Grade returns the letter grade for the evaluated ratio.
func (r Result) Grade() string {
	return Grade(r.Ratio, r.LargeText)
}

// Evaluate computes the full contrast verdict for a color pair. It fails
// only for a level outside {AA, AAA}; the colors are already validated by
// construction.
func Evaluate(fg, bg Color, largeText bool, level Level) (Result, error) {
	if level != LevelAA && level != LevelAAA {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	ratio := ContrastRatio(fg, bg)
	res := Result{
		Ratio:         ratio,
		RequiredRatio: RequiredRatio(level, largeText),
		PassesAA:      ratio >= RequiredRatio(LevelAA, largeText),
		PassesAAA:     ratio >= RequiredRatio(LevelAAA, largeText),
		LevelTested:   level,
		LargeText:     largeText,
	}
	if level == LevelAAA {
		res.MeetsLevel = res.PassesAAA
	} else {
		res.MeetsLevel = res.PassesAA
	}
	return res, nil
}

// EvaluateHex is Evaluate over hex text; malformed colors surface
// ErrInvalidColorFormat immediately, never a computed ratio.
func EvaluateHex(fg, bg string, largeText bool, level Level) (Result, error) {
	fgc, err := ParseHex(fg)
	if err != nil {
		return Result{}, fmt.Errorf("foreground: %w", err)
	}
	bgc, err := ParseHex(bg)
	if err != nil {
		return Result{}, fmt.Errorf("background: %w", err)
	}
	return Evaluate(fgc, bgc, largeText, level)
}
