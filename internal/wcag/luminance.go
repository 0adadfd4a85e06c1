package wcag

import (
	"math"
)

// WCAG 2.1 relative-luminance constants. These values are mandated by the
// specification and must not be "corrected".
const (
	srgbLinearThreshold = 0.03928
	srgbLinearDivisor   = 12.92
	srgbGamma           = 2.4

	lumWeightR = 0.2126
	lumWeightG = 0.7152
	lumWeightB = 0.0722
)

// linearize maps one 8-bit channel into linear light.
func linearize(channel uint8) float64 {
	c := float64(channel) / 255.0
	if c <= srgbLinearThreshold {
		return c / srgbLinearDivisor
	}
	return math.Pow((c+0.055)/1.055, srgbGamma)
}

// RelativeLuminance computes the WCAG 2.1 relative luminance of a color,
// in [0, 1] (0 = darkest black, 1 = lightest white).
func RelativeLuminance(c Color) float64 {
	return lumWeightR*linearize(c.R) +
		lumWeightG*linearize(c.G) +
		lumWeightB*linearize(c.B)
}

// ContrastRatio computes (Lmax + 0.05) / (Lmin + 0.05) between two colors.
// The result is in [1, 21] and symmetric in its arguments: max/min are
// taken explicitly, so the foreground/background order never matters.
func ContrastRatio(a, b Color) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}
