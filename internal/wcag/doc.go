// Package wcag implements the WCAG 2.1 contrast model: the sRGB color
// triple, relative luminance, contrast ratio, and the AA/AAA conformance
// tables.
//
// The package is pure and deterministic. Malformed input is always
// rejected (ErrInvalidColorFormat, ErrInvalidLevel) — there is no implicit
// black-on-white defaulting here; that policy belongs to call sites.
package wcag
