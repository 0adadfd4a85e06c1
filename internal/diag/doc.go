// Package diag defines the diagnostic model shared by the visitor, the
// rule registry and the output formatters.
//
// Diagnostic is the central record: Severity, Code (stable ID + rule slug +
// WCAG guideline reference), Message, the primary source.Span, optional
// Notes and FixHints. Producers emit through a diag.Reporter so that
// storage and formatting stay decoupled; BagReporter aggregates into a Bag,
// DedupReporter collapses duplicate (code, span) pairs before they reach
// storage.
//
// Bag supports deterministic Sort (file, start, end, severity desc, code),
// Dedup and Merge, so per-file bags can be combined into one stable run
// result regardless of rule evaluation order.
//
// The package performs no formatting or IO. Rendering lives in
// internal/diagfmt.
package diag
