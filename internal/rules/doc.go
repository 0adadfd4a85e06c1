// Package rules holds the accessibility rule set: stateless checks over
// widget-construction records. Rules are assembled into an explicit
// Registry (no init-time side-effect registration) and dispatched once
// per finalized record; deduplication and ordering of the resulting
// diagnostics is the caller's concern, via diag.DedupReporter and
// Bag.Sort.
package rules
