package rules

import (
	"axlint/internal/diag"
	"axlint/internal/engine"
	"axlint/internal/wcag"
)

// Rule is one stateless accessibility check: a predicate over a single
// widget-construction record that reports zero or one diagnostic. Rules
// share no mutable state and may run in any order.
type Rule interface {
	Code() diag.Code
	Check(rec *engine.Record, rep diag.Reporter)
}

// ContrastPolicy configures the low-contrast rule. The black-on-white
// defaults for missing fg/bg keywords live here, at the rule site — the
// wcag package itself never defaults.
type ContrastPolicy struct {
	Level     wcag.Level
	LargeText bool
	DefaultFg wcag.Color
	DefaultBg wcag.Color
}

// DefaultContrastPolicy is AA, normal text, black on white.
func DefaultContrastPolicy() ContrastPolicy {
	return ContrastPolicy{
		Level:     wcag.LevelAA,
		DefaultFg: wcag.Color{R: 0, G: 0, B: 0},
		DefaultBg: wcag.Color{R: 255, G: 255, B: 255},
	}
}

// Options configures registry construction.
type Options struct {
	// Enabled filters rules by code; nil enables everything.
	Enabled  func(code diag.Code) bool
	Contrast ContrastPolicy
}

// Registry holds the active rule set. It is built once at engine start
// and passed explicitly to dispatch — no ambient global registration.
type Registry struct {
	rules []Rule
}

// NewRegistry builds the standard rule set, filtered by opts.Enabled.
func NewRegistry(opts Options) *Registry {
	all := []Rule{
		missingTextRule{},
		missingTabIndexRule{},
		missingWindowTitleRule{},
		missingAcceleratorRule{},
		missingUnderlineRule{},
		contrastRule{policy: opts.Contrast},
	}
	reg := &Registry{rules: make([]Rule, 0, len(all))}
	for _, rl := range all {
		if opts.Enabled != nil && !opts.Enabled(rl.Code()) {
			continue
		}
		reg.rules = append(reg.rules, rl)
	}
	return reg
}

// Rules returns the active rules in dispatch order. The order is fixed
// for reproducible output but carries no semantic weight.
func (reg *Registry) Rules() []Rule {
	return reg.rules
}

// Sink adapts the registry to the visitor: every finalized record is
// dispatched to every active rule through the given reporter. Wrap rep
// in a DedupReporter to collapse identical (code, span) pairs.
func (reg *Registry) Sink(rep diag.Reporter) engine.RecordSink {
	return engine.SinkFunc(func(rec *engine.Record) {
		for _, rl := range reg.rules {
			rl.Check(rec, rep)
		}
	})
}
