package rules

import (
	"fmt"

	"axlint/internal/diag"
	"axlint/internal/engine"
	"axlint/internal/source"
	"axlint/internal/wcag"
)

// contrastRule checks fg/bg keyword pairs against the configured WCAG
// level. A missing side falls back to the policy default (black on white
// out of the box); the rule only runs when at least one side is an
// explicit, statically-known color literal, so unstyled widgets are not
// flooded with verdicts about toolkit theme defaults.
type contrastRule struct {
	policy ContrastPolicy
}

func (contrastRule) Code() diag.Code { return diag.AxLowContrast }

func (r contrastRule) Check(rec *engine.Record, rep diag.Reporter) {
	fg, fgSpan, fgKnown := r.colorKeyword(rec, rep, "foreground", "fg")
	bg, bgSpan, bgKnown := r.colorKeyword(rec, rep, "background", "bg")
	if !fgKnown && !bgKnown {
		return
	}
	span := rec.Span
	switch {
	case fgKnown && bgKnown:
		span = fgSpan.Cover(bgSpan)
	case fgKnown:
		span = fgSpan
		bg = r.policy.DefaultBg
	default:
		span = bgSpan
		fg = r.policy.DefaultFg
	}

	res, err := wcag.Evaluate(fg, bg, r.policy.LargeText, r.policy.Level)
	if err != nil {
		return
	}
	if res.MeetsLevel {
		return
	}
	diag.ReportWarning(rep, diag.AxLowContrast, span,
		fmt.Sprintf("contrast ratio %.2f:1 between %s and %s is below the %s requirement of %.1f:1",
			res.Ratio, fg.Hex(), bg.Hex(), res.LevelTested, res.RequiredRatio)).
		WithHint("darken the foreground or lighten the background").
		Emit()
}

// colorKeyword extracts one side of the pair. Malformed hex literals get
// an invalid-color error at the value span and are then treated as
// unknown; identifiers and out-of-table names are silently unknown.
func (r contrastRule) colorKeyword(rec *engine.Record, rep diag.Reporter, names ...string) (wcag.Color, source.Span, bool) {
	for _, name := range names {
		v, ok := rec.Keyword(name)
		if !ok {
			continue
		}
		if v.Kind != engine.ValString {
			return wcag.Color{}, source.Span{}, false
		}
		c, known, err := ResolveColorLiteral(v.Str)
		if err != nil {
			diag.ReportError(rep, diag.AxInvalidColor, v.Span,
				fmt.Sprintf("%s value %q is not a valid #RRGGBB color", name, v.Str)).
				Emit()
			return wcag.Color{}, source.Span{}, false
		}
		return c, v.Span, known
	}
	return wcag.Color{}, source.Span{}, false
}
