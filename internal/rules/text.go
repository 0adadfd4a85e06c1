package rules

import (
	"fmt"

	"axlint/internal/diag"
	"axlint/internal/engine"
	"axlint/internal/widget"
)

// textKeywords are the attributes that give a widget an accessible name.
// "title" and "label" cover toolkit classes that spell it differently.
var textKeywords = []string{"text", "title", "label"}

// missingTextRule: text-bearing widgets constructed without any naming
// attribute are invisible to screen readers.
type missingTextRule struct{}

func (missingTextRule) Code() diag.Code { return diag.AxMissingText }

func (missingTextRule) Check(rec *engine.Record, rep diag.Reporter) {
	if !rec.Is(widget.TextBearing) {
		return
	}
	if rec.HasKeyword(textKeywords...) {
		return
	}
	diag.ReportWarning(rep, diag.AxMissingText, rec.Span,
		fmt.Sprintf("UI element '%s' should have text attribute for accessibility", rec.ClassName)).
		WithHint(fmt.Sprintf("add text=... to the %s constructor", rec.ClassName)).
		Emit()
}
