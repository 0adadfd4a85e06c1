package rules

import (
	"fmt"

	"axlint/internal/diag"
	"axlint/internal/engine"
	"axlint/internal/widget"
)

// tabKeywords mark an explicit keyboard-focus assignment.
var tabKeywords = []string{"takefocus", "tabindex"}

// missingTabIndexRule: interactive controls without an explicit focus
// assignment may be unreachable by keyboard-only users.
type missingTabIndexRule struct{}

func (missingTabIndexRule) Code() diag.Code { return diag.AxMissingTabIndex }

func (missingTabIndexRule) Check(rec *engine.Record, rep diag.Reporter) {
	if !rec.Is(widget.Interactive) {
		return
	}
	if rec.HasKeyword(tabKeywords...) {
		return
	}
	diag.ReportWarning(rep, diag.AxMissingTabIndex, rec.Span,
		fmt.Sprintf("interactive UI control '%s' should have tab index assignment", rec.ClassName)).
		WithHint(fmt.Sprintf("add takefocus=True to the %s constructor", rec.ClassName)).
		Emit()
}
