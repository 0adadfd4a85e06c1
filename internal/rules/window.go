package rules

import (
	"fmt"

	"axlint/internal/diag"
	"axlint/internal/engine"
	"axlint/internal/widget"
)

// missingWindowTitleRule: top-level windows need a title so assistive
// technology (and the task bar) can announce them. A title() call on the
// bound variable anywhere in the same scope satisfies the rule.
type missingWindowTitleRule struct{}

func (missingWindowTitleRule) Code() diag.Code { return diag.AxMissingWindowTitle }

func (missingWindowTitleRule) Check(rec *engine.Record, rep diag.Reporter) {
	if !rec.Is(widget.TopLevel) {
		return
	}
	if rec.MethodSeen("title") || rec.HasKeyword("title") {
		return
	}
	diag.ReportWarning(rep, diag.AxMissingWindowTitle, rec.Span,
		fmt.Sprintf("top-level window '%s' should have a title set", rec.ClassName)).
		WithHint("call .title(...) on the window after construction").
		Emit()
}
