package rules

import (
	"fmt"
	"strings"

	"axlint/internal/diag"
	"axlint/internal/engine"
	"axlint/internal/widget"
)

// mnemonicMarker prefixes the accelerator character in a label text,
// e.g. "&Save" for Alt+S.
const mnemonicMarker = "&"

// acceleratorKeywords satisfy the accelerator rule without a marker in
// the text: "underline" is the native way to designate the mnemonic
// character by index, "accelerator" declares a shortcut string.
var acceleratorKeywords = []string{"accelerator", "underline"}

// missingAcceleratorRule: button-like widgets with a literal label but no
// keyboard shortcut of any kind. Only fires when the text is a known
// string literal; unknown values are not guessed at.
type missingAcceleratorRule struct{}

func (missingAcceleratorRule) Code() diag.Code { return diag.AxMissingAccelerator }

func (missingAcceleratorRule) Check(rec *engine.Record, rep diag.Reporter) {
	if !rec.Is(widget.TextBearing | widget.Interactive) {
		return
	}
	text, ok := rec.TextKeyword("text")
	if !ok {
		return
	}
	if strings.Contains(text, mnemonicMarker) {
		return
	}
	if rec.HasKeyword(acceleratorKeywords...) {
		return
	}
	diag.ReportWarning(rep, diag.AxMissingAccelerator, rec.Span,
		fmt.Sprintf("%s label %q has no keyboard accelerator", rec.ClassName, text)).
		WithHint("mark the mnemonic character with '&' or set underline=<index>").
		Emit()
}

// missingUnderlineRule: the label advertises a mnemonic with '&' but the
// widget never sets the underline index, so the marker renders literally
// and the shortcut does not exist.
type missingUnderlineRule struct{}

func (missingUnderlineRule) Code() diag.Code { return diag.AxMissingUnderline }

func (missingUnderlineRule) Check(rec *engine.Record, rep diag.Reporter) {
	if !rec.Is(widget.TextBearing) {
		return
	}
	text, ok := rec.TextKeyword("text")
	if !ok || !strings.Contains(text, mnemonicMarker) {
		return
	}
	if rec.HasKeyword("underline") {
		return
	}
	diag.ReportWarning(rep, diag.AxMissingUnderline, rec.Span,
		fmt.Sprintf("%s label %q marks a mnemonic but sets no underline index", rec.ClassName, text)).
		WithHint(fmt.Sprintf("add underline=%d to the %s constructor", strings.Index(text, mnemonicMarker), rec.ClassName)).
		Emit()
}
