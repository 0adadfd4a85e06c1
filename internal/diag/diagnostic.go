package diag

import (
	"axlint/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

// FixHint is a suggested keyword or call to add; purely informational,
// rendered after the message when requested.
type FixHint struct {
	Title string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Hints    []FixHint
}
