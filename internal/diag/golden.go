package diag

import (
	"fmt"
	"sort"
	"strings"

	"axlint/internal/source"
)

type shortDiagnostic struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatShortDiagnostics renders diagnostics into a stable
// one-line-per-entry representation used by the CLI short format and by
// golden comparisons in tests.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	rendered := make([]shortDiagnostic, 0, len(diags))
	for i := range diags {
		rendered = appendShortDiagnostic(rendered, &diags[i], fs, includeNotes)
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		if di.Severity != dj.Severity {
			return di.Severity < dj.Severity
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		return di.Message < dj.Message
	})

	var b strings.Builder
	for _, d := range rendered {
		fmt.Fprintf(&b, "%s:%d:%d: %s %s: %s\n", d.Path, d.Line, d.Column, d.Severity, d.Code, d.Message)
	}
	return b.String()
}

func appendShortDiagnostic(out []shortDiagnostic, d *Diagnostic, fs *source.FileSet, includeNotes bool) []shortDiagnostic {
	start, _ := fs.Resolve(d.Primary)
	f := fs.Get(d.Primary.File)
	out = append(out, shortDiagnostic{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Path:     f.FormatPath("relative", fs.BaseDir()),
		Line:     start.Line,
		Column:   start.Col,
		Message:  d.Message,
	})
	if includeNotes {
		for _, n := range d.Notes {
			nstart, _ := fs.Resolve(n.Span)
			nf := fs.Get(n.Span.File)
			out = append(out, shortDiagnostic{
				Severity: "NOTE",
				Code:     d.Code.ID(),
				Path:     nf.FormatPath("relative", fs.BaseDir()),
				Line:     nstart.Line,
				Column:   nstart.Col,
				Message:  n.Msg,
			})
		}
	}
	return out
}
