package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"axlint/internal/diag"
	"axlint/internal/source"
)

type prettyPalette struct {
	err  *color.Color
	warn *color.Color
	info *color.Color
	code *color.Color
	pos  *color.Color
	mark *color.Color
	dim  *color.Color
}

func newPalette(enabled bool) *prettyPalette {
	p := &prettyPalette{
		err:  color.New(color.FgRed, color.Bold),
		warn: color.New(color.FgYellow, color.Bold),
		info: color.New(color.FgCyan, color.Bold),
		code: color.New(color.FgMagenta),
		pos:  color.New(color.Bold),
		mark: color.New(color.FgGreen, color.Bold),
		dim:  color.New(color.Faint),
	}
	if !enabled {
		for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.pos, p.mark, p.dim} {
			c.DisableColor()
		}
	}
	return p
}

func (p *prettyPalette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	}
	return p.info
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes и Hints.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		writeHeading(w, pal, fs, d.Primary, d.Severity, d.Code, d.Message, opts)
		writeContext(w, pal, fs, d.Primary)
		if opts.ShowNotes {
			for _, n := range d.Notes {
				writeHeading(w, pal, fs, n.Span, diag.SevInfo, d.Code, n.Msg, opts)
				writeContext(w, pal, fs, n.Span)
			}
		}
		if opts.ShowHints {
			for _, h := range d.Hints {
				fmt.Fprintf(w, "  %s %s\n", pal.mark.Sprint("help:"), h.Title)
			}
		}
	}
}

func writeHeading(w io.Writer, pal *prettyPalette, fs *source.FileSet, span source.Span, sev diag.Severity, code diag.Code, msg string, opts PrettyOpts) {
	f := fs.Get(span.File)
	start, _ := fs.Resolve(span)
	path := f.FormatPath(opts.PathMode.mode(), fs.BaseDir())
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		pal.pos.Sprintf("%s:%d:%d", path, start.Line, start.Col),
		pal.severity(sev).Sprint(sev.String()),
		pal.code.Sprint(code.ID()),
		msg)
}

// writeContext prints the source line with a ^~~~ underline covering the
// span. Spans crossing a line boundary are underlined to the end of the
// first line only.
func writeContext(w io.Writer, pal *prettyPalette, fs *source.FileSet, span source.Span) {
	if span.Empty() && span.Start == 0 {
		return // синтетический span (ошибки I/O)
	}
	f := fs.Get(span.File)
	start, end := fs.Resolve(span)
	lineText := f.GetLine(start.Line)
	if lineText == "" {
		return
	}
	expanded := strings.ReplaceAll(lineText, "\t", "    ")
	fmt.Fprintf(w, "  %s\n", pal.dim.Sprint(expanded))

	// Колонки 1-based; ширина считается по реальной ширине рун, чтобы
	// подчёркивание не съезжало на CJK и табуляции.
	startCol := int(start.Col)
	endCol := int(end.Col)
	if end.Line != start.Line || endCol <= startCol {
		endCol = startCol + 1
	}
	prefix := byteCols(lineText, 1, startCol)
	covered := byteCols(lineText, startCol, endCol)
	prefix = strings.ReplaceAll(prefix, "\t", "    ")
	covered = strings.ReplaceAll(covered, "\t", "    ")

	pad := strings.Repeat(" ", runewidth.StringWidth(prefix))
	width := runewidth.StringWidth(covered)
	if width < 1 {
		width = 1
	}
	underline := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "  %s%s\n", pad, pal.mark.Sprint(underline))
}

// byteCols returns the substring between two 1-based byte columns,
// clamped to the line.
func byteCols(s string, from, to int) string {
	start := from - 1
	end := to - 1
	if start < 0 {
		start = 0
	}
	if end > len(s) {
		end = len(s)
	}
	if start >= end {
		return ""
	}
	return s[start:end]
}
