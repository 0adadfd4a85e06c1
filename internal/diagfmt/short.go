package diagfmt

import (
	"io"

	"axlint/internal/diag"
	"axlint/internal/source"
)

// Short renders one line per diagnostic in the stable machine-friendly
// form shared with golden tests:
// <path>:<line>:<col>: <SEV> <CODE>: <message>
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, includeNotes bool) error {
	_, err := io.WriteString(w, diag.FormatShortDiagnostics(bag.Items(), fs, includeNotes))
	return err
}
