package engine

import (
	"axlint/internal/source"
	"axlint/internal/widget"
)

// Record is one widget-construction record: everything the rules may know
// about a single construction call site. The visitor is the only writer;
// once a record is dispatched at scope exit it must be treated as frozen.
type Record struct {
	ClassName  string
	Class      widget.Class
	Positional int
	Keywords   map[string]Value
	Span       source.Span
	Parent     *Record
	Var        string // variable the widget is bound to, "" if unbound

	// Methods are the configure-style calls observed on the bound
	// variable before its scope closed ("title", "configure", ...),
	// keyed by method name with the call span.
	Methods map[string]source.Span
}

// Keyword returns the value of a keyword argument.
func (r *Record) Keyword(name string) (Value, bool) {
	v, ok := r.Keywords[name]
	return v, ok
}

// HasKeyword reports whether any of the given keyword names is present,
// regardless of its value.
func (r *Record) HasKeyword(names ...string) bool {
	for _, name := range names {
		if _, ok := r.Keywords[name]; ok {
			return true
		}
	}
	return false
}

// TextKeyword returns the string value of the given keyword when it is a
// known string literal.
func (r *Record) TextKeyword(name string) (string, bool) {
	v, ok := r.Keywords[name]
	if !ok || v.Kind != ValString {
		return "", false
	}
	return v.Str, true
}

// MethodSeen reports whether the given configure-style method was called
// on the record's variable before scope end.
func (r *Record) MethodSeen(name string) bool {
	_, ok := r.Methods[name]
	return ok
}

// Is reports whether the record's class carries the category tag.
func (r *Record) Is(cat widget.Category) bool {
	return r.Class.Cats.Has(cat)
}
