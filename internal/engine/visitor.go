package engine

import (
	"axlint/internal/source"
	"axlint/internal/widget"
)

// RecordSink receives finalized widget-construction records. Records are
// handed over only once their enclosing scope has closed, so every
// configure()/title() merge has already happened.
type RecordSink interface {
	Record(rec *Record)
}

// SinkFunc adapts a function to RecordSink.
type SinkFunc func(*Record)

func (f SinkFunc) Record(rec *Record) { f(rec) }

// configure-style methods that merge keyword arguments into the record.
var configureMethods = map[string]bool{
	"configure": true,
	"config":    true,
}

type scope struct {
	// vars maps a variable name to the most recent record bound to it.
	// A nil entry shadows an outer binding after the variable was
	// rebound to something that is not a widget.
	vars map[string]*Record
	recs []*Record // construction order
}

func newScope() *scope {
	return &scope{vars: make(map[string]*Record)}
}

// Visitor consumes the host event stream in a single pass and builds
// widget-construction records. It owns the scope-indexed variable table
// for the duration of one traversal; nothing else mutates records.
type Visitor struct {
	mapping *widget.Mapping
	sink    RecordSink

	// Local names known to refer to the GUI toolkit: module aliases
	// (import tkinter as tk) and module-like symbols (from tkinter
	// import ttk).
	toolkitNames map[string]bool
	// symbolAliases maps a from-import alias back to the original
	// symbol, so `from tkinter import Button as B` still resolves the
	// Button class.
	symbolAliases map[string]string

	scopes []*scope
}

// NewVisitor builds a visitor around the caller-supplied class mapping.
func NewVisitor(mapping *widget.Mapping, sink RecordSink) *Visitor {
	return &Visitor{
		mapping:       mapping,
		sink:          sink,
		toolkitNames:  make(map[string]bool),
		symbolAliases: make(map[string]string),
		scopes:        []*scope{newScope()}, // module-level scope
	}
}

// Visit processes one event.
func (v *Visitor) Visit(ev Event) {
	switch ev.Kind {
	case EvImport:
		v.visitImport(ev)
	case EvScopeEnter:
		v.scopes = append(v.scopes, newScope())
	case EvScopeExit:
		// Корневой scope закрывается только в Finish.
		if len(v.scopes) > 1 {
			v.popScope()
		}
	case EvCall:
		v.visitCall(ev)
	}
}

// Finish closes all remaining scopes, dispatching their records. The
// visitor must not be reused afterwards.
func (v *Visitor) Finish() {
	for len(v.scopes) > 0 {
		v.popScope()
	}
}

func (v *Visitor) visitImport(ev Event) {
	if ev.Module != "tkinter" {
		return
	}
	if ev.Symbol == "" {
		// import tkinter [as alias]
		v.toolkitNames[ev.Alias] = true
		return
	}
	// from tkinter import Symbol [as alias]
	v.toolkitNames[ev.Alias] = true
	v.symbolAliases[ev.Alias] = ev.Symbol
}

func (v *Visitor) visitCall(ev Event) {
	// Configuration call on an already-bound widget variable?
	if ev.IsAttr {
		if rec := v.lookupVar(ev.Recv); rec != nil {
			v.mergeCall(rec, ev)
			return
		}
	}

	className, ok := v.resolveClassName(ev)
	if !ok {
		// Не виджет: присваивание скрывает прежнюю привязку.
		if ev.Bind != "" {
			v.currentScope().vars[ev.Bind] = nil
		}
		return
	}

	class, ok := v.mapping.Lookup(className)
	if !ok {
		if ev.Bind != "" {
			v.currentScope().vars[ev.Bind] = nil
		}
		return
	}

	rec := &Record{
		ClassName:  className,
		Class:      class,
		Positional: len(ev.Positional),
		Keywords:   make(map[string]Value, len(ev.Keywords)),
		Span:       ev.Span,
		Var:        ev.Bind,
	}
	for _, kw := range ev.Keywords {
		rec.Keywords[kw.Name] = kw.Value
	}
	if len(ev.Positional) > 0 && ev.Positional[0].Kind == ValIdent {
		rec.Parent = v.lookupVar(ev.Positional[0].Str)
	}

	sc := v.currentScope()
	sc.recs = append(sc.recs, rec)
	if ev.Bind != "" {
		sc.vars[ev.Bind] = rec
	}
}

// mergeCall folds an attribute call on a bound widget variable into its
// record: configure()/config() merge keyword arguments, everything else
// is only remembered by name (title, pack, ...).
func (v *Visitor) mergeCall(rec *Record, ev Event) {
	if rec.Methods == nil {
		rec.Methods = make(map[string]source.Span)
	}
	rec.Methods[ev.Name] = ev.Span
	if configureMethods[ev.Name] {
		for _, kw := range ev.Keywords {
			rec.Keywords[kw.Name] = kw.Value
		}
	}
}

// resolveClassName maps the callee to a widget class name via the seen
// imports: `tk.Button(...)` through a module alias, `Button(...)` through
// a direct from-import (aliases resolved back to the original symbol).
func (v *Visitor) resolveClassName(ev Event) (string, bool) {
	if ev.IsAttr {
		if v.toolkitNames[ev.Recv] {
			return ev.Name, true
		}
		return "", false
	}
	if orig, ok := v.symbolAliases[ev.Name]; ok {
		return orig, true
	}
	return "", false
}

func (v *Visitor) currentScope() *scope {
	return v.scopes[len(v.scopes)-1]
}

// lookupVar walks the scope chain innermost-first. A nil entry means the
// name was rebound to a non-widget and stops the search.
func (v *Visitor) lookupVar(name string) *Record {
	if name == "" {
		return nil
	}
	for i := len(v.scopes) - 1; i >= 0; i-- {
		if rec, ok := v.scopes[i].vars[name]; ok {
			return rec
		}
	}
	return nil
}

// popScope closes the innermost scope and dispatches its records in
// construction order.
func (v *Visitor) popScope() {
	sc := v.scopes[len(v.scopes)-1]
	v.scopes = v.scopes[:len(v.scopes)-1]
	if v.sink == nil {
		return
	}
	for _, rec := range sc.recs {
		v.sink.Record(rec)
	}
}
