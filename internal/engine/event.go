package engine

import (
	"axlint/internal/source"
)

// EventKind discriminates the node-visit events the visitor understands.
// The host frontend is the only component that reads source text; the
// engine sees nothing but this stream.
type EventKind uint8

const (
	// EvImport reports `import tkinter as tk` or `from tkinter import X`.
	EvImport EventKind = iota
	// EvScopeEnter opens a function body.
	EvScopeEnter
	// EvScopeExit closes the innermost open scope.
	EvScopeExit
	// EvCall reports a call expression, optionally bound to a variable.
	EvCall
)

func (k EventKind) String() string {
	switch k {
	case EvImport:
		return "import"
	case EvScopeEnter:
		return "scope-enter"
	case EvScopeExit:
		return "scope-exit"
	case EvCall:
		return "call"
	}
	return "unknown"
}

// ValueKind classifies a call argument as the visitor sees it. Anything
// the frontend cannot reduce to a literal arrives as ValUnknown; the rules
// treat unknown values as "present but unverifiable".
type ValueKind uint8

const (
	ValUnknown ValueKind = iota
	ValString
	ValInt
	ValBool
	ValIdent // a plain variable reference
)

// Value is one argument literal-or-unknown.
type Value struct {
	Kind ValueKind
	Str  string // ValString text or ValIdent name
	Int  int64
	Bool bool
	Span source.Span
}

func UnknownValue(sp source.Span) Value {
	return Value{Kind: ValUnknown, Span: sp}
}

func StringValue(s string, sp source.Span) Value {
	return Value{Kind: ValString, Str: s, Span: sp}
}

func IntValue(n int64, sp source.Span) Value {
	return Value{Kind: ValInt, Int: n, Span: sp}
}

func BoolValue(b bool, sp source.Span) Value {
	return Value{Kind: ValBool, Bool: b, Span: sp}
}

func IdentValue(name string, sp source.Span) Value {
	return Value{Kind: ValIdent, Str: name, Span: sp}
}

// Known reports whether the frontend resolved the argument to a literal
// or identifier.
func (v Value) Known() bool {
	return v.Kind != ValUnknown
}

// Keyword is one name=value argument.
type Keyword struct {
	Name  string
	Value Value
	Span  source.Span
}

// Event is one node-visit event from the host traversal.
type Event struct {
	Kind EventKind
	Span source.Span

	// EvImport fields.
	Module string // source module, e.g. "tkinter"
	Symbol string // imported symbol for from-imports, "" for module imports
	Alias  string // local name (alias or original)

	// EvCall fields.
	Recv       string // receiver variable for attribute calls, "" otherwise
	Name       string // callee or method name
	IsAttr     bool   // call had the form recv.Name(...)
	Bind       string // assignment target, "" when unbound
	Positional []Value
	Keywords   []Keyword
}
