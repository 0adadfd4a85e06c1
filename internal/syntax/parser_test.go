package syntax

import (
	"testing"

	"axlint/internal/engine"
	"axlint/internal/source"
)

func parseScript(t *testing.T, script string) []engine.Event {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.py", []byte(script))
	return Parse(fs.Get(id))
}

func callEvents(events []engine.Event) []engine.Event {
	var out []engine.Event
	for _, ev := range events {
		if ev.Kind == engine.EvCall {
			out = append(out, ev)
		}
	}
	return out
}

func TestParse_ImportForms(t *testing.T) {
	tests := []struct {
		name   string
		script string
		module string
		symbol string
		alias  string
	}{
		{name: "plain import", script: "import tkinter\n", module: "tkinter", alias: "tkinter"},
		{name: "aliased import", script: "import tkinter as tk\n", module: "tkinter", alias: "tk"},
		{name: "from import", script: "from tkinter import Button\n", module: "tkinter", symbol: "Button", alias: "Button"},
		{name: "from import as", script: "from tkinter import Button as B\n", module: "tkinter", symbol: "Button", alias: "B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := parseScript(t, tt.script)
			if len(events) != 1 {
				t.Fatalf("events = %d, want 1", len(events))
			}
			ev := events[0]
			if ev.Kind != engine.EvImport {
				t.Fatalf("kind = %v, want EvImport", ev.Kind)
			}
			if ev.Module != tt.module || ev.Symbol != tt.symbol || ev.Alias != tt.alias {
				t.Errorf("import = %q/%q/%q, want %q/%q/%q",
					ev.Module, ev.Symbol, ev.Alias, tt.module, tt.symbol, tt.alias)
			}
		})
	}
}

func TestParse_IgnoredImports(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{name: "dotted import", script: "import tkinter.ttk\n"},
		{name: "from submodule", script: "from tkinter.ttk import Button\n"},
		{name: "star import", script: "from tkinter import *\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := parseScript(t, tt.script)
			if len(events) != 0 {
				t.Errorf("events = %d, want 0 (%+v)", len(events), events)
			}
		})
	}
}

func TestParse_BoundCall(t *testing.T) {
	events := parseScript(t, `import tkinter as tk
btn = tk.Button(root, text="OK", takefocus=True, underline=0)
`)
	calls := callEvents(events)
	if len(calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(calls))
	}
	call := calls[0]
	if !call.IsAttr || call.Recv != "tk" || call.Name != "Button" {
		t.Errorf("callee = %v %q.%q", call.IsAttr, call.Recv, call.Name)
	}
	if call.Bind != "btn" {
		t.Errorf("Bind = %q, want btn", call.Bind)
	}
	if len(call.Positional) != 1 || call.Positional[0].Kind != engine.ValIdent || call.Positional[0].Str != "root" {
		t.Errorf("positional = %+v", call.Positional)
	}
	want := map[string]engine.ValueKind{
		"text":      engine.ValString,
		"takefocus": engine.ValBool,
		"underline": engine.ValInt,
	}
	if len(call.Keywords) != len(want) {
		t.Fatalf("keywords = %+v", call.Keywords)
	}
	for _, kw := range call.Keywords {
		if want[kw.Name] != kw.Value.Kind {
			t.Errorf("keyword %q kind = %v, want %v", kw.Name, kw.Value.Kind, want[kw.Name])
		}
	}
}

func TestParse_MultiLineCall(t *testing.T) {
	events := parseScript(t, `import tkinter as tk
btn = tk.Button(
    root,
    text="Save",
    fg="#CCCCCC",
)
`)
	calls := callEvents(events)
	if len(calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(calls))
	}
	call := calls[0]
	if len(call.Keywords) != 2 {
		t.Fatalf("keywords = %+v", call.Keywords)
	}
	if call.Keywords[1].Name != "fg" || call.Keywords[1].Value.Str != "#CCCCCC" {
		t.Errorf("fg keyword = %+v", call.Keywords[1])
	}
}

func TestParse_ComplexArgumentsSkipped(t *testing.T) {
	// Кортеж в font не должен обрывать список аргументов.
	events := parseScript(t, `import tkinter as tk
lbl = tk.Label(root, font=("Arial", 24), text="Hi", bg=["x", "y"])
`)
	calls := callEvents(events)
	if len(calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(calls))
	}
	call := calls[0]
	names := make(map[string]engine.ValueKind, len(call.Keywords))
	for _, kw := range call.Keywords {
		names[kw.Name] = kw.Value.Kind
	}
	if names["font"] != engine.ValUnknown {
		t.Errorf("font kind = %v, want ValUnknown", names["font"])
	}
	if names["text"] != engine.ValString {
		t.Errorf("text kind = %v, want ValString (argument list truncated?)", names["text"])
	}
	if names["bg"] != engine.ValUnknown {
		t.Errorf("bg kind = %v, want ValUnknown", names["bg"])
	}
}

func TestParse_DefScopes(t *testing.T) {
	events := parseScript(t, `import tkinter as tk

def build():
    w = tk.Toplevel()
    w.title("Sub")

root = tk.Tk()
`)
	var kinds []engine.EventKind
	for _, ev := range events {
		kinds = append(kinds, ev.Kind)
	}
	want := []engine.EventKind{
		engine.EvImport,
		engine.EvScopeEnter,
		engine.EvCall, // tk.Toplevel()
		engine.EvCall, // w.title(...)
		engine.EvScopeExit,
		engine.EvCall, // tk.Tk()
	}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("kinds[%d] = %v, want %v (all: %v)", i, kinds[i], want[i], kinds)
		}
	}
}

func TestParse_TripleQuotedDocstring(t *testing.T) {
	events := parseScript(t, `"""Module docstring.

import tkinter as tk  # not a real import
"""
import tkinter as tk
x = tk.Entry(root)
`)
	imports := 0
	for _, ev := range events {
		if ev.Kind == engine.EvImport {
			imports++
		}
	}
	if imports != 1 {
		t.Errorf("imports = %d, want 1 (docstring content must not parse)", imports)
	}
	if len(callEvents(events)) != 1 {
		t.Errorf("calls = %d, want 1", len(callEvents(events)))
	}
}

func TestParse_CommentsAndContinuations(t *testing.T) {
	events := parseScript(t, `import tkinter as tk  # GUI toolkit
lbl = tk.Label(root, \
    text="Hello")  # trailing comment
`)
	calls := callEvents(events)
	if len(calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(calls))
	}
	if len(calls[0].Keywords) != 1 || calls[0].Keywords[0].Value.Str != "Hello" {
		t.Errorf("keywords = %+v", calls[0].Keywords)
	}
}

func TestParse_BareMethodCall(t *testing.T) {
	events := parseScript(t, `import tkinter as tk
root = tk.Tk()
root.title("App")
root.mainloop()
`)
	calls := callEvents(events)
	if len(calls) != 3 {
		t.Fatalf("calls = %d, want 3", len(calls))
	}
	if calls[1].Name != "title" || calls[1].Recv != "root" {
		t.Errorf("second call = %+v", calls[1])
	}
	if len(calls[1].Positional) != 1 || calls[1].Positional[0].Str != "App" {
		t.Errorf("title positional = %+v", calls[1].Positional)
	}
}

func TestParse_StringEscapes(t *testing.T) {
	events := parseScript(t, `import tkinter as tk
b = tk.Button(root, text='It\'s &Save\n')
`)
	calls := callEvents(events)
	if len(calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(calls))
	}
	got := calls[0].Keywords[0].Value.Str
	if got != "It's &Save\n" {
		t.Errorf("decoded text = %q", got)
	}
}
