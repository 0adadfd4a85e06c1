package syntax

import (
	"strconv"

	"axlint/internal/engine"
	"axlint/internal/source"
)

// Parse scans one script and produces the node-visit event stream the
// engine consumes. Statements the frontend does not understand are
// skipped; the engine never recovers from malformed input, it simply
// never sees it.
func Parse(f *source.File) []engine.Event {
	lines := scan(f)
	p := &parser{}
	for _, ln := range lines {
		p.line(ln)
	}
	p.closeAll()
	return p.events
}

// blockCtx tracks one open def block: the indent of the def line and the
// indent of its body (unknown until the first body line).
type blockCtx struct {
	defIndent  int
	bodyIndent int
}

type parser struct {
	events []engine.Event

	stack      []blockCtx
	pendingDef bool
	pendingInd int
}

func (p *parser) emit(ev engine.Event) {
	p.events = append(p.events, ev)
}

func (p *parser) line(ln line) {
	if len(ln.toks) == 0 {
		return
	}
	ind := ln.indent

	// Открытие тела def: первая строка с большим отступом.
	if p.pendingDef {
		p.pendingDef = false
		if ind > p.pendingInd {
			p.stack = append(p.stack, blockCtx{defIndent: p.pendingInd, bodyIndent: ind})
			p.emit(engine.Event{Kind: engine.EvScopeEnter, Span: ln.toks[0].span})
		}
	}

	// Закрытие тел def, из которых вышли по отступу.
	for len(p.stack) > 0 && ind < p.stack[len(p.stack)-1].bodyIndent {
		p.stack = p.stack[:len(p.stack)-1]
		p.emit(engine.Event{Kind: engine.EvScopeExit, Span: ln.toks[0].span})
	}

	p.statement(ln)
}

func (p *parser) closeAll() {
	for range p.stack {
		p.emit(engine.Event{Kind: engine.EvScopeExit})
	}
	p.stack = nil
	p.pendingDef = false
}

func (p *parser) statement(ln line) {
	toks := ln.toks
	first := toks[0]
	if first.kind != tokIdent {
		return
	}

	switch first.text {
	case "import":
		p.importStmt(toks[1:])
		return
	case "from":
		p.fromImportStmt(toks[1:])
		return
	case "def", "class":
		// тела def и class — отдельные области видимости
		p.pendingDef = true
		p.pendingInd = ln.indent
		return
	}

	// NAME = <call> ?
	if len(toks) >= 3 && toks[1].kind == tokEq {
		if ev, ok := parseCall(toks[2:]); ok {
			ev.Bind = first.text
			p.emit(ev)
		}
		return
	}

	// Голый вызов: tk.Button(...), root.title(...), root.mainloop().
	if ev, ok := parseCall(toks); ok {
		p.emit(ev)
	}
}

// importStmt handles `import tkinter [as alias][, ...]`. Dotted module
// imports are ignored: the checker only tracks the top-level toolkit
// module, matching the behaviour of the original checker.
func (p *parser) importStmt(toks []token) {
	i := 0
	for i < len(toks) {
		if toks[i].kind != tokIdent {
			return
		}
		name := toks[i].text
		sp := toks[i].span
		i++
		dotted := false
		for i+1 < len(toks) && toks[i].kind == tokDot && toks[i+1].kind == tokIdent {
			dotted = true
			i += 2
		}
		alias := name
		if i+1 < len(toks) && toks[i].kind == tokIdent && toks[i].text == "as" && toks[i+1].kind == tokIdent {
			alias = toks[i+1].text
			i += 2
		}
		if !dotted {
			p.emit(engine.Event{Kind: engine.EvImport, Span: sp, Module: name, Alias: alias})
		}
		if i < len(toks) && toks[i].kind == tokComma {
			i++
			continue
		}
		return
	}
}

// fromImportStmt handles `from tkinter import A [as B][, ...]`.
func (p *parser) fromImportStmt(toks []token) {
	if len(toks) < 3 || toks[0].kind != tokIdent {
		return
	}
	module := toks[0].text
	i := 1
	for i+1 < len(toks) && toks[i].kind == tokDot && toks[i+1].kind == tokIdent {
		// from tkinter.ttk import ... — подмодули не отслеживаем
		return
	}
	if toks[i].kind != tokIdent || toks[i].text != "import" {
		return
	}
	i++
	for i < len(toks) {
		if toks[i].kind == tokStar {
			return // from tkinter import * даёт нулевую информацию о привязках
		}
		if toks[i].kind != tokIdent {
			return
		}
		symbol := toks[i].text
		sp := toks[i].span
		alias := symbol
		i++
		if i+1 < len(toks) && toks[i].kind == tokIdent && toks[i].text == "as" && toks[i+1].kind == tokIdent {
			alias = toks[i+1].text
			i += 2
		}
		p.emit(engine.Event{Kind: engine.EvImport, Span: sp, Module: module, Symbol: symbol, Alias: alias})
		if i < len(toks) && toks[i].kind == tokComma {
			i++
			continue
		}
		return
	}
}

// parseCall recognizes IDENT[.IDENT]* '(' args ')'. Longer attribute
// chains (a.b.c(...)) and everything following the closing paren are
// out of the record model and are dropped.
func parseCall(toks []token) (engine.Event, bool) {
	if len(toks) == 0 || toks[0].kind != tokIdent {
		return engine.Event{}, false
	}
	var ev engine.Event
	ev.Kind = engine.EvCall

	i := 0
	if len(toks) >= 4 && toks[1].kind == tokDot && toks[2].kind == tokIdent && toks[3].kind == tokLParen {
		ev.Recv = toks[0].text
		ev.Name = toks[2].text
		ev.IsAttr = true
		ev.Span = toks[0].span.Cover(toks[2].span)
		i = 3
	} else if len(toks) >= 2 && toks[1].kind == tokLParen {
		ev.Name = toks[0].text
		ev.Span = toks[0].span
		i = 1
	} else {
		return engine.Event{}, false
	}

	args, ok := parseArgs(toks[i:])
	if !ok {
		return engine.Event{}, false
	}
	ev.Positional = args.positional
	ev.Keywords = args.keywords
	return ev, true
}

type argList struct {
	positional []engine.Value
	keywords   []engine.Keyword
}

// parseArgs consumes a balanced '(...)' and classifies each top-level
// argument as positional or keyword. Values that are not simple literals
// or plain identifiers come through as Unknown.
func parseArgs(toks []token) (argList, bool) {
	if len(toks) == 0 || toks[0].kind != tokLParen {
		return argList{}, false
	}
	var args argList
	i := 1
	for i < len(toks) {
		if toks[i].kind == tokRParen {
			return args, true
		}
		// kw=value ?
		if toks[i].kind == tokIdent && i+1 < len(toks) && toks[i+1].kind == tokEq {
			name := toks[i].text
			nameSpan := toks[i].span
			val, next := parseValue(toks, i+2)
			args.keywords = append(args.keywords, engine.Keyword{
				Name:  name,
				Value: val,
				Span:  nameSpan.Cover(val.Span),
			})
			i = skipArg(toks, next)
			continue
		}
		val, next := parseValue(toks, i)
		args.positional = append(args.positional, val)
		i = skipArg(toks, next)
	}
	return args, false // незакрытая скобка
}

// parseValue reads one argument value starting at i and returns it with
// the index of the first unconsumed token.
func parseValue(toks []token, i int) (engine.Value, int) {
	if i >= len(toks) {
		return engine.UnknownValue(source.Span{}), i
	}
	t := toks[i]
	switch t.kind {
	case tokString:
		return engine.StringValue(t.text, t.span), i + 1
	case tokInt:
		n, err := strconv.ParseInt(t.text, 10, 64)
		if err != nil {
			return engine.UnknownValue(t.span), i + 1
		}
		return engine.IntValue(n, t.span), i + 1
	case tokIdent:
		switch t.text {
		case "True":
			return engine.BoolValue(true, t.span), i + 1
		case "False":
			return engine.BoolValue(false, t.span), i + 1
		case "None":
			return engine.UnknownValue(t.span), i + 1
		}
		// Простой идентификатор без продолжения — ссылка на переменную.
		if i+1 >= len(toks) || toks[i+1].kind == tokComma || toks[i+1].kind == tokRParen {
			return engine.IdentValue(t.text, t.span), i + 1
		}
		return engine.UnknownValue(t.span), i + 1
	default:
		// Сложное выражение (кортеж, список, lambda, ...): не
		// потребляем токен, пусть skipArg пройдёт его сбалансированно.
		return engine.UnknownValue(t.span), i
	}
}

// skipArg advances past the remainder of the current argument up to the
// separating comma (or the closing paren), keeping brackets balanced.
func skipArg(toks []token, i int) int {
	depth := 0
	for i < len(toks) {
		switch toks[i].kind {
		case tokLParen, tokLBracket, tokLBrace:
			depth++
		case tokRParen, tokRBracket, tokRBrace:
			if depth == 0 {
				return i // закрывающая скобка самого вызова
			}
			depth--
		case tokComma:
			if depth == 0 {
				return i + 1
			}
		}
		i++
	}
	return i
}
