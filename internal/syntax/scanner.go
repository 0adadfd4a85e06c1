package syntax

import (
	"axlint/internal/source"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokIdent
	tokInt
	tokFloat
	tokString
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokLBrace
	tokRBrace
	tokComma
	tokDot
	tokEq
	tokColon
	tokStar
	tokOther
)

type token struct {
	kind tokenKind
	text string // identifier name, number text, or decoded string value
	span source.Span
}

// line is one logical line: physical lines joined while bracket depth is
// positive, comments and blanks stripped.
type line struct {
	indent int
	toks   []token
}

// scan splits the file into logical lines of tokens. The scanner is
// deliberately forgiving: anything it does not understand becomes a
// tokOther and the parser skips over it. Tabs count as 8 columns for
// indentation, mirroring the CPython tokenizer default.
func scan(f *source.File) []line {
	c := newCursor(f)
	var lines []line
	var cur []token
	depth := 0
	indent := 0
	atLineStart := true

	flush := func() {
		if len(cur) > 0 {
			lines = append(lines, line{indent: indent, toks: cur})
			cur = nil
		}
		atLineStart = true
	}

	for !c.eof() {
		if atLineStart && depth == 0 && len(cur) == 0 {
			indent = scanIndent(&c)
			if c.eof() {
				break
			}
		}
		atLineStart = false

		b := c.peek()
		switch {
		case b == '\n':
			c.bump()
			if depth == 0 {
				flush()
			}
		case b == ' ' || b == '\t' || b == '\r':
			c.bump()
		case b == '\\' && c.peekAt(1) == '\n':
			// явное продолжение строки
			c.bump()
			c.bump()
		case b == '#':
			for !c.eof() && c.peek() != '\n' {
				c.bump()
			}
		case b == '\'' || b == '"':
			cur = append(cur, scanString(&c))
		case isIdentStart(b):
			cur = append(cur, scanIdent(&c))
		case b >= '0' && b <= '9':
			cur = append(cur, scanNumber(&c))
		default:
			cur = append(cur, scanSymbol(&c, &depth))
		}
	}
	flush()
	return lines
}

func scanIndent(c *cursor) int {
	n := 0
	for !c.eof() {
		switch c.peek() {
		case ' ':
			n++
			c.bump()
		case '\t':
			n += 8
			c.bump()
		default:
			return n
		}
	}
	return n
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

func scanIdent(c *cursor) token {
	m := c.mark()
	for !c.eof() && isIdentCont(c.peek()) {
		c.bump()
	}
	sp := c.spanFrom(m)
	return token{kind: tokIdent, text: string(c.file.Content[sp.Start:sp.End]), span: sp}
}

func scanNumber(c *cursor) token {
	m := c.mark()
	kind := tokInt
	for !c.eof() {
		b := c.peek()
		if b >= '0' && b <= '9' || b == '_' {
			c.bump()
			continue
		}
		if b == '.' || b == 'e' || b == 'E' || b == 'j' || b == 'x' || b == 'X' ||
			(b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F') {
			// float/комплекс/hex: нам важно только, что это не простое int
			kind = tokFloat
			c.bump()
			continue
		}
		break
	}
	sp := c.spanFrom(m)
	return token{kind: kind, text: string(c.file.Content[sp.Start:sp.End]), span: sp}
}

// scanString handles single- and triple-quoted literals with backslash
// escapes and returns the decoded text.
func scanString(c *cursor) token {
	m := c.mark()
	quote := c.bump()
	triple := false
	if c.peek() == quote && c.peekAt(1) == quote {
		c.bump()
		c.bump()
		triple = true
	}

	var out []byte
	for !c.eof() {
		b := c.peek()
		if b == '\\' {
			c.bump()
			if c.eof() {
				break
			}
			esc := c.bump()
			switch esc {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case '\n':
				// продолжение строки внутри литерала
			default:
				out = append(out, esc)
			}
			continue
		}
		if b == quote {
			if !triple {
				c.bump()
				break
			}
			if c.peekAt(1) == quote && c.peekAt(2) == quote {
				c.bump()
				c.bump()
				c.bump()
				break
			}
			out = append(out, c.bump())
			continue
		}
		if b == '\n' && !triple {
			// незакрытая строка: отдаём что есть
			break
		}
		out = append(out, c.bump())
	}
	return token{kind: tokString, text: string(out), span: c.spanFrom(m)}
}

func scanSymbol(c *cursor, depth *int) token {
	m := c.mark()
	b := c.bump()
	kind := tokOther
	switch b {
	case '(':
		kind = tokLParen
		*depth++
	case ')':
		kind = tokRParen
		if *depth > 0 {
			*depth--
		}
	case '[':
		kind = tokLBracket
		*depth++
	case ']':
		kind = tokRBracket
		if *depth > 0 {
			*depth--
		}
	case '{':
		kind = tokLBrace
		*depth++
	case '}':
		kind = tokRBrace
		if *depth > 0 {
			*depth--
		}
	case ',':
		kind = tokComma
	case '.':
		kind = tokDot
	case ':':
		kind = tokColon
	case '*':
		kind = tokStar
	case '=':
		if c.peek() == '=' {
			c.bump() // '==' это не присваивание
		} else {
			kind = tokEq
		}
	}
	sp := c.spanFrom(m)
	return token{kind: kind, text: string(c.file.Content[sp.Start:sp.End]), span: sp}
}
