package routemap

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// lexer scans routing DSL source into tokens. It understands the subset of
// JavaScript that router files are written in: identifiers, string and
// number literals, the function/this/true/false/null keywords, punctuation,
// and line or block comments.
type lexer struct {
	src  string
	name string
	off  int
	line int
	col  int
}

func newLexer(src, name string) *lexer {
	if name == "" {
		name = "source"
	}
	return &lexer{src: src, name: name, line: 1, col: 1}
}

// Next scans and returns the next token, or a parse error anchored to the
// start of the offending text. The stream always ends with TokenEOF.
func (l *lexer) Next() (Token, error) {
	if err := l.skipSpace(); err != nil {
		return Token{}, err
	}

	start := l.pos()
	if l.off >= len(l.src) {
		return Token{Type: TokenEOF, Pos: start}, nil
	}

	ch := l.peek()
	switch {
	case isIdentStart(ch):
		lit := l.scanIdent()
		if kw, ok := keywords[lit]; ok {
			return Token{Type: kw, Literal: lit, Pos: start}, nil
		}
		return Token{Type: TokenIdent, Literal: lit, Pos: start}, nil
	case ch == '\'' || ch == '"':
		lit, err := l.scanString(ch)
		if err != nil {
			return Token{}, err
		}
		return Token{Type: TokenString, Literal: lit, Pos: start}, nil
	case isDigit(ch):
		return Token{Type: TokenNumber, Literal: l.scanNumber(), Pos: start}, nil
	}

	l.advance()
	switch ch {
	case '(':
		return Token{Type: TokenLParen, Literal: "(", Pos: start}, nil
	case ')':
		return Token{Type: TokenRParen, Literal: ")", Pos: start}, nil
	case '{':
		return Token{Type: TokenLBrace, Literal: "{", Pos: start}, nil
	case '}':
		return Token{Type: TokenRBrace, Literal: "}", Pos: start}, nil
	case ',':
		return Token{Type: TokenComma, Literal: ",", Pos: start}, nil
	case ':':
		return Token{Type: TokenColon, Literal: ":", Pos: start}, nil
	case ';':
		return Token{Type: TokenSemicolon, Literal: ";", Pos: start}, nil
	case '.':
		return Token{Type: TokenDot, Literal: ".", Pos: start}, nil
	}
	return Token{}, NewParseError(l.name, start, "unexpected character %q", ch)
}

func (l *lexer) pos() Pos {
	return Pos{Line: l.line, Col: l.col}
}

func (l *lexer) peek() rune {
	if l.off >= len(l.src) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.off:])
	return r
}

func (l *lexer) peekAt(n int) rune {
	off := l.off
	for ; n > 0 && off < len(l.src); n-- {
		_, size := utf8.DecodeRuneInString(l.src[off:])
		off += size
	}
	if off >= len(l.src) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.src[off:])
	return r
}

func (l *lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.src[l.off:])
	l.off += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *lexer) skipSpace() error {
	for l.off < len(l.src) {
		ch := l.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			l.advance()
		case ch == '/' && l.peekAt(1) == '/':
			for l.off < len(l.src) && l.peek() != '\n' {
				l.advance()
			}
		case ch == '/' && l.peekAt(1) == '*':
			start := l.pos()
			l.advance()
			l.advance()
			closed := false
			for l.off < len(l.src) {
				if l.peek() == '*' && l.peekAt(1) == '/' {
					l.advance()
					l.advance()
					closed = true
					break
				}
				l.advance()
			}
			if !closed {
				return NewParseError(l.name, start, "unterminated block comment")
			}
		default:
			return nil
		}
	}
	return nil
}

func (l *lexer) scanIdent() string {
	start := l.off
	for l.off < len(l.src) && isIdentPart(l.peek()) {
		l.advance()
	}
	return l.src[start:l.off]
}

func (l *lexer) scanNumber() string {
	start := l.off
	for l.off < len(l.src) && isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekAt(1)) {
		l.advance()
		for l.off < len(l.src) && isDigit(l.peek()) {
			l.advance()
		}
	}
	return l.src[start:l.off]
}

// scanString consumes a quoted literal and returns its decoded value.
// Both quote styles are accepted and common backslash escapes are decoded.
func (l *lexer) scanString(quote rune) (string, error) {
	start := l.pos()
	l.advance()

	var out strings.Builder
	for {
		if l.off >= len(l.src) {
			return "", NewParseError(l.name, start, "unterminated string literal")
		}
		ch := l.advance()
		if ch == quote {
			return out.String(), nil
		}
		if ch == '\n' {
			return "", NewParseError(l.name, start, "unterminated string literal")
		}
		if ch != '\\' {
			out.WriteRune(ch)
			continue
		}

		if l.off >= len(l.src) {
			return "", NewParseError(l.name, start, "unterminated string literal")
		}
		esc := l.advance()
		switch esc {
		case 'n':
			out.WriteByte('\n')
		case 't':
			out.WriteByte('\t')
		case 'r':
			out.WriteByte('\r')
		case '\\', '\'', '"', '/':
			out.WriteRune(esc)
		case '0':
			out.WriteByte(0)
		default:
			return "", NewParseError(l.name, start, "unsupported escape sequence \\%c", esc)
		}
	}
}

func isIdentStart(ch rune) bool {
	return ch == '_' || ch == '$' || unicode.IsLetter(ch)
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || unicode.IsDigit(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
