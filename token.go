package routemap

import "fmt"

// TokenType identifies the lexical class of a scanned token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIllegal
	TokenIdent
	TokenString
	TokenNumber
	TokenFunction
	TokenThis
	TokenTrue
	TokenFalse
	TokenNull
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenComma
	TokenColon
	TokenSemicolon
	TokenDot
)

var tokenNames = map[TokenType]string{
	TokenEOF:       "EOF",
	TokenIllegal:   "ILLEGAL",
	TokenIdent:     "IDENT",
	TokenString:    "STRING",
	TokenNumber:    "NUMBER",
	TokenFunction:  "function",
	TokenThis:      "this",
	TokenTrue:      "true",
	TokenFalse:     "false",
	TokenNull:      "null",
	TokenLParen:    "(",
	TokenRParen:    ")",
	TokenLBrace:    "{",
	TokenRBrace:    "}",
	TokenComma:     ",",
	TokenColon:     ":",
	TokenSemicolon: ";",
	TokenDot:       ".",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

var keywords = map[string]TokenType{
	"function": TokenFunction,
	"this":     TokenThis,
	"true":     TokenTrue,
	"false":    TokenFalse,
	"null":     TokenNull,
}

// Pos is a position in a routing source file. Line and Col are 1-based.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) IsValid() bool { return p.Line > 0 }

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Token is a single lexeme. Literal holds the decoded value for strings
// and the raw text for everything else.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Pos
}

func (t Token) String() string {
	switch t.Type {
	case TokenIdent, TokenString, TokenNumber:
		return fmt.Sprintf("%s(%q)", tokenNames[t.Type], t.Literal)
	default:
		return t.Type.String()
	}
}
