package routemap

import (
	"strconv"
	"strings"
)

// Node is implemented by every syntax tree node produced by Parse. The
// compiler only ever inspects the node kinds declared in this file, so
// trees built by hand can feed Compile directly.
type Node interface {
	Pos() Pos
	String() string
}

// Statement nodes appear in program and block bodies.
type Statement interface {
	Node
	statementNode()
}

// Expression nodes produce a value.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root node for a parsed routing source file.
type Program struct {
	Name       string
	Statements []Statement
}

func (p *Program) Pos() Pos {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return Pos{}
}

func (p *Program) String() string {
	parts := make([]string, 0, len(p.Statements))
	for _, s := range p.Statements {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, "\n")
}

// ExpressionStatement wraps an expression used in statement position.
type ExpressionStatement struct {
	Expression Expression
}

func (es *ExpressionStatement) statementNode() {}
func (es *ExpressionStatement) Pos() Pos       { return es.Expression.Pos() }
func (es *ExpressionStatement) String() string { return es.Expression.String() + ";" }

// BlockStatement is a braced list of statements, such as a function body.
type BlockStatement struct {
	Token      Token
	Statements []Statement
}

func (bs *BlockStatement) statementNode() {}
func (bs *BlockStatement) Pos() Pos       { return bs.Token.Pos }

func (bs *BlockStatement) String() string {
	if len(bs.Statements) == 0 {
		return "{ }"
	}
	parts := make([]string, 0, len(bs.Statements))
	for _, s := range bs.Statements {
		parts = append(parts, s.String())
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

// Identifier is a bare name such as App or route.
type Identifier struct {
	Token Token
	Name  string
}

func (i *Identifier) expressionNode() {}
func (i *Identifier) Pos() Pos        { return i.Token.Pos }
func (i *Identifier) String() string  { return i.Name }

// StringLiteral holds the decoded value of a quoted string.
type StringLiteral struct {
	Token Token
	Value string
}

func (sl *StringLiteral) expressionNode() {}
func (sl *StringLiteral) Pos() Pos        { return sl.Token.Pos }
func (sl *StringLiteral) String() string  { return strconv.Quote(sl.Value) }

// NumberLiteral is a numeric literal. Routing sources rarely use these but
// option objects may carry them.
type NumberLiteral struct {
	Token Token
	Value float64
}

func (nl *NumberLiteral) expressionNode() {}
func (nl *NumberLiteral) Pos() Pos        { return nl.Token.Pos }
func (nl *NumberLiteral) String() string  { return nl.Token.Literal }

// BooleanLiteral is true or false.
type BooleanLiteral struct {
	Token Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode() {}
func (bl *BooleanLiteral) Pos() Pos        { return bl.Token.Pos }
func (bl *BooleanLiteral) String() string  { return bl.Token.Literal }

// NullLiteral is the null keyword.
type NullLiteral struct {
	Token Token
}

func (nl *NullLiteral) expressionNode() {}
func (nl *NullLiteral) Pos() Pos        { return nl.Token.Pos }
func (nl *NullLiteral) String() string  { return "null" }

// ThisExpression is the this keyword, the receiver of route and resource
// calls inside a map body.
type ThisExpression struct {
	Token Token
}

func (te *ThisExpression) expressionNode() {}
func (te *ThisExpression) Pos() Pos        { return te.Token.Pos }
func (te *ThisExpression) String() string  { return "this" }

// ObjectProperty is a single key/value pair inside an object literal. Keys
// are stored decoded whether they were written bare or quoted.
type ObjectProperty struct {
	Token Token
	Key   string
	Value Expression
}

func (op *ObjectProperty) Pos() Pos       { return op.Token.Pos }
func (op *ObjectProperty) String() string { return op.Key + ": " + op.Value.String() }

// ObjectLiteral is a braced set of properties, the options argument of
// route and resource calls.
type ObjectLiteral struct {
	Token      Token
	Properties []*ObjectProperty
}

func (ol *ObjectLiteral) expressionNode() {}
func (ol *ObjectLiteral) Pos() Pos        { return ol.Token.Pos }

func (ol *ObjectLiteral) String() string {
	if len(ol.Properties) == 0 {
		return "{ }"
	}
	parts := make([]string, 0, len(ol.Properties))
	for _, p := range ol.Properties {
		parts = append(parts, p.String())
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// FunctionLiteral is an anonymous function expression. Its body is the
// unit the compiler walks for route declarations.
type FunctionLiteral struct {
	Token      Token
	Parameters []*Identifier
	Body       *BlockStatement
}

func (fl *FunctionLiteral) expressionNode() {}
func (fl *FunctionLiteral) Pos() Pos        { return fl.Token.Pos }

func (fl *FunctionLiteral) String() string {
	params := make([]string, 0, len(fl.Parameters))
	for _, p := range fl.Parameters {
		params = append(params, p.Name)
	}
	body := "{ }"
	if fl.Body != nil {
		body = fl.Body.String()
	}
	return "function (" + strings.Join(params, ", ") + ") " + body
}

// MemberExpression is a property access such as this.route or App.Router.
type MemberExpression struct {
	Token    Token
	Object   Expression
	Property *Identifier
}

func (me *MemberExpression) expressionNode() {}
func (me *MemberExpression) Pos() Pos        { return me.Object.Pos() }

func (me *MemberExpression) String() string {
	if me.Property == nil {
		return me.Object.String() + "."
	}
	return me.Object.String() + "." + me.Property.Name
}

// CallExpression is a call such as this.route('home') or App.Router.map(fn).
type CallExpression struct {
	Token     Token
	Callee    Expression
	Arguments []Expression
}

func (ce *CallExpression) expressionNode() {}
func (ce *CallExpression) Pos() Pos        { return ce.Callee.Pos() }

func (ce *CallExpression) String() string {
	args := make([]string, 0, len(ce.Arguments))
	for _, a := range ce.Arguments {
		args = append(args, a.String())
	}
	return ce.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}
