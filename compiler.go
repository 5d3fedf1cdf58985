package routemap

import (
	"unicode"
	"unicode/utf8"
)

// prefix carries the accumulated route name and path of the enclosing
// resource chain while the compiler descends nested blocks.
type prefix struct {
	name string
	path string
}

// declEvent describes one declaration the compiler processed, reported in
// source order. Lint rules are built on top of these.
type declEvent struct {
	resource bool
	name     string
	key      string
	path     string
	pos      Pos
}

type compiler struct {
	source  string
	observe func(declEvent)
}

// Compile walks the tree for the first call of the form X.map(function ()
// { ... }) and compiles its body into a route table. When no such call
// exists, or its first argument carries no function body, Compile returns
// a nil table and no error.
//
// Statements inside the body that call route or resource produce entries.
// Calls to any other member are ignored, and later declarations win when
// two produce the same route name.
func Compile(root Node) (RouteTable, error) {
	c := &compiler{}
	if prog, ok := root.(*Program); ok {
		c.source = prog.Name
	}
	return c.compile(root)
}

func (c *compiler) compile(root Node) (RouteTable, error) {
	body := findMapBody(root)
	if body == nil {
		return nil, nil
	}

	table := RouteTable{}
	for _, stmt := range body.Statements {
		es, ok := stmt.(*ExpressionStatement)
		if !ok {
			continue
		}
		sub, err := c.dispatch(es, nil)
		if err != nil {
			return nil, err
		}
		table = MergeTables(table, sub)
	}
	return table, nil
}

// findMapBody locates the first call whose callee is a member access named
// map and resolves it, exactly once, to the function body of the call's
// first argument. The first match ends the search even when it cannot be
// resolved to a body.
func findMapBody(root Node) *BlockStatement {
	var call *CallExpression
	Inspect(root, func(n Node) bool {
		if call != nil {
			return false
		}
		ce, ok := n.(*CallExpression)
		if !ok {
			return true
		}
		member, ok := ce.Callee.(*MemberExpression)
		if !ok || member.Property == nil || member.Property.Name != "map" {
			return true
		}
		call = ce
		return false
	})

	if call == nil || len(call.Arguments) == 0 {
		return nil
	}
	fn, ok := call.Arguments[0].(*FunctionLiteral)
	if !ok {
		return nil
	}
	return fn.Body
}

// dispatch compiles one statement from a map or resource body by the name
// of the member it calls. Members other than route and resource compile to
// an empty table so new DSL verbs do not break existing sources.
func (c *compiler) dispatch(es *ExpressionStatement, pfx *prefix) (RouteTable, error) {
	call, ok := es.Expression.(*CallExpression)
	if !ok {
		return nil, c.unsupportedf(es.Pos(), "expected a call statement, found %s", es.Expression)
	}
	member, ok := call.Callee.(*MemberExpression)
	if !ok || member.Property == nil {
		return nil, c.unsupportedf(call.Pos(), "call target %s is not a member access", call.Callee)
	}

	switch member.Property.Name {
	case "route":
		return c.buildRoute(call, pfx)
	case "resource":
		return c.buildResource(call, pfx)
	}
	return RouteTable{}, nil
}

// buildRoute compiles this.route(name[, opts]) into a single entry. The
// path comes from the path option when an options object is present; a
// present options object without one leaves the path empty. Without any
// options object the path defaults to "/" plus the route name. Inside a
// resource block both the key and the path are extended with the
// enclosing prefix.
func (c *compiler) buildRoute(call *CallExpression, pfx *prefix) (RouteTable, error) {
	name, err := c.callName(call)
	if err != nil {
		return nil, err
	}

	var path string
	if opts := optionsArg(call); opts != nil {
		value, ok := lookupProperty(opts, "path")
		if ok {
			str, err := c.stringValue(value, "path")
			if err != nil {
				return nil, err
			}
			path = str
		}
	} else {
		path = "/" + name
	}

	key := name
	if pfx != nil {
		key = pfx.name + capitalize(name)
		path = pfx.path + path
	}

	c.emit(declEvent{name: name, key: key, path: path, pos: call.Pos()})
	return RouteTable{key: {Path: path}}, nil
}

// buildResource compiles this.resource(name[, opts][, callback]). Without
// a callback the call compiles exactly like a route. With a populated
// callback the resource contributes an index entry at its own path plus
// everything its block declares under the extended prefix. An empty
// callback body contributes nothing, not even the index entry.
func (c *compiler) buildResource(call *CallExpression, pfx *prefix) (RouteTable, error) {
	name, err := c.callName(call)
	if err != nil {
		return nil, err
	}
	c.emit(declEvent{resource: true, name: name, pos: call.Pos()})

	callback, opts, err := c.resourceSignature(call)
	if err != nil {
		return nil, err
	}
	if callback == nil {
		return c.buildRoute(call, pfx)
	}
	if callback.Body == nil || len(callback.Body.Statements) == 0 {
		return RouteTable{}, nil
	}

	table, err := c.buildRoute(call, pfx)
	if err != nil {
		return nil, err
	}

	child := composePrefix(name, opts, pfx)
	for _, stmt := range callback.Body.Statements {
		es, ok := stmt.(*ExpressionStatement)
		if !ok {
			return nil, c.unsupportedf(stmt.Pos(), "unsupported statement in resource %q block", name)
		}
		sub, err := c.dispatch(es, child)
		if err != nil {
			return nil, err
		}
		table = MergeTables(table, sub)
	}
	return table, nil
}

// resourceSignature resolves which form a resource call takes: name only,
// name plus options, or either of those with a trailing callback.
// Arguments past the third are ignored.
func (c *compiler) resourceSignature(call *CallExpression) (*FunctionLiteral, *ObjectLiteral, error) {
	args := call.Arguments
	switch {
	case len(args) <= 1:
		return nil, nil, nil
	case len(args) == 2:
		switch arg := args[1].(type) {
		case *ObjectLiteral:
			return nil, arg, nil
		case *FunctionLiteral:
			return arg, nil, nil
		}
		return nil, nil, c.unsupportedf(args[1].Pos(), "resource argument must be an options object or a callback, found %s", args[1])
	default:
		opts, ok := args[1].(*ObjectLiteral)
		if !ok {
			return nil, nil, c.unsupportedf(args[1].Pos(), "resource options must be an object literal, found %s", args[1])
		}
		callback, ok := args[2].(*FunctionLiteral)
		if !ok {
			return nil, nil, c.unsupportedf(args[2].Pos(), "resource callback must be a function literal, found %s", args[2])
		}
		return callback, opts, nil
	}
}

// composePrefix derives the prefix for the statements inside a resource
// block. The resource's own path is "/" plus its name unless the options
// object overrides it. Nested under another resource, paths concatenate
// directly and names join in camel case.
func composePrefix(name string, opts *ObjectLiteral, parent *prefix) *prefix {
	own := "/" + name
	if opts != nil {
		if value, ok := lookupProperty(opts, "path"); ok {
			if lit, ok := value.(*StringLiteral); ok {
				own = lit.Value
			}
		}
	}

	if parent == nil || parent.name == "" {
		return &prefix{name: name, path: own}
	}
	return &prefix{
		name: parent.name + capitalize(name),
		path: parent.path + own,
	}
}

func (c *compiler) callName(call *CallExpression) (string, error) {
	if len(call.Arguments) == 0 {
		return "", c.unsupportedf(call.Pos(), "%s is missing its name argument", call.Callee)
	}
	lit, ok := call.Arguments[0].(*StringLiteral)
	if !ok {
		return "", c.unsupportedf(call.Arguments[0].Pos(), "name argument must be a string literal, found %s", call.Arguments[0])
	}
	return lit.Value, nil
}

func (c *compiler) stringValue(value Expression, key string) (string, error) {
	lit, ok := value.(*StringLiteral)
	if !ok {
		return "", c.unsupportedf(value.Pos(), "%s option must be a string literal, found %s", key, value)
	}
	return lit.Value, nil
}

func (c *compiler) unsupportedf(pos Pos, format string, args ...any) error {
	return NewUnsupportedError(c.source, pos, format, args...)
}

func (c *compiler) emit(ev declEvent) {
	if c.observe != nil {
		c.observe(ev)
	}
}

// optionsArg returns the second argument when it is an object literal.
// Any other second argument counts as no options at all, which is what
// lets a resource call compile through buildRoute unchanged.
func optionsArg(call *CallExpression) *ObjectLiteral {
	if len(call.Arguments) < 2 {
		return nil
	}
	obj, _ := call.Arguments[1].(*ObjectLiteral)
	return obj
}

// lookupProperty scans obj in declaration order and returns the value of
// the first property whose key equals name. The boolean reports whether
// any property matched.
func lookupProperty(obj *ObjectLiteral, name string) (Expression, bool) {
	for _, prop := range obj.Properties {
		if prop.Key == name {
			return prop.Value, true
		}
	}
	return nil, false
}

// capitalize upper-cases the first rune only, so fooBar becomes FooBar
// rather than Foobar.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
