package routemap

// Visitor's Visit method is invoked for each node encountered by Walk. If
// the returned visitor is non-nil, Walk visits each child of the node with
// that visitor.
type Visitor interface {
	Visit(node Node) Visitor
}

// maxWalkDepth bounds recursion. Parser output is always acyclic, but
// Compile also accepts hand-built trees and the guard keeps a malformed
// one from recursing without end.
const maxWalkDepth = 4096

// Walk traverses the tree rooted at node in depth-first source order,
// calling v.Visit for each node before descending into its children.
func Walk(v Visitor, node Node) {
	walk(v, node, 0)
}

func walk(v Visitor, node Node, depth int) {
	if node == nil || depth > maxWalkDepth {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Statements {
			walk(v, s, depth+1)
		}
	case *ExpressionStatement:
		walk(v, n.Expression, depth+1)
	case *BlockStatement:
		for _, s := range n.Statements {
			walk(v, s, depth+1)
		}
	case *ObjectLiteral:
		for _, p := range n.Properties {
			walk(v, p, depth+1)
		}
	case *ObjectProperty:
		walk(v, n.Value, depth+1)
	case *FunctionLiteral:
		for _, p := range n.Parameters {
			walk(v, p, depth+1)
		}
		if n.Body != nil {
			walk(v, n.Body, depth+1)
		}
	case *MemberExpression:
		walk(v, n.Object, depth+1)
		if n.Property != nil {
			walk(v, n.Property, depth+1)
		}
	case *CallExpression:
		walk(v, n.Callee, depth+1)
		for _, a := range n.Arguments {
			walk(v, a, depth+1)
		}
	}
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses the tree in depth-first source order, calling f for
// each node. If f returns false the children of that node are skipped.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
