package routemap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kindOf(n Node) string {
	return fmt.Sprintf("%T", n)
}

func TestInspect_PreorderSourceOrder(t *testing.T) {
	prog, err := ParseString(`a.b(c, 'd');`, "walk.js")
	require.NoError(t, err)

	var kinds []string
	Inspect(prog, func(n Node) bool {
		kinds = append(kinds, kindOf(n))
		return true
	})

	assert.Equal(t, []string{
		"*routemap.Program",
		"*routemap.ExpressionStatement",
		"*routemap.CallExpression",
		"*routemap.MemberExpression",
		"*routemap.Identifier",
		"*routemap.Identifier",
		"*routemap.Identifier",
		"*routemap.StringLiteral",
	}, kinds)
}

func TestInspect_SkipChildren(t *testing.T) {
	prog, err := ParseString(`a.b(c);`, "walk.js")
	require.NoError(t, err)

	var kinds []string
	Inspect(prog, func(n Node) bool {
		kinds = append(kinds, kindOf(n))
		_, isCall := n.(*CallExpression)
		return !isCall
	})

	assert.Equal(t, []string{
		"*routemap.Program",
		"*routemap.ExpressionStatement",
		"*routemap.CallExpression",
	}, kinds)
}

func TestWalk_DepthGuard(t *testing.T) {
	var expr Expression = &Identifier{Name: "base"}
	total := maxWalkDepth + 64
	for i := 0; i < total; i++ {
		expr = &MemberExpression{Object: expr, Property: &Identifier{Name: "p"}}
	}
	root := &Program{Statements: []Statement{&ExpressionStatement{Expression: expr}}}

	visited := 0
	Inspect(root, func(Node) bool {
		visited++
		return true
	})

	assert.Greater(t, visited, maxWalkDepth/2)
	assert.Less(t, visited, 2*total)
}

func TestWalk_NilNodes(t *testing.T) {
	Walk(inspector(func(Node) bool { return true }), nil)

	fn := &FunctionLiteral{}
	member := &MemberExpression{Object: fn}
	root := &Program{Statements: []Statement{&ExpressionStatement{Expression: member}}}

	visited := 0
	Inspect(root, func(Node) bool {
		visited++
		return true
	})
	assert.Equal(t, 4, visited)
}
