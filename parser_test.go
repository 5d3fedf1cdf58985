package routemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_MapCallTree(t *testing.T) {
	src := `App.Router.map(function () {
	this.route('home', { path: '/' });
	this.resource('posts', function () {
		this.route('new');
	});
});`
	prog, err := ParseString(src, "app.js")
	require.NoError(t, err)
	require.Len(t, prog.Statements, 1)
	assert.Equal(t, "app.js", prog.Name)

	es, ok := prog.Statements[0].(*ExpressionStatement)
	require.True(t, ok)
	call, ok := es.Expression.(*CallExpression)
	require.True(t, ok)

	member, ok := call.Callee.(*MemberExpression)
	require.True(t, ok)
	assert.Equal(t, "map", member.Property.Name)

	receiver, ok := member.Object.(*MemberExpression)
	require.True(t, ok)
	assert.Equal(t, "Router", receiver.Property.Name)
	ident, ok := receiver.Object.(*Identifier)
	require.True(t, ok)
	assert.Equal(t, "App", ident.Name)

	require.Len(t, call.Arguments, 1)
	fn, ok := call.Arguments[0].(*FunctionLiteral)
	require.True(t, ok)
	require.Len(t, fn.Body.Statements, 2)
}

func TestParse_ObjectLiteral(t *testing.T) {
	src := `this.route('home', {
	path: '/',
	'label': 'Home',
	nested: { deep: 'yes' },
	flag: true,
	count: 3,
	nothing: null,
});`
	prog, err := ParseString(src, "obj.js")
	require.NoError(t, err)

	call := prog.Statements[0].(*ExpressionStatement).Expression.(*CallExpression)
	require.Len(t, call.Arguments, 2)
	obj, ok := call.Arguments[1].(*ObjectLiteral)
	require.True(t, ok)
	require.Len(t, obj.Properties, 6)

	keys := make([]string, 0, len(obj.Properties))
	for _, prop := range obj.Properties {
		keys = append(keys, prop.Key)
	}
	assert.Equal(t, []string{"path", "label", "nested", "flag", "count", "nothing"}, keys)

	assert.IsType(t, &StringLiteral{}, obj.Properties[0].Value)
	assert.IsType(t, &ObjectLiteral{}, obj.Properties[2].Value)
	assert.IsType(t, &BooleanLiteral{}, obj.Properties[3].Value)
	assert.IsType(t, &NumberLiteral{}, obj.Properties[4].Value)
	assert.IsType(t, &NullLiteral{}, obj.Properties[5].Value)

	value, ok := lookupProperty(obj, "path")
	require.True(t, ok)
	assert.Equal(t, "/", value.(*StringLiteral).Value)

	_, ok = lookupProperty(obj, "missing")
	assert.False(t, ok)
}

func TestParse_OptionalSemicolons(t *testing.T) {
	src := `this.route('a')
this.route('b')`
	prog, err := ParseString(src, "asi.js")
	require.NoError(t, err)
	assert.Len(t, prog.Statements, 2)
}

func TestParse_TrailingCommas(t *testing.T) {
	src := `this.resource('posts', { path: '/posts', }, function () {},);`
	prog, err := ParseString(src, "commas.js")
	require.NoError(t, err)

	call := prog.Statements[0].(*ExpressionStatement).Expression.(*CallExpression)
	assert.Len(t, call.Arguments, 3)
}

func TestParse_NamedFunctionExpression(t *testing.T) {
	src := `App.Router.map(function routes(match) { this.route('x'); });`
	prog, err := ParseString(src, "named.js")
	require.NoError(t, err)

	call := prog.Statements[0].(*ExpressionStatement).Expression.(*CallExpression)
	fn := call.Arguments[0].(*FunctionLiteral)
	require.Len(t, fn.Parameters, 1)
	assert.Equal(t, "match", fn.Parameters[0].Name)
}

func TestParse_ImmediatelyInvokedFunction(t *testing.T) {
	src := `(function () { App.start(); })();`
	prog, err := ParseString(src, "iife.js")
	require.NoError(t, err)
	require.Len(t, prog.Statements, 1)

	call, ok := prog.Statements[0].(*ExpressionStatement).Expression.(*CallExpression)
	require.True(t, ok)
	assert.IsType(t, &FunctionLiteral{}, call.Callee)
}

func TestParse_TopLevelBlock(t *testing.T) {
	src := `{ this.route('x'); }`
	prog, err := ParseString(src, "block.js")
	require.NoError(t, err)
	require.Len(t, prog.Statements, 1)
	assert.IsType(t, &BlockStatement{}, prog.Statements[0])
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{"missing close paren", `this.route('x'`, 1},
		{"missing member name", `this..route('x');`, 1},
		{"unterminated block", `App.Router.map(function () {`, 1},
		{"missing property colon", `this.route('x', { path '/' });`, 1},
		{"bad property key", `this.route('x', { 42: '/' });`, 1},
		{"statement on later line", "this.route('a');\nthis.route(;", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.src, "bad.js")
			require.Error(t, err)

			ce, ok := AsCompileError(err)
			require.True(t, ok, "expected a CompileError, got %T", err)
			assert.Equal(t, ErrorTypeParse, ce.Type)
			assert.Equal(t, "bad.js", ce.Source)
			assert.Equal(t, tt.line, ce.Pos.Line)
		})
	}
}

func TestProgram_String(t *testing.T) {
	src := `App.Router.map(function () { this.route('home', { path: '/' }); });`
	prog, err := ParseString(src, "str.js")
	require.NoError(t, err)

	assert.Equal(t,
		`App.Router.map(function () { this.route("home", { path: "/" }); });`,
		prog.String())
}
