package codegen

import (
	"bytes"
	"testing"

	"github.com/dangerclosesec/cscm/compiler/arena"
	"github.com/dangerclosesec/cscm/compiler/ast"
	"github.com/dangerclosesec/cscm/compiler/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, src string) string {
	t.Helper()
	fn, err := parser.Parse([]byte(src), arena.New(1<<16))
	require.NoError(t, err)
	return Function(fn)
}

func TestExpr(t *testing.T) {
	tests := []struct {
		name     string
		expr     ast.Expr
		expected string
	}{
		{"number", &ast.NumberLiteral{Value: -42}, "-42"},
		{"string", &ast.StringLiteral{Value: "hello world"}, `"hello world"`},
		{"string with embedded quote", &ast.StringLiteral{Value: `a"b`}, `"a"b"`},
		{"identifier", &ast.Identifier{Name: "x"}, "x"},
		{
			"nested",
			&ast.BinaryOp{
				Op:    '-',
				Left:  &ast.BinaryOp{Op: '+', Left: &ast.Identifier{Name: "a"}, Right: &ast.Identifier{Name: "b"}},
				Right: &ast.Identifier{Name: "c"},
			},
			"(- (+ a b) c)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Expr(tt.expr))
		})
	}
}

func TestPrecedenceOutput(t *testing.T) {
	tests := []struct {
		body     string
		expected string
	}{
		{"return a+b-c;", "(- (+ a b) c)"},
		{"return a-b+c;", "(+ (- a b) c)"},
		{"return 1+2*3;", "(+ 1 (* 2 3))"},
		{"return 1*2+3;", "(+ (* 1 2) 3)"},
		{"return 8/4/2;", "(/ (/ 8 4) 2)"},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			out := compile(t, "int f() { "+tt.body+" }")
			assert.Equal(t, "(define (f)\n  "+tt.expected+")", out)
		})
	}
}

func TestStatements(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{
			name:     "empty body",
			src:      "int name() {}",
			expected: "(define (name))",
		},
		{
			name:     "assignment then return",
			src:      "int main() { x = 1; return x; }",
			expected: "(define (main)\n  (define x 1)\n  x)",
		},
		{
			name:     "call",
			src:      "void main() { foo(1+2); }",
			expected: "(define (main)\n  (foo (+ 1 2)))",
		},
		{
			name:     "string argument",
			src:      `int main() { printf("hi"); return 0; }`,
			expected: "(define (main)\n  (printf \"hi\")\n  0)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, compile(t, tt.src))
		})
	}
}

func TestWriteTo(t *testing.T) {
	var g Generator
	g.Statement(&ast.Assignment{Name: "y", Value: &ast.NumberLiteral{Value: 2}})

	var buf bytes.Buffer
	n, err := g.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len("(define y 2)")), n)
	assert.Equal(t, "(define y 2)", buf.String())
}
